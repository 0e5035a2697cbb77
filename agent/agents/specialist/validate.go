package specialist

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	contractx "github.com/tanpawarit/chative-specialists/agent/contract"
)

// ValidateArguments checks argumentsInJSON against the argument schema s
// publishes, before any model is called.
func ValidateArguments(ctx context.Context, s contractx.Specialist, argumentsInJSON string) error {
	if s == nil {
		return fmt.Errorf("%w: specialist is nil", contractx.ErrValidation)
	}
	paramsSchema, err := argumentSchema(ctx, s)
	if err != nil {
		return err
	}

	var value any
	if err := json.Unmarshal([]byte(argumentsInJSON), &value); err != nil {
		return fmt.Errorf("%w: arguments for %s are not valid JSON: %v", contractx.ErrValidation, s.Name(), err)
	}
	if paramsSchema == nil {
		return nil
	}
	if err := paramsSchema.VisitJSON(value); err != nil {
		return fmt.Errorf("%w: arguments for %s: %v", contractx.ErrValidation, s.Name(), err)
	}
	return nil
}

func argumentSchema(ctx context.Context, s contractx.Specialist) (*openapi3.Schema, error) {
	info, err := s.Info(ctx)
	if err != nil {
		return nil, err
	}
	if info.ParamsOneOf == nil {
		return nil, nil
	}
	paramsSchema, err := info.ParamsOneOf.ToOpenAPIV3()
	if err != nil {
		return nil, fmt.Errorf("%w: build schema for %s: %v", contractx.ErrValidation, s.Name(), err)
	}
	return paramsSchema, nil
}
