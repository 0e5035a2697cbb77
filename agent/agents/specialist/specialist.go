package specialist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	einomodel "github.com/cloudwego/eino/components/model"
	einotool "github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/components/tool/utils"
	"github.com/cloudwego/eino/schema"
	"github.com/rs/zerolog/log"

	"github.com/tanpawarit/chative-specialists/agent/agents/reactagent"
	contractx "github.com/tanpawarit/chative-specialists/agent/contract"
	promptx "github.com/tanpawarit/chative-specialists/agent/prompt"
	toolx "github.com/tanpawarit/chative-specialists/agent/tool"
)

// Prompter renders an argument payload into the instruction sent to the model.
type Prompter interface {
	Prompt() string
}

// Specialist binds one ReAct agent (model, preamble, one auxiliary tool) to a
// typed argument contract. It is itself an eino tool, so an outer agent can
// call it. A Specialist is immutable after construction.
type Specialist[A Prompter, R any] struct {
	name        contractx.SpecialistName
	description string
	wrap        func(string) R
	runner      reactagent.Runner
	tool        einotool.InvokableTool
}

type blueprint[R any] struct {
	name        contractx.SpecialistName
	description string
	wrap        func(string) R
}

func build[A Prompter, R any](
	ctx context.Context,
	bp blueprint[R],
	chatModel einomodel.ToolCallingChatModel,
	aux einotool.BaseTool,
) (*Specialist[A, R], error) {
	if chatModel == nil {
		return nil, fmt.Errorf("%w: chat model is required for specialist=%s", contractx.ErrValidation, bp.name)
	}
	if err := checkAuxiliaryTool(ctx, bp.name, aux); err != nil {
		return nil, err
	}

	preamble, err := promptx.LoadPromptSet().For(bp.name)
	if err != nil {
		return nil, err
	}

	runner, err := reactagent.New(ctx, reactagent.Config{
		Model:    chatModel,
		Preamble: preamble,
		Tools:    []einotool.BaseTool{aux},
	})
	if err != nil {
		return nil, fmt.Errorf("specialist=%s: %w", bp.name, err)
	}

	return bind[A](bp, runner)
}

func bind[A Prompter, R any](bp blueprint[R], runner reactagent.Runner) (*Specialist[A, R], error) {
	s := &Specialist[A, R]{
		name:        bp.name,
		description: bp.description,
		wrap:        bp.wrap,
		runner:      runner,
	}

	t, err := utils.InferTool[A, R](string(bp.name), bp.description, s.Call, utils.WithSchemaCustomizer(describeArguments))
	if err != nil {
		return nil, fmt.Errorf("%w: infer tool for specialist=%s: %v", contractx.ErrValidation, bp.name, err)
	}
	s.tool = t
	return s, nil
}

func checkAuxiliaryTool(ctx context.Context, name contractx.SpecialistName, aux einotool.BaseTool) error {
	if aux == nil {
		return fmt.Errorf("%w: auxiliary tool is required for specialist=%s", contractx.ErrValidation, name)
	}
	info, err := aux.Info(ctx)
	if err != nil {
		return fmt.Errorf("%w: read auxiliary tool info: %v", contractx.ErrValidation, err)
	}
	if want := toolx.NameFor(name); info.Name != want {
		return fmt.Errorf("%w: specialist=%s expects tool=%s, got tool=%s", contractx.ErrValidation, name, want, info.Name)
	}
	return nil
}

func (s *Specialist[A, R]) Name() contractx.SpecialistName {
	return s.name
}

func (s *Specialist[A, R]) Description() string {
	return s.description
}

// Call renders args into a prompt and forwards it to the bound agent. Any
// failure is returned as *Error without retry.
func (s *Specialist[A, R]) Call(ctx context.Context, args A) (R, error) {
	var zero R
	if s == nil || s.runner == nil {
		return zero, s.unboundError()
	}

	prompt := args.Prompt()
	log.Debug().Str("specialist", string(s.name)).Int("prompt_len", len(prompt)).Msg("invoking specialist")

	msg, err := s.runner.Generate(ctx, []*schema.Message{schema.UserMessage(prompt)})
	if err != nil {
		log.Warn().Err(err).Str("specialist", string(s.name)).Msg("specialist invocation failed")
		return zero, newError(s.name, contractx.ErrModelInvoke, err)
	}
	if msg == nil {
		return zero, newError(s.name, contractx.ErrEmptyResponse, contractx.ErrEmptyResponse)
	}

	return s.wrap(msg.Content), nil
}

func (s *Specialist[A, R]) Info(ctx context.Context) (*schema.ToolInfo, error) {
	if s == nil || s.tool == nil {
		return nil, s.unboundError()
	}
	return s.tool.Info(ctx)
}

// InvokableRun decodes JSON arguments, calls the specialist and encodes the
// response as JSON.
func (s *Specialist[A, R]) InvokableRun(ctx context.Context, argumentsInJSON string, opts ...einotool.Option) (string, error) {
	if s == nil || s.tool == nil {
		return "", s.unboundError()
	}
	return s.tool.InvokableRun(ctx, argumentsInJSON, opts...)
}

// unboundError names the specialist from its argument type when the value
// was never built.
func (s *Specialist[A, R]) unboundError() *Error {
	name := nameForArgs[A]()
	if s != nil && s.name != "" {
		name = s.name
	}
	return newError(name, contractx.ErrValidation, errors.New("specialist is not initialized"))
}

func nameForArgs[A Prompter]() contractx.SpecialistName {
	var args A
	switch any(args).(type) {
	case AddressChangeArgs:
		return contractx.SpecialistAddress
	case DamageReportArgs:
		return contractx.SpecialistDamage
	case DummyArgs:
		return contractx.SpecialistDummy
	default:
		return ""
	}
}

// Definition is the routing contract: name, description and the JSON schema
// of the arguments.
func (s *Specialist[A, R]) Definition(ctx context.Context) (contractx.ToolDefinition, error) {
	info, err := s.Info(ctx)
	if err != nil {
		return contractx.ToolDefinition{}, err
	}

	params := json.RawMessage(`{"type":"object","properties":{}}`)
	if info.ParamsOneOf != nil {
		openAPISchema, err := info.ParamsOneOf.ToOpenAPIV3()
		if err != nil {
			return contractx.ToolDefinition{}, fmt.Errorf("%w: build schema for specialist=%s: %v", contractx.ErrValidation, s.name, err)
		}
		raw, err := json.Marshal(openAPISchema)
		if err != nil {
			return contractx.ToolDefinition{}, fmt.Errorf("%w: encode schema for specialist=%s: %v", contractx.ErrValidation, s.name, err)
		}
		params = raw
	}

	return contractx.ToolDefinition{
		Name:        info.Name,
		Description: info.Desc,
		Parameters:  params,
	}, nil
}
