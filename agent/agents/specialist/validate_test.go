package specialist

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	contractx "github.com/tanpawarit/chative-specialists/agent/contract"
)

func TestValidateArguments(t *testing.T) {
	t.Parallel()

	spec, err := NewDummySpecialist(context.Background(), answer("x"), mustTool(t, contractx.SpecialistDummy))
	require.NoError(t, err)

	assert.NoError(t, ValidateArguments(context.Background(), spec, `{"message":"ping","detail_level":"bajo"}`))
	assert.ErrorIs(t, ValidateArguments(context.Background(), spec, `{"message":5,"detail_level":"bajo"}`), contractx.ErrValidation)
	assert.ErrorIs(t, ValidateArguments(context.Background(), spec, `{"message":`), contractx.ErrValidation)
	assert.ErrorIs(t, ValidateArguments(context.Background(), nil, `{}`), contractx.ErrValidation)
}
