package reactagent

import (
	"context"
	"errors"
	"testing"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	contractx "github.com/tanpawarit/chative-specialists/agent/contract"
)

type echoModel struct {
	inputs [][]*schema.Message
}

func (m *echoModel) Generate(ctx context.Context, input []*schema.Message, opts ...einomodel.Option) (*schema.Message, error) {
	m.inputs = append(m.inputs, input)
	return schema.AssistantMessage("ok", nil), nil
}

func (m *echoModel) Stream(ctx context.Context, input []*schema.Message, opts ...einomodel.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("stream not implemented in fake model")
}

func (m *echoModel) WithTools(tools []*schema.ToolInfo) (einomodel.ToolCallingChatModel, error) {
	return m, nil
}

func TestSystemModifier(t *testing.T) {
	t.Parallel()

	out := SystemModifier("be brief")(context.Background(), []*schema.Message{schema.UserMessage("hi")})
	require.Len(t, out, 2)
	assert.Equal(t, schema.System, out[0].Role)
	assert.Equal(t, "be brief", out[0].Content)
	assert.Equal(t, "hi", out[1].Content)
}

func TestNewValidation(t *testing.T) {
	t.Parallel()

	_, err := New(context.Background(), Config{Preamble: "x"})
	assert.True(t, errors.Is(err, contractx.ErrValidation))

	_, err = New(context.Background(), Config{Model: &echoModel{}, Preamble: "  "})
	assert.True(t, errors.Is(err, contractx.ErrPromptMissing))
}

func TestNewGeneratesWithPreamble(t *testing.T) {
	t.Parallel()

	m := &echoModel{}
	a, err := New(context.Background(), Config{Model: m, Preamble: " be brief "})
	require.NoError(t, err)

	msg, err := a.Generate(context.Background(), []*schema.Message{schema.UserMessage("hi")})
	require.NoError(t, err)
	assert.Equal(t, "ok", msg.Content)

	require.Len(t, m.inputs, 1)
	require.Len(t, m.inputs[0], 2)
	assert.Equal(t, "be brief", m.inputs[0][0].Content)
	assert.Equal(t, "hi", m.inputs[0][1].Content)
}
