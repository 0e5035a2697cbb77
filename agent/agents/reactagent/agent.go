// Package reactagent builds the eino ReAct agent shared by the specialists
// and the router: a tool-calling model, a fixed preamble and a tool set.
package reactagent

import (
	"context"
	"fmt"
	"strings"

	einomodel "github.com/cloudwego/eino/components/model"
	einotool "github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/flow/agent"
	"github.com/cloudwego/eino/flow/agent/react"
	"github.com/cloudwego/eino/schema"

	contractx "github.com/tanpawarit/chative-specialists/agent/contract"
)

// DefaultMaxStep bounds model<->tool round trips; each round trip is two steps.
const DefaultMaxStep = 12

// Runner is the part of *react.Agent callers depend on.
type Runner interface {
	Generate(ctx context.Context, input []*schema.Message, opts ...agent.AgentOption) (*schema.Message, error)
}

var _ Runner = (*react.Agent)(nil)

type Config struct {
	Model    einomodel.ToolCallingChatModel
	Preamble string
	Tools    []einotool.BaseTool
	MaxStep  int
}

func New(ctx context.Context, cfg Config) (*react.Agent, error) {
	if cfg.Model == nil {
		return nil, fmt.Errorf("%w: chat model is required", contractx.ErrValidation)
	}
	preamble := strings.TrimSpace(cfg.Preamble)
	if preamble == "" {
		return nil, contractx.ErrPromptMissing
	}

	maxStep := cfg.MaxStep
	if maxStep <= 0 {
		maxStep = DefaultMaxStep
	}

	a, err := react.NewAgent(ctx, &react.AgentConfig{
		ToolCallingModel: cfg.Model,
		ToolsConfig: compose.ToolsNodeConfig{
			Tools: cfg.Tools,
		},
		MessageModifier: SystemModifier(preamble),
		MaxStep:         maxStep,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: build react agent: %v", contractx.ErrModelInvoke, err)
	}
	return a, nil
}

// SystemModifier puts the preamble in front of every model call.
func SystemModifier(preamble string) react.MessageModifier {
	return func(ctx context.Context, input []*schema.Message) []*schema.Message {
		out := make([]*schema.Message, 0, len(input)+1)
		out = append(out, schema.SystemMessage(preamble))
		return append(out, input...)
	}
}
