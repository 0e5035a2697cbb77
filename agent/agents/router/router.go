// Package router hands a free-form user message to the specialist best
// suited for it, using the specialists as tools of an outer ReAct agent.
package router

import (
	"context"
	"errors"
	"fmt"
	"strings"

	einomodel "github.com/cloudwego/eino/components/model"
	einotool "github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/schema"
	"github.com/rs/zerolog/log"

	"github.com/tanpawarit/chative-specialists/agent/agents/reactagent"
	contractx "github.com/tanpawarit/chative-specialists/agent/contract"
	promptx "github.com/tanpawarit/chative-specialists/agent/prompt"
)

var ErrInvalidMessage = errors.New("invalid message")

type Config struct {
	// MaxStep overrides reactagent.DefaultMaxStep.
	MaxStep int
}

type Router struct {
	runner reactagent.Runner
	names  []string
}

func New(ctx context.Context, chatModel einomodel.ToolCallingChatModel, registry contractx.Registry, cfg Config) (*Router, error) {
	if registry == nil {
		return nil, fmt.Errorf("%w: specialist registry is required", contractx.ErrValidation)
	}

	specialists := registry.All()
	tools := make([]einotool.BaseTool, 0, len(specialists))
	names := make([]string, 0, len(specialists))
	for _, s := range specialists {
		if s == nil {
			return nil, fmt.Errorf("%w: registry returned a nil specialist", contractx.ErrValidation)
		}
		tools = append(tools, s)
		names = append(names, string(s.Name()))
	}

	runner, err := reactagent.New(ctx, reactagent.Config{
		Model:    chatModel,
		Preamble: promptx.LoadPromptSet().Router,
		Tools:    tools,
		MaxStep:  cfg.MaxStep,
	})
	if err != nil {
		return nil, fmt.Errorf("router: %w", err)
	}

	return &Router{runner: runner, names: names}, nil
}

// Specialists lists the tool names the router can hand messages to.
func (r *Router) Specialists() []string {
	return append([]string(nil), r.names...)
}

func (r *Router) HandleMessage(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("%w: text is required", ErrInvalidMessage)
	}

	log.Debug().Str("agent", contractx.AgentRouter).Int("text_len", len(text)).Msg("routing message")

	msg, err := r.runner.Generate(ctx, []*schema.Message{schema.UserMessage(text)})
	if err != nil {
		return "", fmt.Errorf("%w: router: %v", contractx.ErrModelInvoke, err)
	}
	if msg == nil {
		return "", fmt.Errorf("%w: router returned no message", contractx.ErrValidation)
	}

	reply := strings.TrimSpace(msg.Content)
	if reply == "" {
		return "", fmt.Errorf("%w: router returned an empty reply", contractx.ErrValidation)
	}
	return reply, nil
}
