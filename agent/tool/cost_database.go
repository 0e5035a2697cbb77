package tool

import (
	"context"
	"fmt"
	"strings"

	einotool "github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/components/tool/utils"
	"github.com/rs/zerolog/log"

	"github.com/tanpawarit/chative-specialists/agent/costdb"
)

const ToolCostDatabase = "cost_database"

// CostLookup finds priced repair options. *costdb.Store satisfies it.
type CostLookup interface {
	Lookup(ctx context.Context, item string) ([]costdb.Entry, error)
}

type CostDatabaseInput struct {
	ItemName string `json:"item_name" jsonschema:"description=Name of the damaged item (for example Televisor)"`
}

type CostDatabaseOutput struct {
	ItemName  string         `json:"item_name"`
	Found     bool           `json:"found"`
	Estimates []costdb.Entry `json:"estimates,omitempty"`
	Error     string         `json:"error,omitempty"`
}

func NewCostDatabaseTool(costs CostLookup) (einotool.InvokableTool, error) {
	if costs == nil {
		return nil, fmt.Errorf("cost database tool: lookup is nil")
	}
	return utils.InferTool(
		ToolCostDatabase,
		"Look up repair and replacement costs for an item by name. Returns one estimate per known damage type.",
		func(ctx context.Context, in CostDatabaseInput) (CostDatabaseOutput, error) {
			return executeCostLookup(ctx, costs, in), nil
		},
	)
}

func executeCostLookup(ctx context.Context, costs CostLookup, in CostDatabaseInput) CostDatabaseOutput {
	item := strings.TrimSpace(in.ItemName)
	out := CostDatabaseOutput{ItemName: item}
	if item == "" {
		out.Error = "item_name is required"
		return out
	}

	entries, err := costs.Lookup(ctx, item)
	if err != nil {
		log.Warn().Err(err).Str("tool", ToolCostDatabase).Msg("cost lookup failed")
		out.Error = err.Error()
		return out
	}

	log.Debug().Str("tool", ToolCostDatabase).Int("estimates", len(entries)).Msg("cost lookup done")
	out.Found = len(entries) > 0
	out.Estimates = entries
	return out
}
