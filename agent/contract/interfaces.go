package contract

import (
	"context"

	"github.com/cloudwego/eino/components/tool"
)

// Specialist is a narrow agent usable as a tool by an outer orchestrator.
type Specialist interface {
	tool.InvokableTool

	Name() SpecialistName
	Definition(ctx context.Context) (ToolDefinition, error)
}

type Registry interface {
	Address() Specialist
	Damage() Specialist
	Dummy() Specialist
	Get(name SpecialistName) (Specialist, bool)
	All() []Specialist
}
