package contract

import "encoding/json"

type SpecialistName string

const (
	SpecialistAddress SpecialistName = "address_specialist"
	SpecialistDamage  SpecialistName = "damage_specialist"
	SpecialistDummy   SpecialistName = "dummy_specialist"
)

// AgentRouter is the outer agent that hands requests to specialists.
const AgentRouter = "router"

// ToolDefinition is the routing contract a specialist publishes: what it is
// called, when to use it and the JSON schema of its arguments.
type ToolDefinition struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Parameters  json.RawMessage `json:"parameters"`
}
