package tool

import (
	"fmt"

	einotool "github.com/cloudwego/eino/components/tool"

	contractx "github.com/tanpawarit/chative-specialists/agent/contract"
)

// Dependencies are the backends the auxiliary tools sit on.
type Dependencies struct {
	Geocoder Geocoder
	Costs    CostLookup
}

// BuildForSpecialist returns the single auxiliary tool bound to a specialist.
func BuildForSpecialist(name contractx.SpecialistName, deps Dependencies) (einotool.InvokableTool, error) {
	switch name {
	case contractx.SpecialistAddress:
		if deps.Geocoder == nil {
			return nil, fmt.Errorf("%w: specialist=%s requires a geocoder", contractx.ErrValidation, name)
		}
		return NewGeocodingTool(deps.Geocoder)
	case contractx.SpecialistDamage:
		if deps.Costs == nil {
			return nil, fmt.Errorf("%w: specialist=%s requires a cost lookup", contractx.ErrValidation, name)
		}
		return NewCostDatabaseTool(deps.Costs)
	case contractx.SpecialistDummy:
		return NewTextReverserTool()
	default:
		return nil, fmt.Errorf("%w: unknown specialist=%s", contractx.ErrValidation, name)
	}
}

// NameFor is the auxiliary tool name a specialist is bound to.
func NameFor(name contractx.SpecialistName) string {
	switch name {
	case contractx.SpecialistAddress:
		return ToolGeocoding
	case contractx.SpecialistDamage:
		return ToolCostDatabase
	case contractx.SpecialistDummy:
		return ToolTextReverser
	default:
		return ""
	}
}
