package prompt

import (
	_ "embed"
	"fmt"
	"strings"

	contractx "github.com/tanpawarit/chative-specialists/agent/contract"
)

var (
	//go:embed template/router.md
	routerRaw string

	//go:embed template/address.md
	addressRaw string

	//go:embed template/damage.md
	damageRaw string

	//go:embed template/dummy.md
	dummyRaw string
)

// PromptSet holds loaded prompt content.
type PromptSet struct {
	Router  string
	Address string
	Damage  string
	Dummy   string
}

// LoadPromptSet returns a PromptSet with trimmed prompt strings.
func LoadPromptSet() PromptSet {
	return PromptSet{
		Router:  strings.TrimSpace(routerRaw),
		Address: strings.TrimSpace(addressRaw),
		Damage:  strings.TrimSpace(damageRaw),
		Dummy:   strings.TrimSpace(dummyRaw),
	}
}

// For returns the preamble of a specialist.
func (p PromptSet) For(name contractx.SpecialistName) (string, error) {
	var out string
	switch name {
	case contractx.SpecialistAddress:
		out = p.Address
	case contractx.SpecialistDamage:
		out = p.Damage
	case contractx.SpecialistDummy:
		out = p.Dummy
	}
	if strings.TrimSpace(out) == "" {
		return "", fmt.Errorf("%w: specialist=%s", contractx.ErrPromptMissing, name)
	}
	return out, nil
}
