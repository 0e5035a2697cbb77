package specialist

import (
	"context"
	"fmt"

	einomodel "github.com/cloudwego/eino/components/model"

	contractx "github.com/tanpawarit/chative-specialists/agent/contract"
	llmx "github.com/tanpawarit/chative-specialists/agent/llm"
	toolx "github.com/tanpawarit/chative-specialists/agent/tool"
)

// ModelSet holds one completion backend per specialist.
type ModelSet struct {
	Address einomodel.ToolCallingChatModel
	Damage  einomodel.ToolCallingChatModel
	Dummy   einomodel.ToolCallingChatModel
}

type registryImpl struct {
	address contractx.Specialist
	damage  contractx.Specialist
	dummy   contractx.Specialist
}

func (r *registryImpl) Address() contractx.Specialist {
	return r.address
}

func (r *registryImpl) Damage() contractx.Specialist {
	return r.damage
}

func (r *registryImpl) Dummy() contractx.Specialist {
	return r.dummy
}

func (r *registryImpl) Get(name contractx.SpecialistName) (contractx.Specialist, bool) {
	switch name {
	case contractx.SpecialistAddress:
		return r.address, true
	case contractx.SpecialistDamage:
		return r.damage, true
	case contractx.SpecialistDummy:
		return r.dummy, true
	default:
		return nil, false
	}
}

func (r *registryImpl) All() []contractx.Specialist {
	return []contractx.Specialist{r.address, r.damage, r.dummy}
}

// NewRegistry creates one OpenRouter model per specialist and binds each
// specialist to its auxiliary tool.
func NewRegistry(ctx context.Context, cfg llmx.Config, deps toolx.Dependencies) (contractx.Registry, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	addressModelCfg := cfg.OpenRouterFor(string(contractx.SpecialistAddress))
	addressModel, err := addressModelCfg.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: create address model: %v", contractx.ErrModelInvoke, err)
	}
	damageModelCfg := cfg.OpenRouterFor(string(contractx.SpecialistDamage))
	damageModel, err := damageModelCfg.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: create damage model: %v", contractx.ErrModelInvoke, err)
	}
	dummyModelCfg := cfg.OpenRouterFor(string(contractx.SpecialistDummy))
	dummyModel, err := dummyModelCfg.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: create dummy model: %v", contractx.ErrModelInvoke, err)
	}

	return NewRegistryWithModels(ctx, ModelSet{
		Address: addressModel,
		Damage:  damageModel,
		Dummy:   dummyModel,
	}, deps)
}

func NewRegistryWithModels(ctx context.Context, models ModelSet, deps toolx.Dependencies) (contractx.Registry, error) {
	geocoding, err := toolx.BuildForSpecialist(contractx.SpecialistAddress, deps)
	if err != nil {
		return nil, err
	}
	costDatabase, err := toolx.BuildForSpecialist(contractx.SpecialistDamage, deps)
	if err != nil {
		return nil, err
	}
	textReverser, err := toolx.BuildForSpecialist(contractx.SpecialistDummy, deps)
	if err != nil {
		return nil, err
	}

	address, err := NewAddressSpecialist(ctx, models.Address, geocoding)
	if err != nil {
		return nil, err
	}
	damage, err := NewDamageSpecialist(ctx, models.Damage, costDatabase)
	if err != nil {
		return nil, err
	}
	dummy, err := NewDummySpecialist(ctx, models.Dummy, textReverser)
	if err != nil {
		return nil, err
	}

	return &registryImpl{
		address: address,
		damage:  damage,
		dummy:   dummy,
	}, nil
}
