package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/tanpawarit/chative-specialists/agent/agents/router"
	"github.com/tanpawarit/chative-specialists/agent/agents/specialist"
	cachex "github.com/tanpawarit/chative-specialists/agent/cache"
	contractx "github.com/tanpawarit/chative-specialists/agent/contract"
	"github.com/tanpawarit/chative-specialists/agent/costdb"
	llmx "github.com/tanpawarit/chative-specialists/agent/llm"
	toolx "github.com/tanpawarit/chative-specialists/agent/tool"
	configx "github.com/tanpawarit/chative-specialists/pkg/config"
	"github.com/tanpawarit/chative-specialists/pkg/nominatim"
)

// app owns the long-lived resources shared by the commands.
type app struct {
	llm      llmx.Config
	costs    *costdb.Store
	registry contractx.Registry
}

func newApp(ctx context.Context) (*app, error) {
	llmCfg, err := configx.New[llmx.Config]("OPENROUTER")
	if err != nil {
		return nil, err
	}
	geoCfg, err := configx.New[nominatim.Config]("NOMINATIM")
	if err != nil {
		return nil, err
	}
	cacheCfg, err := configx.New[cachex.UpstashRedisConfig]("UPSTASH_REDIS")
	if err != nil {
		return nil, err
	}
	costCfg, err := configx.New[costdb.Config]("COSTDB")
	if err != nil {
		return nil, err
	}

	geoClient, err := nominatim.NewClient(*geoCfg)
	if err != nil {
		return nil, err
	}
	var geocoder toolx.Geocoder = geoClient
	if cacheCfg.Enabled() {
		c, err := cachex.NewUpstashCache(*cacheCfg)
		if err != nil {
			return nil, err
		}
		geocoder = toolx.NewCachedGeocoder(geoClient, c)
		log.Info().Msg("geocoding cache enabled")
	}

	costs, err := costdb.Open(*costCfg)
	if err != nil {
		return nil, err
	}

	registry, err := specialist.NewRegistry(ctx, *llmCfg, toolx.Dependencies{
		Geocoder: geocoder,
		Costs:    costs,
	})
	if err != nil {
		_ = costs.Close()
		return nil, err
	}

	return &app{llm: *llmCfg, costs: costs, registry: registry}, nil
}

func (a *app) router(ctx context.Context) (*router.Router, error) {
	routerModelCfg := a.llm.OpenRouterFor(contractx.AgentRouter)
	routerModel, err := routerModelCfg.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: create router model: %v", contractx.ErrModelInvoke, err)
	}
	return router.New(ctx, routerModel, a.registry, router.Config{})
}

func (a *app) Close() error {
	return a.costs.Close()
}
