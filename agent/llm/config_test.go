package llm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	contractx "github.com/tanpawarit/chative-specialists/agent/contract"
)

func baseConfig() Config {
	return Config{
		BaseURL:            " https://openrouter.ai/api/v1 ",
		APIKey:             " key ",
		Model:              "openai/gpt-4o-mini",
		MaxCompletionToken: 1000,
		Temperature:        0.5,
		RouterTemperature:  -1,
		AddressTemperature: -1,
		DamageTemperature:  -1,
		DummyTemperature:   -1,
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, baseConfig().Validate())

	cfg := baseConfig()
	cfg.APIKey = " "
	assert.True(t, errors.Is(cfg.Validate(), contractx.ErrValidation))

	cfg = baseConfig()
	cfg.Model = ""
	assert.True(t, errors.Is(cfg.Validate(), contractx.ErrValidation))
}

func TestOpenRouterForDefaults(t *testing.T) {
	t.Parallel()

	out := baseConfig().OpenRouterFor(string(contractx.SpecialistDamage))
	assert.Equal(t, "openai/gpt-4o-mini", out.Model)
	assert.Equal(t, "key", out.APIKey)
	assert.Equal(t, "https://openrouter.ai/api/v1", out.BaseURL)
	assert.InDelta(t, 0.5, out.Temperature, 1e-6)
	require.NotNil(t, out.MaxCompletionToken)
	assert.Equal(t, 1000, *out.MaxCompletionToken)
}

func TestOpenRouterForOverrides(t *testing.T) {
	t.Parallel()

	cfg := baseConfig()
	cfg.RouterModel = "anthropic/claude-3.5-haiku"
	cfg.RouterTemperature = 0
	cfg.DummyModel = "  "

	router := cfg.OpenRouterFor(contractx.AgentRouter)
	assert.Equal(t, "anthropic/claude-3.5-haiku", router.Model)
	assert.Zero(t, router.Temperature)

	dummy := cfg.OpenRouterFor(string(contractx.SpecialistDummy))
	assert.Equal(t, "openai/gpt-4o-mini", dummy.Model)
	assert.InDelta(t, 0.5, dummy.Temperature, 1e-6)
}

func TestModelsDeduplicates(t *testing.T) {
	t.Parallel()

	cfg := baseConfig()
	cfg.AddressModel = "google/gemini-2.0-flash"

	assert.Equal(t, []string{"openai/gpt-4o-mini", "google/gemini-2.0-flash"}, cfg.Models())
}
