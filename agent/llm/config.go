package llm

import (
	"fmt"
	"strings"
	"time"

	contractx "github.com/tanpawarit/chative-specialists/agent/contract"
	openrouterx "github.com/tanpawarit/chative-specialists/pkg/openrouter"
)

type Config struct {
	BaseURL            string        `envconfig:"BASE_URL" split_words:"true" default:"https://openrouter.ai/api/v1"`
	APIKey             string        `envconfig:"API_KEY" split_words:"true" required:"true"`
	Model              string        `envconfig:"MODEL" split_words:"true" required:"true"`
	MaxCompletionToken int           `envconfig:"MAX_COMPLETION_TOKEN" split_words:"true" default:"2000"`
	Temperature        float32       `envconfig:"TEMPERATURE" split_words:"true" default:"0.5"`
	Timeout            time.Duration `envconfig:"TIMEOUT" split_words:"true" default:"30s"`
	SiteURL            string        `envconfig:"SITE_URL" split_words:"true"`
	SiteName           string        `envconfig:"SITE_NAME" split_words:"true"`

	RouterModel        string  `envconfig:"ROUTER_MODEL" split_words:"true"`
	AddressModel       string  `envconfig:"ADDRESS_MODEL" split_words:"true"`
	DamageModel        string  `envconfig:"DAMAGE_MODEL" split_words:"true"`
	DummyModel         string  `envconfig:"DUMMY_MODEL" split_words:"true"`
	RouterTemperature  float32 `envconfig:"ROUTER_TEMPERATURE" split_words:"true" default:"-1"`
	AddressTemperature float32 `envconfig:"ADDRESS_TEMPERATURE" split_words:"true" default:"-1"`
	DamageTemperature  float32 `envconfig:"DAMAGE_TEMPERATURE" split_words:"true" default:"-1"`
	DummyTemperature   float32 `envconfig:"DUMMY_TEMPERATURE" split_words:"true" default:"-1"`
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return fmt.Errorf("%w: openrouter api key is required", contractx.ErrValidation)
	}
	if strings.TrimSpace(c.Model) == "" {
		return fmt.Errorf("%w: default model is required", contractx.ErrValidation)
	}
	return nil
}

// OpenRouterFor resolves the model settings for one agent. agent is either a
// specialist name or contract.AgentRouter; overrides fall back to the defaults.
func (c Config) OpenRouterFor(agent string) openrouterx.Config {
	modelName := strings.TrimSpace(c.Model)
	temp := c.Temperature

	override, overrideTemp := c.overrides(agent)
	if v := strings.TrimSpace(override); v != "" {
		modelName = v
	}
	if overrideTemp >= 0 {
		temp = overrideTemp
	}

	maxCompletionToken := c.MaxCompletionToken
	return openrouterx.Config{
		BaseURL:            strings.TrimSpace(c.BaseURL),
		APIKey:             strings.TrimSpace(c.APIKey),
		Model:              modelName,
		MaxCompletionToken: &maxCompletionToken,
		Temperature:        temp,
		Timeout:            c.Timeout,
		SiteURL:            strings.TrimSpace(c.SiteURL),
		SiteName:           strings.TrimSpace(c.SiteName),
	}
}

// Models lists the distinct models the configuration refers to.
func (c Config) Models() []string {
	agents := []string{
		contractx.AgentRouter,
		string(contractx.SpecialistAddress),
		string(contractx.SpecialistDamage),
		string(contractx.SpecialistDummy),
	}

	seen := make(map[string]struct{}, len(agents))
	out := make([]string, 0, len(agents))
	for _, agent := range agents {
		m := c.OpenRouterFor(agent).Model
		if m == "" {
			continue
		}
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	return out
}

func (c Config) overrides(agent string) (string, float32) {
	switch agent {
	case contractx.AgentRouter:
		return c.RouterModel, c.RouterTemperature
	case string(contractx.SpecialistAddress):
		return c.AddressModel, c.AddressTemperature
	case string(contractx.SpecialistDamage):
		return c.DamageModel, c.DamageTemperature
	case string(contractx.SpecialistDummy):
		return c.DummyModel, c.DummyTemperature
	default:
		return "", -1
	}
}
