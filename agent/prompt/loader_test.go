package prompt

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	contractx "github.com/tanpawarit/chative-specialists/agent/contract"
)

func TestLoadPromptSet(t *testing.T) {
	t.Parallel()

	set := LoadPromptSet()
	assert.Contains(t, set.Router, "address_specialist")
	assert.Contains(t, set.Address, "geocoding")
	assert.Contains(t, set.Damage, "cost_database")
	assert.Contains(t, set.Dummy, "text_reverser")
	assert.Equal(t, set.Router, LoadPromptSet().Router)
}

func TestFor(t *testing.T) {
	t.Parallel()

	set := LoadPromptSet()
	for _, name := range []contractx.SpecialistName{
		contractx.SpecialistAddress,
		contractx.SpecialistDamage,
		contractx.SpecialistDummy,
	} {
		got, err := set.For(name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, got, name)
	}

	_, err := set.For("unknown_specialist")
	assert.True(t, errors.Is(err, contractx.ErrPromptMissing))

	_, err = PromptSet{}.For(contractx.SpecialistDummy)
	assert.True(t, errors.Is(err, contractx.ErrPromptMissing))
}
