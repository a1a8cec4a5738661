package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnergyFlag(t *testing.T) {
	t.Run("unset flag means no reading", func(t *testing.T) {
		energy, err := energyFlag(false, 0)
		require.NoError(t, err)
		assert.Nil(t, energy)
	})

	t.Run("values pass through on the scorer's 1-10 scale", func(t *testing.T) {
		for _, v := range []int{1, 4, 7, 10} {
			energy, err := energyFlag(true, v)
			require.NoError(t, err)
			require.NotNil(t, energy)
			assert.Equal(t, v, *energy)
		}

		// A high reading must stay high: 8 sits in the scorer's deep-work
		// boost range, not the low-energy penalty range.
		energy, err := energyFlag(true, 8)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, *energy, 7)
	})

	t.Run("out-of-range values are rejected", func(t *testing.T) {
		for _, v := range []int{0, -1, 11} {
			_, err := energyFlag(true, v)
			assert.Error(t, err, "value %d", v)
		}
	})
}

func TestUrgencyMarker(t *testing.T) {
	assert.Equal(t, "[!!]", urgencyMarker("critical"))
	assert.Equal(t, "[! ]", urgencyMarker("high"))
	assert.Equal(t, "[~ ]", urgencyMarker("medium"))
	assert.Equal(t, "[  ]", urgencyMarker("low"))
}

func TestVersionString(t *testing.T) {
	assert.Contains(t, versionString(), "daybrief")
	assert.Contains(t, versionString(), Version)
}
