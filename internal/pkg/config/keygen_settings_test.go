//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyGenSettings_Validate(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		settings := DefaultKeyGenSettings()
		require.NoError(t, settings.Validate())
		assert.Equal(t, int64(100), settings.PrimeMin)
		assert.Equal(t, int64(1000), settings.PrimeMax)
		assert.Equal(t, int64(65537), settings.PublicExponent)
	})

	t.Run("ZeroValue", func(t *testing.T) {
		settings := &KeyGenSettings{}
		assert.Error(t, settings.Validate())
	})

	t.Run("InvertedRange", func(t *testing.T) {
		settings := DefaultKeyGenSettings()
		settings.PrimeMin = 1000
		settings.PrimeMax = 100
		assert.Error(t, settings.Validate())
	})

	t.Run("EvenExponent", func(t *testing.T) {
		settings := DefaultKeyGenSettings()
		settings.PublicExponent = 65536
		assert.Error(t, settings.Validate())
	})

	t.Run("RangeOverflowsModulusBound", func(t *testing.T) {
		settings := DefaultKeyGenSettings()
		settings.PrimeMax = 1 << 32
		assert.Error(t, settings.Validate())
	})
}
