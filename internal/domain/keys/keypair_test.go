//go:build unit
// +build unit

package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rsa_cipher_service/internal/domain/cipher"
)

func TestNewKeyPair(t *testing.T) {
	t.Run("ValidKeyMaterial", func(t *testing.T) {
		keyPair, err := NewKeyPair(17, 2753, 3233)
		require.NoError(t, err)

		e, n := keyPair.Public()
		assert.Equal(t, int64(17), e)
		assert.Equal(t, int64(3233), n)

		d, n := keyPair.Private()
		assert.Equal(t, int64(2753), d)
		assert.Equal(t, int64(3233), n)
	})

	t.Run("ModulusTooSmall", func(t *testing.T) {
		_, err := NewKeyPair(17, 2753, cipher.MinModulus-1)
		assert.Error(t, err)
	})

	t.Run("ModulusAtBounds", func(t *testing.T) {
		_, err := NewKeyPair(17, 2753, cipher.MinModulus)
		assert.NoError(t, err)

		_, err = NewKeyPair(17, 2753, cipher.MaxModulus)
		assert.NoError(t, err)

		_, err = NewKeyPair(17, 2753, cipher.MaxModulus+1)
		assert.Error(t, err)
	})

	t.Run("NonPositiveExponents", func(t *testing.T) {
		_, err := NewKeyPair(0, 2753, 3233)
		assert.Error(t, err)

		_, err = NewKeyPair(17, -1, 3233)
		assert.Error(t, err)
	})
}
