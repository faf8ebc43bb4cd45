//go:build unit

package sealbox_test

import (
	"strings"
	"testing"

	"resort-checkout/internal/pkg/sealbox"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBox(t *testing.T) {
	box, err := sealbox.NewFromHex(strings.Repeat("ab", sealbox.KeySize))
	require.NoError(t, err)

	t.Run("seal then open returns the payload", func(t *testing.T) {
		sealed, err := box.Seal([]byte(`{"card":"4111111111111111"}`))
		require.NoError(t, err)
		assert.NotContains(t, string(sealed), "4111111111111111")

		plain, err := box.Open(sealed)
		require.NoError(t, err)
		assert.Equal(t, `{"card":"4111111111111111"}`, string(plain))
	})

	t.Run("tampered payload is rejected", func(t *testing.T) {
		sealed, err := box.Seal([]byte("payload"))
		require.NoError(t, err)
		sealed[len(sealed)-1] ^= 0xff

		_, err = box.Open(sealed)
		assert.ErrorIs(t, err, sealbox.ErrOpenFailed)
	})

	t.Run("other key cannot open", func(t *testing.T) {
		sealed, err := box.Seal([]byte("payload"))
		require.NoError(t, err)

		other, err := sealbox.NewFromHex(strings.Repeat("cd", sealbox.KeySize))
		require.NoError(t, err)
		_, err = other.Open(sealed)
		assert.ErrorIs(t, err, sealbox.ErrOpenFailed)
	})

	t.Run("short payload", func(t *testing.T) {
		_, err := box.Open([]byte("abc"))
		assert.ErrorIs(t, err, sealbox.ErrPayloadTooShort)
	})

	t.Run("invalid key", func(t *testing.T) {
		_, err := sealbox.NewFromHex("zz")
		assert.ErrorIs(t, err, sealbox.ErrInvalidKey)

		_, err = sealbox.NewFromHex(strings.Repeat("ab", 16))
		assert.ErrorIs(t, err, sealbox.ErrInvalidKey)
	})
}
