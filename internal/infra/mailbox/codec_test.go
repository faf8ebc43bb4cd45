//go:build unit

package mailbox_test

import (
	"encoding/json"
	"testing"

	"resort-checkout/internal/domain/pricing"
	"resort-checkout/internal/infra/mailbox"
	"resort-checkout/internal/testutil/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodec(t *testing.T) {
	t.Run("round trip keeps the whole cart", func(t *testing.T) {
		cart := builder.NewCartBuilder().WithPayment(builder.ValidPayment()).Build()

		data, err := mailbox.Encode(cart, builder.Now)
		require.NoError(t, err)

		got, savedAt, err := mailbox.Decode(data)
		require.NoError(t, err)
		assert.True(t, savedAt.Equal(builder.Now))
		assert.Equal(t, cart.Breakdown(), got.Breakdown())
		assert.Equal(t, cart.Payment, got.Payment)
		assert.Equal(t, cart.CabinIDs(), got.CabinIDs())
		assert.Equal(t, cart.ServiceIDs(), got.ServiceIDs())
		assert.True(t, cart.Stay.CheckIn.Equal(got.Stay.CheckIn))
		assert.Equal(t, cart.Stay.Nights(), got.Stay.Nights())
	})

	t.Run("envelope carries the version", func(t *testing.T) {
		data, err := mailbox.Encode(builder.NewCartBuilder().Build(), builder.Now)
		require.NoError(t, err)

		var head map[string]any
		require.NoError(t, json.Unmarshal(data, &head))
		assert.EqualValues(t, mailbox.CurrentVersion, head["version"])
		assert.Contains(t, head, "saved_at")
		assert.Contains(t, head, "cart")
	})

	t.Run("unknown version is rejected", func(t *testing.T) {
		_, _, err := mailbox.Decode([]byte(`{"version":2,"saved_at":"2025-07-01T12:00:00Z","cart":{}}`))
		assert.ErrorIs(t, err, mailbox.ErrUnsupportedVersion)
	})

	t.Run("missing version is malformed", func(t *testing.T) {
		_, _, err := mailbox.Decode([]byte(`{"cart":{}}`))
		assert.ErrorIs(t, err, mailbox.ErrMalformedEnvelope)

		_, _, err = mailbox.Decode([]byte(`not json`))
		assert.ErrorIs(t, err, mailbox.ErrMalformedEnvelope)
	})

	t.Run("cabins survive unchanged", func(t *testing.T) {
		cart := builder.NewCartBuilder().Build()
		data, err := mailbox.Encode(cart, builder.Now)
		require.NoError(t, err)
		got, _, err := mailbox.Decode(data)
		require.NoError(t, err)

		opt := cmp.Comparer(func(a, b pricing.Money) bool { return a.Cents() == b.Cents() })
		if diff := cmp.Diff(cart.Cabins, got.Cabins, opt); diff != "" {
			t.Errorf("cabins mismatch (-want +got):\n%s", diff)
		}
	})
}
