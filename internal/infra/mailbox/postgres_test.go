//go:build e2e

package mailbox_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"resort-checkout/internal/infra"
	"resort-checkout/internal/infra/mailbox"
	"resort-checkout/internal/pkg/clock"
	"resort-checkout/internal/pkg/sealbox"
	"resort-checkout/internal/testutil/builder"
	"resort-checkout/internal/testutil/pgtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresMailbox(t *testing.T) {
	ctx := context.Background()
	pool, _ := pgtest.NewDatabase(t)

	var key [sealbox.KeySize]byte
	copy(key[:], "0123456789abcdef0123456789abcdef")
	clk := clock.NewMockClock(builder.Now)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mb := mailbox.NewPostgresMailbox(pool, sealbox.New(key), clk, logger)

	t.Run("empty slot", func(t *testing.T) {
		_, err := mb.Load(ctx, "nobody")
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("park, load and purge", func(t *testing.T) {
		cart := builder.NewCartBuilder().WithPayment(builder.ValidPayment()).Build()
		require.NoError(t, mb.Park(ctx, "client-1", cart))

		got, err := mb.Load(ctx, "client-1")
		require.NoError(t, err)
		assert.Equal(t, cart.Payment, got.Payment)
		assert.Equal(t, cart.Breakdown(), got.Breakdown())

		require.NoError(t, mb.Purge(ctx, "client-1"))
		_, err = mb.Load(ctx, "client-1")
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("park overwrites the previous entry", func(t *testing.T) {
		require.NoError(t, mb.Park(ctx, "client-2", builder.NewCartBuilder().Build()))
		clk.Add(time.Minute)
		require.NoError(t, mb.Park(ctx, "client-2", builder.NewCartBuilder().WithoutServices().Build()))

		got, err := mb.Load(ctx, "client-2")
		require.NoError(t, err)
		assert.Empty(t, got.Services)
	})

	t.Run("card data is not stored in clear", func(t *testing.T) {
		cart := builder.NewCartBuilder().WithPayment(builder.ValidPayment()).Build()
		require.NoError(t, mb.Park(ctx, "client-3", cart))

		var payload []byte
		err := pool.QueryRow(ctx, `SELECT payload FROM pending_carts WHERE client_id = $1`, "client-3").Scan(&payload)
		require.NoError(t, err)
		assert.NotContains(t, string(payload), "4111111111111111")
	})

	t.Run("entry sealed with another key is corrupt", func(t *testing.T) {
		var other [sealbox.KeySize]byte
		copy(other[:], "ffffffffffffffffffffffffffffffff")
		foreign := mailbox.NewPostgresMailbox(pool, sealbox.New(other), clk, logger)
		require.NoError(t, foreign.Park(ctx, "client-4", builder.NewCartBuilder().Build()))

		_, err := mb.Load(ctx, "client-4")
		assert.True(t, infra.IsKind(err, infra.KindCorrupt))
	})
}
