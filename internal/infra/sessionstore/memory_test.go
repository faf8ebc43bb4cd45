//go:build unit

package sessionstore_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"resort-checkout/internal/domain/checkout"
	"resort-checkout/internal/infra"
	"resort-checkout/internal/infra/sessionstore"
	"resort-checkout/internal/testutil/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore() *sessionstore.MemoryStore {
	return sessionstore.NewMemoryStore(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("create and get", func(t *testing.T) {
		store := newStore()
		s := checkout.NewSession(uuid.New(), "client-1", builder.Now)
		require.NoError(t, store.Create(ctx, s))

		got, err := store.Get(ctx, s.ID)
		require.NoError(t, err)
		assert.Same(t, s, got)

		err = store.Create(ctx, s)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})

	t.Run("missing session", func(t *testing.T) {
		store := newStore()
		_, err := store.Get(ctx, uuid.New())
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.True(t, infra.IsKind(store.Delete(ctx, uuid.New()), infra.KindNotFound))
	})

	t.Run("find by client newest first", func(t *testing.T) {
		store := newStore()
		older := checkout.NewSession(uuid.New(), "client-1", builder.Now)
		newer := checkout.NewSession(uuid.New(), "client-1", builder.Now.Add(time.Minute))
		other := checkout.NewSession(uuid.New(), "client-2", builder.Now)
		for _, s := range []*checkout.Session{older, newer, other} {
			require.NoError(t, store.Create(ctx, s))
		}

		got, err := store.FindByClient(ctx, "client-1")
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Same(t, newer, got[0])
		assert.Same(t, older, got[1])
	})

	t.Run("delete idle keeps active and submitting sessions", func(t *testing.T) {
		store := newStore()
		idle := checkout.NewSession(uuid.New(), "a", builder.Now)
		active := checkout.NewSession(uuid.New(), "b", builder.Now)
		active.Touch(builder.Now.Add(90 * time.Minute))
		submitting := checkout.NewSession(uuid.New(), "c", builder.Now)
		_, err := submitting.Begin(checkout.RequestSubmit)
		require.NoError(t, err)
		for _, s := range []*checkout.Session{idle, active, submitting} {
			require.NoError(t, store.Create(ctx, s))
		}

		removed, err := store.DeleteIdle(ctx, builder.Now.Add(time.Hour))
		require.NoError(t, err)
		assert.Equal(t, 1, removed)
		assert.Equal(t, 2, store.Len())

		_, err = store.Get(ctx, idle.ID)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
