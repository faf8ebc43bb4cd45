//go:build unit

package checkout_test

import (
	"testing"
	"time"

	"resort-checkout/internal/domain/checkout"
	"resort-checkout/internal/testutil/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession(t *testing.T) {
	newSession := func() *checkout.Session {
		return checkout.NewSession(uuid.New(), "client-1", builder.Now)
	}

	t.Run("starts at an empty search form", func(t *testing.T) {
		s := newSession()
		assert.Equal(t, checkout.StageSearch, s.Stage())
		assert.Equal(t, uint64(0), s.Generation())
	})

	t.Run("duplicate request of the same kind is refused", func(t *testing.T) {
		s := newSession()
		_, err := s.Begin(checkout.RequestAvailability)
		require.NoError(t, err)

		_, err = s.Begin(checkout.RequestAvailability)
		assert.ErrorIs(t, err, checkout.ErrRequestInFlight)

		_, err = s.Begin(checkout.RequestCatalog)
		assert.NoError(t, err)
	})

	t.Run("finish on the same generation applies", func(t *testing.T) {
		s := newSession()
		ticket, err := s.Begin(checkout.RequestAvailability)
		require.NoError(t, err)
		assert.True(t, s.InFlight(checkout.RequestAvailability))

		assert.True(t, s.Finish(ticket))
		assert.False(t, s.InFlight(checkout.RequestAvailability))
	})

	t.Run("transition makes outstanding tickets stale", func(t *testing.T) {
		s := newSession()
		ticket, err := s.Begin(checkout.RequestAvailability)
		require.NoError(t, err)

		s.Reset(builder.Now.Add(time.Minute))
		assert.False(t, s.InFlight(checkout.RequestAvailability))
		assert.False(t, s.Finish(ticket))

		again, err := s.Begin(checkout.RequestAvailability)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), again.Generation)
	})

	t.Run("stale finish does not clear the fresh flag", func(t *testing.T) {
		s := newSession()
		old, _ := s.Begin(checkout.RequestSubmit)
		s.Transition(&checkout.SearchStage{}, builder.Now)
		_, err := s.Begin(checkout.RequestSubmit)
		require.NoError(t, err)

		assert.False(t, s.Finish(old))
		assert.True(t, s.InFlight(checkout.RequestSubmit))
	})

	t.Run("idle time follows the last touch", func(t *testing.T) {
		s := newSession()
		s.Touch(builder.Now.Add(10 * time.Minute))
		assert.Equal(t, 5*time.Minute, s.IdleSince(builder.Now.Add(15*time.Minute)))
	})
}
