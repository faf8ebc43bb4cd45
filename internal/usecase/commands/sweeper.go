package commands

import (
	"context"
	"log/slog"
	"time"

	"resort-checkout/internal/pkg/clock"
	"resort-checkout/internal/usecase/shared"
)

// SessionSweeper drops checkout sessions idle for longer than the TTL.
type SessionSweeper struct {
	sessions shared.SessionRepository
	ttl      time.Duration
	clock    clock.Clock
	logger   *slog.Logger
}

func NewSessionSweeper(sessions shared.SessionRepository, settings shared.Settings, clock clock.Clock, logger *slog.Logger) *SessionSweeper {
	return &SessionSweeper{
		sessions: sessions,
		ttl:      settings.SessionTTL,
		clock:    clock,
		logger:   logger,
	}
}

func (s *SessionSweeper) SweepOnce(ctx context.Context) (int, error) {
	removed, err := s.sessions.DeleteIdle(ctx, s.clock.Now().Add(-s.ttl))
	if err != nil {
		return 0, err
	}
	if removed > 0 {
		s.logger.Info("expired checkout sessions removed", "count", removed)
	}
	return removed, nil
}

// Run sweeps every interval until ctx is cancelled.
func (s *SessionSweeper) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.SweepOnce(ctx); err != nil {
				s.logger.Error("session sweep failed", "error", err)
			}
		}
	}
}
