// Package sessionstore keeps live checkout sessions in process memory.
package sessionstore

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"resort-checkout/internal/domain/checkout"
	"resort-checkout/internal/infra"

	"github.com/google/uuid"
)

type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*checkout.Session
	logger   *slog.Logger
}

func NewMemoryStore(logger *slog.Logger) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[uuid.UUID]*checkout.Session),
		logger:   logger,
	}
}

func (m *MemoryStore) Create(_ context.Context, s *checkout.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.sessions[s.ID]; exists {
		return infra.WrapRepoErr(m.logger, infra.KindDuplicateKey, "checkout session already exists", nil)
	}
	m.sessions[s.ID] = s
	return nil
}

func (m *MemoryStore) Get(_ context.Context, id uuid.UUID) (*checkout.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, infra.WrapRepoErr(m.logger, infra.KindNotFound, "checkout session not found", nil)
	}
	return s, nil
}

// FindByClient returns the client's sessions, most recently created first.
func (m *MemoryStore) FindByClient(_ context.Context, clientID string) ([]*checkout.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*checkout.Session
	for _, s := range m.sessions {
		if s.ClientID == clientID {
			out = append(out, s)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (m *MemoryStore) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return infra.WrapRepoErr(m.logger, infra.KindNotFound, "checkout session not found", nil)
	}
	delete(m.sessions, id)
	return nil
}

// DeleteIdle removes sessions last touched before cutoff. Sessions with a
// submission in flight are kept.
func (m *MemoryStore) DeleteIdle(_ context.Context, cutoff time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	removed := 0
	for id, s := range m.sessions {
		s.Lock()
		expired := s.UpdatedAt.Before(cutoff) && !s.InFlight(checkout.RequestSubmit)
		s.Unlock()
		if expired {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed, nil
}

func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

func sortNewestFirst(sessions []*checkout.Session) {
	slices.SortFunc(sessions, func(a, b *checkout.Session) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
}
