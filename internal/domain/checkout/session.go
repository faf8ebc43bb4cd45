package checkout

import (
	"sync"
	"time"

	"resort-checkout/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrRequestInFlight = errs.New("a request of this kind is already in flight")
	ErrStaleResponse   = errs.New("response arrived after the checkout moved on")
)

// RequestKind identifies one class of remote call a session can have pending.
type RequestKind string

const (
	RequestAvailability RequestKind = "availability"
	RequestCatalog      RequestKind = "catalog"
	RequestSubmit       RequestKind = "submit"
)

// Ticket is handed out when a remote call starts and presented when its
// response comes back.
type Ticket struct {
	Kind       RequestKind
	Generation uint64
}

// Session is one checkout wizard. All reads and writes must happen between
// Lock and Unlock; remote calls are made with the lock released and their
// result is applied only when Finish reports the ticket is still current.
type Session struct {
	mu sync.Mutex

	ID        uuid.UUID
	ClientID  string
	CreatedAt time.Time
	UpdatedAt time.Time

	state      State
	generation uint64
	inFlight   map[RequestKind]uint64
}

func NewSession(id uuid.UUID, clientID string, now time.Time) *Session {
	return &Session{
		ID:        id,
		ClientID:  clientID,
		CreatedAt: now,
		UpdatedAt: now,
		state:     &SearchStage{},
		inFlight:  make(map[RequestKind]uint64),
	}
}

func (s *Session) Lock()   { s.mu.Lock() }
func (s *Session) Unlock() { s.mu.Unlock() }

func (s *Session) State() State {
	return s.state
}

func (s *Session) Stage() Stage {
	return s.state.Stage()
}

func (s *Session) Generation() uint64 {
	return s.generation
}

// Transition installs the next stage and invalidates every outstanding ticket.
func (s *Session) Transition(next State, now time.Time) {
	s.state = next
	s.generation++
	clear(s.inFlight)
	s.UpdatedAt = now
}

// Reset discards everything and returns to an empty search form.
func (s *Session) Reset(now time.Time) {
	s.Transition(&SearchStage{}, now)
}

func (s *Session) Touch(now time.Time) {
	s.UpdatedAt = now
}

func (s *Session) Begin(kind RequestKind) (Ticket, error) {
	if gen, ok := s.inFlight[kind]; ok && gen == s.generation {
		return Ticket{}, ErrRequestInFlight
	}
	s.inFlight[kind] = s.generation
	return Ticket{Kind: kind, Generation: s.generation}, nil
}

// Finish clears the in-flight flag and reports whether the response may be
// applied to the current stage.
func (s *Session) Finish(t Ticket) bool {
	if gen, ok := s.inFlight[t.Kind]; ok && gen == t.Generation {
		delete(s.inFlight, t.Kind)
	}
	return t.Generation == s.generation
}

func (s *Session) InFlight(kind RequestKind) bool {
	gen, ok := s.inFlight[kind]
	return ok && gen == s.generation
}

func (s *Session) IdleSince(now time.Time) time.Duration {
	return now.Sub(s.UpdatedAt)
}
