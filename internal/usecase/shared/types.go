package shared

import (
	"context"
	"fmt"
	"time"

	"resort-checkout/internal/domain/checkout"
	"resort-checkout/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrCheckoutNotFound    = errs.New("checkout not found")
	ErrMissingPrerequisite = errs.New("checkout has not reached the required stage")
	ErrNothingParked       = errs.New("no pending reservation for this client")
	ErrRemoteUnavailable   = errs.New("booking service unavailable")
	ErrRemoteTimeout       = errs.New("booking service timed out")
	ErrMailboxFailed       = errs.New("pending reservation storage failed")
)

// Principal is the authenticated user behind a request.
type Principal struct {
	UserID uuid.UUID
	Token  string
}

// FieldError carries a field-by-field rejection, either from local
// validation or echoed by the booking API.
type FieldError struct {
	Fields  map[string]string
	Message string
}

func (e *FieldError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%d invalid field(s)", len(e.Fields))
}

// RemoteError is a business rule rejection returned by the booking API. The
// message is meant to be shown to the user verbatim.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	return e.Message
}

type AvailabilityResult struct {
	Request    checkout.StayRequest
	Candidates []checkout.CabinCandidate
}

type AvailabilityGateway interface {
	SearchAvailability(ctx context.Context, req checkout.StayRequest) (*AvailabilityResult, error)
}

type ServiceCatalogGateway interface {
	ListServices(ctx context.Context) ([]checkout.ServiceOption, error)
}

type ReservationGateway interface {
	CreateReservation(ctx context.Context, token string, cart checkout.Cart) (*checkout.Receipt, error)
}

// PendingCartMailbox keeps at most one parked cart per client id.
type PendingCartMailbox interface {
	Park(ctx context.Context, clientID string, cart checkout.Cart) error
	Load(ctx context.Context, clientID string) (*checkout.Cart, error)
	Purge(ctx context.Context, clientID string) error
}

type SessionRepository interface {
	Create(ctx context.Context, s *checkout.Session) error
	Get(ctx context.Context, id uuid.UUID) (*checkout.Session, error)
	FindByClient(ctx context.Context, clientID string) ([]*checkout.Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteIdle(ctx context.Context, cutoff time.Time) (int, error)
}

// Settings are the checkout knobs shared by commands and queries.
type Settings struct {
	CapacitySlack int
	MaxPartySize  int
	SearchTermMax int
	SubmitTimeout time.Duration
	SessionTTL    time.Duration
	Location      *time.Location
}
