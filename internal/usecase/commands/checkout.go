package commands

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"resort-checkout/internal/domain/checkout"
	"resort-checkout/internal/infra"
	"resort-checkout/internal/pkg/clock"
	"resort-checkout/internal/pkg/errs"
	"resort-checkout/internal/usecase/readmodel"
	"resort-checkout/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrCheckoutFinished = errs.New("checkout already confirmed")
	ErrSubmissionFailed = errs.New("reservation submission failed")
)

const (
	msgInvalidStay      = "please review the highlighted search fields"
	msgSearchFailed     = "availability could not be checked, please try again"
	msgSubmissionFailed = "the reservation could not be submitted, please try again"
)

type CheckoutCommands interface {
	Start(ctx context.Context, clientID string) (*readmodel.CheckoutRM, error)
	Search(ctx context.Context, id uuid.UUID, in checkout.StayInput) (*readmodel.CheckoutRM, error)
	NewSearch(ctx context.Context, id uuid.UUID) (*readmodel.CheckoutRM, error)
	Back(ctx context.Context, id uuid.UUID) (*readmodel.CheckoutRM, error)
	ToggleCabin(ctx context.Context, id uuid.UUID, cabinID int64) (*readmodel.CheckoutRM, error)
	ProceedCabins(ctx context.Context, id uuid.UUID) (*readmodel.CheckoutRM, error)
	ToggleService(ctx context.Context, id uuid.UUID, serviceID int64) (*readmodel.CheckoutRM, error)
	ProceedServices(ctx context.Context, id uuid.UUID) (*readmodel.CheckoutRM, error)
	UpdatePayment(ctx context.Context, id uuid.UUID, in checkout.PaymentInput) (*readmodel.CheckoutRM, error)
	Confirm(ctx context.Context, id uuid.UUID, principal *shared.Principal) (*readmodel.CheckoutRM, error)
	Resume(ctx context.Context, clientID string, principal shared.Principal) (*readmodel.CheckoutRM, error)
}

type checkoutCommandsImpl struct {
	sessions     shared.SessionRepository
	availability shared.AvailabilityGateway
	reservations shared.ReservationGateway
	mailbox      shared.PendingCartMailbox
	settings     shared.Settings
	clock        clock.Clock
	logger       *slog.Logger

	// resuming holds the clients whose parked cart is being resubmitted.
	resumeMu sync.Mutex
	resuming map[string]struct{}
}

func NewCheckoutCommands(
	sessions shared.SessionRepository,
	availability shared.AvailabilityGateway,
	reservations shared.ReservationGateway,
	mailbox shared.PendingCartMailbox,
	settings shared.Settings,
	clock clock.Clock,
	logger *slog.Logger,
) CheckoutCommands {
	return &checkoutCommandsImpl{
		sessions:     sessions,
		availability: availability,
		reservations: reservations,
		mailbox:      mailbox,
		settings:     settings,
		clock:        clock,
		logger:       logger,
		resuming:     make(map[string]struct{}),
	}
}

func (c *checkoutCommandsImpl) now() time.Time {
	return c.clock.Now().In(c.settings.Location)
}

func (c *checkoutCommandsImpl) Start(ctx context.Context, clientID string) (*readmodel.CheckoutRM, error) {
	sess := checkout.NewSession(uuid.New(), clientID, c.now())
	if err := c.sessions.Create(ctx, sess); err != nil {
		return nil, errs.Wrap(err, "create checkout session")
	}
	c.logger.Info("checkout started", "checkout_id", sess.ID)

	sess.Lock()
	defer sess.Unlock()
	return readmodel.FromSession(sess), nil
}

// withSession runs fn under the session lock and returns the resulting view.
func (c *checkoutCommandsImpl) withSession(
	ctx context.Context,
	id uuid.UUID,
	fn func(sess *checkout.Session) error,
) (*readmodel.CheckoutRM, error) {
	sess, err := shared.LoadSession(ctx, c.sessions, id)
	if err != nil {
		return nil, err
	}
	sess.Lock()
	defer sess.Unlock()

	if err := fn(sess); err != nil {
		return nil, err
	}
	sess.Touch(c.now())
	return readmodel.FromSession(sess), nil
}

func (c *checkoutCommandsImpl) transition(sess *checkout.Session, next checkout.State) {
	from := sess.Stage()
	sess.Transition(next, c.now())
	c.logger.Info("checkout stage changed",
		"checkout_id", sess.ID,
		"from", from.String(),
		"to", next.Stage().String(),
		"generation", sess.Generation(),
	)
}

func (c *checkoutCommandsImpl) discardStale(sess *checkout.Session, kind checkout.RequestKind) error {
	c.logger.Warn("discarding stale response",
		"checkout_id", sess.ID,
		"kind", string(kind),
		"generation", sess.Generation(),
	)
	return checkout.ErrStaleResponse
}

// ================================================================================
// Stage 1: availability
// ================================================================================

func (c *checkoutCommandsImpl) Search(ctx context.Context, id uuid.UUID, in checkout.StayInput) (*readmodel.CheckoutRM, error) {
	sess, err := shared.LoadSession(ctx, c.sessions, id)
	if err != nil {
		return nil, err
	}

	sess.Lock()
	stage, ok := sess.State().(*checkout.SearchStage)
	if !ok {
		sess.Unlock()
		return nil, shared.ErrMissingPrerequisite
	}
	stage.Input = in
	req, fe := checkout.NewStayRequest(in, c.now(), c.settings.MaxPartySize)
	if !fe.Empty() {
		stage.Fail(fe, msgInvalidStay)
		sess.Unlock()
		return nil, &shared.FieldError{Fields: fe, Message: msgInvalidStay}
	}
	ticket, err := sess.Begin(checkout.RequestAvailability)
	if err != nil {
		sess.Unlock()
		return nil, err
	}
	stage.Fail(nil, "")
	sess.Unlock()

	result, callErr := c.availability.SearchAvailability(ctx, req)

	sess.Lock()
	defer sess.Unlock()
	if !sess.Finish(ticket) {
		return nil, c.discardStale(sess, ticket.Kind)
	}
	if callErr != nil {
		return nil, c.searchFailed(sess, stage, callErr)
	}

	echoed := result.Request
	if echoed.PartySize == 0 {
		echoed = req
	}
	c.transition(sess, stage.Results(echoed, result.Candidates, c.settings.CapacitySlack))
	return readmodel.FromSession(sess), nil
}

func (c *checkoutCommandsImpl) searchFailed(sess *checkout.Session, stage *checkout.SearchStage, err error) error {
	var fieldErr *shared.FieldError
	var remoteErr *shared.RemoteError
	switch {
	case errors.As(err, &fieldErr):
		stage.Fail(fieldErr.Fields, fieldErr.Message)
	case errors.As(err, &remoteErr):
		stage.Fail(nil, remoteErr.Message)
	default:
		stage.Fail(nil, msgSearchFailed)
	}
	sess.Touch(c.now())
	c.logger.Warn("availability lookup failed", "checkout_id", sess.ID, "error", err)
	return err
}

func (c *checkoutCommandsImpl) NewSearch(ctx context.Context, id uuid.UUID) (*readmodel.CheckoutRM, error) {
	return c.withSession(ctx, id, func(sess *checkout.Session) error {
		if sess.InFlight(checkout.RequestSubmit) {
			return checkout.ErrRequestInFlight
		}
		c.transition(sess, &checkout.SearchStage{})
		return nil
	})
}

// Back returns to the previous stage with the inputs it had captured.
func (c *checkoutCommandsImpl) Back(ctx context.Context, id uuid.UUID) (*readmodel.CheckoutRM, error) {
	return c.withSession(ctx, id, func(sess *checkout.Session) error {
		var prev checkout.State
		switch st := sess.State().(type) {
		case *checkout.CabinStage:
			prev = st.Back()
		case *checkout.ServiceStage:
			prev = st.Back()
		case *checkout.PaymentStage:
			if st.Status == checkout.PaymentSubmitting {
				return checkout.ErrRequestInFlight
			}
			prev = st.Back()
		default:
			return shared.ErrMissingPrerequisite
		}
		c.transition(sess, prev)
		return nil
	})
}

// ================================================================================
// Stage 2: cabins
// ================================================================================

func (c *checkoutCommandsImpl) ToggleCabin(ctx context.Context, id uuid.UUID, cabinID int64) (*readmodel.CheckoutRM, error) {
	return c.withSession(ctx, id, func(sess *checkout.Session) error {
		stage, ok := sess.State().(*checkout.CabinStage)
		if !ok {
			return shared.ErrMissingPrerequisite
		}
		return stage.Toggle(cabinID)
	})
}

func (c *checkoutCommandsImpl) ProceedCabins(ctx context.Context, id uuid.UUID) (*readmodel.CheckoutRM, error) {
	return c.withSession(ctx, id, func(sess *checkout.Session) error {
		stage, ok := sess.State().(*checkout.CabinStage)
		if !ok {
			return shared.ErrMissingPrerequisite
		}
		next, err := stage.Proceed()
		if err != nil {
			return err
		}
		c.transition(sess, next)
		return nil
	})
}

// ================================================================================
// Stage 3: services
// ================================================================================

func (c *checkoutCommandsImpl) ToggleService(ctx context.Context, id uuid.UUID, serviceID int64) (*readmodel.CheckoutRM, error) {
	return c.withSession(ctx, id, func(sess *checkout.Session) error {
		stage, ok := sess.State().(*checkout.ServiceStage)
		if !ok {
			return shared.ErrMissingPrerequisite
		}
		return stage.Toggle(serviceID)
	})
}

func (c *checkoutCommandsImpl) ProceedServices(ctx context.Context, id uuid.UUID) (*readmodel.CheckoutRM, error) {
	return c.withSession(ctx, id, func(sess *checkout.Session) error {
		stage, ok := sess.State().(*checkout.ServiceStage)
		if !ok {
			return shared.ErrMissingPrerequisite
		}
		c.transition(sess, stage.Proceed())
		return nil
	})
}

// ================================================================================
// Stage 4: payment
// ================================================================================

func (c *checkoutCommandsImpl) UpdatePayment(ctx context.Context, id uuid.UUID, in checkout.PaymentInput) (*readmodel.CheckoutRM, error) {
	return c.withSession(ctx, id, func(sess *checkout.Session) error {
		stage, ok := sess.State().(*checkout.PaymentStage)
		if !ok {
			return shared.ErrMissingPrerequisite
		}
		if stage.Status == checkout.PaymentSubmitting {
			return checkout.ErrRequestInFlight
		}
		stage.Edit(checkout.NewPaymentDraft(in))
		return nil
	})
}

// Confirm validates the draft, then either submits it (signed in) or parks the
// cart in the client's mailbox until the user signs in.
func (c *checkoutCommandsImpl) Confirm(ctx context.Context, id uuid.UUID, principal *shared.Principal) (*readmodel.CheckoutRM, error) {
	sess, err := shared.LoadSession(ctx, c.sessions, id)
	if err != nil {
		return nil, err
	}

	sess.Lock()
	stage, ok := sess.State().(*checkout.PaymentStage)
	if !ok {
		defer sess.Unlock()
		if sess.Stage() == checkout.StageConfirmed {
			return nil, ErrCheckoutFinished
		}
		return nil, shared.ErrMissingPrerequisite
	}
	if stage.Status == checkout.PaymentSubmitting {
		sess.Unlock()
		return nil, checkout.ErrRequestInFlight
	}
	if err := stage.Validate(c.now()); err != nil {
		sess.Touch(c.now())
		fe := &shared.FieldError{Fields: stage.FieldErrors, Message: stage.Error}
		sess.Unlock()
		return nil, errs.Mark(fe, err)
	}

	if principal == nil {
		defer sess.Unlock()
		if err := c.mailbox.Park(ctx, sess.ClientID, stage.Cart); err != nil {
			return nil, errs.Mark(err, shared.ErrMailboxFailed)
		}
		c.transition(sess, stage.Park())
		return readmodel.FromSession(sess), nil
	}

	return c.submit(ctx, sess, stage, *principal)
}

// Resume rehydrates the cart parked for clientID and submits it right away.
// Only one resume per client runs at a time; the mailbox entry is purged once
// the submission succeeds, so a later resume finds nothing parked.
func (c *checkoutCommandsImpl) Resume(ctx context.Context, clientID string, principal shared.Principal) (*readmodel.CheckoutRM, error) {
	if !c.claimResume(clientID) {
		return nil, checkout.ErrRequestInFlight
	}
	defer c.releaseResume(clientID)

	cart, err := c.mailbox.Load(ctx, clientID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, shared.ErrNothingParked
		}
		return nil, errs.Mark(err, shared.ErrMailboxFailed)
	}

	sess, err := c.resumeTarget(ctx, clientID)
	if err != nil {
		return nil, err
	}

	sess.Lock()
	if sess.InFlight(checkout.RequestSubmit) {
		sess.Unlock()
		return nil, checkout.ErrRequestInFlight
	}
	c.transition(sess, checkout.Rehydrate(*cart, c.settings.CapacitySlack))
	stage := sess.State().(*checkout.PaymentStage)
	c.logger.Info("pending reservation resumed", "checkout_id", sess.ID, "user_id", principal.UserID)

	return c.submit(ctx, sess, stage, principal)
}

func (c *checkoutCommandsImpl) claimResume(clientID string) bool {
	c.resumeMu.Lock()
	defer c.resumeMu.Unlock()
	if _, busy := c.resuming[clientID]; busy {
		return false
	}
	c.resuming[clientID] = struct{}{}
	return true
}

func (c *checkoutCommandsImpl) releaseResume(clientID string) {
	c.resumeMu.Lock()
	defer c.resumeMu.Unlock()
	delete(c.resuming, clientID)
}

// resumeTarget reuses the client's parked session when it still exists.
func (c *checkoutCommandsImpl) resumeTarget(ctx context.Context, clientID string) (*checkout.Session, error) {
	existing, err := c.sessions.FindByClient(ctx, clientID)
	if err != nil {
		return nil, errs.Wrap(err, "find client sessions")
	}
	for _, sess := range existing {
		sess.Lock()
		parked := sess.Stage() == checkout.StageAwaitingAuth
		sess.Unlock()
		if parked {
			return sess, nil
		}
	}

	sess := checkout.NewSession(uuid.New(), clientID, c.now())
	if err := c.sessions.Create(ctx, sess); err != nil {
		return nil, errs.Wrap(err, "create checkout session")
	}
	return sess, nil
}

// submit must be called with the session locked; it releases the lock while
// the booking API call is in flight and returns with the lock released.
func (c *checkoutCommandsImpl) submit(
	ctx context.Context,
	sess *checkout.Session,
	stage *checkout.PaymentStage,
	principal shared.Principal,
) (*readmodel.CheckoutRM, error) {
	ticket, err := sess.Begin(checkout.RequestSubmit)
	if err != nil {
		sess.Unlock()
		return nil, err
	}
	stage.Submitting()
	cart := stage.Cart.Clone()
	clientID := sess.ClientID
	sess.Unlock()

	// The submission outlives the request that started it.
	submitCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.settings.SubmitTimeout)
	defer cancel()
	receipt, callErr := c.reservations.CreateReservation(submitCtx, principal.Token, cart)

	if callErr == nil {
		if err := c.mailbox.Purge(submitCtx, clientID); err != nil {
			c.logger.Warn("failed to purge pending reservation", "checkout_id", sess.ID, "error", err)
		}
	}

	sess.Lock()
	defer sess.Unlock()
	if !sess.Finish(ticket) {
		return nil, c.discardStale(sess, ticket.Kind)
	}
	if callErr != nil {
		var remoteErr *shared.RemoteError
		if errors.As(callErr, &remoteErr) {
			stage.Rejected(remoteErr.Message)
		} else {
			stage.Rejected(msgSubmissionFailed)
		}
		sess.Touch(c.now())
		c.logger.Warn("reservation submission failed", "checkout_id", sess.ID, "error", callErr)
		return nil, errs.Mark(callErr, ErrSubmissionFailed)
	}

	c.transition(sess, stage.Confirmed(*receipt))
	c.logger.Info("reservation confirmed",
		"checkout_id", sess.ID,
		"reservation_id", receipt.ReservationID,
		"user_id", principal.UserID,
	)
	return readmodel.FromSession(sess), nil
}
