package queries

import (
	"context"
	"log/slog"
	"slices"

	"resort-checkout/internal/domain/checkout"
	"resort-checkout/internal/domain/field"
	"resort-checkout/internal/pkg/clock"
	"resort-checkout/internal/usecase/readmodel"
	"resort-checkout/internal/usecase/shared"

	"github.com/google/uuid"
)

type CheckoutQueries interface {
	Get(ctx context.Context, id uuid.UUID) (*readmodel.CheckoutRM, error)
	ListServices(ctx context.Context, id uuid.UUID, term string) (*readmodel.ServiceCatalogRM, error)
}

type checkoutQueriesImpl struct {
	sessions shared.SessionRepository
	catalog  shared.ServiceCatalogGateway
	settings shared.Settings
	clock    clock.Clock
	logger   *slog.Logger
}

func NewCheckoutQueries(
	sessions shared.SessionRepository,
	catalog shared.ServiceCatalogGateway,
	settings shared.Settings,
	clock clock.Clock,
	logger *slog.Logger,
) CheckoutQueries {
	return &checkoutQueriesImpl{
		sessions: sessions,
		catalog:  catalog,
		settings: settings,
		clock:    clock,
		logger:   logger,
	}
}

func (q *checkoutQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*readmodel.CheckoutRM, error) {
	sess, err := shared.LoadSession(ctx, q.sessions, id)
	if err != nil {
		return nil, err
	}
	sess.Lock()
	defer sess.Unlock()
	return readmodel.FromSession(sess), nil
}

// ListServices returns the catalog filtered by name. The catalog is fetched
// from the booking API the first time it is needed and kept for the session;
// a failed fetch is not an error, the stage just reports the catalog as
// unavailable.
func (q *checkoutQueriesImpl) ListServices(ctx context.Context, id uuid.UUID, term string) (*readmodel.ServiceCatalogRM, error) {
	if err := field.SearchTerm(term, q.settings.SearchTermMax); err != nil {
		return nil, &shared.FieldError{Fields: map[string]string{"q": err.Error()}, Message: err.Error()}
	}

	sess, err := shared.LoadSession(ctx, q.sessions, id)
	if err != nil {
		return nil, err
	}

	sess.Lock()
	stage, ok := sess.State().(*checkout.ServiceStage)
	if !ok {
		sess.Unlock()
		return nil, shared.ErrMissingPrerequisite
	}
	if stage.CatalogLoaded {
		defer sess.Unlock()
		return catalogRM(stage, term), nil
	}
	ticket, err := sess.Begin(checkout.RequestCatalog)
	if err != nil {
		sess.Unlock()
		return nil, err
	}
	sess.Unlock()

	options, fetchErr := q.catalog.ListServices(ctx)

	sess.Lock()
	defer sess.Unlock()
	if !sess.Finish(ticket) {
		q.logger.Warn("discarding stale response", "checkout_id", sess.ID, "kind", string(ticket.Kind))
		return nil, checkout.ErrStaleResponse
	}
	if fetchErr != nil {
		q.logger.Warn("service catalog unavailable", "checkout_id", sess.ID, "error", fetchErr)
		stage.CatalogFailed()
	} else {
		stage.SetCatalog(options)
	}
	sess.Touch(q.clock.Now())
	return catalogRM(stage, term), nil
}

func catalogRM(stage *checkout.ServiceStage, term string) *readmodel.ServiceCatalogRM {
	filtered := checkout.FilterServices(stage.Catalog, term)
	return &readmodel.ServiceCatalogRM{
		Term: term,
		Services: readmodel.ServiceRMs(filtered, func(id int64) bool {
			return slices.Contains(stage.Selected, id)
		}),
		CatalogUnavailable: stage.CatalogUnavailable,
	}
}
