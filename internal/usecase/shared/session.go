package shared

import (
	"context"

	"resort-checkout/internal/domain/checkout"
	"resort-checkout/internal/infra"
	"resort-checkout/internal/pkg/errs"

	"github.com/google/uuid"
)

// LoadSession resolves a checkout id, mapping a missing session to
// ErrCheckoutNotFound.
func LoadSession(ctx context.Context, repo SessionRepository, id uuid.UUID) (*checkout.Session, error) {
	sess, err := repo.Get(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCheckoutNotFound
		}
		return nil, errs.Wrap(err, "load checkout session")
	}
	return sess, nil
}
