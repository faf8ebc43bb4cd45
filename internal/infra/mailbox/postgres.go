// Package mailbox parks validated carts while the user takes the sign-in
// detour. There is one slot per client id; entries are sealed at rest since
// they carry the payment draft.
package mailbox

import (
	"context"
	"errors"
	"log/slog"

	"resort-checkout/internal/domain/checkout"
	"resort-checkout/internal/infra"
	"resort-checkout/internal/pkg/clock"
	"resort-checkout/internal/pkg/sealbox"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SlotPendingReservation is the only slot the checkout uses.
const SlotPendingReservation = "pendingReservation"

const (
	upsertSQL = `
INSERT INTO pending_carts (client_id, slot, version, payload, saved_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $5)
ON CONFLICT (client_id, slot)
DO UPDATE SET version = EXCLUDED.version, payload = EXCLUDED.payload,
              saved_at = EXCLUDED.saved_at, updated_at = EXCLUDED.updated_at`

	selectSQL = `SELECT payload FROM pending_carts WHERE client_id = $1 AND slot = $2`

	deleteSQL = `DELETE FROM pending_carts WHERE client_id = $1 AND slot = $2`
)

type PostgresMailbox struct {
	pool   *pgxpool.Pool
	box    *sealbox.Box
	clock  clock.Clock
	logger *slog.Logger
}

func NewPostgresMailbox(pool *pgxpool.Pool, box *sealbox.Box, clock clock.Clock, logger *slog.Logger) *PostgresMailbox {
	return &PostgresMailbox{pool: pool, box: box, clock: clock, logger: logger}
}

// Park overwrites whatever the client had parked before.
func (m *PostgresMailbox) Park(ctx context.Context, clientID string, cart checkout.Cart) error {
	now := m.clock.Now()
	plain, err := Encode(cart, now)
	if err != nil {
		return infra.WrapRepoErr(m.logger, infra.KindCorrupt, "failed to encode pending reservation", err)
	}
	sealed, err := m.box.Seal(plain)
	if err != nil {
		return infra.WrapRepoErr(m.logger, infra.KindCorrupt, "failed to seal pending reservation", err)
	}

	if _, err := m.pool.Exec(ctx, upsertSQL, clientID, SlotPendingReservation, CurrentVersion, sealed, now); err != nil {
		return infra.WrapRepoErr(m.logger, infra.KindDBFailure, "failed to park pending reservation", err)
	}
	return nil
}

func (m *PostgresMailbox) Load(ctx context.Context, clientID string) (*checkout.Cart, error) {
	var sealed []byte
	err := m.pool.QueryRow(ctx, selectSQL, clientID, SlotPendingReservation).Scan(&sealed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(m.logger, infra.KindNotFound, "no pending reservation", nil)
		}
		return nil, infra.WrapRepoErr(m.logger, infra.KindDBFailure, "failed to load pending reservation", err)
	}

	plain, err := m.box.Open(sealed)
	if err != nil {
		return nil, infra.WrapRepoErr(m.logger, infra.KindCorrupt, "failed to open pending reservation", err)
	}
	cart, _, err := Decode(plain)
	if err != nil {
		return nil, infra.WrapRepoErr(m.logger, infra.KindCorrupt, "failed to decode pending reservation", err)
	}
	return &cart, nil
}

func (m *PostgresMailbox) Purge(ctx context.Context, clientID string) error {
	if _, err := m.pool.Exec(ctx, deleteSQL, clientID, SlotPendingReservation); err != nil {
		return infra.WrapRepoErr(m.logger, infra.KindDBFailure, "failed to purge pending reservation", err)
	}
	return nil
}
