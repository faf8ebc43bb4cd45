package components

import (
	"resort-checkout/internal/infra/mailbox"
	"resort-checkout/internal/infra/sessionstore"
	"resort-checkout/internal/usecase/shared"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			sessionstore.NewMemoryStore,
			fx.As(new(shared.SessionRepository)),
		),
		fx.Annotate(
			mailbox.NewPostgresMailbox,
			fx.As(new(shared.PendingCartMailbox)),
		),
	),
)
