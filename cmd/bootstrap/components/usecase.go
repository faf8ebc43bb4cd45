package components

import (
	"context"
	"log/slog"

	"resort-checkout/internal/pkg/clock"
	"resort-checkout/internal/pkg/config"
	"resort-checkout/internal/usecase/commands"
	"resort-checkout/internal/usecase/queries"
	"resort-checkout/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
	fx.Invoke(runSessionSweeper),
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewSettings,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCheckoutCommands,
		commands.NewSessionSweeper,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCheckoutQueries,
	),
)

func NewSettings(cfg config.Config) (shared.Settings, error) {
	loc, err := cfg.Checkout.Location()
	if err != nil {
		return shared.Settings{}, err
	}
	return shared.Settings{
		CapacitySlack: cfg.Checkout.CapacitySlack,
		MaxPartySize:  cfg.Checkout.MaxPartySize,
		SearchTermMax: cfg.Checkout.SearchTermMax,
		SubmitTimeout: cfg.BookingAPI.SubmitTimeout,
		SessionTTL:    cfg.Checkout.SessionTTL,
		Location:      loc,
	}, nil
}

// runSessionSweeper ties the idle-session sweep to the application lifetime.
func runSessionSweeper(lc fx.Lifecycle, sweeper *commands.SessionSweeper, cfg config.Config, logger *slog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				sweeper.Run(ctx, cfg.Checkout.SweepInterval)
			}()
			logger.Info("session sweeper started", "interval", cfg.Checkout.SweepInterval, "ttl", cfg.Checkout.SessionTTL)
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return nil
		},
	})
}
