package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"resort-checkout/internal/infra/db"
	"resort-checkout/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

const startupTimeout = 30 * time.Second

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

// NewDB connects and brings the schema up to date before anything uses the pool.
func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(ctx, pool); err != nil {
		cleanup()
		return nil, err
	}
	logger.Info("database ready", "host", cfg.DB.Host, "db", cfg.DB.DBName)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}
