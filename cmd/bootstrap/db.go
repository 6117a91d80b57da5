package bootstrap

import (
	"context"
	"log/slog"

	"seating-service/internal/infra/db"
	"seating-service/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(logSeatingDefaults),
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

func logSeatingDefaults(cfg config.Config, logger *slog.Logger) {
	logger.Info("seating defaults",
		"base_price", cfg.Pricing.DefaultBasePrice,
		"seats_per_row", cfg.Pricing.DefaultSeatsPerRow,
		"row_adjustment", cfg.Pricing.RowAdjustment,
		"price_floor", cfg.Pricing.PriceFloor,
		"section_capacity", cfg.Layout.DefaultSectionCapacity,
		"fallback_capacity", cfg.Layout.FallbackCapacity,
	)
}

// NewDB opens the pool eagerly so a bad DSN fails the app before the sweep runs.
func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}
	logger.Info("database connected", "host", cfg.DB.Host, "database", cfg.DB.DBName, "max_conns", pool.Config().MaxConns)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return pool, nil
}
