package postgres

import (
	"context"
	"log/slog"

	"hyperlocal/config"
	"hyperlocal/internal/domain/lifecycle"
	"hyperlocal/internal/errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const dbStatsName = "hyperlocal"

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config   *config.Config
	Logger   *slog.Logger
	Registry *prometheus.Registry
}

// New opens the shared PostgreSQL handle used by the recipient directory,
// notification store and help-request store. Pool statistics are exported on
// the metrics registry for as long as the handle is open.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "open postgres")
	}
	// Every write is a single statement; the stage advance relies on its own
	// WHERE clause for atomicity.
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newQueryLogger(params.Logger, params.Config.Env.Debug),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "postgres sql.DB")
	}

	poolStats := collectors.NewDBStatsCollector(sqlDB, dbStatsName)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "ping postgres")
			}
			if err := params.Registry.Register(poolStats); err != nil {
				return errors.Wrap(err, "register postgres pool stats")
			}

			params.Logger.Info("[Postgres] Connected",
				slog.Int("max_open_conns", sqlDB.Stats().MaxOpenConnections),
			)

			return nil
		},
		OnStop: func(context.Context) error {
			params.Registry.Unregister(poolStats)

			return errors.WithStack(sqlDB.Close())
		},
	})

	return db, nil
}
