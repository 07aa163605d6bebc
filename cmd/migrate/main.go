// Command migrate creates or updates the database schema and exits.
package main

import (
	"context"
	"log/slog"

	"dnotes/config"
	logs "dnotes/internal/infra/log"
	"dnotes/internal/infra/persistence/database"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

type migrateParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	DB     *gorm.DB
	Logger *slog.Logger
}

func main() {
	fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			database.New,
		),
		fx.Invoke(migrate),
	).Run()
}

func migrate(params migrateParams) {
	params.Append(fx.Hook{
		// Runs after database.New has pinged the server.
		OnStart: func(ctx context.Context) error {
			if err := database.Migrate(ctx, params.DB); err != nil {
				return err
			}
			params.Logger.Info("Schema migrated")

			return params.Shutdown()
		},
	})
}
