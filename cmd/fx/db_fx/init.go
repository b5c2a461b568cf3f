package db_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"travelplanner/internal/config"
	"travelplanner/internal/infra"
)

var Module = fx.Provide(
	provideDB)

// provideDB yields a nil *gorm.DB when Supabase is not configured.
func provideDB(cfg config.Config, logger *zap.Logger, lc fx.Lifecycle) (*gorm.DB, error) {
	db, err := infra.InitPostgresql(cfg.SupabaseDBURL, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db, logger)
			return nil
		},
	})
	return db, nil
}
