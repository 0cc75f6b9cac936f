package db_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"tripplanner/internal/config"
	"tripplanner/internal/infra"
	"tripplanner/internal/repositories"
)

var Module = fx.Provide(provideDraftRepository)

// Without POSTGRES_URL drafts live in memory for the life of the process.
func provideDraftRepository(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) (repositories.DraftRepository, error) {
	if cfg.PostgresURL == "" {
		log.Info("POSTGRES_URL not set, keeping drafts in memory")
		return repositories.NewMemoryDraftRepository(), nil
	}

	db, err := infra.InitPostgresql(cfg.PostgresURL, log)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db, log)
			return nil
		},
	})
	return repositories.NewDraftRepository(db), nil
}
