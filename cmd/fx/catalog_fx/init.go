package catalog_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"tripplanner/internal/config"
	"tripplanner/internal/services"
	mem "tripplanner/pkg/memcache"
)

var Module = fx.Provide(provideCatalogService)

func provideCatalogService(source services.CatalogSource, cache mem.Store, cfg *config.Config, log *zap.Logger) services.CatalogServiceInterface {
	return services.NewCatalogService(source, cache, cfg.CatalogCacheTTL, log)
}
