package remote_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"tripplanner/internal/config"
	"tripplanner/internal/remote"
	"tripplanner/internal/services"
)

var Module = fx.Provide(
	provideClient,
	provideCatalogSource,
	provideItineraryStore,
	providePersonalityStore,
)

func provideClient(cfg *config.Config, log *zap.Logger) *remote.Client {
	return remote.NewClient(cfg.RemoteAPIURL, cfg.RemoteAPITimeout, log.Named("trip_api"))
}

func provideCatalogSource(c *remote.Client) services.CatalogSource { return c }

func provideItineraryStore(c *remote.Client) services.ItineraryStore { return c }

func providePersonalityStore(c *remote.Client) services.PersonalityStore { return c }
