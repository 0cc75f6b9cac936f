package planning_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"tripplanner/internal/repositories"
	"tripplanner/internal/services"
)

var Module = fx.Provide(providePlanningService)

func providePlanningService(
	drafts repositories.DraftRepository,
	catalog services.CatalogServiceInterface,
	itineraries services.ItineraryStore,
	log *zap.Logger,
) services.PlanningServiceInterface {

	return services.NewPlanningService(drafts, catalog, itineraries, log)
}
