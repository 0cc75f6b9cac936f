package personality_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"tripplanner/internal/services"
)

var Module = fx.Provide(providePersonalityService)

func providePersonalityService(store services.PersonalityStore, log *zap.Logger) services.PersonalityServiceInterface {
	return services.NewPersonalityService(store, log)
}
