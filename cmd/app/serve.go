package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"tripplanner/cmd/fx/catalog_fx"
	"tripplanner/cmd/fx/config_fx"
	"tripplanner/cmd/fx/controllers_fx"
	"tripplanner/cmd/fx/db_fx"
	"tripplanner/cmd/fx/logger_fx"
	"tripplanner/cmd/fx/memcache_fx"
	"tripplanner/cmd/fx/personality_fx"
	"tripplanner/cmd/fx/planning_fx"
	"tripplanner/cmd/fx/remote_fx"
	"tripplanner/internal/api/controllers"
	"tripplanner/internal/config"
	"tripplanner/pkg/middleware"
	"tripplanner/pkg/utils"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := fx.New(
			config_fx.Module,
			logger_fx.Module,
			db_fx.Module,
			memcache_fx.Module,
			remote_fx.Module,
			catalog_fx.Module,
			planning_fx.Module,
			personality_fx.Module,
			controllers_fx.Module,

			fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
				return &fxevent.ZapLogger{Logger: log.Named("fx")}
			}),
			fx.Provide(ProvideRouter),
			fx.Invoke(StartServer),
		)

		app.Run()
		return app.Err()
	},
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, log *zap.Logger) {
	srv := &http.Server{Addr: cfg.Addr(), Handler: engine}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("Starting HTTP server", zap.String("addr", srv.Addr))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("Failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

type RouteControllers struct {
	fx.In

	Plans       *controllers.PlanController
	Catalog     *controllers.CatalogController
	Itineraries *controllers.ItineraryController
	Personality *controllers.PersonalityController
}

func ProvideRouter(cfg *config.Config, log *zap.Logger, rc RouteControllers) *gin.Engine {
	gin.SetMode(cfg.GinMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(log.Named("http")))
	r.Use(middleware.CORSMiddleware())

	writes := middleware.NewRateLimiter(cfg.WriteRatePerMinute, cfg.WriteRateBurst)
	RegisterRoutes(r, cfg.JWTSecret, writes.Limit(), rc)

	return r
}

// RegisterRoutes mounts the API. limitWrites guards the routes that write to
// the trip API.
func RegisterRoutes(r *gin.Engine, secret []byte, limitWrites gin.HandlerFunc, rc RouteControllers) {
	r.GET("/health", func(c *gin.Context) {
		utils.RespondSuccess(c, gin.H{"status": "ok"}, "healthy")
	})

	auth := r.Group("/", middleware.JWTAuthMiddleware(secret))

	destinations := auth.Group("/destinations")
	destinations.GET("", rc.Catalog.ListDestinations)
	destinations.GET("/:id/activities", rc.Catalog.ListActivities)
	destinations.GET("/:id/recommended", rc.Catalog.ListRecommended)
	destinations.PUT("/:id/activities/:activityId/like", limitWrites, rc.Catalog.LikeActivity)

	plans := auth.Group("/plans")
	plans.POST("", rc.Plans.CreatePlan)
	plans.GET("", rc.Plans.ListPlans)
	plans.GET("/:id", rc.Plans.GetPlan)
	plans.DELETE("/:id", rc.Plans.DeletePlan)
	plans.PUT("/:id/trip", rc.Plans.UpdateTrip)
	plans.PUT("/:id/destination", rc.Plans.SelectDestination)
	plans.PUT("/:id/viewing-day", rc.Plans.SetViewingDay)
	plans.POST("/:id/activities", rc.Plans.AddActivity)
	plans.DELETE("/:id/activities/:tempId", rc.Plans.RemoveActivity)
	plans.POST("/:id/activities/:tempId/move", rc.Plans.MoveActivity)
	plans.POST("/:id/activities/:tempId/day", rc.Plans.MoveToDay)
	plans.PUT("/:id/activities/:tempId/time", rc.Plans.SetActivityTime)
	plans.GET("/:id/days/:day", rc.Plans.GetDay)
	plans.GET("/:id/payload", rc.Plans.GetPayload)
	plans.POST("/:id/submit", limitWrites, rc.Plans.SubmitPlan)

	itineraries := auth.Group("/itineraries")
	itineraries.GET("", rc.Itineraries.ListItineraries)
	itineraries.GET("/:id/activities", rc.Itineraries.ListActivities)
	itineraries.POST("/:id/edit", limitWrites, rc.Itineraries.EditItinerary)

	auth.GET("/quiz", rc.Personality.GetQuiz)
	auth.POST("/quiz", limitWrites, rc.Personality.SubmitQuiz)
	auth.GET("/personality", rc.Personality.GetPersonality)
}
