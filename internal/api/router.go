package api

import (
	"github.com/Conceptual-Machines/sightread-api/internal/api/handlers"
	apimiddleware "github.com/Conceptual-Machines/sightread-api/internal/api/middleware"
	"github.com/Conceptual-Machines/sightread-api/internal/config"
	"github.com/Conceptual-Machines/sightread-api/internal/metrics"
	"github.com/Conceptual-Machines/sightread-api/internal/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter wires the HTTP API. db may be nil.
func SetupRouter(db *gorm.DB, cfg *config.Config, cloudwatch *metrics.Client, version string) (*gin.Engine, error) {
	router := gin.New()

	// Recovery middleware (must be first)
	router.Use(apimiddleware.RecoverWithSentry())

	// Sentry middleware for error tracking
	router.Use(apimiddleware.SentryMiddleware())

	// Request tracking and structured logging
	router.Use(apimiddleware.RequestTracking(cloudwatch))

	// CORS middleware
	router.Use(apimiddleware.CORS(cfg.CORSOrigins))

	// Health check
	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.HealthCheck)

	// Metrics endpoint
	metricsHandler := handlers.NewMetricsHandler(version, cloudwatch)
	router.GET("/api/metrics", metricsHandler.GetMetrics)

	v1 := router.Group("/api/v1")
	if cfg.IsGatewayMode() {
		v1.Use(apimiddleware.GatewayAuth())
	} else {
		v1.Use(apimiddleware.NoAuth())
	}

	exerciseService := services.NewExerciseService(db, cloudwatch, cfg.MaxMeasures)
	{
		exerciseHandler := handlers.NewExerciseHandler(exerciseService, cfg)
		v1.POST("/exercises", exerciseHandler.Generate)
		v1.GET("/exercises/defaults", exerciseHandler.Defaults)
		v1.GET("/generations", apimiddleware.AdminRequired(), exerciseHandler.ListGenerations)

		v1.GET("/scales/:voice", handlers.GetScale)
		v1.GET("/scales/:voice/window", handlers.GetWindow)
	}

	// Presets live in the database when configured, otherwise the built-ins are served read-only
	var presetStore handlers.PresetStore
	if db != nil {
		presetStore = services.NewPresetService(db)
	} else {
		builtins, err := services.NewBuiltinPresetStore()
		if err != nil {
			return nil, err
		}
		presetStore = builtins
	}
	{
		presetHandler := handlers.NewPresetHandler(presetStore, exerciseService, cloudwatch)
		presets := v1.Group("/presets")
		presets.GET("", presetHandler.List)
		presets.POST("", presetHandler.Create)
		presets.GET("/:name", presetHandler.Get)
		presets.DELETE("/:name", apimiddleware.AdminRequired(), presetHandler.Delete)
		presets.POST("/:name/exercises", presetHandler.Generate)
	}

	return router, nil
}
