package app

import (
	"fmt"

	"tutorrec_backend/internal/config"
	"tutorrec_backend/internal/handlers"
	"tutorrec_backend/internal/logger"
	"tutorrec_backend/internal/middleware"
	"tutorrec_backend/internal/routes"
	"tutorrec_backend/internal/services"
	"tutorrec_backend/internal/validator"

	"github.com/gin-gonic/gin"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	ginRouter := SetupRouter(cfg)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config) *gin.Engine {
	serviceContainer := initializeServices(cfg)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(cfg)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config) *services.ServiceContainer {
	recommendationService := services.NewRecommendationService(cfg)

	return &services.ServiceContainer{
		RecommendationService: recommendationService,
	}
}

func initializeHandlers(container *services.ServiceContainer) *handlers.AppHandlers {
	baseHandler := handlers.NewBaseHandler(validator.New())

	return &handlers.AppHandlers{
		RecommendationHandler: handlers.NewRecommendationHandler(baseHandler, container.RecommendationService),
		HealthHandler:         handlers.NewHealthHandler(),
	}
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ginRouter := gin.New()
	ginRouter.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware(),
		middleware.LoggingMiddleware(),
	)
	return ginRouter
}
