package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/eduassist/eduassist-backend/internal/config"
	"github.com/eduassist/eduassist-backend/internal/handlers"
	"github.com/eduassist/eduassist-backend/internal/logger"
	"github.com/eduassist/eduassist-backend/internal/middleware"
	"github.com/eduassist/eduassist-backend/internal/server"
	"github.com/eduassist/eduassist-backend/internal/services"
)

func main() {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	cfg, err := config.Load(log)
	if err != nil {
		log.Error("Could not load config", "error", err)
		os.Exit(1)
	}
	if cfg.LogMode == "prod" || cfg.LogMode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	log.Info("Setting up services...")
	metrics := services.NewMetricsAggregator()
	aiClient, err := services.NewAIClient(log, cfg.Gateway)
	if err != nil {
		log.Error("Could not init AIClient", "error", err)
		os.Exit(1)
	}
	genService := services.NewGenerationService(log, aiClient, metrics)

	log.Info("Setting up handlers...")
	generationHandler := handlers.NewGenerationHandler(log, genService)
	metricsHandler := handlers.NewMetricsHandler(log, metrics)

	router := server.NewRouter(server.RouterConfig{
		AllowOrigins:      cfg.AllowOrigins,
		GenerationHandler: generationHandler,
		MetricsHandler:    metricsHandler,
		Middleware:        []gin.HandlerFunc{middleware.RequestLogger(log)},
	})

	log.Info("Server starting", "port", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server stopped", "error", err)
	}
}
