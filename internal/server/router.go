package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/eduassist/eduassist-backend/internal/handlers"
)

type RouterConfig struct {
	AllowOrigins      []string
	GenerationHandler *handlers.GenerationHandler
	MetricsHandler    *handlers.MetricsHandler
	Middleware        []gin.HandlerFunc
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	for _, mw := range cfg.Middleware {
		router.Use(mw)
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With", "X-Request-ID"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	{
		generate := api.Group("/generate")
		{
			generate.POST("/content", cfg.GenerationHandler.GenerateContent)
			generate.POST("/quiz", cfg.GenerationHandler.GenerateQuiz)
			generate.POST("/assignment", cfg.GenerationHandler.GenerateAssignment)
			generate.POST("/summary", cfg.GenerationHandler.GenerateSummary)
			generate.POST("/explanation", cfg.GenerationHandler.GenerateExplanation)
			generate.POST("/translation", cfg.GenerationHandler.GenerateTranslation)
			generate.POST("/adaptation", cfg.GenerationHandler.AdaptContent)
		}
		api.POST("/quality-check", cfg.GenerationHandler.CheckQuality)
		api.GET("/metrics", cfg.MetricsHandler.GetMetrics)
	}

	return router
}
