package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/eduassist/eduassist-backend/internal/logger"
	"github.com/eduassist/eduassist-backend/internal/services"
)

type MetricsHandler struct {
	log     *logger.Logger
	metrics *services.MetricsAggregator
}

func NewMetricsHandler(log *logger.Logger, metrics *services.MetricsAggregator) *MetricsHandler {
	return &MetricsHandler{
		log:     log.With("handler", "MetricsHandler"),
		metrics: metrics,
	}
}

// GET /api/metrics
func (h *MetricsHandler) GetMetrics(c *gin.Context) {
	RespondOK(c, h.metrics.Snapshot())
}
