package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eduassist/eduassist-backend/internal/logger"
	"github.com/eduassist/eduassist-backend/internal/services"
	"github.com/eduassist/eduassist-backend/internal/types"
)

type GenerationHandler struct {
	log    *logger.Logger
	genSvc services.GenerationService
}

func NewGenerationHandler(log *logger.Logger, genSvc services.GenerationService) *GenerationHandler {
	return &GenerationHandler{
		log:    log.With("handler", "GenerationHandler"),
		genSvc: genSvc,
	}
}

// POST /api/generate/content
func (h *GenerationHandler) GenerateContent(c *gin.Context) {
	var req types.ContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	resp, err := h.genSvc.GenerateContent(c.Request.Context(), req)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, resp)
}

// POST /api/generate/quiz
func (h *GenerationHandler) GenerateQuiz(c *gin.Context) {
	var req types.QuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	resp, err := h.genSvc.GenerateQuiz(c.Request.Context(), req)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, resp)
}

// POST /api/generate/assignment
func (h *GenerationHandler) GenerateAssignment(c *gin.Context) {
	var req types.AssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	resp, err := h.genSvc.GenerateAssignment(c.Request.Context(), req)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, resp)
}

// POST /api/generate/summary
func (h *GenerationHandler) GenerateSummary(c *gin.Context) {
	var req types.SummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	resp, err := h.genSvc.GenerateSummary(c.Request.Context(), req)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, resp)
}

// POST /api/generate/explanation
func (h *GenerationHandler) GenerateExplanation(c *gin.Context) {
	var req types.ExplanationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	resp, err := h.genSvc.GenerateExplanation(c.Request.Context(), req)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, resp)
}

// POST /api/generate/translation
func (h *GenerationHandler) GenerateTranslation(c *gin.Context) {
	var req types.TranslationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	resp, err := h.genSvc.GenerateTranslation(c.Request.Context(), req)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, resp)
}

// POST /api/generate/adaptation
func (h *GenerationHandler) AdaptContent(c *gin.Context) {
	var req types.AdaptationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	resp, err := h.genSvc.AdaptContent(c.Request.Context(), req)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, resp)
}

// POST /api/quality-check
func (h *GenerationHandler) CheckQuality(c *gin.Context) {
	var req types.QualityCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	resp, err := h.genSvc.CheckQuality(c.Request.Context(), req)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, resp)
}
