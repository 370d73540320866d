package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/eduassist/eduassist-backend/internal/logger"
	"github.com/eduassist/eduassist-backend/internal/services"
	"github.com/eduassist/eduassist-backend/internal/types"
)

type stubGenerationService struct {
	quizResp *types.QuizGenerationResponse
	quizErr  error
}

func (s *stubGenerationService) GenerateContent(context.Context, types.ContentRequest) (*types.ContentGenerationResponse, error) {
	return nil, nil
}
func (s *stubGenerationService) GenerateQuiz(context.Context, types.QuizRequest) (*types.QuizGenerationResponse, error) {
	return s.quizResp, s.quizErr
}
func (s *stubGenerationService) GenerateAssignment(context.Context, types.AssignmentRequest) (*types.AssignmentGenerationResponse, error) {
	return nil, nil
}
func (s *stubGenerationService) GenerateSummary(context.Context, types.SummaryRequest) (*types.SummaryGenerationResponse, error) {
	return nil, nil
}
func (s *stubGenerationService) GenerateExplanation(context.Context, types.ExplanationRequest) (*types.ExplanationGenerationResponse, error) {
	return nil, nil
}
func (s *stubGenerationService) GenerateTranslation(context.Context, types.TranslationRequest) (*types.TranslationGenerationResponse, error) {
	return nil, nil
}
func (s *stubGenerationService) AdaptContent(context.Context, types.AdaptationRequest) (*types.AdaptationGenerationResponse, error) {
	return nil, nil
}
func (s *stubGenerationService) CheckQuality(context.Context, types.QualityCheckRequest) (*types.QualityCheckResult, error) {
	return nil, nil
}

func newQuizTestRouter(t *testing.T, svc services.GenerationService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger init: %v", err)
	}
	h := NewGenerationHandler(log, svc)
	router := gin.New()
	router.POST("/api/generate/quiz", h.GenerateQuiz)
	return router
}

func TestGenerateQuizHandlerOK(t *testing.T) {
	stub := &stubGenerationService{quizResp: &types.QuizGenerationResponse{
		ID:    "job-1",
		Title: "Quiz: Fractions",
	}}
	router := newQuizTestRouter(t, stub)

	body := `{"subject": "Math", "grade": "5", "topic": "Fractions", "difficulty": "beginner", "language": "English", "numberOfQuestions": 5}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/generate/quiz", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var resp types.QuizGenerationResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Title != "Quiz: Fractions" {
		t.Fatalf("title = %q", resp.Title)
	}
}

func TestGenerateQuizHandlerErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"validation", &services.ValidationError{Field: "topic", Reason: "is required"}, http.StatusBadRequest, "invalid_request"},
		{"gateway", &services.GatewayError{Status: 503, Err: http.ErrHandlerTimeout}, http.StatusBadGateway, "gateway_error"},
		{"malformed", &services.MalformedGenerationError{Kind: "quiz", Raw: "prose"}, http.StatusBadGateway, "malformed_generation"},
	}

	body := `{"subject": "Math", "grade": "5", "topic": "Fractions", "difficulty": "beginner", "language": "English", "numberOfQuestions": 5}`
	for _, tc := range cases {
		router := newQuizTestRouter(t, &stubGenerationService{quizErr: tc.err})
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/generate/quiz", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(rec, req)

		if rec.Code != tc.wantStatus {
			t.Fatalf("%s: status = %d, want %d", tc.name, rec.Code, tc.wantStatus)
		}
		var envelope ErrorEnvelope
		if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
			t.Fatalf("%s: decode error envelope: %v", tc.name, err)
		}
		if envelope.Error.Code != tc.wantCode {
			t.Fatalf("%s: code = %q, want %q", tc.name, envelope.Error.Code, tc.wantCode)
		}
	}
}
