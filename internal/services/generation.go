package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/eduassist/eduassist-backend/internal/logger"
	"github.com/eduassist/eduassist-backend/internal/types"
)

// GenerationService sequences the full pipeline for every request
// kind: validate, record the attempt, build the prompt, call the
// gateway once, parse, enrich, record the outcome.
type GenerationService interface {
	GenerateContent(ctx context.Context, req types.ContentRequest) (*types.ContentGenerationResponse, error)
	GenerateQuiz(ctx context.Context, req types.QuizRequest) (*types.QuizGenerationResponse, error)
	GenerateAssignment(ctx context.Context, req types.AssignmentRequest) (*types.AssignmentGenerationResponse, error)
	GenerateSummary(ctx context.Context, req types.SummaryRequest) (*types.SummaryGenerationResponse, error)
	GenerateExplanation(ctx context.Context, req types.ExplanationRequest) (*types.ExplanationGenerationResponse, error)
	GenerateTranslation(ctx context.Context, req types.TranslationRequest) (*types.TranslationGenerationResponse, error)
	AdaptContent(ctx context.Context, req types.AdaptationRequest) (*types.AdaptationGenerationResponse, error)
	CheckQuality(ctx context.Context, req types.QualityCheckRequest) (*types.QualityCheckResult, error)
}

type generationService struct {
	log     *logger.Logger
	ai      AIClient
	metrics *MetricsAggregator
}

func NewGenerationService(log *logger.Logger, ai AIClient, metrics *MetricsAggregator) GenerationService {
	return &generationService{
		log:     log.With("service", "GenerationService"),
		ai:      ai,
		metrics: metrics,
	}
}

func newJob(kind string) types.GenerationJob {
	return types.GenerationJob{
		ID:        uuid.NewString(),
		Kind:      kind,
		StartedAt: time.Now(),
	}
}

// complete runs the single gateway call and records the failure when
// it errors. Success is recorded by the caller once the response is
// fully assembled.
func (s *generationService) complete(ctx context.Context, job types.GenerationJob, prompt string) (string, error) {
	raw, err := s.ai.Complete(ctx, prompt)
	if err != nil {
		s.metrics.RecordFailure()
		s.log.Error("Gateway call failed", "job_id", job.ID, "kind", job.Kind, "error", err)
		return "", err
	}
	return raw, nil
}

func (s *generationService) GenerateContent(ctx context.Context, req types.ContentRequest) (*types.ContentGenerationResponse, error) {
	if err := validateContentRequest(req); err != nil {
		return nil, err
	}
	difficulty, err := difficultyForGrade(req.Grade)
	if err != nil {
		return nil, err
	}

	job := newJob(types.KindContent)
	s.metrics.RecordAttempt(types.KindContent, req.Subject, req.Grade, req.Topic)

	raw, err := s.complete(ctx, job, buildContentPrompt(req))
	if err != nil {
		return nil, err
	}

	parsed := parseContentResponse(raw)
	summary := parsed.Summary
	if summary == "" {
		summary = autoSummary(parsed.Content)
	}

	resp := &types.ContentGenerationResponse{
		ID:                 job.ID,
		Title:              contentTitle(req.Topic, req.Subject),
		Content:            parsed.Content,
		Summary:            summary,
		Keywords:           extractKeywords(parsed.Content),
		WordCount:          wordCount(parsed.Content),
		ReadingTimeMinutes: readingTime(parsed.Content),
		Difficulty:         difficulty,
		CreatedAt:          time.Now(),
	}
	s.metrics.RecordSuccess(time.Since(job.StartedAt))
	return resp, nil
}

func (s *generationService) GenerateQuiz(ctx context.Context, req types.QuizRequest) (*types.QuizGenerationResponse, error) {
	if err := validateQuizRequest(req); err != nil {
		return nil, err
	}

	job := newJob(types.KindQuiz)
	s.metrics.RecordAttempt(types.KindQuiz, req.Subject, req.Grade, req.Topic)

	raw, err := s.complete(ctx, job, buildQuizPrompt(req))
	if err != nil {
		return nil, err
	}

	parsed, err := parseQuizResponse(raw)
	if err != nil {
		s.metrics.RecordFailure()
		s.log.Error("Quiz output is not structured", "job_id", job.ID, "error", err)
		return nil, &MalformedGenerationError{Kind: types.KindQuiz, Raw: raw, Err: err}
	}

	resp := &types.QuizGenerationResponse{
		ID:                   job.ID,
		Title:                quizTitle(req.Topic),
		Questions:            parsed.Questions,
		TotalPoints:          parsed.TotalPoints,
		EstimatedTimeMinutes: quizTime(len(parsed.Questions), req.TimeLimit),
		Difficulty:           req.Difficulty,
		CreatedAt:            time.Now(),
	}
	s.metrics.RecordSuccess(time.Since(job.StartedAt))
	return resp, nil
}

func (s *generationService) GenerateAssignment(ctx context.Context, req types.AssignmentRequest) (*types.AssignmentGenerationResponse, error) {
	if err := validateAssignmentRequest(req); err != nil {
		return nil, err
	}

	job := newJob(types.KindAssignment)
	s.metrics.RecordAttempt(types.KindAssignment, req.Subject, req.Grade, req.Topic)

	raw, err := s.complete(ctx, job, buildAssignmentPrompt(req))
	if err != nil {
		return nil, err
	}

	parsed, err := parseAssignmentResponse(raw)
	if err != nil {
		s.metrics.RecordFailure()
		s.log.Error("Assignment output is not structured", "job_id", job.ID, "error", err)
		return nil, &MalformedGenerationError{Kind: types.KindAssignment, Raw: raw, Err: err}
	}

	title := parsed.Title
	if title == "" {
		title = assignmentTitle(req.Topic)
	}

	resp := &types.AssignmentGenerationResponse{
		ID:                       job.ID,
		Title:                    title,
		Description:              parsed.Description,
		Objectives:               parsed.Objectives,
		Instructions:             parsed.Instructions,
		Requirements:             parsed.Requirements,
		Rubric:                   parsed.Rubric,
		Resources:                parsed.Resources,
		EstimatedDurationMinutes: assignmentDuration(req.Duration, req.AssignmentType),
		CreatedAt:                time.Now(),
	}
	s.metrics.RecordSuccess(time.Since(job.StartedAt))
	return resp, nil
}

func (s *generationService) GenerateSummary(ctx context.Context, req types.SummaryRequest) (*types.SummaryGenerationResponse, error) {
	if err := validateSummaryRequest(req); err != nil {
		return nil, err
	}

	job := newJob(types.KindSummary)
	s.metrics.RecordAttempt(types.KindSummary, req.Subject, req.Grade, "")

	raw, err := s.complete(ctx, job, buildSummaryPrompt(req))
	if err != nil {
		return nil, err
	}

	parsed := parseSummaryResponse(raw)
	resp := &types.SummaryGenerationResponse{
		ID:                 job.ID,
		Summary:            parsed.Summary,
		KeyPoints:          parsed.KeyPoints,
		WordCount:          wordCount(parsed.Summary),
		ReadingTimeMinutes: readingTime(parsed.Summary),
		CreatedAt:          time.Now(),
	}
	s.metrics.RecordSuccess(time.Since(job.StartedAt))
	return resp, nil
}

func (s *generationService) GenerateExplanation(ctx context.Context, req types.ExplanationRequest) (*types.ExplanationGenerationResponse, error) {
	if err := validateExplanationRequest(req); err != nil {
		return nil, err
	}
	difficulty, err := difficultyForGrade(req.Grade)
	if err != nil {
		return nil, err
	}

	job := newJob(types.KindExplanation)
	s.metrics.RecordAttempt(types.KindExplanation, req.Subject, req.Grade, req.Concept)

	raw, err := s.complete(ctx, job, buildExplanationPrompt(req))
	if err != nil {
		return nil, err
	}

	parsed := parseExplanationResponse(raw)
	resp := &types.ExplanationGenerationResponse{
		ID:                 job.ID,
		Explanation:        parsed.Explanation,
		Examples:           parsed.Examples,
		Analogies:          parsed.Analogies,
		Difficulty:         difficulty,
		ReadingTimeMinutes: readingTime(parsed.Explanation),
		CreatedAt:          time.Now(),
	}
	s.metrics.RecordSuccess(time.Since(job.StartedAt))
	return resp, nil
}

func (s *generationService) GenerateTranslation(ctx context.Context, req types.TranslationRequest) (*types.TranslationGenerationResponse, error) {
	if err := validateTranslationRequest(req); err != nil {
		return nil, err
	}

	job := newJob(types.KindTranslation)
	s.metrics.RecordAttempt(types.KindTranslation, req.Subject, req.Grade, "")

	raw, err := s.complete(ctx, job, buildTranslationPrompt(req))
	if err != nil {
		return nil, err
	}

	parsed := parseTranslationResponse(raw)
	resp := &types.TranslationGenerationResponse{
		ID:                job.ID,
		TranslatedContent: parsed.TranslatedContent,
		SourceLanguage:    req.SourceLanguage,
		TargetLanguage:    req.TargetLanguage,
		Glossary:          parsed.Glossary,
		WordCount:         wordCount(parsed.TranslatedContent),
		CreatedAt:         time.Now(),
	}
	s.metrics.RecordSuccess(time.Since(job.StartedAt))
	return resp, nil
}

func (s *generationService) AdaptContent(ctx context.Context, req types.AdaptationRequest) (*types.AdaptationGenerationResponse, error) {
	if err := validateAdaptationRequest(req); err != nil {
		return nil, err
	}
	difficulty, err := difficultyForGrade(req.TargetGrade)
	if err != nil {
		return nil, err
	}

	job := newJob(types.KindAdaptation)
	s.metrics.RecordAttempt(types.KindAdaptation, req.Subject, req.TargetGrade, "")

	raw, err := s.complete(ctx, job, buildAdaptationPrompt(req))
	if err != nil {
		return nil, err
	}

	parsed := parseAdaptationResponse(raw)
	resp := &types.AdaptationGenerationResponse{
		ID:                 job.ID,
		AdaptedContent:     parsed.AdaptedContent,
		Changes:            parsed.Changes,
		TargetGrade:        req.TargetGrade,
		Difficulty:         difficulty,
		ReadingTimeMinutes: readingTime(parsed.AdaptedContent),
		CreatedAt:          time.Now(),
	}
	s.metrics.RecordSuccess(time.Since(job.StartedAt))
	return resp, nil
}

func (s *generationService) CheckQuality(ctx context.Context, req types.QualityCheckRequest) (*types.QualityCheckResult, error) {
	if err := validateQualityCheckRequest(req); err != nil {
		return nil, err
	}

	job := newJob(types.KindQualityCheck)
	s.metrics.RecordAttempt(types.KindQualityCheck, req.Subject, req.Grade, "")

	raw, err := s.complete(ctx, job, buildQualityCheckPrompt(req))
	if err != nil {
		return nil, err
	}

	parsed := parseQualityResponse(raw)
	if !parsed.Structured {
		s.log.Warn("Quality check output is not structured, scoring zero", "job_id", job.ID)
	}

	resp := &types.QualityCheckResult{
		ID:               job.ID,
		ReadabilityScore: parsed.ReadabilityScore,
		GrammarScore:     parsed.GrammarScore,
		RelevanceScore:   parsed.RelevanceScore,
		AccuracyScore:    parsed.AccuracyScore,
		OverallScore: overallQualityScore(
			parsed.ReadabilityScore,
			parsed.GrammarScore,
			parsed.RelevanceScore,
			parsed.AccuracyScore,
		),
		Suggestions: parsed.Suggestions,
		CreatedAt:   time.Now(),
	}
	s.metrics.RecordSuccess(time.Since(job.StartedAt))
	return resp, nil
}
