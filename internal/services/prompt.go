package services

import (
	"fmt"
	"strings"

	"github.com/eduassist/eduassist-backend/internal/types"
)

// Prompt builders are pure: one per request kind, template plus the
// request's fields. None of them may return an empty string for a
// request that passed validation.

func buildContentPrompt(req types.ContentRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create educational content about %q for the subject %q, grade %s.\n", req.Topic, req.Subject, req.Grade)
	fmt.Fprintf(&b, "Difficulty level: %s.\n", req.Difficulty)
	fmt.Fprintf(&b, "Write the content in %s.\n", req.Language)
	if req.Format != "" {
		fmt.Fprintf(&b, "Use the %s format.\n", req.Format)
	}
	if req.IncludeExamples {
		b.WriteString("Include concrete worked examples.\n")
	}
	if req.IncludeActivities {
		b.WriteString("Include suggested classroom activities.\n")
	}
	b.WriteString(`Respond with a JSON object: {"content": string, "summary": string, "keyPoints": [string]}.`)
	appendCustomPrompt(&b, req.CustomPrompt)
	return b.String()
}

func buildQuizPrompt(req types.QuizRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a quiz about %q for the subject %q, grade %s.\n", req.Topic, req.Subject, req.Grade)
	fmt.Fprintf(&b, "Difficulty level: %s. Language: %s.\n", req.Difficulty, req.Language)
	fmt.Fprintf(&b, "Number of questions: %d.\n", req.NumberOfQuestions)
	if len(req.QuestionTypes) > 0 {
		fmt.Fprintf(&b, "Allowed question types: %s.\n", strings.Join(req.QuestionTypes, ", "))
	}
	if req.TimeLimit > 0 {
		fmt.Fprintf(&b, "The quiz should be solvable within %d minutes.\n", req.TimeLimit)
	}
	b.WriteString(`Respond with a JSON object: {"questions": [{"question": string, "type": string, "options": [string], "correctAnswer": string, "points": number, "explanation": string}], "totalPoints": number}.`)
	appendCustomPrompt(&b, req.CustomPrompt)
	return b.String()
}

func buildAssignmentPrompt(req types.AssignmentRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a %s assignment about %q for the subject %q, grade %s.\n", req.AssignmentType, req.Topic, req.Subject, req.Grade)
	fmt.Fprintf(&b, "Difficulty level: %s. Language: %s.\n", req.Difficulty, req.Language)
	if req.Duration != "" {
		fmt.Fprintf(&b, "Expected workload: %s.\n", req.Duration)
	}
	b.WriteString(`Respond with a JSON object: {"title": string, "description": string, "objectives": [string], "instructions": [string], "requirements": [string], "rubric": [{"criterion": string, "description": string, "points": number}], "resources": [string]}.`)
	appendCustomPrompt(&b, req.CustomPrompt)
	return b.String()
}

func buildSummaryPrompt(req types.SummaryRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Summarize the following %s material for grade %s students in %s.\n", req.Subject, req.Grade, req.Language)
	if req.Length != "" {
		fmt.Fprintf(&b, "Summary length: %s.\n", req.Length)
	}
	b.WriteString(`Respond with a JSON object: {"summary": string, "keyPoints": [string]}.`)
	appendCustomPrompt(&b, req.CustomPrompt)
	fmt.Fprintf(&b, "\n\nMaterial:\n%s", req.Content)
	return b.String()
}

func buildExplanationPrompt(req types.ExplanationRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Explain the concept %q from %s to a grade %s student in %s.\n", req.Concept, req.Subject, req.Grade, req.Language)
	if req.DetailLevel != "" {
		fmt.Fprintf(&b, "Detail level: %s.\n", req.DetailLevel)
	}
	if req.IncludeExamples {
		b.WriteString("Include examples.\n")
	}
	if req.IncludeAnalogies {
		b.WriteString("Include analogies a student of that age would recognize.\n")
	}
	b.WriteString(`Respond with a JSON object: {"explanation": string, "examples": [string], "analogies": [string]}.`)
	appendCustomPrompt(&b, req.CustomPrompt)
	return b.String()
}

func buildTranslationPrompt(req types.TranslationRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Translate the following %s material for grade %s from %s to %s.\n", req.Subject, req.Grade, req.SourceLanguage, req.TargetLanguage)
	if req.PreserveFormatting {
		b.WriteString("Preserve the original formatting and structure.\n")
	}
	b.WriteString("Keep subject terminology accurate for the target language.\n")
	b.WriteString(`Respond with a JSON object: {"translatedContent": string, "glossary": [{"term": string, "translation": string}]}.`)
	appendCustomPrompt(&b, req.CustomPrompt)
	fmt.Fprintf(&b, "\n\nMaterial:\n%s", req.Content)
	return b.String()
}

func buildAdaptationPrompt(req types.AdaptationRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Adapt the following %s material for grade %s students in %s.\n", req.Subject, req.TargetGrade, req.Language)
	fmt.Fprintf(&b, "Adaptation type: %s.\n", req.AdaptationType)
	b.WriteString(`Respond with a JSON object: {"adaptedContent": string, "changes": [string]}.`)
	appendCustomPrompt(&b, req.CustomPrompt)
	fmt.Fprintf(&b, "\n\nMaterial:\n%s", req.Content)
	return b.String()
}

func buildQualityCheckPrompt(req types.QualityCheckRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Evaluate the quality of the following %s material (%s, grade %s).\n", req.Subject, req.ContentType, req.Grade)
	b.WriteString("Score readability, grammar, relevance and accuracy from 0 to 100 and list concrete suggestions.\n")
	b.WriteString(`Respond with a JSON object: {"readabilityScore": number, "grammarScore": number, "relevanceScore": number, "accuracyScore": number, "suggestions": [string]}.`)
	fmt.Fprintf(&b, "\n\nMaterial:\n%s", req.Content)
	return b.String()
}

// appendCustomPrompt renders the caller's free-text instruction
// verbatim at the end. An empty custom prompt is omitted entirely, not
// rendered as an empty instruction line.
func appendCustomPrompt(b *strings.Builder, custom string) {
	if strings.TrimSpace(custom) == "" {
		return
	}
	b.WriteString("\nAdditional instructions: ")
	b.WriteString(custom)
}
