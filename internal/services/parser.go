package services

import (
	"encoding/json"
	"strings"

	"github.com/eduassist/eduassist-backend/internal/types"
)

// Parsed payloads carry an explicit Structured tag instead of relying
// on parse-catch-default control flow. Kinds whose primary field is
// free text degrade to a text fallback; quiz and assignment have no
// safe fallback and report an error instead.

type contentPayload struct {
	Content   string   `json:"content"`
	Summary   string   `json:"summary"`
	KeyPoints []string `json:"keyPoints"`
}

type quizPayload struct {
	Questions   []types.QuizQuestion `json:"questions"`
	TotalPoints int                  `json:"totalPoints"`
}

type assignmentPayload struct {
	Title        string                  `json:"title"`
	Description  string                  `json:"description"`
	Objectives   []string                `json:"objectives"`
	Instructions []string                `json:"instructions"`
	Requirements []string                `json:"requirements"`
	Rubric       []types.RubricCriterion `json:"rubric"`
	Resources    []string                `json:"resources"`
}

type summaryPayload struct {
	Summary   string   `json:"summary"`
	KeyPoints []string `json:"keyPoints"`
}

type explanationPayload struct {
	Explanation string   `json:"explanation"`
	Examples    []string `json:"examples"`
	Analogies   []string `json:"analogies"`
}

type translationPayload struct {
	TranslatedContent string                `json:"translatedContent"`
	Glossary          []types.GlossaryEntry `json:"glossary"`
}

type adaptationPayload struct {
	AdaptedContent string   `json:"adaptedContent"`
	Changes        []string `json:"changes"`
}

type qualityPayload struct {
	ReadabilityScore int      `json:"readabilityScore"`
	GrammarScore     int      `json:"grammarScore"`
	RelevanceScore   int      `json:"relevanceScore"`
	AccuracyScore    int      `json:"accuracyScore"`
	Suggestions      []string `json:"suggestions"`
}

type parsedContent struct {
	Structured bool
	contentPayload
}

type parsedSummary struct {
	Structured bool
	summaryPayload
}

type parsedExplanation struct {
	Structured bool
	explanationPayload
}

type parsedTranslation struct {
	Structured bool
	translationPayload
}

type parsedAdaptation struct {
	Structured bool
	adaptationPayload
}

type parsedQuality struct {
	Structured bool
	qualityPayload
}

// stripCodeFence tolerates model output wrapped in a markdown code
// block before strict JSON decoding.
func stripCodeFence(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func decodeJSON(raw string, out any) error {
	return json.Unmarshal([]byte(stripCodeFence(raw)), out)
}

func parseContentResponse(raw string) parsedContent {
	var p contentPayload
	if err := decodeJSON(raw, &p); err != nil || p.Content == "" {
		return parsedContent{contentPayload: contentPayload{Content: raw, KeyPoints: []string{}}}
	}
	if p.KeyPoints == nil {
		p.KeyPoints = []string{}
	}
	return parsedContent{Structured: true, contentPayload: p}
}

func parseQuizResponse(raw string) (quizPayload, error) {
	var p quizPayload
	if err := decodeJSON(raw, &p); err != nil {
		return quizPayload{}, err
	}
	if len(p.Questions) == 0 {
		return quizPayload{}, errMissingQuestions
	}
	if p.TotalPoints == 0 {
		for _, q := range p.Questions {
			p.TotalPoints += q.Points
		}
	}
	return p, nil
}

func parseAssignmentResponse(raw string) (assignmentPayload, error) {
	var p assignmentPayload
	if err := decodeJSON(raw, &p); err != nil {
		return assignmentPayload{}, err
	}
	if p.Title == "" && p.Description == "" {
		return assignmentPayload{}, errMissingAssignmentBody
	}
	if p.Objectives == nil {
		p.Objectives = []string{}
	}
	if p.Instructions == nil {
		p.Instructions = []string{}
	}
	if p.Requirements == nil {
		p.Requirements = []string{}
	}
	if p.Rubric == nil {
		p.Rubric = []types.RubricCriterion{}
	}
	if p.Resources == nil {
		p.Resources = []string{}
	}
	return p, nil
}

func parseSummaryResponse(raw string) parsedSummary {
	var p summaryPayload
	if err := decodeJSON(raw, &p); err != nil || p.Summary == "" {
		return parsedSummary{summaryPayload: summaryPayload{Summary: raw, KeyPoints: []string{}}}
	}
	if p.KeyPoints == nil {
		p.KeyPoints = []string{}
	}
	return parsedSummary{Structured: true, summaryPayload: p}
}

func parseExplanationResponse(raw string) parsedExplanation {
	var p explanationPayload
	if err := decodeJSON(raw, &p); err != nil || p.Explanation == "" {
		return parsedExplanation{explanationPayload: explanationPayload{
			Explanation: raw,
			Examples:    []string{},
			Analogies:   []string{},
		}}
	}
	if p.Examples == nil {
		p.Examples = []string{}
	}
	if p.Analogies == nil {
		p.Analogies = []string{}
	}
	return parsedExplanation{Structured: true, explanationPayload: p}
}

func parseTranslationResponse(raw string) parsedTranslation {
	var p translationPayload
	if err := decodeJSON(raw, &p); err != nil || p.TranslatedContent == "" {
		return parsedTranslation{translationPayload: translationPayload{
			TranslatedContent: raw,
			Glossary:          []types.GlossaryEntry{},
		}}
	}
	if p.Glossary == nil {
		p.Glossary = []types.GlossaryEntry{}
	}
	return parsedTranslation{Structured: true, translationPayload: p}
}

func parseAdaptationResponse(raw string) parsedAdaptation {
	var p adaptationPayload
	if err := decodeJSON(raw, &p); err != nil || p.AdaptedContent == "" {
		return parsedAdaptation{adaptationPayload: adaptationPayload{
			AdaptedContent: raw,
			Changes:        []string{},
		}}
	}
	if p.Changes == nil {
		p.Changes = []string{}
	}
	return parsedAdaptation{Structured: true, adaptationPayload: p}
}

// parseQualityResponse never fails: quality checking is advisory, so a
// malformed response degrades to zero scores with a diagnostic
// suggestion.
func parseQualityResponse(raw string) parsedQuality {
	var p qualityPayload
	if err := decodeJSON(raw, &p); err != nil {
		return parsedQuality{qualityPayload: qualityPayload{
			Suggestions: []string{"Error parsing quality check response"},
		}}
	}
	if p.Suggestions == nil {
		p.Suggestions = []string{}
	}
	return parsedQuality{Structured: true, qualityPayload: p}
}
