package types

import "time"

// Request kinds accepted by the generation service.
const (
	KindContent      = "content"
	KindQuiz         = "quiz"
	KindAssignment   = "assignment"
	KindSummary      = "summary"
	KindExplanation  = "explanation"
	KindTranslation  = "translation"
	KindAdaptation   = "adaptation"
	KindQualityCheck = "quality_check"
)

type ContentRequest struct {
	Subject           string `json:"subject"`
	Grade             string `json:"grade"`
	Topic             string `json:"topic"`
	Difficulty        string `json:"difficulty"`
	Language          string `json:"language"`
	Format            string `json:"format"`
	IncludeExamples   bool   `json:"includeExamples"`
	IncludeActivities bool   `json:"includeActivities"`
	CustomPrompt      string `json:"customPrompt"`
}

type QuizRequest struct {
	Subject           string   `json:"subject"`
	Grade             string   `json:"grade"`
	Topic             string   `json:"topic"`
	Difficulty        string   `json:"difficulty"`
	Language          string   `json:"language"`
	QuestionTypes     []string `json:"questionTypes"`
	NumberOfQuestions int      `json:"numberOfQuestions"`
	TimeLimit         int      `json:"timeLimit"`
	CustomPrompt      string   `json:"customPrompt"`
}

type AssignmentRequest struct {
	Subject        string `json:"subject"`
	Grade          string `json:"grade"`
	Topic          string `json:"topic"`
	Difficulty     string `json:"difficulty"`
	Language       string `json:"language"`
	AssignmentType string `json:"assignmentType"`
	Duration       string `json:"duration"`
	CustomPrompt   string `json:"customPrompt"`
}

type SummaryRequest struct {
	Content      string `json:"content"`
	Subject      string `json:"subject"`
	Grade        string `json:"grade"`
	Language     string `json:"language"`
	Length       string `json:"length"`
	CustomPrompt string `json:"customPrompt"`
}

type ExplanationRequest struct {
	Concept          string `json:"concept"`
	Subject          string `json:"subject"`
	Grade            string `json:"grade"`
	Language         string `json:"language"`
	DetailLevel      string `json:"detailLevel"`
	IncludeExamples  bool   `json:"includeExamples"`
	IncludeAnalogies bool   `json:"includeAnalogies"`
	CustomPrompt     string `json:"customPrompt"`
}

type TranslationRequest struct {
	Content            string `json:"content"`
	SourceLanguage     string `json:"sourceLanguage"`
	TargetLanguage     string `json:"targetLanguage"`
	Subject            string `json:"subject"`
	Grade              string `json:"grade"`
	PreserveFormatting bool   `json:"preserveFormatting"`
	CustomPrompt       string `json:"customPrompt"`
}

type AdaptationRequest struct {
	Content        string `json:"content"`
	AdaptationType string `json:"adaptationType"`
	TargetGrade    string `json:"targetGrade"`
	Subject        string `json:"subject"`
	Language       string `json:"language"`
	CustomPrompt   string `json:"customPrompt"`
}

type QualityCheckRequest struct {
	Content     string `json:"content"`
	ContentType string `json:"contentType"`
	Subject     string `json:"subject"`
	Grade       string `json:"grade"`
}

// GenerationJob is the ephemeral per-call trace record. It is never
// persisted; its ID is echoed into the response.
type GenerationJob struct {
	ID        string
	Kind      string
	StartedAt time.Time
}

type QuizQuestion struct {
	Question      string   `json:"question"`
	Type          string   `json:"type"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Points        int      `json:"points"`
	Explanation   string   `json:"explanation"`
}

type RubricCriterion struct {
	Criterion   string `json:"criterion"`
	Description string `json:"description"`
	Points      int    `json:"points"`
}

type GlossaryEntry struct {
	Term        string `json:"term"`
	Translation string `json:"translation"`
}

type ContentGenerationResponse struct {
	ID                 string    `json:"id"`
	Title              string    `json:"title"`
	Content            string    `json:"content"`
	Summary            string    `json:"summary"`
	Keywords           []string  `json:"keywords"`
	WordCount          int       `json:"wordCount"`
	ReadingTimeMinutes int       `json:"readingTimeMinutes"`
	Difficulty         string    `json:"difficulty"`
	CreatedAt          time.Time `json:"createdAt"`
}

type QuizGenerationResponse struct {
	ID                   string         `json:"id"`
	Title                string         `json:"title"`
	Questions            []QuizQuestion `json:"questions"`
	TotalPoints          int            `json:"totalPoints"`
	EstimatedTimeMinutes int            `json:"estimatedTimeMinutes"`
	Difficulty           string         `json:"difficulty"`
	CreatedAt            time.Time      `json:"createdAt"`
}

type AssignmentGenerationResponse struct {
	ID                       string            `json:"id"`
	Title                    string            `json:"title"`
	Description              string            `json:"description"`
	Objectives               []string          `json:"objectives"`
	Instructions             []string          `json:"instructions"`
	Requirements             []string          `json:"requirements"`
	Rubric                   []RubricCriterion `json:"rubric"`
	Resources                []string          `json:"resources"`
	EstimatedDurationMinutes int               `json:"estimatedDurationMinutes"`
	CreatedAt                time.Time         `json:"createdAt"`
}

type SummaryGenerationResponse struct {
	ID                 string    `json:"id"`
	Summary            string    `json:"summary"`
	KeyPoints          []string  `json:"keyPoints"`
	WordCount          int       `json:"wordCount"`
	ReadingTimeMinutes int       `json:"readingTimeMinutes"`
	CreatedAt          time.Time `json:"createdAt"`
}

type ExplanationGenerationResponse struct {
	ID                 string    `json:"id"`
	Explanation        string    `json:"explanation"`
	Examples           []string  `json:"examples"`
	Analogies          []string  `json:"analogies"`
	Difficulty         string    `json:"difficulty"`
	ReadingTimeMinutes int       `json:"readingTimeMinutes"`
	CreatedAt          time.Time `json:"createdAt"`
}

type TranslationGenerationResponse struct {
	ID                string          `json:"id"`
	TranslatedContent string          `json:"translatedContent"`
	SourceLanguage    string          `json:"sourceLanguage"`
	TargetLanguage    string          `json:"targetLanguage"`
	Glossary          []GlossaryEntry `json:"glossary"`
	WordCount         int             `json:"wordCount"`
	CreatedAt         time.Time       `json:"createdAt"`
}

type AdaptationGenerationResponse struct {
	ID                 string    `json:"id"`
	AdaptedContent     string    `json:"adaptedContent"`
	Changes            []string  `json:"changes"`
	TargetGrade        string    `json:"targetGrade"`
	Difficulty         string    `json:"difficulty"`
	ReadingTimeMinutes int       `json:"readingTimeMinutes"`
	CreatedAt          time.Time `json:"createdAt"`
}

type QualityCheckResult struct {
	ID               string    `json:"id"`
	ReadabilityScore int       `json:"readabilityScore"`
	GrammarScore     int       `json:"grammarScore"`
	RelevanceScore   int       `json:"relevanceScore"`
	AccuracyScore    int       `json:"accuracyScore"`
	OverallScore     int       `json:"overallScore"`
	Suggestions      []string  `json:"suggestions"`
	CreatedAt        time.Time `json:"createdAt"`
}
