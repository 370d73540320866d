package services

import (
	"strings"
	"testing"

	"github.com/eduassist/eduassist-backend/internal/types"
)

func TestBuildPromptNeverEmpty(t *testing.T) {
	cases := []struct {
		name  string
		build func() string
	}{
		{"content", func() string {
			return buildContentPrompt(types.ContentRequest{Subject: "Math", Grade: "5", Topic: "Fractions", Difficulty: "beginner", Language: "English"})
		}},
		{"quiz", func() string {
			return buildQuizPrompt(types.QuizRequest{Subject: "Math", Grade: "5", Topic: "Fractions", Difficulty: "beginner", Language: "English", NumberOfQuestions: 5})
		}},
		{"assignment", func() string {
			return buildAssignmentPrompt(types.AssignmentRequest{Subject: "Science", Grade: "8", Topic: "Photosynthesis", Difficulty: "intermediate", Language: "English", AssignmentType: "project", Duration: "medium"})
		}},
		{"summary", func() string {
			return buildSummaryPrompt(types.SummaryRequest{Content: "Cells divide through mitosis.", Subject: "Biology", Grade: "9", Language: "English"})
		}},
		{"explanation", func() string {
			return buildExplanationPrompt(types.ExplanationRequest{Concept: "Gravity", Subject: "Physics", Grade: "7", Language: "English"})
		}},
		{"translation", func() string {
			return buildTranslationPrompt(types.TranslationRequest{Content: "The water cycle", SourceLanguage: "English", TargetLanguage: "Spanish", Subject: "Geography", Grade: "6"})
		}},
		{"adaptation", func() string {
			return buildAdaptationPrompt(types.AdaptationRequest{Content: "Advanced calculus text", AdaptationType: "simplify", TargetGrade: "8", Subject: "Math", Language: "English"})
		}},
		{"quality_check", func() string {
			return buildQualityCheckPrompt(types.QualityCheckRequest{Content: "Sample lesson", ContentType: "lesson", Subject: "History", Grade: "10"})
		}},
	}

	for _, tc := range cases {
		prompt := tc.build()
		if strings.TrimSpace(prompt) == "" {
			t.Fatalf("%s: prompt is empty or whitespace-only", tc.name)
		}
	}
}

func TestBuildPromptIncludesFields(t *testing.T) {
	prompt := buildQuizPrompt(types.QuizRequest{
		Subject:           "Math",
		Grade:             "5",
		Topic:             "Fractions",
		Difficulty:        "beginner",
		Language:          "English",
		QuestionTypes:     []string{"multiple_choice", "true_false"},
		NumberOfQuestions: 5,
	})
	for _, want := range []string{"Fractions", "Math", "beginner", "multiple_choice, true_false", "5"} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("quiz prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestBuildPromptCustomInstruction(t *testing.T) {
	base := types.ContentRequest{Subject: "Math", Grade: "5", Topic: "Fractions", Difficulty: "beginner", Language: "English"}

	withCustom := base
	withCustom.CustomPrompt = "Focus on visual models."
	if !strings.Contains(buildContentPrompt(withCustom), "Focus on visual models.") {
		t.Fatalf("custom prompt was not rendered")
	}

	// A present-but-empty custom prompt must be omitted, not rendered
	// as an empty instruction.
	withEmpty := base
	withEmpty.CustomPrompt = "   "
	if strings.Contains(buildContentPrompt(withEmpty), "Additional instructions") {
		t.Fatalf("empty custom prompt was rendered")
	}
}
