package services

import (
	"errors"
	"strings"
	"testing"
)

func TestReadingTime(t *testing.T) {
	cases := []struct {
		words int
		want  int
	}{
		{0, 0},
		{1, 1},
		{200, 1},
		{201, 2},
	}
	for _, tc := range cases {
		content := strings.TrimSpace(strings.Repeat("word ", tc.words))
		if got := readingTime(content); got != tc.want {
			t.Fatalf("readingTime(%d words) = %d, want %d", tc.words, got, tc.want)
		}
	}
}

func TestExtractKeywordsDropsShortTokens(t *testing.T) {
	keywords := extractKeywords("the cat sat on the mat and the cat was happy")
	for _, kw := range keywords {
		if len(kw) <= 3 {
			t.Fatalf("keyword %q has length <= 3", kw)
		}
	}
	if len(keywords) > 10 {
		t.Fatalf("got %d keywords, want at most 10", len(keywords))
	}
}

func TestExtractKeywordsFrequencyOrder(t *testing.T) {
	keywords := extractKeywords("apple banana apple cherry apple banana")
	want := []string{"apple", "banana", "cherry"}
	if len(keywords) != len(want) {
		t.Fatalf("got %v, want %v", keywords, want)
	}
	for i := range want {
		if keywords[i] != want[i] {
			t.Fatalf("keyword[%d] = %q, want %q (got %v)", i, keywords[i], want[i], keywords)
		}
	}
}

func TestExtractKeywordsStripsPunctuation(t *testing.T) {
	keywords := extractKeywords("Fractions! Fractions? Fractions.")
	if len(keywords) != 1 || keywords[0] != "fractions" {
		t.Fatalf("got %v, want [fractions]", keywords)
	}
}

func TestAutoSummary(t *testing.T) {
	short := "just a few words"
	if got := autoSummary(short); got != short {
		t.Fatalf("autoSummary(short) = %q, want %q", got, short)
	}

	long := strings.TrimSpace(strings.Repeat("tok ", 51))
	got := autoSummary(long)
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("long summary missing ellipsis: %q", got)
	}
	if n := len(strings.Fields(strings.TrimSuffix(got, "..."))); n != 50 {
		t.Fatalf("long summary has %d tokens, want 50", n)
	}

	exact := strings.TrimSpace(strings.Repeat("tok ", 50))
	if strings.HasSuffix(autoSummary(exact), "...") {
		t.Fatalf("ellipsis appended to content of exactly 50 tokens")
	}
}

func TestAssignmentDuration(t *testing.T) {
	cases := []struct {
		duration string
		aType    string
		want     int
	}{
		{"medium", "project", 120},
		{"unknown", "unknown", 60},
		{"short", "homework", 30},
		{"long", "research", 360},
		{"short", "presentation", 45},
		{"medium", "lab", 72},
	}
	for _, tc := range cases {
		if got := assignmentDuration(tc.duration, tc.aType); got != tc.want {
			t.Fatalf("assignmentDuration(%q, %q) = %d, want %d", tc.duration, tc.aType, got, tc.want)
		}
	}
}

func TestQuizTime(t *testing.T) {
	if got := quizTime(5, 0); got != 10 {
		t.Fatalf("quizTime(5, 0) = %d, want 10", got)
	}
	if got := quizTime(5, 30); got != 30 {
		t.Fatalf("quizTime(5, 30) = %d, want explicit limit 30", got)
	}
}

func TestDifficultyForGrade(t *testing.T) {
	cases := []struct {
		grade string
		want  string
	}{
		{"1", "beginner"},
		{"6", "beginner"},
		{"7", "intermediate"},
		{"9", "intermediate"},
		{"10", "advanced"},
		{"12th", "advanced"},
		{"5th grade", "beginner"},
	}
	for _, tc := range cases {
		got, err := difficultyForGrade(tc.grade)
		if err != nil {
			t.Fatalf("difficultyForGrade(%q) returned error: %v", tc.grade, err)
		}
		if got != tc.want {
			t.Fatalf("difficultyForGrade(%q) = %q, want %q", tc.grade, got, tc.want)
		}
	}

	_, err := difficultyForGrade("kindergarten")
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError for non-numeric grade, got %v", err)
	}
}

func TestContentTitle(t *testing.T) {
	if got := contentTitle("Fractions", "Math"); got != "Fractions - Math" {
		t.Fatalf("contentTitle = %q", got)
	}
	if got := quizTitle("Fractions"); got != "Quiz: Fractions" {
		t.Fatalf("quizTitle = %q", got)
	}
}
