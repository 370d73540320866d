package services

import (
	"fmt"
	"math"
	"strings"
)

// Metadata enrichment: pure, deterministic helpers applied after
// parsing. Each is independent of the others.

func contentTitle(topic, subject string) string {
	return fmt.Sprintf("%s - %s", topic, subject)
}

func quizTitle(topic string) string {
	return fmt.Sprintf("Quiz: %s", topic)
}

func assignmentTitle(topic string) string {
	return fmt.Sprintf("Assignment: %s", topic)
}

func wordCount(content string) int {
	return len(strings.Fields(content))
}

// autoSummary keeps the first 50 tokens, joined by single spaces, with
// a trailing ellipsis only when the content is longer than that.
func autoSummary(content string) string {
	tokens := strings.Fields(content)
	if len(tokens) <= 50 {
		return strings.Join(tokens, " ")
	}
	return strings.Join(tokens[:50], " ") + "..."
}

// extractKeywords returns the 10 most frequent tokens longer than 3
// characters, lowercased and stripped of punctuation. Ties keep the
// order in which tokens were first seen.
func extractKeywords(content string) []string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r >= 0x80: // keep non-ASCII letters as-is
			return r
		default:
			return ' '
		}
	}, strings.ToLower(content))

	counts := map[string]int{}
	var order []string
	for _, tok := range strings.Fields(cleaned) {
		if len([]rune(tok)) <= 3 {
			continue
		}
		if _, seen := counts[tok]; !seen {
			order = append(order, tok)
		}
		counts[tok]++
	}

	keywords := make([]string, 0, 10)
	for len(keywords) < 10 && len(order) > 0 {
		best := -1
		for i, tok := range order {
			if best == -1 || counts[tok] > counts[order[best]] {
				best = i
			}
		}
		keywords = append(keywords, order[best])
		order = append(order[:best], order[best+1:]...)
	}
	return keywords
}

// readingTime estimates minutes at 200 words per minute.
func readingTime(content string) int {
	return int(math.Ceil(float64(wordCount(content)) / 200))
}

// quizTime prefers an explicit time limit; otherwise two minutes per
// question.
func quizTime(questionCount, timeLimit int) int {
	if timeLimit > 0 {
		return timeLimit
	}
	return questionCount * 2
}

var assignmentBaseMinutes = map[string]int{
	"short":  30,
	"medium": 60,
	"long":   120,
}

var assignmentTypeMultiplier = map[string]float64{
	"homework":     1,
	"project":      2,
	"research":     3,
	"presentation": 1.5,
	"lab":          1.2,
}

// assignmentDuration applies the base-minutes table and the type
// multiplier, defaulting to 60 minutes and a 1x multiplier for unknown
// values.
func assignmentDuration(duration, assignmentType string) int {
	base, ok := assignmentBaseMinutes[duration]
	if !ok {
		base = 60
	}
	mult, ok := assignmentTypeMultiplier[assignmentType]
	if !ok {
		mult = 1
	}
	return int(math.Round(float64(base) * mult))
}

// difficultyForGrade classifies a grade string by its leading integer:
// up to 6 is beginner, up to 9 intermediate, above that advanced.
func difficultyForGrade(grade string) (string, error) {
	level, err := parseGradeLevel(grade)
	if err != nil {
		return "", err
	}
	switch {
	case level <= 6:
		return "beginner", nil
	case level <= 9:
		return "intermediate", nil
	default:
		return "advanced", nil
	}
}

// parseGradeLevel extracts the leading integer from grade strings like
// "5", "5th" or "10". A grade with no leading digits is a validation
// error.
func parseGradeLevel(grade string) (int, error) {
	s := strings.TrimSpace(grade)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, &ValidationError{Field: "grade", Reason: fmt.Sprintf("%q has no leading grade number", grade)}
	}
	level := 0
	for _, c := range s[:end] {
		level = level*10 + int(c-'0')
	}
	return level, nil
}
