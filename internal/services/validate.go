package services

import "github.com/eduassist/eduassist-backend/internal/types"

// Validation fires before any metrics or gateway activity, so a
// rejected request never shows up in the failure counters.

func validateContentRequest(req types.ContentRequest) error {
	switch {
	case req.Subject == "":
		return &ValidationError{Field: "subject", Reason: "is required"}
	case req.Grade == "":
		return &ValidationError{Field: "grade", Reason: "is required"}
	case req.Topic == "":
		return &ValidationError{Field: "topic", Reason: "is required"}
	case req.Difficulty == "":
		return &ValidationError{Field: "difficulty", Reason: "is required"}
	case req.Language == "":
		return &ValidationError{Field: "language", Reason: "is required"}
	}
	return nil
}

func validateQuizRequest(req types.QuizRequest) error {
	switch {
	case req.Subject == "":
		return &ValidationError{Field: "subject", Reason: "is required"}
	case req.Grade == "":
		return &ValidationError{Field: "grade", Reason: "is required"}
	case req.Topic == "":
		return &ValidationError{Field: "topic", Reason: "is required"}
	case req.Difficulty == "":
		return &ValidationError{Field: "difficulty", Reason: "is required"}
	case req.Language == "":
		return &ValidationError{Field: "language", Reason: "is required"}
	case req.NumberOfQuestions <= 0:
		return &ValidationError{Field: "numberOfQuestions", Reason: "must be positive"}
	}
	return nil
}

func validateAssignmentRequest(req types.AssignmentRequest) error {
	switch {
	case req.Subject == "":
		return &ValidationError{Field: "subject", Reason: "is required"}
	case req.Grade == "":
		return &ValidationError{Field: "grade", Reason: "is required"}
	case req.Topic == "":
		return &ValidationError{Field: "topic", Reason: "is required"}
	case req.Difficulty == "":
		return &ValidationError{Field: "difficulty", Reason: "is required"}
	case req.Language == "":
		return &ValidationError{Field: "language", Reason: "is required"}
	case req.AssignmentType == "":
		return &ValidationError{Field: "assignmentType", Reason: "is required"}
	}
	return nil
}

func validateSummaryRequest(req types.SummaryRequest) error {
	switch {
	case req.Content == "":
		return &ValidationError{Field: "content", Reason: "is required"}
	case req.Subject == "":
		return &ValidationError{Field: "subject", Reason: "is required"}
	case req.Grade == "":
		return &ValidationError{Field: "grade", Reason: "is required"}
	case req.Language == "":
		return &ValidationError{Field: "language", Reason: "is required"}
	}
	return nil
}

func validateExplanationRequest(req types.ExplanationRequest) error {
	switch {
	case req.Concept == "":
		return &ValidationError{Field: "concept", Reason: "is required"}
	case req.Subject == "":
		return &ValidationError{Field: "subject", Reason: "is required"}
	case req.Grade == "":
		return &ValidationError{Field: "grade", Reason: "is required"}
	case req.Language == "":
		return &ValidationError{Field: "language", Reason: "is required"}
	}
	return nil
}

func validateTranslationRequest(req types.TranslationRequest) error {
	switch {
	case req.Content == "":
		return &ValidationError{Field: "content", Reason: "is required"}
	case req.SourceLanguage == "":
		return &ValidationError{Field: "sourceLanguage", Reason: "is required"}
	case req.TargetLanguage == "":
		return &ValidationError{Field: "targetLanguage", Reason: "is required"}
	case req.Subject == "":
		return &ValidationError{Field: "subject", Reason: "is required"}
	case req.Grade == "":
		return &ValidationError{Field: "grade", Reason: "is required"}
	}
	return nil
}

func validateAdaptationRequest(req types.AdaptationRequest) error {
	switch {
	case req.Content == "":
		return &ValidationError{Field: "content", Reason: "is required"}
	case req.AdaptationType == "":
		return &ValidationError{Field: "adaptationType", Reason: "is required"}
	case req.TargetGrade == "":
		return &ValidationError{Field: "targetGrade", Reason: "is required"}
	case req.Subject == "":
		return &ValidationError{Field: "subject", Reason: "is required"}
	case req.Language == "":
		return &ValidationError{Field: "language", Reason: "is required"}
	}
	return nil
}

func validateQualityCheckRequest(req types.QualityCheckRequest) error {
	switch {
	case req.Content == "":
		return &ValidationError{Field: "content", Reason: "is required"}
	case req.ContentType == "":
		return &ValidationError{Field: "contentType", Reason: "is required"}
	case req.Subject == "":
		return &ValidationError{Field: "subject", Reason: "is required"}
	case req.Grade == "":
		return &ValidationError{Field: "grade", Reason: "is required"}
	}
	return nil
}
