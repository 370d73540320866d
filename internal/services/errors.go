package services

import (
	"errors"
	"fmt"
)

var (
	errMissingQuestions      = errors.New("structured output has no questions")
	errMissingAssignmentBody = errors.New("structured output has no title or description")
)

// ValidationError reports a request that cannot produce a prompt. It
// fires before any gateway call and is never counted as a failed
// request.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid request: %s %s", e.Field, e.Reason)
}

// GatewayError wraps a failed outbound call to the generation gateway:
// transport errors, timeouts, and non-2xx responses. Status is 0 when
// no HTTP response was received.
type GatewayError struct {
	Status int
	Err    error
}

func (e *GatewayError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("gateway error (status %d): %v", e.Status, e.Err)
	}
	return fmt.Sprintf("gateway error: %v", e.Err)
}

func (e *GatewayError) Unwrap() error { return e.Err }

// MalformedGenerationError reports model output that could not be
// parsed for a kind with no text fallback (quiz, assignment). Raw
// carries the model text for diagnostics.
type MalformedGenerationError struct {
	Kind string
	Raw  string
	Err  error
}

func (e *MalformedGenerationError) Error() string {
	return fmt.Sprintf("malformed %s generation output: %v", e.Kind, e.Err)
}

func (e *MalformedGenerationError) Unwrap() error { return e.Err }
