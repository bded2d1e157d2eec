package core

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingCredential is returned when no inference API credential is configured
	ErrMissingCredential = errors.New("no inference API credential configured")
	// ErrNoSentencesAnalyzed is returned when every sentence in a request failed analysis
	ErrNoSentencesAnalyzed = errors.New("no sentences could be analyzed")
)

// ValidationError indicates a caller-supplied input was unusable
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// NewValidationError creates a new validation error
func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// UpstreamError indicates a hosted model call failed
type UpstreamError struct {
	Model string
	Msg   string
	Err   error
}

func (e *UpstreamError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("model %s: %s", e.Model, e.Msg)
	}
	return fmt.Sprintf("model %s: %v", e.Model, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
