package service

import (
	"errors"
	"fmt"
)

// ErrSuggestionNotFound means an opaque suggestion reference no longer
// resolves to a live suggestion, typically because the prediction batch was
// refreshed. This is expected under concurrent refresh and performs no
// mutation; it must not be escalated to a fatal error.
var ErrSuggestionNotFound = errors.New("could not find suggestion")

// ConfigurationError means a referenced layer, feature or strategy does not
// exist. Surfaced immediately, never retried.
type ConfigurationError struct {
	Kind string // "layer", "feature", "strategy"
	Ref  string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("no such %s: [%s]", e.Kind, e.Ref)
}

// AnnotationError is a semantic conflict applying a suggestion to the current
// document state, e.g. an incompatible overlapping annotation. It carries
// enough context for the UI to report to the user.
type AnnotationError struct {
	DocumentName string
	Begin        int
	End          int
	Message      string
	Cause        error
}

func (e *AnnotationError) Error() string {
	return fmt.Sprintf("cannot apply suggestion at [%d-%d] in %q: %s",
		e.Begin, e.End, e.DocumentName, e.Message)
}

func (e *AnnotationError) Unwrap() error {
	return e.Cause
}
