package rendering

import (
	"errors"
	"fmt"
)

// ErrNilDocument is returned when Render is called without a document.
// It signals a bug in the caller, not a recoverable condition.
var ErrNilDocument = errors.New("render error: resume document is required")

// UnknownTemplateError represents a request for a template that is not registered
type UnknownTemplateError struct {
	Kind Kind
}

func (e *UnknownTemplateError) Error() string {
	return fmt.Sprintf("template error: unknown template %q", e.Kind)
}

// AccentError represents an unusable accent color
type AccentError struct {
	Accent  Accent
	Message string
}

func (e *AccentError) Error() string {
	return fmt.Sprintf("accent error: %s: %q", e.Message, e.Accent)
}

// RenderError represents a general rendering failure
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
