// Package export writes rendered resume trees in presentation formats.
package export

import "fmt"

// TemplateError represents an error parsing or executing an output template
type TemplateError struct {
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("template error: %s", e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// ExportError represents a failure producing a given output format
type ExportError struct {
	Format  Format
	Message string
	Cause   error
}

func (e *ExportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("export %s: %s: %v", e.Format, e.Message, e.Cause)
	}
	return fmt.Sprintf("export %s: %s", e.Format, e.Message)
}

func (e *ExportError) Unwrap() error {
	return e.Cause
}
