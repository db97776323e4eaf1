// Package types provides type definitions for structured data used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Severity levels for document lint findings
const (
	SeverityWarning = "warning"
	SeverityInfo    = "info"
)

// Violation represents a single lint finding on a resume document.
// Findings never block rendering; they explain what the output will look like.
type Violation struct {
	Type     string `json:"type"`
	Severity string `json:"severity"`
	Details  string `json:"details"`
	Field    string `json:"field,omitempty"` // JSON path, e.g. experience[0].start_date
	Section  string `json:"section,omitempty"`
}

// Violations represents a collection of lint findings
type Violations struct {
	Violations []Violation `json:"violations"`
}

// Count returns the number of findings with the given severity.
func (v *Violations) Count(severity string) int {
	if v == nil {
		return 0
	}
	n := 0
	for _, violation := range v.Violations {
		if violation.Severity == severity {
			n++
		}
	}
	return n
}
