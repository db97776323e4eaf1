package ingestion

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// NormalizeLineEndings converts CRLF and lone CR line endings to LF
func NormalizeLineEndings(content string) string {
	if !strings.Contains(content, "\r") {
		return content
	}
	content = strings.ReplaceAll(content, "\r\n", "\n")
	return strings.ReplaceAll(content, "\r", "\n")
}

func normalizePtr(s *string) {
	if s != nil {
		*s = NormalizeLineEndings(*s)
	}
}

// NormalizeDocument rewrites line endings in every multi-line field of doc in place.
func NormalizeDocument(doc *types.ResumeDocument) {
	if doc == nil {
		return
	}
	normalizePtr(doc.ProfessionalSummary)
	for i := range doc.Experience {
		normalizePtr(doc.Experience[i].Description)
	}
	for i := range doc.Project {
		normalizePtr(doc.Project[i].Description)
	}
}
