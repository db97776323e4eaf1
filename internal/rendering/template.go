package rendering

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/formatting"
	"github.com/jonathan/resume-builder/internal/types"
)

// Kind names a template variant
type Kind string

// Built-in template kinds
const (
	KindClassic Kind = "classic"
	KindModern  Kind = "modern"
)

// Accent is the single theme color threaded through a template.
// Any CSS color is accepted; see formatting.ValidColor.
type Accent string

// Template is a named layout strategy. Render is pure: it never mutates doc,
// never fails for a non-nil doc, and returns a fresh tree on every call.
type Template interface {
	Kind() Kind
	Name() string
	Description() string
	Render(doc *types.ResumeDocument, accent Accent) RenderedTree
}

// ParseKind resolves a template name case-insensitively.
func ParseKind(name string) (Kind, error) {
	kind := Kind(strings.ToLower(strings.TrimSpace(name)))
	switch kind {
	case KindClassic, KindModern:
		return kind, nil
	default:
		return "", &UnknownTemplateError{Kind: Kind(name)}
	}
}

// ValidateAccent checks that accent is a usable CSS color.
func ValidateAccent(accent Accent) error {
	if strings.TrimSpace(string(accent)) == "" {
		return &AccentError{Accent: accent, Message: "accent color is required"}
	}
	if !formatting.ValidColor(string(accent)) {
		return &AccentError{Accent: accent, Message: "not a CSS color"}
	}
	return nil
}

func formatterOrDefault(f *formatting.Formatter) *formatting.Formatter {
	if f == nil {
		return formatting.Default()
	}
	return f
}
