package rendering

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/formatting"
	"github.com/jonathan/resume-builder/internal/types"
)

// Renderer dispatches a document to a template by kind and enforces the caller
// contract: a document must be supplied and the accent must be a CSS color.
type Renderer struct {
	registry *Registry
	dates    *formatting.Formatter
}

// Option configures a Renderer
type Option func(*Renderer)

// WithLocale formats dates with the month names of locale.
func WithLocale(locale string) Option {
	return func(r *Renderer) {
		r.dates = formatting.NewFormatter(locale)
	}
}

// WithRegistry replaces the built-in templates.
func WithRegistry(registry *Registry) Option {
	return func(r *Renderer) {
		r.registry = registry
	}
}

// NewRenderer creates a Renderer. Without options it uses English dates and the
// built-in templates.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{dates: formatting.Default()}
	for _, opt := range opts {
		opt(r)
	}
	if r.registry == nil {
		r.registry = DefaultRegistry(r.dates)
	}
	return r
}

// Locale returns the locale used for dates by the built-in templates.
func (r *Renderer) Locale() string {
	return r.dates.Locale()
}

// Templates lists the available template kinds.
func (r *Renderer) Templates() []Template {
	kinds := r.registry.List()
	templates := make([]Template, 0, len(kinds))
	for _, kind := range kinds {
		if tmpl, err := r.registry.Get(kind); err == nil {
			templates = append(templates, tmpl)
		}
	}
	return templates
}

// Render renders doc with the template of the given kind.
func (r *Renderer) Render(kind Kind, doc *types.ResumeDocument, accent Accent) (*RenderedTree, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}
	if err := ValidateAccent(accent); err != nil {
		return nil, err
	}

	tmpl, err := r.registry.Get(kind)
	if err != nil {
		return nil, err
	}

	tree := tmpl.Render(doc, Accent(strings.TrimSpace(string(accent))))
	return &tree, nil
}
