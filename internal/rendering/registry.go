package rendering

import (
	"fmt"
	"sort"
	"sync"

	"github.com/jonathan/resume-builder/internal/formatting"
)

// Registry stores templates by kind. It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	templates map[Kind]Template
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{templates: make(map[Kind]Template)}
}

// DefaultRegistry returns a registry holding the built-in templates, formatting dates with f.
func DefaultRegistry(f *formatting.Formatter) *Registry {
	r := NewRegistry()
	r.MustRegister(NewClassic(f))
	r.MustRegister(NewModern(f))
	return r
}

// Register adds a template by its Kind(). Duplicate kinds return an error.
func (r *Registry) Register(tmpl Template) error {
	if tmpl == nil {
		return fmt.Errorf("template error: template is required")
	}
	kind := tmpl.Kind()
	if kind == "" {
		return fmt.Errorf("template error: template kind is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.templates[kind]; exists {
		return fmt.Errorf("template error: template %q already registered", kind)
	}
	r.templates[kind] = tmpl
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(tmpl Template) {
	if err := r.Register(tmpl); err != nil {
		panic(err)
	}
}

// Get retrieves a template by kind.
func (r *Registry) Get(kind Kind) (Template, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tmpl, ok := r.templates[kind]
	if !ok {
		return nil, &UnknownTemplateError{Kind: kind}
	}
	return tmpl, nil
}

// List returns the registered kinds in sorted order.
func (r *Registry) List() []Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]Kind, 0, len(r.templates))
	for kind := range r.templates {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
