package rendering

import (
	"testing"

	"github.com/jonathan/resume-builder/internal/formatting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(NewModern(nil)))
	require.NoError(t, r.Register(NewClassic(nil)))

	tmpl, err := r.Get(KindModern)
	require.NoError(t, err)
	assert.Equal(t, KindModern, tmpl.Kind())
	assert.Equal(t, []Kind{KindClassic, KindModern}, r.List())
}

func TestRegistry_Duplicate(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(NewClassic(nil)))

	err := r.Register(NewClassic(nil))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
	assert.Panics(t, func() { r.MustRegister(NewClassic(nil)) })
}

func TestRegistry_Nil(t *testing.T) {
	assert.Error(t, NewRegistry().Register(nil))
}

func TestRegistry_GetUnknown(t *testing.T) {
	_, err := NewRegistry().Get(KindClassic)
	var unknown *UnknownTemplateError
	assert.ErrorAs(t, err, &unknown)
}

func TestDefaultRegistry_UsesFormatter(t *testing.T) {
	r := DefaultRegistry(formatting.NewFormatter("de"))
	tmpl, err := r.Get(KindClassic)
	require.NoError(t, err)

	tree := tmpl.Render(fullDocument(), testAccent)
	assert.Equal(t, "de", tree.Locale)
}
