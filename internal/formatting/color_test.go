package formatting

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidColor(t *testing.T) {
	valid := []string{"#2563eb", "#fff", "rgb(37, 99, 235)", "rgba(0,0,0,0.5)", "hsl(220, 83%, 53%)", "navy", "DarkSlateBlue"}
	for _, c := range valid {
		assert.True(t, ValidColor(c), c)
	}

	invalid := []string{"", "   ", "blueish", "#12", "rgb(1,2)", "url(javascript:alert(1))", "red; background: url(x)"}
	for _, c := range invalid {
		assert.False(t, ValidColor(c), c)
	}
}

func TestColorHex(t *testing.T) {
	cases := map[string]string{
		"#2563eb":          "2563EB",
		"#abc":             "AABBCC",
		"navy":             "000080",
		"rgb(37, 99, 235)": "2563EB",
	}
	for input, want := range cases {
		got, ok := ColorHex(input)
		require.True(t, ok, input)
		assert.Equal(t, want, got, input)
	}

	_, ok := ColorHex("hsl(220, 83%, 53%)")
	assert.False(t, ok)
	_, ok = ColorHex("rgb(300, 0, 0)")
	assert.False(t, ok)
}

func TestRegisterColorValidation(t *testing.T) {
	v := validator.New()
	require.NoError(t, RegisterColorValidation(v))

	type themed struct {
		Accent string `validate:"csscolor"`
	}
	assert.NoError(t, v.Struct(themed{Accent: "teal"}))
	assert.Error(t, v.Struct(themed{Accent: "not-a-color"}))
}
