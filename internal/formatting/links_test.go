package formatting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayURL(t *testing.T) {
	cases := map[string]string{
		"https://www.linkedin.com/in/example": "linkedin.com/in/example",
		"http://example.com":                  "example.com",
		"https://example.com/me":              "example.com/me",
		"www.example.com":                     "example.com",
		"example.com":                         "example.com",
		"HTTPS://WWW.Example.com":             "Example.com",
		"":                                    "",
	}
	for input, want := range cases {
		t.Run(input, func(t *testing.T) {
			assert.Equal(t, want, DisplayURL(input))
		})
	}
}

func TestIsWebURL(t *testing.T) {
	assert.True(t, IsWebURL("https://www.linkedin.com/in/example"))
	assert.True(t, IsWebURL("example.com/me"))
	assert.False(t, IsWebURL(""))
	assert.False(t, IsWebURL("ftp://example.com"))
	assert.False(t, IsWebURL("not a url"))
	assert.False(t, IsWebURL("localhost"))
}
