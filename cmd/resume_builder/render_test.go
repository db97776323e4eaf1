package main

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/rendering"
)

func TestRenderCommand_HTMLToStdout(t *testing.T) {
	input := writeTempFile(t, "resume.json", sampleDocument)

	stdout, _, err := executeCommand(t, "render", "--input", input)
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(stdout))
	require.NoError(t, err)
	assert.Equal(t, 1, doc.Find("main.classic").Length())
	assert.Equal(t, "Ada Lovelace", doc.Find("h1").Text())
	assert.Contains(t, doc.Find("section.experience").Text(), "May 2021 - Present")
}

func TestRenderCommand_FlagsOverrideConfig(t *testing.T) {
	input := writeTempFile(t, "resume.yaml", "personal_info:\n  full_name: Ada\nexperience:\n  - start_date: 2021-05\n")
	cfg := writeTempFile(t, "config.json", `{"template": "classic", "format": "latex", "accent": "red"}`)

	stdout, _, err := executeCommand(t, "render", "--config", cfg, "--input", input,
		"--template", "modern", "--format", "json", "--locale", "fr")
	require.NoError(t, err)

	var tree rendering.RenderedTree
	require.NoError(t, json.Unmarshal([]byte(stdout), &tree))
	assert.Equal(t, rendering.KindModern, tree.Template)
	assert.Equal(t, rendering.Accent("red"), tree.Accent)
	assert.Equal(t, "fr", tree.Locale)
	assert.Contains(t, stdout, "mai 2021")
}

func TestRenderCommand_WritesFile(t *testing.T) {
	input := writeTempFile(t, "resume.json", sampleDocument)
	out := filepath.Join(t.TempDir(), "nested", "resume.tex")

	stdout, _, err := executeCommand(t, "render", "-i", input, "-f", "latex", "-o", out, "-a", "#0f766e")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Successfully rendered classic resume")
	assert.Contains(t, stdout, "Output: "+out)

	content, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(content), `\definecolor{accent}{HTML}{0F766E}`)
	assert.Contains(t, string(content), `Ada Lovelace`)
}

func TestRenderCommand_Errors(t *testing.T) {
	input := writeTempFile(t, "resume.json", sampleDocument)
	invalid := writeTempFile(t, "invalid.json", `{"skills": "Go"}`)

	tests := []struct {
		name    string
		args    []string
		errPart string
	}{
		{"missing input", []string{"render"}, `required flag(s) "input" not set`},
		{"unknown template", []string{"render", "-i", input, "-t", "fancy"}, "unknown template"},
		{"bad accent", []string{"render", "-i", input, "-a", "not-a-color"}, "not a CSS color"},
		{"bad format", []string{"render", "-i", input, "-f", "docx"}, "unknown output format"},
		{"pdf needs out", []string{"render", "-i", input, "-f", "pdf"}, "--out is required"},
		{"schema failure", []string{"render", "-i", invalid}, "schema validation"},
		{"missing file", []string{"render", "-i", filepath.Join(t.TempDir(), "nope.json")}, "file not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := executeCommand(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errPart)
		})
	}
}

func TestRenderCommand_VerboseLogsLint(t *testing.T) {
	input := writeTempFile(t, "resume.json", `{"experience": [{"start_date": "2021-13"}]}`)

	_, stderr, err := executeCommand(t, "render", "-i", input, "--verbose")
	require.NoError(t, err)
	assert.Contains(t, stderr, "RESUME DOCUMENT")
	assert.Contains(t, stderr, "RENDERED CLASSIC")
	assert.Contains(t, stderr, "malformed_date")
}

func TestRenderCommand_Binary(t *testing.T) {
	binaryPath := getBinaryPath(t)
	input := writeTempFile(t, "resume.json", sampleDocument)

	cmd := exec.Command(binaryPath, "render", "--input", input, "--format", "json")
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, string(output))
	assert.Contains(t, string(output), `"template": "classic"`)
}
