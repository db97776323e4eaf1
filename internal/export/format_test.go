package export

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/rendering"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		wantErr  bool
	}{
		{"json", FormatJSON, false},
		{" HTML ", FormatHTML, false},
		{"latex", FormatLaTeX, false},
		{"tex", FormatLaTeX, false},
		{"pdf", FormatPDF, false},
		{"docx", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFormatExtension(t *testing.T) {
	assert.Equal(t, ".json", FormatJSON.Extension())
	assert.Equal(t, ".html", FormatHTML.Extension())
	assert.Equal(t, ".tex", FormatLaTeX.Extension())
	assert.Equal(t, ".pdf", FormatPDF.Extension())
}

func TestWrite_Dispatch(t *testing.T) {
	tree := renderTree(t, rendering.KindClassic, sampleDocument())

	for _, format := range []Format{FormatJSON, FormatHTML, FormatLaTeX} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Write(context.Background(), &buf, tree, format, Options{}))
			assert.NotZero(t, buf.Len())
		})
	}
}

func TestWrite_Errors(t *testing.T) {
	var buf bytes.Buffer

	err := Write(context.Background(), &buf, nil, FormatJSON, Options{})
	var exportErr *ExportError
	require.True(t, errors.As(err, &exportErr))
	assert.Equal(t, FormatJSON, exportErr.Format)

	tree := renderTree(t, rendering.KindClassic, sampleDocument())
	err = Write(context.Background(), &buf, tree, Format("docx"), Options{})
	require.True(t, errors.As(err, &exportErr))
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestErrorMessages(t *testing.T) {
	cause := errors.New("boom")

	tmplErr := &TemplateError{Message: "failed to parse template", Cause: cause}
	assert.Equal(t, "template error: failed to parse template: boom", tmplErr.Error())
	assert.ErrorIs(t, tmplErr, cause)

	exportErr := &ExportError{Format: FormatPDF, Message: "browser printing failed"}
	assert.Equal(t, "export pdf: browser printing failed", exportErr.Error())
}
