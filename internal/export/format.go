package export

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-builder/internal/rendering"
)

// Format names an output format
type Format string

// Supported output formats
const (
	FormatJSON  Format = "json"
	FormatHTML  Format = "html"
	FormatLaTeX Format = "latex"
	FormatPDF   Format = "pdf"
)

// Formats lists every supported format.
func Formats() []Format {
	return []Format{FormatJSON, FormatHTML, FormatLaTeX, FormatPDF}
}

// ParseFormat resolves a format name case-insensitively. "tex" is accepted for LaTeX.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatJSON, FormatHTML, FormatLaTeX, FormatPDF:
		return f, nil
	case "tex":
		return FormatLaTeX, nil
	default:
		return "", fmt.Errorf("unknown output format %q (expected one of json, html, latex, pdf)", name)
	}
}

// Extension returns the file extension for a format, including the dot.
func (f Format) Extension() string {
	switch f {
	case FormatLaTeX:
		return ".tex"
	default:
		return "." + string(f)
	}
}

// Options configures Write
type Options struct {
	PDF PDFOptions
}

// Write renders tree to w in the given format.
func Write(ctx context.Context, w io.Writer, tree *rendering.RenderedTree, format Format, opts Options) error {
	if tree == nil {
		return &ExportError{Format: format, Message: "rendered tree is required"}
	}

	switch format {
	case FormatJSON:
		return WriteJSON(w, tree)
	case FormatHTML:
		return WriteHTML(w, tree)
	case FormatLaTeX:
		return WriteLaTeX(w, tree)
	case FormatPDF:
		var page bytes.Buffer
		if err := WriteHTML(&page, tree); err != nil {
			return err
		}
		pdf, err := RenderPDF(ctx, page.Bytes(), opts.PDF)
		if err != nil {
			return err
		}
		if _, err := w.Write(pdf); err != nil {
			return &ExportError{Format: format, Message: "failed to write output", Cause: err}
		}
		return nil
	default:
		return &ExportError{Format: format, Message: "unsupported format"}
	}
}
