package export

import (
	_ "embed"
	"html/template"
	"io"
	"strings"

	"golang.org/x/text/language"

	"github.com/jonathan/resume-builder/internal/formatting"
	"github.com/jonathan/resume-builder/internal/rendering"
)

//go:embed templates/resume.html
var htmlTemplate string

var (
	allowedAlign  = map[string]bool{"left": true, "center": true, "right": true, "justify": true}
	allowedWeight = map[string]bool{"normal": true, "bold": true, "600": true, "700": true}
)

type htmlPage struct {
	Lang  string
	Title string
	Root  rendering.Node
}

// WriteHTML writes the tree as a standalone HTML page.
func WriteHTML(w io.Writer, tree *rendering.RenderedTree) error {
	tmpl, err := template.New("resume.html").Funcs(template.FuncMap{
		"style": inlineStyle,
	}).Parse(htmlTemplate)
	if err != nil {
		return &TemplateError{
			Message: "failed to parse template",
			Cause:   err,
		}
	}

	page := htmlPage{
		Lang:  htmlLang(tree.Locale),
		Title: tree.Name(),
		Root:  tree.Root,
	}
	if err := tmpl.Execute(w, page); err != nil {
		return &TemplateError{
			Message: "failed to execute template",
			Cause:   err,
		}
	}
	return nil
}

// RenderHTML returns the HTML page as a string.
func RenderHTML(tree *rendering.RenderedTree) (string, error) {
	var result strings.Builder
	if err := WriteHTML(&result, tree); err != nil {
		return "", err
	}
	return result.String(), nil
}

func htmlLang(locale string) string {
	tag, err := language.Parse(formatting.NormalizeLocale(locale))
	if err != nil || tag == language.Und {
		return formatting.DefaultLocale
	}
	return tag.String()
}

// inlineStyle turns a node's style into a CSS declaration list. Only values
// that are known colors or whitelisted keywords are emitted, so the result is
// safe to mark as CSS.
func inlineStyle(node rendering.Node) template.CSS {
	var decls []string
	if node.Style != nil {
		s := node.Style
		if s.Color != "" && formatting.ValidColor(s.Color) {
			decls = append(decls, "color: "+s.Color)
		}
		if s.BackgroundColor != "" && formatting.ValidColor(s.BackgroundColor) {
			decls = append(decls, "background-color: "+s.BackgroundColor)
		}
		if s.BorderColor != "" && formatting.ValidColor(s.BorderColor) {
			decls = append(decls, "border-color: "+s.BorderColor)
		}
		if allowedAlign[s.TextAlign] {
			decls = append(decls, "text-align: "+s.TextAlign)
		}
		if allowedWeight[s.FontWeight] {
			decls = append(decls, "font-weight: "+s.FontWeight)
		}
	}
	if node.PreserveLineBreaks {
		decls = append(decls, "white-space: pre-line")
	}
	return template.CSS(strings.Join(decls, "; "))
}
