package export

import (
	_ "embed"
	"io"
	"strings"
	"text/template"

	"github.com/jonathan/resume-builder/internal/formatting"
	"github.com/jonathan/resume-builder/internal/rendering"
)

//go:embed templates/resume.tex
var latexTemplate string

// LaTeXData is the view passed to the LaTeX template. Every string is already escaped.
type LaTeXData struct {
	AccentHex  string
	Name       string
	Headline   string
	Contact    []string
	HeaderRule bool
	Sections   []LaTeXSection
}

// LaTeXSection is one titled block of the document
type LaTeXSection struct {
	Title      string
	RuleAccent bool
	Entries    []LaTeXEntry
	Badges     []string
}

// LaTeXEntry is a group of lines typeset together
type LaTeXEntry struct {
	Lines []string
}

// WriteLaTeX writes the tree as a standalone LaTeX document.
func WriteLaTeX(w io.Writer, tree *rendering.RenderedTree) error {
	tmpl, err := parseLaTeXTemplate()
	if err != nil {
		return err
	}

	data := BuildLaTeXData(tree)
	if err := tmpl.Execute(w, data); err != nil {
		return &TemplateError{
			Message: "failed to execute template",
			Cause:   err,
		}
	}
	return nil
}

// RenderLaTeX returns the LaTeX document as a string.
func RenderLaTeX(tree *rendering.RenderedTree) (string, error) {
	var result strings.Builder
	if err := WriteLaTeX(&result, tree); err != nil {
		return "", err
	}
	return result.String(), nil
}

func parseLaTeXTemplate() (*template.Template, error) {
	// LaTeX is full of braces, so the template uses angle delimiters.
	tmpl, err := template.New("resume.tex").Delims("<<", ">>").Parse(latexTemplate)
	if err != nil {
		return nil, &TemplateError{
			Message: "failed to parse template",
			Cause:   err,
		}
	}
	return tmpl, nil
}

// BuildLaTeXData flattens a rendered tree into the LaTeX view, in document order.
func BuildLaTeXData(tree *rendering.RenderedTree) *LaTeXData {
	hex, ok := formatting.ColorHex(string(tree.Accent))
	if !ok {
		hex = "000000"
	}
	data := &LaTeXData{AccentHex: strings.ToUpper(hex)}

	if headers := tree.Root.FindAll(rendering.NodeHeader); len(headers) > 0 {
		header := headers[0]
		data.HeaderRule = header.Style != nil && header.Style.BorderColor != ""
		for _, child := range header.Children {
			switch child.Kind {
			case rendering.NodeName:
				data.Name = decorate(EscapeLaTeX(child.Text), child.Style)
			case rendering.NodeHeadline:
				data.Headline = EscapeLaTeX(child.Text)
			case rendering.NodeContact:
				for _, item := range child.Children {
					data.Contact = append(data.Contact, latexInline(item))
				}
			}
		}
	}

	for _, section := range bodySections(&tree.Root) {
		data.Sections = append(data.Sections, buildLaTeXSection(section))
	}
	return data
}

// bodySections returns sections in reading order for a single-column page.
// Sidebar sections are skipped; the main column repeats what they carry.
func bodySections(root *rendering.Node) []rendering.Node {
	var sections []rendering.Node
	root.Walk(func(node *rendering.Node) bool {
		switch {
		case node.Kind == rendering.NodeColumn && node.Role == rendering.ColumnSidebar:
			return false
		case node.Kind == rendering.NodeSection:
			sections = append(sections, *node)
			return false
		}
		return true
	})
	return sections
}

func buildLaTeXSection(section rendering.Node) LaTeXSection {
	var out LaTeXSection
	for _, child := range section.Children {
		switch child.Kind {
		case rendering.NodeHeading:
			out.Title = decorate(EscapeLaTeX(child.Text), colorOnly(child.Style))
			out.RuleAccent = child.Style != nil && child.Style.BorderColor != ""
		case rendering.NodeEntry:
			entry := LaTeXEntry{}
			for _, line := range child.Children {
				entry.Lines = append(entry.Lines, latexInline(line))
			}
			if len(entry.Lines) > 0 {
				out.Entries = append(out.Entries, entry)
			}
		case rendering.NodeText:
			out.Entries = append(out.Entries, LaTeXEntry{Lines: []string{latexInline(child)}})
		case rendering.NodeBadges:
			for _, badge := range child.Children {
				out.Badges = append(out.Badges, latexBadge(badge))
			}
		}
	}
	return out
}

func latexInline(node rendering.Node) string {
	if node.Kind == rendering.NodeLink && node.Href != "" {
		return `\href{` + EscapeLaTeXURL(node.Href) + `}{` + EscapeLaTeX(node.Text) + `}`
	}
	text := EscapeLaTeX(node.Text)
	if node.PreserveLineBreaks {
		text = LaTeXLines(node.Text)
	}
	return decorate(text, node.Style)
}

func latexBadge(node rendering.Node) string {
	text := EscapeLaTeX(node.Text)
	switch {
	case node.Style != nil && node.Style.BackgroundColor != "":
		return `\colorbox{accent}{\textcolor{white}{` + text + `}}`
	case node.Style != nil && (node.Style.BorderColor != "" || node.Style.Color != ""):
		return `\fcolorbox{accent}{white}{\textcolor{accent}{` + text + `}}`
	default:
		return `\fbox{` + text + `}`
	}
}

// decorate applies weight and accent color. Any foreground color a template
// assigns is the accent.
func decorate(text string, style *rendering.Style) string {
	if style == nil || text == "" {
		return text
	}
	if style.Color != "" {
		text = `\textcolor{accent}{` + text + `}`
	}
	if style.FontWeight == "bold" {
		text = `\textbf{` + text + `}`
	}
	return text
}

func colorOnly(style *rendering.Style) *rendering.Style {
	if style == nil || style.Color == "" {
		return nil
	}
	return &rendering.Style{Color: style.Color}
}
