package rendering

import (
	"github.com/jonathan/resume-builder/internal/formatting"
	"github.com/jonathan/resume-builder/internal/types"
)

// Classic is a single-column layout with a centered header. The accent colors the
// name, section headings and their rules, and skill badge outlines.
type Classic struct {
	Dates *formatting.Formatter
}

// NewClassic returns a Classic template that formats dates with f.
func NewClassic(f *formatting.Formatter) *Classic {
	return &Classic{Dates: f}
}

// Kind implements Template.
func (c *Classic) Kind() Kind { return KindClassic }

// Name implements Template.
func (c *Classic) Name() string { return "Classic" }

// Description implements Template.
func (c *Classic) Description() string {
	return "Single column, centered header, accent-colored headings"
}

// Render implements Template.
func (c *Classic) Render(doc *types.ResumeDocument, accent Accent) RenderedTree {
	color := string(accent)
	dates := formatterOrDefault(c.Dates)
	b := builder{
		doc:   doc,
		dates: dates,
		colors: palette{
			header:  &Style{TextAlign: "center", BorderColor: color},
			name:    &Style{Color: color, FontWeight: "bold"},
			heading: &Style{Color: color, BorderColor: color},
			badge:   &Style{Color: color, BorderColor: color},
		},
	}

	children := []Node{b.header()}
	for _, section := range []func() (Node, bool){b.summary, b.experience, b.projects, b.education, b.skills} {
		node, ok := section()
		children = appendIf(children, node, ok)
	}

	return RenderedTree{
		Template: KindClassic,
		Accent:   accent,
		Locale:   dates.Locale(),
		Root:     Node{Kind: NodeDocument, Role: string(KindClassic), Children: children},
	}
}
