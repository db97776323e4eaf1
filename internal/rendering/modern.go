package rendering

import (
	"github.com/jonathan/resume-builder/internal/formatting"
	"github.com/jonathan/resume-builder/internal/types"
)

// Modern is a two-column layout. The sidebar carries the header and a skills list;
// the main column carries summary, experience, projects, and a grid of education
// next to a second skills block. The accent colors section dividers, company names,
// and skill badge backgrounds.
type Modern struct {
	Dates *formatting.Formatter
}

// NewModern returns a Modern template that formats dates with f.
func NewModern(f *formatting.Formatter) *Modern {
	return &Modern{Dates: f}
}

// Kind implements Template.
func (m *Modern) Kind() Kind { return KindModern }

// Name implements Template.
func (m *Modern) Name() string { return "Modern" }

// Description implements Template.
func (m *Modern) Description() string {
	return "Two columns: contact and skills sidebar, accent dividers in the main column"
}

// Render implements Template.
func (m *Modern) Render(doc *types.ResumeDocument, accent Accent) RenderedTree {
	color := string(accent)
	dates := formatterOrDefault(m.Dates)
	b := builder{
		doc:   doc,
		dates: dates,
		colors: palette{
			name:    &Style{FontWeight: "bold"},
			heading: &Style{BorderColor: color},
			company: &Style{Color: color},
			badge:   &Style{BackgroundColor: color, Color: "#ffffff"},
		},
	}

	sidebar := []Node{b.header()}
	skills, hasSkills := b.skills()
	sidebar = appendIf(sidebar, skills, hasSkills)

	var main []Node
	for _, section := range []func() (Node, bool){b.summary, b.experience, b.projects} {
		node, ok := section()
		main = appendIf(main, node, ok)
	}

	education, hasEducation := b.education()
	if hasEducation || hasSkills {
		var grid []Node
		grid = appendIf(grid, education, hasEducation)
		if hasSkills {
			// The grid gets its own copy of the skills block.
			again, _ := b.skills()
			grid = append(grid, again)
		}
		main = append(main, Node{Kind: NodeGrid, Children: grid})
	}

	return RenderedTree{
		Template: KindModern,
		Accent:   accent,
		Locale:   dates.Locale(),
		Root: Node{Kind: NodeDocument, Role: string(KindModern), Children: []Node{
			{Kind: NodeColumn, Role: ColumnSidebar, Children: sidebar},
			{Kind: NodeColumn, Role: ColumnMain, Children: main},
		}},
	}
}
