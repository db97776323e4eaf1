// Package rendering maps a resume document onto named template layouts.
package rendering

// NodeKind identifies the visual role of a node in a rendered tree
type NodeKind string

// Node kinds produced by the built-in templates
const (
	NodeDocument NodeKind = "document"
	NodeColumn   NodeKind = "column"
	NodeGrid     NodeKind = "grid"
	NodeHeader   NodeKind = "header"
	NodeName     NodeKind = "name"
	NodeHeadline NodeKind = "headline"
	NodeContact  NodeKind = "contact"
	NodeLink     NodeKind = "link"
	NodeSection  NodeKind = "section"
	NodeHeading  NodeKind = "heading"
	NodeEntry    NodeKind = "entry"
	NodeText     NodeKind = "text"
	NodeBadges   NodeKind = "badges"
	NodeBadge    NodeKind = "badge"
)

// Section roles, in the fixed order every template uses
const (
	SectionSummary    = "summary"
	SectionExperience = "experience"
	SectionProjects   = "projects"
	SectionEducation  = "education"
	SectionSkills     = "skills"
)

// Column roles used by multi-column templates
const (
	ColumnSidebar = "sidebar"
	ColumnMain    = "main"
)

// Style holds the presentational attributes a template assigns to a node.
// Empty fields inherit from the presentation layer's defaults.
type Style struct {
	Color           string `json:"color,omitempty"`
	BackgroundColor string `json:"background_color,omitempty"`
	BorderColor     string `json:"border_color,omitempty"`
	TextAlign       string `json:"text_align,omitempty"`
	FontWeight      string `json:"font_weight,omitempty"`
}

func (s *Style) clone() *Style {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

// Node is one element of a rendered tree
type Node struct {
	Kind               NodeKind `json:"kind"`
	Role               string   `json:"role,omitempty"`
	Text               string   `json:"text,omitempty"`
	Href               string   `json:"href,omitempty"`
	Style              *Style   `json:"style,omitempty"`
	PreserveLineBreaks bool     `json:"preserve_line_breaks,omitempty"`
	Children           []Node   `json:"children,omitempty"`
}

// RenderedTree is the output of a template: a section-ordered visual tree
type RenderedTree struct {
	Template Kind   `json:"template"`
	Accent   Accent `json:"accent"`
	Locale   string `json:"locale"`
	Root     Node   `json:"root"`
}

// Walk visits n and its descendants depth-first. Returning false from fn skips
// the children of the node just visited.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for i := range n.Children {
		n.Children[i].Walk(fn)
	}
}

// FindAll returns every descendant (including n) of the given kind, in document order.
func (n *Node) FindAll(kind NodeKind) []Node {
	var found []Node
	n.Walk(func(node *Node) bool {
		if node.Kind == kind {
			found = append(found, *node)
		}
		return true
	})
	return found
}

// FindRole returns every descendant (including n) with the given role, in document order.
func (n *Node) FindRole(role string) []Node {
	var found []Node
	n.Walk(func(node *Node) bool {
		if node.Role == role {
			found = append(found, *node)
		}
		return true
	})
	return found
}

// Sections returns the roles of all section nodes in document order.
func (t *RenderedTree) Sections() []string {
	var roles []string
	for _, section := range t.Root.FindAll(NodeSection) {
		roles = append(roles, section.Role)
	}
	return roles
}

// Headings returns the text of all section headings in document order.
func (t *RenderedTree) Headings() []string {
	var headings []string
	for _, heading := range t.Root.FindAll(NodeHeading) {
		headings = append(headings, heading.Text)
	}
	return headings
}

// Name returns the rendered name.
func (t *RenderedTree) Name() string {
	names := t.Root.FindAll(NodeName)
	if len(names) == 0 {
		return ""
	}
	return names[0].Text
}
