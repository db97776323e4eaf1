package rendering

import (
	"github.com/jonathan/resume-builder/internal/formatting"
	"github.com/jonathan/resume-builder/internal/types"
)

// Section headings shared by every template
const (
	HeadingSummary    = "Professional Summary"
	HeadingExperience = "Experience"
	HeadingProjects   = "Projects"
	HeadingEducation  = "Education"
	HeadingSkills     = "Skills"
)

// palette decides where a template puts the accent color. A nil style means
// the element takes the presentation defaults. Every node gets its own copy.
type palette struct {
	header  *Style
	name    *Style
	heading *Style
	company *Style
	badge   *Style
}

// builder produces the nodes every template shares. Templates decide the layout,
// the builder decides what each piece contains and whether it is shown at all.
type builder struct {
	doc    *types.ResumeDocument
	dates  *formatting.Formatter
	colors palette
}

func textNode(role, text string) Node {
	return Node{Kind: NodeText, Role: role, Text: text}
}

func styledText(role, text string, style *Style) Node {
	return Node{Kind: NodeText, Role: role, Text: text, Style: style}
}

func multilineText(role, text string) Node {
	return Node{Kind: NodeText, Role: role, Text: text, PreserveLineBreaks: true}
}

func appendIf(nodes []Node, node Node, ok bool) []Node {
	if ok {
		return append(nodes, node)
	}
	return nodes
}

func (b builder) section(role, title string, body []Node) Node {
	children := make([]Node, 0, len(body)+1)
	children = append(children, Node{Kind: NodeHeading, Role: role, Text: title, Style: b.colors.heading.clone()})
	children = append(children, body...)
	return Node{Kind: NodeSection, Role: role, Children: children}
}

// header is always rendered; every piece other than the name is optional.
func (b builder) header() Node {
	info := b.doc.Info()

	children := []Node{{Kind: NodeName, Text: formatting.DisplayName(info), Style: b.colors.name.clone()}}
	if types.Present(info.Headline) {
		children = append(children, Node{Kind: NodeHeadline, Text: *info.Headline})
	}
	contact, ok := b.contact(info)
	children = appendIf(children, contact, ok)

	return Node{Kind: NodeHeader, Style: b.colors.header.clone(), Children: children}
}

func (b builder) contact(info types.PersonalInfo) (Node, bool) {
	var items []Node
	if types.Present(info.Email) {
		items = append(items, textNode("email", *info.Email))
	}
	if types.Present(info.Phone) {
		items = append(items, textNode("phone", *info.Phone))
	}
	if types.Present(info.Location) {
		items = append(items, textNode("location", *info.Location))
	}
	if types.Present(info.LinkedIn) {
		items = append(items, linkNode("linkedin", *info.LinkedIn))
	}
	if types.Present(info.Website) {
		items = append(items, linkNode("website", *info.Website))
	}
	if len(items) == 0 {
		return Node{}, false
	}
	return Node{Kind: NodeContact, Children: items}, true
}

func linkNode(role, target string) Node {
	return Node{Kind: NodeLink, Role: role, Text: formatting.DisplayURL(target), Href: target}
}

func (b builder) summary() (Node, bool) {
	if !b.doc.HasSummary() {
		return Node{}, false
	}
	body := []Node{multilineText(SectionSummary, *b.doc.ProfessionalSummary)}
	return b.section(SectionSummary, HeadingSummary, body), true
}

func (b builder) experience() (Node, bool) {
	if len(b.doc.Experience) == 0 {
		return Node{}, false
	}

	entries := make([]Node, 0, len(b.doc.Experience))
	for _, exp := range b.doc.Experience {
		var children []Node
		if types.Present(exp.Position) {
			children = append(children, styledText("position", *exp.Position, &Style{FontWeight: "bold"}))
		}
		if types.Present(exp.Company) {
			children = append(children, styledText("company", *exp.Company, b.colors.company.clone()))
		}
		if exp.IsCurrent || types.Present(exp.StartDate) || types.Present(exp.EndDate) {
			children = append(children, textNode("dates", b.dates.DateRange(exp.StartDate, exp.EndDate, exp.IsCurrent)))
		}
		if types.Present(exp.Description) {
			children = append(children, multilineText("description", *exp.Description))
		}
		entries = append(entries, Node{Kind: NodeEntry, Role: SectionExperience, Children: children})
	}
	return b.section(SectionExperience, HeadingExperience, entries), true
}

func (b builder) projects() (Node, bool) {
	if len(b.doc.Project) == 0 {
		return Node{}, false
	}

	entries := make([]Node, 0, len(b.doc.Project))
	for _, project := range b.doc.Project {
		var children []Node
		if types.Present(project.Name) {
			children = append(children, styledText("project_name", *project.Name, &Style{FontWeight: "bold"}))
		}
		if types.Present(project.Description) {
			children = append(children, multilineText("description", *project.Description))
		}
		entries = append(entries, Node{Kind: NodeEntry, Role: SectionProjects, Children: children})
	}
	return b.section(SectionProjects, HeadingProjects, entries), true
}

func (b builder) education() (Node, bool) {
	if len(b.doc.Education) == 0 {
		return Node{}, false
	}

	entries := make([]Node, 0, len(b.doc.Education))
	for _, edu := range b.doc.Education {
		var children []Node
		if line := formatting.DegreeLine(edu.Degree, edu.Field); line != "" {
			children = append(children, styledText("degree", line, &Style{FontWeight: "bold"}))
		}
		if types.Present(edu.Institution) {
			children = append(children, textNode("institution", *edu.Institution))
		}
		if graduated := b.dates.FormatDatePtr(edu.GraduationDate); graduated != "" {
			children = append(children, textNode("graduation_date", graduated))
		}
		if gpa := formatting.GPALabel(edu.GPA); gpa != "" {
			children = append(children, textNode("gpa", gpa))
		}
		entries = append(entries, Node{Kind: NodeEntry, Role: SectionEducation, Children: children})
	}
	return b.section(SectionEducation, HeadingEducation, entries), true
}

// skills keeps input order and duplicates.
func (b builder) skills() (Node, bool) {
	if len(b.doc.Skills) == 0 {
		return Node{}, false
	}

	badges := make([]Node, 0, len(b.doc.Skills))
	for _, skill := range b.doc.Skills {
		badges = append(badges, Node{Kind: NodeBadge, Role: "skill", Text: skill, Style: b.colors.badge.clone()})
	}
	body := []Node{{Kind: NodeBadges, Role: SectionSkills, Children: badges}}
	return b.section(SectionSkills, HeadingSkills, body), true
}
