package rendering

import "github.com/jonathan/resume-builder/internal/types"

const testAccent Accent = "#2563eb"

func fullDocument() *types.ResumeDocument {
	return &types.ResumeDocument{
		PersonalInfo: &types.PersonalInfo{
			FullName: types.String("Ada Lovelace"),
			Email:    types.String("ada@example.com"),
			Phone:    types.String("+44 20 7946 0000"),
			Location: types.String("London"),
			LinkedIn: types.String("https://www.linkedin.com/in/example"),
			Website:  types.String("http://ada.dev"),
			Headline: types.String("Analyst"),
		},
		ProfessionalSummary: types.String("First line\nSecond line"),
		Experience: []types.Experience{
			{
				Position:    types.String("Engineer"),
				Company:     types.String("Analytical Engines"),
				StartDate:   types.String("2021-03"),
				EndDate:     types.String("2022-01"),
				IsCurrent:   true,
				Description: types.String("Built things\nShipped things"),
			},
			{
				Position:  types.String("Intern"),
				Company:   types.String("Difference Ltd"),
				StartDate: types.String("2019-06"),
				EndDate:   types.String("2019-09"),
			},
		},
		Education: []types.Education{
			{
				Degree:         types.String("B.Sc."),
				Field:          types.String("Physics"),
				Institution:    types.String("University of London"),
				GraduationDate: types.String("2018-07"),
				GPA:            types.String("3.9"),
			},
		},
		Project: []types.Project{
			{Name: types.String("Notes"), Description: types.String("Annotated translation")},
		},
		Skills: []string{"Go", "Go", "Rust"},
	}
}

func texts(nodes []Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Text)
	}
	return out
}

func childByRole(n Node, role string) (Node, bool) {
	for _, child := range n.Children {
		if child.Role == role {
			return child, true
		}
	}
	return Node{}, false
}
