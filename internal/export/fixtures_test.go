package export

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
)

func sampleDocument() *types.ResumeDocument {
	return &types.ResumeDocument{
		PersonalInfo: &types.PersonalInfo{
			FullName: types.String("Grace Hopper"),
			Email:    types.String("grace@example.com"),
			Phone:    types.String("555-0100"),
			LinkedIn: types.String("https://www.linkedin.com/in/grace"),
			Headline: types.String("Compiler Engineer"),
		},
		ProfessionalSummary: types.String("Cuts 100% of bugs & ships\nSecond line"),
		Experience: []types.Experience{
			{
				Position:    types.String("Rear Admiral"),
				Company:     types.String("US Navy"),
				StartDate:   types.String("1967-08"),
				IsCurrent:   true,
				Description: types.String("Led COBOL_standards"),
			},
		},
		Education: []types.Education{
			{
				Degree:      types.String("Ph.D."),
				Field:       types.String("Mathematics"),
				Institution: types.String("Yale"),
			},
		},
		Skills: []string{"COBOL", "C#"},
	}
}

func renderTree(t *testing.T, kind rendering.Kind, doc *types.ResumeDocument) *rendering.RenderedTree {
	t.Helper()
	tree, err := rendering.NewRenderer().Render(kind, doc, "#2563eb")
	require.NoError(t, err)
	return tree
}
