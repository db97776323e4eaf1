package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
)

func TestRenderLaTeX_Classic(t *testing.T) {
	out, err := RenderLaTeX(renderTree(t, rendering.KindClassic, sampleDocument()))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, `\documentclass`))
	assert.Contains(t, out, `\definecolor{accent}{HTML}{2563EB}`)
	assert.Contains(t, out, `\textbf{\textcolor{accent}{Grace Hopper}}`)
	assert.Contains(t, out, `{\large Compiler Engineer}`)
	assert.Contains(t, out, `\href{https://www.linkedin.com/in/grace}{linkedin.com/in/grace}`)
	assert.Contains(t, out, `\section*{\textcolor{accent}{Experience}}`)
	assert.Contains(t, out, `Cuts 100\% of bugs \& ships\\`)
	assert.Contains(t, out, `Led COBOL\_standards`)
	assert.Contains(t, out, `Aug 1967 - Present`)
	assert.Contains(t, out, `\fcolorbox{accent}{white}{\textcolor{accent}{C\#}}`)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), `\end{document}`))
}

func TestRenderLaTeX_ModernFillsBadges(t *testing.T) {
	out, err := RenderLaTeX(renderTree(t, rendering.KindModern, sampleDocument()))
	require.NoError(t, err)

	assert.Contains(t, out, `\colorbox{accent}{\textcolor{white}{COBOL}}`)
	assert.Contains(t, out, `\section*{Experience}`)
	assert.Contains(t, out, `\textcolor{accent}{US Navy}`)
	assert.Equal(t, 1, strings.Count(out, `\section*{Skills}`))
}

func TestRenderLaTeX_OmitsEmptySections(t *testing.T) {
	doc := &types.ResumeDocument{PersonalInfo: &types.PersonalInfo{FullName: types.String("Solo")}}
	out, err := RenderLaTeX(renderTree(t, rendering.KindClassic, doc))
	require.NoError(t, err)

	assert.NotContains(t, out, `\section*`)
	assert.Contains(t, out, "Solo")
}

func TestBuildLaTeXData_NamedAccent(t *testing.T) {
	tree, err := rendering.NewRenderer().Render(rendering.KindClassic, sampleDocument(), "teal")
	require.NoError(t, err)

	data := BuildLaTeXData(tree)
	assert.Equal(t, "008080", data.AccentHex)
	assert.True(t, data.HeaderRule)
	assert.Equal(t, []string{"grace@example.com", "555-0100", `\href{https://www.linkedin.com/in/grace}{linkedin.com/in/grace}`}, data.Contact)
}

func TestBuildLaTeXData_SectionOrder(t *testing.T) {
	data := BuildLaTeXData(renderTree(t, rendering.KindClassic, sampleDocument()))

	var titles []string
	for _, s := range data.Sections {
		titles = append(titles, s.Title)
	}
	assert.Equal(t, []string{
		`\textcolor{accent}{Professional Summary}`,
		`\textcolor{accent}{Experience}`,
		`\textcolor{accent}{Education}`,
		`\textcolor{accent}{Skills}`,
	}, titles)
}

func TestBuildLaTeXData_ModernSkipsSidebarSections(t *testing.T) {
	data := BuildLaTeXData(renderTree(t, rendering.KindModern, sampleDocument()))

	var titles []string
	for _, s := range data.Sections {
		titles = append(titles, s.Title)
	}
	assert.Equal(t, []string{"Professional Summary", "Experience", "Education", "Skills"}, titles)
}

func TestParseLaTeXTemplate(t *testing.T) {
	tmpl, err := parseLaTeXTemplate()
	require.NoError(t, err)
	assert.NotNil(t, tmpl)
}
