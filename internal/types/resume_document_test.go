package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestResumeDocument_UnmarshalJSON_OptionalFields(t *testing.T) {
	content := `{
		"personal_info": {"full_name": "Ada Lovelace", "linkedin": "https://www.linkedin.com/in/ada"},
		"experience": [{"position": "Engineer", "company": "Analytical", "start_date": "2021-03", "is_current": true}],
		"skills": ["Go", "Go", "Rust"]
	}`

	var doc ResumeDocument
	require.NoError(t, json.Unmarshal([]byte(content), &doc))

	require.NotNil(t, doc.PersonalInfo)
	assert.Equal(t, "Ada Lovelace", Value(doc.PersonalInfo.FullName))
	assert.Nil(t, doc.PersonalInfo.Email)
	assert.Nil(t, doc.ProfessionalSummary)
	require.Len(t, doc.Experience, 1)
	assert.True(t, doc.Experience[0].IsCurrent)
	assert.Nil(t, doc.Experience[0].EndDate)
	assert.Empty(t, doc.Education)
	assert.Equal(t, []string{"Go", "Go", "Rust"}, doc.Skills)
}

func TestResumeDocument_UnmarshalYAML(t *testing.T) {
	content := `
personal_info:
  full_name: Grace Hopper
professional_summary: |
  Line one
  Line two
education:
  - degree: B.Sc.
    field: Physics
`
	var doc ResumeDocument
	require.NoError(t, yaml.Unmarshal([]byte(content), &doc))

	assert.Equal(t, "Grace Hopper", Value(doc.Info().FullName))
	assert.Equal(t, "Line one\nLine two\n", Value(doc.ProfessionalSummary))
	require.Len(t, doc.Education, 1)
	assert.Equal(t, "Physics", Value(doc.Education[0].Field))
}

func TestPresent(t *testing.T) {
	assert.False(t, Present(nil))
	assert.False(t, Present(String("")))
	assert.True(t, Present(String(" ")))
	assert.True(t, Present(String("x")))
}

func TestInfo_NilSafe(t *testing.T) {
	var doc *ResumeDocument
	assert.Equal(t, PersonalInfo{}, doc.Info())
	assert.False(t, doc.HasSummary())

	doc = &ResumeDocument{ProfessionalSummary: String("")}
	assert.False(t, doc.HasSummary())
}
