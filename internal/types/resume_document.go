// Package types provides type definitions for structured data used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ResumeDocument is the structured input of every template.
// It is built by the caller and never mutated by rendering.
type ResumeDocument struct {
	PersonalInfo        *PersonalInfo `json:"personal_info,omitempty" yaml:"personal_info,omitempty"`
	ProfessionalSummary *string       `json:"professional_summary,omitempty" yaml:"professional_summary,omitempty"`
	Experience          []Experience  `json:"experience,omitempty" yaml:"experience,omitempty"`
	Education           []Education   `json:"education,omitempty" yaml:"education,omitempty"`
	Project             []Project     `json:"project,omitempty" yaml:"project,omitempty"`
	Skills              []string      `json:"skills,omitempty" yaml:"skills,omitempty"`
}

// PersonalInfo holds identity and contact details shown in the header
type PersonalInfo struct {
	FullName *string `json:"full_name,omitempty" yaml:"full_name,omitempty"`
	Email    *string `json:"email,omitempty" yaml:"email,omitempty"`
	Phone    *string `json:"phone,omitempty" yaml:"phone,omitempty"`
	Location *string `json:"location,omitempty" yaml:"location,omitempty"`
	LinkedIn *string `json:"linkedin,omitempty" yaml:"linkedin,omitempty"`
	Website  *string `json:"website,omitempty" yaml:"website,omitempty"`
	Headline *string `json:"headline,omitempty" yaml:"headline,omitempty"`
}

// Experience represents a single work history entry
type Experience struct {
	Position    *string `json:"position,omitempty" yaml:"position,omitempty"`
	Company     *string `json:"company,omitempty" yaml:"company,omitempty"`
	StartDate   *string `json:"start_date,omitempty" yaml:"start_date,omitempty"`
	EndDate     *string `json:"end_date,omitempty" yaml:"end_date,omitempty"`
	IsCurrent   bool    `json:"is_current" yaml:"is_current"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Education represents a single education entry
type Education struct {
	Degree         *string `json:"degree,omitempty" yaml:"degree,omitempty"`
	Field          *string `json:"field,omitempty" yaml:"field,omitempty"`
	Institution    *string `json:"institution,omitempty" yaml:"institution,omitempty"`
	GraduationDate *string `json:"graduation_date,omitempty" yaml:"graduation_date,omitempty"`
	GPA            *string `json:"gpa,omitempty" yaml:"gpa,omitempty"`
}

// Project represents a notable project
type Project struct {
	Name        *string `json:"name,omitempty" yaml:"name,omitempty"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
}

// String returns a pointer to s. Handy for building documents in code.
func String(s string) *string {
	return &s
}

// Present reports whether an optional field carries a non-empty value.
func Present(s *string) bool {
	return s != nil && *s != ""
}

// Value dereferences an optional field, returning "" when absent.
func Value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Info returns the personal info block, or an empty one when absent.
func (d *ResumeDocument) Info() PersonalInfo {
	if d == nil || d.PersonalInfo == nil {
		return PersonalInfo{}
	}
	return *d.PersonalInfo
}

// HasSummary reports whether the professional summary should be shown.
func (d *ResumeDocument) HasSummary() bool {
	return d != nil && Present(d.ProfessionalSummary)
}
