// Package validation reports content problems in resume documents that the
// renderer would otherwise hide silently.
package validation

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-builder/internal/formatting"
	"github.com/jonathan/resume-builder/internal/types"
)

// Lint finding types
const (
	TypeMalformedDate   = "malformed_date"
	TypeDateOrder       = "date_order"
	TypeIgnoredEndDate  = "ignored_end_date"
	TypePlaceholderName = "placeholder_name"
	TypeDuplicateSkill  = "duplicate_skill"
	TypeInvalidURL      = "invalid_url"
	TypeEmptyEntry      = "empty_entry"
)

// LintDocument checks doc for content the templates will drop or display
// unexpectedly. It never fails; a nil doc yields no findings. A nil formatter
// uses English dates.
func LintDocument(doc *types.ResumeDocument, f *formatting.Formatter) *types.Violations {
	result := &types.Violations{Violations: []types.Violation{}}
	if doc == nil {
		return result
	}
	if f == nil {
		f = formatting.Default()
	}

	l := &linter{dates: f, out: result}
	l.personalInfo(doc.Info())
	for i, exp := range doc.Experience {
		l.experience(i, exp)
	}
	for i, edu := range doc.Education {
		l.education(i, edu)
	}
	for i, project := range doc.Project {
		l.project(i, project)
	}
	l.skills(doc.Skills)
	return result
}

type linter struct {
	dates *formatting.Formatter
	out   *types.Violations
}

func (l *linter) add(kind, severity, section, field, details string) {
	l.out.Violations = append(l.out.Violations, types.Violation{
		Type:     kind,
		Severity: severity,
		Details:  details,
		Field:    field,
		Section:  section,
	})
}

func (l *linter) personalInfo(info types.PersonalInfo) {
	if !types.Present(info.FullName) {
		l.add(TypePlaceholderName, types.SeverityInfo, "header", "personal_info.full_name",
			fmt.Sprintf("full_name is empty; the header will show %q", formatting.NamePlaceholder))
	}
	l.url("personal_info.linkedin", info.LinkedIn)
	l.url("personal_info.website", info.Website)
}

func (l *linter) url(field string, value *string) {
	if types.Present(value) && !formatting.IsWebURL(*value) {
		l.add(TypeInvalidURL, types.SeverityWarning, "header", field,
			fmt.Sprintf("%q does not look like a web address; the link may not open", *value))
	}
}

// date reports a present but unparseable date and returns whether the value is usable.
func (l *linter) date(section, field string, value *string) bool {
	if !types.Present(value) {
		return false
	}
	if _, _, ok := formatting.ParseYearMonth(*value); !ok {
		l.add(TypeMalformedDate, types.SeverityWarning, section, field,
			fmt.Sprintf("%q is not a YYYY-MM date and will be rendered empty", *value))
		return false
	}
	return true
}

func (l *linter) experience(i int, exp types.Experience) {
	prefix := fmt.Sprintf("experience[%d]", i)
	hasStart := l.date("experience", prefix+".start_date", exp.StartDate)
	hasEnd := l.date("experience", prefix+".end_date", exp.EndDate)

	if exp.IsCurrent && types.Present(exp.EndDate) {
		l.add(TypeIgnoredEndDate, types.SeverityInfo, "experience", prefix+".end_date",
			fmt.Sprintf("is_current is set, so end_date %q is shown as %q", *exp.EndDate, formatting.PresentLabel))
	}

	if hasStart && hasEnd && !exp.IsCurrent && before(*exp.EndDate, *exp.StartDate) {
		l.add(TypeDateOrder, types.SeverityWarning, "experience", prefix+".end_date",
			fmt.Sprintf("end date %s is before start date %s", l.dates.FormatDate(*exp.EndDate), l.dates.FormatDate(*exp.StartDate)))
	}

	hasDates := exp.IsCurrent || types.Present(exp.StartDate) || types.Present(exp.EndDate)
	if !types.Present(exp.Position) && !types.Present(exp.Company) && !hasDates && !types.Present(exp.Description) {
		l.add(TypeEmptyEntry, types.SeverityWarning, "experience", prefix,
			"entry has no content and renders as a blank block")
	}
}

func (l *linter) education(i int, edu types.Education) {
	prefix := fmt.Sprintf("education[%d]", i)
	hasDate := l.date("education", prefix+".graduation_date", edu.GraduationDate)

	if formatting.DegreeLine(edu.Degree, edu.Field) == "" && !types.Present(edu.Institution) &&
		!hasDate && formatting.GPALabel(edu.GPA) == "" {
		l.add(TypeEmptyEntry, types.SeverityWarning, "education", prefix,
			"entry has no content and renders as a blank block")
	}
}

func (l *linter) project(i int, project types.Project) {
	if !types.Present(project.Name) && !types.Present(project.Description) {
		l.add(TypeEmptyEntry, types.SeverityWarning, "projects", fmt.Sprintf("project[%d]", i),
			"entry has no content and renders as a blank block")
	}
}

// skills flags repeats, compared case-insensitively. The templates still show every entry.
func (l *linter) skills(skills []string) {
	seen := make(map[string]int, len(skills))
	for i, skill := range skills {
		key := strings.ToLower(strings.TrimSpace(skill))
		if first, ok := seen[key]; ok {
			l.add(TypeDuplicateSkill, types.SeverityInfo, "skills", fmt.Sprintf("skills[%d]", i),
				fmt.Sprintf("%q repeats skills[%d] and will be shown twice", skill, first))
			continue
		}
		seen[key] = i
	}
}

// before reports whether year-month a is strictly earlier than b. Both must parse.
func before(a, b string) bool {
	ay, am, _ := formatting.ParseYearMonth(a)
	by, bm, _ := formatting.ParseYearMonth(b)
	if ay != by {
		return ay < by
	}
	return am < bm
}
