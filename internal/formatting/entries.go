package formatting

import "github.com/jonathan/resume-builder/internal/types"

const (
	// NamePlaceholder is shown when the document has no full name.
	NamePlaceholder = "Your Name"
	// PresentLabel ends the date range of a current position.
	PresentLabel = "Present"
)

// DisplayName returns the full name or the placeholder.
func DisplayName(info types.PersonalInfo) string {
	if types.Present(info.FullName) {
		return *info.FullName
	}
	return NamePlaceholder
}

// DateRange renders "{start} - {end}" where end is PresentLabel for current positions,
// whether or not an end date is set.
func (f *Formatter) DateRange(start, end *string, isCurrent bool) string {
	endLabel := PresentLabel
	if !isCurrent {
		endLabel = f.FormatDatePtr(end)
	}
	return f.FormatDatePtr(start) + " - " + endLabel
}

// DegreeLine renders "{degree} in {field}", or just the degree when field is absent.
// A field without a degree renders on its own.
func DegreeLine(degree, field *string) string {
	switch {
	case types.Present(degree) && types.Present(field):
		return *degree + " in " + *field
	case types.Present(field):
		return *field
	default:
		return types.Value(degree)
	}
}

// GPALabel renders "GPA: {gpa}", or "" when absent.
func GPALabel(gpa *string) string {
	if !types.Present(gpa) {
		return ""
	}
	return "GPA: " + *gpa
}
