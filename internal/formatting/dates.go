package formatting

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/locales"
)

// yearMonthPattern accepts YYYY-M and YYYY-MM. A trailing day, as produced by
// HTML date inputs, is tolerated and ignored.
var yearMonthPattern = regexp.MustCompile(`^(\d{4})-(\d{1,2})(?:-\d{1,2})?$`)

// Formatter renders dates with the month names of one locale.
// A Formatter is immutable and safe for concurrent use.
type Formatter struct {
	locale string
	months locales.Translator
}

// NewFormatter returns a Formatter for the given locale. Unknown locales use English month names.
func NewFormatter(locale string) *Formatter {
	normalized := NormalizeLocale(locale)
	trans, found := translatorFor(normalized)
	if !found {
		normalized = DefaultLocale
	}
	return &Formatter{locale: normalized, months: trans}
}

var defaultFormatter = NewFormatter(DefaultLocale)

// Default returns the English formatter.
func Default() *Formatter {
	return defaultFormatter
}

// Locale returns the locale whose month names this Formatter uses.
func (f *Formatter) Locale() string {
	return f.locale
}

// ParseYearMonth parses a YYYY-MM string. ok is false for empty or malformed input,
// including out-of-range months and year zero.
func ParseYearMonth(value string) (year int, month time.Month, ok bool) {
	matches := yearMonthPattern.FindStringSubmatch(strings.TrimSpace(value))
	if matches == nil {
		return 0, 0, false
	}

	year, err := strconv.Atoi(matches[1])
	if err != nil || year < 1 {
		return 0, 0, false
	}
	m, err := strconv.Atoi(matches[2])
	if err != nil || m < 1 || m > 12 {
		return 0, 0, false
	}
	return year, time.Month(m), true
}

// FormatDate renders "2021-03" as "Mar 2021". Empty or malformed input renders as "".
func (f *Formatter) FormatDate(value string) string {
	year, month, ok := ParseYearMonth(value)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s %04d", f.MonthAbbreviation(month), year)
}

// FormatDatePtr is FormatDate for optional fields.
func (f *Formatter) FormatDatePtr(value *string) string {
	if value == nil {
		return ""
	}
	return f.FormatDate(*value)
}

// MonthAbbreviation returns the abbreviated month name in the formatter's locale.
func (f *Formatter) MonthAbbreviation(month time.Month) string {
	if f.months == nil {
		return month.String()[:3]
	}
	return f.months.MonthAbbreviated(month)
}

// FormatDate formats with English month names.
func FormatDate(value string) string {
	return defaultFormatter.FormatDate(value)
}
