// Package formatting provides the display helpers shared by every resume template:
// dates, date ranges, links, education lines, and accent colors.
package formatting

import (
	"os"
	"strings"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/de"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/es"
	"github.com/go-playground/locales/fr"
	"github.com/go-playground/locales/it"
	"github.com/go-playground/locales/nl"
	"github.com/go-playground/locales/pt"
	ut "github.com/go-playground/universal-translator"
	"golang.org/x/text/language"
)

// DefaultLocale is used when no locale is configured or the configured one is unknown.
const DefaultLocale = "en"

var universal = newUniversalTranslator()

func newUniversalTranslator() *ut.UniversalTranslator {
	fallback := en.New()
	return ut.New(fallback, fallback, de.New(), es.New(), fr.New(), it.New(), nl.New(), pt.New())
}

// NormalizeLocale turns a POSIX or BCP 47 locale string ("fr_FR.UTF-8", "de-AT", "C")
// into a canonical BCP 47 tag. Unparseable input yields DefaultLocale.
func NormalizeLocale(raw string) string {
	raw = strings.TrimSpace(raw)
	if i := strings.IndexAny(raw, ".@"); i >= 0 {
		raw = raw[:i]
	}
	if raw == "" || raw == "C" || raw == "POSIX" {
		return DefaultLocale
	}

	tag, err := language.Parse(strings.ReplaceAll(raw, "_", "-"))
	if err != nil || tag == language.Und {
		return DefaultLocale
	}
	return tag.String()
}

// DetectLocale reads the invocation locale from the environment the same way libc does:
// LC_ALL, then LC_TIME, then LANG.
func DetectLocale() string {
	for _, key := range []string{"LC_ALL", "LC_TIME", "LANG"} {
		if value := strings.TrimSpace(os.Getenv(key)); value != "" {
			return NormalizeLocale(value)
		}
	}
	return DefaultLocale
}

// SupportedLocales lists the locales with their own month names.
func SupportedLocales() []string {
	return []string{"de", "en", "es", "fr", "it", "nl", "pt"}
}

// translatorFor returns the closest translator for a locale and whether it matched
// something other than the fallback.
func translatorFor(locale string) (locales.Translator, bool) {
	tag, err := language.Parse(NormalizeLocale(locale))
	if err != nil {
		trans, _ := universal.GetTranslator(DefaultLocale)
		return trans, false
	}

	candidates := []string{strings.ReplaceAll(tag.String(), "-", "_")}
	if base, confidence := tag.Base(); confidence != language.No {
		candidates = append(candidates, base.String())
	}

	trans, found := universal.FindTranslator(candidates...)
	return trans, found
}
