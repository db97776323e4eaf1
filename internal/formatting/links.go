package formatting

import (
	"net/url"
	"regexp"
	"strings"
)

var displayURLPrefix = regexp.MustCompile(`^(?i:https?://)?(?i:www\.)?`)

// DisplayURL strips a leading scheme and "www." for display.
// The link target keeps the original value.
func DisplayURL(raw string) string {
	return displayURLPrefix.ReplaceAllString(raw, "")
}

// IsWebURL reports whether raw looks like a link a browser can open:
// an http(s) URL, or a bare host such as "example.com/me".
func IsWebURL(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.ContainsAny(raw, " \t\n") {
		return false
	}

	candidate := raw
	if !strings.Contains(raw, "://") {
		candidate = "https://" + raw
	}
	parsed, err := url.Parse(candidate)
	if err != nil {
		return false
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return false
	}
	return strings.Contains(parsed.Host, ".")
}
