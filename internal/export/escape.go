package export

import "strings"

// latexReplacer escapes the LaTeX special characters \ { } $ & % # ^ _ ~
var latexReplacer = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`{`, `\{`,
	`}`, `\}`,
	`$`, `\$`,
	`&`, `\&`,
	`%`, `\%`,
	`#`, `\#`,
	`^`, `\textasciicircum{}`,
	`_`, `\_`,
	`~`, `\textasciitilde{}`,
)

// urlReplacer escapes what hyperref cannot take verbatim inside \href.
var urlReplacer = strings.NewReplacer(
	`\`, ``,
	`%`, `\%`,
	`#`, `\#`,
	`{`, `%7B`,
	`}`, `%7D`,
)

// EscapeLaTeX escapes special LaTeX characters in text.
func EscapeLaTeX(text string) string {
	if text == "" {
		return ""
	}
	return latexReplacer.Replace(text)
}

// EscapeLaTeXURL prepares a link target for \href.
func EscapeLaTeXURL(target string) string {
	return urlReplacer.Replace(target)
}

// LaTeXLines escapes multi-line text and keeps its line breaks as forced breaks.
// Blank lines become a non-breaking space so the break has a line to end.
func LaTeXLines(text string) string {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			lines[i] = "~"
			continue
		}
		lines[i] = EscapeLaTeX(line)
	}
	return strings.Join(lines, "\\\\\n")
}
