// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-builder/internal/formatting"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// truncate shortens s to at most width runes, ending in "..." when cut
func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-3]) + "..."
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stderr; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		line = truncate(line, boxWidth-4)
		pad := boxWidth - 4 - len([]rune(line))
		fmt.Fprintf(p.out, "│ %s%s │\n", line, strings.Repeat(" ", pad))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintDocument outputs a human-readable summary of the loaded resume document.
func (p *Printer) PrintDocument(doc *types.ResumeDocument) {
	if doc == nil {
		return
	}

	var sb strings.Builder
	info := doc.Info()
	sb.WriteString(fmt.Sprintf("Name:       %s\n", formatting.DisplayName(info)))
	if types.Present(info.Headline) {
		sb.WriteString(fmt.Sprintf("Headline:   %s\n", *info.Headline))
	}
	sb.WriteString(fmt.Sprintf("Summary:    %s\n", yesNo(doc.HasSummary())))
	sb.WriteString(fmt.Sprintf("Experience: %d\n", len(doc.Experience)))
	sb.WriteString(fmt.Sprintf("Projects:   %d\n", len(doc.Project)))
	sb.WriteString(fmt.Sprintf("Education:  %d\n", len(doc.Education)))

	if len(doc.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("\nSkills (%d):\n", len(doc.Skills)))
		count := min(len(doc.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", doc.Skills[i]))
		}
		if len(doc.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(doc.Skills)-maxItemsToShow))
		}
	}

	p.printBox("RESUME DOCUMENT", strings.TrimSuffix(sb.String(), "\n"))
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// PrintRenderedTree outputs the template, theme and section order of a rendered tree.
func (p *Printer) PrintRenderedTree(tree *rendering.RenderedTree) {
	if tree == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Template: %s\n", tree.Template))
	sb.WriteString(fmt.Sprintf("Accent:   %s\n", tree.Accent))
	sb.WriteString(fmt.Sprintf("Locale:   %s\n", tree.Locale))
	sb.WriteString(fmt.Sprintf("Name:     %s\n", tree.Name()))

	headings := tree.Headings()
	if len(headings) == 0 {
		sb.WriteString("\nNo sections rendered")
	} else {
		sb.WriteString("\nSections:\n")
		for i, heading := range headings {
			sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, heading))
		}
	}

	p.printBox("RENDERED "+strings.ToUpper(string(tree.Template)), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintViolations outputs any lint findings.
//
//nolint:errcheck // writing to stderr; errors are not recoverable
func (p *Printer) PrintViolations(violations *types.Violations) {
	if violations == nil || len(violations.Violations) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "NO LINT FINDINGS")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d findings (%d warnings, %d info):\n\n",
		len(violations.Violations),
		violations.Count(types.SeverityWarning),
		violations.Count(types.SeverityInfo)))

	for i, v := range violations.Violations {
		marker := "⚠"
		if v.Severity == types.SeverityInfo {
			marker = "ℹ"
		}
		sb.WriteString(fmt.Sprintf("%s %s", marker, v.Type))
		if v.Field != "" {
			sb.WriteString(fmt.Sprintf(" (%s)", v.Field))
		}
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("  %s\n", truncate(v.Details, 45)))
		if i < len(violations.Violations)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("LINT FINDINGS", strings.TrimSuffix(sb.String(), "\n"))
}
