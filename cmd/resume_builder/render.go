package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/formatting"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/validation"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a resume document with one template",
	Long:  "Loads a JSON or YAML resume document, renders it with the chosen template and accent color, and writes it as HTML, LaTeX, PDF or a JSON tree.",
	RunE:  runRender,
}

var (
	renderInput      string
	renderTemplate   string
	renderAccent     string
	renderLocale     string
	renderFormat     string
	renderOutput     string
	renderChromePath string
)

func init() {
	renderCmd.Flags().StringVarP(&renderInput, "input", "i", "", "Path to resume document (.json, .yaml, or - for stdin)")
	renderCmd.Flags().StringVarP(&renderTemplate, "template", "t", "", "Template: classic or modern (default classic)")
	renderCmd.Flags().StringVarP(&renderAccent, "accent", "a", "", "Accent color, any CSS color (default #2563eb)")
	renderCmd.Flags().StringVarP(&renderLocale, "locale", "l", "", "Locale for month names, e.g. de_DE (default from environment)")
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", "", "Output format: json, html, latex, pdf (default html)")
	renderCmd.Flags().StringVarP(&renderOutput, "out", "o", "", "Output file (default stdout; required for pdf)")
	renderCmd.Flags().StringVar(&renderChromePath, "chrome-path", "", "Chrome/Chromium binary for PDF export")

	_ = renderCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd, map[string]*string{
		"template":    &renderTemplate,
		"accent":      &renderAccent,
		"locale":      &renderLocale,
		"format":      &renderFormat,
		"out":         &renderOutput,
		"chrome-path": &renderChromePath,
	})
	if err != nil {
		return err
	}

	kind, err := rendering.ParseKind(settings.Template)
	if err != nil {
		return err
	}
	format, err := export.ParseFormat(settings.Format)
	if err != nil {
		return err
	}
	if format == export.FormatPDF && settings.Output == "" {
		return fmt.Errorf("--out is required for pdf output")
	}

	doc, err := loadDocument(renderInput)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(cmd.ErrOrStderr())
	if settings.Verbose {
		printer.PrintDocument(doc)
	}

	dates := formatting.NewFormatter(settings.Locale)
	findings := validation.LintDocument(doc, dates)
	logFindings(findings)

	renderer := rendering.NewRenderer(rendering.WithLocale(settings.Locale))
	tree, err := renderer.Render(kind, doc, rendering.Accent(settings.Accent))
	if err != nil {
		return err
	}
	if settings.Verbose {
		printer.PrintRenderedTree(tree)
	}

	opts := export.Options{PDF: export.PDFOptions{
		ChromePath: settings.ChromePath,
		Timeout:    settings.PDFTimeoutDuration(),
		Logger:     log,
	}}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if settings.Output == "" {
		return export.Write(ctx, cmd.OutOrStdout(), tree, format, opts)
	}
	if err := writeOutputFile(settings.Output, func(w io.Writer) error {
		return export.Write(ctx, w, tree, format, opts)
	}); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"template": kind,
		"format":   format,
		"output":   settings.Output,
	}).Debug("rendered resume")
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Successfully rendered %s resume\n", kind)
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Output: %s\n", settings.Output)
	return nil
}

// writeOutputFile creates path (and its directory) and passes it to write.
// A failed write removes the partial file.
func writeOutputFile(path string, write func(io.Writer) error) error {
	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := write(file); err != nil {
		_ = file.Close()
		_ = os.Remove(path)
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
