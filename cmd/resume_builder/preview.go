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
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/validation"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render a resume document with every template",
	Long:  "Renders the document with all registered templates side by side and writes one file per template into the output directory.",
	RunE:  runPreview,
}

var (
	previewInput  string
	previewOutDir string
	previewAccent string
	previewLocale string
	previewFormat string
)

func init() {
	previewCmd.Flags().StringVarP(&previewInput, "input", "i", "", "Path to resume document (.json, .yaml, or - for stdin)")
	previewCmd.Flags().StringVarP(&previewOutDir, "out-dir", "o", "", "Directory for the rendered files")
	previewCmd.Flags().StringVarP(&previewAccent, "accent", "a", "", "Accent color, any CSS color (default #2563eb)")
	previewCmd.Flags().StringVarP(&previewLocale, "locale", "l", "", "Locale for month names (default from environment)")
	previewCmd.Flags().StringVarP(&previewFormat, "format", "f", "", "Output format: json, html, latex (default html)")

	_ = previewCmd.MarkFlagRequired("input")
	_ = previewCmd.MarkFlagRequired("out-dir")

	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd, map[string]*string{
		"accent": &previewAccent,
		"locale": &previewLocale,
		"format": &previewFormat,
	})
	if err != nil {
		return err
	}

	format, err := export.ParseFormat(settings.Format)
	if err != nil {
		return err
	}
	if format == export.FormatPDF {
		return fmt.Errorf("preview does not support pdf; use render --format pdf")
	}

	doc, err := loadDocument(previewInput)
	if err != nil {
		return err
	}
	logFindings(validation.LintDocument(doc, formatting.NewFormatter(settings.Locale)))

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	renderer := rendering.NewRenderer(rendering.WithLocale(settings.Locale))
	trees, err := renderer.Preview(ctx, doc, rendering.Accent(settings.Accent))
	if err != nil {
		return err
	}

	if err := os.MkdirAll(previewOutDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for i := range trees {
		tree := &trees[i]
		path := filepath.Join(previewOutDir, "resume-"+string(tree.Template)+format.Extension())
		if err := writeOutputFile(path, func(w io.Writer) error {
			return export.Write(ctx, w, tree, format, export.Options{})
		}); err != nil {
			return err
		}
		log.WithFields(logrus.Fields{"template": tree.Template, "output": path}).Debug("wrote preview")
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", tree.Template, path)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Rendered %d templates\n", len(trees))
	return nil
}
