package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/formatting"
	"github.com/jonathan/resume-builder/internal/ingestion"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
)

// loadSettings resolves configuration in order of precedence: explicit flags,
// config file, environment, built-in defaults. An empty locale falls back to
// the process locale.
func loadSettings(cmd *cobra.Command, overrides map[string]*string) (config.Config, error) {
	cfg, err := config.Resolve(configFile)
	if err != nil {
		return config.Config{}, err
	}

	for name, value := range overrides {
		if !cmd.Flags().Changed(name) {
			continue
		}
		switch name {
		case "template":
			cfg.Template = *value
		case "accent":
			cfg.Accent = *value
		case "locale":
			cfg.Locale = *value
		case "format":
			cfg.Format = *value
		case "out":
			cfg.Output = *value
		case "chrome-path":
			cfg.ChromePath = *value
		}
	}
	cfg.Verbose = cfg.Verbose || verbose

	if cfg.Locale == "" {
		cfg.Locale = formatting.DetectLocale()
	}

	log.WithFields(logrus.Fields{
		"template": cfg.Template,
		"accent":   cfg.Accent,
		"locale":   cfg.Locale,
		"format":   cfg.Format,
	}).Debug("resolved settings")

	return cfg, nil
}

// loadDocument reads, schema-validates and decodes a resume document.
func loadDocument(path string) (*types.ResumeDocument, error) {
	data, err := ingestion.ReadJSON(path)
	if err != nil {
		return nil, err
	}
	if err := schemas.ValidateDocument(data); err != nil {
		return nil, fmt.Errorf("document failed schema validation: %w", err)
	}
	doc, err := ingestion.DecodeDocument(data)
	if err != nil {
		return nil, &ingestion.LoadError{Path: path, Message: "failed to decode document", Cause: err}
	}
	log.WithField("input", path).Debug("loaded document")
	return doc, nil
}

// logFindings reports lint findings without failing the command.
func logFindings(findings *types.Violations) {
	for _, v := range findings.Violations {
		entry := log.WithFields(logrus.Fields{"type": v.Type, "field": v.Field})
		if v.Severity == types.SeverityWarning {
			entry.Warn(v.Details)
		} else {
			entry.Debug(v.Details)
		}
	}
}
