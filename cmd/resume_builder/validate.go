package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/formatting"
	"github.com/jonathan/resume-builder/internal/ingestion"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/validation"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a resume document, or any JSON file against a schema",
	Long: "With --input, checks a resume document against the built-in schema and reports lint findings. " +
		"With --schema and --json, validates an arbitrary JSON file against a JSON Schema file.",
	RunE: runValidate,
}

var (
	validateInput  string
	validateSchema string
	validateJSON   string
	validateLocale string
)

func init() {
	validateCmd.Flags().StringVarP(&validateInput, "input", "i", "", "Path to resume document (.json, .yaml, or - for stdin)")
	validateCmd.Flags().StringVarP(&validateSchema, "schema", "s", "", "Path to JSON Schema file")
	validateCmd.Flags().StringVarP(&validateJSON, "json", "j", "", "Path to JSON file to validate")
	validateCmd.Flags().StringVarP(&validateLocale, "locale", "l", "", "Locale for dates in lint messages (default from environment)")

	validateCmd.MarkFlagsMutuallyExclusive("input", "schema")
	validateCmd.MarkFlagsMutuallyExclusive("input", "json")
	validateCmd.MarkFlagsRequiredTogether("schema", "json")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	if validateInput == "" && validateSchema == "" {
		return fmt.Errorf("must provide either --input or --schema/--json flags")
	}
	if validateInput == "" {
		return runValidateSchema(cmd)
	}

	data, err := ingestion.ReadJSON(validateInput)
	if err != nil {
		return err
	}
	if err := schemas.ValidateDocument(data); err != nil {
		return reportSchemaFailure(cmd, err)
	}

	doc, err := ingestion.DecodeDocument(data)
	if err != nil {
		return err
	}

	locale := validateLocale
	if locale == "" {
		locale = formatting.DetectLocale()
	}
	findings := validation.LintDocument(doc, formatting.NewFormatter(locale))

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "Validation passed: %s\n", validateInput)
	if verbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintViolations(findings)
	}
	for _, v := range findings.Violations {
		_, _ = fmt.Fprintf(out, "  [%s] %s %s: %s\n", v.Severity, v.Type, v.Field, v.Details)
	}
	return nil
}

func runValidateSchema(cmd *cobra.Command) error {
	schemaPath := validateSchema
	if _, err := os.Stat(schemaPath); os.IsNotExist(err) {
		if resolved := schemas.ResolveSchemaPath(schemaPath); resolved != "" {
			schemaPath = resolved
		}
	}

	if err := schemas.ValidateJSON(schemaPath, validateJSON); err != nil {
		return reportSchemaFailure(cmd, err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Validation passed: %s\n", validateJSON)
	return nil
}

// reportSchemaFailure prints field errors to stderr and returns the error for a non-zero exit.
func reportSchemaFailure(cmd *cobra.Command, err error) error {
	var validationErr *schemas.ValidationError
	if errors.As(err, &validationErr) {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Validation failed:\n")
		for _, fieldErr := range validationErr.Errors {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "  - %s: %s\n", fieldErr.Field, fieldErr.Message)
		}
		return fmt.Errorf("validation failed with %d error(s)", len(validationErr.Errors))
	}
	return err
}
