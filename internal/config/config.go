// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-builder/internal/formatting"
)

// Environment variables read by FromEnv
const (
	EnvTemplate   = "RESUME_TEMPLATE"
	EnvAccent     = "RESUME_ACCENT"
	EnvLocale     = "RESUME_LOCALE"
	EnvFormat     = "RESUME_FORMAT"
	EnvPDFTimeout = "RESUME_PDF_TIMEOUT"
	EnvChromePath = "CHROME_PATH"
)

// Built-in defaults
const (
	DefaultTemplate   = "classic"
	DefaultAccent     = "#2563eb"
	DefaultFormat     = "html"
	DefaultPDFTimeout = 30
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	Template string `json:"template,omitempty" validate:"omitempty,oneof=classic modern"` // Template kind
	Accent   string `json:"accent,omitempty" validate:"omitempty,csscolor"`              // Any CSS color
	Locale   string `json:"locale,omitempty"`                                            // Month name locale, e.g. de_DE
	Format   string `json:"format,omitempty" validate:"omitempty,oneof=json html latex tex pdf"`
	Output   string `json:"output,omitempty"` // Output file; empty writes to stdout

	// PDF export
	ChromePath string `json:"chrome_path,omitempty"`                                  // Chrome/Chromium binary
	PDFTimeout int    `json:"pdf_timeout_seconds,omitempty" validate:"gte=0,lte=600"` // Seconds per print

	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report JSON field names rather than Go field names.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	if err := formatting.RegisterColorValidation(v); err != nil {
		panic(err)
	}
	return v
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Template:   DefaultTemplate,
		Accent:     DefaultAccent,
		Format:     DefaultFormat,
		PDFTimeout: DefaultPDFTimeout,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv builds a Config from environment variables. Unset variables leave fields empty.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Template:   strings.ToLower(strings.TrimSpace(os.Getenv(EnvTemplate))),
		Accent:     strings.TrimSpace(os.Getenv(EnvAccent)),
		Locale:     strings.TrimSpace(os.Getenv(EnvLocale)),
		Format:     strings.ToLower(strings.TrimSpace(os.Getenv(EnvFormat))),
		ChromePath: strings.TrimSpace(os.Getenv(EnvChromePath)),
	}

	if raw := strings.TrimSpace(os.Getenv(EnvPDFTimeout)); raw != "" {
		seconds, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("config error: %s must be a number of seconds: %w", EnvPDFTimeout, err)
		}
		cfg.PDFTimeout = seconds
	}

	return cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
			fe := validationErrors[0]
			return fmt.Errorf("config error: '%s' fails %s: %v", fe.Field(), describeTag(fe), fe.Value())
		}
		return fmt.Errorf("config error: %w", err)
	}

	if c.ChromePath != "" {
		if _, err := os.Stat(c.ChromePath); os.IsNotExist(err) {
			return fmt.Errorf("config error: chrome binary not found: %s", c.ChromePath)
		}
	}

	return nil
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "oneof":
		return "one of [" + fe.Param() + "]"
	case formatting.ColorTag:
		return "a CSS color"
	case "gte", "lte":
		return fe.Tag() + " " + fe.Param()
	default:
		return fe.Tag()
	}
}

// PDFTimeoutDuration returns the PDF timeout as a duration. Zero means the exporter default.
func (c *Config) PDFTimeoutDuration() time.Duration {
	return time.Duration(c.PDFTimeout) * time.Second
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to layer config file values over environment values over built-ins.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Template == "" {
		result.Template = defaults.Template
	}
	if result.Accent == "" {
		result.Accent = defaults.Accent
	}
	if result.Locale == "" {
		result.Locale = defaults.Locale
	}
	if result.Format == "" {
		result.Format = defaults.Format
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.ChromePath == "" {
		result.ChromePath = defaults.ChromePath
	}

	// Int fields: use default if zero
	if result.PDFTimeout == 0 {
		result.PDFTimeout = defaults.PDFTimeout
	}

	// Bool fields: cannot distinguish unset from false, so only true propagates
	// (CLI flags should always win for bools)
	result.Verbose = result.Verbose || defaults.Verbose

	return result
}

// Resolve layers an optional config file over the environment over built-in
// defaults and validates the result.
func Resolve(path string) (Config, error) {
	env, err := FromEnv()
	if err != nil {
		return Config{}, err
	}
	layered := env.MergeWithDefaults(Defaults())

	if path != "" {
		file, err := LoadConfig(path)
		if err != nil {
			return Config{}, err
		}
		layered = file.MergeWithDefaults(layered)
	}

	if err := layered.Validate(); err != nil {
		return Config{}, err
	}
	return layered, nil
}
