// Package config provides configuration loading and validation for the
// parser CLI and HTTP server.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-parser/internal/documents"
)

// DefaultMaxUploadBytes bounds the size of a single upload.
const DefaultMaxUploadBytes int64 = 10 << 20

// Config is the application configuration. Values come from defaults, then an
// optional JSON file, then environment variables.
type Config struct {
	MaxUploadBytes int64  `json:"max_upload_bytes" validate:"gt=0"`
	LogLevel       string `json:"log_level" validate:"oneof=debug info warn error"`
	LogDevelopment bool   `json:"log_development"`
	Port           int    `json:"port" validate:"min=1,max=65535"`
	DatabaseURL    string `json:"database_url,omitempty" validate:"omitempty,url"`
	PDFMaxPages    int    `json:"pdf_max_pages" validate:"min=0"` // 0 means unlimited
	AllowPlainText bool   `json:"allow_plain_text"`
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		MaxUploadBytes: DefaultMaxUploadBytes,
		LogLevel:       "info",
		Port:           8080,
		AllowPlainText: true,
	}
}

// Load builds the effective configuration: defaults, the JSON file at path
// (skipped when path is empty), environment overrides, then validation.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		var err error
		if cfg, err = LoadConfig(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig reads a JSON config file. Fields absent from the file keep
// their defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from environment variables that are set.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("MAX_UPLOAD_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid MAX_UPLOAD_BYTES: %w", err)
		}
		c.MaxUploadBytes = n
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = strings.ToLower(v)
	}
	if v := os.Getenv("LOG_DEVELOPMENT"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid LOG_DEVELOPMENT: %w", err)
		}
		c.LogDevelopment = b
	}
	if v := os.Getenv("PORT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT: %w", err)
		}
		c.Port = n
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv("PDF_MAX_PAGES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PDF_MAX_PAGES: %w", err)
		}
		c.PDFMaxPages = n
	}
	if v := os.Getenv("ALLOW_PLAIN_TEXT"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid ALLOW_PLAIN_TEXT: %w", err)
		}
		c.AllowPlainText = b
	}
	return nil
}

// Validate checks field constraints and reports every violation at once.
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("config error: %w", err)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s failed '%s' (value %v)", fe.Field(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("config error: %s", strings.Join(msgs, "; "))
}

// DocumentOptions returns the extractor settings derived from the config.
func (c *Config) DocumentOptions() documents.Options {
	return documents.Options{PDF: documents.PDFOptions{MaxPages: c.PDFMaxPages}}
}

// SniffOptions returns the sniffer settings derived from the config.
func (c *Config) SniffOptions() documents.SniffOptions {
	return documents.SniffOptions{AllowPlainText: c.AllowPlainText}
}
