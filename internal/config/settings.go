package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is the prefix for settings read from the environment.
const EnvPrefix = "PEOPLEFMT"

// Settings holds CLI defaults. Flags override them.
type Settings struct {
	Format    string        `envconfig:"FORMAT" default:"console" validate:"required"`
	OutputDir string        `envconfig:"OUTPUT_DIR" default:"." validate:"required"`
	Strict    bool          `envconfig:"STRICT" default:"false"`
	Logging   LoggingConfig `envconfig:"LOG"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `envconfig:"LEVEL" default:"warn" validate:"oneof=debug info warn warning error"`
	Format string `envconfig:"FORMAT" default:"text" validate:"oneof=text json"`
}

var validate = validator.New()

// LoadSettings reads settings from PEOPLEFMT_* environment variables and validates them.
func LoadSettings() (*Settings, error) {
	var s Settings
	if err := envconfig.Process(EnvPrefix, &s); err != nil {
		return nil, fmt.Errorf("failed to load settings from env: %w", err)
	}
	s.Logging.Level = strings.ToLower(s.Logging.Level)
	s.Logging.Format = strings.ToLower(s.Logging.Format)
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks field constraints and reports each failing field.
func (s *Settings) Validate() error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("settings validation failed: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, formatValidationError(fe))
	}
	return fmt.Errorf("settings validation failed: %s", strings.Join(msgs, "; "))
}

func formatValidationError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Namespace())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", fe.Namespace(), fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Namespace(), fe.Tag())
	}
}
