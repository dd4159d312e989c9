package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// fieldRequirement names a configuration value that must be present
type fieldRequirement struct {
	name  string
	value func(*Config) string
}

var baseRequirements = []fieldRequirement{
	{"SERVER_PORT", func(c *Config) string { return c.ServerPort }},
	{"OPENAI_MODEL", func(c *Config) string { return c.OpenAIModel }},
	{"OPENAI_API_URL", func(c *Config) string { return c.OpenAIAPIURL }},
}

// The API key is required wherever real completions are expected. Test and
// CI runs substitute fake credential sources and may omit it.
var credentialRequirements = []fieldRequirement{
	{"OPENAI_API_KEY", func(c *Config) string { return c.OpenAIAPIKey }},
}

var postgresRequirements = []fieldRequirement{
	{"DB_USER", func(c *Config) string { return c.DBUser }},
	{"DB_NAME", func(c *Config) string { return c.DBName }},
}

// ValidateConfig checks that the configuration meets the requirements for
// the current environment
func ValidateConfig(cfg *Config) error {
	env := GetEnvironment()

	required := append([]fieldRequirement{}, baseRequirements...)
	if env == Development || env == Production {
		required = append(required, credentialRequirements...)
	}
	if cfg.UsesPostgres() && cfg.DatabaseURL == "" {
		required = append(required, postgresRequirements...)
	}

	var errors []string
	for _, req := range required {
		if req.value(cfg) == "" {
			errors = append(errors, ValidationError{
				Field:   req.name,
				Message: "required value is not set",
			}.Error())
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, "; "))
	}

	return nil
}
