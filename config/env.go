package config

import (
	"os"
)

// Environment represents the current runtime environment
type Environment string

const (
	Development Environment = "development"
	Test        Environment = "test"
	CI          Environment = "ci"
	Production  Environment = "production"
)

// GetEnvironment determines the current environment. CI is detected
// automatically; everything else is set via APP_ENV.
func GetEnvironment() Environment {
	if os.Getenv("CI") == "true" {
		return CI
	}

	switch os.Getenv("APP_ENV") {
	case "production":
		return Production
	case "test":
		return Test
	case "development":
		return Development
	default:
		return Development
	}
}

// IsProduction returns true if the current environment is production
func IsProduction() bool {
	return GetEnvironment() == Production
}

// DebugEnabled reports whether the diagnostic prompt log should be active.
// DEBUG overrides explicitly; otherwise development implies debug.
func DebugEnabled() bool {
	switch os.Getenv("DEBUG") {
	case "true", "1":
		return true
	case "false", "0":
		return false
	}
	return GetEnvironment() == Development
}
