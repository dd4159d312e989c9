package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerHost string
	ServerPort string

	// Database configuration (catalog storage). When no Postgres settings
	// are present the catalog falls back to a local SQLite file.
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSSLMode   string
	SQLitePath  string

	// OpenAI configuration
	OpenAIAPIKey string
	OpenAIOrg    string
	OpenAIModel  string
	OpenAIAPIURL string

	// CORS configuration
	AllowedOrigins []string

	// Debug enables the diagnostic prompt log and gin debug mode
	Debug bool
}

// LoadConfig creates a new Config instance with values from environment
// variables or secrets, depending on the environment
func LoadConfig() (*Config, error) {
	cfg := &Config{}

	switch env := GetEnvironment(); env {
	case Production:
		loadProdConfig(cfg)
	case Development, Test, CI:
		loadEnvConfig(cfg)
	default:
		return nil, fmt.Errorf("unknown environment: %s", env)
	}

	cfg.Debug = DebugEnabled()

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// loadEnvConfig loads configuration from environment variables with
// development defaults
func loadEnvConfig(cfg *Config) {
	cfg.ServerHost = envOr("SERVER_HOST", "0.0.0.0")
	cfg.ServerPort = envOr("SERVER_PORT", "8080")

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	cfg.DBHost = os.Getenv("DB_HOST")
	cfg.DBPort = envOr("DB_PORT", "5432")
	cfg.DBUser = envOr("DB_USER", "postgres")
	cfg.DBPassword = os.Getenv("DB_PASSWORD")
	cfg.DBName = envOr("DB_NAME", "pantrychef")
	cfg.DBSSLMode = envOr("DB_SSL_MODE", "disable")
	cfg.SQLitePath = envOr("SQLITE_PATH", "pantrychef.db")

	cfg.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	cfg.OpenAIOrg = os.Getenv("OPENAI_API_ORG")
	cfg.OpenAIModel = envOr("OPENAI_MODEL", defaultModel)
	cfg.OpenAIAPIURL = envOr("OPENAI_API_URL", defaultAPIURL)

	cfg.AllowedOrigins = splitOrigins(envOr("CORS_ALLOWED_ORIGINS", "http://localhost:5173"))
}

// loadProdConfig loads configuration from Docker secrets, falling back to
// environment variables for values not provisioned as secrets
func loadProdConfig(cfg *Config) {
	cfg.ServerHost = envOr("SERVER_HOST", "0.0.0.0")
	cfg.ServerPort = envOr("SERVER_PORT", "8080")

	cfg.DatabaseURL = secretOr("database_url", "DATABASE_URL")
	cfg.DBHost = secretOr("db_host", "DB_HOST")
	cfg.DBPort = envOr("DB_PORT", "5432")
	cfg.DBUser = secretOr("db_user", "DB_USER")
	cfg.DBPassword = secretOr("db_password", "DB_PASSWORD")
	cfg.DBName = envOr("DB_NAME", "pantrychef")
	cfg.DBSSLMode = envOr("DB_SSL_MODE", "require")
	cfg.SQLitePath = envOr("SQLITE_PATH", "pantrychef.db")

	cfg.OpenAIAPIKey = secretOr("openai_api_key", "OPENAI_API_KEY")
	cfg.OpenAIOrg = secretOr("openai_api_org", "OPENAI_API_ORG")
	cfg.OpenAIModel = envOr("OPENAI_MODEL", defaultModel)
	cfg.OpenAIAPIURL = envOr("OPENAI_API_URL", defaultAPIURL)

	cfg.AllowedOrigins = splitOrigins(os.Getenv("CORS_ALLOWED_ORIGINS"))
}

// UsesPostgres reports whether catalog storage should run on Postgres.
// Any explicit Postgres setting wins over the SQLite fallback.
func (c *Config) UsesPostgres() bool {
	return c.DatabaseURL != "" || c.DBHost != ""
}

// PostgresDSN assembles the Postgres connection string. DATABASE_URL, when
// set, is used as-is.
func (c *Config) PostgresDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

// envOr returns the value of the environment variable or the fallback when
// it is unset or empty
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// secretOr reads a Docker secret, falling back to an environment variable
func secretOr(secret, envKey string) string {
	if v := readSecret(secret); v != "" {
		return v
	}
	return os.Getenv(envKey)
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	if data, err := os.ReadFile(filepath.Join(secretsDir, name)); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}

func splitOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
