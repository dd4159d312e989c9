package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable the loader reads so defaults are observable.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CI", "APP_ENV", "DEBUG",
		"SERVER_HOST", "SERVER_PORT",
		"DATABASE_URL", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD",
		"DB_NAME", "DB_SSL_MODE", "SQLITE_PATH",
		"OPENAI_API_KEY", "OPENAI_API_ORG", "OPENAI_MODEL", "OPENAI_API_URL",
		"CORS_ALLOWED_ORIGINS", "SECRETS_DIR",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "test")
	t.Setenv("OPENAI_API_KEY", "sk-test-key")
	t.Setenv("OPENAI_API_ORG", "org-test")
	t.Setenv("SERVER_PORT", "9090")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "sk-test-key", cfg.OpenAIAPIKey)
	assert.Equal(t, "org-test", cfg.OpenAIOrg)
	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "gpt-3.5-turbo", cfg.OpenAIModel)
	assert.Equal(t, "https://api.openai.com/v1/chat/completions", cfg.OpenAIAPIURL)
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "test")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "0.0.0.0", cfg.ServerHost)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "pantrychef.db", cfg.SQLitePath)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.AllowedOrigins)
	assert.False(t, cfg.UsesPostgres())
	assert.False(t, cfg.Debug)
}

func TestLoadConfigPostgres(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "test")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PASSWORD", "hunter2")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.True(t, cfg.UsesPostgres())
	dsn := cfg.PostgresDSN()
	assert.Contains(t, dsn, "host=db.internal")
	assert.Contains(t, dsn, "dbname=pantrychef")
	assert.Contains(t, dsn, "sslmode=disable")
}

func TestLoadConfigDatabaseURLWins(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "test")
	t.Setenv("DATABASE_URL", "postgres://app:secret@db:5432/pantry?sslmode=require")
	t.Setenv("DB_HOST", "ignored.internal")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.True(t, cfg.UsesPostgres())
	assert.Equal(t, "postgres://app:secret@db:5432/pantry?sslmode=require", cfg.PostgresDSN())
}

func TestValidateConfigRequiresKeyInDevelopment(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "development")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}

func TestDebugEnabled(t *testing.T) {
	clearEnv(t)

	t.Setenv("APP_ENV", "test")
	assert.False(t, DebugEnabled())

	t.Setenv("APP_ENV", "development")
	assert.True(t, DebugEnabled())

	t.Setenv("DEBUG", "false")
	assert.False(t, DebugEnabled())

	t.Setenv("APP_ENV", "production")
	t.Setenv("DEBUG", "true")
	assert.True(t, DebugEnabled())
}

func TestConfigImplementsCredentialProvider(t *testing.T) {
	var provider CredentialProvider = &Config{
		OpenAIAPIKey: "sk-abc",
		OpenAIOrg:    "org-1",
		OpenAIModel:  "gpt-3.5-turbo",
		OpenAIAPIURL: "http://127.0.0.1:9999/v1/chat/completions",
	}

	assert.Equal(t, "sk-abc", provider.APIKey())
	assert.Equal(t, "org-1", provider.Organization())
	assert.Equal(t, "gpt-3.5-turbo", provider.Model())
	assert.Equal(t, "http://127.0.0.1:9999/v1/chat/completions", provider.BaseURL())
}
