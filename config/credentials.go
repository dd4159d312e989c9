package config

const (
	defaultModel  = "gpt-3.5-turbo"
	defaultAPIURL = "https://api.openai.com/v1/chat/completions"
)

// CredentialProvider supplies the OpenAI connection settings. The completion
// client depends on this interface rather than reading the process
// environment, so tests can substitute a fake source.
type CredentialProvider interface {
	// APIKey returns the OpenAI API key.
	APIKey() string
	// Organization returns the OpenAI organization identifier, empty when
	// the account has none.
	Organization() string
	// Model returns the chat model identifier.
	Model() string
	// BaseURL returns the chat-completions endpoint URL.
	BaseURL() string
}

// APIKey implements CredentialProvider.
func (c *Config) APIKey() string { return c.OpenAIAPIKey }

// Organization implements CredentialProvider.
func (c *Config) Organization() string { return c.OpenAIOrg }

// Model implements CredentialProvider.
func (c *Config) Model() string { return c.OpenAIModel }

// BaseURL implements CredentialProvider.
func (c *Config) BaseURL() string { return c.OpenAIAPIURL }
