package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/pageza/pantry-chef/config"
)

// chatMessage is one entry in the conversation sent to the API
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRequest is the chat-completions request body
type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

// OpenAIClient sends chat-completion requests to the OpenAI API. Credentials
// and endpoint come from the configuration provider, never from the process
// environment, so tests can point the client at a fake upstream.
type OpenAIClient struct {
	creds  config.CredentialProvider
	client *http.Client
	logger *zap.Logger
}

// NewOpenAIClient creates a new OpenAIClient instance
func NewOpenAIClient(creds config.CredentialProvider, logger *zap.Logger) *OpenAIClient {
	return &OpenAIClient{
		creds:  creds,
		client: http.DefaultClient,
		logger: logger.Named("openai"),
	}
}

// Complete sends a single two-message chat completion and returns the first
// choice's message content. A response carrying no choices is an error; a
// present choice with empty content is returned as the empty string.
func (c *OpenAIClient) Complete(ctx context.Context, systemMsg, userMsg string) (string, error) {
	reqBody := chatRequest{
		Model: c.creds.Model(),
		Messages: []chatMessage{
			{Role: "system", Content: systemMsg},
			{Role: "user", Content: userMsg},
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.creds.BaseURL(), bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.creds.APIKey()))
	if org := c.creds.Organization(); org != "" {
		req.Header.Set("OpenAI-Organization", org)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("completion request rejected",
			zap.Int("status", resp.StatusCode),
			zap.String("model", reqBody.Model))
		return "", fmt.Errorf("completion request failed with status %d", resp.StatusCode)
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}

	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	return result.Choices[0].Message.Content, nil
}
