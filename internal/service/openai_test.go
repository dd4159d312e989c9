package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeCredentials struct {
	key   string
	org   string
	model string
	url   string
}

func (f fakeCredentials) APIKey() string       { return f.key }
func (f fakeCredentials) Organization() string { return f.org }
func (f fakeCredentials) Model() string        { return f.model }
func (f fakeCredentials) BaseURL() string      { return f.url }

func completionResponse(content string) string {
	return `{"choices":[{"message":{"role":"assistant","content":` + jsonString(content) + `}}]}`
}

func jsonString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func TestOpenAIClientComplete(t *testing.T) {
	var captured struct {
		method string
		auth   string
		org    string
		body   chatRequest
	}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.method = r.Method
		captured.auth = r.Header.Get("Authorization")
		captured.org = r.Header.Get("OpenAI-Organization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured.body))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(completionResponse("Pan-fried rice with garlic.")))
	}))
	defer ts.Close()

	creds := fakeCredentials{key: "test-key", org: "org-test", model: "gpt-3.5-turbo", url: ts.URL}
	client := NewOpenAIClient(creds, zap.NewNop())

	content, err := client.Complete(context.Background(), "system role", "user instruction")

	require.NoError(t, err)
	assert.Equal(t, "Pan-fried rice with garlic.", content)
	assert.Equal(t, http.MethodPost, captured.method)
	assert.Equal(t, "Bearer test-key", captured.auth)
	assert.Equal(t, "org-test", captured.org)
	assert.Equal(t, "gpt-3.5-turbo", captured.body.Model)
	require.Len(t, captured.body.Messages, 2)
	assert.Equal(t, "system", captured.body.Messages[0].Role)
	assert.Equal(t, "system role", captured.body.Messages[0].Content)
	assert.Equal(t, "user", captured.body.Messages[1].Role)
	assert.Equal(t, "user instruction", captured.body.Messages[1].Content)
}

func TestOpenAIClientOmitsOrganizationHeaderWhenUnset(t *testing.T) {
	var sawOrgHeader bool

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawOrgHeader = r.Header["Openai-Organization"]
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(completionResponse("ok")))
	}))
	defer ts.Close()

	client := NewOpenAIClient(fakeCredentials{key: "k", model: "m", url: ts.URL}, zap.NewNop())

	_, err := client.Complete(context.Background(), "s", "u")

	require.NoError(t, err)
	assert.False(t, sawOrgHeader)
}

func TestOpenAIClientUpstreamError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"message":"boom"}}`))
	}))
	defer ts.Close()

	client := NewOpenAIClient(fakeCredentials{key: "k", model: "m", url: ts.URL}, zap.NewNop())

	_, err := client.Complete(context.Background(), "s", "u")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestOpenAIClientNoChoices(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer ts.Close()

	client := NewOpenAIClient(fakeCredentials{key: "k", model: "m", url: ts.URL}, zap.NewNop())

	_, err := client.Complete(context.Background(), "s", "u")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}

func TestOpenAIClientEmptyContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(completionResponse("")))
	}))
	defer ts.Close()

	client := NewOpenAIClient(fakeCredentials{key: "k", model: "m", url: ts.URL}, zap.NewNop())

	content, err := client.Complete(context.Background(), "s", "u")

	require.NoError(t, err)
	assert.Equal(t, "", content)
}

func TestOpenAIClientMalformedResponse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("not json"))
	}))
	defer ts.Close()

	client := NewOpenAIClient(fakeCredentials{key: "k", model: "m", url: ts.URL}, zap.NewNop())

	_, err := client.Complete(context.Background(), "s", "u")

	assert.Error(t, err)
}

func TestOpenAIClientCancelledContext(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(completionResponse("too late")))
	}))
	defer ts.Close()

	client := NewOpenAIClient(fakeCredentials{key: "k", model: "m", url: ts.URL}, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Complete(ctx, "s", "u")

	assert.Error(t, err)
}
