package testhelpers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/pageza/pantry-chef/config"
)

// CompletionRequest is the decoded body of one captured upstream call.
type CompletionRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

// FakeCompletionServer plays the chat completion endpoint. Every call is
// captured; Status switches the server into a failure mode.
type FakeCompletionServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []CompletionRequest

	Content string
	Status  int
}

// NewFakeCompletionServer starts a fake upstream answering every call
// with the given content. It is closed when the test finishes.
func NewFakeCompletionServer(t *testing.T, content string) *FakeCompletionServer {
	t.Helper()

	f := &FakeCompletionServer{Content: content, Status: http.StatusOK}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req CompletionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		f.mu.Lock()
		f.requests = append(f.requests, req)
		status := f.Status
		reply := f.Content
		f.mu.Unlock()

		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": reply}},
			},
		})
	}))
	t.Cleanup(f.Close)
	return f
}

// SetStatus switches the response status for subsequent calls.
func (f *FakeCompletionServer) SetStatus(status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Status = status
}

// Requests returns the captured calls so far.
func (f *FakeCompletionServer) Requests() []CompletionRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]CompletionRequest, len(f.requests))
	copy(out, f.requests)
	return out
}

// Credentials returns a provider pointing at this fake server.
func (f *FakeCompletionServer) Credentials() config.CredentialProvider {
	return StaticCredentials{Key: "test-key", ModelName: "gpt-3.5-turbo", URL: f.URL}
}

// StaticCredentials is a fixed CredentialProvider for tests.
type StaticCredentials struct {
	Key       string
	Org       string
	ModelName string
	URL       string
}

func (c StaticCredentials) APIKey() string       { return c.Key }
func (c StaticCredentials) Organization() string { return c.Org }
func (c StaticCredentials) Model() string        { return c.ModelName }
func (c StaticCredentials) BaseURL() string      { return c.URL }
