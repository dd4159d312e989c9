package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"

	"github.com/pageza/pantry-chef/internal/models"
	"github.com/pageza/pantry-chef/internal/service"
)

// performRequest runs one request through the handler under test and
// returns the recorded response.
func performRequest(r http.Handler, method, path string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// newTestRouter builds a bare engine with an API group matching the
// production route layout.
func newTestRouter() (*gin.Engine, *gin.RouterGroup) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	return r, r.Group("/api/v1")
}

// MockSuggestionService records Handle calls and returns a canned result.
type MockSuggestionService struct {
	Result  *service.CompletionResult
	LastRaw map[string]string
	Calls   int
}

func (m *MockSuggestionService) Handle(_ context.Context, raw map[string]string) *service.CompletionResult {
	m.Calls++
	m.LastRaw = raw
	return m.Result
}

// MockCatalogService serves fixed catalog items.
type MockCatalogService struct {
	Items []models.CatalogItem
	Err   error
}

func (m *MockCatalogService) List(_ context.Context) ([]models.CatalogItem, error) {
	return m.Items, m.Err
}

func (m *MockCatalogService) ListKind(_ context.Context, kind models.ItemKind) ([]models.CatalogItem, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var out []models.CatalogItem
	for _, item := range m.Items {
		if item.Kind == kind {
			out = append(out, item)
		}
	}
	return out, nil
}

func (m *MockCatalogService) Seed(_ context.Context) error {
	return m.Err
}
