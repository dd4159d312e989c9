package integration

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pageza/pantry-chef/config"
	"github.com/pageza/pantry-chef/internal/api"
	"github.com/pageza/pantry-chef/internal/database"
	"github.com/pageza/pantry-chef/internal/metrics"
	"github.com/pageza/pantry-chef/internal/router"
	"github.com/pageza/pantry-chef/internal/service"
	"github.com/pageza/pantry-chef/internal/testhelpers"
)

// setupApp wires the full application against a sqlite database and the
// given fake upstream, exactly as cmd/api does in production.
func setupApp(t *testing.T, fake *testhelpers.FakeCompletionServer) *gin.Engine {
	t.Helper()

	cfg := &config.Config{
		SQLitePath:     filepath.Join(t.TempDir(), "integration.db"),
		AllowedOrigins: []string{"http://localhost:5173"},
	}
	logger := zap.NewNop()

	db, err := database.New(cfg, logger)
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(db, "unused", logger))

	catalogService := service.NewCatalogService(db.DB, logger)
	require.NoError(t, catalogService.Seed(context.Background()))

	m := metrics.New()
	completionClient := service.InstrumentCompletionClient(
		service.NewOpenAIClient(fake.Credentials(), logger), m)
	suggestionService := service.NewSuggestionService(completionClient, logger, false)

	return router.SetupRouter(
		cfg,
		logger,
		m,
		api.NewPageHandler(),
		api.NewSuggestionHandler(suggestionService),
		api.NewCatalogHandler(catalogService),
		api.NewHealthHandler(db),
	)
}

func postJSON(r http.Handler, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func getPath(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestSuggestionFlow(t *testing.T) {
	fake := testhelpers.NewFakeCompletionServer(t, "Pantry pasta with garlic butter.")
	r := setupApp(t, fake)

	t.Run("valid submission returns a suggestion", func(t *testing.T) {
		w := postJSON(r, "/api/v1/suggestions", `{
			"ingredientsList": "Salt, Pepper, Pasta, Garlic, Butter",
			"equipmentList": "Stove top",
			"numAdults": "2",
			"numChildren": "0",
			"mealName": "dinner"
		}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"generatedOutput":"Pantry pasta with garlic butter."}`, w.Body.String())

		requests := fake.Requests()
		require.Len(t, requests, 1)
		assert.Equal(t, "gpt-3.5-turbo", requests[0].Model)
		require.Len(t, requests[0].Messages, 2)
		assert.Equal(t, "system", requests[0].Messages[0].Role)
		assert.Equal(t, "user", requests[0].Messages[1].Role)
		instruction := requests[0].Messages[1].Content
		assert.Contains(t, instruction, "Salt, Pepper, Pasta, Garlic, Butter")
		assert.Contains(t, instruction, "Stove top")
		assert.Contains(t, instruction, "2 adults")
		assert.Contains(t, instruction, "dinner")
	})

	t.Run("incomplete submission is declined without an upstream call", func(t *testing.T) {
		before := len(fake.Requests())

		w := postJSON(r, "/api/v1/suggestions", `{"ingredientsList":"","equipmentList":""}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"generatedOutput":null}`, w.Body.String())
		assert.Len(t, fake.Requests(), before, "rejected input must not reach the upstream")
	})

	t.Run("upstream failure yields a null suggestion", func(t *testing.T) {
		fake.SetStatus(http.StatusInternalServerError)
		defer fake.SetStatus(http.StatusOK)

		w := postJSON(r, "/api/v1/suggestions", `{
			"ingredientsList": "Rice",
			"equipmentList": "Pot",
			"numAdults": "1"
		}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"generatedOutput":null}`, w.Body.String())
	})

	t.Run("metrics expose completion outcomes", func(t *testing.T) {
		w := getPath(r, "/metrics")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `pantrychef_completions_total{outcome="success"} 1`)
		assert.Contains(t, w.Body.String(), `pantrychef_completions_total{outcome="error"} 1`)
	})
}

func TestPageAndCatalog(t *testing.T) {
	fake := testhelpers.NewFakeCompletionServer(t, "unused")
	r := setupApp(t, fake)

	t.Run("form page is served", func(t *testing.T) {
		w := getPath(r, "/")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "suggest-form")
	})

	t.Run("catalog lists seeded defaults", func(t *testing.T) {
		w := getPath(r, "/api/v1/catalog")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Salt")
		assert.Contains(t, w.Body.String(), "Stove top")
	})

	t.Run("health reports ok", func(t *testing.T) {
		w := getPath(r, "/health")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"ok"`)
	})
}
