package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/pantry-chef/internal/models"
	"github.com/pageza/pantry-chef/internal/service"
	"github.com/pageza/pantry-chef/internal/types"
)

type CatalogHandler struct {
	catalogService service.ICatalogService
}

func NewCatalogHandler(catalogService service.ICatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

func (h *CatalogHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/catalog", h.ListCatalog)
}

// ListCatalog returns the common item labels the form offers as one-click
// toggles. An optional kind query parameter narrows the result to one side.
func (h *CatalogHandler) ListCatalog(c *gin.Context) {
	if kindParam := c.Query("kind"); kindParam != "" {
		kind, err := models.ParseItemKind(kindParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid catalog kind"})
			return
		}

		items, err := h.catalogService.ListKind(c.Request.Context(), kind)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list catalog"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": labels(items)})
		return
	}

	items, err := h.catalogService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list catalog"})
		return
	}

	response := types.CatalogResponse{
		Ingredients: []string{},
		Equipment:   []string{},
	}
	for _, item := range items {
		switch item.Kind {
		case models.KindIngredient:
			response.Ingredients = append(response.Ingredients, item.Label)
		case models.KindEquipment:
			response.Equipment = append(response.Equipment, item.Label)
		}
	}
	c.JSON(http.StatusOK, response)
}

func labels(items []models.CatalogItem) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Label
	}
	return out
}
