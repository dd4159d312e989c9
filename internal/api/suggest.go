package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/pantry-chef/internal/service"
	"github.com/pageza/pantry-chef/internal/types"
)

type SuggestionHandler struct {
	suggestionService service.ISuggestionService
}

func NewSuggestionHandler(suggestionService service.ISuggestionService) *SuggestionHandler {
	return &SuggestionHandler{suggestionService: suggestionService}
}

func (h *SuggestionHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/suggestions", h.CreateSuggestion)
}

// CreateSuggestion handles one recipe form submission. The response is
// always 200: a generated suggestion when the input was usable, a null
// generatedOutput otherwise. The page renders null as "no suggestion",
// so incomplete forms and upstream failures look the same to the user.
func (h *SuggestionHandler) CreateSuggestion(c *gin.Context) {
	var req types.SuggestRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusOK, types.SuggestResponse{})
		return
	}

	raw := map[string]string{
		service.FieldIngredients: req.IngredientsList,
		service.FieldEquipment:   req.EquipmentList,
		service.FieldAdults:      req.NumAdults,
		service.FieldChildren:    req.NumChildren,
		service.FieldMeal:        req.MealName,
	}

	result := h.suggestionService.Handle(c.Request.Context(), raw)
	if result == nil {
		c.JSON(http.StatusOK, types.SuggestResponse{})
		return
	}

	c.JSON(http.StatusOK, types.SuggestResponse{GeneratedOutput: &result.GeneratedText})
}
