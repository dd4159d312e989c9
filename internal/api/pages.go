package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

func (h *PageHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/", h.Index)
}

// Index serves the recipe suggestion form.
func (h *PageHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html.tmpl", gin.H{
		"title": "PantryChef",
	})
}
