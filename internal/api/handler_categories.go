package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListCategories handles GET /api/categories.
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.engine.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]categoryResponse, 0, len(categories))
	for _, cat := range categories {
		resp = append(resp, newCategoryResponse(cat))
	}
	c.JSON(http.StatusOK, resp)
}
