package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/onlyinellada/backend/internal/feed"
	"github.com/onlyinellada/backend/internal/models"
)

type CategoryHandler struct {
	composer *feed.Composer
	logger   *slog.Logger
}

func NewCategoryHandler(composer *feed.Composer, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{composer: composer, logger: logger}
}

// GetCategories lists the categories for the filter bar and submission form.
// A passive read: storage failure degrades to an empty list.
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories, err := h.composer.Categories(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to load categories", "error", err)
		c.JSON(http.StatusOK, []models.Category{})
		return
	}

	if categories == nil {
		categories = []models.Category{}
	}

	c.JSON(http.StatusOK, categories)
}
