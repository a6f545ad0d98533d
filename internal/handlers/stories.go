package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/onlyinellada/backend/internal/feed"
	"github.com/onlyinellada/backend/internal/middleware"
	"github.com/onlyinellada/backend/internal/models"
	"github.com/onlyinellada/backend/internal/stories"
	"github.com/onlyinellada/backend/internal/storage"
)

type StoryHandler struct {
	composer   *feed.Composer
	submission *stories.Service
	logger     *slog.Logger
}

func NewStoryHandler(composer *feed.Composer, submission *stories.Service, logger *slog.Logger) *StoryHandler {
	return &StoryHandler{composer: composer, submission: submission, logger: logger}
}

// GetStories returns the filtered, sorted feed. Query params: category
// (slug or "all") and sort ("new" | "top"). Storage failure degrades to an
// empty feed with a loading-failed marker instead of a hard error.
func (h *StoryHandler) GetStories(c *gin.Context) {
	req := feed.Request{
		Category:    c.DefaultQuery("category", feed.CategoryAll),
		Sort:        feed.ParseSort(c.DefaultQuery("sort", "new")),
		RequesterID: middleware.UserID(c),
	}

	storyList, err := h.composer.Compose(c.Request.Context(), req)
	if err != nil {
		h.logger.Error("failed to load feed", "error", err, "category", req.Category, "sort", req.Sort)
		c.JSON(http.StatusOK, gin.H{
			"stories":        []models.StoryWithDetails{},
			"loading_failed": true,
		})
		return
	}

	if storyList == nil {
		storyList = []models.StoryWithDetails{}
	}

	c.JSON(http.StatusOK, gin.H{"stories": storyList})
}

// GetStory returns a single story with details.
func (h *StoryHandler) GetStory(c *gin.Context) {
	storyID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid story ID"})
		return
	}

	detail, err := h.composer.ComposeOne(c.Request.Context(), storyID, middleware.UserID(c))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Story not found"})
			return
		}
		h.logger.Error("failed to load story", "error", err, "story_id", storyID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch story"})
		return
	}

	c.JSON(http.StatusOK, detail)
}

// CreateStory creates a new story (PROTECTED - requires authentication)
func (h *StoryHandler) CreateStory(c *gin.Context) {
	var input models.CreateStoryRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	story, err := h.submission.Create(c.Request.Context(), stories.CreateRequest{
		Title:      input.Title,
		Content:    input.Content,
		CategoryID: input.CategoryID,
		AuthorID:   middleware.UserID(c),
	})
	if err != nil {
		var validationErr *stories.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message, "field": validationErr.Field})
			return
		}
		// Direct user gesture: surface the storage error message.
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, story)
}
