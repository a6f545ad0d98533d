package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/onlyinellada/backend/internal/middleware"
	"github.com/onlyinellada/backend/internal/models"
	"github.com/onlyinellada/backend/internal/storage"
)

type CommentHandler struct {
	comments *storage.CommentStore
	stories  *storage.StoryStore
	logger   *slog.Logger
}

func NewCommentHandler(comments *storage.CommentStore, stories *storage.StoryStore, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{comments: comments, stories: stories, logger: logger}
}

// GetComments returns all comments for a story, newest first, author
// embedded. Threading is carried by parent_id; nesting is the client's job.
func (h *CommentHandler) GetComments(c *gin.Context) {
	storyID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid story ID"})
		return
	}

	comments, err := h.comments.ListByStory(c.Request.Context(), storyID)
	if err != nil {
		h.logger.Error("failed to load comments", "error", err, "story_id", storyID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch comments"})
		return
	}

	if comments == nil {
		comments = []models.Comment{}
	}

	c.JSON(http.StatusOK, comments)
}

// CreateComment creates a new comment on a story (PROTECTED)
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var input models.CreateCommentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if strings.TrimSpace(input.Content) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Comment content is required"})
		return
	}

	storyID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid story ID"})
		return
	}

	userID := middleware.UserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx := c.Request.Context()

	if _, err := h.stories.Get(ctx, storyID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Story not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch story"})
		return
	}

	comment := models.Comment{
		Content:  strings.TrimSpace(input.Content),
		StoryID:  storyID,
		UserID:   userID,
		ParentID: input.ParentID,
	}

	if err := h.comments.Create(ctx, &comment); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, comment)
}
