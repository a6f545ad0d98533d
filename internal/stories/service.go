// Package stories handles story submission: validation, then persistence.
package stories

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/onlyinellada/backend/internal/models"
	"github.com/onlyinellada/backend/internal/storage"
)

const MaxTitleLength = 500

// ValidationError is a client-correctable rejection; no storage call was made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

type StoryStore interface {
	Create(ctx context.Context, story *models.Story) error
}

type CategoryStore interface {
	ByID(ctx context.Context, id int) (*models.Category, error)
}

type Service struct {
	stories    StoryStore
	categories CategoryStore
	logger     *slog.Logger
}

func NewService(stories StoryStore, categories CategoryStore, logger *slog.Logger) *Service {
	return &Service{
		stories:    stories,
		categories: categories,
		logger:     logger.With("component", "stories"),
	}
}

type CreateRequest struct {
	Title      string
	Content    string
	CategoryID int
	AuthorID   string
}

// Create validates and persists a new story. The story starts with zero
// votes and the current timestamp.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*models.Story, error) {
	if req.AuthorID == "" {
		return nil, &ValidationError{Field: "author", Message: "you must be signed in to post a story"}
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, &ValidationError{Field: "title", Message: "title is required"}
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return nil, &ValidationError{Field: "title", Message: fmt.Sprintf("title must be at most %d characters", MaxTitleLength)}
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, &ValidationError{Field: "content", Message: "story content is required"}
	}

	if req.CategoryID == 0 {
		return nil, &ValidationError{Field: "category_id", Message: "category is required"}
	}
	if _, err := s.categories.ByID(ctx, req.CategoryID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, &ValidationError{Field: "category_id", Message: "unknown category"}
		}
		return nil, fmt.Errorf("resolve category: %w", err)
	}

	story := &models.Story{
		Title:      title,
		Content:    content,
		UserID:     req.AuthorID,
		CategoryID: req.CategoryID,
	}

	if err := s.stories.Create(ctx, story); err != nil {
		return nil, err
	}

	s.logger.Info("story created", "story_id", story.ID, "user_id", story.UserID, "category_id", story.CategoryID)
	return story, nil
}
