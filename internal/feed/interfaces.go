package feed

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/onlyinellada/backend/internal/models"
)

type StoryStore interface {
	List(ctx context.Context, categoryID int, sort string) ([]models.Story, error)
	Get(ctx context.Context, id int) (*models.Story, error)
}

type CategoryStore interface {
	List(ctx context.Context) ([]models.Category, error)
	BySlug(ctx context.Context, slug string) (*models.Category, error)
}

type CommentStore interface {
	CountByStories(ctx context.Context, storyIDs []int) (map[int]int64, error)
}

type VoteStore interface {
	ByUserForStories(ctx context.Context, userID string, storyIDs []int) (map[int]models.VoteKind, error)
}
