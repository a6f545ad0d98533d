package votes

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/onlyinellada/backend/internal/models"
)

type VoteStore interface {
	Get(ctx context.Context, userID string, storyID int) (*models.Vote, error)
	Upsert(ctx context.Context, vote *models.Vote) error
	Delete(ctx context.Context, userID string, storyID int) error
	CountForStory(ctx context.Context, storyID int) (upvotes, downvotes int64, err error)
}

type StoryStore interface {
	Get(ctx context.Context, id int) (*models.Story, error)
	UpdateTally(ctx context.Context, storyID int, upvotes, downvotes int) error
	RecountTallies(ctx context.Context) (int64, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
