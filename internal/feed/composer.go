// Package feed assembles the story listing: category filter, sort mode, and
// the per-story author/category/comment-count/requester-vote join.
package feed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/onlyinellada/backend/internal/models"
	"github.com/onlyinellada/backend/internal/storage"
)

type Sort string

const (
	SortNew Sort = "new"
	// SortTop orders by raw upvote count, not net score. Cards display net
	// score; the listing order deliberately matches the original site.
	SortTop Sort = "top"
)

// ParseSort falls back to SortNew for anything unrecognized.
func ParseSort(s string) Sort {
	if s == string(SortTop) {
		return SortTop
	}
	return SortNew
}

// CategoryAll disables the category filter.
const CategoryAll = "all"

// Request selects and scopes a feed. RequesterID may be empty for anonymous
// readers; when set, each story carries that user's own vote.
type Request struct {
	Category    string
	Sort        Sort
	RequesterID string
}

type Composer struct {
	stories    StoryStore
	categories CategoryStore
	comments   CommentStore
	votes      VoteStore
	logger     *slog.Logger
}

func NewComposer(stories StoryStore, categories CategoryStore, comments CommentStore, votes VoteStore, logger *slog.Logger) *Composer {
	return &Composer{
		stories:    stories,
		categories: categories,
		comments:   comments,
		votes:      votes,
		logger:     logger.With("component", "feed"),
	}
}

// Compose returns one StoryWithDetails per matching story. An unknown
// category slug degrades to the unfiltered feed. Storage failures come back
// as an error alongside an empty slice; the caller decides how to present the
// loading-failed state.
func (c *Composer) Compose(ctx context.Context, req Request) ([]models.StoryWithDetails, error) {
	categoryID := 0
	if req.Category != "" && req.Category != CategoryAll {
		category, err := c.categories.BySlug(ctx, req.Category)
		switch {
		case errors.Is(err, storage.ErrNotFound):
			c.logger.Debug("unknown category slug, showing all", "slug", req.Category)
		case err != nil:
			return nil, fmt.Errorf("resolve category: %w", err)
		default:
			categoryID = category.ID
		}
	}

	stories, err := c.stories.List(ctx, categoryID, string(req.Sort))
	if err != nil {
		return nil, fmt.Errorf("list stories: %w", err)
	}

	storyIDs := make([]int, len(stories))
	for i, story := range stories {
		storyIDs[i] = story.ID
	}

	counts, err := c.comments.CountByStories(ctx, storyIDs)
	if err != nil {
		return nil, fmt.Errorf("count comments: %w", err)
	}

	userVotes := map[int]models.VoteKind{}
	if req.RequesterID != "" {
		userVotes, err = c.votes.ByUserForStories(ctx, req.RequesterID, storyIDs)
		if err != nil {
			return nil, fmt.Errorf("load requester votes: %w", err)
		}
	}

	details := make([]models.StoryWithDetails, len(stories))
	for i, story := range stories {
		details[i] = models.StoryWithDetails{
			Story:        story,
			CommentCount: counts[story.ID],
		}
		if kind, ok := userVotes[story.ID]; ok {
			vote := kind
			details[i].UserVote = &vote
		}
	}

	return details, nil
}

// ComposeOne builds the detail view for a single story.
func (c *Composer) ComposeOne(ctx context.Context, storyID int, requesterID string) (*models.StoryWithDetails, error) {
	story, err := c.stories.Get(ctx, storyID)
	if err != nil {
		return nil, err
	}

	counts, err := c.comments.CountByStories(ctx, []int{story.ID})
	if err != nil {
		return nil, fmt.Errorf("count comments: %w", err)
	}

	detail := &models.StoryWithDetails{
		Story:        *story,
		CommentCount: counts[story.ID],
	}

	if requesterID != "" {
		userVotes, err := c.votes.ByUserForStories(ctx, requesterID, []int{story.ID})
		if err != nil {
			return nil, fmt.Errorf("load requester vote: %w", err)
		}
		if kind, ok := userVotes[story.ID]; ok {
			vote := kind
			detail.UserVote = &vote
		}
	}

	return detail, nil
}

// Categories lists the reference categories for the filter bar and the
// submission form, ordered by name.
func (c *Composer) Categories(ctx context.Context) ([]models.Category, error) {
	return c.categories.List(ctx)
}
