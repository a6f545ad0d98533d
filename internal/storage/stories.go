package storage

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/onlyinellada/backend/internal/models"
)

type StoryStore struct {
	db *gorm.DB
}

func NewStoryStore(db *gorm.DB) *StoryStore {
	return &StoryStore{db: db}
}

// List returns stories with author and category preloaded. categoryID 0
// means no category filter. sort "top" orders by raw upvote count, anything
// else by creation time, newest first. Ties keep insertion order stable via
// the id tiebreak.
func (s *StoryStore) List(ctx context.Context, categoryID int, sort string) ([]models.Story, error) {
	query := dbFrom(ctx, s.db).Preload("User").Preload("Category")

	if categoryID != 0 {
		query = query.Where("category_id = ?", categoryID)
	}

	switch sort {
	case "top":
		query = query.Order("upvotes desc").Order("id")
	default:
		query = query.Order("created_at desc").Order("id desc")
	}

	var stories []models.Story
	if err := query.Find(&stories).Error; err != nil {
		return nil, fmt.Errorf("list stories: %w", err)
	}
	return stories, nil
}

func (s *StoryStore) Get(ctx context.Context, id int) (*models.Story, error) {
	var story models.Story
	if err := dbFrom(ctx, s.db).Preload("User").Preload("Category").First(&story, id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &story, nil
}

func (s *StoryStore) Create(ctx context.Context, story *models.Story) error {
	db := dbFrom(ctx, s.db)
	if err := db.Create(story).Error; err != nil {
		return fmt.Errorf("create story: %w", err)
	}
	// Reload with author and category for the response.
	if err := db.Preload("User").Preload("Category").First(story, story.ID).Error; err != nil {
		return fmt.Errorf("reload story: %w", err)
	}
	return nil
}

func (s *StoryStore) UpdateTally(ctx context.Context, storyID int, upvotes, downvotes int) error {
	err := dbFrom(ctx, s.db).Model(&models.Story{}).
		Where("id = ?", storyID).
		Updates(map[string]any{"upvotes": upvotes, "downvotes": downvotes}).Error
	if err != nil {
		return fmt.Errorf("update tally: %w", err)
	}
	return nil
}

// RecountTallies rewrites every story's denormalized vote counters from the
// votes table. Used by the reconciliation job to close drift windows left by
// failed or interleaved vote mutations.
func (s *StoryStore) RecountTallies(ctx context.Context) (int64, error) {
	result := dbFrom(ctx, s.db).Exec(`
		UPDATE stories SET
			upvotes   = (SELECT COUNT(*) FROM votes WHERE votes.story_id = stories.id AND votes.vote_type = 'up'),
			downvotes = (SELECT COUNT(*) FROM votes WHERE votes.story_id = stories.id AND votes.vote_type = 'down')
		WHERE upvotes   <> (SELECT COUNT(*) FROM votes WHERE votes.story_id = stories.id AND votes.vote_type = 'up')
		   OR downvotes <> (SELECT COUNT(*) FROM votes WHERE votes.story_id = stories.id AND votes.vote_type = 'down')`)
	if result.Error != nil {
		return 0, fmt.Errorf("recount tallies: %w", result.Error)
	}
	return result.RowsAffected, nil
}
