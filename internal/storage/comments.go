package storage

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/onlyinellada/backend/internal/models"
)

type CommentStore struct {
	db *gorm.DB
}

func NewCommentStore(db *gorm.DB) *CommentStore {
	return &CommentStore{db: db}
}

func (s *CommentStore) ListByStory(ctx context.Context, storyID int) ([]models.Comment, error) {
	var comments []models.Comment
	err := dbFrom(ctx, s.db).Where("story_id = ?", storyID).
		Preload("User").Order("created_at desc").Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

func (s *CommentStore) Create(ctx context.Context, comment *models.Comment) error {
	db := dbFrom(ctx, s.db)
	if err := db.Create(comment).Error; err != nil {
		return fmt.Errorf("create comment: %w", err)
	}
	if err := db.Preload("User").First(comment, comment.ID).Error; err != nil {
		return fmt.Errorf("reload comment: %w", err)
	}
	return nil
}

// CountByStories returns comment counts for the given stories in one grouped
// query. Stories with no comments are absent from the map.
func (s *CommentStore) CountByStories(ctx context.Context, storyIDs []int) (map[int]int64, error) {
	counts := make(map[int]int64, len(storyIDs))
	if len(storyIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		StoryID int
		Count   int64
	}
	err := dbFrom(ctx, s.db).Model(&models.Comment{}).
		Select("story_id, count(*) as count").
		Where("story_id IN ?", storyIDs).
		Group("story_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("count comments: %w", err)
	}

	for _, row := range rows {
		counts[row.StoryID] = row.Count
	}
	return counts, nil
}
