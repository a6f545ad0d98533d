package storage

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/onlyinellada/backend/internal/models"
)

type VoteStore struct {
	db *gorm.DB
}

func NewVoteStore(db *gorm.DB) *VoteStore {
	return &VoteStore{db: db}
}

func (s *VoteStore) Get(ctx context.Context, userID string, storyID int) (*models.Vote, error) {
	var vote models.Vote
	err := dbFrom(ctx, s.db).Where("user_id = ? AND story_id = ?", userID, storyID).First(&vote).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &vote, nil
}

// Upsert places a vote keyed by (user, story). A concurrent insert for the
// same pair resolves to an update of vote_type, so the uniqueness invariant
// holds without client-side locking.
func (s *VoteStore) Upsert(ctx context.Context, vote *models.Vote) error {
	err := dbFrom(ctx, s.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "story_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"vote_type", "updated_at"}),
	}).Create(vote).Error
	if err != nil {
		return fmt.Errorf("upsert vote: %w", err)
	}
	return nil
}

func (s *VoteStore) Delete(ctx context.Context, userID string, storyID int) error {
	err := dbFrom(ctx, s.db).Where("user_id = ? AND story_id = ?", userID, storyID).
		Delete(&models.Vote{}).Error
	if err != nil {
		return fmt.Errorf("delete vote: %w", err)
	}
	return nil
}

// CountForStory recounts the story's tally from vote rows.
func (s *VoteStore) CountForStory(ctx context.Context, storyID int) (upvotes, downvotes int64, err error) {
	db := dbFrom(ctx, s.db)
	if err = db.Model(&models.Vote{}).
		Where("story_id = ? AND vote_type = ?", storyID, models.VoteUp).Count(&upvotes).Error; err != nil {
		return 0, 0, fmt.Errorf("count upvotes: %w", err)
	}
	if err = db.Model(&models.Vote{}).
		Where("story_id = ? AND vote_type = ?", storyID, models.VoteDown).Count(&downvotes).Error; err != nil {
		return 0, 0, fmt.Errorf("count downvotes: %w", err)
	}
	return upvotes, downvotes, nil
}

// ByUserForStories returns the user's votes on the given stories in one
// query, keyed by story id.
func (s *VoteStore) ByUserForStories(ctx context.Context, userID string, storyIDs []int) (map[int]models.VoteKind, error) {
	votes := make(map[int]models.VoteKind, len(storyIDs))
	if userID == "" || len(storyIDs) == 0 {
		return votes, nil
	}

	var rows []models.Vote
	err := dbFrom(ctx, s.db).Where("user_id = ? AND story_id IN ?", userID, storyIDs).Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list user votes: %w", err)
	}

	for _, vote := range rows {
		votes[vote.StoryID] = vote.VoteType
	}
	return votes, nil
}
