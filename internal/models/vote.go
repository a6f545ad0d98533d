package models

import "time"

type VoteKind string

const (
	VoteUp   VoteKind = "up"
	VoteDown VoteKind = "down"
)

func (k VoteKind) Valid() bool {
	return k == VoteUp || k == VoteDown
}

// Vote tracks an individual user's vote on a story. At most one row exists
// per (user, story) pair, enforced by the composite unique index.
type Vote struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"uniqueIndex:idx_votes_user_story;not null" json:"user_id"`
	StoryID   int       `gorm:"uniqueIndex:idx_votes_user_story;not null" json:"story_id"`
	VoteType  VoteKind  `gorm:"type:varchar(8);not null" json:"vote_type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
