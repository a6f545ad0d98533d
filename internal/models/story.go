package models

import "time"

type Story struct {
	ID         int       `gorm:"primaryKey" json:"id"`
	Title      string    `gorm:"size:500;not null" json:"title"`
	Content    string    `gorm:"not null" json:"content"`
	UserID     string    `json:"user_id"`
	User       User      `gorm:"foreignKey:UserID" json:"user"`
	CategoryID int       `json:"category_id"`
	Category   Category  `gorm:"foreignKey:CategoryID" json:"category"`
	Upvotes    int       `gorm:"default:0" json:"upvotes"`
	Downvotes  int       `gorm:"default:0" json:"downvotes"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// StoryWithDetails is the read-time feed projection: a story joined with its
// author, category, comment count and the requesting user's own vote. Never
// persisted.
type StoryWithDetails struct {
	Story
	CommentCount int64     `json:"comment_count"`
	UserVote     *VoteKind `json:"user_vote,omitempty"`
}

type CreateStoryRequest struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	CategoryID int    `json:"category_id"`
}
