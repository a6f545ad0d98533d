package models

import "time"

type Comment struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"not null" json:"content"`
	UserID    string    `json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user"`
	StoryID   int       `gorm:"index" json:"story_id"`
	ParentID  *int      `json:"parent_id,omitempty"` // threaded replies
	CreatedAt time.Time `json:"created_at"`
}

type CreateCommentRequest struct {
	Content  string `json:"content"`
	ParentID *int   `json:"parent_id,omitempty"`
}
