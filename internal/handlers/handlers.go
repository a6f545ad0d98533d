package handlers

import (
	"log/slog"

	"gorm.io/gorm"

	"github.com/onlyinellada/backend/internal/feed"
	"github.com/onlyinellada/backend/internal/stories"
	"github.com/onlyinellada/backend/internal/storage"
	"github.com/onlyinellada/backend/internal/votes"
)

// Handler combines all handler types
type Handler struct {
	Auth     *AuthHandler
	Category *CategoryHandler
	Story    *StoryHandler
	Comment  *CommentHandler
	Vote     *VoteHandler

	// Ledger is exposed for the tally reconciliation job.
	Ledger *votes.Ledger
}

// NewHandler wires the stores and services behind a unified handler.
func NewHandler(db *gorm.DB, jwtSecret []byte, logger *slog.Logger) *Handler {
	storyStore := storage.NewStoryStore(db)
	categoryStore := storage.NewCategoryStore(db)
	commentStore := storage.NewCommentStore(db)
	voteStore := storage.NewVoteStore(db)
	txManager := storage.NewTxManager(db)

	composer := feed.NewComposer(storyStore, categoryStore, commentStore, voteStore, logger)
	submission := stories.NewService(storyStore, categoryStore, logger)
	ledger := votes.NewLedger(voteStore, storyStore, txManager, logger)

	return &Handler{
		Auth:     NewAuthHandler(db, jwtSecret),
		Category: NewCategoryHandler(composer, logger),
		Story:    NewStoryHandler(composer, submission, logger),
		Comment:  NewCommentHandler(commentStore, storyStore, logger),
		Vote:     NewVoteHandler(ledger),
		Ledger:   ledger,
	}
}
