package votes

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/onlyinellada/backend/internal/models"
	"github.com/onlyinellada/backend/internal/storage"
)

var (
	ErrUnauthenticated = errors.New("vote requires an authenticated user")
	ErrStoryNotFound   = errors.New("story not found")
	ErrInvalidKind     = errors.New("vote kind must be up or down")
)

// Result carries the outcome of a vote transition: the requester's standing
// vote after the mutation, the delta that was applied, and the confirmed
// story counters recounted inside the same transaction. Callers display the
// confirmed counters, not an optimistic guess.
type Result struct {
	UserVote  *models.VoteKind `json:"user_vote"`
	Upvotes   int              `json:"upvotes"`
	Downvotes int              `json:"downvotes"`
	Delta     Delta            `json:"-"`
}

// Ledger maintains the at-most-one vote row per (user, story) pair and keeps
// the story's denormalized counters in step with it.
type Ledger struct {
	votes     VoteStore
	stories   StoryStore
	txManager TransactionManager
	logger    *slog.Logger
}

func NewLedger(votes VoteStore, stories StoryStore, txManager TransactionManager, logger *slog.Logger) *Ledger {
	return &Ledger{
		votes:     votes,
		stories:   stories,
		txManager: txManager,
		logger:    logger.With("component", "vote_ledger"),
	}
}

// Apply transitions the requester's vote on a story per the toggle/switch
// rules and returns the confirmed tally.
func (l *Ledger) Apply(ctx context.Context, userID string, storyID int, requested models.VoteKind) (*Result, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	if !requested.Valid() {
		return nil, ErrInvalidKind
	}

	if _, err := l.stories.Get(ctx, storyID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrStoryNotFound
		}
		return nil, fmt.Errorf("load story: %w", err)
	}

	var result Result
	err := l.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		current, err := l.votes.Get(ctx, userID, storyID)
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("load current vote: %w", err)
		}

		next, delta := Transition(StateOf(current), requested)

		if next == NoVote {
			if err := l.votes.Delete(ctx, userID, storyID); err != nil {
				return err
			}
		} else {
			vote := &models.Vote{UserID: userID, StoryID: storyID, VoteType: *next.Kind()}
			if err := l.votes.Upsert(ctx, vote); err != nil {
				return err
			}
		}

		// Recount from vote rows so the response carries confirmed
		// counters even if a concurrent transition interleaved.
		up, down, err := l.votes.CountForStory(ctx, storyID)
		if err != nil {
			return err
		}
		if err := l.stories.UpdateTally(ctx, storyID, int(up), int(down)); err != nil {
			return err
		}

		result = Result{
			UserVote:  next.Kind(),
			Upvotes:   int(up),
			Downvotes: int(down),
			Delta:     delta,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	l.logger.Debug("vote applied",
		"user_id", userID,
		"story_id", storyID,
		"requested", requested,
		"upvotes", result.Upvotes,
		"downvotes", result.Downvotes,
	)

	return &result, nil
}

// Reconcile recounts every story's tally from the votes table and reports how
// many stories had drifted.
func (l *Ledger) Reconcile(ctx context.Context) (int64, error) {
	corrected, err := l.stories.RecountTallies(ctx)
	if err != nil {
		return 0, fmt.Errorf("reconcile tallies: %w", err)
	}
	if corrected > 0 {
		l.logger.Warn("corrected drifted story tallies", "stories", corrected)
	}
	return corrected, nil
}
