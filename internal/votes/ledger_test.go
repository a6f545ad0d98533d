package votes

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/onlyinellada/backend/internal/models"
	"github.com/onlyinellada/backend/internal/storage"
	"github.com/onlyinellada/backend/internal/votes/mocks"
)

type LedgerTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	votes     *mocks.MockVoteStore
	stories   *mocks.MockStoryStore
	txManager *mocks.MockTransactionManager

	ledger *Ledger
	ctx    context.Context
}

func (s *LedgerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.votes = mocks.NewMockVoteStore(s.ctrl)
	s.stories = mocks.NewMockStoryStore(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)
	s.ctx = context.Background()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.ledger = NewLedger(s.votes, s.stories, s.txManager, logger)
}

func (s *LedgerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestLedgerTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerTestSuite))
}

func (s *LedgerTestSuite) expectTransaction() {
	s.txManager.EXPECT().WithTransaction(s.ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

func (s *LedgerTestSuite) TestApply_FirstUpvote() {
	s.stories.EXPECT().Get(s.ctx, 1).Return(&models.Story{ID: 1}, nil)
	s.expectTransaction()

	s.votes.EXPECT().Get(s.ctx, "u1", 1).Return(nil, storage.ErrNotFound)
	s.votes.EXPECT().Upsert(s.ctx, &models.Vote{UserID: "u1", StoryID: 1, VoteType: models.VoteUp}).Return(nil)
	s.votes.EXPECT().CountForStory(s.ctx, 1).Return(int64(1), int64(0), nil)
	s.stories.EXPECT().UpdateTally(s.ctx, 1, 1, 0).Return(nil)

	result, err := s.ledger.Apply(s.ctx, "u1", 1, models.VoteUp)

	s.NoError(err)
	s.Require().NotNil(result.UserVote)
	s.Equal(models.VoteUp, *result.UserVote)
	s.Equal(1, result.Upvotes)
	s.Equal(0, result.Downvotes)
	s.Equal(Delta{Up: +1}, result.Delta)
}

func (s *LedgerTestSuite) TestApply_ToggleOffRemovesVote() {
	s.stories.EXPECT().Get(s.ctx, 1).Return(&models.Story{ID: 1}, nil)
	s.expectTransaction()

	existing := &models.Vote{ID: 7, UserID: "u1", StoryID: 1, VoteType: models.VoteUp}
	s.votes.EXPECT().Get(s.ctx, "u1", 1).Return(existing, nil)
	s.votes.EXPECT().Delete(s.ctx, "u1", 1).Return(nil)
	s.votes.EXPECT().CountForStory(s.ctx, 1).Return(int64(4), int64(2), nil)
	s.stories.EXPECT().UpdateTally(s.ctx, 1, 4, 2).Return(nil)

	result, err := s.ledger.Apply(s.ctx, "u1", 1, models.VoteUp)

	s.NoError(err)
	s.Nil(result.UserVote)
	s.Equal(Delta{Up: -1}, result.Delta)
	s.Equal(4, result.Upvotes)
	s.Equal(2, result.Downvotes)
}

func (s *LedgerTestSuite) TestApply_SwitchUpToDown() {
	s.stories.EXPECT().Get(s.ctx, 1).Return(&models.Story{ID: 1}, nil)
	s.expectTransaction()

	existing := &models.Vote{ID: 7, UserID: "u1", StoryID: 1, VoteType: models.VoteUp}
	s.votes.EXPECT().Get(s.ctx, "u1", 1).Return(existing, nil)
	s.votes.EXPECT().Upsert(s.ctx, &models.Vote{UserID: "u1", StoryID: 1, VoteType: models.VoteDown}).Return(nil)
	s.votes.EXPECT().CountForStory(s.ctx, 1).Return(int64(3), int64(3), nil)
	s.stories.EXPECT().UpdateTally(s.ctx, 1, 3, 3).Return(nil)

	result, err := s.ledger.Apply(s.ctx, "u1", 1, models.VoteDown)

	s.NoError(err)
	s.Require().NotNil(result.UserVote)
	s.Equal(models.VoteDown, *result.UserVote)
	s.Equal(Delta{Up: -1, Down: +1}, result.Delta)
}

func (s *LedgerTestSuite) TestApply_UnauthenticatedIsRejectedBeforeAnyStorageCall() {
	result, err := s.ledger.Apply(s.ctx, "", 1, models.VoteUp)

	s.Nil(result)
	s.ErrorIs(err, ErrUnauthenticated)
}

func (s *LedgerTestSuite) TestApply_InvalidKind() {
	result, err := s.ledger.Apply(s.ctx, "u1", 1, models.VoteKind("sideways"))

	s.Nil(result)
	s.ErrorIs(err, ErrInvalidKind)
}

func (s *LedgerTestSuite) TestApply_MissingStory() {
	s.stories.EXPECT().Get(s.ctx, 99).Return(nil, storage.ErrNotFound)

	result, err := s.ledger.Apply(s.ctx, "u1", 99, models.VoteUp)

	s.Nil(result)
	s.ErrorIs(err, ErrStoryNotFound)
}

func (s *LedgerTestSuite) TestApply_StorageFailureSurfaces() {
	s.stories.EXPECT().Get(s.ctx, 1).Return(&models.Story{ID: 1}, nil)
	s.expectTransaction()

	s.votes.EXPECT().Get(s.ctx, "u1", 1).Return(nil, storage.ErrNotFound)
	s.votes.EXPECT().Upsert(s.ctx, gomock.Any()).Return(errors.New("connection reset"))

	result, err := s.ledger.Apply(s.ctx, "u1", 1, models.VoteUp)

	s.Nil(result)
	s.ErrorContains(err, "connection reset")
}

func (s *LedgerTestSuite) TestReconcile() {
	s.stories.EXPECT().RecountTallies(s.ctx).Return(int64(3), nil)

	corrected, err := s.ledger.Reconcile(s.ctx)

	s.NoError(err)
	s.Equal(int64(3), corrected)
}
