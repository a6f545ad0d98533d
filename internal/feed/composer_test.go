package feed

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/onlyinellada/backend/internal/feed/mocks"
	"github.com/onlyinellada/backend/internal/models"
	"github.com/onlyinellada/backend/internal/storage"
)

func TestParseSort(t *testing.T) {
	assert.Equal(t, SortTop, ParseSort("top"))
	assert.Equal(t, SortNew, ParseSort("new"))
	assert.Equal(t, SortNew, ParseSort(""))
	assert.Equal(t, SortNew, ParseSort("best"))
}

type ComposerTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	stories    *mocks.MockStoryStore
	categories *mocks.MockCategoryStore
	comments   *mocks.MockCommentStore
	votes      *mocks.MockVoteStore

	composer *Composer
	ctx      context.Context
}

func (s *ComposerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.stories = mocks.NewMockStoryStore(s.ctrl)
	s.categories = mocks.NewMockCategoryStore(s.ctrl)
	s.comments = mocks.NewMockCommentStore(s.ctrl)
	s.votes = mocks.NewMockVoteStore(s.ctrl)
	s.ctx = context.Background()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.composer = NewComposer(s.stories, s.categories, s.comments, s.votes, logger)
}

func (s *ComposerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestComposerTestSuite(t *testing.T) {
	suite.Run(t, new(ComposerTestSuite))
}

func (s *ComposerTestSuite) sampleStories() []models.Story {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return []models.Story{
		{ID: 3, Title: "third", Upvotes: 8, CreatedAt: base.Add(2 * time.Hour)},
		{ID: 1, Title: "first", Upvotes: 5, CreatedAt: base},
		{ID: 2, Title: "second", Upvotes: 2, CreatedAt: base.Add(time.Hour)},
	}
}

func (s *ComposerTestSuite) TestCompose_AllAnonymous() {
	stories := s.sampleStories()

	s.stories.EXPECT().List(s.ctx, 0, "new").Return(stories, nil)
	s.comments.EXPECT().CountByStories(s.ctx, []int{3, 1, 2}).
		Return(map[int]int64{3: 4, 2: 1}, nil)

	result, err := s.composer.Compose(s.ctx, Request{Category: CategoryAll, Sort: SortNew})

	s.NoError(err)
	s.Require().Len(result, 3)
	s.Equal(int64(4), result[0].CommentCount)
	s.Equal(int64(0), result[1].CommentCount) // absent from the count map
	s.Equal(int64(1), result[2].CommentCount)
	for _, story := range result {
		s.Nil(story.UserVote)
	}
}

func (s *ComposerTestSuite) TestCompose_KnownSlugFilters() {
	category := &models.Category{ID: 5, Slug: "transport"}

	s.categories.EXPECT().BySlug(s.ctx, "transport").Return(category, nil)
	s.stories.EXPECT().List(s.ctx, 5, "new").Return(nil, nil)
	s.comments.EXPECT().CountByStories(s.ctx, []int{}).Return(map[int]int64{}, nil)

	result, err := s.composer.Compose(s.ctx, Request{Category: "transport", Sort: SortNew})

	s.NoError(err)
	s.Empty(result)
}

func (s *ComposerTestSuite) TestCompose_UnknownSlugDegradesToAll() {
	stories := s.sampleStories()

	s.categories.EXPECT().BySlug(s.ctx, "no-such-slug").Return(nil, storage.ErrNotFound)
	// Filter has no effect: List is called unfiltered.
	s.stories.EXPECT().List(s.ctx, 0, "new").Return(stories, nil)
	s.comments.EXPECT().CountByStories(s.ctx, []int{3, 1, 2}).Return(map[int]int64{}, nil)

	result, err := s.composer.Compose(s.ctx, Request{Category: "no-such-slug", Sort: SortNew})

	s.NoError(err)
	s.Len(result, 3)
}

func (s *ComposerTestSuite) TestCompose_RequesterVotesAttached() {
	stories := s.sampleStories()

	s.stories.EXPECT().List(s.ctx, 0, "top").Return(stories, nil)
	s.comments.EXPECT().CountByStories(s.ctx, []int{3, 1, 2}).Return(map[int]int64{}, nil)
	s.votes.EXPECT().ByUserForStories(s.ctx, "u1", []int{3, 1, 2}).
		Return(map[int]models.VoteKind{1: models.VoteUp, 2: models.VoteDown}, nil)

	result, err := s.composer.Compose(s.ctx, Request{Category: CategoryAll, Sort: SortTop, RequesterID: "u1"})

	s.NoError(err)
	s.Require().Len(result, 3)
	s.Nil(result[0].UserVote)
	s.Require().NotNil(result[1].UserVote)
	s.Equal(models.VoteUp, *result[1].UserVote)
	s.Require().NotNil(result[2].UserVote)
	s.Equal(models.VoteDown, *result[2].UserVote)
}

func (s *ComposerTestSuite) TestCompose_StorageFailureYieldsEmptyAndError() {
	s.stories.EXPECT().List(s.ctx, 0, "new").Return(nil, errors.New("connection refused"))

	result, err := s.composer.Compose(s.ctx, Request{Category: CategoryAll, Sort: SortNew})

	s.Error(err)
	s.Empty(result)
}

func (s *ComposerTestSuite) TestComposeOne() {
	story := &models.Story{ID: 3, Title: "third", Upvotes: 8}

	s.stories.EXPECT().Get(s.ctx, 3).Return(story, nil)
	s.comments.EXPECT().CountByStories(s.ctx, []int{3}).Return(map[int]int64{3: 2}, nil)
	s.votes.EXPECT().ByUserForStories(s.ctx, "u1", []int{3}).
		Return(map[int]models.VoteKind{3: models.VoteUp}, nil)

	detail, err := s.composer.ComposeOne(s.ctx, 3, "u1")

	s.NoError(err)
	s.Equal(int64(2), detail.CommentCount)
	s.Require().NotNil(detail.UserVote)
	s.Equal(models.VoteUp, *detail.UserVote)
}

func (s *ComposerTestSuite) TestComposeOne_NotFound() {
	s.stories.EXPECT().Get(s.ctx, 99).Return(nil, storage.ErrNotFound)

	detail, err := s.composer.ComposeOne(s.ctx, 99, "")

	s.Nil(detail)
	s.ErrorIs(err, storage.ErrNotFound)
}
