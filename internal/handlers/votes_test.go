package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/onlyinellada/backend/internal/middleware"
	"github.com/onlyinellada/backend/internal/models"
	"github.com/onlyinellada/backend/internal/storage"
	"github.com/onlyinellada/backend/internal/votes"
	votemocks "github.com/onlyinellada/backend/internal/votes/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

type voteHandlerFixture struct {
	votes     *votemocks.MockVoteStore
	stories   *votemocks.MockStoryStore
	txManager *votemocks.MockTransactionManager
	router    *gin.Engine
}

// newVoteFixture wires the vote route with a real ledger over mocked stores.
// asUser "" exercises the unauthenticated path.
func newVoteFixture(t *testing.T, asUser string) *voteHandlerFixture {
	ctrl := gomock.NewController(t)

	f := &voteHandlerFixture{
		votes:     votemocks.NewMockVoteStore(ctrl),
		stories:   votemocks.NewMockStoryStore(ctrl),
		txManager: votemocks.NewMockTransactionManager(ctrl),
	}

	ledger := votes.NewLedger(f.votes, f.stories, f.txManager, testLogger())
	handler := NewVoteHandler(ledger)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/stories/:id/vote", func(c *gin.Context) {
		if asUser != "" {
			c.Set(middleware.UserIDKey, asUser)
		}
		handler.VoteStory(c)
	})
	f.router = r
	return f
}

func (f *voteHandlerFixture) post(path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	f.router.ServeHTTP(w, req)
	return w
}

func TestVoteStory_UnauthenticatedIs401WithNoStorageCall(t *testing.T) {
	f := newVoteFixture(t, "")

	// No expectations registered: any store call fails the test.
	w := f.post("/api/stories/1/vote", `{"vote_type":"up"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestVoteStory_InvalidKindIs400(t *testing.T) {
	f := newVoteFixture(t, "u1")

	w := f.post("/api/stories/1/vote", `{"vote_type":"sideways"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVoteStory_BadStoryIDIs400(t *testing.T) {
	f := newVoteFixture(t, "u1")

	w := f.post("/api/stories/abc/vote", `{"vote_type":"up"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVoteStory_MissingStoryIs404(t *testing.T) {
	f := newVoteFixture(t, "u1")
	f.stories.EXPECT().Get(gomock.Any(), 99).Return(nil, storage.ErrNotFound)

	w := f.post("/api/stories/99/vote", `{"vote_type":"up"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestVoteStory_AppliedReturnsConfirmedTally(t *testing.T) {
	f := newVoteFixture(t, "u1")

	f.stories.EXPECT().Get(gomock.Any(), 1).Return(&models.Story{ID: 1}, nil)
	f.txManager.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
	f.votes.EXPECT().Get(gomock.Any(), "u1", 1).Return(nil, storage.ErrNotFound)
	f.votes.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
	f.votes.EXPECT().CountForStory(gomock.Any(), 1).Return(int64(1), int64(0), nil)
	f.stories.EXPECT().UpdateTally(gomock.Any(), 1, 1, 0).Return(nil)

	w := f.post("/api/stories/1/vote", `{"vote_type":"up"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_vote":"up","upvotes":1,"downvotes":0}`, w.Body.String())
}
