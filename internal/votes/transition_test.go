package votes

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/onlyinellada/backend/internal/models"
)

func TestTransition_Table(t *testing.T) {
	tests := []struct {
		name      string
		current   State
		requested models.VoteKind
		wantState State
		wantDelta Delta
	}{
		{"no vote, up", NoVote, models.VoteUp, UpVoted, Delta{Up: +1}},
		{"no vote, down", NoVote, models.VoteDown, DownVoted, Delta{Down: +1}},
		{"upvoted, up toggles off", UpVoted, models.VoteUp, NoVote, Delta{Up: -1}},
		{"upvoted, down switches", UpVoted, models.VoteDown, DownVoted, Delta{Up: -1, Down: +1}},
		{"downvoted, down toggles off", DownVoted, models.VoteDown, NoVote, Delta{Down: -1}},
		{"downvoted, up switches", DownVoted, models.VoteUp, UpVoted, Delta{Up: +1, Down: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, delta := Transition(tt.current, tt.requested)
			assert.Equal(t, tt.wantState, next)
			assert.Equal(t, tt.wantDelta, delta)
		})
	}
}

func TestTransition_SameKindTwiceIsIdempotent(t *testing.T) {
	// up then up again lands back at NoVote with net delta zero.
	state, first := Transition(NoVote, models.VoteUp)
	assert.Equal(t, UpVoted, state)

	state, second := Transition(state, models.VoteUp)
	assert.Equal(t, NoVote, state)

	assert.Equal(t, 0, first.Up+second.Up)
	assert.Equal(t, 0, first.Down+second.Down)
}

func TestStateOf(t *testing.T) {
	assert.Equal(t, NoVote, StateOf(nil))
	assert.Equal(t, UpVoted, StateOf(&models.Vote{VoteType: models.VoteUp}))
	assert.Equal(t, DownVoted, StateOf(&models.Vote{VoteType: models.VoteDown}))
}

func TestStateKind(t *testing.T) {
	assert.Nil(t, NoVote.Kind())

	up := UpVoted.Kind()
	if assert.NotNil(t, up) {
		assert.Equal(t, models.VoteUp, *up)
	}

	down := DownVoted.Kind()
	if assert.NotNil(t, down) {
		assert.Equal(t, models.VoteDown, *down)
	}
}
