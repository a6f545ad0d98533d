package votes

import "github.com/onlyinellada/backend/internal/models"

// State is the requester's standing vote on a story.
type State int

const (
	NoVote State = iota
	UpVoted
	DownVoted
)

func (s State) Kind() *models.VoteKind {
	switch s {
	case UpVoted:
		kind := models.VoteUp
		return &kind
	case DownVoted:
		kind := models.VoteDown
		return &kind
	default:
		return nil
	}
}

func StateOf(vote *models.Vote) State {
	if vote == nil {
		return NoVote
	}
	if vote.VoteType == models.VoteUp {
		return UpVoted
	}
	return DownVoted
}

// Delta is the signed change to apply to a story's (upvotes, downvotes)
// counters.
type Delta struct {
	Up   int
	Down int
}

// Transition computes the next state and tally delta for a vote request.
// Requesting the standing kind toggles it off; requesting the opposite kind
// switches it.
func Transition(current State, requested models.VoteKind) (State, Delta) {
	switch current {
	case UpVoted:
		if requested == models.VoteUp {
			return NoVote, Delta{Up: -1}
		}
		return DownVoted, Delta{Up: -1, Down: +1}
	case DownVoted:
		if requested == models.VoteDown {
			return NoVote, Delta{Down: -1}
		}
		return UpVoted, Delta{Up: +1, Down: -1}
	default:
		if requested == models.VoteUp {
			return UpVoted, Delta{Up: +1}
		}
		return DownVoted, Delta{Down: +1}
	}
}
