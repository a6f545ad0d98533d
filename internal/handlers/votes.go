package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/onlyinellada/backend/internal/middleware"
	"github.com/onlyinellada/backend/internal/models"
	"github.com/onlyinellada/backend/internal/votes"
)

type VoteHandler struct {
	ledger *votes.Ledger
}

func NewVoteHandler(ledger *votes.Ledger) *VoteHandler {
	return &VoteHandler{ledger: ledger}
}

// VoteStory applies a vote transition (PROTECTED). Requesting the standing
// kind removes the vote; the opposite kind switches it. The response carries
// the confirmed tally so clients can replace any optimistic count.
func (h *VoteHandler) VoteStory(c *gin.Context) {
	storyID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid story ID"})
		return
	}

	var input struct {
		VoteType models.VoteKind `json:"vote_type" binding:"required,oneof=up down"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Vote type must be up or down"})
		return
	}

	result, err := h.ledger.Apply(c.Request.Context(), middleware.UserID(c), storyID, input.VoteType)
	if err != nil {
		switch {
		case errors.Is(err, votes.ErrUnauthenticated):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		case errors.Is(err, votes.ErrStoryNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Story not found"})
		case errors.Is(err, votes.ErrInvalidKind):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Vote type must be up or down"})
		default:
			// Direct user gesture: surface the storage error message.
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
