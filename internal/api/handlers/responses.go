package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/mkj/summerhouse-voting/internal/domain"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	Votes     []int64   `json:"votes"`
}

type VoteResponse struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"userId"`
	SummerHouseID int64     `json:"summerHouseId"`
	CreatedAt     time.Time `json:"createdAt"`
}

func newUserResponse(user *domain.UserWithVotes) UserResponse {
	votes := user.Votes
	if votes == nil {
		votes = []int64{}
	}
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		Votes:     votes,
	}
}

func newVoteResponse(vote *domain.Vote) VoteResponse {
	return VoteResponse{
		ID:            vote.ID,
		UserID:        vote.UserID,
		SummerHouseID: vote.SummerHouseID,
		CreatedAt:     vote.CreatedAt,
	}
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}
