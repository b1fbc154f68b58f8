package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mkj/summerhouse-voting/internal/api/middleware"
	"github.com/mkj/summerhouse-voting/internal/domain"
	"github.com/mkj/summerhouse-voting/internal/service"
	"github.com/sirupsen/logrus"
)

type VoteHandler struct {
	voteService *service.VoteService
}

func NewVoteHandler(voteService *service.VoteService) *VoteHandler {
	return &VoteHandler{voteService: voteService}
}

type VoteRequest struct {
	SummerHouseID int64 `json:"summerHouseId"`
}

type CastVoteResponse struct {
	Vote VoteResponse `json:"vote"`
	User UserResponse `json:"user"`
}

type RetractVoteResponse struct {
	Success bool         `json:"success"`
	User    UserResponse `json:"user"`
}

// Cast handles POST /api/votes.
func (h *VoteHandler) Cast(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.SessionToken(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "No session found")
		return
	}

	var req VoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.SummerHouseID == 0 {
		respondError(w, http.StatusBadRequest, "Summer house ID is required")
		return
	}

	vote, user, err := h.voteService.Cast(r.Context(), token, req.SummerHouseID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			respondError(w, http.StatusNotFound, "User not found")
		case errors.Is(err, domain.ErrAlreadyVoted):
			respondError(w, http.StatusBadRequest, "Already voted for this summer house")
		case errors.Is(err, domain.ErrHouseNotFound):
			respondError(w, http.StatusNotFound, "Summer house not found")
		default:
			logrus.Errorf("votes.Cast: %v", err)
			respondError(w, http.StatusInternalServerError, "Failed to create vote")
		}
		return
	}

	respondJSON(w, http.StatusOK, CastVoteResponse{
		Vote: newVoteResponse(vote),
		User: newUserResponse(user),
	})
}

// Retract handles DELETE /api/votes.
func (h *VoteHandler) Retract(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.SessionToken(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "No session found")
		return
	}

	var req VoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.SummerHouseID == 0 {
		respondError(w, http.StatusBadRequest, "Summer house ID is required")
		return
	}

	user, err := h.voteService.Retract(r.Context(), token, req.SummerHouseID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			respondError(w, http.StatusNotFound, "User not found")
		case errors.Is(err, domain.ErrVoteNotFound):
			respondError(w, http.StatusNotFound, "Vote not found")
		default:
			logrus.Errorf("votes.Retract: %v", err)
			respondError(w, http.StatusInternalServerError, "Failed to delete vote")
		}
		return
	}

	respondJSON(w, http.StatusOK, RetractVoteResponse{
		Success: true,
		User:    newUserResponse(user),
	})
}
