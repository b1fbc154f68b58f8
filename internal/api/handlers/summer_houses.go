package handlers

import (
	"net/http"

	"github.com/mkj/summerhouse-voting/internal/domain"
	"github.com/mkj/summerhouse-voting/internal/service"
	"github.com/sirupsen/logrus"
)

type SummerHouseHandler struct {
	voteService *service.VoteService
}

func NewSummerHouseHandler(voteService *service.VoteService) *SummerHouseHandler {
	return &SummerHouseHandler{voteService: voteService}
}

type SummerHousesResponse struct {
	SummerHouses []*domain.SummerHouse `json:"summerHouses"`
}

type ResultsResponse struct {
	Results []*domain.SummerHouseWithVotes `json:"results"`
}

// GetAll handles GET /api/summer-houses.
func (h *SummerHouseHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	houses, err := h.voteService.ListHouses(r.Context())
	if err != nil {
		logrus.Errorf("summerhouses.GetAll: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to get summer houses")
		return
	}

	if houses == nil {
		houses = []*domain.SummerHouse{}
	}
	respondJSON(w, http.StatusOK, SummerHousesResponse{SummerHouses: houses})
}

// GetResults handles GET /api/results.
func (h *SummerHouseHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	results, err := h.voteService.Results(r.Context())
	if err != nil {
		logrus.Errorf("summerhouses.GetResults: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to get results")
		return
	}

	if results == nil {
		results = []*domain.SummerHouseWithVotes{}
	}
	respondJSON(w, http.StatusOK, ResultsResponse{Results: results})
}
