package handlers

import (
	"encoding/json"
	"net/http"

	"habitquest/internal/service"
)

// RewardHandler serves the user-editable reward text.
type RewardHandler struct {
	progression *service.ProgressionService
}

// NewRewardHandler creates a new reward handler
func NewRewardHandler(progression *service.ProgressionService) *RewardHandler {
	return &RewardHandler{progression: progression}
}

// GetReward returns the current reward text.
func (h *RewardHandler) GetReward(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, RewardRequest{Reward: h.progression.Snapshot().Reward})
}

// UpdateReward stores the reward text verbatim.
func (h *RewardHandler) UpdateReward(w http.ResponseWriter, r *http.Request) {
	var req RewardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", "", nil)
		return
	}

	if err := h.progression.SetReward(req.Reward); err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to save reward", "reward update failed", err)
		return
	}

	respondJSON(w, http.StatusOK, RewardRequest{Reward: req.Reward})
}
