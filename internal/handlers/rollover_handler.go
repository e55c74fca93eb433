package handlers

import (
	"net/http"
	"strings"

	"habitquest/internal/service"
)

// RolloverHandler serves the pending-reset prompts. Every reset needs an
// explicit confirmation; declining keeps the flag pending for the next check.
type RolloverHandler struct {
	progression *service.ProgressionService
}

// NewRolloverHandler creates a new rollover handler
func NewRolloverHandler(progression *service.ProgressionService) *RolloverHandler {
	return &RolloverHandler{progression: progression}
}

// GetPending lists the unresolved flags.
func (h *RolloverHandler) GetPending(w http.ResponseWriter, r *http.Request) {
	pending := h.progression.Pending()
	respondJSON(w, http.StatusOK, RolloverResponse{
		Pending:  pending,
		Priority: pending.Priority(),
	})
}

// Confirm resolves one flag by zeroing the matching aggregates.
func (h *RolloverHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, true)
}

// Decline leaves the stale totals in place.
func (h *RolloverHandler) Decline(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, false)
}

func (h *RolloverHandler) resolve(w http.ResponseWriter, r *http.Request, confirmed bool) {
	kind := strings.ToLower(r.PathValue("kind"))

	if err := h.progression.ResolveRollover(kind, confirmed); err != nil {
		respondWithError(w, http.StatusBadRequest, "unknown reset kind", "", nil)
		return
	}

	pending := h.progression.Pending()
	respondJSON(w, http.StatusOK, RolloverResponse{
		Pending:  pending,
		Priority: pending.Priority(),
	})
}
