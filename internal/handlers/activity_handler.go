package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"habitquest/internal/catalog"
	"habitquest/internal/service"
)

// ActivityHandler serves the activity catalog and the tap / clear-today
// operations.
type ActivityHandler struct {
	catalog     *catalog.Catalog
	progression *service.ProgressionService
	floaters    *Floaters
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(cat *catalog.Catalog, progression *service.ProgressionService, floaters *Floaters) *ActivityHandler {
	return &ActivityHandler{
		catalog:     cat,
		progression: progression,
		floaters:    floaters,
	}
}

// ListActivities returns the injected activity table.
func (h *ActivityHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.catalog.Activities)
}

// Tap records one tap on the labeled activity.
func (h *ActivityHandler) Tap(w http.ResponseWriter, r *http.Request) {
	label := r.PathValue("label")

	event, err := h.progression.ApplyPoints(label)
	if err != nil {
		if errors.Is(err, service.ErrUnknownActivity) {
			respondWithError(w, http.StatusNotFound, "unknown activity", "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "failed to record tap", "tap failed", err)
		return
	}

	floater := h.floaters.Add(fmt.Sprintf("+%d", event.Points))

	respondJSON(w, http.StatusOK, TapResponse{
		Event:       event,
		DailyPoints: h.progression.Snapshot().DailyPoints,
		Floater:     floater,
	})
}

// ClearToday removes all of today's entries.
func (h *ActivityHandler) ClearToday(w http.ResponseWriter, r *http.Request) {
	if err := h.progression.ClearToday(); err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to clear today", "clear today failed", err)
		return
	}

	state := h.progression.Snapshot()
	respondJSON(w, http.StatusOK, map[string]int{
		"dailyPoints":   state.DailyPoints,
		"weeklyPoints":  state.WeeklyPoints,
		"monthlyPoints": state.MonthlyPoints,
	})
}
