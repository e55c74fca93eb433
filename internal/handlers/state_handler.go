package handlers

import (
	"net/http"

	"habitquest/internal/service"
)

// StateHandler serves the read-only views: HUD state, the 7-day bars, the
// monthly balance, habit frequency, and the insight line.
type StateHandler struct {
	progression *service.ProgressionService
	floaters    *Floaters
}

// NewStateHandler creates a new state handler
func NewStateHandler(progression *service.ProgressionService, floaters *Floaters) *StateHandler {
	return &StateHandler{progression: progression, floaters: floaters}
}

// GetState returns the HUD payload.
func (h *StateHandler) GetState(w http.ResponseWriter, r *http.Request) {
	state := h.progression.Snapshot()

	respondJSON(w, http.StatusOK, StateResponse{
		DailyPoints:   state.DailyPoints,
		WeeklyPoints:  state.WeeklyPoints,
		MonthlyPoints: state.MonthlyPoints,
		CurrentStreak: state.CurrentStreak,
		LongestStreak: state.LongestStreak,
		Reward:        state.Reward,
		Level:         h.progression.LevelStage(),
		Pending:       state.Pending,
		Floaters:      h.floaters.Active(),
		Insight:       h.progression.Advice(),
	})
}

// GetWeek returns the last seven days, oldest first.
func (h *StateHandler) GetWeek(w http.ResponseWriter, r *http.Request) {
	bars := h.progression.WeekBars()

	total := 0
	for _, b := range bars {
		total += b.Points
	}

	respondJSON(w, http.StatusOK, WeekResponse{Bars: bars, Total: total})
}

// GetMonth returns the monthly balance.
func (h *StateHandler) GetMonth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.progression.MonthBalance())
}

// GetFrequency returns the 7/30-day tap counts per activity. An empty log
// yields an empty list, which the UI renders as "no data yet".
func (h *StateHandler) GetFrequency(w http.ResponseWriter, r *http.Request) {
	stats := h.progression.Frequency()
	if stats == nil {
		stats = []service.FrequencyStat{}
	}
	respondJSON(w, http.StatusOK, FrequencyResponse{Stats: stats})
}

// GetAdvice returns the current insight line.
func (h *StateHandler) GetAdvice(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"advice": h.progression.Advice()})
}
