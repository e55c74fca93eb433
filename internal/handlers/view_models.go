package handlers

import (
	"habitquest/internal/models"
	"habitquest/internal/service"
)

// StateResponse is the main HUD payload: the aggregates, streaks, the
// calendar-derived level, active floaters and the insight line.
type StateResponse struct {
	DailyPoints   int                  `json:"dailyPoints"`
	WeeklyPoints  int                  `json:"weeklyPoints"`
	MonthlyPoints int                  `json:"monthlyPoints"`
	CurrentStreak int                  `json:"currentStreak"`
	LongestStreak int                  `json:"longestStreak"`
	Reward        string               `json:"reward"`
	Level         service.LevelStage   `json:"level"`
	Pending       models.PendingResets `json:"pending"`
	Floaters      []Floater            `json:"floaters"`
	Insight       string               `json:"insight"`
}

// TapResponse is returned after a successful activity tap.
type TapResponse struct {
	Event       models.Event `json:"event"`
	DailyPoints int          `json:"dailyPoints"`
	Floater     Floater      `json:"floater"`
}

// WeekResponse is the last-7-days view.
type WeekResponse struct {
	Bars  []service.WeekBar `json:"bars"`
	Total int               `json:"total"`
}

// RolloverResponse lists the unresolved rollover flags and which one to
// surface first.
type RolloverResponse struct {
	Pending  models.PendingResets `json:"pending"`
	Priority string               `json:"priority"`
}

// RewardRequest carries the user-edited reward text.
type RewardRequest struct {
	Reward string `json:"reward"`
}

// FrequencyResponse is the habit-frequency view; Stats is empty (not null)
// when there is no data yet.
type FrequencyResponse struct {
	Stats []service.FrequencyStat `json:"stats"`
}
