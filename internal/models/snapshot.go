package models

// History maps a day bucket key to the point total earned that day. A key is
// present only for days with at least one event, and its value always equals
// the sum of that day's event points.
type History map[string]int

// PendingResets holds the rollover flags raised when persisted state predates
// the current day, week, or month. The flags are independent: any combination
// may be pending at once, and each persists until the user resolves it.
type PendingResets struct {
	Daily   bool `json:"daily"`
	Weekly  bool `json:"weekly"`
	Monthly bool `json:"monthly"`
}

// Any reports whether at least one reset is pending.
func (p PendingResets) Any() bool {
	return p.Daily || p.Weekly || p.Monthly
}

// Priority returns the flag to surface first: daily, then weekly, then
// monthly. Empty string when nothing is pending.
func (p PendingResets) Priority() string {
	switch {
	case p.Daily:
		return "daily"
	case p.Weekly:
		return "weekly"
	case p.Monthly:
		return "monthly"
	default:
		return ""
	}
}

// PersistedState is the full engine state saved as one blob: the running
// aggregates, the per-day history, the streak counters, the reward text, the
// raw action log, and any unresolved rollover flags.
type PersistedState struct {
	LastDayKey    string        `json:"lastDayKey"`
	LastWeekKey   string        `json:"lastWeekKey"`
	LastMonthKey  string        `json:"lastMonthKey"`
	DailyPoints   int           `json:"dailyPoints"`
	WeeklyPoints  int           `json:"weeklyPoints"`
	MonthlyPoints int           `json:"monthlyPoints"`
	History       History       `json:"history"`
	CurrentStreak int           `json:"currentStreak"`
	LongestStreak int           `json:"longestStreak"`
	Reward        string        `json:"reward"`
	ActionLog     ActionLog     `json:"actionLog"`
	Pending       PendingResets `json:"pending"`
}

// NewPersistedState returns a fresh state keyed to the given bucket keys.
func NewPersistedState(dayKey, weekKey, monthKey string) *PersistedState {
	return &PersistedState{
		LastDayKey:   dayKey,
		LastWeekKey:  weekKey,
		LastMonthKey: monthKey,
		History:      History{},
		ActionLog:    ActionLog{},
	}
}

// Normalize repairs nil collections after JSON decoding so callers can index
// and append without nil checks.
func (s *PersistedState) Normalize() {
	if s.History == nil {
		s.History = History{}
	}
	if s.ActionLog == nil {
		s.ActionLog = ActionLog{}
	}
}
