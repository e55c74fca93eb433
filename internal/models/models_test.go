package models

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestActionLogAppendAndRemoveDay(t *testing.T) {
	var log ActionLog
	log.Append(Event{Date: "2025-06-01", Label: "Entrené", Points: 10})
	log.Append(Event{Date: "2025-06-01", Label: "Caminé 30 min", Points: 5})
	log.Append(Event{Date: "2025-06-02", Label: "Entrené", Points: 10})

	if len(log) != 3 {
		t.Fatalf("expected 3 events, got %d", len(log))
	}

	log.RemoveDay("2025-06-01")

	if len(log) != 1 {
		t.Fatalf("expected 1 event after RemoveDay, got %d", len(log))
	}
	if log[0].Date != "2025-06-02" {
		t.Errorf("wrong event kept: %v", log[0])
	}

	// Removing a day with no events is a no-op
	log.RemoveDay("2025-06-01")
	if len(log) != 1 {
		t.Errorf("RemoveDay of absent day changed the log: %d events", len(log))
	}
}

func TestActionLogEventsSince(t *testing.T) {
	log := ActionLog{
		{Date: "2025-05-20", Label: "Entrené", Points: 10},
		{Date: "2025-06-01", Label: "Caminé 30 min", Points: 5},
		{Date: "2025-06-15", Label: "Entrené", Points: 10},
	}

	var dates []string
	for e := range log.EventsSince("2025-06-01") {
		dates = append(dates, e.Date)
	}

	expected := []string{"2025-06-01", "2025-06-15"}
	if !reflect.DeepEqual(dates, expected) {
		t.Errorf("EventsSince() = %v, want %v", dates, expected)
	}

	// The sequence is restartable
	count := 0
	seq := log.EventsSince("2025-06-01")
	for range seq {
		count++
	}
	for range seq {
		count++
	}
	if count != 4 {
		t.Errorf("restarted sequence yielded %d events, want 4", count)
	}

	// Early break stops iteration cleanly
	count = 0
	for range log.EventsSince("2025-01-01") {
		count++
		break
	}
	if count != 1 {
		t.Errorf("break after first event yielded %d events", count)
	}
}

func TestPendingResetsPriority(t *testing.T) {
	tests := []struct {
		name     string
		pending  PendingResets
		expected string
	}{
		{name: "nothing pending", pending: PendingResets{}, expected: ""},
		{name: "daily only", pending: PendingResets{Daily: true}, expected: "daily"},
		{name: "daily wins over weekly", pending: PendingResets{Daily: true, Weekly: true}, expected: "daily"},
		{name: "weekly wins over monthly", pending: PendingResets{Weekly: true, Monthly: true}, expected: "weekly"},
		{name: "monthly alone", pending: PendingResets{Monthly: true}, expected: "monthly"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pending.Priority(); got != tt.expected {
				t.Errorf("Priority() = %v, want %v", got, tt.expected)
			}
			if got := tt.pending.Any(); got != (tt.expected != "") {
				t.Errorf("Any() = %v, want %v", got, tt.expected != "")
			}
		})
	}
}

func TestPersistedStateRoundTrip(t *testing.T) {
	state := &PersistedState{
		LastDayKey:    "2025-06-02",
		LastWeekKey:   "2025-W23",
		LastMonthKey:  "2025-06",
		DailyPoints:   15,
		WeeklyPoints:  40,
		MonthlyPoints: 120,
		History:       History{"2025-06-01": 25, "2025-06-02": 15},
		CurrentStreak: 2,
		LongestStreak: 5,
		Reward:        "Recompensa: plan con amigos 🍕",
		ActionLog: ActionLog{
			{Date: "2025-06-02", Label: "Entrené", Points: 10},
			{Date: "2025-06-02", Label: "Caminé 30 min", Points: 5},
		},
		Pending: PendingResets{Weekly: true},
	}

	raw, err := json.Marshal(state)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded PersistedState
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if !reflect.DeepEqual(*state, decoded) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", decoded, *state)
	}
}

func TestNormalizeRepairsNilCollections(t *testing.T) {
	var state PersistedState
	if err := json.Unmarshal([]byte(`{"dailyPoints":5}`), &state); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	state.Normalize()

	if state.History == nil {
		t.Error("History still nil after Normalize")
	}
	if state.ActionLog == nil {
		t.Error("ActionLog still nil after Normalize")
	}
}
