package service

import (
	"testing"

	"habitquest/internal/models"
)

func TestUpdateStreak(t *testing.T) {
	tests := []struct {
		name            string
		history         models.History
		current         int
		longest         int
		expectedCurrent int
		expectedLongest int
	}{
		{
			name:            "first ever action starts at one",
			history:         models.History{"2025-06-02": 10},
			current:         0,
			longest:         0,
			expectedCurrent: 1,
			expectedLongest: 1,
		},
		{
			name:            "yesterday active extends the streak",
			history:         models.History{"2025-06-01": 5, "2025-06-02": 10},
			current:         3,
			longest:         4,
			expectedCurrent: 4,
			expectedLongest: 4,
		},
		{
			name:            "yesterday empty restarts at one",
			history:         models.History{"2025-05-30": 5, "2025-06-02": 10},
			current:         3,
			longest:         7,
			expectedCurrent: 1,
			expectedLongest: 7,
		},
		{
			name:            "no points today leaves streak alone",
			history:         models.History{"2025-06-01": 5},
			current:         2,
			longest:         2,
			expectedCurrent: 2,
			expectedLongest: 2,
		},
		{
			name:            "new record updates longest",
			history:         models.History{"2025-06-01": 5, "2025-06-02": 10},
			current:         4,
			longest:         4,
			expectedCurrent: 5,
			expectedLongest: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			current, longest := updateStreak(tt.history, "2025-06-02", "2025-06-01", tt.current, tt.longest)
			if current != tt.expectedCurrent {
				t.Errorf("current = %d, want %d", current, tt.expectedCurrent)
			}
			if longest != tt.expectedLongest {
				t.Errorf("longest = %d, want %d", longest, tt.expectedLongest)
			}
			if longest < current {
				t.Errorf("invariant violated: longest %d < current %d", longest, current)
			}
		})
	}
}

func TestLongestRun(t *testing.T) {
	tests := []struct {
		name     string
		history  models.History
		expected int
	}{
		{
			name:     "empty history",
			history:  models.History{},
			expected: 0,
		},
		{
			name:     "single day",
			history:  models.History{"2025-06-01": 5},
			expected: 1,
		},
		{
			name: "two separate runs",
			history: models.History{
				"2025-06-01": 5, "2025-06-02": 5, "2025-06-03": 5,
				"2025-06-10": 5, "2025-06-11": 5,
			},
			expected: 3,
		},
		{
			name: "run across a month boundary",
			history: models.History{
				"2025-05-31": 5, "2025-06-01": 5,
			},
			expected: 2,
		},
		{
			name: "zero-point entries do not count",
			history: models.History{
				"2025-06-01": 5, "2025-06-02": 0, "2025-06-03": 5,
			},
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := longestRun(tt.history); got != tt.expected {
				t.Errorf("longestRun() = %d, want %d", got, tt.expected)
			}
		})
	}
}
