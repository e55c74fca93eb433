package service

import (
	"time"

	"habitquest/internal/datekey"
	"habitquest/internal/models"
)

// updateStreak recomputes the consecutive-day streak. It is called when
// today's history total first becomes positive; later taps on the same day
// leave the streak alone. A day with no points does not break the streak by
// itself; the break happens when the next earning day is evaluated and finds
// no entry for its yesterday. The very first action of all time starts at 1,
// since absence of data is not a broken streak.
func updateStreak(history models.History, todayKey, yesterdayKey string, current, longest int) (int, int) {
	if history[todayKey] <= 0 {
		// Nothing earned today yet; streak unchanged
		return current, longest
	}

	if history[yesterdayKey] > 0 {
		current++
	} else {
		current = 1
	}

	if current > longest {
		longest = current
	}
	return current, longest
}

// longestRun returns the length of the longest run of consecutive active days
// in history. Clear-today rebuilds the streak record with it after removing
// today's entry, since the run that just shrank may have been the record.
func longestRun(history models.History) int {
	longest := 0
	for key, points := range history {
		if points <= 0 {
			continue
		}
		day, err := time.Parse("2006-01-02", key)
		if err != nil {
			continue
		}
		if history[datekey.DayKey(day.AddDate(0, 0, -1))] > 0 {
			// Not the start of a run
			continue
		}

		run := 0
		for d := day; history[datekey.DayKey(d)] > 0; d = d.AddDate(0, 0, 1) {
			run++
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}
