package service

import (
	"math"
	"time"

	"habitquest/internal/catalog"
	"habitquest/internal/datekey"
)

// LevelStage describes the calendar-derived level for a given day. The level
// is purely a function of the date: earning past 100% of the target never
// advances it.
type LevelStage struct {
	Level       int    `json:"level"` // 1..6
	Name        string `json:"name"`
	Background  string `json:"background"`
	Day         int    `json:"day"`
	DaysInMonth int    `json:"daysInMonth"`
	Target      int    `json:"target"`
	ExpPercent  int    `json:"expPercent"` // clamped at 100
}

// CalculateLevelStage splits the month into six contiguous segments and maps
// the day of month onto one of them, then derives the stage's point target
// from the base daily target and the configured stage multiplier.
func CalculateLevelStage(now time.Time, dailyPoints int, levels catalog.LevelConfig, baseDailyTarget int) LevelStage {
	day := now.Day()
	days := datekey.DaysInMonth(now)

	segment := (days + 5) / 6 // ceil(days / 6)
	idx := (day - 1) / segment
	if idx > 5 {
		idx = 5
	}

	target := int(math.Round(float64(baseDailyTarget) * levels.StagePercents[idx]))
	if target < 10 {
		target = 10
	}

	exp := int(math.Round(100 * float64(dailyPoints) / float64(target)))
	if exp > 100 {
		exp = 100
	}

	return LevelStage{
		Level:       idx + 1,
		Name:        levels.Names[idx],
		Background:  levels.Backgrounds[idx],
		Day:         day,
		DaysInMonth: days,
		Target:      target,
		ExpPercent:  exp,
	}
}
