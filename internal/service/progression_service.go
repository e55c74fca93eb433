package service

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"habitquest/internal/catalog"
	"habitquest/internal/datekey"
	"habitquest/internal/models"
	"habitquest/internal/observability"
)

// StateStore is the durable gateway the service persists through. It is
// satisfied by repository.StateRepository.
type StateStore interface {
	Load() (*models.PersistedState, error)
	Save(*models.PersistedState) error
}

// ErrUnknownActivity is returned when a tap references a label that is not in
// the injected activity catalog.
var ErrUnknownActivity = errors.New("unknown activity")

// DefaultReward is the reward text for fresh state.
const DefaultReward = "Recompensa: plan con amigos 🍕"

// ProgressionService owns the engine state. All mutation goes through named
// methods, each of which persists the new state before returning.
type ProgressionService struct {
	mu         sync.Mutex
	repo       StateStore
	catalog    *catalog.Catalog
	baseTarget int
	state      *models.PersistedState
	now        func() time.Time
}

// NewProgressionService loads the persisted state (or starts fresh) and runs
// the rollover check against today's bucket keys.
func NewProgressionService(repo StateStore, cat *catalog.Catalog, baseDailyTarget int) (*ProgressionService, error) {
	return newProgressionServiceAt(repo, cat, baseDailyTarget, time.Now)
}

func newProgressionServiceAt(repo StateStore, cat *catalog.Catalog, baseDailyTarget int, now func() time.Time) (*ProgressionService, error) {
	s := &ProgressionService{
		repo:       repo,
		catalog:    cat,
		baseTarget: baseDailyTarget,
		now:        now,
	}

	state, err := repo.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	start := s.now()
	if state == nil {
		state = models.NewPersistedState(datekey.DayKey(start), datekey.WeekKey(start), datekey.MonthKey(start))
		state.Reward = DefaultReward
		log.Info("No prior state, starting fresh")
	}
	s.state = state

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.reconcileLocked(start); err != nil {
		return nil, err
	}

	s.publishGauges()
	return s, nil
}

// ApplyPoints records a tap on the labeled activity: it bumps the daily,
// weekly and monthly totals, appends the event to the action log, updates
// today's history entry and the streak, and persists.
func (s *ProgressionService) ApplyPoints(label string) (models.Event, error) {
	activity, ok := s.catalog.Find(label)
	if !ok {
		return models.Event{}, fmt.Errorf("%w: %q", ErrUnknownActivity, label)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	todayKey := datekey.DayKey(now)
	yesterdayKey := datekey.DayKey(datekey.Yesterday(now))

	firstOfDay := s.state.History[todayKey] == 0

	s.state.DailyPoints += activity.Points
	s.state.WeeklyPoints += activity.Points
	s.state.MonthlyPoints += activity.Points
	s.state.History[todayKey] += activity.Points

	event := models.Event{Date: todayKey, Label: activity.Label, Points: activity.Points}
	s.state.ActionLog.Append(event)

	if firstOfDay {
		s.state.CurrentStreak, s.state.LongestStreak = updateStreak(
			s.state.History, todayKey, yesterdayKey, s.state.CurrentStreak, s.state.LongestStreak)
	}

	if err := s.saveLocked(); err != nil {
		return models.Event{}, err
	}

	observability.TapsTotal.WithLabelValues(activity.Label).Inc()
	observability.PointsEarnedTotal.Add(float64(activity.Points))
	s.publishGauges()

	log.WithFields(log.Fields{
		"label":  activity.Label,
		"points": activity.Points,
		"daily":  s.state.DailyPoints,
		"streak": s.state.CurrentStreak,
	}).Debug("Points applied")

	return event, nil
}

// ClearToday removes today's entries: daily goes to zero, today's history
// total is subtracted from the weekly and monthly aggregates (clamped at
// zero), and the history entry and its events are deleted. Calling it again
// on the same day is a no-op.
func (s *ProgressionService) ClearToday() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	todayKey := datekey.DayKey(now)
	yesterdayKey := datekey.DayKey(datekey.Yesterday(now))
	points := s.state.History[todayKey]

	s.state.DailyPoints = 0
	s.state.WeeklyPoints = max(0, s.state.WeeklyPoints-points)
	s.state.MonthlyPoints = max(0, s.state.MonthlyPoints-points)
	delete(s.state.History, todayKey)
	s.state.ActionLog.RemoveDay(todayKey)

	// Today no longer counts as an active day: the streak shrinks with it,
	// and the record is rebuilt from the surviving history because today's
	// run may have been the one that set it. A later tap then counts today
	// as a fresh first action instead of incrementing twice.
	if points > 0 {
		if s.state.History[yesterdayKey] > 0 {
			s.state.CurrentStreak = max(0, s.state.CurrentStreak-1)
		} else {
			s.state.CurrentStreak = 0
		}
		s.state.LongestStreak = max(longestRun(s.state.History), s.state.CurrentStreak)
	}

	if err := s.saveLocked(); err != nil {
		return err
	}

	observability.ClearTodayTotal.Inc()
	s.publishGauges()

	log.WithField("removed", points).Info("Cleared today's entries")
	return nil
}

// SetReward stores the free-text reward verbatim.
func (s *ProgressionService) SetReward(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Reward = text
	return s.saveLocked()
}

// Snapshot returns a deep copy of the current state for reads.
func (s *ProgressionService) Snapshot() models.PersistedState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyLocked()
}

// LevelStage returns today's calendar-derived level and target.
func (s *ProgressionService) LevelStage() LevelStage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return CalculateLevelStage(s.now(), s.state.DailyPoints, s.catalog.Levels, s.baseTarget)
}

// Frequency returns the 7/30-day tap counts per activity.
func (s *ProgressionService) Frequency() []FrequencyStat {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AggregateFrequency(s.state.ActionLog, s.catalog, s.now())
}

// Advice returns the insight line for the current progress. The pick from
// the pool is seeded with the current time.
func (s *ProgressionService) Advice() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	stage := CalculateLevelStage(now, s.state.DailyPoints, s.catalog.Levels, s.baseTarget)
	return PickAdvice(now.UnixNano(), s.catalog.Advice, s.state.DailyPoints, stage.Target)
}

// WeekBar is one column of the last-7-days view.
type WeekBar struct {
	Key     string `json:"key"`
	Label   string `json:"label"` // short weekday name
	Points  int    `json:"points"`
	Percent int    `json:"percent"` // of the base daily target, clamped at 100
}

// WeekBars returns the last seven calendar days, oldest first.
func (s *ProgressionService) WeekBars() []WeekBar {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	bars := make([]WeekBar, 0, 7)
	for i := 6; i >= 0; i-- {
		d := now.AddDate(0, 0, -i)
		key := datekey.DayKey(d)
		points := s.state.History[key]

		percent := 0
		if s.baseTarget > 0 {
			percent = int(math.Round(100 * float64(points) / float64(s.baseTarget)))
			if percent > 100 {
				percent = 100
			}
		}

		bars = append(bars, WeekBar{
			Key:     key,
			Label:   weekdayShort[d.Weekday()],
			Points:  points,
			Percent: percent,
		})
	}
	return bars
}

// MonthBalance summarizes the current calendar month from History.
type MonthBalance struct {
	Total         int `json:"total"`
	DailyAverage  int `json:"dailyAverage"`
	LongestStreak int `json:"longestStreak"`
}

// MonthBalance totals the real per-day history of the current month; unlike
// the running monthly aggregate it is unaffected by declined resets.
func (s *ProgressionService) MonthBalance() MonthBalance {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	days := datekey.DaysInMonth(now)

	total := 0
	for d := 1; d <= days; d++ {
		key := datekey.DayKey(time.Date(now.Year(), now.Month(), d, 0, 0, 0, 0, now.Location()))
		total += s.state.History[key]
	}

	return MonthBalance{
		Total:         total,
		DailyAverage:  int(math.Round(float64(total) / float64(days))),
		LongestStreak: s.state.LongestStreak,
	}
}

// weekdayShort matches the original display language of the habit tracker.
var weekdayShort = map[time.Weekday]string{
	time.Sunday:    "dom",
	time.Monday:    "lun",
	time.Tuesday:   "mar",
	time.Wednesday: "mié",
	time.Thursday:  "jue",
	time.Friday:    "vie",
	time.Saturday:  "sáb",
}

// saveLocked persists the state. Callers must hold the mutex.
func (s *ProgressionService) saveLocked() error {
	return s.repo.Save(s.state)
}

// copyLocked deep-copies the state. Callers must hold the mutex.
func (s *ProgressionService) copyLocked() models.PersistedState {
	out := *s.state
	out.History = make(models.History, len(s.state.History))
	for k, v := range s.state.History {
		out.History[k] = v
	}
	out.ActionLog = make(models.ActionLog, len(s.state.ActionLog))
	copy(out.ActionLog, s.state.ActionLog)
	return out
}

func (s *ProgressionService) publishGauges() {
	observability.DailyPoints.Set(float64(s.state.DailyPoints))
	observability.CurrentStreak.Set(float64(s.state.CurrentStreak))
}
