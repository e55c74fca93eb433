package service

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"habitquest/internal/datekey"
	"habitquest/internal/models"
	"habitquest/internal/observability"
)

// Reset kinds accepted by ResolveRollover.
const (
	ResetDaily   = "daily"
	ResetWeekly  = "weekly"
	ResetMonthly = "monthly"
)

// CheckRollover compares the persisted bucket keys against the current ones
// and raises pending flags for every crossed boundary. It runs at startup and
// again at midnight in long-lived processes. Raised flags stay pending until
// the user resolves them; history and the action log are never touched here.
func (s *ProgressionService) CheckRollover() (models.PendingResets, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.reconcileLocked(s.now()); err != nil {
		return models.PendingResets{}, err
	}
	return s.state.Pending, nil
}

// Pending returns the unresolved rollover flags.
func (s *ProgressionService) Pending() models.PendingResets {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Pending
}

// ResolveRollover resolves one pending flag. Confirming zeroes the matching
// aggregate and cascades downward: monthly also zeroes weekly and daily,
// weekly also zeroes daily. Declining leaves the stale totals and keeps the
// flag pending for the next check. Resolution never deletes history entries
// or log events.
func (s *ProgressionService) ResolveRollover(kind string, confirmed bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch kind {
	case ResetDaily, ResetWeekly, ResetMonthly:
	default:
		return fmt.Errorf("unknown reset kind %q", kind)
	}

	if !confirmed {
		log.WithField("kind", kind).Info("Rollover reset declined, keeping stale totals")
		return nil
	}

	switch kind {
	case ResetMonthly:
		s.state.MonthlyPoints = 0
		s.state.WeeklyPoints = 0
		s.state.DailyPoints = 0
		s.state.Pending = models.PendingResets{}
	case ResetWeekly:
		s.state.WeeklyPoints = 0
		s.state.DailyPoints = 0
		s.state.Pending.Weekly = false
		s.state.Pending.Daily = false
	case ResetDaily:
		s.state.DailyPoints = 0
		s.state.Pending.Daily = false
	}

	if err := s.saveLocked(); err != nil {
		return err
	}

	observability.ResetsTotal.WithLabelValues(kind).Inc()
	s.publishGauges()

	log.WithField("kind", kind).Info("Rollover reset confirmed")
	return nil
}

// reconcileLocked raises pending flags for crossed boundaries, advances the
// stored bucket keys to the current ones, and persists. Callers must hold the
// mutex. The totals themselves are untouched: zeroing them requires an
// explicit user confirmation per flag.
func (s *ProgressionService) reconcileLocked(now time.Time) error {
	todayKey := datekey.DayKey(now)
	weekKey := datekey.WeekKey(now)
	monthKey := datekey.MonthKey(now)

	changed := false
	if s.state.LastDayKey != "" && s.state.LastDayKey != todayKey && !s.state.Pending.Daily {
		s.state.Pending.Daily = true
		changed = true
	}
	if s.state.LastWeekKey != "" && s.state.LastWeekKey != weekKey && !s.state.Pending.Weekly {
		s.state.Pending.Weekly = true
		changed = true
	}
	if s.state.LastMonthKey != "" && s.state.LastMonthKey != monthKey && !s.state.Pending.Monthly {
		s.state.Pending.Monthly = true
		changed = true
	}

	if s.state.LastDayKey != todayKey || s.state.LastWeekKey != weekKey || s.state.LastMonthKey != monthKey {
		s.state.LastDayKey = todayKey
		s.state.LastWeekKey = weekKey
		s.state.LastMonthKey = monthKey
		changed = true
	}

	if !changed {
		return nil
	}

	if s.state.Pending.Any() {
		log.WithFields(log.Fields{
			"daily":   s.state.Pending.Daily,
			"weekly":  s.state.Pending.Weekly,
			"monthly": s.state.Pending.Monthly,
		}).Info("Rollover detected, awaiting confirmation")
	}

	return s.saveLocked()
}
