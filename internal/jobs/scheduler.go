// Package jobs runs the background rollover check on a cron schedule.
package jobs

import (
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"

	"habitquest/internal/service"
)

// Scheduler triggers the midnight boundary check. Outside this job the check
// only runs at process start, so a server that stays up across a day boundary
// relies on it to raise the pending flags.
type Scheduler struct {
	cron        *cron.Cron
	progression *service.ProgressionService
}

// NewScheduler creates a scheduler in the server's local time zone.
func NewScheduler(progression *service.ProgressionService) *Scheduler {
	return &Scheduler{
		cron:        cron.New(),
		progression: progression,
	}
}

// Start registers the midnight job and starts the cron loop.
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc("0 0 * * *", func() {
		pending, err := s.progression.CheckRollover()
		if err != nil {
			log.WithError(err).Error("midnight rollover check failed")
			return
		}
		if pending.Any() {
			log.WithField("priority", pending.Priority()).Info("rollover pending, awaiting confirmation")
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	log.Info("Rollover scheduler started")
	return nil
}

// Stop halts the cron loop, waiting for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	log.Info("Rollover scheduler stopped")
}
