package scheduler

import (
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/vytor/linguacards/internal/logger"
)

// Sweeper evicts sessions idle for longer than ttl.
type Sweeper interface {
	Sweep(ttl time.Duration) int
}

// Scheduler runs the periodic session sweep.
type Scheduler struct {
	scheduler *gocron.Scheduler
	sessions  Sweeper
	ttl       time.Duration
	interval  time.Duration
	log       *logger.Logger
}

func New(sessions Sweeper, ttl, interval time.Duration) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		sessions:  sessions,
		ttl:       ttl,
		interval:  interval,
		log:       logger.Default().WithPrefix("scheduler"),
	}
}

// Start schedules the sweep and runs the scheduler in the background.
func (s *Scheduler) Start() error {
	if _, err := s.scheduler.Every(s.interval).SingletonMode().Do(s.sweep); err != nil {
		return fmt.Errorf("schedule session sweep: %w", err)
	}
	s.log.Info("session sweep every %s, ttl %s", s.interval, s.ttl)
	s.scheduler.StartAsync()
	return nil
}

func (s *Scheduler) Stop() {
	s.scheduler.Stop()
	s.log.Debug("scheduler stopped")
}

func (s *Scheduler) sweep() {
	if n := s.sessions.Sweep(s.ttl); n > 0 {
		s.log.Debug("sweep removed %d sessions", n)
	}
}
