package scheduler

import (
	"context"
	"log/slog"
	"time"
)

// Refresher is a container that can reload its data on demand.
type Refresher interface {
	Refresh()
}

// Scheduler issues the first load of every target at session start and,
// when interval is positive, refreshes them on a ticker.
type Scheduler struct {
	targets  []Refresher
	interval time.Duration
	logger   *slog.Logger
}

func NewScheduler(interval time.Duration, logger *slog.Logger, targets ...Refresher) *Scheduler {
	return &Scheduler{
		targets:  targets,
		interval: interval,
		logger:   logger.With("component", "scheduler"),
	}
}

// Start blocks until ctx is done.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval, "targets", len(s.targets))

	s.refreshAll()

	if s.interval <= 0 {
		<-ctx.Done()
		s.logger.Info("scheduler stopped")
		return ctx.Err()
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.refreshAll()
		}
	}
}

func (s *Scheduler) refreshAll() {
	for _, t := range s.targets {
		t.Refresh()
	}
	s.logger.Debug("refresh dispatched", "targets", len(s.targets))
}
