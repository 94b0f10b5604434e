package service

import (
	"context"
	"log/slog"
	"time"
)

// Sweeper drops stale state and reports how many entries it removed.
type Sweeper interface {
	Sweep(ctx context.Context) int
}

// HousekeepingService periodically sweeps in-process state such as the
// login attempt counters so it does not grow without bound.
type HousekeepingService struct {
	Sweepers map[string]Sweeper
	Logger   *slog.Logger
	Interval time.Duration

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a housekeeping service. A non-positive
// interval defaults to 5 minutes.
func NewHousekeepingService(logger *slog.Logger, interval time.Duration, sweepers map[string]Sweeper) *HousekeepingService {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	return &HousekeepingService{
		Sweepers: sweepers,
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start runs the worker in the background. Call Stop to shut it down.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop blocks until an in-progress sweep has finished.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.RunOnce(context.Background())
		case <-s.stopCh:
			return
		}
	}
}

// RunOnce sweeps every registered Sweeper once and returns the total removed.
func (s *HousekeepingService) RunOnce(ctx context.Context) int {
	total := 0
	for name, sw := range s.Sweepers {
		n := sw.Sweep(ctx)
		s.Logger.Debug("swept", "target", name, "removed", n)
		total += n
	}
	if total > 0 {
		s.Logger.Info("housekeeping completed", "removed", total)
	}
	return total
}
