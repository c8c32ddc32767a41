// Package scheduler provides cron-based health probing of the allocation solver.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// Pinger is the health check the scheduler drives.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Config holds the scheduler configuration
type Config struct {
	// Schedule is a cron expression for when to probe the solver (e.g., "*/15 * * * *")
	Schedule string
	// Timeout is the maximum duration for a single probe
	Timeout time.Duration
	// Enabled determines if the scheduler should run
	Enabled bool
}

// DefaultConfig returns the default scheduler configuration
func DefaultConfig() Config {
	return Config{
		Schedule: "*/15 * * * *",
		Timeout:  10 * time.Second,
		Enabled:  true,
	}
}

// Scheduler periodically probes the solver so operators see connectivity
// loss before a user's goal request does.
type Scheduler struct {
	cron    *cron.Cron
	pinger  Pinger
	config  Config
	logger  *slog.Logger
	entryID cron.EntryID

	mu      sync.Mutex
	healthy bool
	lastErr error
}

// New creates a new Scheduler instance
func New(cfg Config, pinger Pinger, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Scheduler{
		cron:   cron.New(cron.WithSeconds()),
		pinger: pinger,
		config: cfg,
		logger: logger,
	}
}

// Start begins the scheduler
func (s *Scheduler) Start() error {
	if !s.config.Enabled {
		s.logger.Info("Scheduler is disabled, skipping start")
		return nil
	}

	// Convert standard cron (5 fields) to cron with seconds (6 fields)
	schedule := "0 " + s.config.Schedule

	entryID, err := s.cron.AddFunc(schedule, func() {
		s.runProbe()
	})
	if err != nil {
		return err
	}

	s.entryID = entryID
	s.cron.Start()

	s.logger.Info("Scheduler started",
		slog.String("schedule", s.config.Schedule),
		slog.Duration("timeout", s.config.Timeout),
	)

	return nil
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() context.Context {
	s.logger.Info("Stopping scheduler...")
	return s.cron.Stop()
}

// RunNow triggers an immediate probe (useful for manual triggers)
func (s *Scheduler) RunNow() {
	go s.runProbe()
}

// runProbe executes a single health probe
func (s *Scheduler) runProbe() {
	ctx, cancel := context.WithTimeout(context.Background(), s.config.Timeout)
	defer cancel()

	startTime := time.Now()
	err := s.pinger.Ping(ctx)
	duration := time.Since(startTime)

	s.mu.Lock()
	s.healthy = err == nil
	s.lastErr = err
	s.mu.Unlock()

	if err != nil {
		s.logger.Error("Solver health probe failed",
			slog.String("error", err.Error()),
			slog.Duration("duration", duration),
		)
		return
	}

	s.logger.Info("Solver health probe succeeded",
		slog.Duration("duration", duration),
	)
}

// SolverHealthy reports the result of the most recent probe. Before the
// first probe completes it reports unhealthy with a nil error.
func (s *Scheduler) SolverHealthy() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.healthy, s.lastErr
}

// GetNextRunTime returns the next scheduled run time
func (s *Scheduler) GetNextRunTime() time.Time {
	if s.entryID == 0 {
		return time.Time{}
	}
	entry := s.cron.Entry(s.entryID)
	return entry.Next
}

// IsRunning returns true if the scheduler is running
func (s *Scheduler) IsRunning() bool {
	return s.cron != nil && len(s.cron.Entries()) > 0
}
