package bot

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// pollJobName identifies the single scheduled job.
const pollJobName = "homework-poll"

// Scheduler drives the homework poll on a fixed period using gocron.
// The job runs in singleton reschedule mode, so an iteration that outlives
// the period is never overlapped by the next one.
type Scheduler struct {
	scheduler gocron.Scheduler
	logger    *slog.Logger
	period    time.Duration
	tick      func(ctx context.Context)
	mu        sync.Mutex
	running   bool
}

// NewScheduler creates a scheduler that invokes tick every period.
func NewScheduler(logger *slog.Logger, period time.Duration, tick func(ctx context.Context)) (*Scheduler, error) {
	if logger == nil {
		logger = slog.Default()
	}
	log := logger.With("component", "scheduler")

	s, err := gocron.NewScheduler()
	if err != nil {
		log.Error("Failed to create gocron scheduler", "error", err)
		return nil, fmt.Errorf("failed to create gocron scheduler: %w", err)
	}

	return &Scheduler{
		scheduler: s,
		logger:    log,
		period:    period,
		tick:      tick,
	}, nil
}

// Start schedules the poll job and starts the scheduler. The first run
// happens immediately; ctx is passed through to every iteration.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return fmt.Errorf("scheduler is already running")
	}

	_, err := s.scheduler.NewJob(
		gocron.DurationJob(s.period),
		gocron.NewTask(
			func(ctx context.Context) {
				s.logger.Info("Running scheduled poll", "job", pollJobName)
				startTime := time.Now()
				s.tick(ctx)
				s.logger.Info("Finished scheduled poll", "job", pollJobName, "duration", time.Since(startTime))
			},
			ctx,
		),
		gocron.WithName(pollJobName),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule %s job: %w", pollJobName, err)
	}

	s.scheduler.Start()
	s.running = true
	s.logger.Info("Scheduler started", "job", pollJobName, "period", s.period)

	return nil
}

// Stop gracefully stops the scheduler, waiting for a running poll to finish.
func (s *Scheduler) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return nil
	}

	err := s.scheduler.Shutdown()
	if err != nil {
		s.logger.Error("Error during scheduler shutdown", "error", err)
	} else {
		s.logger.Info("Scheduler stopped gracefully")
	}

	s.running = false
	return err
}
