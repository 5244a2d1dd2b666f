package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/AnmolBudhewar8995/watchtime-booster/shared/config"
	"github.com/AnmolBudhewar8995/watchtime-booster/shared/monitoring"

	"github.com/robfig/cron/v3"
)

// Metrics is the summary a job reports after a successful run.
type Metrics interface {
	// GetSummary returns a human-readable summary of the run
	GetSummary() string
}

// JobEvents provides callbacks for monitoring job execution.
type JobEvents struct {
	OnSuccess         func(metrics Metrics, duration time.Duration)
	OnPartialFailure  func(err error, duration time.Duration)
	OnCriticalFailure func(err error, duration time.Duration)
}

// Job is a schedulable unit of work, such as the digest agent.
type Job interface {
	Name() string
	Initialize() error
	RunOnce(ctx context.Context, events *JobEvents) error
}

// Scheduler runs a job on a cron schedule with overlap protection.
type Scheduler struct {
	config  *config.Config
	monitor *monitoring.Monitor
	job     Job
	cron    *cron.Cron
}

func New(cfg *config.Config, job Job) *Scheduler {
	return &Scheduler{
		config:  cfg,
		monitor: monitoring.NewMonitor(),
		job:     job,
		// Prevent overlapping runs
		cron: cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger))),
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	if err := s.job.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize job: %w", err)
	}

	healthServer := monitoring.NewHealthServer(s.monitor, fmt.Sprintf("%d", s.config.Monitoring.HealthPort))
	healthServer.Start()

	_, err := s.cron.AddFunc(s.config.Schedule, func() {
		if err := s.RunOnce(ctx); err != nil {
			log.Printf("Error running scheduled job for %s: %v", s.job.Name(), err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to add cron job: %w", err)
	}

	log.Printf("Scheduler started for %s with schedule: %s", s.job.Name(), s.config.Schedule)
	s.cron.Start()

	<-ctx.Done()
	log.Printf("Scheduler stopped for %s", s.job.Name())
	s.cron.Stop()
	return ctx.Err()
}

func (s *Scheduler) RunOnce(ctx context.Context) error {
	startTime := time.Now()
	jobName := s.job.Name()

	log.Printf("Starting %s run...", jobName)

	events := &JobEvents{
		OnSuccess: func(metrics Metrics, duration time.Duration) {
			s.monitor.RecordSuccess(metrics.GetSummary(), duration)
		},
		OnPartialFailure: func(err error, duration time.Duration) {
			s.monitor.RecordPartialFailure(fmt.Errorf("%s partial failure: %w", jobName, err), duration)
		},
		OnCriticalFailure: func(err error, duration time.Duration) {
			s.monitor.RecordCriticalFailure(fmt.Errorf("%s critical failure: %w", jobName, err), duration)
		},
	}

	if err := s.job.RunOnce(ctx, events); err != nil {
		duration := time.Since(startTime)
		s.monitor.RecordCriticalFailure(fmt.Errorf("%s failed: %w", jobName, err), duration)
		return fmt.Errorf("%s run failed: %w", jobName, err)
	}

	return nil
}
