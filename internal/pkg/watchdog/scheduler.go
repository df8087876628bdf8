package watchdog

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Job is one periodic advisory check.
type Job struct {
	Name     string
	Interval time.Duration
	Fn       func(ctx context.Context) error
}

// Scheduler runs advisory jobs on fixed intervals. Jobs only observe
// and log; they never mutate sessions or attendance records.
type Scheduler struct {
	jobs   []Job
	logger *slog.Logger
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	mu     sync.Mutex
}

func NewScheduler(logger *slog.Logger) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		jobs:   make([]Job, 0),
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}
}

// AddJob registers a job with the scheduler.
func (s *Scheduler) AddJob(name string, interval time.Duration, fn func(ctx context.Context) error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobs = append(s.jobs, Job{
		Name:     name,
		Interval: interval,
		Fn:       fn,
	})
	s.logger.Info("watchdog job registered", "name", name, "interval", interval)
}

// Start begins running all registered jobs.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, job := range s.jobs {
		s.wg.Add(1)
		go s.runJob(job)
	}

	s.logger.Info("watchdog started", "job_count", len(s.jobs))
}

// Stop gracefully stops all jobs.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping watchdog...")
	s.cancel()
	s.wg.Wait()
	s.logger.Info("watchdog stopped")
}

func (s *Scheduler) runJob(job Job) {
	defer s.wg.Done()

	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	// Run immediately on start
	s.executeJob(job)

	for {
		select {
		case <-s.ctx.Done():
			s.logger.Info("watchdog job stopping", "name", job.Name)
			return
		case <-ticker.C:
			s.executeJob(job)
		}
	}
}

func (s *Scheduler) executeJob(job Job) {
	start := time.Now()

	if err := job.Fn(s.ctx); err != nil {
		s.logger.Error("watchdog job failed", "name", job.Name, "error", err, "duration", time.Since(start))
	} else {
		s.logger.Debug("watchdog job completed", "name", job.Name, "duration", time.Since(start))
	}
}

// RunOnce runs all jobs once (useful for testing)
func (s *Scheduler) RunOnce(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, job := range s.jobs {
		if err := job.Fn(ctx); err != nil {
			s.logger.Error("watchdog job failed", "name", job.Name, "error", err)
		}
	}
}
