package fleet

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// JobFunc is a scheduled unit of work. Errors are logged and the job is
// retried at its next due time.
type JobFunc func(ctx context.Context) error

type job struct {
	name     string
	interval time.Duration
	fn       JobFunc
	lastRun  time.Time
}

// Scheduler runs named jobs at configured intervals. A single tick loop
// wakes every tick resolution and fires any job whose interval has elapsed.
// Jobs run sequentially within a tick, so a job never overlaps with itself.
type Scheduler struct {
	tick time.Duration

	mu   sync.Mutex
	jobs []*job

	cancel context.CancelFunc
	done   chan struct{}
}

// NewScheduler creates a scheduler with the given tick resolution
// (default 30s when non-positive).
func NewScheduler(tick time.Duration) *Scheduler {
	if tick <= 0 {
		tick = 30 * time.Second
	}
	return &Scheduler{tick: tick}
}

// Add registers a job. The first fire happens one interval after Add.
func (s *Scheduler) Add(name string, interval time.Duration, fn JobFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs = append(s.jobs, &job{
		name:     name,
		interval: interval,
		fn:       fn,
		lastRun:  time.Now(),
	})
	slog.Info("Scheduled job registered", "job", name, "interval", interval)
}

// Start launches the tick loop. Safe to call once.
func (s *Scheduler) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Scheduler started", "tick", s.tick)
}

// Stop signals the loop to exit and waits for it. A job already running
// finishes; the next tick honors the stop.
func (s *Scheduler) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Scheduler stopped")
}

func (s *Scheduler) run(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.fireDue(ctx)
		}
	}
}

func (s *Scheduler) fireDue(ctx context.Context) {
	s.mu.Lock()
	due := make([]*job, 0, len(s.jobs))
	now := time.Now()
	for _, j := range s.jobs {
		if now.Sub(j.lastRun) >= j.interval {
			j.lastRun = now
			due = append(due, j)
		}
	}
	s.mu.Unlock()

	for _, j := range due {
		if ctx.Err() != nil {
			return
		}
		start := time.Now()
		if err := j.fn(ctx); err != nil {
			slog.Error("Scheduled job failed", "job", j.name, "error", err)
			continue
		}
		slog.Debug("Scheduled job completed", "job", j.name, "duration", time.Since(start))
	}
}
