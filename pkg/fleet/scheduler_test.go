package fleet

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScheduler_FiresAtInterval(t *testing.T) {
	s := NewScheduler(20 * time.Millisecond)
	var runs atomic.Int64
	s.Add("analytics_report", 50*time.Millisecond, func(context.Context) error {
		runs.Add(1)
		return nil
	})

	s.Start(context.Background())
	defer s.Stop()

	time.Sleep(300 * time.Millisecond)
	got := runs.Load()
	assert.GreaterOrEqual(t, got, int64(2), "job should fire repeatedly")
	assert.LessOrEqual(t, got, int64(7), "job fired far too often")
}

func TestScheduler_FirstFireWaitsOneInterval(t *testing.T) {
	s := NewScheduler(10 * time.Millisecond)
	var runs atomic.Int64
	s.Add("audit_retention", time.Hour, func(context.Context) error {
		runs.Add(1)
		return nil
	})

	s.Start(context.Background())
	defer s.Stop()

	time.Sleep(100 * time.Millisecond)
	assert.Zero(t, runs.Load(), "job must not fire before its interval elapses")
}

func TestScheduler_ErrorDoesNotStopRetries(t *testing.T) {
	s := NewScheduler(10 * time.Millisecond)
	var runs atomic.Int64
	s.Add("flaky", 25*time.Millisecond, func(context.Context) error {
		runs.Add(1)
		return errors.New("transient failure")
	})

	s.Start(context.Background())
	defer s.Stop()

	deadline := time.Now().Add(2 * time.Second)
	for runs.Load() < 2 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	assert.GreaterOrEqual(t, runs.Load(), int64(2), "failing job must keep being retried")
}

func TestScheduler_StopWaitsForLoop(t *testing.T) {
	s := NewScheduler(10 * time.Millisecond)
	var runs atomic.Int64
	s.Add("counter", 15*time.Millisecond, func(context.Context) error {
		runs.Add(1)
		return nil
	})

	s.Start(context.Background())
	time.Sleep(80 * time.Millisecond)
	s.Stop()

	after := runs.Load()
	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, after, runs.Load(), "no fires after Stop returns")

	// stopping twice is harmless
	s.Stop()
}
