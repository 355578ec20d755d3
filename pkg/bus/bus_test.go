package bus

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBus(t *testing.T, opts Options) *Bus {
	t.Helper()
	b := New(opts)
	b.Start(context.Background())
	t.Cleanup(b.Stop)
	return b
}

// waitFor polls until cond holds or the deadline expires.
func waitFor(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal(msg)
}

type recorder struct {
	mu   sync.Mutex
	seen []*Event
}

func (r *recorder) handler(_ context.Context, e *Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen = append(r.seen, e)
	return nil
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.seen)
}

func (r *recorder) ids() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.seen))
	for i, e := range r.seen {
		out[i] = e.ID
	}
	return out
}

func TestPublish_DispatchesToSubscriber(t *testing.T) {
	b := newTestBus(t, Options{})
	rec := &recorder{}
	b.Subscribe(KindPROpened, rec.handler)

	e := NewEvent(KindPROpened, "test", Payload{"mr_iid": 1})
	require.NoError(t, b.Publish(e))

	waitFor(t, func() bool { return rec.count() == 1 }, "event not dispatched")
	assert.Equal(t, e.ID, rec.ids()[0])
}

func TestPublish_NoSubscribers_StillRecorded(t *testing.T) {
	b := newTestBus(t, Options{})

	e := NewEvent(KindCoverageReport, "test", nil)
	require.NoError(t, b.Publish(e))

	history := b.History(10, KindCoverageReport, 0)
	require.Len(t, history, 1)
	assert.Equal(t, e.ID, history[0].ID)
}

func TestDispatch_FIFOPerKind(t *testing.T) {
	b := newTestBus(t, Options{Workers: 1})
	rec := &recorder{}
	b.Subscribe(KindCodePushed, rec.handler)

	var want []string
	for i := 0; i < 20; i++ {
		e := NewEvent(KindCodePushed, "test", Payload{"seq": i})
		want = append(want, e.ID)
		require.NoError(t, b.Publish(e))
	}

	waitFor(t, func() bool { return rec.count() == 20 }, "events not dispatched")
	assert.Equal(t, want, rec.ids())
}

func TestDispatch_HandlerFailureIsolated(t *testing.T) {
	b := newTestBus(t, Options{})
	rec := &recorder{}
	b.Subscribe(KindPROpened, func(context.Context, *Event) error {
		return errors.New("boom")
	})
	b.Subscribe(KindPROpened, rec.handler)

	require.NoError(t, b.Publish(NewEvent(KindPROpened, "test", nil)))
	require.NoError(t, b.Publish(NewEvent(KindPROpened, "test", nil)))

	waitFor(t, func() bool { return rec.count() == 2 }, "failing handler stalled the others")
}

func TestPublish_ReentrantFromHandler(t *testing.T) {
	b := newTestBus(t, Options{})
	rec := &recorder{}
	b.Subscribe(KindTicketCreated, func(_ context.Context, e *Event) error {
		return b.Publish(e.Derive(KindRequirementsAnalyzed, "chained", nil))
	})
	b.Subscribe(KindRequirementsAnalyzed, rec.handler)

	root := NewEvent(KindTicketCreated, "test", nil)
	require.NoError(t, b.Publish(root))

	waitFor(t, func() bool { return rec.count() == 1 }, "chained event not dispatched")
	rec.mu.Lock()
	defer rec.mu.Unlock()
	assert.Equal(t, root.ID, rec.seen[0].CorrelationID)
}

func TestSlowSubscriberDoesNotStallOtherKinds(t *testing.T) {
	b := newTestBus(t, Options{Workers: 4})
	release := make(chan struct{})
	b.Subscribe(KindCodePushed, func(context.Context, *Event) error {
		<-release
		return nil
	})
	rec := &recorder{}
	b.Subscribe(KindPROpened, rec.handler)

	require.NoError(t, b.Publish(NewEvent(KindCodePushed, "test", nil)))
	require.NoError(t, b.Publish(NewEvent(KindPROpened, "test", nil)))

	waitFor(t, func() bool { return rec.count() == 1 }, "slow subscriber stalled other kind")
	close(release)
}

func TestUnsubscribe(t *testing.T) {
	b := newTestBus(t, Options{})
	rec := &recorder{}
	sub := b.Subscribe(KindPROpened, rec.handler)
	require.Equal(t, 1, b.SubscriberCount(KindPROpened))

	b.Unsubscribe(sub)
	assert.Zero(t, b.SubscriberCount(KindPROpened))

	// removing again is a no-op
	b.Unsubscribe(sub)
	assert.Zero(t, b.SubscriberCount(KindPROpened))

	require.NoError(t, b.Publish(NewEvent(KindPROpened, "test", nil)))
	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, rec.count())
}

func TestSubscribeDuringDispatch(t *testing.T) {
	b := newTestBus(t, Options{})
	rec := &recorder{}
	b.Subscribe(KindPROpened, func(context.Context, *Event) error {
		b.Subscribe(KindPROpened, rec.handler)
		return nil
	})

	require.NoError(t, b.Publish(NewEvent(KindPROpened, "test", nil)))
	waitFor(t, func() bool { return b.SubscriberCount(KindPROpened) == 2 }, "subscribe during dispatch failed")

	require.NoError(t, b.Publish(NewEvent(KindPROpened, "test", nil)))
	waitFor(t, func() bool { return rec.count() == 1 }, "late subscriber not dispatched")
}

func TestHistory_RingEviction(t *testing.T) {
	b := newTestBus(t, Options{HistorySize: 5})

	var ids []string
	for i := 0; i < 8; i++ {
		e := NewEvent(KindMetricsCollected, "test", Payload{"seq": i})
		ids = append(ids, e.ID)
		require.NoError(t, b.Publish(e))
	}

	history := b.History(100, "", 0)
	require.Len(t, history, 5)
	// newest last, oldest three evicted
	got := make([]string, len(history))
	for i, e := range history {
		got[i] = e.ID
	}
	assert.Equal(t, ids[3:], got)
}

func TestHistory_Filters(t *testing.T) {
	b := newTestBus(t, Options{})

	for i := 0; i < 3; i++ {
		e := NewEvent(KindPROpened, "test", nil)
		e.Project = 1
		require.NoError(t, b.Publish(e))
	}
	other := NewEvent(KindCodePushed, "test", nil)
	other.Project = 2
	require.NoError(t, b.Publish(other))

	assert.Len(t, b.History(10, KindPROpened, 0), 3)
	assert.Len(t, b.History(10, "", 2), 1)
	assert.Len(t, b.History(2, KindPROpened, 1), 2)
	assert.Empty(t, b.History(10, KindCodePushed, 1))
}

func TestPublishAfterStop(t *testing.T) {
	b := New(Options{})
	b.Start(context.Background())

	accepted := NewEvent(KindPROpened, "test", nil)
	require.NoError(t, b.Publish(accepted))

	b.Stop()
	assert.False(t, b.Running())

	err := b.Publish(NewEvent(KindPROpened, "test", nil))
	assert.ErrorIs(t, err, ErrBusStopped)

	// events accepted before stop stay visible
	history := b.History(10, KindPROpened, 0)
	require.Len(t, history, 1)
	assert.Equal(t, accepted.ID, history[0].ID)
}

func TestPublish_TimeoutWhenSaturated(t *testing.T) {
	b := newTestBus(t, Options{
		Workers:        1,
		QueueSize:      1,
		PublishTimeout: 50 * time.Millisecond,
	})
	release := make(chan struct{})
	defer close(release)
	b.Subscribe(KindCodePushed, func(context.Context, *Event) error {
		<-release
		return nil
	})

	// Saturate: one event blocks the worker, the queue and dispatch
	// hand-off absorb a couple more, then publishes must time out.
	var timedOut bool
	for i := 0; i < 10; i++ {
		if err := b.Publish(NewEvent(KindCodePushed, "test", nil)); err != nil {
			require.ErrorIs(t, err, ErrPublishTimeout)
			timedOut = true
			break
		}
	}
	assert.True(t, timedOut, "expected a publish to time out under saturation")
}

func TestConcurrentPublish(t *testing.T) {
	b := newTestBus(t, Options{Workers: 8, QueueSize: 1024})
	rec := &recorder{}
	b.Subscribe(KindMetricsCollected, rec.handler)

	var wg sync.WaitGroup
	for p := 0; p < 8; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < 25; i++ {
				e := NewEvent(KindMetricsCollected, fmt.Sprintf("producer-%d", p), nil)
				if err := b.Publish(e); err != nil {
					t.Error(err)
					return
				}
			}
		}(p)
	}
	wg.Wait()

	waitFor(t, func() bool { return rec.count() == 200 }, "not all events dispatched")
}
