package bus

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

var (
	// ErrBusStopped is returned by Publish after Stop.
	ErrBusStopped = errors.New("event bus is stopped")

	// ErrPublishTimeout is returned when the dispatch queue stays saturated
	// past the publish timeout. The publication may be retried.
	ErrPublishTimeout = errors.New("event bus queue saturated: publish timed out")
)

// Handler consumes a dispatched event. The returned error is logged by the
// bus; it never affects other handlers or subsequent events.
type Handler func(ctx context.Context, e *Event) error

// Subscription identifies one registered handler so it can be removed later.
type Subscription struct {
	id   uint64
	kind Kind
	fn   Handler
}

// Kind returns the event kind the subscription is bound to.
func (s *Subscription) Kind() Kind { return s.kind }

// Options tunes a Bus. Zero values select the defaults.
type Options struct {
	// HistorySize is the ring-buffer capacity (default 1000).
	HistorySize int
	// Workers is the dispatch pool size (default 32; callers size it as
	// max(32, 4x agent count)).
	Workers int
	// PublishTimeout bounds how long Publish blocks on a saturated queue
	// (default 5s).
	PublishTimeout time.Duration
	// QueueSize is the pending-event queue capacity (default 256).
	QueueSize int
}

func (o Options) withDefaults() Options {
	if o.HistorySize <= 0 {
		o.HistorySize = 1000
	}
	if o.Workers <= 0 {
		o.Workers = 32
	}
	if o.PublishTimeout <= 0 {
		o.PublishTimeout = 5 * time.Second
	}
	if o.QueueSize <= 0 {
		o.QueueSize = 256
	}
	return o
}

// Bus is the in-process publish/subscribe dispatcher. A single dispatch
// goroutine pulls events off a FIFO queue and fans each handler invocation
// out to a bounded worker pool, so one slow subscriber cannot stall delivery
// for other kinds. Publish is re-entrant: handlers may publish further
// events.
type Bus struct {
	opts Options

	mu     sync.Mutex
	subs   map[Kind][]*Subscription
	nextID uint64

	queue   chan *Event
	tasks   chan task
	history *ring
	started bool

	startOnce sync.Once
	stopOnce  sync.Once
	stopCh    chan struct{}
	cancel    context.CancelFunc
	wg        sync.WaitGroup
}

type task struct {
	sub *Subscription
	e   *Event
}

// New creates a stopped bus. Call Start before publishing.
func New(opts Options) *Bus {
	opts = opts.withDefaults()
	return &Bus{
		opts:    opts,
		subs:    make(map[Kind][]*Subscription),
		queue:   make(chan *Event, opts.QueueSize),
		tasks:   make(chan task),
		history: newRing(opts.HistorySize),
		stopCh:  make(chan struct{}),
	}
}

// Subscribe appends handler to the end of kind's handler list and returns a
// token for Unsubscribe. Safe to call while dispatch is running.
func (b *Bus) Subscribe(kind Kind, handler Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	sub := &Subscription{id: b.nextID, kind: kind, fn: handler}
	b.subs[kind] = append(b.subs[kind], sub)
	return sub
}

// Unsubscribe removes the subscription. Removing an already-removed
// subscription is a no-op.
func (b *Bus) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	list := b.subs[sub.kind]
	for i, s := range list {
		if s.id == sub.id {
			b.subs[sub.kind] = append(list[:i:i], list[i+1:]...)
			return
		}
	}
}

// SubscriberCount returns the number of handlers registered for kind.
func (b *Bus) SubscriberCount(kind Kind) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs[kind])
}

// Start launches the dispatch loop and worker pool. Idempotent.
func (b *Bus) Start(ctx context.Context) {
	b.startOnce.Do(func() {
		ctx, b.cancel = context.WithCancel(ctx)

		b.mu.Lock()
		b.started = true
		b.mu.Unlock()

		for i := 0; i < b.opts.Workers; i++ {
			b.wg.Add(1)
			go b.worker(ctx)
		}

		b.wg.Add(1)
		go b.dispatch()

		slog.Info("Event bus started",
			"workers", b.opts.Workers,
			"history_size", b.opts.HistorySize,
			"queue_size", b.opts.QueueSize)
	})
}

// Stop halts dispatch and waits for in-flight handlers to return. New
// publishes fail with ErrBusStopped. Idempotent.
func (b *Bus) Stop() {
	b.stopOnce.Do(func() {
		close(b.stopCh)
		if b.cancel != nil {
			b.cancel()
		}
		b.wg.Wait()
		slog.Info("Event bus stopped")
	})
}

// Publish records e in history and enqueues it for dispatch. It blocks up to
// the publish timeout when the queue is saturated, then fails with
// ErrPublishTimeout. After Stop it fails with ErrBusStopped. An accepted
// event is never silently dropped.
func (b *Bus) Publish(e *Event) error {
	select {
	case <-b.stopCh:
		return ErrBusStopped
	default:
	}

	b.history.add(e)

	timer := time.NewTimer(b.opts.PublishTimeout)
	defer timer.Stop()

	select {
	case b.queue <- e:
		return nil
	case <-b.stopCh:
		return ErrBusStopped
	case <-timer.C:
		return ErrPublishTimeout
	}
}

// Running reports whether Start has been called and Stop has not. The
// fleet status endpoint surfaces this.
func (b *Bus) Running() bool {
	select {
	case <-b.stopCh:
		return false
	default:
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.started
}

// History returns up to limit most recent events, newest last, optionally
// filtered by kind (empty = any) and project (0 = any). The returned events
// are copies.
func (b *Bus) History(limit int, kind Kind, project int) []Event {
	return b.history.snapshot(limit, kind, project)
}

// dispatch pulls events in FIFO order and hands one task per subscriber to
// the pool. The subscription list is copied under the mutex and the mutex is
// released before any handler runs, so subscribing and unsubscribing during
// dispatch is safe.
func (b *Bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case <-b.stopCh:
			return
		case e := <-b.queue:
			b.mu.Lock()
			list := b.subs[e.Kind]
			targets := make([]*Subscription, len(list))
			copy(targets, list)
			b.mu.Unlock()

			for _, sub := range targets {
				select {
				case b.tasks <- task{sub: sub, e: e}:
				case <-b.stopCh:
					return
				}
			}
		}
	}
}

func (b *Bus) worker(ctx context.Context) {
	defer b.wg.Done()

	for {
		select {
		case <-b.stopCh:
			return
		case t := <-b.tasks:
			if err := t.sub.fn(ctx, t.e); err != nil {
				slog.Error("Event handler failed",
					"kind", t.e.Kind,
					"event_id", t.e.ID,
					"error", err)
			}
		}
	}
}

// ring is the bounded event history. Overflow drops the oldest entry.
type ring struct {
	mu   sync.Mutex
	max  int
	evts []*Event
}

func newRing(max int) *ring {
	return &ring{max: max}
}

func (r *ring) add(e *Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.evts = append(r.evts, e)
	if len(r.evts) > r.max {
		r.evts = r.evts[len(r.evts)-r.max:]
	}
}

func (r *ring) snapshot(limit int, kind Kind, project int) []Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Event, 0, limit)
	for i := len(r.evts) - 1; i >= 0 && len(out) < limit; i-- {
		e := r.evts[i]
		if kind != "" && e.Kind != kind {
			continue
		}
		if project != 0 && e.Project != project {
			continue
		}
		out = append(out, e.copy())
	}
	// reverse to newest-last
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}
