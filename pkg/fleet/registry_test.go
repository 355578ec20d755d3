package fleet

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shipfleet/shipfleet/pkg/bus"
)

type fakeAgent struct {
	name  string
	kinds []bus.Kind

	mu      sync.Mutex
	handled []*bus.Event
	fail    error
}

func (a *fakeAgent) Name() string                { return a.name }
func (a *fakeAgent) Description() string         { return "test agent" }
func (a *fakeAgent) SubscribedKinds() []bus.Kind { return a.kinds }

func (a *fakeAgent) Handle(_ context.Context, e *bus.Event) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.handled = append(a.handled, e)
	return a.fail
}

func (a *fakeAgent) count() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.handled)
}

type fakeAuditor struct {
	mu      sync.Mutex
	errored []string
}

func (a *fakeAuditor) RecordError(_ context.Context, eventID, agentName, message string, _ float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.errored = append(a.errored, agentName+": "+message)
}

func newTestFleet(t *testing.T) (*bus.Bus, *Registry) {
	t.Helper()
	b := bus.New(bus.Options{})
	b.Start(context.Background())
	r := NewRegistry(b)
	t.Cleanup(r.StopAll)
	return b, r
}

func await(t *testing.T, cond func() bool, msg string) {
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

func TestRegistry_DispatchAndMetrics(t *testing.T) {
	b, r := newTestFleet(t)
	agent := &fakeAgent{name: "security_compliance", kinds: []bus.Kind{bus.KindPROpened}}
	r.Register(agent)

	require.NoError(t, b.Publish(bus.NewEvent(bus.KindPROpened, "test", nil)))
	require.NoError(t, b.Publish(bus.NewEvent(bus.KindPROpened, "test", nil)))

	await(t, func() bool { return agent.count() == 2 }, "agent never handled events")
	await(t, func() bool {
		s := r.Status()[0]
		return s.Metrics.EventsProcessed == 2
	}, "metrics not updated")

	status := r.Status()[0]
	assert.Equal(t, "security_compliance", status.Name)
	assert.Equal(t, StatusIdle, status.Status)
	assert.True(t, status.Enabled)
	assert.Zero(t, status.Metrics.Errors)
	assert.False(t, status.Metrics.LastRun.IsZero())
	assert.GreaterOrEqual(t, status.Metrics.AvgProcessingMS, 0.0)
}

func TestRegistry_DuplicateNameIgnored(t *testing.T) {
	b, r := newTestFleet(t)
	first := &fakeAgent{name: "review_coordination", kinds: []bus.Kind{bus.KindPRReadyForReview}}
	second := &fakeAgent{name: "review_coordination", kinds: []bus.Kind{bus.KindPRReadyForReview}}
	r.Register(first)
	r.Register(second)

	assert.Equal(t, []string{"review_coordination"}, r.Names())

	require.NoError(t, b.Publish(bus.NewEvent(bus.KindPRReadyForReview, "test", nil)))
	await(t, func() bool { return first.count() == 1 }, "first registration not dispatched")
	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, second.count(), "duplicate registration must not subscribe")
}

func TestRegistry_DisableSkipsDispatch(t *testing.T) {
	b, r := newTestFleet(t)
	agent := &fakeAgent{name: "test_intelligence", kinds: []bus.Kind{bus.KindPROpened}}
	r.Register(agent)

	require.NoError(t, r.Disable("test_intelligence"))
	assert.Equal(t, StatusDisabled, r.Status()[0].Status)

	require.NoError(t, b.Publish(bus.NewEvent(bus.KindPROpened, "test", nil)))
	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, agent.count())
	assert.Zero(t, r.Status()[0].Metrics.EventsProcessed)

	require.NoError(t, r.Enable("test_intelligence"))
	assert.Equal(t, StatusIdle, r.Status()[0].Status)

	require.NoError(t, b.Publish(bus.NewEvent(bus.KindPROpened, "test", nil)))
	await(t, func() bool { return agent.count() == 1 }, "re-enabled agent not dispatched")
}

func TestRegistry_ToggleUnknownAgent(t *testing.T) {
	_, r := newTestFleet(t)
	assert.Error(t, r.Enable("nope"))
	assert.Error(t, r.Disable("nope"))
}

func TestRegistry_HandlerErrorEmitsAgentError(t *testing.T) {
	b, r := newTestFleet(t)
	auditor := &fakeAuditor{}
	r.SetAuditor(auditor)

	agent := &fakeAgent{
		name:  "deployment_orchestrator",
		kinds: []bus.Kind{bus.KindMergeToMain},
		fail:  errors.New("pipeline lookup failed"),
	}
	r.Register(agent)

	trigger := bus.NewEvent(bus.KindMergeToMain, "test", nil)
	trigger.Project = 3
	require.NoError(t, b.Publish(trigger))

	await(t, func() bool {
		return len(b.History(10, bus.KindAgentError, 0)) == 1
	}, "agent_error event not published")

	errEvt := b.History(10, bus.KindAgentError, 0)[0]
	assert.Equal(t, "deployment_orchestrator", errEvt.Source)
	assert.Equal(t, trigger.ID, errEvt.CorrelationID)
	assert.Equal(t, 3, errEvt.Project)
	assert.Equal(t, "deployment_orchestrator", errEvt.Payload.String("agent_name"))
	assert.Equal(t, "merge_to_main", errEvt.Payload.String("source_event_kind"))
	assert.Equal(t, "pipeline lookup failed", errEvt.Payload.String("message"))

	status := r.Status()[0]
	assert.Equal(t, StatusError, status.Status)
	assert.Equal(t, int64(1), status.Metrics.Errors)
	assert.Zero(t, status.Metrics.EventsProcessed)
	assert.Equal(t, "pipeline lookup failed", status.LastError)

	auditor.mu.Lock()
	defer auditor.mu.Unlock()
	require.Len(t, auditor.errored, 1)
	assert.Equal(t, "deployment_orchestrator: pipeline lookup failed", auditor.errored[0])
}

func TestRegistry_AverageOverSuccessesOnly(t *testing.T) {
	b, r := newTestFleet(t)
	agent := &fakeAgent{name: "product_intelligence", kinds: []bus.Kind{bus.KindTicketCreated}}
	r.Register(agent)

	require.NoError(t, b.Publish(bus.NewEvent(bus.KindTicketCreated, "test", nil)))
	await(t, func() bool { return r.Status()[0].Metrics.EventsProcessed == 1 }, "success not counted")

	agent.mu.Lock()
	agent.fail = errors.New("boom")
	agent.mu.Unlock()
	require.NoError(t, b.Publish(bus.NewEvent(bus.KindTicketCreated, "test", nil)))
	await(t, func() bool { return r.Status()[0].Metrics.Errors == 1 }, "error not counted")

	status := r.Status()[0]
	assert.Equal(t, int64(1), status.Metrics.EventsProcessed)
	assert.GreaterOrEqual(t, status.Metrics.AvgProcessingMS, 0.0)
}

func TestRegistry_FirstKind(t *testing.T) {
	_, r := newTestFleet(t)
	r.Register(&fakeAgent{
		name:  "analytics_insights",
		kinds: []bus.Kind{bus.KindMetricsCollected, bus.KindDeployComplete},
	})

	kind, err := r.FirstKind("analytics_insights")
	require.NoError(t, err)
	assert.Equal(t, bus.KindMetricsCollected, kind)

	_, err = r.FirstKind("missing")
	assert.Error(t, err)
}

func TestRegistry_StopAll(t *testing.T) {
	b := bus.New(bus.Options{})
	b.Start(context.Background())
	r := NewRegistry(b)
	agent := &fakeAgent{name: "chat_notifier", kinds: []bus.Kind{bus.KindChatNotification}}
	r.Register(agent)

	r.StopAll()

	assert.False(t, b.Running())
	assert.Zero(t, b.SubscriberCount(bus.KindChatNotification))
	assert.ErrorIs(t, b.Publish(bus.NewEvent(bus.KindChatNotification, "test", nil)), bus.ErrBusStopped)
}
