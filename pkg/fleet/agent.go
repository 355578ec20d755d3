// Package fleet contains the agent runtime: the agent contract, the registry
// that wires agents to the event bus, the periodic scheduler, and the
// merge-request readiness tracker shared by the review workflow.
package fleet

import (
	"context"
	"sync"
	"time"

	"github.com/shipfleet/shipfleet/pkg/bus"
)

// Agent is the unit of work. Implementations hold their own dependencies
// (services, adapters, LLM) and publish derived events from Handle.
type Agent interface {
	// Name is the stable identifier, unique within the registry.
	Name() string
	// Description is human-readable text for the status endpoint.
	Description() string
	// SubscribedKinds lists the event kinds the agent reacts to.
	SubscribedKinds() []bus.Kind
	// Handle performs the agent's effectful reaction. It may block on I/O
	// and may publish further events.
	Handle(ctx context.Context, e *bus.Event) error
}

// Auditor receives failed handle outcomes so the persisted audit trail
// can mark the triggering event as errored.
type Auditor interface {
	RecordError(ctx context.Context, eventID, agentName, message string, processingMS float64)
}

// Status is the lifecycle state of a registered agent.
type Status string

const (
	StatusIdle     Status = "idle"
	StatusRunning  Status = "running"
	StatusError    Status = "error"
	StatusDisabled Status = "disabled"
)

// Metrics is a point-in-time snapshot of an agent's counters. The average is
// a running mean over successful handles only.
type Metrics struct {
	EventsProcessed int64     `json:"events_processed"`
	Errors          int64     `json:"errors"`
	LastRun         time.Time `json:"last_run"`
	AvgProcessingMS float64   `json:"avg_processing_ms"`
}

// managed wraps a registered agent with the uniform dispatch envelope:
// enable/disable gating, status transitions, metrics, and agent_error
// emission. The mutex guards only the bookkeeping fields; it is never held
// across the agent's Handle call.
type managed struct {
	agent Agent
	subs  []*bus.Subscription

	mu       sync.Mutex
	enabled  bool
	status   Status
	metrics  Metrics
	totalMS  float64
	lastErr  string
}

func newManaged(a Agent) *managed {
	return &managed{agent: a, enabled: true, status: StatusIdle}
}

// handle is the bus-facing wrapper around the agent's Handle.
func (m *managed) handle(b *bus.Bus, auditor func() Auditor) bus.Handler {
	return func(ctx context.Context, e *bus.Event) error {
		m.mu.Lock()
		if !m.enabled {
			m.mu.Unlock()
			return nil
		}
		m.status = StatusRunning
		m.mu.Unlock()

		start := time.Now()
		err := m.agent.Handle(ctx, e)
		elapsedMS := float64(time.Since(start)) / float64(time.Millisecond)

		m.mu.Lock()
		if err != nil {
			m.metrics.Errors++
			m.status = StatusError
			m.lastErr = err.Error()
		} else {
			m.metrics.EventsProcessed++
			m.totalMS += elapsedMS
			m.metrics.AvgProcessingMS = m.totalMS / float64(m.metrics.EventsProcessed)
			m.metrics.LastRun = time.Now()
			if m.enabled {
				m.status = StatusIdle
			}
		}
		m.mu.Unlock()

		if err != nil {
			if aud := auditor(); aud != nil {
				aud.RecordError(ctx, e.ID, m.agent.Name(), err.Error(), elapsedMS)
			}
			// Surface the failure on the bus so no agent error is silent.
			// The error event carries the input's causal chain.
			errEvt := e.Derive(bus.KindAgentError, m.agent.Name(), bus.Payload{
				"agent_name":        m.agent.Name(),
				"source_event_kind": string(e.Kind),
				"message":           err.Error(),
				"processing_ms":     elapsedMS,
			})
			if pubErr := b.Publish(errEvt); pubErr != nil && pubErr != bus.ErrBusStopped {
				return pubErr
			}
			return err
		}
		return nil
	}
}

func (m *managed) setEnabled(enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.enabled = enabled
	if enabled {
		if m.status == StatusDisabled {
			m.status = StatusIdle
		}
	} else {
		m.status = StatusDisabled
	}
}

func (m *managed) snapshot() AgentStatus {
	m.mu.Lock()
	defer m.mu.Unlock()

	kinds := m.agent.SubscribedKinds()
	wire := make([]string, len(kinds))
	for i, k := range kinds {
		wire[i] = string(k)
	}
	return AgentStatus{
		Name:        m.agent.Name(),
		Description: m.agent.Description(),
		Subscribed:  wire,
		Enabled:     m.enabled,
		Status:      m.status,
		Metrics:     m.metrics,
		LastError:   m.lastErr,
	}
}

// AgentStatus is one row of the fleet status report.
type AgentStatus struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Subscribed  []string `json:"subscribed_events"`
	Enabled     bool     `json:"enabled"`
	Status      Status   `json:"status"`
	Metrics     Metrics  `json:"metrics"`
	LastError   string   `json:"last_error,omitempty"`
}
