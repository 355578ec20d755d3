package fleet

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/shipfleet/shipfleet/pkg/bus"
)

// Registry owns the set of agent instances and their bus subscriptions.
// Agents are process-lived singletons: registered once at startup,
// unsubscribed at shutdown. Disabled agents stay subscribed and bail out in
// the dispatch wrapper, which keeps enable cheap and race-free.
type Registry struct {
	bus *bus.Bus

	mu      sync.Mutex
	agents  map[string]*managed
	order   []string
	auditor Auditor
}

// NewRegistry creates a registry bound to the given bus.
func NewRegistry(b *bus.Bus) *Registry {
	return &Registry{
		bus:    b,
		agents: make(map[string]*managed),
	}
}

// Register subscribes the agent to the bus for each of its declared kinds.
// Registering the same name twice is a no-op, so no duplicate dispatches can
// occur.
func (r *Registry) Register(a Agent) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.agents[a.Name()]; exists {
		slog.Warn("Agent already registered, ignoring", "agent", a.Name())
		return
	}

	m := newManaged(a)
	handler := m.handle(r.bus, r.auditorRef)
	for _, kind := range a.SubscribedKinds() {
		m.subs = append(m.subs, r.bus.Subscribe(kind, handler))
	}
	r.agents[a.Name()] = m
	r.order = append(r.order, a.Name())

	slog.Info("Agent registered",
		"agent", a.Name(),
		"subscriptions", len(m.subs))
}

// SetAuditor installs the audit sink notified on handler failures. May be
// called before or after agents register.
func (r *Registry) SetAuditor(a Auditor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.auditor = a
}

func (r *Registry) auditorRef() Auditor {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.auditor
}

// StopAll unsubscribes every agent and stops the bus.
func (r *Registry) StopAll() {
	r.mu.Lock()
	for _, name := range r.order {
		for _, sub := range r.agents[name].subs {
			r.bus.Unsubscribe(sub)
		}
	}
	r.mu.Unlock()

	r.bus.Stop()
	slog.Info("Agent registry stopped", "agents", len(r.order))
}

// Enable re-enables a disabled agent.
func (r *Registry) Enable(name string) error {
	return r.setEnabled(name, true)
}

// Disable makes the agent ignore dispatches until re-enabled.
func (r *Registry) Disable(name string) error {
	return r.setEnabled(name, false)
}

func (r *Registry) setEnabled(name string, enabled bool) error {
	r.mu.Lock()
	m, ok := r.agents[name]
	r.mu.Unlock()
	if !ok {
		return fmt.Errorf("agent %q not registered", name)
	}
	m.setEnabled(enabled)
	slog.Info("Agent toggled", "agent", name, "enabled", enabled)
	return nil
}

// Status returns a point-in-time snapshot of every agent in registration
// order.
func (r *Registry) Status() []AgentStatus {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]AgentStatus, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.agents[name].snapshot())
	}
	return out
}

// Names returns the registered agent names in registration order.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.order...)
}

// FirstKind returns the agent's first subscribed kind. The manual-trigger
// endpoint publishes an event of this kind.
func (r *Registry) FirstKind(name string) (bus.Kind, error) {
	r.mu.Lock()
	m, ok := r.agents[name]
	r.mu.Unlock()
	if !ok {
		return "", fmt.Errorf("agent %q not registered", name)
	}
	kinds := m.agent.SubscribedKinds()
	if len(kinds) == 0 {
		return "", fmt.Errorf("agent %q has no subscriptions", name)
	}
	return kinds[0], nil
}
