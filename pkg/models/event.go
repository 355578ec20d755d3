// Package models holds the wire shapes of the operator API: event log
// entries, fleet status, and masked connection views. Handlers build these
// from the runtime types; nothing here touches the database.
package models

import (
	"time"

	"github.com/shipfleet/shipfleet/pkg/bus"
)

// Event is one entry of the event log as served to operators.
type Event struct {
	EventID       string         `json:"event_id"`
	Kind          string         `json:"kind"`
	Source        string         `json:"source"`
	Project       int            `json:"project_id"`
	CorrelationID string         `json:"correlation_id,omitempty"`
	Data          map[string]any `json:"data,omitempty"`
	Timestamp     time.Time      `json:"timestamp"`
}

// EventFromBus converts an in-memory history entry to its wire shape.
func EventFromBus(e bus.Event) *Event {
	return &Event{
		EventID:       e.ID,
		Kind:          string(e.Kind),
		Source:        e.Source,
		Project:       e.Project,
		CorrelationID: e.CorrelationID,
		Data:          e.Payload,
		Timestamp:     e.Timestamp,
	}
}
