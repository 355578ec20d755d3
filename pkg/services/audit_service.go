package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shipfleet/shipfleet/ent"
	"github.com/shipfleet/shipfleet/ent/agentevent"
	"github.com/shipfleet/shipfleet/pkg/bus"
)

// AuditService persists one row per published bus event, independent of
// the bus's in-memory history. Rows start as processed; an agent failure
// flips the row to error with the failure details.
type AuditService struct {
	client *ent.Client
	logger *slog.Logger
}

// NewAuditService creates a new AuditService.
func NewAuditService(client *ent.Client, logger *slog.Logger) *AuditService {
	return &AuditService{
		client: client,
		logger: logger.With("component", "audit"),
	}
}

// Attach subscribes the recorder to every event kind. Insert failures are
// logged, never propagated: audit must not break dispatch.
func (s *AuditService) Attach(b *bus.Bus) {
	for _, kind := range bus.AllKinds() {
		b.Subscribe(kind, func(ctx context.Context, e *bus.Event) error {
			if err := s.RecordProcessed(ctx, e); err != nil {
				s.logger.Error("Failed to persist event",
					"event_id", e.ID,
					"kind", string(e.Kind),
					"error", err)
			}
			return nil
		})
	}
}

// RecordProcessed inserts the audit row for a freshly published event.
func (s *AuditService) RecordProcessed(ctx context.Context, e *bus.Event) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	create := s.client.AgentEvent.Create().
		SetEventID(e.ID).
		SetKind(string(e.Kind)).
		SetSource(e.Source).
		SetProjectID(e.Project).
		SetCorrelationID(e.CorrelationID).
		SetCreatedAt(e.Timestamp)
	if e.Payload != nil {
		create.SetData(e.Payload)
	}

	if err := create.Exec(writeCtx); err != nil {
		return fmt.Errorf("failed to insert audit row: %w", err)
	}
	return nil
}

// RecordError marks the audit row for eventID as failed. Called by the
// fleet when a handler returns an error; the agent_error event itself is
// published separately and gets its own row.
func (s *AuditService) RecordError(ctx context.Context, eventID, agentName, message string, processingMS float64) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.AgentEvent.Update().
		Where(agentevent.EventIDEQ(eventID)).
		SetStatus(agentevent.StatusError).
		SetErrorMessage(fmt.Sprintf("%s: %s", agentName, message)).
		SetProcessingMs(processingMS).
		Exec(writeCtx)
	if err != nil {
		s.logger.Error("Failed to mark event as errored",
			"event_id", eventID,
			"agent", agentName,
			"error", err)
	}
}

// AuditRecord is one persisted event, shaped for the operator API.
type AuditRecord struct {
	EventID       string         `json:"event_id"`
	Kind          string         `json:"kind"`
	Source        string         `json:"source"`
	Project       int            `json:"project_id"`
	CorrelationID string         `json:"correlation_id,omitempty"`
	Data          map[string]any `json:"data,omitempty"`
	Status        string         `json:"status"`
	ErrorMessage  string         `json:"error_message,omitempty"`
	ProcessingMS  float64        `json:"processing_ms,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
}

// Recent returns the newest rows, optionally filtered by project and
// kind. limit caps the result (default 100, max 500).
func (s *AuditService) Recent(ctx context.Context, project int, kind string, limit int) ([]*AuditRecord, error) {
	if limit <= 0 {
		limit = 100
	}
	if limit > 500 {
		limit = 500
	}

	query := s.client.AgentEvent.Query()
	if project != 0 {
		query.Where(agentevent.ProjectIDEQ(project))
	}
	if kind != "" {
		query.Where(agentevent.KindEQ(kind))
	}

	rows, err := query.
		Order(ent.Desc(agentevent.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit records: %w", err)
	}

	out := make([]*AuditRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, &AuditRecord{
			EventID:       row.EventID,
			Kind:          row.Kind,
			Source:        row.Source,
			Project:       row.ProjectID,
			CorrelationID: row.CorrelationID,
			Data:          row.Data,
			Status:        string(row.Status),
			ErrorMessage:  row.ErrorMessage,
			ProcessingMS:  row.ProcessingMs,
			CreatedAt:     row.CreatedAt,
		})
	}
	return out, nil
}

// PurgeOlderThan deletes audit rows older than the retention window and
// returns the number removed. Runs as a scheduled job.
func (s *AuditService) PurgeOlderThan(ctx context.Context, retention time.Duration) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cutoff := time.Now().Add(-retention)
	n, err := s.client.AgentEvent.Delete().
		Where(agentevent.CreatedAtLT(cutoff)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge audit rows: %w", err)
	}
	if n > 0 {
		s.logger.Info("Purged old audit rows", "deleted", n, "cutoff", cutoff)
	}
	return n, nil
}
