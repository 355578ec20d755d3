package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shipfleet/shipfleet/ent"
	"github.com/shipfleet/shipfleet/ent/serviceconnection"
	"github.com/shipfleet/shipfleet/pkg/adapters"
)

// ConnectionService manages service credential bindings. It implements
// adapters.CredentialSource so the adapter resolver can read straight
// from the store.
type ConnectionService struct {
	client *ent.Client
}

// NewConnectionService creates a new ConnectionService.
func NewConnectionService(client *ent.Client) *ConnectionService {
	return &ConnectionService{client: client}
}

// Lookup returns the credential bound to (project, kind), or (nil, nil)
// when no binding exists.
func (s *ConnectionService) Lookup(ctx context.Context, project int, kind string) (*adapters.Credential, error) {
	row, err := s.client.ServiceConnection.Query().
		Where(
			serviceconnection.ProjectIDEQ(project),
			serviceconnection.ServiceKindEQ(kind),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up %s connection: %w", kind, err)
	}
	return credentialFromRow(row), nil
}

// FirstEnabled returns the first enabled project-less binding of the
// kind, or (nil, nil).
func (s *ConnectionService) FirstEnabled(ctx context.Context, kind string) (*adapters.Credential, error) {
	row, err := s.client.ServiceConnection.Query().
		Where(
			serviceconnection.ProjectIDEQ(0),
			serviceconnection.ServiceKindEQ(kind),
			serviceconnection.EnabledEQ(true),
		).
		Order(ent.Asc(serviceconnection.FieldID)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up fallback %s connection: %w", kind, err)
	}
	return credentialFromRow(row), nil
}

// Connection is the stored row plus its database id, returned to the API
// layer which masks the token before serialization.
type Connection struct {
	ID         int            `json:"id"`
	Project    int            `json:"project_id"`
	Kind       string         `json:"service_kind"`
	BaseURL    string         `json:"base_url"`
	Token      string         `json:"-"`
	Config     map[string]any `json:"config"`
	Enabled    bool           `json:"enabled"`
	LastSyncAt *time.Time     `json:"last_sync_at,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// List returns every connection for a project, ordered by kind.
func (s *ConnectionService) List(ctx context.Context, project int) ([]*Connection, error) {
	rows, err := s.client.ServiceConnection.Query().
		Where(serviceconnection.ProjectIDEQ(project)).
		Order(ent.Asc(serviceconnection.FieldServiceKind)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list connections: %w", err)
	}
	out := make([]*Connection, 0, len(rows))
	for _, row := range rows {
		out = append(out, connectionFromRow(row))
	}
	return out, nil
}

// Get returns one connection by id.
func (s *ConnectionService) Get(ctx context.Context, id int) (*Connection, error) {
	row, err := s.client.ServiceConnection.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get connection %d: %w", id, err)
	}
	return connectionFromRow(row), nil
}

// UpsertInput carries a create-or-replace request. Tokens and string
// config values are stripped of surrounding whitespace before storage so
// copy-pasted credentials work.
type UpsertInput struct {
	Project int
	Kind    string
	BaseURL string
	Token   string
	Config  map[string]any
	Enabled *bool
}

func (in *UpsertInput) normalize() {
	in.Token = strings.TrimSpace(in.Token)
	in.BaseURL = strings.TrimSpace(in.BaseURL)
	for k, v := range in.Config {
		if s, ok := v.(string); ok {
			in.Config[k] = strings.TrimSpace(s)
		}
	}
}

// Upsert creates or replaces the binding for (project, kind). An empty
// token on update keeps the stored token, so the API can round-trip
// masked values.
func (s *ConnectionService) Upsert(ctx context.Context, in UpsertInput) (*Connection, error) {
	in.normalize()

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	row, err := s.client.ServiceConnection.Query().
		Where(
			serviceconnection.ProjectIDEQ(in.Project),
			serviceconnection.ServiceKindEQ(in.Kind),
		).
		Only(writeCtx)

	switch {
	case ent.IsNotFound(err):
		if in.Token == "" {
			return nil, fmt.Errorf("token is required for a new %s connection", in.Kind)
		}
		create := s.client.ServiceConnection.Create().
			SetProjectID(in.Project).
			SetServiceKind(in.Kind).
			SetBaseURL(in.BaseURL).
			SetToken(in.Token)
		if in.Config != nil {
			create.SetConfig(in.Config)
		}
		if in.Enabled != nil {
			create.SetEnabled(*in.Enabled)
		}
		row, err = create.Save(writeCtx)
		if err != nil {
			return nil, fmt.Errorf("failed to create connection: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("failed to query connection: %w", err)
	default:
		update := row.Update().SetBaseURL(in.BaseURL)
		if in.Token != "" {
			update.SetToken(in.Token)
		}
		if in.Config != nil {
			update.SetConfig(in.Config)
		}
		if in.Enabled != nil {
			update.SetEnabled(*in.Enabled)
		}
		row, err = update.Save(writeCtx)
		if err != nil {
			return nil, fmt.Errorf("failed to update connection: %w", err)
		}
	}

	return connectionFromRow(row), nil
}

// Delete removes one connection by id.
func (s *ConnectionService) Delete(ctx context.Context, id int) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.client.ServiceConnection.DeleteOneID(id).Exec(writeCtx); err != nil {
		return fmt.Errorf("failed to delete connection %d: %w", id, err)
	}
	return nil
}

// TouchSync stamps last_sync_at after a successful connectivity test.
func (s *ConnectionService) TouchSync(ctx context.Context, id int) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.ServiceConnection.UpdateOneID(id).
		SetLastSyncAt(time.Now()).
		Exec(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to stamp connection sync: %w", err)
	}
	return nil
}

// OfKind returns every enabled credential of the kind across projects.
// Webhook ingress scans these to resolve which project an external
// payload belongs to.
func (s *ConnectionService) OfKind(ctx context.Context, kind string) ([]*adapters.Credential, error) {
	rows, err := s.client.ServiceConnection.Query().
		Where(
			serviceconnection.ServiceKindEQ(kind),
			serviceconnection.EnabledEQ(true),
		).
		Order(ent.Asc(serviceconnection.FieldProjectID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s connections: %w", kind, err)
	}
	out := make([]*adapters.Credential, 0, len(rows))
	for _, row := range rows {
		out = append(out, credentialFromRow(row))
	}
	return out, nil
}

// Projects returns the distinct project ids that have at least one
// connection. The analytics scheduler uses this when no agent config
// rows exist yet.
func (s *ConnectionService) Projects(ctx context.Context) ([]int, error) {
	var projects []int
	err := s.client.ServiceConnection.Query().
		Where(serviceconnection.ProjectIDNEQ(0)).
		Unique(true).
		Select(serviceconnection.FieldProjectID).
		Scan(ctx, &projects)
	if err != nil {
		return nil, fmt.Errorf("failed to list connection projects: %w", err)
	}
	return projects, nil
}

func credentialFromRow(row *ent.ServiceConnection) *adapters.Credential {
	return &adapters.Credential{
		Project: row.ProjectID,
		Kind:    row.ServiceKind,
		BaseURL: row.BaseURL,
		Token:   row.Token,
		Config:  row.Config,
		Enabled: row.Enabled,
	}
}

func connectionFromRow(row *ent.ServiceConnection) *Connection {
	cfg := row.Config
	if cfg == nil {
		cfg = map[string]any{}
	}
	return &Connection{
		ID:         row.ID,
		Project:    row.ProjectID,
		Kind:       row.ServiceKind,
		BaseURL:    row.BaseURL,
		Token:      row.Token,
		Config:     cfg,
		Enabled:    row.Enabled,
		LastSyncAt: row.LastSyncAt,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}
