package api

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shipfleet/shipfleet/pkg/adapters"
	"github.com/shipfleet/shipfleet/pkg/bus"
	"github.com/shipfleet/shipfleet/pkg/fleet"
	"github.com/shipfleet/shipfleet/pkg/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubAgent struct {
	name  string
	kinds []bus.Kind
}

func (a *stubAgent) Name() string                             { return a.name }
func (a *stubAgent) Description() string                      { return "stub" }
func (a *stubAgent) SubscribedKinds() []bus.Kind              { return a.kinds }
func (a *stubAgent) Handle(context.Context, *bus.Event) error { return nil }

type mockConfigs struct {
	stored map[string]*services.AgentSettings
}

func (m *mockConfigs) key(project int, name string) string {
	return name + "@" + strconv.Itoa(project)
}

func (m *mockConfigs) Get(_ context.Context, project int, name string) (*services.AgentSettings, error) {
	if s, ok := m.stored[m.key(project, name)]; ok {
		return s, nil
	}
	return &services.AgentSettings{Name: name, Enabled: true, Config: map[string]any{}}, nil
}

func (m *mockConfigs) List(ctx context.Context, project int, names []string) ([]*services.AgentSettings, error) {
	out := make([]*services.AgentSettings, 0, len(names))
	for _, name := range names {
		s, _ := m.Get(ctx, project, name)
		out = append(out, s)
	}
	return out, nil
}

func (m *mockConfigs) Upsert(_ context.Context, project int, name string, enabled *bool, config map[string]any) (*services.AgentSettings, error) {
	s := &services.AgentSettings{Name: name, Enabled: true, Config: config}
	if enabled != nil {
		s.Enabled = *enabled
	}
	if m.stored == nil {
		m.stored = make(map[string]*services.AgentSettings)
	}
	m.stored[m.key(project, name)] = s
	return s, nil
}

type mockConnections struct {
	conns   []*services.Connection
	creds   []*adapters.Credential
	deleted []int
	synced  []int
}

func (m *mockConnections) List(_ context.Context, project int) ([]*services.Connection, error) {
	var out []*services.Connection
	for _, c := range m.conns {
		if c.Project == project {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *mockConnections) Upsert(_ context.Context, in services.UpsertInput) (*services.Connection, error) {
	enabled := true
	if in.Enabled != nil {
		enabled = *in.Enabled
	}
	return &services.Connection{
		ID:      99,
		Project: in.Project,
		Kind:    in.Kind,
		BaseURL: in.BaseURL,
		Token:   in.Token,
		Config:  in.Config,
		Enabled: enabled,
	}, nil
}

func (m *mockConnections) Delete(_ context.Context, id int) error {
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockConnections) TouchSync(_ context.Context, id int) error {
	m.synced = append(m.synced, id)
	return nil
}

func (m *mockConnections) OfKind(_ context.Context, kind string) ([]*adapters.Credential, error) {
	var out []*adapters.Credential
	for _, c := range m.creds {
		if c.Kind == kind && c.Enabled {
			out = append(out, c)
		}
	}
	return out, nil
}

type mockAudit struct {
	records []*services.AuditRecord
}

func (m *mockAudit) Recent(_ context.Context, project int, kind string, limit int) ([]*services.AuditRecord, error) {
	var out []*services.AuditRecord
	for _, r := range m.records {
		if project != 0 && r.Project != project {
			continue
		}
		if kind != "" && r.Kind != kind {
			continue
		}
		if len(out) == limit {
			break
		}
		out = append(out, r)
	}
	return out, nil
}

type testEnv struct {
	bus         *bus.Bus
	registry    *fleet.Registry
	configs     *mockConfigs
	connections *mockConnections
	audit       *mockAudit
	router      http.Handler
}

func newTestEnv(t *testing.T, mutate func(*Deps)) *testEnv {
	t.Helper()
	b := bus.New(bus.Options{})
	b.Start(context.Background())
	t.Cleanup(b.Stop)

	registry := fleet.NewRegistry(b)
	registry.Register(&stubAgent{name: "security_compliance", kinds: []bus.Kind{bus.KindPROpened}})
	registry.Register(&stubAgent{name: "analytics_insights", kinds: []bus.Kind{bus.KindMetricsCollected}})

	env := &testEnv{
		bus:         b,
		registry:    registry,
		configs:     &mockConfigs{},
		connections: &mockConnections{},
		audit:       &mockAudit{},
	}
	deps := Deps{
		Bus:            b,
		Registry:       registry,
		Configs:        env.configs,
		Connections:    env.connections,
		Audit:          env.audit,
		ReviewSLAHours: 4,
	}
	if mutate != nil {
		mutate(&deps)
	}
	env.router = NewServer(deps).Router()
	return env
}

func (env *testEnv) do(t *testing.T, method, path string, body any, headers map[string]string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	var resp map[string]any
	if w.Body.Len() > 0 {
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
	}
	return w, resp
}

func TestHealth_NoDatabase(t *testing.T) {
	env := newTestEnv(t, nil)

	w, resp := env.do(t, "GET", "/health", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", resp["status"])
	assert.Equal(t, true, resp["bus_running"])
	assert.NotEmpty(t, resp["version"])
	assert.NotContains(t, resp, "database")
}

func TestFleetStatus(t *testing.T) {
	env := newTestEnv(t, nil)

	w, resp := env.do(t, "GET", "/api/agents/status", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	agents := resp["agents"].([]any)
	require.Len(t, agents, 2)
	first := agents[0].(map[string]any)
	assert.Equal(t, "security_compliance", first["name"])
	assert.Equal(t, "idle", first["status"])
	assert.Equal(t, float64(4), resp["review_sla_hours"])
	assert.Equal(t, true, resp["bus_running"])
}

func TestListProjectAgents(t *testing.T) {
	env := newTestEnv(t, nil)

	w, resp := env.do(t, "GET", "/api/projects/1/agents", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), resp["project_id"])
	agents := resp["agents"].([]any)
	require.Len(t, agents, 2)
	first := agents[0].(map[string]any)
	config := first["project_config"].(map[string]any)
	assert.Equal(t, "security_compliance", config["name"])
	assert.Equal(t, true, config["enabled"])
}

func TestListProjectAgents_BadProjectID(t *testing.T) {
	env := newTestEnv(t, nil)
	w, _ := env.do(t, "GET", "/api/projects/banana/agents", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateAgentConfig(t *testing.T) {
	env := newTestEnv(t, nil)

	enabled := false
	w, resp := env.do(t, "PUT", "/api/projects/1/agents/security_compliance", map[string]any{
		"enabled": enabled,
		"config":  map[string]any{"block_on_critical": true},
	}, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, resp["enabled"])

	w, _ = env.do(t, "PUT", "/api/projects/1/agents/no_such_agent", map[string]any{}, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTriggerAgent(t *testing.T) {
	env := newTestEnv(t, nil)

	w, resp := env.do(t, "POST", "/api/projects/3/agents/security_compliance/trigger", map[string]any{
		"event_data": map[string]any{"mr_iid": 99},
	}, nil)

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, "pr_opened", resp["kind"])
	assert.NotEmpty(t, resp["event_id"])

	history := env.bus.History(10, bus.KindPROpened, 3)
	require.Len(t, history, 1)
	evt := history[0]
	assert.Equal(t, "manual_trigger", evt.Source)
	assert.Equal(t, 3, evt.Project)
	// caller data wins over the demo defaults, which still fill the rest
	assert.Equal(t, 99, evt.Payload.Int("mr_iid"))
	assert.NotEmpty(t, evt.Payload.String("diff"))
}

func TestTriggerAgent_Unknown(t *testing.T) {
	env := newTestEnv(t, nil)
	w, _ := env.do(t, "POST", "/api/projects/1/agents/ghost/trigger", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListAgentEvents_FromAudit(t *testing.T) {
	env := newTestEnv(t, nil)
	env.audit.records = []*services.AuditRecord{
		{EventID: "e1", Kind: "pr_opened", Project: 1, Status: "processed", CreatedAt: time.Now()},
		{EventID: "e2", Kind: "ticket_created", Project: 2, Status: "processed", CreatedAt: time.Now()},
	}

	w, resp := env.do(t, "GET", "/api/projects/1/agents/events", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "audit", resp["source"])
	events := resp["events"].([]any)
	require.Len(t, events, 1)
	assert.Equal(t, "e1", events[0].(map[string]any)["event_id"])
}

func TestListAgentEvents_HistoryFallback(t *testing.T) {
	env := newTestEnv(t, func(d *Deps) { d.Audit = nil })

	evt := bus.NewEvent(bus.KindTicketCreated, "tracker_webhook", bus.Payload{"key": "SHIP-1"})
	evt.Project = 1
	require.NoError(t, env.bus.Publish(evt))

	w, resp := env.do(t, "GET", "/api/projects/1/agents/events?kind=ticket_created", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "history", resp["source"])
	events := resp["events"].([]any)
	require.Len(t, events, 1)
}

func TestListAgentEvents_Validation(t *testing.T) {
	env := newTestEnv(t, nil)

	w, _ := env.do(t, "GET", "/api/projects/1/agents/events?limit=0", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = env.do(t, "GET", "/api/projects/1/agents/events?kind=not_a_kind", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListConnections_Masked(t *testing.T) {
	env := newTestEnv(t, nil)
	env.connections.conns = []*services.Connection{{
		ID:      1,
		Project: 1,
		Kind:    "gitlab",
		BaseURL: "https://gitlab.example.com",
		Token:   "glpat-supersecrettoken",
		Config:  map[string]any{"external_project_id": 42, "api_key": "dd-secret-key"},
		Enabled: true,
	}}

	w, resp := env.do(t, "GET", "/api/projects/1/connections", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	conns := resp["connections"].([]any)
	require.Len(t, conns, 1)
	view := conns[0].(map[string]any)
	assert.Equal(t, true, view["has_token"])
	masked := view["masked_token"].(string)
	assert.NotEqual(t, "glpat-supersecrettoken", masked)
	assert.Contains(t, masked, "****")
	config := view["masked_config"].(map[string]any)
	assert.NotEqual(t, "dd-secret-key", config["api_key"])
	assert.Equal(t, float64(42), config["external_project_id"])
	assert.NotContains(t, view, "token")
}

func TestUpsertConnection(t *testing.T) {
	env := newTestEnv(t, nil)

	w, resp := env.do(t, "POST", "/api/projects/1/connections", map[string]any{
		"service_kind": "gitlab",
		"base_url":     "https://gitlab.example.com",
		"token":        "glpat-new",
	}, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "gitlab", resp["service_kind"])
	assert.Equal(t, true, resp["has_token"])

	// service_kind is mandatory
	w, _ = env.do(t, "POST", "/api/projects/1/connections", map[string]any{"token": "x"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRevealConnection(t *testing.T) {
	env := newTestEnv(t, nil)
	env.connections.conns = []*services.Connection{{
		ID: 1, Project: 1, Kind: "figma", Token: "figd-plaintext", Enabled: true,
	}}

	w, resp := env.do(t, "POST", "/api/projects/1/connections/figma/reveal", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "figd-plaintext", resp["token"])

	w, _ = env.do(t, "POST", "/api/projects/1/connections/slack/reveal", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteConnection(t *testing.T) {
	env := newTestEnv(t, nil)
	env.connections.conns = []*services.Connection{{ID: 5, Project: 1, Kind: "sentry", Token: "t"}}

	w, resp := env.do(t, "DELETE", "/api/projects/1/connections/sentry", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "sentry", resp["deleted"])
	assert.Equal(t, []int{5}, env.connections.deleted)
}

func TestTestServiceConnection(t *testing.T) {
	vendor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("PRIVATE-TOKEN") != "glpat-good" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{"username": "bot"}`))
	}))
	defer vendor.Close()

	env := newTestEnv(t, nil)
	env.connections.conns = []*services.Connection{{
		ID: 7, Project: 1, Kind: "gitlab", BaseURL: vendor.URL, Token: "glpat-good", Enabled: true,
	}}

	w, resp := env.do(t, "POST", "/api/projects/1/connections/gitlab/test", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, resp["ok"])
	assert.Equal(t, []int{7}, env.connections.synced)

	// failed probe reports ok=false without stamping
	env.connections.conns[0].Token = "glpat-bad"
	env.connections.synced = nil
	w, resp = env.do(t, "POST", "/api/projects/1/connections/gitlab/test", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, resp["ok"])
	assert.Empty(t, env.connections.synced)
}

func TestTrackerWebhook(t *testing.T) {
	env := newTestEnv(t, nil)
	env.connections.creds = []*adapters.Credential{{
		Project: 4, Kind: "gitlab", Enabled: true,
		Config: map[string]any{"external_project_id": float64(1200)},
	}}

	w, resp := env.do(t, "POST", "/api/webhooks/tracker", map[string]any{
		"webhookEvent": "jira:issue_created",
		"project_id":   1200,
		"issue": map[string]any{
			"key":      "SHIP-9",
			"title":    "Export burndown as CSV",
			"priority": "Medium",
		},
	}, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "accepted", resp["status"])

	history := env.bus.History(10, bus.KindTicketCreated, 0)
	require.Len(t, history, 1)
	evt := history[0]
	assert.Equal(t, 4, evt.Project)
	assert.Equal(t, "SHIP-9", evt.Payload.String("key"))

	// unknown tracker events are acknowledged but ignored
	w, resp = env.do(t, "POST", "/api/webhooks/tracker", map[string]any{
		"webhookEvent": "jira:worklog_updated",
	}, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ignored", resp["status"])
}

func TestVCSWebhook_Push(t *testing.T) {
	env := newTestEnv(t, nil)

	w, resp := env.do(t, "POST", "/api/webhooks/vcs", map[string]any{
		"ref":     "refs/heads/main",
		"project": map[string]any{"id": 42},
		"commits": []map[string]any{{"message": "Fix login redirect"}},
	}, map[string]string{"X-Gitlab-Event": "Push Hook"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "accepted", resp["status"])

	history := env.bus.History(10, bus.KindMergeToMain, 0)
	require.Len(t, history, 1)
	assert.Equal(t, "main", history[0].Payload.String("ref"))
	assert.Equal(t, []string{"Fix login redirect"}, history[0].Payload.Strings("commit_messages"))

	// pushes to a feature branch are code_pushed, not merge_to_main
	w, _ = env.do(t, "POST", "/api/webhooks/vcs", map[string]any{
		"ref":     "refs/heads/feature/x",
		"project": map[string]any{"id": 42},
	}, map[string]string{"X-Gitlab-Event": "Push Hook"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, env.bus.History(10, bus.KindCodePushed, 0), 1)
}

func TestVCSWebhook_MergeRequest(t *testing.T) {
	tests := []struct {
		name   string
		attrs  map[string]any
		kind   bus.Kind
		dropIt bool
	}{
		{
			name:  "open",
			attrs: map[string]any{"action": "open", "iid": 87, "title": "SSO"},
			kind:  bus.KindPROpened,
		},
		{
			name:  "update ready",
			attrs: map[string]any{"action": "update", "iid": 87, "work_in_progress": false},
			kind:  bus.KindPRReadyForReview,
		},
		{
			name:   "update still WIP",
			attrs:  map[string]any{"action": "update", "iid": 87, "work_in_progress": true},
			dropIt: true,
		},
		{
			name:  "approved",
			attrs: map[string]any{"action": "approved", "iid": 87},
			kind:  bus.KindPRApproved,
		},
		{
			name:  "merge to main",
			attrs: map[string]any{"action": "merge", "iid": 87, "target_branch": "main"},
			kind:  bus.KindMergeToMain,
		},
		{
			name:   "merge to feature branch",
			attrs:  map[string]any{"action": "merge", "iid": 87, "target_branch": "develop"},
			dropIt: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t, nil)

			w, resp := env.do(t, "POST", "/api/webhooks/vcs", map[string]any{
				"project":           map[string]any{"id": 42},
				"object_attributes": tc.attrs,
			}, map[string]string{"X-Gitlab-Event": "Merge Request Hook"})

			assert.Equal(t, http.StatusOK, w.Code)
			if tc.dropIt {
				assert.Equal(t, "ignored", resp["status"])
				return
			}
			assert.Equal(t, "accepted", resp["status"])
			history := env.bus.History(10, tc.kind, 0)
			require.Len(t, history, 1)
			assert.Equal(t, 87, history[0].Payload.Int("mr_iid"))
		})
	}
}

func TestVCSWebhook_Pipeline(t *testing.T) {
	env := newTestEnv(t, nil)

	w, _ := env.do(t, "POST", "/api/webhooks/vcs", map[string]any{
		"project":           map[string]any{"id": 42},
		"object_attributes": map[string]any{"id": 501, "status": "failed", "ref": "main"},
	}, map[string]string{"X-Gitlab-Event": "Pipeline Hook"})

	assert.Equal(t, http.StatusOK, w.Code)
	history := env.bus.History(10, bus.KindPipelineFailed, 0)
	require.Len(t, history, 1)
	assert.Equal(t, 501, history[0].Payload.Int("pipeline_id"))
}

func TestDesignWebhook_Signature(t *testing.T) {
	env := newTestEnv(t, func(d *Deps) { d.DesignSecret = "topsecret" })
	env.connections.creds = []*adapters.Credential{{
		Project: 2, Kind: "figma", Enabled: true,
		Config: map[string]any{"file_key": "abc123"},
	}}

	body, err := json.Marshal(map[string]any{
		"event_type": "FILE_UPDATE",
		"file_key":   "abc123",
		"file_name":  "Dashboard",
	})
	require.NoError(t, err)

	mac := hmac.New(sha256.New, []byte("topsecret"))
	mac.Write(body)
	signature := hex.EncodeToString(mac.Sum(nil))

	req := httptest.NewRequest("POST", "/api/webhooks/design", bytes.NewReader(body))
	req.Header.Set("X-Figma-Signature", signature)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	history := env.bus.History(10, bus.KindDesignChanged, 0)
	require.Len(t, history, 1)
	assert.Equal(t, 2, history[0].Project)
	assert.Equal(t, "abc123", history[0].Payload.String("file_key"))

	// wrong signature is the one webhook rejection that is not a 200
	req = httptest.NewRequest("POST", "/api/webhooks/design", bytes.NewReader(body))
	req.Header.Set("X-Figma-Signature", "deadbeef")
	w = httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDesignWebhook_IgnoresOtherEventTypes(t *testing.T) {
	env := newTestEnv(t, nil)

	w, resp := env.do(t, "POST", "/api/webhooks/design", map[string]any{
		"event_type": "LIBRARY_PUBLISH",
		"file_key":   "abc123",
	}, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ignored", resp["status"])
	assert.Empty(t, env.bus.History(10, bus.KindDesignChanged, 0))
}
