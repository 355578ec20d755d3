package agents

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shipfleet/shipfleet/pkg/adapters"
	"github.com/shipfleet/shipfleet/pkg/bus"
	"github.com/shipfleet/shipfleet/pkg/services"
)

// stubLLM satisfies llm.Client with a canned reply function and records the
// user prompts it saw.
type stubLLM struct {
	mu    sync.Mutex
	users []string
	reply func(system, user string) (string, error)
}

func (c *stubLLM) Complete(_ context.Context, system, user string, _ int) (string, error) {
	c.mu.Lock()
	c.users = append(c.users, user)
	c.mu.Unlock()
	if c.reply == nil {
		return "", errors.New("no stub reply configured")
	}
	return c.reply(system, user)
}

func (c *stubLLM) lastUser() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.users) == 0 {
		return ""
	}
	return c.users[len(c.users)-1]
}

// fakeCreds is an in-memory CredentialSource keyed by service kind.
type fakeCreds map[string]*adapters.Credential

func (f fakeCreds) Lookup(_ context.Context, _ int, kind string) (*adapters.Credential, error) {
	return f[kind], nil
}

func (f fakeCreds) FirstEnabled(_ context.Context, kind string) (*adapters.Credential, error) {
	return f[kind], nil
}

// stubConfigs serves fixed per-agent settings; agents without an entry get
// the enabled-with-empty-config default.
type stubConfigs struct {
	settings map[string]*services.AgentSettings
	projects []int
}

func (s *stubConfigs) Get(_ context.Context, _ int, name string) (*services.AgentSettings, error) {
	if cfg, ok := s.settings[name]; ok {
		return cfg, nil
	}
	return &services.AgentSettings{Name: name, Enabled: true, Config: map[string]any{}}, nil
}

func (s *stubConfigs) EnabledProjects(_ context.Context, _ string) ([]int, error) {
	return s.projects, nil
}

type stubProjects []int

func (s stubProjects) Projects(_ context.Context) ([]int, error) { return s, nil }

type glCall struct {
	Method string
	Path   string
	Query  url.Values
	Body   map[string]any
}

// gitlabFake is an httptest-backed GitLab API covering the endpoints the
// agents hit. Every request is recorded for assertion.
type gitlabFake struct {
	mu    sync.Mutex
	calls []glCall

	issues       func(q url.Values) []adapters.Issue
	members      []adapters.Member
	pipelines    []adapters.Pipeline
	diffs        []adapters.DiffEntry
	mergeStatus  int
	branchStatus int
	branchBody   string

	srv *httptest.Server
}

func newGitLabFake(t *testing.T) *gitlabFake {
	f := &gitlabFake{}
	f.srv = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.srv.Close)
	return f
}

// creds returns a credential source with this fake bound as the project's
// gitlab connection.
func (f *gitlabFake) creds() fakeCreds {
	return fakeCreds{adapters.KindGitLab: {
		Project: 1,
		Kind:    adapters.KindGitLab,
		BaseURL: f.srv.URL,
		Token:   "glpat-test",
		Enabled: true,
		Config:  map[string]any{"external_project_id": 1},
	}}
}

func (f *gitlabFake) handle(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	raw, _ := io.ReadAll(r.Body)
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &body)
	}
	f.mu.Lock()
	f.calls = append(f.calls, glCall{Method: r.Method, Path: r.URL.Path, Query: r.URL.Query(), Body: body})
	mergeStatus, branchStatus, branchBody := f.mergeStatus, f.branchStatus, f.branchBody
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	switch {
	case strings.HasSuffix(r.URL.Path, "/issues") && r.Method == http.MethodGet:
		issues := []adapters.Issue{}
		if f.issues != nil {
			issues = f.issues(r.URL.Query())
		}
		_ = enc.Encode(issues)
	case strings.HasSuffix(r.URL.Path, "/issues") && r.Method == http.MethodPost:
		_ = enc.Encode(adapters.Issue{IID: 101, Title: body["title"].(string)})
	case strings.HasSuffix(r.URL.Path, "/members/all"):
		_ = enc.Encode(f.members)
	case strings.HasSuffix(r.URL.Path, "/repository/branches"):
		if branchStatus != 0 {
			w.WriteHeader(branchStatus)
			_, _ = w.Write([]byte(branchBody))
			return
		}
		_ = enc.Encode(adapters.Branch{Name: body["branch"].(string)})
	case strings.Contains(r.URL.Path, "/repository/files/"):
		w.WriteHeader(http.StatusCreated)
	case strings.HasSuffix(r.URL.Path, "/merge_requests") && r.Method == http.MethodPost:
		_ = enc.Encode(adapters.MergeRequest{IID: 7, State: "opened"})
	case strings.HasSuffix(r.URL.Path, "/merge"):
		if mergeStatus != 0 {
			w.WriteHeader(mergeStatus)
			return
		}
		_ = enc.Encode(adapters.MergeRequest{IID: 42, State: "merged"})
	case strings.HasSuffix(r.URL.Path, "/diffs"):
		_ = enc.Encode(f.diffs)
	case strings.HasSuffix(r.URL.Path, "/notes"), strings.HasSuffix(r.URL.Path, "/discussions"):
		w.WriteHeader(http.StatusCreated)
	case strings.HasSuffix(r.URL.Path, "/pipelines"):
		_ = enc.Encode(f.pipelines)
	case strings.HasSuffix(r.URL.Path, "/pipeline"):
		_ = enc.Encode(adapters.Pipeline{ID: 555, Status: "created", Ref: "main"})
	case strings.HasSuffix(r.URL.Path, "/repository/commits"):
		_ = enc.Encode([]adapters.Commit{{ID: "abc123", Message: "fix: resolve login timeout", Author: "dev"}})
	default:
		_, _ = w.Write([]byte("{}"))
	}
}

func (f *gitlabFake) pipelineTriggers() []glCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []glCall
	for _, c := range f.calls {
		if c.Method == http.MethodPost && strings.HasSuffix(c.Path, "/pipeline") {
			out = append(out, c)
		}
	}
	return out
}

func (f *gitlabFake) setMergeStatus(code int) {
	f.mu.Lock()
	f.mergeStatus = code
	f.mu.Unlock()
}

func (f *gitlabFake) count(method, pathSuffix string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c.Method == method && strings.HasSuffix(c.Path, pathSuffix) {
			n++
		}
	}
	return n
}

func (f *gitlabFake) find(method, pathSuffix string) (glCall, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.calls {
		if c.Method == method && strings.HasSuffix(c.Path, pathSuffix) {
			return c, true
		}
	}
	return glCall{}, false
}

// newTestBus returns an unstarted bus. Publish buffers into the queue and
// records history synchronously, so handler calls stay deterministic.
func newTestBus() *bus.Bus {
	return bus.New(bus.Options{})
}

func projectEvent(kind bus.Kind, payload bus.Payload) *bus.Event {
	e := bus.NewEvent(kind, "test", payload)
	e.Project = 1
	return e
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		maxLen int
		want   string
	}{
		{"basic", "Implement Real-Time WebSocket Notifications", 60, "implement-real-time-websocket-notifications"},
		{"truncated at limit", "Implement Real-Time WebSocket Notifications", 40, "implement-real-time-websocket-notificati"},
		{"punctuation collapsed", "Fix!!  the -- thing??", 60, "fix-the-thing"},
		{"trailing dash trimmed after cut", "abc def", 4, "abc"},
		{"leading junk trimmed", "--hello--", 40, "hello"},
		{"empty", "", 40, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slugify(tt.in, tt.maxLen))
		})
	}
}

func TestTruncateComment(t *testing.T) {
	short := "short comment"
	assert.Equal(t, short, truncateComment(short))

	exact := strings.Repeat("a", maxCommentLen)
	assert.Equal(t, exact, truncateComment(exact))

	long := strings.Repeat("a", maxCommentLen+100)
	got := truncateComment(long)
	assert.True(t, strings.HasSuffix(got, "\n\n*...truncated*"))
	assert.Equal(t, maxCommentLen, len(got)-len("\n\n*...truncated*"))
}
