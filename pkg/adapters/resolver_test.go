package adapters

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memSource is an in-memory CredentialSource keyed by (project, kind).
type memSource struct {
	creds []*Credential
	err   error
}

func (s *memSource) Lookup(_ context.Context, project int, kind string) (*Credential, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, c := range s.creds {
		if c.Project == project && c.Kind == kind {
			return c, nil
		}
	}
	return nil, nil
}

func (s *memSource) FirstEnabled(_ context.Context, kind string) (*Credential, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, c := range s.creds {
		if c.Project == 0 && c.Kind == kind && c.Enabled {
			return c, nil
		}
	}
	return nil, nil
}

func TestResolver_UnconfiguredIsNilNil(t *testing.T) {
	r := NewResolver(&memSource{}, "")

	vcs, err := r.VersionControl(context.Background(), 1)
	require.NoError(t, err)
	assert.Nil(t, vcs)

	design, err := r.DesignTool(context.Background(), 1)
	require.NoError(t, err)
	assert.Nil(t, design)

	chat, err := r.Chat(context.Background(), 1)
	require.NoError(t, err)
	assert.Nil(t, chat)

	issues, metrics, err := r.Monitoring(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, issues)
	assert.Empty(t, metrics)
}

func TestResolver_DisabledCredentialIsUnconfigured(t *testing.T) {
	r := NewResolver(&memSource{creds: []*Credential{
		{Project: 1, Kind: KindGitLab, BaseURL: "https://gitlab.example.com", Token: "t", Enabled: false},
	}}, "")

	vcs, err := r.VersionControl(context.Background(), 1)
	require.NoError(t, err)
	assert.Nil(t, vcs)
}

func TestResolver_GitLabCredentialServesThreeCapabilities(t *testing.T) {
	src := &memSource{creds: []*Credential{{
		Project: 1,
		Kind:    KindGitLab,
		BaseURL: "https://gitlab.example.com",
		Token:   "glpat-x",
		Config:  map[string]any{"external_project_id": float64(42)},
		Enabled: true,
	}}}
	r := NewResolver(src, "")

	vcs, err := r.VersionControl(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, vcs)

	tracker, err := r.IssueTracker(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, tracker)

	items, err := r.WorkItems(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, items)
}

func TestResolver_ChatFallsBackToGlobalCredential(t *testing.T) {
	src := &memSource{creds: []*Credential{{
		Project: 0,
		Kind:    KindSlack,
		Token:   "xoxb-global",
		Config:  map[string]any{"default_channel": "#eng"},
		Enabled: true,
	}}}
	r := NewResolver(src, "#fallback")

	chat, err := r.Chat(context.Background(), 7)
	require.NoError(t, err)
	assert.NotNil(t, chat, "project-less credential must serve any project")
}

func TestResolver_SourceErrorPropagates(t *testing.T) {
	r := NewResolver(&memSource{err: errors.New("db down")}, "")

	_, err := r.VersionControl(context.Background(), 1)
	assert.Error(t, err)

	_, err = r.Chat(context.Background(), 1)
	assert.Error(t, err)

	_, _, err = r.Monitoring(context.Background(), 1)
	assert.Error(t, err)
}

func TestResolver_MonitoringBuildsConfiguredAdapters(t *testing.T) {
	src := &memSource{creds: []*Credential{
		{
			Project: 1, Kind: KindSentry, BaseURL: "https://sentry.io", Token: "t",
			Config:  map[string]any{"org_slug": "acme", "project_slug": "ship"},
			Enabled: true,
		},
		{
			Project: 1, Kind: KindDatadog, Token: "dd-api",
			Config:  map[string]any{"site": "datadoghq.eu", "app_key": "dd-app", "monitor_tags": "service:ship,env:prod"},
			Enabled: true,
		},
	}}
	r := NewResolver(src, "")

	issues, metrics, err := r.Monitoring(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, issues, 1)
	assert.Len(t, metrics, 1)
}

func TestCredential_ConfigAccessors(t *testing.T) {
	cred := &Credential{Config: map[string]any{
		"external_project_id": "42",
		"float_id":            float64(7),
		"file_key":            "abc123",
		"tags_csv":            "a, b ,c",
		"tags_list":           []any{"x", "y", 3},
	}}

	assert.Equal(t, 42, cred.ConfigInt("external_project_id"))
	assert.Equal(t, 7, cred.ConfigInt("float_id"))
	assert.Zero(t, cred.ConfigInt("missing"))
	assert.Equal(t, "abc123", cred.ConfigString("file_key"))
	assert.Equal(t, "42", cred.ConfigString("external_project_id"))
	assert.Equal(t, []string{"a", "b", "c"}, cred.ConfigStrings("tags_csv"))
	assert.Equal(t, []string{"x", "y"}, cred.ConfigStrings("tags_list"))
	assert.Nil(t, cred.ConfigStrings("missing"))

	var nilCred *Credential
	assert.Empty(t, nilCred.ConfigString("any"))
	assert.Zero(t, nilCred.ConfigInt("any"))
}

func TestStatusErrorClassifiers(t *testing.T) {
	conflict := &StatusError{Service: "gitlab", StatusCode: 409, Message: "conflict"}
	dupBranch := &StatusError{Service: "gitlab", StatusCode: 400, Message: `{"message": "Branch already exists"}`}
	badReq := &StatusError{Service: "gitlab", StatusCode: 400, Message: "invalid ref"}
	missing := &StatusError{Service: "figma", StatusCode: 404, Message: "not found"}

	assert.True(t, IsAlreadyExists(conflict))
	assert.True(t, IsAlreadyExists(dupBranch))
	assert.False(t, IsAlreadyExists(badReq))
	assert.False(t, IsAlreadyExists(missing))
	assert.True(t, IsNotFound(missing))
	assert.False(t, IsNotFound(errors.New("plain")))
}
