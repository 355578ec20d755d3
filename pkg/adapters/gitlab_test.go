package adapters

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type apiCall struct {
	Method string
	Path   string
	Query  string
	Token  string
	Body   map[string]any
}

// newGitLabFake spins up a fake API that records calls and answers each
// path from the responses map (path → status, body).
func newGitLabFake(t *testing.T, responses map[string]fakeResponse) (*GitLabClient, *[]apiCall) {
	t.Helper()
	var calls []apiCall
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		call := apiCall{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
			Token:  r.Header.Get("PRIVATE-TOKEN"),
		}
		if raw, _ := io.ReadAll(r.Body); len(raw) > 0 {
			_ = json.Unmarshal(raw, &call.Body)
		}
		calls = append(calls, call)

		resp, ok := responses[r.URL.Path]
		if !ok {
			resp = fakeResponse{status: http.StatusOK, body: "{}"}
		}
		w.WriteHeader(resp.status)
		_, _ = w.Write([]byte(resp.body))
	}))
	t.Cleanup(server.Close)
	return NewGitLabClient(server.URL, "glpat-test", 42), &calls
}

type fakeResponse struct {
	status int
	body   string
}

func TestGitLabClient_TestConnection(t *testing.T) {
	client, calls := newGitLabFake(t, map[string]fakeResponse{
		"/api/v4/user": {status: 200, body: `{"username": "bot"}`},
	})

	require.NoError(t, client.TestConnection(context.Background()))
	require.Len(t, *calls, 1)
	assert.Equal(t, "GET", (*calls)[0].Method)
	assert.Equal(t, "glpat-test", (*calls)[0].Token)
}

func TestGitLabClient_CreateIssue(t *testing.T) {
	client, calls := newGitLabFake(t, map[string]fakeResponse{
		"/api/v4/projects/42/issues": {status: 201, body: `{"iid": 7, "title": "Bug", "web_url": "http://gl/i/7"}`},
	})

	issue, err := client.CreateIssue(context.Background(), "Bug", "details", []string{"prod", "sentry"})
	require.NoError(t, err)
	assert.Equal(t, 7, issue.IID)
	assert.Equal(t, "http://gl/i/7", issue.WebURL)

	require.Len(t, *calls, 1)
	body := (*calls)[0].Body
	assert.Equal(t, "Bug", body["title"])
	assert.Equal(t, "prod,sentry", body["labels"])
}

func TestGitLabClient_CreateBranch(t *testing.T) {
	client, calls := newGitLabFake(t, map[string]fakeResponse{
		"/api/v4/projects/42/repository/branches": {status: 201, body: `{"name": "feature/ship-1-sso"}`},
	})

	branch, err := client.CreateBranch(context.Background(), "feature/ship-1-sso", "")
	require.NoError(t, err)
	assert.Equal(t, "feature/ship-1-sso", branch.Name)

	// empty ref defaults to main
	assert.Equal(t, "main", (*calls)[0].Body["ref"])
}

func TestGitLabClient_CreateBranch_AlreadyExists(t *testing.T) {
	client, _ := newGitLabFake(t, map[string]fakeResponse{
		"/api/v4/projects/42/repository/branches": {status: 400, body: `{"message": "Branch already exists"}`},
	})

	_, err := client.CreateBranch(context.Background(), "feature/dup", "main")
	require.Error(t, err)
	assert.True(t, IsAlreadyExists(err))
	assert.False(t, IsNotFound(err))
}

func TestGitLabClient_CreateMergeRequest(t *testing.T) {
	client, calls := newGitLabFake(t, map[string]fakeResponse{
		"/api/v4/projects/42/merge_requests": {status: 201, body: `{"iid": 87, "web_url": "http://gl/mr/87"}`},
	})

	mr, err := client.CreateMergeRequest(context.Background(), MROptions{
		SourceBranch: "feature/ship-1-sso",
		Title:        "Draft: SSO scaffold",
		Description:  "scaffold",
		ReviewerIDs:  []int{11, 12},
	})
	require.NoError(t, err)
	assert.Equal(t, 87, mr.IID)

	body := (*calls)[0].Body
	assert.Equal(t, "main", body["target_branch"])
	assert.Equal(t, []any{float64(11), float64(12)}, body["reviewer_ids"])
}

func TestGitLabClient_GetDiff(t *testing.T) {
	client, _ := newGitLabFake(t, map[string]fakeResponse{
		"/api/v4/projects/42/merge_requests/87/diffs": {status: 200, body: `[
			{"old_path": "a.go", "new_path": "a.go", "diff": "@@ -1 +1 @@"},
			{"old_path": "b.go", "new_path": "c.go", "diff": ""}
		]`},
	})

	diffs, err := client.GetDiff(context.Background(), 87)
	require.NoError(t, err)
	require.Len(t, diffs, 2)
	assert.Equal(t, "a.go", diffs[0].NewPath)
	assert.Equal(t, "c.go", diffs[1].NewPath)
}

func TestGitLabClient_Merge(t *testing.T) {
	client, calls := newGitLabFake(t, map[string]fakeResponse{
		"/api/v4/projects/42/merge_requests/87/merge": {status: 200, body: `{"iid": 87, "state": "merged"}`},
	})

	mr, err := client.Merge(context.Background(), 87)
	require.NoError(t, err)
	assert.Equal(t, "merged", mr.State)
	assert.Equal(t, "PUT", (*calls)[0].Method)
}

func TestGitLabClient_Merge_Conflict(t *testing.T) {
	client, _ := newGitLabFake(t, map[string]fakeResponse{
		"/api/v4/projects/42/merge_requests/87/merge": {status: 409, body: `{"message": "merge conflict"}`},
	})

	_, err := client.Merge(context.Background(), 87)
	require.Error(t, err)
	assert.True(t, IsAlreadyExists(err))
}

func TestGitLabClient_ListIssues_Filters(t *testing.T) {
	client, calls := newGitLabFake(t, map[string]fakeResponse{
		"/api/v4/projects/42/issues": {status: 200, body: `[{"iid": 1, "state": "opened"}]`},
	})

	issues, err := client.ListIssues(context.Background(), IssueListOptions{
		State:  "opened",
		Labels: []string{"design", "frontend"},
		Limit:  5,
	})
	require.NoError(t, err)
	assert.Len(t, issues, 1)

	query := (*calls)[0].Query
	assert.Contains(t, query, "state=opened")
	assert.Contains(t, query, "per_page=5")
	assert.Contains(t, query, "labels=design%2Cfrontend")
}

func TestGitLabClient_ListMembers(t *testing.T) {
	client, calls := newGitLabFake(t, map[string]fakeResponse{
		"/api/v4/projects/42/members/all": {status: 200, body: `[
			{"id": 11, "username": "alice", "access_level": 40},
			{"id": 12, "username": "bot", "access_level": 30}
		]`},
	})

	members, err := client.ListMembers(context.Background())
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, "alice", members[0].Username)
	assert.Contains(t, (*calls)[0].Query, "per_page=100")
}

func TestGitLabClient_TriggerPipeline(t *testing.T) {
	client, calls := newGitLabFake(t, map[string]fakeResponse{
		"/api/v4/projects/42/pipeline": {status: 201, body: `{"id": 501, "status": "pending", "ref": "main"}`},
	})

	pipeline, err := client.TriggerPipeline(context.Background(), "", map[string]string{"DEPLOY_ENV": "production"})
	require.NoError(t, err)
	assert.Equal(t, 501, pipeline.ID)

	body := (*calls)[0].Body
	assert.Equal(t, "main", body["ref"])
	vars, ok := body["variables"].([]any)
	require.True(t, ok)
	require.Len(t, vars, 1)
}

func TestGitLabClient_GetCommits_NotFound(t *testing.T) {
	client, _ := newGitLabFake(t, map[string]fakeResponse{
		"/api/v4/projects/42/repository/commits": {status: 404, body: `{"message": "404 Project Not Found"}`},
	})

	_, err := client.GetCommits(context.Background(), "main", 20)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}
