package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// GitLabClient talks to the GitLab REST API v4 for one external project. It
// implements both VersionControl and IssueTracker.
type GitLabClient struct {
	apiURL     string
	token      string
	projectID  int
	httpClient *http.Client
}

// NewGitLabClient creates a client for the project hosted at baseURL.
func NewGitLabClient(baseURL, token string, projectID int) *GitLabClient {
	return &GitLabClient{
		apiURL:     strings.TrimRight(baseURL, "/") + "/api/v4",
		token:      token,
		projectID:  projectID,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *GitLabClient) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.apiURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("PRIVATE-TOKEN", c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("gitlab %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Service: "gitlab", StatusCode: resp.StatusCode, Message: string(raw)}
	}
	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode gitlab response: %w", err)
		}
	}
	return nil
}

func (c *GitLabClient) projectPath(suffix string) string {
	return fmt.Sprintf("/projects/%d%s", c.projectID, suffix)
}

// TestConnection verifies the token by fetching the authenticated user.
func (c *GitLabClient) TestConnection(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/user", nil, nil, nil)
}

// CreateIssue opens a tracker issue on the project.
func (c *GitLabClient) CreateIssue(ctx context.Context, title, description string, labels []string) (*Issue, error) {
	body := map[string]any{"title": title, "description": description}
	if len(labels) > 0 {
		body["labels"] = strings.Join(labels, ",")
	}
	var issue Issue
	if err := c.do(ctx, http.MethodPost, c.projectPath("/issues"), nil, body, &issue); err != nil {
		return nil, err
	}
	return &issue, nil
}

// Transition applies a state event (close, reopen) to an issue.
func (c *GitLabClient) Transition(ctx context.Context, issueIID int, stateEvent string) error {
	path := c.projectPath(fmt.Sprintf("/issues/%d", issueIID))
	return c.do(ctx, http.MethodPut, path, nil, map[string]any{"state_event": stateEvent}, nil)
}

// Search finds project issues matching the query.
func (c *GitLabClient) Search(ctx context.Context, query string) ([]Issue, error) {
	q := url.Values{"search": {query}}
	var issues []Issue
	if err := c.do(ctx, http.MethodGet, c.projectPath("/issues"), q, nil, &issues); err != nil {
		return nil, err
	}
	return issues, nil
}

// ListIssues lists project issues filtered by state, labels, and update
// time.
func (c *GitLabClient) ListIssues(ctx context.Context, opts IssueListOptions) ([]Issue, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 100
	}
	q := url.Values{"per_page": {strconv.Itoa(limit)}}
	if opts.State != "" {
		q.Set("state", opts.State)
	}
	if len(opts.Labels) > 0 {
		q.Set("labels", strings.Join(opts.Labels, ","))
	}
	if !opts.UpdatedAfter.IsZero() {
		q.Set("updated_after", opts.UpdatedAfter.UTC().Format(time.RFC3339))
	}
	var issues []Issue
	if err := c.do(ctx, http.MethodGet, c.projectPath("/issues"), q, nil, &issues); err != nil {
		return nil, err
	}
	return issues, nil
}

// CreateBranch creates branch from ref.
func (c *GitLabClient) CreateBranch(ctx context.Context, branch, ref string) (*Branch, error) {
	if ref == "" {
		ref = "main"
	}
	body := map[string]any{"branch": branch, "ref": ref}
	var created Branch
	if err := c.do(ctx, http.MethodPost, c.projectPath("/repository/branches"), nil, body, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// CreateFile commits a new file to branch.
func (c *GitLabClient) CreateFile(ctx context.Context, path, content, branch, commitMessage string) error {
	apiPath := c.projectPath("/repository/files/" + url.PathEscape(path))
	body := map[string]any{
		"branch":         branch,
		"content":        content,
		"commit_message": commitMessage,
	}
	return c.do(ctx, http.MethodPost, apiPath, nil, body, nil)
}

// CreateMergeRequest opens a merge request.
func (c *GitLabClient) CreateMergeRequest(ctx context.Context, opts MROptions) (*MergeRequest, error) {
	target := opts.TargetBranch
	if target == "" {
		target = "main"
	}
	body := map[string]any{
		"source_branch": opts.SourceBranch,
		"target_branch": target,
		"title":         opts.Title,
		"description":   opts.Description,
	}
	if len(opts.ReviewerIDs) > 0 {
		body["reviewer_ids"] = opts.ReviewerIDs
	}
	var mr MergeRequest
	if err := c.do(ctx, http.MethodPost, c.projectPath("/merge_requests"), nil, body, &mr); err != nil {
		return nil, err
	}
	return &mr, nil
}

// GetDiff fetches the per-file diffs of a merge request.
func (c *GitLabClient) GetDiff(ctx context.Context, mrIID int) ([]DiffEntry, error) {
	path := c.projectPath(fmt.Sprintf("/merge_requests/%d/diffs", mrIID))
	var diffs []DiffEntry
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &diffs); err != nil {
		return nil, err
	}
	return diffs, nil
}

// AddMRComment posts a note on a merge request.
func (c *GitLabClient) AddMRComment(ctx context.Context, mrIID int, body string) error {
	path := c.projectPath(fmt.Sprintf("/merge_requests/%d/notes", mrIID))
	return c.do(ctx, http.MethodPost, path, nil, map[string]any{"body": body}, nil)
}

// CreateDiscussion opens an unresolved discussion thread on a merge request.
// With "all discussions must be resolved" enabled on the project, this
// blocks the merge until the thread is resolved.
func (c *GitLabClient) CreateDiscussion(ctx context.Context, mrIID int, body string) error {
	path := c.projectPath(fmt.Sprintf("/merge_requests/%d/discussions", mrIID))
	return c.do(ctx, http.MethodPost, path, nil, map[string]any{"body": body}, nil)
}

// Merge accepts a merge request.
func (c *GitLabClient) Merge(ctx context.Context, mrIID int) (*MergeRequest, error) {
	path := c.projectPath(fmt.Sprintf("/merge_requests/%d/merge", mrIID))
	var mr MergeRequest
	if err := c.do(ctx, http.MethodPut, path, nil, nil, &mr); err != nil {
		return nil, err
	}
	return &mr, nil
}

// ListMembers returns all project members, including inherited ones.
func (c *GitLabClient) ListMembers(ctx context.Context) ([]Member, error) {
	q := url.Values{"per_page": {"100"}}
	var members []Member
	if err := c.do(ctx, http.MethodGet, c.projectPath("/members/all"), q, nil, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// GetPipelines lists recent pipelines, optionally filtered by ref.
func (c *GitLabClient) GetPipelines(ctx context.Context, ref string, limit int) ([]Pipeline, error) {
	if limit <= 0 {
		limit = 20
	}
	q := url.Values{"per_page": {strconv.Itoa(limit)}}
	if ref != "" {
		q.Set("ref", ref)
	}
	var pipelines []Pipeline
	if err := c.do(ctx, http.MethodGet, c.projectPath("/pipelines"), q, nil, &pipelines); err != nil {
		return nil, err
	}
	return pipelines, nil
}

// TriggerPipeline starts a new pipeline on ref with optional variables.
func (c *GitLabClient) TriggerPipeline(ctx context.Context, ref string, variables map[string]string) (*Pipeline, error) {
	if ref == "" {
		ref = "main"
	}
	body := map[string]any{"ref": ref}
	if len(variables) > 0 {
		vars := make([]map[string]string, 0, len(variables))
		for k, v := range variables {
			vars = append(vars, map[string]string{"key": k, "value": v})
		}
		body["variables"] = vars
	}
	var pipeline Pipeline
	if err := c.do(ctx, http.MethodPost, c.projectPath("/pipeline"), nil, body, &pipeline); err != nil {
		return nil, err
	}
	return &pipeline, nil
}

// GetCommits lists recent commits, optionally restricted to ref.
func (c *GitLabClient) GetCommits(ctx context.Context, ref string, limit int) ([]Commit, error) {
	if limit <= 0 {
		limit = 20
	}
	q := url.Values{"per_page": {strconv.Itoa(limit)}}
	if ref != "" {
		q.Set("ref_name", ref)
	}
	var commits []Commit
	if err := c.do(ctx, http.MethodGet, c.projectPath("/repository/commits"), q, nil, &commits); err != nil {
		return nil, err
	}
	return commits, nil
}
