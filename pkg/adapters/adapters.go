// Package adapters defines the capability boundaries between agent logic and
// vendor APIs, plus the concrete clients (GitLab, Figma, Slack, Sentry,
// Datadog) and the resolver that builds them from stored per-project
// credentials. Agents depend on the capability interfaces, never on a
// vendor.
package adapters

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Service kinds stored in the credential store.
const (
	KindGitLab  = "gitlab"
	KindFigma   = "figma"
	KindSlack   = "slack"
	KindSentry  = "sentry"
	KindDatadog = "datadog"
)

// Issue is a created or found tracker issue.
type Issue struct {
	IID         int        `json:"iid"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	State       string     `json:"state"`
	Labels      []string   `json:"labels"`
	WebURL      string     `json:"web_url"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
	ClosedAt    *time.Time `json:"closed_at,omitempty"`
}

// Branch is a created VCS branch.
type Branch struct {
	Name string `json:"name"`
}

// MergeRequest is a created or merged merge request.
type MergeRequest struct {
	IID    int    `json:"iid"`
	Title  string `json:"title"`
	State  string `json:"state"`
	WebURL string `json:"web_url"`
}

// DiffEntry is one changed file in a merge-request diff.
type DiffEntry struct {
	OldPath string `json:"old_path"`
	NewPath string `json:"new_path"`
	Diff    string `json:"diff"`
}

// Member is a project member eligible for review assignment.
type Member struct {
	ID          int    `json:"id"`
	Username    string `json:"username"`
	Name        string `json:"name"`
	AccessLevel int    `json:"access_level"`
}

// Pipeline is a CI pipeline reference.
type Pipeline struct {
	ID     int    `json:"id"`
	Status string `json:"status"`
	Ref    string `json:"ref"`
	WebURL string `json:"web_url"`
}

// Commit is one repository commit.
type Commit struct {
	ID      string `json:"id"`
	Message string `json:"message"`
	Author  string `json:"author_name"`
}

// MROptions parameterizes merge-request creation.
type MROptions struct {
	SourceBranch string
	TargetBranch string
	Title        string
	Description  string
	ReviewerIDs  []int
}

// DesignFile is design-tool file metadata.
type DesignFile struct {
	Name         string `json:"name"`
	LastModified string `json:"last_modified"`
	Version      string `json:"version"`
}

// DesignComponent is one component exported from a design file.
type DesignComponent struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UnresolvedIssue is one open error-tracking issue.
type UnresolvedIssue struct {
	Title     string `json:"title"`
	Count     string `json:"count"`
	Permalink string `json:"permalink"`
}

// Monitor is one metrics monitor with its current state.
type Monitor struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	OverallState string `json:"overall_state"`
}

// IssueTracker creates and manipulates issues in the external tracker.
type IssueTracker interface {
	CreateIssue(ctx context.Context, title, description string, labels []string) (*Issue, error)
	Transition(ctx context.Context, issueIID int, stateEvent string) error
	Search(ctx context.Context, query string) ([]Issue, error)
}

// IssueListOptions filters a work-item listing.
type IssueListOptions struct {
	State        string
	Labels       []string
	UpdatedAfter time.Time
	Limit        int
}

// WorkItemSource lists tracker issues by state and label. Deploy readiness
// and analytics read project work-item state through this.
type WorkItemSource interface {
	ListIssues(ctx context.Context, opts IssueListOptions) ([]Issue, error)
}

// VersionControl covers the VCS operations the fleet performs. Adapters are
// bound to one external project at construction.
type VersionControl interface {
	CreateBranch(ctx context.Context, branch, ref string) (*Branch, error)
	CreateFile(ctx context.Context, path, content, branch, commitMessage string) error
	CreateMergeRequest(ctx context.Context, opts MROptions) (*MergeRequest, error)
	GetDiff(ctx context.Context, mrIID int) ([]DiffEntry, error)
	AddMRComment(ctx context.Context, mrIID int, body string) error
	CreateDiscussion(ctx context.Context, mrIID int, body string) error
	Merge(ctx context.Context, mrIID int) (*MergeRequest, error)
	ListMembers(ctx context.Context) ([]Member, error)
	GetPipelines(ctx context.Context, ref string, limit int) ([]Pipeline, error)
	TriggerPipeline(ctx context.Context, ref string, variables map[string]string) (*Pipeline, error)
	GetCommits(ctx context.Context, ref string, limit int) ([]Commit, error)
}

// DesignTool reads design-file metadata and components.
type DesignTool interface {
	GetFile(ctx context.Context, fileKey string) (*DesignFile, error)
	GetComponents(ctx context.Context, fileKey string) ([]DesignComponent, error)
}

// ChatService posts outbound notifications. channel may be empty, in which
// case the adapter's configured default applies.
type ChatService interface {
	PostMessage(ctx context.Context, channel, title, text string) error
}

// MonitoringIssues queries an error-tracking service.
type MonitoringIssues interface {
	ListRecentUnresolved(ctx context.Context) ([]UnresolvedIssue, error)
}

// MonitoringMetrics queries a metrics/alerting service.
type MonitoringMetrics interface {
	ListAlertingMonitors(ctx context.Context) ([]Monitor, error)
}

// StatusError is a non-2xx response from a vendor API.
type StatusError struct {
	Service    string
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned HTTP %d: %s", e.Service, e.StatusCode, e.Message)
}

// IsAlreadyExists reports whether err is the vendor's already-exists
// rejection (GitLab answers 400 for duplicate branches, 409 for conflicts).
func IsAlreadyExists(err error) bool {
	var se *StatusError
	if !errors.As(err, &se) {
		return false
	}
	if se.StatusCode == 409 {
		return true
	}
	return se.StatusCode == 400 && strings.Contains(strings.ToLower(se.Message), "already exists")
}

// IsNotFound reports whether err is a 404.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == 404
}
