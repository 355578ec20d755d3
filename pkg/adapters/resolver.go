package adapters

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// Credential is one stored service binding: opaque token plus per-service
// configuration, scoped to a project (0 = project-less).
type Credential struct {
	Project int
	Kind    string
	BaseURL string
	Token   string
	Config  map[string]any
	Enabled bool
}

// ConfigString reads a string config value.
func (c *Credential) ConfigString(key string) string {
	if c == nil || c.Config == nil {
		return ""
	}
	switch v := c.Config[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	}
	return ""
}

// ConfigInt reads an integer config value, tolerating JSON float64 and
// string encodings.
func (c *Credential) ConfigInt(key string) int {
	if c == nil || c.Config == nil {
		return 0
	}
	switch v := c.Config[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	case string:
		n, _ := strconv.Atoi(v)
		return n
	}
	return 0
}

// ConfigStrings reads a list config value, accepting either a JSON array or
// a comma-separated string.
func (c *Credential) ConfigStrings(key string) []string {
	if c == nil || c.Config == nil {
		return nil
	}
	switch v := c.Config[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		if v == "" {
			return nil
		}
		parts := strings.Split(v, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return nil
}

// CredentialSource looks up stored credentials. Lookup returns (nil, nil)
// when no binding exists. FirstEnabled returns the first enabled
// project-less binding of the kind.
type CredentialSource interface {
	Lookup(ctx context.Context, project int, kind string) (*Credential, error)
	FirstEnabled(ctx context.Context, kind string) (*Credential, error)
}

// Resolver builds concrete adapters from stored credentials. A nil adapter
// with nil error means the service is not configured for the project;
// agents degrade gracefully in that case.
type Resolver struct {
	source         CredentialSource
	defaultChannel string
}

// NewResolver creates a resolver. defaultChannel is the process-wide chat
// fallback channel.
func NewResolver(source CredentialSource, defaultChannel string) *Resolver {
	return &Resolver{source: source, defaultChannel: defaultChannel}
}

func (r *Resolver) lookupEnabled(ctx context.Context, project int, kind string) (*Credential, error) {
	cred, err := r.source.Lookup(ctx, project, kind)
	if err != nil {
		return nil, fmt.Errorf("lookup %s credential: %w", kind, err)
	}
	if cred == nil || !cred.Enabled {
		return nil, nil
	}
	return cred, nil
}

// VersionControl returns the project's VCS adapter, or nil when
// unconfigured.
func (r *Resolver) VersionControl(ctx context.Context, project int) (VersionControl, error) {
	cred, err := r.lookupEnabled(ctx, project, KindGitLab)
	if err != nil || cred == nil {
		return nil, err
	}
	return NewGitLabClient(cred.BaseURL, cred.Token, cred.ConfigInt("external_project_id")), nil
}

// IssueTracker returns the project's tracker adapter, or nil when
// unconfigured. The tracker rides on the VCS credential: issues live in the
// same external project.
func (r *Resolver) IssueTracker(ctx context.Context, project int) (IssueTracker, error) {
	cred, err := r.lookupEnabled(ctx, project, KindGitLab)
	if err != nil || cred == nil {
		return nil, err
	}
	return NewGitLabClient(cred.BaseURL, cred.Token, cred.ConfigInt("external_project_id")), nil
}

// WorkItems returns the project's work-item listing adapter, or nil when
// unconfigured. Work items live on the same credential as the tracker.
func (r *Resolver) WorkItems(ctx context.Context, project int) (WorkItemSource, error) {
	cred, err := r.lookupEnabled(ctx, project, KindGitLab)
	if err != nil || cred == nil {
		return nil, err
	}
	return NewGitLabClient(cred.BaseURL, cred.Token, cred.ConfigInt("external_project_id")), nil
}

// DesignTool returns the project's design adapter, or nil when unconfigured.
func (r *Resolver) DesignTool(ctx context.Context, project int) (DesignTool, error) {
	cred, err := r.lookupEnabled(ctx, project, KindFigma)
	if err != nil || cred == nil {
		return nil, err
	}
	return NewFigmaClient(cred.Token), nil
}

// Chat returns the chat adapter for the project, falling back to the first
// enabled project-less chat credential. Returns nil when neither exists.
func (r *Resolver) Chat(ctx context.Context, project int) (ChatService, error) {
	cred, err := r.lookupEnabled(ctx, project, KindSlack)
	if err != nil {
		return nil, err
	}
	if cred == nil {
		cred, err = r.source.FirstEnabled(ctx, KindSlack)
		if err != nil {
			return nil, fmt.Errorf("lookup fallback slack credential: %w", err)
		}
	}
	if cred == nil {
		return nil, nil
	}
	channel := cred.ConfigString("default_channel")
	if channel == "" {
		channel = r.defaultChannel
	}
	return NewSlackChat(cred.Token, channel), nil
}

// Monitoring returns every monitoring adapter configured for the project.
// Either slice may be empty.
func (r *Resolver) Monitoring(ctx context.Context, project int) ([]MonitoringIssues, []MonitoringMetrics, error) {
	var issues []MonitoringIssues
	var metrics []MonitoringMetrics

	sentry, err := r.lookupEnabled(ctx, project, KindSentry)
	if err != nil {
		return nil, nil, err
	}
	if sentry != nil {
		issues = append(issues, NewSentryClient(
			sentry.BaseURL,
			sentry.Token,
			sentry.ConfigString("org_slug"),
			sentry.ConfigString("project_slug"),
		))
	}

	datadog, err := r.lookupEnabled(ctx, project, KindDatadog)
	if err != nil {
		return nil, nil, err
	}
	if datadog != nil {
		metrics = append(metrics, NewDatadogClient(
			datadog.ConfigString("site"),
			datadog.Token,
			datadog.ConfigString("app_key"),
			datadog.ConfigStrings("monitor_tags"),
		))
	}

	return issues, metrics, nil
}
