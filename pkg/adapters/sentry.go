package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// SentryClient queries unresolved issues for one Sentry project. It
// implements MonitoringIssues.
type SentryClient struct {
	apiURL      string
	token       string
	orgSlug     string
	projectSlug string
	httpClient  *http.Client
}

// NewSentryClient creates a client. baseURL defaults to sentry.io when
// empty.
func NewSentryClient(baseURL, token, orgSlug, projectSlug string) *SentryClient {
	if baseURL == "" {
		baseURL = "https://sentry.io"
	}
	return &SentryClient{
		apiURL:      strings.TrimRight(baseURL, "/") + "/api/0",
		token:       token,
		orgSlug:     orgSlug,
		projectSlug: projectSlug,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *SentryClient) get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.apiURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sentry GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return &StatusError{Service: "sentry", StatusCode: resp.StatusCode, Message: string(raw)}
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode sentry response: %w", err)
	}
	return nil
}

// TestConnection verifies the token by listing organizations.
func (c *SentryClient) TestConnection(ctx context.Context) error {
	var orgs []json.RawMessage
	return c.get(ctx, "/organizations/", nil, &orgs)
}

// ListRecentUnresolved returns issues unresolved within the last hour.
func (c *SentryClient) ListRecentUnresolved(ctx context.Context) ([]UnresolvedIssue, error) {
	path := fmt.Sprintf("/projects/%s/%s/issues/", c.orgSlug, c.projectSlug)
	q := url.Values{
		"query": {"is:unresolved age:-1h"},
		"limit": {"25"},
	}
	var issues []UnresolvedIssue
	if err := c.get(ctx, path, q, &issues); err != nil {
		return nil, err
	}
	return issues, nil
}
