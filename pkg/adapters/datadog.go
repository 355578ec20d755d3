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

// DatadogClient queries monitors from the Datadog API. It implements
// MonitoringMetrics.
type DatadogClient struct {
	baseURL     string
	apiKey      string
	appKey      string
	monitorTags []string
	httpClient  *http.Client
}

// NewDatadogClient creates a client for the given site (default
// datadoghq.com). monitorTags optionally narrows the monitors considered.
func NewDatadogClient(site, apiKey, appKey string, monitorTags []string) *DatadogClient {
	if site == "" {
		site = "datadoghq.com"
	}
	return &DatadogClient{
		baseURL:     fmt.Sprintf("https://api.%s/api/v1", site),
		apiKey:      apiKey,
		appKey:      appKey,
		monitorTags: monitorTags,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *DatadogClient) get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("DD-API-KEY", c.apiKey)
	req.Header.Set("DD-APPLICATION-KEY", c.appKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("datadog GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return &StatusError{Service: "datadog", StatusCode: resp.StatusCode, Message: string(raw)}
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode datadog response: %w", err)
	}
	return nil
}

// TestConnection validates the API key.
func (c *DatadogClient) TestConnection(ctx context.Context) error {
	var result struct {
		Valid bool `json:"valid"`
	}
	if err := c.get(ctx, "/validate", nil, &result); err != nil {
		return err
	}
	if !result.Valid {
		return fmt.Errorf("datadog API key is not valid")
	}
	return nil
}

// ListAlertingMonitors returns monitors currently in the Alert state.
func (c *DatadogClient) ListAlertingMonitors(ctx context.Context) ([]Monitor, error) {
	q := url.Values{}
	if len(c.monitorTags) > 0 {
		q.Set("monitor_tags", strings.Join(c.monitorTags, ","))
	}
	var monitors []Monitor
	if err := c.get(ctx, "/monitor", q, &monitors); err != nil {
		return nil, err
	}
	alerting := monitors[:0]
	for _, m := range monitors {
		if m.OverallState == "Alert" {
			alerting = append(alerting, m)
		}
	}
	return alerting, nil
}
