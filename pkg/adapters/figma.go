package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const figmaAPI = "https://api.figma.com/v1"

// FigmaClient reads file metadata and components from the Figma REST API.
type FigmaClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewFigmaClient creates a Figma client authenticated with a personal token.
func NewFigmaClient(token string) *FigmaClient {
	return &FigmaClient{
		baseURL:    figmaAPI,
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *FigmaClient) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-Figma-Token", c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("figma GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return &StatusError{Service: "figma", StatusCode: resp.StatusCode, Message: string(raw)}
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode figma response: %w", err)
	}
	return nil
}

// TestConnection verifies the token against the /me endpoint.
func (c *FigmaClient) TestConnection(ctx context.Context) error {
	var me struct {
		ID string `json:"id"`
	}
	return c.get(ctx, "/me", &me)
}

// GetFile returns file-level metadata.
func (c *FigmaClient) GetFile(ctx context.Context, fileKey string) (*DesignFile, error) {
	var file struct {
		Name         string `json:"name"`
		LastModified string `json:"lastModified"`
		Version      string `json:"version"`
	}
	if err := c.get(ctx, "/files/"+fileKey, &file); err != nil {
		return nil, err
	}
	return &DesignFile{
		Name:         file.Name,
		LastModified: file.LastModified,
		Version:      file.Version,
	}, nil
}

// GetComponents returns the published components of a file.
func (c *FigmaClient) GetComponents(ctx context.Context, fileKey string) ([]DesignComponent, error) {
	var resp struct {
		Meta struct {
			Components []struct {
				Name        string `json:"name"`
				Description string `json:"description"`
			} `json:"components"`
		} `json:"meta"`
	}
	if err := c.get(ctx, "/files/"+fileKey+"/components", &resp); err != nil {
		return nil, err
	}
	components := make([]DesignComponent, 0, len(resp.Meta.Components))
	for _, comp := range resp.Meta.Components {
		components = append(components, DesignComponent{
			Name:        comp.Name,
			Description: comp.Description,
		})
	}
	return components, nil
}
