package models

import (
	"time"

	"github.com/shipfleet/shipfleet/pkg/masking"
	"github.com/shipfleet/shipfleet/pkg/services"
)

// ConnectionView is a stored service credential with the token and
// sensitive config values masked. The reveal endpoint is the only place
// credentials leave the API verbatim.
type ConnectionView struct {
	ID           int            `json:"id"`
	Project      int            `json:"project_id"`
	Kind         string         `json:"service_kind"`
	BaseURL      string         `json:"base_url"`
	Enabled      bool           `json:"enabled"`
	HasToken     bool           `json:"has_token"`
	MaskedToken  string         `json:"masked_token"`
	MaskedConfig map[string]any `json:"masked_config"`
	LastSyncAt   *time.Time     `json:"last_sync_at,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// NewConnectionView masks a stored connection for display.
func NewConnectionView(c *services.Connection) *ConnectionView {
	return &ConnectionView{
		ID:           c.ID,
		Project:      c.Project,
		Kind:         c.Kind,
		BaseURL:      c.BaseURL,
		Enabled:      c.Enabled,
		HasToken:     c.Token != "",
		MaskedToken:  masking.MaskToken(c.Token),
		MaskedConfig: masking.MaskConfig(c.Config),
		LastSyncAt:   c.LastSyncAt,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
