package models

import (
	"github.com/shipfleet/shipfleet/pkg/fleet"
	"github.com/shipfleet/shipfleet/pkg/services"
)

// FleetStatus is the GET /agents/status response.
type FleetStatus struct {
	Agents         []fleet.AgentStatus `json:"agents"`
	BusRunning     bool                `json:"bus_running"`
	ReviewSLAHours int                 `json:"review_sla_hours"`
}

// ProjectAgent pairs a registered agent with its per-project settings.
type ProjectAgent struct {
	fleet.AgentStatus
	ProjectConfig *services.AgentSettings `json:"project_config"`
}
