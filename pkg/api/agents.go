package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shipfleet/shipfleet/pkg/bus"
	"github.com/shipfleet/shipfleet/pkg/database"
	"github.com/shipfleet/shipfleet/pkg/models"
	"github.com/shipfleet/shipfleet/pkg/version"
)

// Health reports process liveness plus database reachability when a
// database is wired.
func (s *Server) Health(c *gin.Context) {
	resp := gin.H{
		"status":      "healthy",
		"version":     version.Full(),
		"bus_running": s.bus.Running(),
	}
	if s.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()
		dbHealth, err := database.Health(ctx, s.db)
		resp["database"] = dbHealth
		if err != nil {
			resp["status"] = "degraded"
			c.JSON(http.StatusServiceUnavailable, resp)
			return
		}
	}
	c.JSON(http.StatusOK, resp)
}

// FleetStatus is GET /api/agents/status: every registered agent with its
// live metrics.
func (s *Server) FleetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, models.FleetStatus{
		Agents:         s.registry.Status(),
		BusRunning:     s.bus.Running(),
		ReviewSLAHours: s.reviewSLAHours,
	})
}

// ListProjectAgents is GET /api/projects/:pid/agents: the fleet merged with
// the project's stored configuration.
func (s *Server) ListProjectAgents(c *gin.Context) {
	pid, ok := projectID(c)
	if !ok {
		return
	}

	statuses := s.registry.Status()
	settings, err := s.configs.List(c.Request.Context(), pid, s.registry.Names())
	if err != nil {
		s.logger.Error("Failed to list agent configs", "project", pid, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load agent configs"})
		return
	}

	out := make([]models.ProjectAgent, 0, len(statuses))
	for i, status := range statuses {
		pa := models.ProjectAgent{AgentStatus: status}
		if i < len(settings) {
			pa.ProjectConfig = settings[i]
		}
		out = append(out, pa)
	}
	c.JSON(http.StatusOK, gin.H{"project_id": pid, "agents": out})
}

type updateAgentRequest struct {
	Enabled *bool          `json:"enabled"`
	Config  map[string]any `json:"config"`
}

// UpdateAgentConfig is PUT /api/projects/:pid/agents/:name: stores the
// per-project enabled flag and option map.
func (s *Server) UpdateAgentConfig(c *gin.Context) {
	pid, ok := projectID(c)
	if !ok {
		return
	}
	name := c.Param("name")
	if !s.agentRegistered(name) {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown agent " + name})
		return
	}

	var req updateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	settings, err := s.configs.Upsert(c.Request.Context(), pid, name, req.Enabled, req.Config)
	if err != nil {
		s.logger.Error("Failed to update agent config", "project", pid, "agent", name, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update agent config"})
		return
	}
	c.JSON(http.StatusOK, settings)
}

type triggerRequest struct {
	EventData map[string]any `json:"event_data"`
}

// TriggerAgent is POST /api/projects/:pid/agents/:name/trigger: publishes
// an event of the agent's first subscribed kind with demo defaults under
// the caller's data.
func (s *Server) TriggerAgent(c *gin.Context) {
	pid, ok := projectID(c)
	if !ok {
		return
	}
	name := c.Param("name")

	kind, err := s.registry.FirstKind(name)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	var req triggerRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	evt := bus.NewEvent(kind, "manual_trigger", demoPayload(name, req.EventData))
	evt.Project = pid
	if err := s.bus.Publish(evt); err != nil {
		s.logger.Error("Manual trigger publish failed", "agent", name, "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"event_id": evt.ID,
		"kind":     string(kind),
		"agent":    name,
	})
}

// ListAgentEvents is GET /api/projects/:pid/agents/events: the persisted
// audit trail when a database is wired, the in-memory bus history
// otherwise.
func (s *Server) ListAgentEvents(c *gin.Context) {
	pid, ok := projectID(c)
	if !ok {
		return
	}

	limit := 50
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = n
	}
	kindFilter := c.Query("kind")
	if kindFilter != "" {
		if _, err := bus.ParseKind(kindFilter); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	if s.audit != nil {
		records, err := s.audit.Recent(c.Request.Context(), pid, kindFilter, limit)
		if err != nil {
			s.logger.Error("Failed to read audit trail", "project", pid, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read event log"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"project_id": pid, "events": records, "source": "audit"})
		return
	}

	history := s.bus.History(limit, bus.Kind(kindFilter), pid)
	events := make([]*models.Event, 0, len(history))
	for _, e := range history {
		events = append(events, models.EventFromBus(e))
	}
	c.JSON(http.StatusOK, gin.H{"project_id": pid, "events": events, "source": "history"})
}

func (s *Server) agentRegistered(name string) bool {
	for _, registered := range s.registry.Names() {
		if registered == name {
			return true
		}
	}
	return false
}
