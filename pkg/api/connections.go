package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shipfleet/shipfleet/pkg/adapters"
	"github.com/shipfleet/shipfleet/pkg/models"
	"github.com/shipfleet/shipfleet/pkg/services"
)

// ListConnections is GET /api/projects/:pid/connections. Tokens and
// sensitive config values are masked.
func (s *Server) ListConnections(c *gin.Context) {
	pid, ok := projectID(c)
	if !ok {
		return
	}

	conns, err := s.connections.List(c.Request.Context(), pid)
	if err != nil {
		s.logger.Error("Failed to list connections", "project", pid, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list connections"})
		return
	}

	views := make([]*models.ConnectionView, 0, len(conns))
	for _, conn := range conns {
		views = append(views, models.NewConnectionView(conn))
	}
	c.JSON(http.StatusOK, gin.H{"project_id": pid, "connections": views})
}

type upsertConnectionRequest struct {
	Kind    string         `json:"service_kind" binding:"required"`
	BaseURL string         `json:"base_url"`
	Token   string         `json:"token"`
	Config  map[string]any `json:"config"`
	Enabled *bool          `json:"enabled"`
}

// UpsertConnection is POST /api/projects/:pid/connections: creates or
// replaces the binding for (project, kind). An empty token on update keeps
// the stored one, so masked values round-trip.
func (s *Server) UpsertConnection(c *gin.Context) {
	pid, ok := projectID(c)
	if !ok {
		return
	}

	var req upsertConnectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	conn, err := s.connections.Upsert(c.Request.Context(), services.UpsertInput{
		Project: pid,
		Kind:    req.Kind,
		BaseURL: req.BaseURL,
		Token:   req.Token,
		Config:  req.Config,
		Enabled: req.Enabled,
	})
	if err != nil {
		s.logger.Error("Failed to upsert connection", "project", pid, "kind", req.Kind, "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.NewConnectionView(conn))
}

// RevealConnection is POST /api/projects/:pid/connections/:kind/reveal:
// the single endpoint that returns a credential verbatim.
func (s *Server) RevealConnection(c *gin.Context) {
	pid, ok := projectID(c)
	if !ok {
		return
	}

	conn, found := s.findConnection(c, pid, c.Param("kind"))
	if !found {
		return
	}

	s.logger.Info("Credential revealed", "project", pid, "kind", conn.Kind)
	c.JSON(http.StatusOK, gin.H{
		"id":           conn.ID,
		"project_id":   conn.Project,
		"service_kind": conn.Kind,
		"base_url":     conn.BaseURL,
		"token":        conn.Token,
		"config":       conn.Config,
		"enabled":      conn.Enabled,
	})
}

// DeleteConnection is DELETE /api/projects/:pid/connections/:kind.
func (s *Server) DeleteConnection(c *gin.Context) {
	pid, ok := projectID(c)
	if !ok {
		return
	}

	conn, found := s.findConnection(c, pid, c.Param("kind"))
	if !found {
		return
	}
	if err := s.connections.Delete(c.Request.Context(), conn.ID); err != nil {
		s.logger.Error("Failed to delete connection", "id", conn.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete connection"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": conn.Kind})
}

// TestServiceConnection is POST /api/projects/:pid/connections/:kind/test:
// a cheap authenticated probe against the vendor API. Success stamps
// last_sync_at.
func (s *Server) TestServiceConnection(c *gin.Context) {
	pid, ok := projectID(c)
	if !ok {
		return
	}

	conn, found := s.findConnection(c, pid, c.Param("kind"))
	if !found {
		return
	}

	if err := probeConnection(c.Request.Context(), conn); err != nil {
		c.JSON(http.StatusOK, gin.H{"service_kind": conn.Kind, "ok": false, "error": err.Error()})
		return
	}
	if err := s.connections.TouchSync(c.Request.Context(), conn.ID); err != nil {
		s.logger.Warn("Failed to stamp connection sync", "id", conn.ID, "error", err)
	}
	c.JSON(http.StatusOK, gin.H{"service_kind": conn.Kind, "ok": true})
}

// findConnection locates the project's binding of the given kind. It
// writes the 404 response when absent.
func (s *Server) findConnection(c *gin.Context, pid int, kind string) (*services.Connection, bool) {
	conns, err := s.connections.List(c.Request.Context(), pid)
	if err != nil {
		s.logger.Error("Failed to list connections", "project", pid, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list connections"})
		return nil, false
	}
	for _, conn := range conns {
		if conn.Kind == kind {
			return conn, true
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "no " + kind + " connection for project"})
	return nil, false
}

// probeConnection runs the per-vendor connectivity check.
func probeConnection(ctx context.Context, conn *services.Connection) error {
	cred := &adapters.Credential{
		Project: conn.Project,
		Kind:    conn.Kind,
		BaseURL: conn.BaseURL,
		Token:   conn.Token,
		Config:  conn.Config,
	}
	switch conn.Kind {
	case adapters.KindGitLab:
		return adapters.NewGitLabClient(cred.BaseURL, cred.Token, cred.ConfigInt("external_project_id")).TestConnection(ctx)
	case adapters.KindFigma:
		return adapters.NewFigmaClient(cred.Token).TestConnection(ctx)
	case adapters.KindSlack:
		return adapters.NewSlackChat(cred.Token, cred.ConfigString("default_channel")).TestConnection(ctx)
	case adapters.KindSentry:
		return adapters.NewSentryClient(cred.BaseURL, cred.Token, cred.ConfigString("org_slug"), cred.ConfigString("project_slug")).TestConnection(ctx)
	case adapters.KindDatadog:
		return adapters.NewDatadogClient(cred.ConfigString("site"), cred.Token, cred.ConfigString("app_key"), nil).TestConnection(ctx)
	}
	return &adapters.StatusError{Service: conn.Kind, StatusCode: http.StatusNotImplemented, Message: "no probe for service kind"}
}
