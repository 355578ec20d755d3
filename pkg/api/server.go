// Package api is the operator HTTP surface: fleet status, per-project
// agent configuration, manual triggers, the event log, service-connection
// CRUD, and the inbound webhook endpoints that translate external payloads
// into bus events.
package api

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shipfleet/shipfleet/pkg/adapters"
	"github.com/shipfleet/shipfleet/pkg/bus"
	"github.com/shipfleet/shipfleet/pkg/fleet"
	"github.com/shipfleet/shipfleet/pkg/services"
)

// ConfigStore reads and writes per-project agent configuration.
// *services.ConfigService implements it.
type ConfigStore interface {
	Get(ctx context.Context, project int, name string) (*services.AgentSettings, error)
	List(ctx context.Context, project int, names []string) ([]*services.AgentSettings, error)
	Upsert(ctx context.Context, project int, name string, enabled *bool, config map[string]any) (*services.AgentSettings, error)
}

// ConnectionStore reads and writes stored service credentials.
// *services.ConnectionService implements it.
type ConnectionStore interface {
	List(ctx context.Context, project int) ([]*services.Connection, error)
	Upsert(ctx context.Context, in services.UpsertInput) (*services.Connection, error)
	Delete(ctx context.Context, id int) error
	TouchSync(ctx context.Context, id int) error
	OfKind(ctx context.Context, kind string) ([]*adapters.Credential, error)
}

// EventLog reads the persisted audit trail. *services.AuditService
// implements it. A nil EventLog makes the events endpoint serve from the
// bus's in-memory history instead.
type EventLog interface {
	Recent(ctx context.Context, project int, kind string, limit int) ([]*services.AuditRecord, error)
}

// Deps bundles everything the server needs. DB and Audit may be nil; the
// health and events endpoints degrade to bus-only views.
type Deps struct {
	Bus            *bus.Bus
	Registry       *fleet.Registry
	Configs        ConfigStore
	Connections    ConnectionStore
	Audit          EventLog
	DB             *sql.DB
	DesignSecret   string
	ReviewSLAHours int
	Logger         *slog.Logger
}

// Server is the operator API server.
type Server struct {
	bus            *bus.Bus
	registry       *fleet.Registry
	configs        ConfigStore
	connections    ConnectionStore
	audit          EventLog
	db             *sql.DB
	designSecret   string
	reviewSLAHours int
	logger         *slog.Logger
}

// NewServer creates the API server from its dependencies.
func NewServer(d Deps) *Server {
	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		bus:            d.Bus,
		registry:       d.Registry,
		configs:        d.Configs,
		connections:    d.Connections,
		audit:          d.Audit,
		db:             d.DB,
		designSecret:   d.DesignSecret,
		reviewSLAHours: d.ReviewSLAHours,
		logger:         logger.With("component", "api"),
	}
}

// Router builds the gin engine with every route mounted.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	r.GET("/health", s.Health)

	api := r.Group("/api")
	api.GET("/agents/status", s.FleetStatus)

	project := api.Group("/projects/:pid")
	project.GET("/agents", s.ListProjectAgents)
	project.PUT("/agents/:name", s.UpdateAgentConfig)
	project.POST("/agents/:name/trigger", s.TriggerAgent)
	project.GET("/agents/events", s.ListAgentEvents)
	project.GET("/connections", s.ListConnections)
	project.POST("/connections", s.UpsertConnection)
	project.POST("/connections/:kind/reveal", s.RevealConnection)
	project.DELETE("/connections/:kind", s.DeleteConnection)
	project.POST("/connections/:kind/test", s.TestServiceConnection)

	webhooks := api.Group("/webhooks")
	webhooks.POST("/tracker", s.TrackerWebhook)
	webhooks.POST("/vcs", s.VCSWebhook)
	webhooks.POST("/design", s.DesignWebhook)

	return r
}

// requestLogger logs each request at debug with method, path, status, and
// elapsed time.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Debug("Request handled",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"elapsed_ms", time.Since(start).Milliseconds())
	}
}

// projectID parses the :pid path parameter. On failure it writes the 400
// response and returns ok=false.
func projectID(c *gin.Context) (int, bool) {
	pid, err := strconv.Atoi(c.Param("pid"))
	if err != nil || pid < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return 0, false
	}
	return pid, true
}
