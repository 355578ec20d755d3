// ShipFleet server runs the event bus, the agent fleet, the scheduler,
// and the operator HTTP API.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/shipfleet/shipfleet/pkg/adapters"
	"github.com/shipfleet/shipfleet/pkg/agents"
	"github.com/shipfleet/shipfleet/pkg/api"
	"github.com/shipfleet/shipfleet/pkg/bus"
	"github.com/shipfleet/shipfleet/pkg/config"
	"github.com/shipfleet/shipfleet/pkg/database"
	"github.com/shipfleet/shipfleet/pkg/fleet"
	"github.com/shipfleet/shipfleet/pkg/llm"
	"github.com/shipfleet/shipfleet/pkg/services"
	"github.com/shipfleet/shipfleet/pkg/version"
)

const agentCount = 9

func main() {
	configDir := flag.String("config-dir", envOr("CONFIG_DIR", "./config"), "Path to configuration directory")
	flag.Parse()

	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	}

	slog.Info("Starting ShipFleet", "version", version.Full(), "config_dir", *configDir)
	ctx := context.Background()

	// 1. Load settings (defaults < fleet.yaml < environment)
	settings, err := config.Load(filepath.Join(*configDir, "fleet.yaml"))
	if err != nil {
		slog.Error("Failed to load settings", "error", err)
		os.Exit(1)
	}

	// 2. Connect to PostgreSQL and apply migrations
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Domain services
	configService := services.WithDefaults(
		services.NewConfigService(dbClient.Client), settings.AgentDefaults)
	connectionService := services.NewConnectionService(dbClient.Client)
	auditService := services.NewAuditService(dbClient.Client, slog.Default())
	resolver := adapters.NewResolver(connectionService, settings.ChatDefaultChannel)
	slog.Info("Services initialized")

	// 4. LLM advisor
	var llmClient llm.Client = llm.Disabled{}
	if settings.AnthropicAPIKey != "" {
		llmClient, err = llm.NewFromAPIKey(settings.AnthropicAPIKey, llm.Options{
			Model:       settings.LLMModel,
			MaxTokens:   settings.LLMMaxTokens,
			Temperature: settings.LLMTemperature,
		})
		if err != nil {
			slog.Error("Failed to initialize LLM client", "error", err)
			os.Exit(1)
		}
		slog.Info("LLM client initialized", "model", settings.LLMModel)
	} else {
		slog.Warn("No ANTHROPIC_API_KEY set, agents run on fallback analysis")
	}
	advisor := llm.NewAdvisor(llmClient)

	// 5. Event bus and audit recorder
	workers := 4 * agentCount
	if workers < 32 {
		workers = 32
	}
	eventBus := bus.New(bus.Options{
		HistorySize: settings.HistorySize,
		Workers:     workers,
	})
	auditService.Attach(eventBus)

	// 6. Agent fleet
	registry := fleet.NewRegistry(eventBus)
	registry.SetAuditor(auditService)
	tracker := fleet.NewMRReadinessTracker()
	analytics := agents.NewAnalyticsInsights(eventBus, resolver, advisor, configService, connectionService)

	if settings.AgentsEnabled {
		registry.Register(agents.NewProductIntelligence(eventBus, resolver, advisor))
		registry.Register(agents.NewDesignSync(eventBus, resolver, advisor))
		registry.Register(agents.NewCodeOrchestration(eventBus, resolver, advisor))
		registry.Register(agents.NewSecurityCompliance(eventBus, resolver, advisor))
		registry.Register(agents.NewTestIntelligence(eventBus, resolver, advisor))
		registry.Register(agents.NewReviewCoordination(eventBus, resolver, advisor, configService, tracker))
		registry.Register(agents.NewDeploymentOrchestrator(eventBus, resolver, advisor, configService, settings.DeployRequireMonitoring))
		registry.Register(analytics)
		registry.Register(agents.NewChatNotifier(resolver))
	} else {
		slog.Warn("Agent fleet disabled by configuration")
	}

	eventBus.Start(ctx)

	// 7. Scheduler: periodic analytics and audit retention
	scheduler := fleet.NewScheduler(30 * time.Second)
	if settings.AgentsEnabled {
		scheduler.Add("analytics_report",
			time.Duration(settings.AnalyticsScheduleHours)*time.Hour,
			analytics.RunScheduledReport)
	}
	scheduler.Add("audit_retention", 24*time.Hour, func(ctx context.Context) error {
		_, err := auditService.PurgeOlderThan(ctx,
			time.Duration(settings.AuditRetentionDays)*24*time.Hour)
		return err
	})
	scheduler.Start(ctx)

	// 8. HTTP server
	server := api.NewServer(api.Deps{
		Bus:            eventBus,
		Registry:       registry,
		Configs:        configService,
		Connections:    connectionService,
		Audit:          auditService,
		DB:             dbClient.DB(),
		DesignSecret:   settings.DesignWebhookSecret,
		ReviewSLAHours: settings.ReviewSLAHours,
	})
	httpServer := &http.Server{
		Addr:    ":" + strconv.Itoa(settings.Port),
		Handler: server.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	slog.Info("ShipFleet started",
		"agents_enabled", settings.AgentsEnabled,
		"bus_workers", workers,
		"history_size", settings.HistorySize)

	// 9. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 10. Graceful shutdown: scheduler first, then the fleet and bus, then
	// HTTP so in-flight operator requests finish.
	scheduler.Stop()
	registry.StopAll()

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}

func envOr(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
