package agents

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shipfleet/shipfleet/pkg/adapters"
	"github.com/shipfleet/shipfleet/pkg/bus"
	"github.com/shipfleet/shipfleet/pkg/llm"
)

// AnalyticsInsights gathers project work-item metrics, runs the analysis
// prompt, and publishes reports and bottleneck alerts. It reacts to
// metrics_collected events and also runs from the scheduler.
type AnalyticsInsights struct {
	bus         *bus.Bus
	resolver    *adapters.Resolver
	advisor     *llm.Advisor
	configs     AgentConfigSource
	connections ProjectSource
}

// NewAnalyticsInsights creates the agent.
func NewAnalyticsInsights(
	b *bus.Bus,
	resolver *adapters.Resolver,
	advisor *llm.Advisor,
	configs AgentConfigSource,
	connections ProjectSource,
) *AnalyticsInsights {
	return &AnalyticsInsights{
		bus:         b,
		resolver:    resolver,
		advisor:     advisor,
		configs:     configs,
		connections: connections,
	}
}

func (a *AnalyticsInsights) Name() string { return "analytics_insights" }

func (a *AnalyticsInsights) Description() string {
	return "Collects velocity metrics, generates reports, detects bottlenecks, and provides AI-powered process improvement suggestions"
}

func (a *AnalyticsInsights) SubscribedKinds() []bus.Kind {
	return []bus.Kind{bus.KindMetricsCollected}
}

func (a *AnalyticsInsights) Handle(ctx context.Context, e *bus.Event) error {
	slog.Info("Analytics collection", "agent", a.Name(), "project", e.Project)

	metrics, ok := a.collectMetrics(ctx, e.Project)
	if !ok {
		return nil
	}
	return a.report(ctx, e, metrics, "")
}

// RunScheduledReport is the scheduler entry point: one report per project
// where the agent is enabled, or every connected project when no explicit
// configs exist.
func (a *AnalyticsInsights) RunScheduledReport(ctx context.Context) error {
	projects, err := a.activeProjects(ctx)
	if err != nil {
		return fmt.Errorf("list analytics projects: %w", err)
	}

	for _, project := range projects {
		slog.Info("Scheduled analytics report", "project", project)
		metrics, ok := a.collectMetrics(ctx, project)
		if !ok {
			slog.Info("No metrics for project, skipping", "project", project)
			continue
		}
		evt := bus.NewEvent(bus.KindMetricsCollected, "scheduler", bus.Payload{"trigger": "scheduled"})
		evt.Project = project
		if err := a.report(ctx, evt, metrics, "scheduled"); err != nil {
			slog.Error("Scheduled report failed", "project", project, "error", err)
		}
	}
	return nil
}

func (a *AnalyticsInsights) report(ctx context.Context, e *bus.Event, metrics llm.ProjectMetrics, trigger string) error {
	insights := a.advisor.AnalyzeMetrics(ctx, metrics)

	if len(insights.Bottlenecks) > 0 {
		if err := publish(a.bus, e, bus.KindBottleneckDetected, a.Name(), bus.Payload{
			"bottlenecks":     insights.Bottlenecks,
			"recommendations": insights.Recommendations,
		}); err != nil {
			return err
		}
	}

	reportPayload := bus.Payload{
		"metrics":      metrics,
		"analysis":     insights,
		"generated_at": time.Now().UTC().Format(time.RFC3339),
	}
	if trigger != "" {
		reportPayload["trigger"] = trigger
	}
	if err := publish(a.bus, e, bus.KindReportGenerated, a.Name(), reportPayload); err != nil {
		return err
	}

	header := "*Analytics Report* :chart_with_upwards_trend:"
	if trigger == "scheduled" {
		header = fmt.Sprintf("*Scheduled Analytics Report* (Project #%d)", e.Project)
	}
	return notify(a.bus, e, a.Name(), fmt.Sprintf(
		"%s\n%s\n\nSprint completion: %.0f%%\nVelocity trend: %s\nBottlenecks: %d",
		header, insights.ExecutiveSummary,
		insights.Predictions.SprintCompletionPct,
		insights.Predictions.VelocityTrend,
		len(insights.Bottlenecks)))
}

// collectMetrics builds the metrics snapshot from the project's work-item
// source. Returns false when no source is configured or reachable.
func (a *AnalyticsInsights) collectMetrics(ctx context.Context, project int) (llm.ProjectMetrics, bool) {
	if project == 0 {
		return llm.ProjectMetrics{}, false
	}
	source, err := a.resolver.WorkItems(ctx, project)
	if err != nil || source == nil {
		if err != nil {
			slog.Warn("Failed to resolve work-item source", "project", project, "error", err)
		}
		return llm.ProjectMetrics{}, false
	}

	opened, err := source.ListIssues(ctx, adapters.IssueListOptions{State: "opened"})
	if err != nil {
		slog.Warn("Failed to collect metrics", "project", project, "error", err)
		return llm.ProjectMetrics{}, false
	}
	inProgress, err := source.ListIssues(ctx, adapters.IssueListOptions{State: "opened", Labels: []string{"in-progress"}})
	if err != nil {
		slog.Warn("Failed to list in-progress items", "project", project, "error", err)
	}
	closed, err := source.ListIssues(ctx, adapters.IssueListOptions{State: "closed"})
	if err != nil {
		slog.Warn("Failed to list closed items", "project", project, "error", err)
	}

	weekAgo := time.Now().AddDate(0, 0, -7)
	completedThisWeek := 0
	for _, issue := range closed {
		if issue.ClosedAt != nil && issue.ClosedAt.After(weekAgo) {
			completedThisWeek++
		}
	}
	recent, err := source.ListIssues(ctx, adapters.IssueListOptions{UpdatedAfter: weekAgo})
	if err != nil {
		slog.Warn("Failed to list recent activity", "project", project, "error", err)
	}

	todo := len(opened) - len(inProgress)
	if todo < 0 {
		todo = 0
	}
	return llm.ProjectMetrics{
		TaskDistribution: map[string]int{
			"todo":        todo,
			"in_progress": len(inProgress),
			"done":        len(closed),
		},
		CompletedThisWeek:   completedThisWeek,
		WeeklyActivityCount: len(recent),
		TotalTasks:          len(opened) + len(closed),
	}, true
}

// activeProjects returns the projects with the agent explicitly enabled,
// falling back to every project that has a service connection.
func (a *AnalyticsInsights) activeProjects(ctx context.Context) ([]int, error) {
	configured, err := a.configs.EnabledProjects(ctx, a.Name())
	if err != nil {
		return nil, err
	}
	if len(configured) > 0 {
		return configured, nil
	}
	return a.connections.Projects(ctx)
}
