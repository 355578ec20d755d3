package agents

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/shipfleet/shipfleet/pkg/adapters"
	"github.com/shipfleet/shipfleet/pkg/bus"
	"github.com/shipfleet/shipfleet/pkg/llm"
)

// DeploymentOrchestrator validates release readiness, triggers the CI
// pipeline, drafts release notes, and rolls back when post-deploy health
// probes fail.
type DeploymentOrchestrator struct {
	bus      *bus.Bus
	resolver *adapters.Resolver
	advisor  *llm.Advisor
	configs  AgentConfigSource

	// requireMonitoring makes the zero-probe health check fail. Disable
	// only for projects that deliberately run without monitoring.
	requireMonitoring bool
}

// NewDeploymentOrchestrator creates the agent.
func NewDeploymentOrchestrator(
	b *bus.Bus,
	resolver *adapters.Resolver,
	advisor *llm.Advisor,
	configs AgentConfigSource,
	requireMonitoring bool,
) *DeploymentOrchestrator {
	return &DeploymentOrchestrator{
		bus:               b,
		resolver:          resolver,
		advisor:           advisor,
		configs:           configs,
		requireMonitoring: requireMonitoring,
	}
}

func (a *DeploymentOrchestrator) Name() string { return "deployment_orchestrator" }

func (a *DeploymentOrchestrator) Description() string {
	return "Orchestrates deployments: validates readiness, triggers CI/CD, generates release notes, monitors post-deploy, and handles rollbacks"
}

func (a *DeploymentOrchestrator) SubscribedKinds() []bus.Kind {
	return []bus.Kind{bus.KindMergeToMain, bus.KindPRAutoMerged, bus.KindPRApproved}
}

type deployPayload struct {
	Ref            string   `json:"ref"`
	CommitMessages []string `json:"commit_messages"`
}

type healthResult struct {
	Healthy   bool     `json:"healthy"`
	Errors    []string `json:"errors"`
	Reason    string   `json:"reason,omitempty"`
	ChecksRun int      `json:"checks_run"`
}

func (a *DeploymentOrchestrator) Handle(ctx context.Context, e *bus.Event) error {
	var in deployPayload
	if err := e.Payload.Decode(&in); err != nil {
		return fmt.Errorf("decode deploy payload: %w", err)
	}
	ref := in.Ref
	if ref == "" {
		ref = "main"
	}
	slog.Info("Deployment triggered", "agent", a.Name(), "project", e.Project, "ref", ref)

	if issues := a.readinessIssues(ctx, e.Project); len(issues) > 0 {
		slog.Warn("Deployment blocked", "issues", issues)
		return publish(a.bus, e, bus.KindDeployFailed, a.Name(), bus.Payload{
			"reason": "Readiness check failed",
			"issues": issues,
		})
	}

	if err := publish(a.bus, e, bus.KindDeployStarted, a.Name(), bus.Payload{
		"ref":           ref,
		"trigger_event": string(e.Kind),
	}); err != nil {
		return err
	}

	vcs, err := a.resolver.VersionControl(ctx, e.Project)
	if err != nil {
		slog.Warn("Failed to resolve VCS", "project", e.Project, "error", err)
	}

	pipeline := a.triggerPipeline(ctx, vcs, ref)

	notes, generated := a.releaseNotes(ctx, vcs, in.CommitMessages)
	if generated {
		if err := publish(a.bus, e, bus.KindReleaseNotesGenerated, a.Name(), bus.Payload{
			"version_summary":  notes.VersionSummary,
			"features":         notes.Features,
			"bugfixes":         notes.Bugfixes,
			"breaking_changes": notes.BreakingChanges,
			"notes":            notes.Notes,
		}); err != nil {
			return err
		}
	}

	health := a.checkPostDeployHealth(ctx, e.Project)

	if health.Healthy {
		if err := publish(a.bus, e, bus.KindDeployComplete, a.Name(), bus.Payload{
			"pipeline":     pipeline,
			"health_check": health,
		}); err != nil {
			return err
		}
		return notify(a.bus, e, a.Name(), fmt.Sprintf(
			"*Deployment Complete* :rocket:\nRef: `%s`\nHealth: All checks passed", ref))
	}

	a.rollback(ctx, vcs)
	if err := publish(a.bus, e, bus.KindRollbackTriggered, a.Name(), bus.Payload{
		"reason": health.Reason,
		"errors": health.Errors,
	}); err != nil {
		return err
	}
	return notify(a.bus, e, a.Name(), fmt.Sprintf(
		"*Deployment Rolled Back* :warning:\nReason: %s", health.Reason))
}

// readinessIssues blocks the deploy while work items are still in
// progress. An unreachable work-item source skips the check.
func (a *DeploymentOrchestrator) readinessIssues(ctx context.Context, project int) []string {
	if project == 0 {
		return nil
	}
	source, err := a.resolver.WorkItems(ctx, project)
	if err != nil || source == nil {
		return nil
	}
	inProgress, err := source.ListIssues(ctx, adapters.IssueListOptions{
		State:  "opened",
		Labels: []string{"in-progress"},
	})
	if err != nil {
		slog.Warn("Failed to check work-item readiness", "project", project, "error", err)
		return nil
	}
	if len(inProgress) > 0 {
		return []string{fmt.Sprintf("%d tasks still in progress", len(inProgress))}
	}
	return nil
}

func (a *DeploymentOrchestrator) triggerPipeline(ctx context.Context, vcs adapters.VersionControl, ref string) map[string]any {
	if vcs == nil {
		return map[string]any{"status": "skipped", "reason": "no vcs connection"}
	}
	pipeline, err := vcs.TriggerPipeline(ctx, ref, nil)
	if err != nil {
		slog.Warn("Failed to trigger pipeline", "ref", ref, "error", err)
		return map[string]any{"status": "error"}
	}
	return map[string]any{"status": "triggered", "pipeline_id": pipeline.ID}
}

// releaseNotes drafts notes from recent commits, falling back to commit
// messages carried inline in the trigger event. The second return is false
// when no commit data was available at all.
func (a *DeploymentOrchestrator) releaseNotes(ctx context.Context, vcs adapters.VersionControl, inlineMessages []string) (llm.ReleaseNotes, bool) {
	var commits []llm.Commit
	if vcs != nil {
		fetched, err := vcs.GetCommits(ctx, "", 20)
		if err != nil {
			slog.Warn("Failed to fetch commits for release notes", "error", err)
		}
		for _, c := range fetched {
			commits = append(commits, llm.Commit{Message: c.Message, Author: c.Author})
		}
	}
	if len(commits) == 0 {
		for _, msg := range inlineMessages {
			commits = append(commits, llm.Commit{Message: msg, Author: "team"})
		}
	}
	if len(commits) == 0 {
		return llm.ReleaseNotes{}, false
	}
	return a.advisor.DraftReleaseNotes(ctx, commits), true
}

// checkPostDeployHealth aggregates every monitoring service configured for
// the project. Zero probes is unhealthy unless monitoring was explicitly
// made optional.
func (a *DeploymentOrchestrator) checkPostDeployHealth(ctx context.Context, project int) healthResult {
	if project == 0 {
		return healthResult{Healthy: false, Errors: []string{"No project scope"}, Reason: "No project scope"}
	}

	issueProbes, metricProbes, err := a.resolver.Monitoring(ctx, project)
	if err != nil {
		slog.Warn("Failed to resolve monitoring services", "project", project, "error", err)
		return healthResult{Healthy: false, Errors: []string{"Health check failed to complete"}, Reason: "Health check failed to complete"}
	}

	var errs []string
	checksRun := 0

	threshold := 3
	if settings, err := a.configs.Get(ctx, project, a.Name()); err == nil {
		threshold = settings.Int("error_threshold", 3)
	}

	for _, probe := range issueProbes {
		checksRun++
		issues, err := probe.ListRecentUnresolved(ctx)
		if err != nil {
			slog.Warn("Error-tracking probe failed", "project", project, "error", err)
			errs = append(errs, "Health check failed to complete")
			continue
		}
		if len(issues) > threshold {
			errs = append(errs, fmt.Sprintf("%d new error-tracking issues in last hour (threshold: %d)", len(issues), threshold))
		}
	}

	for _, probe := range metricProbes {
		checksRun++
		alerting, err := probe.ListAlertingMonitors(ctx)
		if err != nil {
			slog.Warn("Metrics probe failed", "project", project, "error", err)
			errs = append(errs, "Health check failed to complete")
			continue
		}
		if len(alerting) > 0 {
			errs = append(errs, fmt.Sprintf("%d monitors in Alert state", len(alerting)))
		}
	}

	if checksRun == 0 && a.requireMonitoring {
		errs = append(errs, "No monitoring services configured")
	}

	result := healthResult{Healthy: len(errs) == 0, Errors: errs, ChecksRun: checksRun}
	if len(errs) > 0 {
		result.Reason = errs[0]
	}
	return result
}

// rollback re-runs the most recent successful pipeline on main with
// rollback variables set.
func (a *DeploymentOrchestrator) rollback(ctx context.Context, vcs adapters.VersionControl) {
	if vcs == nil {
		slog.Error("No VCS connection for rollback")
		return
	}

	pipelines, err := vcs.GetPipelines(ctx, "main", 10)
	if err != nil {
		slog.Error("Failed to list pipelines for rollback", "error", err)
		return
	}
	var lastSuccess *adapters.Pipeline
	for i := range pipelines {
		if pipelines[i].Status == "success" {
			lastSuccess = &pipelines[i]
			break
		}
	}
	if lastSuccess == nil {
		slog.Error("No successful pipeline found on main for rollback")
		return
	}

	rollback, err := vcs.TriggerPipeline(ctx, "main", map[string]string{
		"ROLLBACK":             "true",
		"ROLLBACK_PIPELINE_ID": strconv.Itoa(lastSuccess.ID),
	})
	if err != nil {
		slog.Error("Failed to trigger rollback pipeline", "error", err)
		return
	}
	slog.Info("Rollback pipeline triggered",
		"pipeline_id", rollback.ID,
		"rolling_back_to", lastSuccess.ID)
}
