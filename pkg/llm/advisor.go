package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
)

// Advisor runs the fleet's prompt programs. Every method returns a validated
// result: on model failure or malformed JSON it substitutes the per-prompt
// fallback, so callers never see an error and never see out-of-range values.
type Advisor struct {
	client Client
}

// NewAdvisor wraps a completion client.
func NewAdvisor(client Client) *Advisor {
	return &Advisor{client: client}
}

// TicketInfo is the slice of an issue-tracker ticket the prompts need.
type TicketInfo struct {
	Key         string   `json:"key"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    string   `json:"priority"`
	Labels      []string `json:"labels"`
	Status      string   `json:"status,omitempty"`
}

// Story is a user story extracted from a ticket.
type Story struct {
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	AcceptanceCriteria []string `json:"acceptance_criteria"`
}

// RequirementsAnalysis is the product-intelligence result.
type RequirementsAnalysis struct {
	Summary              string   `json:"summary"`
	Stories              []Story  `json:"stories"`
	Complexity           string   `json:"complexity"`
	EstimatedEffortHours float64  `json:"estimated_effort_hours"`
	Tags                 []string `json:"tags"`
	RelatedTopics        []string `json:"related_topics"`
}

// AnalyzeRequirements extracts structured requirements from a ticket.
// Complexity is always one of low/medium/high and effort is non-negative.
func (a *Advisor) AnalyzeRequirements(ctx context.Context, ticket TicketInfo) RequirementsAnalysis {
	fallback := RequirementsAnalysis{
		Summary:              ticket.Title,
		Complexity:           "medium",
		EstimatedEffortHours: 4,
	}
	system := "You are a product intelligence agent. Analyze the ticket and extract " +
		"structured requirements. You MUST return valid JSON with these exact keys: " +
		"summary (string), stories (list of objects with title, description, " +
		"acceptance_criteria), complexity (one of: low, medium, high), " +
		"estimated_effort_hours (number), tags (list of strings), " +
		"related_topics (list of strings). Return ONLY JSON, no other text."
	user := fmt.Sprintf("Analyze this ticket:\nTitle: %s\nDescription: %s\nPriority: %s\nLabels: %s",
		ticket.Title, ticket.Description, ticket.Priority, strings.Join(ticket.Labels, ", "))

	var result RequirementsAnalysis
	if err := a.call(ctx, system, user, 2048, &result); err != nil {
		slog.Warn("Requirements analysis failed, using fallback", "error", err)
		return fallback
	}
	if result.Summary == "" {
		result.Summary = ticket.Title
	}
	if !oneOf(result.Complexity, "low", "medium", "high") {
		result.Complexity = "medium"
	}
	if result.EstimatedEffortHours <= 0 {
		result.EstimatedEffortHours = fallback.EstimatedEffortHours
	}
	return result
}

// ComponentSpec describes one UI component derived from a design file.
type ComponentSpec struct {
	Name       string `json:"name"`
	CSSChanges any    `json:"css_changes,omitempty"`
	Props      any    `json:"props,omitempty"`
}

// ImplementationNotes is the design-sync result.
type ImplementationNotes struct {
	ComponentSpecs        []ComponentSpec `json:"component_specs"`
	ImplementationSteps   []string        `json:"implementation_steps"`
	DesignTicketAlignment string          `json:"design_ticket_alignment"`
	Notes                 string          `json:"notes"`
}

// GenerateImplementationNotes compares design changes with open tickets and
// produces implementation guidance. Alignment is one of
// matched/mismatched/partial.
func (a *Advisor) GenerateImplementationNotes(ctx context.Context, designData, ticketData any) ImplementationNotes {
	fallback := ImplementationNotes{DesignTicketAlignment: "partial"}
	system := "You are a design-to-code translation agent. Compare design changes with " +
		"ticket requirements and generate implementation notes. You MUST return " +
		"valid JSON with these exact keys: component_specs (list of objects with " +
		"name, css_changes, props), implementation_steps (list of strings), " +
		"design_ticket_alignment (one of: matched, mismatched, partial), " +
		"notes (string). Return ONLY JSON, no other text."
	user := fmt.Sprintf("Design data: %s\nTicket data: %s", jsonDump(designData), jsonDump(ticketData))

	var result ImplementationNotes
	if err := a.call(ctx, system, user, 3000, &result); err != nil {
		slog.Warn("Implementation notes generation failed, using fallback", "error", err)
		return fallback
	}
	if !oneOf(result.DesignTicketAlignment, "matched", "mismatched", "partial") {
		result.DesignTicketAlignment = "partial"
	}
	return result
}

// BoilerplateFile is one generated scaffold file.
type BoilerplateFile struct {
	Path        string `json:"path"`
	Content     string `json:"content"`
	Description string `json:"description"`
}

// Boilerplate is the code-orchestration scaffolding result.
type Boilerplate struct {
	Files                      []BoilerplateFile `json:"files"`
	PRDescription              string            `json:"pr_description"`
	SuggestedReviewersCriteria string            `json:"suggested_reviewers_criteria"`
}

// GenerateBoilerplate produces scaffold files and a PR body for a branch.
// Files without a path are dropped; descriptions default to the path.
func (a *Advisor) GenerateBoilerplate(ctx context.Context, requirements any, branchName string) Boilerplate {
	system := "You are a code scaffolding agent. Generate file structure and boilerplate " +
		"based on requirements. You MUST return valid JSON with these exact keys: " +
		"files (list of objects with path, content, description), " +
		"pr_description (string - markdown PR body), " +
		"suggested_reviewers_criteria (string). Return ONLY JSON, no other text."
	user := fmt.Sprintf("Branch: %s\nRequirements: %s", branchName, jsonDump(requirements))

	var result Boilerplate
	if err := a.call(ctx, system, user, 4000, &result); err != nil {
		slog.Warn("Boilerplate generation failed, using fallback", "error", err)
		return Boilerplate{}
	}
	valid := result.Files[:0]
	for _, f := range result.Files {
		if f.Path == "" {
			continue
		}
		if f.Description == "" {
			f.Description = f.Path
		}
		valid = append(valid, f)
	}
	result.Files = valid
	return result
}

// Vulnerability is one security finding.
type Vulnerability struct {
	Severity       string `json:"severity"`
	Type           string `json:"type"`
	File           string `json:"file"`
	Line           any    `json:"line,omitempty"`
	Description    string `json:"description"`
	Recommendation string `json:"recommendation"`
}

// SecurityScan is the security-compliance result. Two invariants are
// enforced regardless of model output: any critical or high finding forces
// Passed=false with risk at least high, and a failed model call yields a
// conservative not-passed result.
type SecurityScan struct {
	Vulnerabilities []Vulnerability `json:"vulnerabilities"`
	OverallRisk     string          `json:"overall_risk"`
	Passed          bool            `json:"passed"`
	Summary         string          `json:"summary"`
}

// CountBySeverity tallies findings per severity.
func (s SecurityScan) CountBySeverity() map[string]int {
	counts := make(map[string]int)
	for _, v := range s.Vulnerabilities {
		counts[v.Severity]++
	}
	return counts
}

// Critical returns the critical-severity findings.
func (s SecurityScan) Critical() []Vulnerability {
	var out []Vulnerability
	for _, v := range s.Vulnerabilities {
		if v.Severity == "critical" {
			out = append(out, v)
		}
	}
	return out
}

// ScanSecurity analyzes a diff for vulnerabilities.
func (a *Advisor) ScanSecurity(ctx context.Context, diff string, filePaths []string) SecurityScan {
	system := "You are a security scanning agent. Analyze the code diff for vulnerabilities " +
		"including: secrets/credentials, SQL injection, XSS, OWASP top 10, insecure " +
		"dependencies, hardcoded passwords, command injection, path traversal. " +
		"You MUST return valid JSON with these exact keys: " +
		"vulnerabilities (list of objects with severity [critical/high/medium/low], " +
		"type, file, line, description, recommendation), " +
		"overall_risk (one of: low, medium, high, critical), " +
		"passed (boolean - false if any critical or high severity found), " +
		"summary (string). Return ONLY JSON, no other text."
	user := fmt.Sprintf("Files changed: %s\n\nDiff:\n%s",
		strings.Join(filePaths, ", "), truncate(diff, 8000))

	var result SecurityScan
	if err := a.call(ctx, system, user, 3000, &result); err != nil {
		slog.Warn("Security scan failed, using conservative fallback", "error", err)
		return SecurityScan{
			OverallRisk: "unknown",
			Passed:      false,
			Summary:     "Security scan AI analysis failed - manual review required",
		}
	}

	valid := result.Vulnerabilities[:0]
	hasCriticalOrHigh := false
	for _, v := range result.Vulnerabilities {
		if !oneOf(v.Severity, "critical", "high", "medium", "low") {
			continue
		}
		if v.Severity == "critical" || v.Severity == "high" {
			hasCriticalOrHigh = true
		}
		valid = append(valid, v)
	}
	result.Vulnerabilities = valid

	if !oneOf(result.OverallRisk, "low", "medium", "high", "critical") {
		result.OverallRisk = "low"
	}
	if hasCriticalOrHigh {
		result.Passed = false
		if result.OverallRisk == "low" || result.OverallRisk == "medium" {
			result.OverallRisk = "high"
		}
	}
	return result
}

// UnitTestSuggestion is one suggested unit test.
type UnitTestSuggestion struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	File        string `json:"file"`
	CodeHint    string `json:"code_hint"`
}

// IntegrationTestSuggestion is one suggested integration test.
type IntegrationTestSuggestion struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// TestSuggestions is the test-intelligence result.
type TestSuggestions struct {
	UnitTests        []UnitTestSuggestion        `json:"unit_tests"`
	IntegrationTests []IntegrationTestSuggestion `json:"integration_tests"`
	EdgeCases        []string                    `json:"edge_cases"`
	CoverageGaps     []string                    `json:"coverage_gaps"`
	PriorityOrder    []string                    `json:"priority_order"`
}

// SuggestTests proposes tests for a diff.
func (a *Advisor) SuggestTests(ctx context.Context, diff string, filePaths []string) TestSuggestions {
	system := "You are a test intelligence agent. Analyze code changes and suggest tests. " +
		"You MUST return valid JSON with these exact keys: " +
		"unit_tests (list of objects with name, description, file, code_hint), " +
		"integration_tests (list of objects with name, description), " +
		"edge_cases (list of strings), coverage_gaps (list of strings), " +
		"priority_order (list of test name strings). Return ONLY JSON, no other text."
	user := fmt.Sprintf("Files changed: %s\n\nDiff:\n%s",
		strings.Join(filePaths, ", "), truncate(diff, 8000))

	var result TestSuggestions
	if err := a.call(ctx, system, user, 3000, &result); err != nil {
		slog.Warn("Test suggestions failed, using fallback", "error", err)
		return TestSuggestions{}
	}
	return result
}

// ReviewAssessment is the review-coordination result. AutoMergeEligible is
// never true for high complexity.
type ReviewAssessment struct {
	Complexity             string   `json:"complexity"`
	RiskAreas              []string `json:"risk_areas"`
	RecommendedExpertise   []string `json:"recommended_expertise"`
	EstimatedReviewMinutes float64  `json:"estimated_review_minutes"`
	Summary                string   `json:"summary"`
	AutoMergeEligible      bool     `json:"auto_merge_eligible"`
}

// AssessReviewComplexity analyzes a merge request for reviewer assignment.
func (a *Advisor) AssessReviewComplexity(ctx context.Context, diff string, fileCount int) ReviewAssessment {
	fallback := ReviewAssessment{Complexity: "medium", EstimatedReviewMinutes: 30}
	system := "You are a code review coordination agent. Analyze the PR for complexity, " +
		"risk areas, and recommended expertise. You MUST return valid JSON with " +
		"these exact keys: complexity (one of: low, medium, high), " +
		"risk_areas (list of strings), recommended_expertise (list of strings " +
		"like 'backend', 'frontend', 'database', 'security', 'devops'), " +
		"estimated_review_minutes (number), summary (string), " +
		"auto_merge_eligible (boolean - true only for low complexity with no " +
		"risk areas). Return ONLY JSON, no other text."
	user := fmt.Sprintf("Files changed: %d\n\nDiff:\n%s", fileCount, truncate(diff, 6000))

	var result ReviewAssessment
	if err := a.call(ctx, system, user, 2048, &result); err != nil {
		slog.Warn("Review complexity analysis failed, using fallback", "error", err)
		return fallback
	}
	if !oneOf(result.Complexity, "low", "medium", "high") {
		result.Complexity = "medium"
	}
	if result.Complexity == "high" {
		result.AutoMergeEligible = false
	}
	if result.EstimatedReviewMinutes <= 0 {
		result.EstimatedReviewMinutes = fallback.EstimatedReviewMinutes
	}
	return result
}

// Commit is a minimal commit record fed to release-notes generation.
type Commit struct {
	ID      string `json:"id,omitempty"`
	Message string `json:"message"`
	Author  string `json:"author,omitempty"`
}

// ReleaseNotes is the deployment-orchestrator result.
type ReleaseNotes struct {
	VersionSummary  string   `json:"version_summary"`
	Features        []string `json:"features"`
	Bugfixes        []string `json:"bugfixes"`
	BreakingChanges []string `json:"breaking_changes"`
	Notes           string   `json:"notes"`
}

// DraftReleaseNotes produces user-facing release notes from recent commits.
// When the model is unavailable the fallback is assembled from the commit
// messages themselves.
func (a *Advisor) DraftReleaseNotes(ctx context.Context, commits []Commit) ReleaseNotes {
	system := "You are a release notes generator. Create user-facing release notes from " +
		"the commit history and PRs. You MUST return valid JSON with these exact keys: " +
		"version_summary (string - 1-2 sentence overview), " +
		"features (list of strings), bugfixes (list of strings), " +
		"breaking_changes (list of strings), notes (string). " +
		"Return ONLY JSON, no other text."
	capped := commits
	if len(capped) > 20 {
		capped = capped[:20]
	}
	user := fmt.Sprintf("Commits: %s", jsonDump(capped))

	var result ReleaseNotes
	if err := a.call(ctx, system, user, 2048, &result); err != nil {
		slog.Warn("Release notes generation failed, using commit-log fallback", "error", err)
		features := make([]string, 0, 10)
		for _, c := range commits {
			if len(features) == 10 {
				break
			}
			if c.Message != "" {
				features = append(features, strings.SplitN(c.Message, "\n", 2)[0])
			}
		}
		return ReleaseNotes{
			VersionSummary: fmt.Sprintf("Release with %d commits", len(commits)),
			Features:       features,
			Notes:          "Auto-generated from commit log (AI analysis unavailable)",
		}
	}
	return result
}

// Bottleneck is one flow problem identified in project metrics.
type Bottleneck struct {
	Area        string `json:"area"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
}

// Predictions is the forward-looking part of a metrics analysis. The
// completion percentage is clamped to [0,100] and the trend to its enum.
type Predictions struct {
	SprintCompletionPct float64 `json:"sprint_completion_pct"`
	VelocityTrend       string  `json:"velocity_trend"`
}

// MetricsInsights is the analytics result.
type MetricsInsights struct {
	Bottlenecks      []Bottleneck `json:"bottlenecks"`
	Predictions      Predictions  `json:"predictions"`
	Recommendations  []string     `json:"recommendations"`
	ExecutiveSummary string       `json:"executive_summary"`
}

// ProjectMetrics is the raw data gathered for analytics.
type ProjectMetrics struct {
	TaskDistribution    map[string]int `json:"task_distribution"`
	CompletedThisWeek   int            `json:"completed_this_week"`
	WeeklyActivityCount int            `json:"weekly_activity_count"`
	ActiveSprint        map[string]any `json:"active_sprint_info,omitempty"`
	TotalTasks          int            `json:"total_tasks"`
}

// AnalyzeMetrics turns raw project metrics into insights. On model failure a
// basic analysis is computed from the task distribution.
func (a *Advisor) AnalyzeMetrics(ctx context.Context, metrics ProjectMetrics) MetricsInsights {
	system := "You are a project analytics agent. Analyze velocity metrics and identify " +
		"insights. You MUST return valid JSON with these exact keys: " +
		"bottlenecks (list of objects with area, description, severity), " +
		"predictions (object with sprint_completion_pct as number 0-100, " +
		"velocity_trend as one of: increasing, stable, decreasing), " +
		"recommendations (list of actionable strings), " +
		"executive_summary (string - 2-3 sentences). Return ONLY JSON, no other text."
	user := fmt.Sprintf("Metrics data:\n%s", jsonDump(metrics))

	var result MetricsInsights
	if err := a.call(ctx, system, user, 2048, &result); err != nil {
		slog.Warn("Metrics analysis failed, using raw-metrics fallback", "error", err)
		total := 0
		for _, n := range metrics.TaskDistribution {
			total += n
		}
		done := metrics.TaskDistribution["done"]
		completion := 0.0
		if total > 0 {
			completion = float64(done) / float64(total) * 100
		}
		return MetricsInsights{
			Predictions: Predictions{
				SprintCompletionPct: completion,
				VelocityTrend:       "stable",
			},
			ExecutiveSummary: fmt.Sprintf(
				"Project has %d tasks total, %d completed (%.0f%%). AI analysis unavailable - showing raw metrics.",
				total, done, completion),
		}
	}
	if result.Predictions.SprintCompletionPct < 0 || result.Predictions.SprintCompletionPct > 100 {
		result.Predictions.SprintCompletionPct = 0
	}
	if !oneOf(result.Predictions.VelocityTrend, "increasing", "stable", "decreasing") {
		result.Predictions.VelocityTrend = "stable"
	}
	return result
}

// call runs one completion and decodes the strict-JSON response.
func (a *Advisor) call(ctx context.Context, system, user string, maxTokens int, out any) error {
	content, err := a.client.Complete(ctx, system, user, maxTokens)
	if err != nil {
		return err
	}
	return ExtractJSON(content, out)
}

func jsonDump(v any) string {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(raw)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
