package agents

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/shipfleet/shipfleet/pkg/adapters"
	"github.com/shipfleet/shipfleet/pkg/bus"
	"github.com/shipfleet/shipfleet/pkg/fleet"
	"github.com/shipfleet/shipfleet/pkg/llm"
	"github.com/shipfleet/shipfleet/pkg/services"
)

// ReviewCoordination assigns reviewers, tracks per-MR readiness signals,
// and executes auto-merge when security, tests, eligibility, and the
// project's auto_merge setting all line up.
type ReviewCoordination struct {
	bus      *bus.Bus
	resolver *adapters.Resolver
	advisor  *llm.Advisor
	configs  AgentConfigSource
	tracker  *fleet.MRReadinessTracker
}

// NewReviewCoordination creates the agent.
func NewReviewCoordination(
	b *bus.Bus,
	resolver *adapters.Resolver,
	advisor *llm.Advisor,
	configs AgentConfigSource,
	tracker *fleet.MRReadinessTracker,
) *ReviewCoordination {
	return &ReviewCoordination{
		bus:      b,
		resolver: resolver,
		advisor:  advisor,
		configs:  configs,
		tracker:  tracker,
	}
}

func (a *ReviewCoordination) Name() string { return "review_coordination" }

func (a *ReviewCoordination) Description() string {
	return "Coordinates code reviews: assigns reviewers based on expertise, tracks SLAs, sends reminders, and auto-merges approved PRs"
}

func (a *ReviewCoordination) SubscribedKinds() []bus.Kind {
	return []bus.Kind{
		bus.KindPRReadyForReview,
		bus.KindPROpened,
		bus.KindTestReportCreated,
		bus.KindSecurityScanComplete,
	}
}

func (a *ReviewCoordination) Handle(ctx context.Context, e *bus.Event) error {
	switch e.Kind {
	case bus.KindPROpened, bus.KindPRReadyForReview:
		return a.handlePROpened(ctx, e)
	case bus.KindSecurityScanComplete:
		return a.onSecurityComplete(ctx, e)
	case bus.KindTestReportCreated:
		return a.onTestsComplete(ctx, e)
	}
	return nil
}

func (a *ReviewCoordination) handlePROpened(ctx context.Context, e *bus.Event) error {
	var in diffInput
	if err := e.Payload.Decode(&in); err != nil {
		return fmt.Errorf("decode pr payload: %w", err)
	}
	slog.Info("Review coordination", "agent", a.Name(), "mr_iid", in.MRIID)

	// Initialize the readiness record: a fresh PR starts with no passed
	// signals regardless of what was tracked before.
	a.tracker.Update(e.Project, in.MRIID, func(r *fleet.Readiness) {
		r.SecurityPassed = false
		r.TestsPassed = false
		r.AutoMergeEligible = false
	})

	vcs, err := a.resolver.VersionControl(ctx, e.Project)
	if err != nil {
		slog.Warn("Failed to resolve VCS", "project", e.Project, "error", err)
	}
	diff, files := fetchDiff(ctx, vcs, in)

	assessment := a.advisor.AssessReviewComplexity(ctx, diff, len(files))

	a.tracker.Update(e.Project, in.MRIID, func(r *fleet.Readiness) {
		r.AutoMergeEligible = assessment.AutoMergeEligible
	})

	settings, err := a.configs.Get(ctx, e.Project, a.Name())
	if err != nil {
		slog.Warn("Failed to load review config", "project", e.Project, "error", err)
	}
	reviewerIDs := a.assignReviewers(ctx, vcs, settings, assessment.RecommendedExpertise)

	if err := publish(a.bus, e, bus.KindReviewersAssigned, a.Name(), bus.Payload{
		"mr_iid":                   in.MRIID,
		"reviewers":                reviewerIDs,
		"complexity":               assessment.Complexity,
		"estimated_review_minutes": assessment.EstimatedReviewMinutes,
		"risk_areas":               assessment.RiskAreas,
		"summary":                  assessment.Summary,
		"auto_merge_eligible":      assessment.AutoMergeEligible,
	}); err != nil {
		return err
	}

	if vcs != nil && in.MRIID != 0 {
		if err := vcs.AddMRComment(ctx, in.MRIID, reviewSummaryComment(assessment)); err != nil {
			slog.Warn("Failed to post review summary", "mr_iid", in.MRIID, "error", err)
		}
	}

	riskAreas := "none"
	if len(assessment.RiskAreas) > 0 {
		riskAreas = strings.Join(assessment.RiskAreas, ", ")
	}
	return notify(a.bus, e, a.Name(), fmt.Sprintf(
		"*Review Needed* - MR !%d\nComplexity: %s | Est. time: %.0fmin\nRisk areas: %s",
		in.MRIID, assessment.Complexity, assessment.EstimatedReviewMinutes, riskAreas))
}

type scanCompletePayload struct {
	MRIID  int  `json:"mr_iid"`
	Passed bool `json:"passed"`
}

func (a *ReviewCoordination) onSecurityComplete(ctx context.Context, e *bus.Event) error {
	var in scanCompletePayload
	if err := e.Payload.Decode(&in); err != nil {
		return fmt.Errorf("decode scan payload: %w", err)
	}
	if in.MRIID == 0 || e.Project == 0 {
		return nil
	}

	a.tracker.Update(e.Project, in.MRIID, func(r *fleet.Readiness) {
		r.SecurityPassed = in.Passed
	})

	if !in.Passed {
		slog.Info("MR failed security scan, auto-merge blocked", "mr_iid", in.MRIID)
		return nil
	}
	return a.tryAutoMerge(ctx, e, in.MRIID)
}

func (a *ReviewCoordination) onTestsComplete(ctx context.Context, e *bus.Event) error {
	mrIID := e.Payload.Int("mr_iid")
	if mrIID == 0 || e.Project == 0 {
		return nil
	}

	// A test report is the logical tests-passed signal.
	a.tracker.Update(e.Project, mrIID, func(r *fleet.Readiness) {
		r.TestsPassed = true
	})

	slog.Info("MR test report received", "mr_iid", mrIID)
	return a.tryAutoMerge(ctx, e, mrIID)
}

// tryAutoMerge merges the MR iff auto-merge is enabled for the project and
// all readiness signals are set. The tracker claim guarantees at most one
// merge even when signals land concurrently.
func (a *ReviewCoordination) tryAutoMerge(ctx context.Context, e *bus.Event, mrIID int) error {
	settings, err := a.configs.Get(ctx, e.Project, a.Name())
	if err != nil {
		slog.Warn("Failed to load auto-merge config", "project", e.Project, "error", err)
		return nil
	}
	if !settings.Bool("auto_merge") {
		slog.Info("Auto-merge disabled for project", "mr_iid", mrIID, "project", e.Project)
		return nil
	}

	if !a.tracker.TryClaimAutoMerge(e.Project, mrIID) {
		r, _ := a.tracker.Snapshot(e.Project, mrIID)
		slog.Info("Auto-merge conditions not met",
			"mr_iid", mrIID,
			"security_passed", r.SecurityPassed,
			"tests_passed", r.TestsPassed,
			"eligible", r.AutoMergeEligible)
		return nil
	}

	vcs, err := a.resolver.VersionControl(ctx, e.Project)
	if err != nil || vcs == nil {
		slog.Error("No VCS available for auto-merge", "mr_iid", mrIID, "error", err)
		a.tracker.Release(e.Project, mrIID)
		return nil
	}

	slog.Info("All checks passed, executing auto-merge", "mr_iid", mrIID)
	mr, err := vcs.Merge(ctx, mrIID)
	if err != nil {
		slog.Warn("Auto-merge failed, will retry on later events", "mr_iid", mrIID, "error", err)
		a.tracker.Release(e.Project, mrIID)
		return nil
	}
	a.tracker.Delete(e.Project, mrIID)

	if err := publish(a.bus, e, bus.KindPRAutoMerged, a.Name(), bus.Payload{
		"mr_iid":      mrIID,
		"merge_state": mr.State,
		"merged_by":   "auto-merge",
	}); err != nil {
		return err
	}
	return notify(a.bus, e, a.Name(), fmt.Sprintf(
		"*Auto-Merged* - MR !%d\nSecurity: passed | Tests: passed | Eligible: yes", mrIID))
}

// assignReviewers scores project members by seniority and expertise match
// and picks the top min_reviewers.
func (a *ReviewCoordination) assignReviewers(ctx context.Context, vcs adapters.VersionControl, settings *services.AgentSettings, expertise []string) []int {
	if vcs == nil {
		return nil
	}
	members, err := vcs.ListMembers(ctx)
	if err != nil {
		slog.Warn("Failed to list members for review assignment", "error", err)
		return nil
	}
	if len(members) == 0 {
		return nil
	}

	maintainerLevel := settings.Int("maintainer_access_level", 40)
	developerLevel := settings.Int("developer_access_level", 30)

	expertiseLower := make([]string, len(expertise))
	for i, exp := range expertise {
		expertiseLower[i] = strings.ToLower(exp)
	}

	type scored struct {
		score int
		id    int
	}
	ranked := make([]scored, 0, len(members))
	for _, m := range members {
		score := 0
		switch {
		case m.AccessLevel >= maintainerLevel:
			score += 3
		case m.AccessLevel >= developerLevel:
			score++
		}
		username := strings.ToLower(m.Username)
		nameParts := strings.Fields(strings.ToLower(m.Name))
		for _, exp := range expertiseLower {
			if strings.Contains(username, exp) || containsPart(nameParts, exp) {
				score += 5
			}
		}
		ranked = append(ranked, scored{score: score, id: m.ID})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	count := settings.Int("min_reviewers", 2)
	if count > len(ranked) {
		count = len(ranked)
	}
	ids := make([]int, 0, count)
	for _, r := range ranked[:count] {
		ids = append(ids, r.id)
	}
	return ids
}

func containsPart(parts []string, s string) bool {
	for _, p := range parts {
		if p == s {
			return true
		}
	}
	return false
}

func reviewSummaryComment(a llm.ReviewAssessment) string {
	var b strings.Builder
	b.WriteString("## Review Summary\n\n")
	fmt.Fprintf(&b, "**Complexity:** %s\n", a.Complexity)
	fmt.Fprintf(&b, "**Estimated Review Time:** %.0f minutes\n", a.EstimatedReviewMinutes)
	eligible := "No"
	if a.AutoMergeEligible {
		eligible = "Yes"
	}
	fmt.Fprintf(&b, "**Auto-merge Eligible:** %s\n\n", eligible)

	if len(a.RiskAreas) > 0 {
		b.WriteString("### Risk Areas\n")
		for _, area := range a.RiskAreas {
			fmt.Fprintf(&b, "- %s\n", area)
		}
		b.WriteString("\n")
	}
	if a.Summary != "" {
		fmt.Fprintf(&b, "### Summary\n%s\n", a.Summary)
	}
	return b.String()
}
