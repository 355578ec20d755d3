package agents

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shipfleet/shipfleet/pkg/adapters"
	"github.com/shipfleet/shipfleet/pkg/bus"
	"github.com/shipfleet/shipfleet/pkg/llm"
)

// TestIntelligence analyzes diffs for missing coverage and suggests tests.
// The test_report_created event it publishes is the fleet's logical
// "tests passed" signal for auto-merge readiness; it does not execute
// tests.
type TestIntelligence struct {
	bus      *bus.Bus
	resolver *adapters.Resolver
	advisor  *llm.Advisor
}

// NewTestIntelligence creates the agent.
func NewTestIntelligence(b *bus.Bus, resolver *adapters.Resolver, advisor *llm.Advisor) *TestIntelligence {
	return &TestIntelligence{bus: b, resolver: resolver, advisor: advisor}
}

func (a *TestIntelligence) Name() string { return "test_intelligence" }

func (a *TestIntelligence) Description() string {
	return "Analyzes code changes to generate test suggestions, identify coverage gaps, and suggest edge cases"
}

func (a *TestIntelligence) SubscribedKinds() []bus.Kind {
	return []bus.Kind{bus.KindPROpened, bus.KindCodePushed, bus.KindSecurityScanComplete}
}

func (a *TestIntelligence) Handle(ctx context.Context, e *bus.Event) error {
	var in diffInput
	if err := e.Payload.Decode(&in); err != nil {
		return fmt.Errorf("decode diff payload: %w", err)
	}
	slog.Info("Test analysis", "agent", a.Name(), "mr_iid", in.MRIID, "project", e.Project)

	vcs, err := a.resolver.VersionControl(ctx, e.Project)
	if err != nil {
		slog.Warn("Failed to resolve VCS", "project", e.Project, "error", err)
	}

	diff, files := fetchDiff(ctx, vcs, in)
	if diff == "" {
		slog.Info("No diff available for test analysis", "mr_iid", in.MRIID)
		return nil
	}

	suggestions := a.advisor.SuggestTests(ctx, diff, files)

	if vcs != nil && in.MRIID != 0 {
		if err := vcs.AddMRComment(ctx, in.MRIID, truncateComment(suggestionsComment(suggestions))); err != nil {
			slog.Warn("Failed to post test suggestions", "mr_iid", in.MRIID, "error", err)
		}
	}

	if err := publish(a.bus, e, bus.KindTestSuggestionsGenerated, a.Name(), bus.Payload{
		"mr_iid":                  in.MRIID,
		"unit_tests_count":        len(suggestions.UnitTests),
		"integration_tests_count": len(suggestions.IntegrationTests),
		"edge_cases":              suggestions.EdgeCases,
		"suggestions":             suggestions,
	}); err != nil {
		return err
	}

	return publish(a.bus, e, bus.KindTestReportCreated, a.Name(), bus.Payload{
		"mr_iid":          in.MRIID,
		"total_suggested": len(suggestions.UnitTests) + len(suggestions.IntegrationTests),
		"coverage_gaps":   suggestions.CoverageGaps,
		"priority_order":  suggestions.PriorityOrder,
	})
}

func suggestionsComment(s llm.TestSuggestions) string {
	var b strings.Builder
	b.WriteString("## Test Suggestions\n\n")

	if len(s.UnitTests) > 0 {
		b.WriteString("### Unit Tests\n")
		tests := s.UnitTests
		if len(tests) > 5 {
			tests = tests[:5]
		}
		for _, t := range tests {
			fmt.Fprintf(&b, "- **%s**: %s\n", t.Name, t.Description)
			if t.CodeHint != "" {
				fmt.Fprintf(&b, "  ```\n  %s\n  ```\n", t.CodeHint)
			}
		}
		b.WriteString("\n")
	}

	if len(s.IntegrationTests) > 0 {
		b.WriteString("### Integration Tests\n")
		tests := s.IntegrationTests
		if len(tests) > 3 {
			tests = tests[:3]
		}
		for _, t := range tests {
			fmt.Fprintf(&b, "- **%s**: %s\n", t.Name, t.Description)
		}
		b.WriteString("\n")
	}

	if len(s.EdgeCases) > 0 {
		b.WriteString("### Edge Cases to Consider\n")
		cases := s.EdgeCases
		if len(cases) > 5 {
			cases = cases[:5]
		}
		for _, ec := range cases {
			fmt.Fprintf(&b, "- %s\n", ec)
		}
		b.WriteString("\n")
	}

	if len(s.CoverageGaps) > 0 {
		b.WriteString("### Coverage Gaps\n")
		gaps := s.CoverageGaps
		if len(gaps) > 5 {
			gaps = gaps[:5]
		}
		for _, g := range gaps {
			fmt.Fprintf(&b, "- %s\n", g)
		}
	}
	return b.String()
}
