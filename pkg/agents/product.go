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

// ProductIntelligence analyzes tracker tickets: it extracts requirements,
// stories, and complexity estimates, and files tracker issues for the
// extracted stories.
type ProductIntelligence struct {
	bus      *bus.Bus
	resolver *adapters.Resolver
	advisor  *llm.Advisor
}

// NewProductIntelligence creates the agent.
func NewProductIntelligence(b *bus.Bus, resolver *adapters.Resolver, advisor *llm.Advisor) *ProductIntelligence {
	return &ProductIntelligence{bus: b, resolver: resolver, advisor: advisor}
}

func (a *ProductIntelligence) Name() string { return "product_intelligence" }

func (a *ProductIntelligence) Description() string {
	return "Analyzes tracker tickets to extract requirements, stories, acceptance criteria, and complexity estimates"
}

func (a *ProductIntelligence) SubscribedKinds() []bus.Kind {
	return []bus.Kind{bus.KindTicketCreated, bus.KindTicketUpdated}
}

func (a *ProductIntelligence) Handle(ctx context.Context, e *bus.Event) error {
	var ticket llm.TicketInfo
	if err := e.Payload.Decode(&ticket); err != nil {
		return fmt.Errorf("decode ticket payload: %w", err)
	}
	slog.Info("Analyzing ticket", "agent", a.Name(), "ticket", ticket.Key)

	analysis := a.advisor.AnalyzeRequirements(ctx, ticket)

	if err := publish(a.bus, e, bus.KindRequirementsAnalyzed, a.Name(), bus.Payload{
		"ticket_key": ticket.Key,
		"analysis":   analysis,
		"stories":    analysis.Stories,
	}); err != nil {
		return err
	}

	if err := publish(a.bus, e, bus.KindComplexityTagged, a.Name(), bus.Payload{
		"ticket_key":             ticket.Key,
		"complexity":             analysis.Complexity,
		"estimated_effort_hours": analysis.EstimatedEffortHours,
		"tags":                   analysis.Tags,
	}); err != nil {
		return err
	}

	if len(analysis.Stories) > 0 {
		if err := publish(a.bus, e, bus.KindStoriesExtracted, a.Name(), bus.Payload{
			"ticket_key": ticket.Key,
			"stories":    analysis.Stories,
		}); err != nil {
			return err
		}
	}

	a.createStoryIssues(ctx, e.Project, ticket, analysis.Stories)

	return notify(a.bus, e, a.Name(), fmt.Sprintf(
		"*Requirements Analyzed* for `%s`\nComplexity: %s | Effort: %.0fh | Stories: %d",
		ticket.Key, analysis.Complexity, analysis.EstimatedEffortHours, len(analysis.Stories)))
}

// createStoryIssues files one tracker issue per story, capped at five.
// Tracker problems are logged and skipped.
func (a *ProductIntelligence) createStoryIssues(ctx context.Context, project int, ticket llm.TicketInfo, stories []llm.Story) {
	if project == 0 || len(stories) == 0 {
		return
	}
	tracker, err := a.resolver.IssueTracker(ctx, project)
	if err != nil || tracker == nil {
		if err != nil {
			slog.Warn("Failed to resolve issue tracker", "project", project, "error", err)
		}
		return
	}

	if len(stories) > 5 {
		stories = stories[:5]
	}
	for _, story := range stories {
		title := story.Title
		if title == "" {
			title = "Untitled"
		}
		description := fmt.Sprintf("**From tracker:** %s\n\n%s\n\n**Acceptance Criteria:**\n%s",
			ticket.Key, story.Description, acceptanceList(story.AcceptanceCriteria))
		if _, err := tracker.CreateIssue(ctx, title, description, []string{"auto-generated", "from-jira"}); err != nil {
			slog.Warn("Failed to create story issue", "title", title, "error", err)
		}
	}
}

func acceptanceList(criteria []string) string {
	if len(criteria) == 0 {
		return "N/A"
	}
	lines := make([]string, len(criteria))
	for i, c := range criteria {
		lines[i] = "- " + c
	}
	return strings.Join(lines, "\n")
}
