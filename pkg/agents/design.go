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

// DesignSync reacts to design-tool changes: it compares the changed file
// with open tickets, generates implementation notes, and files a tracker
// issue describing the work.
type DesignSync struct {
	bus      *bus.Bus
	resolver *adapters.Resolver
	advisor  *llm.Advisor
}

// NewDesignSync creates the agent.
func NewDesignSync(b *bus.Bus, resolver *adapters.Resolver, advisor *llm.Advisor) *DesignSync {
	return &DesignSync{bus: b, resolver: resolver, advisor: advisor}
}

func (a *DesignSync) Name() string { return "design_sync" }

func (a *DesignSync) Description() string {
	return "Syncs design changes with open tickets, generates technical implementation notes, and creates tracker issues"
}

func (a *DesignSync) SubscribedKinds() []bus.Kind {
	return []bus.Kind{bus.KindDesignChanged}
}

type designChangedPayload struct {
	FileKey        string         `json:"file_key"`
	DemoDesignData map[string]any `json:"demo_design_data"`
}

func (a *DesignSync) Handle(ctx context.Context, e *bus.Event) error {
	var in designChangedPayload
	if err := e.Payload.Decode(&in); err != nil {
		return fmt.Errorf("decode design payload: %w", err)
	}
	slog.Info("Design change detected", "agent", a.Name(), "file_key", in.FileKey)

	designData := a.fetchDesignData(ctx, e.Project, in.FileKey)
	if designData == nil {
		designData = in.DemoDesignData
	}
	if len(designData) == 0 {
		slog.Info("No design data available, skipping", "file_key", in.FileKey)
		return nil
	}

	ticketData := a.relatedTickets(ctx, e.Project)
	notes := a.advisor.GenerateImplementationNotes(ctx, designData, ticketData)

	if err := publish(a.bus, e, bus.KindDesignCompared, a.Name(), bus.Payload{
		"file_key":        in.FileKey,
		"alignment":       notes.DesignTicketAlignment,
		"component_specs": notes.ComponentSpecs,
	}); err != nil {
		return err
	}

	if err := publish(a.bus, e, bus.KindImplNotesGenerated, a.Name(), bus.Payload{
		"file_key":             in.FileKey,
		"notes":                notes,
		"implementation_steps": notes.ImplementationSteps,
	}); err != nil {
		return err
	}

	a.createImplementationIssue(ctx, e.Project, in.FileKey, notes)

	return notify(a.bus, e, a.Name(), fmt.Sprintf(
		"*Design Update* - file `%s`\nAlignment with tickets: %s\nComponent specs generated: %d",
		in.FileKey, notes.DesignTicketAlignment, len(notes.ComponentSpecs)))
}

// fetchDesignData loads file metadata and components from the design
// service. Nil means nothing could be fetched.
func (a *DesignSync) fetchDesignData(ctx context.Context, project int, fileKey string) map[string]any {
	if project == 0 || fileKey == "" {
		return nil
	}
	design, err := a.resolver.DesignTool(ctx, project)
	if err != nil || design == nil {
		if err != nil {
			slog.Warn("Failed to resolve design tool", "project", project, "error", err)
		}
		return nil
	}

	file, err := design.GetFile(ctx, fileKey)
	if err != nil {
		slog.Warn("Failed to fetch design file", "file_key", fileKey, "error", err)
		return nil
	}
	components, err := design.GetComponents(ctx, fileKey)
	if err != nil {
		slog.Warn("Failed to fetch design components", "file_key", fileKey, "error", err)
	}

	return map[string]any{
		"file_key":      fileKey,
		"name":          file.Name,
		"last_modified": file.LastModified,
		"components":    components,
	}
}

// relatedTickets lists open work items the design change may relate to.
func (a *DesignSync) relatedTickets(ctx context.Context, project int) map[string]any {
	if project == 0 {
		return nil
	}
	source, err := a.resolver.WorkItems(ctx, project)
	if err != nil || source == nil {
		return nil
	}
	issues, err := source.ListIssues(ctx, adapters.IssueListOptions{State: "opened", Limit: 10})
	if err != nil {
		slog.Warn("Failed to list related tickets", "project", project, "error", err)
		return nil
	}

	tickets := make([]map[string]any, 0, len(issues))
	for _, issue := range issues {
		tickets = append(tickets, map[string]any{
			"key":         fmt.Sprintf("ISSUE-%d", issue.IID),
			"title":       issue.Title,
			"description": issue.Description,
			"status":      issue.State,
		})
	}
	return map[string]any{"tickets": tickets}
}

func (a *DesignSync) createImplementationIssue(ctx context.Context, project int, fileKey string, notes llm.ImplementationNotes) {
	if project == 0 || len(notes.ImplementationSteps) == 0 {
		return
	}
	tracker, err := a.resolver.IssueTracker(ctx, project)
	if err != nil || tracker == nil {
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**From design file:** %s\n\n## Implementation Steps\n", fileKey)
	for i, step := range notes.ImplementationSteps {
		fmt.Fprintf(&b, "%d. %s\n", i+1, step)
	}
	if len(notes.ComponentSpecs) > 0 {
		b.WriteString("\n## Component Specs\n")
		specs := notes.ComponentSpecs
		if len(specs) > 5 {
			specs = specs[:5]
		}
		for _, spec := range specs {
			fmt.Fprintf(&b, "\n### %s\n", spec.Name)
			if spec.CSSChanges != nil {
				fmt.Fprintf(&b, "CSS: %v\n", spec.CSSChanges)
			}
			if spec.Props != nil {
				fmt.Fprintf(&b, "Props: %v\n", spec.Props)
			}
		}
	}

	title := "Design Implementation: " + fileKey
	if _, err := tracker.CreateIssue(ctx, title, b.String(), []string{"design-sync", "auto-generated"}); err != nil {
		slog.Warn("Failed to create design implementation issue", "file_key", fileKey, "error", err)
	}
}
