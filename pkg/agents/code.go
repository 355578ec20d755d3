package agents

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shipfleet/shipfleet/pkg/adapters"
	"github.com/shipfleet/shipfleet/pkg/bus"
	"github.com/shipfleet/shipfleet/pkg/llm"
)

// CodeOrchestration turns analyzed requirements into a working branch:
// feature branch, scaffold files, and a merge request with auto-assigned
// reviewers.
type CodeOrchestration struct {
	bus      *bus.Bus
	resolver *adapters.Resolver
	advisor  *llm.Advisor
}

// NewCodeOrchestration creates the agent.
func NewCodeOrchestration(b *bus.Bus, resolver *adapters.Resolver, advisor *llm.Advisor) *CodeOrchestration {
	return &CodeOrchestration{bus: b, resolver: resolver, advisor: advisor}
}

func (a *CodeOrchestration) Name() string { return "code_orchestration" }

func (a *CodeOrchestration) Description() string {
	return "Creates feature branches, generates boilerplate code, PR templates, and auto-assigns reviewers"
}

func (a *CodeOrchestration) SubscribedKinds() []bus.Kind {
	return []bus.Kind{bus.KindIssueAssigned, bus.KindRequirementsAnalyzed, bus.KindImplNotesGenerated}
}

func (a *CodeOrchestration) Handle(ctx context.Context, e *bus.Event) error {
	switch e.Kind {
	case bus.KindRequirementsAnalyzed:
		return a.handleRequirements(ctx, e)
	case bus.KindIssueAssigned:
		return a.handleIssueAssigned(ctx, e)
	case bus.KindImplNotesGenerated:
		return a.handleImplNotes(ctx, e)
	}
	return nil
}

type requirementsPayload struct {
	TicketKey string                   `json:"ticket_key"`
	Analysis  llm.RequirementsAnalysis `json:"analysis"`
}

func (a *CodeOrchestration) handleRequirements(ctx context.Context, e *bus.Event) error {
	var in requirementsPayload
	if err := e.Payload.Decode(&in); err != nil {
		return fmt.Errorf("decode requirements payload: %w", err)
	}
	ticketKey := in.TicketKey
	if ticketKey == "" {
		ticketKey = "unknown"
	}
	summary := in.Analysis.Summary
	if summary == "" {
		summary = "task"
	}

	branchName := fmt.Sprintf("feature/%s-%s", ticketKey, slugify(summary, 40))
	slog.Info("Creating branch", "agent", a.Name(), "branch", branchName)

	vcs, err := a.resolver.VersionControl(ctx, e.Project)
	if err != nil {
		slog.Warn("Failed to resolve VCS", "project", e.Project, "error", err)
	}

	branchCreated := false
	if vcs != nil {
		if _, err := vcs.CreateBranch(ctx, branchName, ""); err != nil {
			slog.Warn("Failed to create branch", "branch", branchName, "error", err)
		} else {
			branchCreated = true
		}
	}

	// The branch event is published even without a VCS so downstream
	// signaling works in demo mode.
	if err := publish(a.bus, e, bus.KindBranchCreated, a.Name(), bus.Payload{
		"branch":     branchName,
		"ticket_key": ticketKey,
	}); err != nil {
		return err
	}

	boilerplate := a.advisor.GenerateBoilerplate(ctx, in.Analysis, branchName)
	if len(boilerplate.Files) > 0 {
		if vcs != nil && branchCreated {
			a.createFiles(ctx, vcs, branchName, boilerplate.Files)
		}
		paths := make([]string, len(boilerplate.Files))
		for i, f := range boilerplate.Files {
			paths[i] = f.Path
		}
		if err := publish(a.bus, e, bus.KindBoilerplateGenerated, a.Name(), bus.Payload{
			"branch": branchName,
			"files":  paths,
		}); err != nil {
			return err
		}
	}

	mrIID := 0
	if vcs != nil && branchCreated {
		mrIID = a.createMergeRequest(ctx, vcs, branchName, ticketKey, summary, boilerplate)
	}

	return publish(a.bus, e, bus.KindPRTemplateCreated, a.Name(), bus.Payload{
		"mr_iid":     mrIID,
		"branch":     branchName,
		"ticket_key": ticketKey,
	})
}

type issueAssignedPayload struct {
	IssueID  string                   `json:"issue_id"`
	Title    string                   `json:"title"`
	Analysis llm.RequirementsAnalysis `json:"analysis"`
}

func (a *CodeOrchestration) handleIssueAssigned(ctx context.Context, e *bus.Event) error {
	var in issueAssignedPayload
	if err := e.Payload.Decode(&in); err != nil {
		return fmt.Errorf("decode issue payload: %w", err)
	}
	title := in.Title
	if title == "" {
		title = "task"
	}
	branchName := fmt.Sprintf("feature/%s-%s", in.IssueID, slugify(title, 40))

	vcs, err := a.resolver.VersionControl(ctx, e.Project)
	if err != nil {
		slog.Warn("Failed to resolve VCS", "project", e.Project, "error", err)
	}
	if vcs != nil {
		if _, err := vcs.CreateBranch(ctx, branchName, ""); err != nil {
			slog.Warn("Failed to create branch for issue", "issue_id", in.IssueID, "error", err)
		}
	}

	if err := publish(a.bus, e, bus.KindBranchCreated, a.Name(), bus.Payload{
		"branch":   branchName,
		"issue_id": in.IssueID,
	}); err != nil {
		return err
	}

	if _, ok := e.Payload["analysis"]; ok {
		boilerplate := a.advisor.GenerateBoilerplate(ctx, in.Analysis, branchName)
		if len(boilerplate.Files) > 0 {
			paths := make([]string, len(boilerplate.Files))
			for i, f := range boilerplate.Files {
				paths[i] = f.Path
			}
			return publish(a.bus, e, bus.KindBoilerplateGenerated, a.Name(), bus.Payload{
				"branch": branchName,
				"files":  paths,
			})
		}
	}
	return nil
}

// handleImplNotes makes sure a design-implementation branch exists. An
// already-existing branch is fine; other VCS failures stop the chain.
func (a *CodeOrchestration) handleImplNotes(ctx context.Context, e *bus.Event) error {
	ticketKey := e.Payload.String("ticket_key")
	if ticketKey == "" {
		ticketKey = "design"
	}
	branchName := fmt.Sprintf("feature/%s-design-implementation", ticketKey)

	vcs, err := a.resolver.VersionControl(ctx, e.Project)
	if err != nil || vcs == nil {
		return nil
	}

	if _, err := vcs.CreateBranch(ctx, branchName, ""); err != nil {
		if adapters.IsAlreadyExists(err) {
			slog.Info("Branch already exists, proceeding", "branch", branchName)
		} else {
			slog.Warn("Failed to create design branch", "branch", branchName, "error", err)
			return nil
		}
	}

	return publish(a.bus, e, bus.KindBranchCreated, a.Name(), bus.Payload{
		"branch": branchName,
		"source": "design_sync",
	})
}

// createFiles commits up to ten scaffold files to the branch.
func (a *CodeOrchestration) createFiles(ctx context.Context, vcs adapters.VersionControl, branch string, files []llm.BoilerplateFile) {
	if len(files) > 10 {
		files = files[:10]
	}
	for _, f := range files {
		msg := "scaffold: " + f.Description
		if err := vcs.CreateFile(ctx, f.Path, f.Content, branch, msg); err != nil {
			slog.Warn("Failed to create scaffold file", "path", f.Path, "error", err)
		}
	}
}

// createMergeRequest opens an MR with up to two auto-assigned reviewers.
// Returns the MR iid, or 0 when creation failed.
func (a *CodeOrchestration) createMergeRequest(ctx context.Context, vcs adapters.VersionControl, branch, ticketKey, summary string, boilerplate llm.Boilerplate) int {
	var reviewerIDs []int
	members, err := vcs.ListMembers(ctx)
	if err != nil {
		slog.Warn("Failed to list members for reviewer assignment", "error", err)
	}
	for _, m := range members {
		reviewerIDs = append(reviewerIDs, m.ID)
		if len(reviewerIDs) == 2 {
			break
		}
	}

	description := boilerplate.PRDescription
	if description == "" {
		description = "Auto-generated PR"
	}
	mr, err := vcs.CreateMergeRequest(ctx, adapters.MROptions{
		SourceBranch: branch,
		Title:        fmt.Sprintf("feat: %s - %s", ticketKey, summary),
		Description:  description,
		ReviewerIDs:  reviewerIDs,
	})
	if err != nil {
		slog.Warn("Failed to create merge request", "branch", branch, "error", err)
		return 0
	}
	return mr.IID
}
