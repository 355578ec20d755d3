package agents

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shipfleet/shipfleet/pkg/adapters"
	"github.com/shipfleet/shipfleet/pkg/bus"
	"github.com/shipfleet/shipfleet/pkg/llm"
)

const boilerplateReply = `{"files":[` +
	`{"path":"internal/ws/hub.go","content":"package ws","description":"websocket hub"},` +
	`{"path":"internal/ws/hub_test.go","content":"package ws","description":"hub tests"}],` +
	`"pr_description":"Implements the notification hub.","suggested_reviewers_criteria":"backend"}`

func requirementsEvent() *bus.Event {
	return projectEvent(bus.KindRequirementsAnalyzed, bus.Payload{
		"ticket_key": "SHIP-142",
		"analysis": map[string]any{
			"summary":    "Implement Real-Time WebSocket Notifications",
			"complexity": "medium",
		},
	})
}

func TestCodeOrchestrationScaffoldsBranchAndMR(t *testing.T) {
	gl := newGitLabFake(t)
	gl.members = []adapters.Member{
		{ID: 11, Username: "alice", AccessLevel: 40},
		{ID: 12, Username: "bob", AccessLevel: 30},
		{ID: 13, Username: "carol", AccessLevel: 30},
	}
	b := newTestBus()
	client := &stubLLM{reply: func(_, _ string) (string, error) { return boilerplateReply, nil }}
	agent := NewCodeOrchestration(b, adapters.NewResolver(gl.creds(), ""), llm.NewAdvisor(client))

	require.NoError(t, agent.Handle(context.Background(), requirementsEvent()))

	wantBranch := "feature/SHIP-142-implement-real-time-websocket-notificati"
	branches := b.History(10, bus.KindBranchCreated, 0)
	require.Len(t, branches, 1)
	assert.Equal(t, wantBranch, branches[0].Payload.String("branch"))
	assert.Equal(t, "SHIP-142", branches[0].Payload.String("ticket_key"))

	generated := b.History(10, bus.KindBoilerplateGenerated, 0)
	require.Len(t, generated, 1)
	assert.Equal(t, []string{"internal/ws/hub.go", "internal/ws/hub_test.go"}, generated[0].Payload.Strings("files"))
	assert.Equal(t, 1, gl.count(http.MethodPost, "/hub.go"))
	assert.Equal(t, 1, gl.count(http.MethodPost, "/hub_test.go"))

	prs := b.History(10, bus.KindPRTemplateCreated, 0)
	require.Len(t, prs, 1)
	assert.Equal(t, 7, prs[0].Payload.Int("mr_iid"))

	mr, ok := gl.find(http.MethodPost, "/merge_requests")
	require.True(t, ok)
	assert.Equal(t, "feat: SHIP-142 - Implement Real-Time WebSocket Notifications", mr.Body["title"])
	assert.Equal(t, "Implements the notification hub.", mr.Body["description"])
	assert.Len(t, mr.Body["reviewer_ids"], 2)
}

func TestCodeOrchestrationPublishesBranchWithoutVCS(t *testing.T) {
	b := newTestBus()
	client := &stubLLM{} // model unavailable, boilerplate degrades to empty
	agent := NewCodeOrchestration(b, adapters.NewResolver(fakeCreds{}, ""), llm.NewAdvisor(client))

	require.NoError(t, agent.Handle(context.Background(), requirementsEvent()))

	branches := b.History(10, bus.KindBranchCreated, 0)
	require.Len(t, branches, 1)

	assert.Empty(t, b.History(10, bus.KindBoilerplateGenerated, 0))

	prs := b.History(10, bus.KindPRTemplateCreated, 0)
	require.Len(t, prs, 1)
	assert.Equal(t, 0, prs[0].Payload.Int("mr_iid"))
}

func TestCodeOrchestrationIssueAssigned(t *testing.T) {
	gl := newGitLabFake(t)
	b := newTestBus()
	client := &stubLLM{reply: func(_, _ string) (string, error) { return boilerplateReply, nil }}
	agent := NewCodeOrchestration(b, adapters.NewResolver(gl.creds(), ""), llm.NewAdvisor(client))
	ctx := context.Background()

	// Without analysis in the payload no boilerplate is generated.
	plain := projectEvent(bus.KindIssueAssigned, bus.Payload{"issue_id": "77", "title": "Fix Pagination"})
	require.NoError(t, agent.Handle(ctx, plain))
	branches := b.History(10, bus.KindBranchCreated, 0)
	require.Len(t, branches, 1)
	assert.Equal(t, "feature/77-fix-pagination", branches[0].Payload.String("branch"))
	assert.Empty(t, b.History(10, bus.KindBoilerplateGenerated, 0))

	withAnalysis := projectEvent(bus.KindIssueAssigned, bus.Payload{
		"issue_id": "78",
		"title":    "Add Export",
		"analysis": map[string]any{"summary": "Add CSV export"},
	})
	require.NoError(t, agent.Handle(ctx, withAnalysis))
	assert.Len(t, b.History(10, bus.KindBoilerplateGenerated, 0), 1)
}

func TestCodeOrchestrationDesignBranchAlreadyExists(t *testing.T) {
	gl := newGitLabFake(t)
	gl.branchStatus = http.StatusBadRequest
	gl.branchBody = `{"message":"Branch already exists"}`
	b := newTestBus()
	agent := NewCodeOrchestration(b, adapters.NewResolver(gl.creds(), ""), llm.NewAdvisor(&stubLLM{}))

	evt := projectEvent(bus.KindImplNotesGenerated, bus.Payload{"ticket_key": "SHIP-9"})
	require.NoError(t, agent.Handle(context.Background(), evt))

	branches := b.History(10, bus.KindBranchCreated, 0)
	require.Len(t, branches, 1)
	assert.Equal(t, "feature/SHIP-9-design-implementation", branches[0].Payload.String("branch"))
	assert.Equal(t, "design_sync", branches[0].Payload.String("source"))
}
