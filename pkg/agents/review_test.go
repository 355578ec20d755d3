package agents

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shipfleet/shipfleet/pkg/adapters"
	"github.com/shipfleet/shipfleet/pkg/bus"
	"github.com/shipfleet/shipfleet/pkg/fleet"
	"github.com/shipfleet/shipfleet/pkg/llm"
	"github.com/shipfleet/shipfleet/pkg/services"
)

const eligibleAssessment = `{"complexity":"low","risk_areas":[],"recommended_expertise":["backend"],` +
	`"estimated_review_minutes":10,"summary":"small focused change","auto_merge_eligible":true}`

func newReviewAgent(t *testing.T, gl *gitlabFake, b *bus.Bus, autoMerge bool) (*ReviewCoordination, *fleet.MRReadinessTracker) {
	t.Helper()
	client := &stubLLM{reply: func(_, _ string) (string, error) { return eligibleAssessment, nil }}
	configs := &stubConfigs{settings: map[string]*services.AgentSettings{
		"review_coordination": {
			Name:    "review_coordination",
			Enabled: true,
			Config:  map[string]any{"auto_merge": autoMerge},
		},
	}}
	tracker := fleet.NewMRReadinessTracker()
	agent := NewReviewCoordination(b, adapters.NewResolver(gl.creds(), ""), llm.NewAdvisor(client), configs, tracker)
	return agent, tracker
}

func openPR(t *testing.T, agent *ReviewCoordination, mrIID int) {
	t.Helper()
	evt := projectEvent(bus.KindPROpened, bus.Payload{
		"mr_iid": mrIID,
		"diff":   "+ func Add(a, b int) int { return a + b }",
		"files":  []string{"math.go"},
	})
	require.NoError(t, agent.Handle(context.Background(), evt))
}

func TestReviewCoordinationAssignsReviewersOnOpen(t *testing.T) {
	gl := newGitLabFake(t)
	gl.members = []adapters.Member{
		{ID: 1, Username: "alice", Name: "Alice Smith", AccessLevel: 50},
		{ID: 2, Username: "bob", Name: "Bob Jones", AccessLevel: 30},
	}
	b := newTestBus()
	agent, _ := newReviewAgent(t, gl, b, false)

	openPR(t, agent, 42)

	assigned := b.History(10, bus.KindReviewersAssigned, 0)
	require.Len(t, assigned, 1)
	assert.Equal(t, 42, assigned[0].Payload.Int("mr_iid"))
	assert.Equal(t, "low", assigned[0].Payload.String("complexity"))
	assert.True(t, assigned[0].Payload.Bool("auto_merge_eligible"))
	assert.Len(t, assigned[0].Payload["reviewers"], 2)

	assert.Equal(t, 1, gl.count(http.MethodPost, "/notes"))
	require.Len(t, b.History(10, bus.KindChatNotification, 0), 1)
}

func TestReviewCoordinationAutoMergeFiresOnce(t *testing.T) {
	orders := map[string][]bus.Kind{
		"security then tests": {bus.KindSecurityScanComplete, bus.KindTestReportCreated},
		"tests then security": {bus.KindTestReportCreated, bus.KindSecurityScanComplete},
	}
	for name, order := range orders {
		t.Run(name, func(t *testing.T) {
			gl := newGitLabFake(t)
			gl.members = []adapters.Member{{ID: 1, Username: "alice", AccessLevel: 40}}
			b := newTestBus()
			agent, _ := newReviewAgent(t, gl, b, true)
			ctx := context.Background()

			openPR(t, agent, 42)

			for _, kind := range order {
				evt := projectEvent(kind, bus.Payload{"mr_iid": 42, "passed": true})
				require.NoError(t, agent.Handle(ctx, evt))
			}

			merged := b.History(10, bus.KindPRAutoMerged, 0)
			require.Len(t, merged, 1)
			assert.Equal(t, 42, merged[0].Payload.Int("mr_iid"))
			assert.Equal(t, "auto-merge", merged[0].Payload.String("merged_by"))
			assert.Equal(t, "merged", merged[0].Payload.String("merge_state"))
			assert.Equal(t, 1, gl.count(http.MethodPut, "/merge"))

			// A replayed signal after the merge must not fire again.
			evt := projectEvent(bus.KindTestReportCreated, bus.Payload{"mr_iid": 42})
			require.NoError(t, agent.Handle(ctx, evt))
			assert.Len(t, b.History(10, bus.KindPRAutoMerged, 0), 1)
			assert.Equal(t, 1, gl.count(http.MethodPut, "/merge"))
		})
	}
}

func TestReviewCoordinationFailedSecurityBlocksAutoMerge(t *testing.T) {
	gl := newGitLabFake(t)
	b := newTestBus()
	agent, _ := newReviewAgent(t, gl, b, true)
	ctx := context.Background()

	openPR(t, agent, 42)

	failed := projectEvent(bus.KindSecurityScanComplete, bus.Payload{"mr_iid": 42, "passed": false})
	require.NoError(t, agent.Handle(ctx, failed))
	report := projectEvent(bus.KindTestReportCreated, bus.Payload{"mr_iid": 42})
	require.NoError(t, agent.Handle(ctx, report))

	assert.Empty(t, b.History(10, bus.KindPRAutoMerged, 0))
	assert.Equal(t, 0, gl.count(http.MethodPut, "/merge"))
}

func TestReviewCoordinationAutoMergeDisabled(t *testing.T) {
	gl := newGitLabFake(t)
	b := newTestBus()
	agent, _ := newReviewAgent(t, gl, b, false)
	ctx := context.Background()

	openPR(t, agent, 42)
	passed := projectEvent(bus.KindSecurityScanComplete, bus.Payload{"mr_iid": 42, "passed": true})
	require.NoError(t, agent.Handle(ctx, passed))
	report := projectEvent(bus.KindTestReportCreated, bus.Payload{"mr_iid": 42})
	require.NoError(t, agent.Handle(ctx, report))

	assert.Empty(t, b.History(10, bus.KindPRAutoMerged, 0))
	assert.Equal(t, 0, gl.count(http.MethodPut, "/merge"))
}

func TestReviewCoordinationMergeFailureReleasesClaim(t *testing.T) {
	gl := newGitLabFake(t)
	gl.setMergeStatus(http.StatusMethodNotAllowed)
	b := newTestBus()
	agent, tracker := newReviewAgent(t, gl, b, true)
	ctx := context.Background()

	openPR(t, agent, 42)
	passed := projectEvent(bus.KindSecurityScanComplete, bus.Payload{"mr_iid": 42, "passed": true})
	require.NoError(t, agent.Handle(ctx, passed))
	report := projectEvent(bus.KindTestReportCreated, bus.Payload{"mr_iid": 42})
	require.NoError(t, agent.Handle(ctx, report))

	assert.Empty(t, b.History(10, bus.KindPRAutoMerged, 0))

	// Record stays retryable: once the vendor recovers, the next signal
	// completes the merge.
	gl.setMergeStatus(0)
	retry := projectEvent(bus.KindTestReportCreated, bus.Payload{"mr_iid": 42})
	require.NoError(t, agent.Handle(ctx, retry))
	assert.Len(t, b.History(10, bus.KindPRAutoMerged, 0), 1)
	assert.Equal(t, 0, tracker.Len())
}

func TestAssignReviewersScoring(t *testing.T) {
	gl := newGitLabFake(t)
	gl.members = []adapters.Member{
		{ID: 1, Username: "alice", Name: "Alice Smith", AccessLevel: 50},
		{ID: 2, Username: "bob-backend", Name: "Bob Jones", AccessLevel: 30},
		{ID: 3, Username: "carol", Name: "Carol Backend", AccessLevel: 10},
	}
	b := newTestBus()
	agent, _ := newReviewAgent(t, gl, b, false)

	vcs, err := adapters.NewResolver(gl.creds(), "").VersionControl(context.Background(), 1)
	require.NoError(t, err)
	settings := &services.AgentSettings{Config: map[string]any{"min_reviewers": 2}}

	// bob: developer +1 and username match +5; carol: exact name-part match
	// +5; alice: maintainer +3.
	ids := agent.assignReviewers(context.Background(), vcs, settings, []string{"backend"})
	assert.Equal(t, []int{2, 3}, ids)

	// Without expertise hints the access level decides.
	ids = agent.assignReviewers(context.Background(), vcs, settings, nil)
	assert.Equal(t, []int{1, 2}, ids)
}
