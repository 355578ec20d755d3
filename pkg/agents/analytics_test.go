package agents

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shipfleet/shipfleet/pkg/adapters"
	"github.com/shipfleet/shipfleet/pkg/bus"
	"github.com/shipfleet/shipfleet/pkg/llm"
)

const metricsReply = `{"bottlenecks":[{"area":"review","description":"PRs wait two days for review","severity":"high"}],` +
	`"predictions":{"sprint_completion_pct":62,"velocity_trend":"stable"},` +
	`"recommendations":["add a second reviewer"],"executive_summary":"Steady sprint with a review bottleneck."}`

// workItemFixture serves opened/in-progress/closed/recent issue listings the
// way the metrics collector queries them.
func workItemFixture(gl *gitlabFake) {
	now := time.Now()
	recentClose := now.AddDate(0, 0, -2)
	oldClose := now.AddDate(0, 0, -30)
	gl.issues = func(q url.Values) []adapters.Issue {
		switch {
		case q.Get("labels") == "in-progress":
			return []adapters.Issue{{IID: 4, State: "opened"}, {IID: 5, State: "opened"}}
		case q.Get("state") == "opened":
			return []adapters.Issue{{IID: 1}, {IID: 2}, {IID: 3}, {IID: 4}, {IID: 5}}
		case q.Get("state") == "closed":
			return []adapters.Issue{
				{IID: 10, State: "closed", ClosedAt: &recentClose},
				{IID: 11, State: "closed", ClosedAt: &oldClose},
				{IID: 12, State: "closed"},
			}
		case q.Get("updated_after") != "":
			return []adapters.Issue{{IID: 1}, {IID: 4}, {IID: 10}}
		}
		return nil
	}
}

func newAnalyticsAgent(gl *gitlabFake, b *bus.Bus, configs *stubConfigs, projects stubProjects) (*AnalyticsInsights, *stubLLM) {
	client := &stubLLM{reply: func(_, _ string) (string, error) { return metricsReply, nil }}
	agent := NewAnalyticsInsights(b, adapters.NewResolver(gl.creds(), ""), llm.NewAdvisor(client), configs, projects)
	return agent, client
}

func TestAnalyticsCollectsAndReports(t *testing.T) {
	gl := newGitLabFake(t)
	workItemFixture(gl)
	b := newTestBus()
	agent, client := newAnalyticsAgent(gl, b, &stubConfigs{}, nil)

	evt := projectEvent(bus.KindMetricsCollected, bus.Payload{"trigger": "manual"})
	require.NoError(t, agent.Handle(context.Background(), evt))

	// 5 opened of which 2 in progress, 3 closed, 1 closed within the week.
	prompt := client.lastUser()
	assert.Contains(t, prompt, `"todo":3`)
	assert.Contains(t, prompt, `"in_progress":2`)
	assert.Contains(t, prompt, `"done":3`)
	assert.Contains(t, prompt, `"completed_this_week":1`)
	assert.Contains(t, prompt, `"weekly_activity_count":3`)
	assert.Contains(t, prompt, `"total_tasks":8`)

	bottlenecks := b.History(10, bus.KindBottleneckDetected, 0)
	require.Len(t, bottlenecks, 1)

	reports := b.History(10, bus.KindReportGenerated, 0)
	require.Len(t, reports, 1)
	assert.NotContains(t, reports[0].Payload, "trigger")

	notes := b.History(10, bus.KindChatNotification, 0)
	require.Len(t, notes, 1)
	message := notes[0].Payload.String("message")
	assert.Contains(t, message, "Sprint completion: 62%")
	assert.Contains(t, message, "Bottlenecks: 1")
}

func TestAnalyticsSkipsFleetWideEvents(t *testing.T) {
	gl := newGitLabFake(t)
	b := newTestBus()
	agent, _ := newAnalyticsAgent(gl, b, &stubConfigs{}, nil)

	evt := bus.NewEvent(bus.KindMetricsCollected, "test", bus.Payload{})
	require.NoError(t, agent.Handle(context.Background(), evt))

	assert.Empty(t, b.History(10, bus.KindReportGenerated, 0))
}

func TestAnalyticsScheduledReportUsesConfiguredProjects(t *testing.T) {
	gl := newGitLabFake(t)
	workItemFixture(gl)
	b := newTestBus()
	configs := &stubConfigs{projects: []int{1}}
	// The connection fallback must not be consulted when configs name
	// projects explicitly.
	agent, _ := newAnalyticsAgent(gl, b, configs, stubProjects{99})

	require.NoError(t, agent.RunScheduledReport(context.Background()))

	reports := b.History(10, bus.KindReportGenerated, 0)
	require.Len(t, reports, 1)
	assert.Equal(t, 1, reports[0].Project)
	assert.Equal(t, "scheduled", reports[0].Payload.String("trigger"))

	notes := b.History(10, bus.KindChatNotification, 0)
	require.Len(t, notes, 1)
	assert.Contains(t, notes[0].Payload.String("message"), "*Scheduled Analytics Report* (Project #1)")
}

func TestAnalyticsScheduledReportFallsBackToConnections(t *testing.T) {
	gl := newGitLabFake(t)
	workItemFixture(gl)
	b := newTestBus()
	agent, _ := newAnalyticsAgent(gl, b, &stubConfigs{}, stubProjects{1})

	require.NoError(t, agent.RunScheduledReport(context.Background()))

	reports := b.History(10, bus.KindReportGenerated, 0)
	require.Len(t, reports, 1)
	assert.Equal(t, 1, reports[0].Project)
}
