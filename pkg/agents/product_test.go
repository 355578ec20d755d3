package agents

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shipfleet/shipfleet/pkg/adapters"
	"github.com/shipfleet/shipfleet/pkg/bus"
	"github.com/shipfleet/shipfleet/pkg/llm"
)

func analysisReply(storyCount int) string {
	stories := make([]string, storyCount)
	for i := range stories {
		stories[i] = fmt.Sprintf(`{"title":"Story %d","description":"do part %d","acceptance_criteria":["works"]}`, i+1, i+1)
	}
	return `{"summary":"Notification pipeline","stories":[` + strings.Join(stories, ",") + `],` +
		`"complexity":"high","estimated_effort_hours":16,"tags":["backend","realtime"],"related_topics":[]}`
}

func TestProductIntelligenceAnalyzesTicket(t *testing.T) {
	gl := newGitLabFake(t)
	b := newTestBus()
	client := &stubLLM{reply: func(_, _ string) (string, error) { return analysisReply(2), nil }}
	agent := NewProductIntelligence(b, adapters.NewResolver(gl.creds(), ""), llm.NewAdvisor(client))

	evt := projectEvent(bus.KindTicketCreated, bus.Payload{
		"key":         "SHIP-142",
		"title":       "Implement Real-Time WebSocket Notifications",
		"description": "Users need instant updates",
		"priority":    "High",
	})
	require.NoError(t, agent.Handle(context.Background(), evt))

	analyzed := b.History(10, bus.KindRequirementsAnalyzed, 0)
	require.Len(t, analyzed, 1)
	assert.Equal(t, "SHIP-142", analyzed[0].Payload.String("ticket_key"))

	tagged := b.History(10, bus.KindComplexityTagged, 0)
	require.Len(t, tagged, 1)
	assert.Equal(t, "high", tagged[0].Payload.String("complexity"))
	assert.Equal(t, 16, tagged[0].Payload.Int("estimated_effort_hours"))

	require.Len(t, b.History(10, bus.KindStoriesExtracted, 0), 1)

	// One tracker issue per story.
	assert.Equal(t, 2, gl.count(http.MethodPost, "/issues"))
	issue, ok := gl.find(http.MethodPost, "/issues")
	require.True(t, ok)
	assert.Equal(t, "Story 1", issue.Body["title"])
	assert.Equal(t, "auto-generated,from-jira", issue.Body["labels"])
	assert.Contains(t, issue.Body["description"], "**From tracker:** SHIP-142")
	assert.Contains(t, issue.Body["description"], "**Acceptance Criteria:**")

	notes := b.History(10, bus.KindChatNotification, 0)
	require.Len(t, notes, 1)
	assert.Contains(t, notes[0].Payload.String("message"), "*Requirements Analyzed* for `SHIP-142`")
}

func TestProductIntelligenceCapsStoryIssues(t *testing.T) {
	gl := newGitLabFake(t)
	b := newTestBus()
	client := &stubLLM{reply: func(_, _ string) (string, error) { return analysisReply(8), nil }}
	agent := NewProductIntelligence(b, adapters.NewResolver(gl.creds(), ""), llm.NewAdvisor(client))

	evt := projectEvent(bus.KindTicketUpdated, bus.Payload{"key": "SHIP-9", "title": "Big epic"})
	require.NoError(t, agent.Handle(context.Background(), evt))

	assert.Equal(t, 5, gl.count(http.MethodPost, "/issues"))
}

func TestProductIntelligenceModelFailureFallsBack(t *testing.T) {
	gl := newGitLabFake(t)
	b := newTestBus()
	agent := NewProductIntelligence(b, adapters.NewResolver(gl.creds(), ""), llm.NewAdvisor(&stubLLM{}))

	evt := projectEvent(bus.KindTicketCreated, bus.Payload{"key": "SHIP-1", "title": "Fix login"})
	require.NoError(t, agent.Handle(context.Background(), evt))

	analyzed := b.History(10, bus.KindRequirementsAnalyzed, 0)
	require.Len(t, analyzed, 1)
	analysis := analyzed[0].Payload["analysis"].(llm.RequirementsAnalysis)
	assert.Equal(t, "Fix login", analysis.Summary)
	assert.Equal(t, "medium", analysis.Complexity)

	// No stories, no extraction event, no issues filed.
	assert.Empty(t, b.History(10, bus.KindStoriesExtracted, 0))
	assert.Equal(t, 0, gl.count(http.MethodPost, "/issues"))
}
