package agents

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shipfleet/shipfleet/pkg/adapters"
	"github.com/shipfleet/shipfleet/pkg/bus"
	"github.com/shipfleet/shipfleet/pkg/llm"
)

const implNotesReply = `{"component_specs":[{"name":"NotificationBell","css_changes":{"color":"#1a73e8"},"props":{"count":"number"}}],` +
	`"implementation_steps":["Update the bell icon","Wire the unread counter"],` +
	`"design_ticket_alignment":"matched","notes":"straightforward"}`

func TestDesignSyncGeneratesNotesFromDemoData(t *testing.T) {
	gl := newGitLabFake(t)
	gl.issues = func(q url.Values) []adapters.Issue {
		return []adapters.Issue{{IID: 9, Title: "Update header", State: "opened"}}
	}
	b := newTestBus()
	client := &stubLLM{reply: func(_, _ string) (string, error) { return implNotesReply, nil }}
	agent := NewDesignSync(b, adapters.NewResolver(gl.creds(), ""), llm.NewAdvisor(client))

	evt := projectEvent(bus.KindDesignChanged, bus.Payload{
		"file_key":         "figma-abc123xyz",
		"demo_design_data": map[string]any{"components": []any{"NotificationBell"}},
	})
	require.NoError(t, agent.Handle(context.Background(), evt))

	// Open work items feed the comparison prompt.
	assert.Contains(t, client.lastUser(), "ISSUE-9")

	compared := b.History(10, bus.KindDesignCompared, 0)
	require.Len(t, compared, 1)
	assert.Equal(t, "figma-abc123xyz", compared[0].Payload.String("file_key"))
	assert.Equal(t, "matched", compared[0].Payload.String("alignment"))

	notes := b.History(10, bus.KindImplNotesGenerated, 0)
	require.Len(t, notes, 1)
	assert.Equal(t, []string{"Update the bell icon", "Wire the unread counter"},
		notes[0].Payload.Strings("implementation_steps"))

	issue, ok := gl.find(http.MethodPost, "/issues")
	require.True(t, ok)
	assert.Equal(t, "Design Implementation: figma-abc123xyz", issue.Body["title"])
	assert.Equal(t, "design-sync,auto-generated", issue.Body["labels"])
	assert.Contains(t, issue.Body["description"], "## Implementation Steps")

	require.Len(t, b.History(10, bus.KindChatNotification, 0), 1)
}

func TestDesignSyncSkipsWithoutDesignData(t *testing.T) {
	b := newTestBus()
	agent := NewDesignSync(b, adapters.NewResolver(fakeCreds{}, ""), llm.NewAdvisor(&stubLLM{}))

	evt := projectEvent(bus.KindDesignChanged, bus.Payload{"file_key": "figma-missing"})
	require.NoError(t, agent.Handle(context.Background(), evt))

	assert.Empty(t, b.History(10, bus.KindDesignCompared, 0))
	assert.Empty(t, b.History(10, bus.KindImplNotesGenerated, 0))
}
