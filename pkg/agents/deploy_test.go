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

const releaseNotesReply = `{"version_summary":"Login fixes","features":["faster login"],` +
	`"bugfixes":["resolve login timeout"],"breaking_changes":[],"notes":"routine release"}`

func newDeployAgent(t *testing.T, gl *gitlabFake, b *bus.Bus, requireMonitoring bool) *DeploymentOrchestrator {
	t.Helper()
	client := &stubLLM{reply: func(_, _ string) (string, error) { return releaseNotesReply, nil }}
	return NewDeploymentOrchestrator(b, adapters.NewResolver(gl.creds(), ""), llm.NewAdvisor(client), &stubConfigs{}, requireMonitoring)
}

func TestDeploymentBlockedWhileWorkInProgress(t *testing.T) {
	gl := newGitLabFake(t)
	gl.issues = func(q url.Values) []adapters.Issue {
		if q.Get("labels") == "in-progress" {
			return []adapters.Issue{{IID: 1, State: "opened"}, {IID: 2, State: "opened"}}
		}
		return nil
	}
	b := newTestBus()
	agent := newDeployAgent(t, gl, b, false)

	evt := projectEvent(bus.KindMergeToMain, bus.Payload{"ref": "main"})
	require.NoError(t, agent.Handle(context.Background(), evt))

	failed := b.History(10, bus.KindDeployFailed, 0)
	require.Len(t, failed, 1)
	assert.Equal(t, "Readiness check failed", failed[0].Payload.String("reason"))
	assert.Equal(t, []string{"2 tasks still in progress"}, failed[0].Payload.Strings("issues"))

	assert.Empty(t, b.History(10, bus.KindDeployStarted, 0))
	assert.Equal(t, 0, gl.count(http.MethodPost, "/pipeline"))
}

func TestDeploymentHealthyFlow(t *testing.T) {
	gl := newGitLabFake(t)
	b := newTestBus()
	agent := newDeployAgent(t, gl, b, false)

	evt := projectEvent(bus.KindPRAutoMerged, bus.Payload{})
	require.NoError(t, agent.Handle(context.Background(), evt))

	started := b.History(10, bus.KindDeployStarted, 0)
	require.Len(t, started, 1)
	assert.Equal(t, "main", started[0].Payload.String("ref"))
	assert.Equal(t, "pr_auto_merged", started[0].Payload.String("trigger_event"))

	notes := b.History(10, bus.KindReleaseNotesGenerated, 0)
	require.Len(t, notes, 1)
	assert.Equal(t, "Login fixes", notes[0].Payload.String("version_summary"))

	complete := b.History(10, bus.KindDeployComplete, 0)
	require.Len(t, complete, 1)
	pipeline := complete[0].Payload.Map("pipeline")
	require.NotNil(t, pipeline)
	assert.Equal(t, "triggered", pipeline.String("status"))

	assert.Empty(t, b.History(10, bus.KindRollbackTriggered, 0))
	assert.Equal(t, 1, gl.count(http.MethodPost, "/pipeline"))
}

func TestDeploymentReleaseNotesFallBackToInlineCommits(t *testing.T) {
	// No VCS connection at all: commits come from the trigger payload.
	b := newTestBus()
	client := &stubLLM{reply: func(_, _ string) (string, error) { return releaseNotesReply, nil }}
	agent := NewDeploymentOrchestrator(b, adapters.NewResolver(fakeCreds{}, ""), llm.NewAdvisor(client), &stubConfigs{}, false)

	evt := projectEvent(bus.KindMergeToMain, bus.Payload{
		"commit_messages": []string{"feat: add export", "fix: crash on resume"},
	})
	require.NoError(t, agent.Handle(context.Background(), evt))

	require.Len(t, b.History(10, bus.KindReleaseNotesGenerated, 0), 1)
	assert.Contains(t, client.lastUser(), "feat: add export")
}

func TestDeploymentRollsBackWhenMonitoringMissing(t *testing.T) {
	gl := newGitLabFake(t)
	gl.pipelines = []adapters.Pipeline{
		{ID: 900, Status: "failed", Ref: "main"},
		{ID: 800, Status: "success", Ref: "main"},
	}
	b := newTestBus()
	agent := newDeployAgent(t, gl, b, true)

	evt := projectEvent(bus.KindMergeToMain, bus.Payload{"ref": "main"})
	require.NoError(t, agent.Handle(context.Background(), evt))

	rollback := b.History(10, bus.KindRollbackTriggered, 0)
	require.Len(t, rollback, 1)
	assert.Equal(t, "No monitoring services configured", rollback[0].Payload.String("reason"))
	assert.Empty(t, b.History(10, bus.KindDeployComplete, 0))

	// Deploy trigger plus the rollback re-run of the last green pipeline.
	assert.Equal(t, 2, gl.count(http.MethodPost, "/pipeline"))
	calls := gl.pipelineTriggers()
	require.Len(t, calls, 2)
	vars, ok := calls[1].Body["variables"].([]any)
	require.True(t, ok)
	keys := map[string]string{}
	for _, v := range vars {
		pair := v.(map[string]any)
		keys[pair["key"].(string)] = pair["value"].(string)
	}
	assert.Equal(t, "true", keys["ROLLBACK"])
	assert.Equal(t, "800", keys["ROLLBACK_PIPELINE_ID"])
}
