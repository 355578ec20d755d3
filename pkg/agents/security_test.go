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

func newSecurityAgent(t *testing.T, gl *gitlabFake, b *bus.Bus, reply string) *SecurityCompliance {
	t.Helper()
	client := &stubLLM{reply: func(_, _ string) (string, error) { return reply, nil }}
	return NewSecurityCompliance(b, adapters.NewResolver(gl.creds(), ""), llm.NewAdvisor(client))
}

func TestSecurityComplianceBlocksCriticalFindings(t *testing.T) {
	// The model reports passed=true alongside a critical finding; the scan
	// result must still come back failed with elevated risk.
	reply := `{"vulnerabilities":[{"severity":"critical","type":"SQL Injection","file":"db.go",` +
		`"description":"query built by string concatenation","recommendation":"use parameterized queries"}],` +
		`"overall_risk":"low","passed":true,"summary":"one finding"}`
	gl := newGitLabFake(t)
	b := newTestBus()
	agent := newSecurityAgent(t, gl, b, reply)

	evt := projectEvent(bus.KindPROpened, bus.Payload{
		"mr_iid": 87,
		"diff":   `+ query := "SELECT * FROM users WHERE id = " + id`,
		"files":  []string{"db.go"},
	})
	require.NoError(t, agent.Handle(context.Background(), evt))

	blocked := b.History(10, bus.KindMergeBlocked, 0)
	require.Len(t, blocked, 1)
	assert.Equal(t, 87, blocked[0].Payload.Int("mr_iid"))
	assert.Equal(t, "1 critical vulnerabilities found", blocked[0].Payload.String("reason"))

	found := b.History(10, bus.KindVulnerabilityFound, 0)
	require.Len(t, found, 1)
	assert.Equal(t, 1, found[0].Payload.Int("count"))
	assert.Equal(t, 1, found[0].Payload.Int("critical"))

	scans := b.History(10, bus.KindSecurityScanComplete, 0)
	require.Len(t, scans, 1)
	assert.False(t, scans[0].Payload.Bool("passed"))
	assert.Equal(t, "high", scans[0].Payload.String("overall_risk"))

	require.Len(t, b.History(10, bus.KindComplianceReport, 0), 1)

	assert.Equal(t, 1, gl.count(http.MethodPost, "/discussions"))
	assert.Equal(t, 1, gl.count(http.MethodPost, "/notes"))
}

func TestSecurityComplianceCleanScanPasses(t *testing.T) {
	reply := `{"vulnerabilities":[],"overall_risk":"low","passed":true,"summary":"no issues found"}`
	gl := newGitLabFake(t)
	b := newTestBus()
	agent := newSecurityAgent(t, gl, b, reply)

	evt := projectEvent(bus.KindCodePushed, bus.Payload{
		"mr_iid": 12,
		"diff":   "+ return nil",
		"files":  []string{"ok.go"},
	})
	require.NoError(t, agent.Handle(context.Background(), evt))

	assert.Empty(t, b.History(10, bus.KindMergeBlocked, 0))
	assert.Empty(t, b.History(10, bus.KindVulnerabilityFound, 0))

	scans := b.History(10, bus.KindSecurityScanComplete, 0)
	require.Len(t, scans, 1)
	assert.True(t, scans[0].Payload.Bool("passed"))
	assert.Equal(t, 0, scans[0].Payload.Int("vulnerability_count"))

	// No findings, no comment.
	assert.Equal(t, 0, gl.count(http.MethodPost, "/notes"))
	assert.Equal(t, 0, gl.count(http.MethodPost, "/discussions"))
}

func TestSecurityComplianceFetchesDiffFromVCS(t *testing.T) {
	reply := `{"vulnerabilities":[],"overall_risk":"low","passed":true,"summary":"clean"}`
	gl := newGitLabFake(t)
	gl.diffs = []adapters.DiffEntry{{NewPath: "api.go", Diff: "+ handler code"}}
	b := newTestBus()
	agent := newSecurityAgent(t, gl, b, reply)

	evt := projectEvent(bus.KindPROpened, bus.Payload{"mr_iid": 5})
	require.NoError(t, agent.Handle(context.Background(), evt))

	assert.Equal(t, 1, gl.count(http.MethodGet, "/diffs"))
	require.Len(t, b.History(10, bus.KindSecurityScanComplete, 0), 1)
}

func TestSecurityComplianceSkipsWithoutDiff(t *testing.T) {
	b := newTestBus()
	agent := newSecurityAgent(t, newGitLabFake(t), b, `{}`)

	// No inline diff and no MR to fetch from.
	evt := projectEvent(bus.KindCodePushed, bus.Payload{})
	require.NoError(t, agent.Handle(context.Background(), evt))

	assert.Empty(t, b.History(10, bus.KindSecurityScanComplete, 0))
	assert.Empty(t, b.History(10, bus.KindComplianceReport, 0))
}

func TestSecurityComplianceModelFailureIsConservative(t *testing.T) {
	gl := newGitLabFake(t)
	b := newTestBus()
	client := &stubLLM{} // every call errors
	agent := NewSecurityCompliance(b, adapters.NewResolver(gl.creds(), ""), llm.NewAdvisor(client))

	evt := projectEvent(bus.KindPROpened, bus.Payload{
		"mr_iid": 3,
		"diff":   "+ something",
		"files":  []string{"a.go"},
	})
	require.NoError(t, agent.Handle(context.Background(), evt))

	scans := b.History(10, bus.KindSecurityScanComplete, 0)
	require.Len(t, scans, 1)
	assert.False(t, scans[0].Payload.Bool("passed"))
	assert.Equal(t, "unknown", scans[0].Payload.String("overall_risk"))
}
