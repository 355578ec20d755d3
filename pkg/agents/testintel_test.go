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

const suggestionsReply = `{"unit_tests":[` +
	`{"name":"TestAddHandlesOverflow","description":"overflow behavior","file":"math_test.go","code_hint":"Add(MaxInt, 1)"},` +
	`{"name":"TestAddZero","description":"identity","file":"math_test.go","code_hint":""}],` +
	`"integration_tests":[{"name":"TestEndToEndSum","description":"full pipeline"}],` +
	`"edge_cases":["negative numbers"],"coverage_gaps":["error paths untested"],` +
	`"priority_order":["TestAddHandlesOverflow"]}`

func TestTestIntelligenceSuggestsTests(t *testing.T) {
	gl := newGitLabFake(t)
	b := newTestBus()
	client := &stubLLM{reply: func(_, _ string) (string, error) { return suggestionsReply, nil }}
	agent := NewTestIntelligence(b, adapters.NewResolver(gl.creds(), ""), llm.NewAdvisor(client))

	evt := projectEvent(bus.KindPROpened, bus.Payload{
		"mr_iid": 42,
		"diff":   "+ func Add(a, b int) int { return a + b }",
		"files":  []string{"math.go"},
	})
	require.NoError(t, agent.Handle(context.Background(), evt))

	suggestions := b.History(10, bus.KindTestSuggestionsGenerated, 0)
	require.Len(t, suggestions, 1)
	assert.Equal(t, 2, suggestions[0].Payload.Int("unit_tests_count"))
	assert.Equal(t, 1, suggestions[0].Payload.Int("integration_tests_count"))

	reports := b.History(10, bus.KindTestReportCreated, 0)
	require.Len(t, reports, 1)
	assert.Equal(t, 42, reports[0].Payload.Int("mr_iid"))
	assert.Equal(t, 3, reports[0].Payload.Int("total_suggested"))
	assert.Equal(t, []string{"error paths untested"}, reports[0].Payload.Strings("coverage_gaps"))

	assert.Equal(t, 1, gl.count(http.MethodPost, "/notes"))
}

func TestTestIntelligenceSkipsWithoutDiff(t *testing.T) {
	b := newTestBus()
	agent := NewTestIntelligence(b, adapters.NewResolver(fakeCreds{}, ""), llm.NewAdvisor(&stubLLM{}))

	evt := projectEvent(bus.KindCodePushed, bus.Payload{})
	require.NoError(t, agent.Handle(context.Background(), evt))

	assert.Empty(t, b.History(10, bus.KindTestReportCreated, 0))
}

func TestSuggestionsComment(t *testing.T) {
	var s llm.TestSuggestions
	require.NoError(t, llm.ExtractJSON(suggestionsReply, &s))

	comment := suggestionsComment(s)
	assert.Contains(t, comment, "## Test Suggestions")
	assert.Contains(t, comment, "**TestAddHandlesOverflow**")
	assert.Contains(t, comment, "### Integration Tests")
	assert.Contains(t, comment, "### Edge Cases to Consider")
	assert.Contains(t, comment, "### Coverage Gaps")
}
