package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedClient returns canned responses in order, or an error.
type scriptedClient struct {
	responses []string
	err       error
	calls     int
	lastUser  string
}

func (c *scriptedClient) Complete(_ context.Context, _, user string, _ int) (string, error) {
	c.calls++
	c.lastUser = user
	if c.err != nil {
		return "", c.err
	}
	if len(c.responses) == 0 {
		return "{}", nil
	}
	resp := c.responses[0]
	if len(c.responses) > 1 {
		c.responses = c.responses[1:]
	}
	return resp, nil
}

func failingAdvisor() *Advisor {
	return NewAdvisor(&scriptedClient{err: errors.New("api unavailable")})
}

func TestAnalyzeRequirements(t *testing.T) {
	t.Run("valid response passes through", func(t *testing.T) {
		client := &scriptedClient{responses: []string{`{
			"summary": "Add SSO login",
			"stories": [{"title": "Login via IdP", "description": "d", "acceptance_criteria": ["redirects"]}],
			"complexity": "high",
			"estimated_effort_hours": 12,
			"tags": ["auth"],
			"related_topics": ["sessions"]
		}`}}
		a := NewAdvisor(client)

		got := a.AnalyzeRequirements(context.Background(), TicketInfo{Key: "SHIP-1", Title: "SSO"})

		assert.Equal(t, "Add SSO login", got.Summary)
		assert.Equal(t, "high", got.Complexity)
		assert.Equal(t, 12.0, got.EstimatedEffortHours)
		require.Len(t, got.Stories, 1)
		assert.Contains(t, client.lastUser, "SSO")
	})

	t.Run("out of range values are clamped", func(t *testing.T) {
		a := NewAdvisor(&scriptedClient{responses: []string{
			`{"summary": "", "complexity": "enormous", "estimated_effort_hours": -3}`,
		}})

		got := a.AnalyzeRequirements(context.Background(), TicketInfo{Title: "Fix pagination"})

		assert.Equal(t, "Fix pagination", got.Summary)
		assert.Equal(t, "medium", got.Complexity)
		assert.Equal(t, 4.0, got.EstimatedEffortHours)
	})

	t.Run("model failure yields fallback", func(t *testing.T) {
		got := failingAdvisor().AnalyzeRequirements(context.Background(), TicketInfo{Title: "Fix pagination"})

		assert.Equal(t, "Fix pagination", got.Summary)
		assert.Equal(t, "medium", got.Complexity)
		assert.Equal(t, 4.0, got.EstimatedEffortHours)
		assert.Empty(t, got.Stories)
	})
}

func TestGenerateImplementationNotes(t *testing.T) {
	t.Run("alignment enum is enforced", func(t *testing.T) {
		a := NewAdvisor(&scriptedClient{responses: []string{
			`{"component_specs": [{"name": "Button"}], "implementation_steps": ["restyle"], "design_ticket_alignment": "sorta"}`,
		}})

		got := a.GenerateImplementationNotes(context.Background(), map[string]any{"file": "abc"}, nil)

		assert.Equal(t, "partial", got.DesignTicketAlignment)
		require.Len(t, got.ComponentSpecs, 1)
		assert.Equal(t, "Button", got.ComponentSpecs[0].Name)
	})

	t.Run("model failure yields fallback", func(t *testing.T) {
		got := failingAdvisor().GenerateImplementationNotes(context.Background(), nil, nil)
		assert.Equal(t, "partial", got.DesignTicketAlignment)
		assert.Empty(t, got.ComponentSpecs)
	})
}

func TestGenerateBoilerplate(t *testing.T) {
	t.Run("pathless files are dropped, descriptions default", func(t *testing.T) {
		a := NewAdvisor(&scriptedClient{responses: []string{`{
			"files": [
				{"path": "internal/sso/login.go", "content": "package sso"},
				{"path": "", "content": "orphan"}
			],
			"pr_description": "Adds SSO scaffold"
		}`}})

		got := a.GenerateBoilerplate(context.Background(), nil, "feature/ship-1-sso")

		require.Len(t, got.Files, 1)
		assert.Equal(t, "internal/sso/login.go", got.Files[0].Path)
		assert.Equal(t, "internal/sso/login.go", got.Files[0].Description)
		assert.Equal(t, "Adds SSO scaffold", got.PRDescription)
	})

	t.Run("model failure yields empty scaffold", func(t *testing.T) {
		got := failingAdvisor().GenerateBoilerplate(context.Background(), nil, "b")
		assert.Empty(t, got.Files)
		assert.Empty(t, got.PRDescription)
	})
}

func TestScanSecurity(t *testing.T) {
	t.Run("critical finding forces not passed and raises risk", func(t *testing.T) {
		a := NewAdvisor(&scriptedClient{responses: []string{`{
			"vulnerabilities": [
				{"severity": "critical", "type": "sql_injection", "file": "db.go", "description": "d", "recommendation": "r"},
				{"severity": "cosmic", "type": "made_up", "file": "x.go"}
			],
			"overall_risk": "low",
			"passed": true,
			"summary": "model was too optimistic"
		}`}})

		got := a.ScanSecurity(context.Background(), "diff", []string{"db.go"})

		assert.False(t, got.Passed)
		assert.Equal(t, "high", got.OverallRisk)
		require.Len(t, got.Vulnerabilities, 1, "unknown severities are discarded")
		assert.Len(t, got.Critical(), 1)
		assert.Equal(t, map[string]int{"critical": 1}, got.CountBySeverity())
	})

	t.Run("clean scan passes", func(t *testing.T) {
		a := NewAdvisor(&scriptedClient{responses: []string{
			`{"vulnerabilities": [], "overall_risk": "low", "passed": true, "summary": "clean"}`,
		}})

		got := a.ScanSecurity(context.Background(), "diff", nil)
		assert.True(t, got.Passed)
		assert.Equal(t, "low", got.OverallRisk)
	})

	t.Run("model failure is conservative", func(t *testing.T) {
		got := failingAdvisor().ScanSecurity(context.Background(), "diff", nil)

		assert.False(t, got.Passed)
		assert.Equal(t, "unknown", got.OverallRisk)
		assert.Contains(t, got.Summary, "manual review required")
	})
}

func TestAssessReviewComplexity(t *testing.T) {
	t.Run("high complexity blocks auto merge", func(t *testing.T) {
		a := NewAdvisor(&scriptedClient{responses: []string{
			`{"complexity": "high", "auto_merge_eligible": true, "estimated_review_minutes": 90, "summary": "big"}`,
		}})

		got := a.AssessReviewComplexity(context.Background(), "diff", 30)

		assert.Equal(t, "high", got.Complexity)
		assert.False(t, got.AutoMergeEligible)
		assert.Equal(t, 90.0, got.EstimatedReviewMinutes)
	})

	t.Run("low complexity may auto merge", func(t *testing.T) {
		a := NewAdvisor(&scriptedClient{responses: []string{
			`{"complexity": "low", "auto_merge_eligible": true, "estimated_review_minutes": 10}`,
		}})

		got := a.AssessReviewComplexity(context.Background(), "diff", 1)
		assert.True(t, got.AutoMergeEligible)
	})

	t.Run("model failure yields fallback", func(t *testing.T) {
		got := failingAdvisor().AssessReviewComplexity(context.Background(), "diff", 5)

		assert.Equal(t, "medium", got.Complexity)
		assert.Equal(t, 30.0, got.EstimatedReviewMinutes)
		assert.False(t, got.AutoMergeEligible)
	})
}

func TestDraftReleaseNotes_Fallback(t *testing.T) {
	commits := []Commit{
		{Message: "Fix login redirect\n\nLong body here"},
		{Message: "Add metrics endpoint"},
		{Message: ""},
	}

	got := failingAdvisor().DraftReleaseNotes(context.Background(), commits)

	assert.Equal(t, "Release with 3 commits", got.VersionSummary)
	assert.Equal(t, []string{"Fix login redirect", "Add metrics endpoint"}, got.Features)
	assert.Contains(t, got.Notes, "commit log")
}

func TestAnalyzeMetrics(t *testing.T) {
	t.Run("predictions are clamped", func(t *testing.T) {
		a := NewAdvisor(&scriptedClient{responses: []string{`{
			"bottlenecks": [{"area": "review", "description": "queue", "severity": "high"}],
			"predictions": {"sprint_completion_pct": 180, "velocity_trend": "skyrocketing"},
			"executive_summary": "s"
		}`}})

		got := a.AnalyzeMetrics(context.Background(), ProjectMetrics{})

		assert.Equal(t, 0.0, got.Predictions.SprintCompletionPct)
		assert.Equal(t, "stable", got.Predictions.VelocityTrend)
		assert.Len(t, got.Bottlenecks, 1)
	})

	t.Run("fallback computes completion from distribution", func(t *testing.T) {
		got := failingAdvisor().AnalyzeMetrics(context.Background(), ProjectMetrics{
			TaskDistribution: map[string]int{"done": 3, "in_progress": 1},
		})

		assert.Equal(t, 75.0, got.Predictions.SprintCompletionPct)
		assert.Equal(t, "stable", got.Predictions.VelocityTrend)
		assert.Contains(t, got.ExecutiveSummary, "4 tasks total")
	})
}

func TestDisabledClient(t *testing.T) {
	_, err := Disabled{}.Complete(context.Background(), "s", "u", 100)
	assert.ErrorIs(t, err, ErrDisabled)

	// the advisor degrades to fallbacks on a disabled client
	got := NewAdvisor(Disabled{}).ScanSecurity(context.Background(), "diff", nil)
	assert.False(t, got.Passed)
}
