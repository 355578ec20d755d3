// Package bus provides the in-process event bus that connects the agent
// fleet: publish/subscribe dispatch over a bounded FIFO queue, a worker pool
// for handler isolation, and a ring-buffer history for introspection.
package bus

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Kind discriminates events. The enumeration is closed: webhook ingress and
// agents only ever publish kinds listed here.
type Kind string

// Inbound kinds (webhooks, manual triggers, timers).
const (
	KindTicketCreated     Kind = "ticket_created"
	KindTicketUpdated     Kind = "ticket_updated"
	KindCodePushed        Kind = "code_pushed"
	KindPROpened          Kind = "pr_opened"
	KindPRReadyForReview  Kind = "pr_ready_for_review"
	KindPRApproved        Kind = "pr_approved"
	KindMergeToMain       Kind = "merge_to_main"
	KindIssueAssigned     Kind = "issue_assigned"
	KindPipelineStarted   Kind = "pipeline_started"
	KindPipelineCompleted Kind = "pipeline_completed"
	KindPipelineFailed    Kind = "pipeline_failed"
	KindDesignChanged     Kind = "design_changed"
	KindMetricsCollected  Kind = "metrics_collected"
)

// Kinds published by agents.
const (
	KindRequirementsAnalyzed     Kind = "requirements_analyzed"
	KindComplexityTagged         Kind = "complexity_tagged"
	KindStoriesExtracted         Kind = "stories_extracted"
	KindDesignCompared           Kind = "design_compared"
	KindImplNotesGenerated       Kind = "impl_notes_generated"
	KindBranchCreated            Kind = "branch_created"
	KindBoilerplateGenerated     Kind = "boilerplate_generated"
	KindPRTemplateCreated        Kind = "pr_template_created"
	KindSecurityScanComplete     Kind = "security_scan_complete"
	KindVulnerabilityFound       Kind = "vulnerability_found"
	KindMergeBlocked             Kind = "merge_blocked"
	KindComplianceReport         Kind = "compliance_report_generated"
	KindTestSuggestionsGenerated Kind = "test_suggestions_generated"
	KindTestReportCreated        Kind = "test_report_created"
	KindCoverageReport           Kind = "coverage_report"
	KindReviewersAssigned        Kind = "reviewers_assigned"
	KindReviewReminderSent       Kind = "review_reminder_sent"
	KindReviewSLABreached        Kind = "review_sla_breached"
	KindPRAutoMerged             Kind = "pr_auto_merged"
	KindDeployStarted            Kind = "deploy_started"
	KindDeployComplete           Kind = "deploy_complete"
	KindDeployFailed             Kind = "deploy_failed"
	KindRollbackTriggered        Kind = "rollback_triggered"
	KindReleaseNotesGenerated    Kind = "release_notes_generated"
	KindReportGenerated          Kind = "report_generated"
	KindBottleneckDetected       Kind = "bottleneck_detected"
	KindChatNotification         Kind = "chat_notification"
	KindAgentError               Kind = "agent_error"
)

var allKinds = map[Kind]struct{}{
	KindTicketCreated: {}, KindTicketUpdated: {}, KindCodePushed: {},
	KindPROpened: {}, KindPRReadyForReview: {}, KindPRApproved: {},
	KindMergeToMain: {}, KindIssueAssigned: {}, KindPipelineStarted: {},
	KindPipelineCompleted: {}, KindPipelineFailed: {}, KindDesignChanged: {},
	KindMetricsCollected: {}, KindRequirementsAnalyzed: {},
	KindComplexityTagged: {}, KindStoriesExtracted: {}, KindDesignCompared: {},
	KindImplNotesGenerated: {}, KindBranchCreated: {},
	KindBoilerplateGenerated: {}, KindPRTemplateCreated: {},
	KindSecurityScanComplete: {}, KindVulnerabilityFound: {},
	KindMergeBlocked: {}, KindComplianceReport: {},
	KindTestSuggestionsGenerated: {}, KindTestReportCreated: {},
	KindCoverageReport: {}, KindReviewersAssigned: {},
	KindReviewReminderSent: {}, KindReviewSLABreached: {},
	KindPRAutoMerged: {}, KindDeployStarted: {}, KindDeployComplete: {},
	KindDeployFailed: {}, KindRollbackTriggered: {},
	KindReleaseNotesGenerated: {}, KindReportGenerated: {},
	KindBottleneckDetected: {}, KindChatNotification: {}, KindAgentError: {},
}

// AllKinds returns every member of the enumeration. Used by the audit
// recorder to subscribe to the full event stream.
func AllKinds() []Kind {
	out := make([]Kind, 0, len(allKinds))
	for k := range allKinds {
		out = append(out, k)
	}
	return out
}

// Valid reports whether k is a member of the closed enumeration.
func (k Kind) Valid() bool {
	_, ok := allKinds[k]
	return ok
}

// ParseKind converts a wire name into a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.Valid() {
		return "", fmt.Errorf("unknown event kind %q", s)
	}
	return k, nil
}

// Payload is the semi-structured event body. Its shape is determined by the
// event kind; consumers treat it as read-only.
type Payload map[string]any

// String returns the string value under key, or "" when absent or not a string.
func (p Payload) String(key string) string {
	s, _ := p[key].(string)
	return s
}

// Int returns the integer value under key, tolerating JSON float64 decoding.
func (p Payload) Int(key string) int {
	switch v := p[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

// Bool returns the boolean value under key, or false when absent.
func (p Payload) Bool(key string) bool {
	b, _ := p[key].(bool)
	return b
}

// Strings returns the string-slice value under key. JSON decoding yields
// []any, so both representations are accepted.
func (p Payload) Strings(key string) []string {
	switch v := p[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// Map returns the nested object under key, or nil.
func (p Payload) Map(key string) Payload {
	switch v := p[key].(type) {
	case Payload:
		return v
	case map[string]any:
		return Payload(v)
	}
	return nil
}

// Decode projects the payload onto a typed struct via JSON round-trip. Agents
// use this at their boundary so the rest of their logic is statically typed.
func (p Payload) Decode(v any) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}
	return nil
}

// Clone returns a shallow copy of the payload map.
func (p Payload) Clone() Payload {
	if p == nil {
		return nil
	}
	out := make(Payload, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Event is an immutable record of something that happened. Project 0 means
// fleet-wide (no project scope).
type Event struct {
	ID            string
	Kind          Kind
	Payload       Payload
	Source        string
	Project       int
	CorrelationID string
	Timestamp     time.Time
}

// NewEvent constructs an event with a fresh id and the current wall clock.
func NewEvent(kind Kind, source string, payload Payload) *Event {
	return &Event{
		ID:        uuid.NewString(),
		Kind:      kind,
		Payload:   payload,
		Source:    source,
		Timestamp: time.Now(),
	}
}

// CorrelationOf returns the id that threads the causal chain started by e:
// its correlation id when set, its own id otherwise.
func (e *Event) CorrelationOf() string {
	if e.CorrelationID != "" {
		return e.CorrelationID
	}
	return e.ID
}

// Derive builds a child event that inherits e's project scope and causal
// chain. Agents publish derived events so correlation ids propagate.
func (e *Event) Derive(kind Kind, source string, payload Payload) *Event {
	child := NewEvent(kind, source, payload)
	child.Project = e.Project
	child.CorrelationID = e.CorrelationOf()
	return child
}

// copy returns a defensive copy handed out by History.
func (e *Event) copy() Event {
	dup := *e
	dup.Payload = e.Payload.Clone()
	return dup
}
