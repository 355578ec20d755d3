// Package agents contains the nine concrete fleet agents. Each agent reads
// its input through a typed payload projection, calls adapters and the LLM
// advisor, and publishes derived events that chain further agents. Adapter
// failures degrade locally: the operation is skipped and the chain
// continues.
package agents

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/shipfleet/shipfleet/pkg/adapters"
	"github.com/shipfleet/shipfleet/pkg/bus"
	"github.com/shipfleet/shipfleet/pkg/services"
)

// AgentConfigSource provides per-project agent settings. Implemented by
// services.ConfigService.
type AgentConfigSource interface {
	Get(ctx context.Context, project int, name string) (*services.AgentSettings, error)
	EnabledProjects(ctx context.Context, name string) ([]int, error)
}

// ProjectSource enumerates the projects known to the system. Implemented
// by services.ConnectionService.
type ProjectSource interface {
	Projects(ctx context.Context) ([]int, error)
}

// maxCommentLen keeps MR comments well under the vendor's ~1MB note limit.
const maxCommentLen = 60000

var slugRE = regexp.MustCompile(`[^a-z0-9]+`)

// slugify lowercases text, collapses runs of non-alphanumerics into "-",
// trims the edges, and truncates to maxLen.
func slugify(text string, maxLen int) string {
	slug := slugRE.ReplaceAllString(strings.ToLower(text), "-")
	slug = strings.Trim(slug, "-")
	if len(slug) > maxLen {
		slug = strings.TrimRight(slug[:maxLen], "-")
	}
	return slug
}

// truncateComment caps an MR comment body.
func truncateComment(comment string) string {
	if len(comment) <= maxCommentLen {
		return comment
	}
	return comment[:maxCommentLen] + "\n\n*...truncated*"
}

// diffInput is the shared payload slice carried by pr_opened, code_pushed,
// and their derivatives.
type diffInput struct {
	MRIID int      `json:"mr_iid"`
	Diff  string   `json:"diff"`
	Files []string `json:"files"`
	Ref   string   `json:"ref"`
}

// fetchDiff returns the diff text and changed file paths for an event:
// inline payload data when present, otherwise fetched from the VCS by
// mr_iid. Empty results mean there is nothing to analyze.
func fetchDiff(ctx context.Context, vcs adapters.VersionControl, in diffInput) (string, []string) {
	if in.Diff != "" {
		return in.Diff, in.Files
	}
	if vcs == nil || in.MRIID == 0 {
		return "", nil
	}

	diffs, err := vcs.GetDiff(ctx, in.MRIID)
	if err != nil {
		slog.Warn("Failed to fetch MR diff", "mr_iid", in.MRIID, "error", err)
		return "", nil
	}
	paths := make([]string, 0, len(diffs))
	parts := make([]string, 0, len(diffs))
	for _, d := range diffs {
		paths = append(paths, d.NewPath)
		parts = append(parts, d.Diff)
	}
	return strings.Join(parts, "\n"), paths
}

// notify publishes a chat_notification derived from e. Chat delivery
// problems are the notifier agent's concern; publish errors here propagate.
func notify(b *bus.Bus, e *bus.Event, source, message string) error {
	evt := e.Derive(bus.KindChatNotification, source, bus.Payload{"message": message})
	if err := b.Publish(evt); err != nil {
		return fmt.Errorf("publish chat notification: %w", err)
	}
	return nil
}

// publish sends a derived event, wrapping failures with the kind for
// context.
func publish(b *bus.Bus, e *bus.Event, kind bus.Kind, source string, payload bus.Payload) error {
	if err := b.Publish(e.Derive(kind, source, payload)); err != nil {
		return fmt.Errorf("publish %s: %w", kind, err)
	}
	return nil
}
