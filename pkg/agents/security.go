package agents

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shipfleet/shipfleet/pkg/adapters"
	"github.com/shipfleet/shipfleet/pkg/bus"
	"github.com/shipfleet/shipfleet/pkg/llm"
)

var severityMarkers = map[string]string{
	"critical": "🔴",
	"high":     "🟠",
	"medium":   "🟡",
	"low":      "🟢",
}

// SecurityCompliance scans merge-request diffs for vulnerabilities, posts
// findings, and blocks merges that carry critical issues.
type SecurityCompliance struct {
	bus      *bus.Bus
	resolver *adapters.Resolver
	advisor  *llm.Advisor
}

// NewSecurityCompliance creates the agent.
func NewSecurityCompliance(b *bus.Bus, resolver *adapters.Resolver, advisor *llm.Advisor) *SecurityCompliance {
	return &SecurityCompliance{bus: b, resolver: resolver, advisor: advisor}
}

func (a *SecurityCompliance) Name() string { return "security_compliance" }

func (a *SecurityCompliance) Description() string {
	return "Performs AI-based security scanning (SAST), dependency vulnerability checks, and generates compliance reports for code changes"
}

func (a *SecurityCompliance) SubscribedKinds() []bus.Kind {
	return []bus.Kind{bus.KindPROpened, bus.KindCodePushed}
}

func (a *SecurityCompliance) Handle(ctx context.Context, e *bus.Event) error {
	var in diffInput
	if err := e.Payload.Decode(&in); err != nil {
		return fmt.Errorf("decode diff payload: %w", err)
	}
	slog.Info("Security scan", "agent", a.Name(), "mr_iid", in.MRIID, "project", e.Project)

	vcs, err := a.resolver.VersionControl(ctx, e.Project)
	if err != nil {
		slog.Warn("Failed to resolve VCS", "project", e.Project, "error", err)
	}

	diff, files := fetchDiff(ctx, vcs, in)
	if diff == "" {
		slog.Info("No diff content available, skipping scan", "mr_iid", in.MRIID)
		return nil
	}

	scan := a.advisor.ScanSecurity(ctx, diff, files)
	counts := scan.CountBySeverity()
	critical := scan.Critical()

	if vcs != nil && in.MRIID != 0 && len(scan.Vulnerabilities) > 0 {
		if err := vcs.AddMRComment(ctx, in.MRIID, truncateComment(findingsComment(scan))); err != nil {
			slog.Warn("Failed to post security findings", "mr_iid", in.MRIID, "error", err)
		}
	}

	if len(critical) > 0 && in.MRIID != 0 {
		a.blockMerge(ctx, vcs, in.MRIID, critical)
		if err := publish(a.bus, e, bus.KindMergeBlocked, a.Name(), bus.Payload{
			"mr_iid":          in.MRIID,
			"reason":          fmt.Sprintf("%d critical vulnerabilities found", len(critical)),
			"vulnerabilities": critical,
		}); err != nil {
			return err
		}
		if err := notify(a.bus, e, a.Name(), fmt.Sprintf(
			"*MERGE BLOCKED* - MR !%d\n%d critical vulnerabilities found. Merge is blocked until resolved.",
			in.MRIID, len(critical))); err != nil {
			return err
		}
	}

	if len(scan.Vulnerabilities) > 0 {
		if err := publish(a.bus, e, bus.KindVulnerabilityFound, a.Name(), bus.Payload{
			"mr_iid":          in.MRIID,
			"count":           len(scan.Vulnerabilities),
			"critical":        counts["critical"],
			"high":            counts["high"],
			"vulnerabilities": scan.Vulnerabilities,
		}); err != nil {
			return err
		}
	}

	if err := publish(a.bus, e, bus.KindSecurityScanComplete, a.Name(), bus.Payload{
		"mr_iid":              in.MRIID,
		"passed":              scan.Passed,
		"overall_risk":        scan.OverallRisk,
		"vulnerability_count": len(scan.Vulnerabilities),
		"summary":             scan.Summary,
	}); err != nil {
		return err
	}

	return publish(a.bus, e, bus.KindComplianceReport, a.Name(), bus.Payload{
		"mr_iid":      in.MRIID,
		"scan_result": scan,
	})
}

// blockMerge opens an unresolved discussion thread on the MR. With "all
// discussions must be resolved" enabled on the project, this prevents the
// merge until the thread is resolved.
func (a *SecurityCompliance) blockMerge(ctx context.Context, vcs adapters.VersionControl, mrIID int, critical []llm.Vulnerability) {
	if vcs == nil {
		return
	}

	var b strings.Builder
	b.WriteString("## MERGE BLOCKED - Critical Security Vulnerabilities\n\n")
	b.WriteString("This merge request has been blocked due to critical security issues that must be resolved before merging.\n\n")
	capped := critical
	if len(capped) > 5 {
		capped = capped[:5]
	}
	for _, v := range capped {
		fmt.Fprintf(&b, "- **%s** in `%s`: %s\n  Recommendation: %s\n\n",
			v.Type, v.File, v.Description, v.Recommendation)
	}
	b.WriteString("\nResolve these issues and push a new commit to re-trigger the security scan. Resolve this discussion thread once all issues are fixed.")

	if err := vcs.CreateDiscussion(ctx, mrIID, b.String()); err != nil {
		slog.Warn("Failed to create blocking discussion", "mr_iid", mrIID, "error", err)
		return
	}
	slog.Info("Created blocking discussion", "mr_iid", mrIID)
}

func findingsComment(scan llm.SecurityScan) string {
	var b strings.Builder
	b.WriteString("## Security Scan Results\n\n")
	fmt.Fprintf(&b, "**Overall Risk:** %s\n", scan.OverallRisk)
	status := "FAILED"
	if scan.Passed {
		status = "PASSED"
	}
	fmt.Fprintf(&b, "**Status:** %s\n\n", status)

	if len(scan.Vulnerabilities) == 0 {
		b.WriteString("No vulnerabilities detected.\n")
		return b.String()
	}

	b.WriteString("### Vulnerabilities Found\n\n")
	vulns := scan.Vulnerabilities
	if len(vulns) > 10 {
		vulns = vulns[:10]
	}
	for _, v := range vulns {
		marker := severityMarkers[v.Severity]
		if marker == "" {
			marker = "⚪"
		}
		fmt.Fprintf(&b, "- %s **%s** - %s: %s\n  - File: `%s`\n  - Fix: %s\n\n",
			marker, strings.ToUpper(v.Severity), v.Type, v.Description, v.File, v.Recommendation)
	}
	return b.String()
}
