package api

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/shipfleet/shipfleet/pkg/adapters"
	"github.com/shipfleet/shipfleet/pkg/bus"
)

// Webhook ingress translates inbound vendor payloads into bus events.
// Endpoints always answer 200 so the vendor does not retry forever; only a
// failed signature check answers 401. At-least-once delivery is the
// caller's responsibility.

type trackerWebhook struct {
	WebhookEvent string `json:"webhookEvent"`
	Issue        struct {
		Key         string `json:"key"`
		Title       string `json:"title"`
		Description string `json:"description"`
		Priority    string `json:"priority"`
	} `json:"issue"`
	ProjectID json.Number `json:"project_id"`
}

// TrackerWebhook is POST /api/webhooks/tracker.
func (s *Server) TrackerWebhook(c *gin.Context) {
	var hook trackerWebhook
	if err := c.ShouldBindJSON(&hook); err != nil {
		s.logger.Warn("Malformed tracker webhook", "error", err)
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	var kind bus.Kind
	switch strings.TrimPrefix(hook.WebhookEvent, "jira:") {
	case "issue_created":
		kind = bus.KindTicketCreated
	case "issue_updated":
		kind = bus.KindTicketUpdated
	default:
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	evt := bus.NewEvent(kind, "tracker_webhook", bus.Payload{
		"key":         hook.Issue.Key,
		"title":       hook.Issue.Title,
		"description": hook.Issue.Description,
		"priority":    hook.Issue.Priority,
	})
	externalID, _ := hook.ProjectID.Int64()
	evt.Project = s.projectByExternalID(c, int(externalID))
	s.ingest(c, evt)
}

type vcsWebhook struct {
	Ref     string `json:"ref"`
	Project struct {
		ID int `json:"id"`
	} `json:"project"`
	Commits []struct {
		Message string `json:"message"`
	} `json:"commits"`
	ObjectAttributes struct {
		Action         string `json:"action"`
		IID            int    `json:"iid"`
		ID             int    `json:"id"`
		Title          string `json:"title"`
		Status         string `json:"status"`
		Ref            string `json:"ref"`
		TargetBranch   string `json:"target_branch"`
		WorkInProgress bool   `json:"work_in_progress"`
	} `json:"object_attributes"`
}

// VCSWebhook is POST /api/webhooks/vcs. The event class comes from the
// X-Gitlab-Event header; the payload discriminates further.
func (s *Server) VCSWebhook(c *gin.Context) {
	var hook vcsWebhook
	if err := c.ShouldBindJSON(&hook); err != nil {
		s.logger.Warn("Malformed VCS webhook", "error", err)
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	eventClass := strings.TrimSuffix(c.GetHeader("X-Gitlab-Event"), " Hook")
	evt := s.translateVCS(eventClass, hook)
	if evt == nil {
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}
	evt.Project = s.projectByExternalID(c, hook.Project.ID)
	s.ingest(c, evt)
}

func (s *Server) translateVCS(eventClass string, hook vcsWebhook) *bus.Event {
	switch eventClass {
	case "Push":
		messages := make([]string, 0, len(hook.Commits))
		for _, commit := range hook.Commits {
			messages = append(messages, commit.Message)
		}
		kind := bus.KindCodePushed
		if isMainRef(hook.Ref) {
			kind = bus.KindMergeToMain
		}
		return bus.NewEvent(kind, "vcs_webhook", bus.Payload{
			"ref":             shortRef(hook.Ref),
			"commit_messages": messages,
		})

	case "Merge Request":
		attrs := hook.ObjectAttributes
		payload := bus.Payload{
			"mr_iid":        attrs.IID,
			"title":         attrs.Title,
			"target_branch": attrs.TargetBranch,
		}
		switch attrs.Action {
		case "open":
			return bus.NewEvent(bus.KindPROpened, "vcs_webhook", payload)
		case "update":
			if attrs.WorkInProgress {
				return nil
			}
			return bus.NewEvent(bus.KindPRReadyForReview, "vcs_webhook", payload)
		case "approved":
			return bus.NewEvent(bus.KindPRApproved, "vcs_webhook", payload)
		case "merge":
			if !isMainRef(attrs.TargetBranch) {
				return nil
			}
			payload["ref"] = attrs.TargetBranch
			return bus.NewEvent(bus.KindMergeToMain, "vcs_webhook", payload)
		}
		return nil

	case "Pipeline":
		attrs := hook.ObjectAttributes
		payload := bus.Payload{
			"pipeline_id": attrs.ID,
			"ref":         attrs.Ref,
			"status":      attrs.Status,
		}
		switch attrs.Status {
		case "running":
			return bus.NewEvent(bus.KindPipelineStarted, "vcs_webhook", payload)
		case "success":
			return bus.NewEvent(bus.KindPipelineCompleted, "vcs_webhook", payload)
		case "failed":
			return bus.NewEvent(bus.KindPipelineFailed, "vcs_webhook", payload)
		}
		return nil
	}
	return nil
}

type designWebhook struct {
	EventType string `json:"event_type"`
	FileKey   string `json:"file_key"`
	FileName  string `json:"file_name"`
}

// DesignWebhook is POST /api/webhooks/design. When a webhook secret is
// configured the body must carry a valid HMAC-SHA256 signature.
func (s *Server) DesignWebhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	if s.designSecret != "" {
		mac := hmac.New(sha256.New, []byte(s.designSecret))
		mac.Write(body)
		expected := hex.EncodeToString(mac.Sum(nil))
		if !hmac.Equal([]byte(expected), []byte(c.GetHeader("X-Figma-Signature"))) {
			s.logger.Warn("Design webhook signature mismatch")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
			return
		}
	}

	var hook designWebhook
	if err := json.Unmarshal(body, &hook); err != nil || hook.EventType != "FILE_UPDATE" {
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	evt := bus.NewEvent(bus.KindDesignChanged, "design_webhook", bus.Payload{
		"file_key":  hook.FileKey,
		"file_name": hook.FileName,
	})
	evt.Project = s.projectByFileKey(c, hook.FileKey)
	s.ingest(c, evt)
}

// ingest publishes and always answers 200: bus saturation or shutdown is
// logged, not surfaced to the vendor.
func (s *Server) ingest(c *gin.Context, evt *bus.Event) {
	if err := s.bus.Publish(evt); err != nil {
		s.logger.Error("Webhook publish failed",
			"kind", string(evt.Kind),
			"event_id", evt.ID,
			"error", err)
		c.JSON(http.StatusOK, gin.H{"status": "dropped"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "accepted", "event_id": evt.ID, "kind": string(evt.Kind)})
}

// projectByExternalID maps a vendor project id to the internal project by
// scanning stored VCS credentials. 0 means unresolved (fleet-wide).
func (s *Server) projectByExternalID(c *gin.Context, externalID int) int {
	if externalID == 0 {
		return 0
	}
	creds, err := s.connections.OfKind(c.Request.Context(), adapters.KindGitLab)
	if err != nil {
		s.logger.Warn("Failed to resolve webhook project", "error", err)
		return 0
	}
	for _, cred := range creds {
		if cred.ConfigInt("external_project_id") == externalID {
			return cred.Project
		}
	}
	return 0
}

// projectByFileKey maps a design file key to the internal project.
func (s *Server) projectByFileKey(c *gin.Context, fileKey string) int {
	if fileKey == "" {
		return 0
	}
	creds, err := s.connections.OfKind(c.Request.Context(), adapters.KindFigma)
	if err != nil {
		s.logger.Warn("Failed to resolve design project", "error", err)
		return 0
	}
	for _, cred := range creds {
		if cred.ConfigString("file_key") == fileKey {
			return cred.Project
		}
	}
	return 0
}

func isMainRef(ref string) bool {
	short := shortRef(ref)
	return short == "main" || short == "master"
}

func shortRef(ref string) string {
	return strings.TrimPrefix(ref, "refs/heads/")
}
