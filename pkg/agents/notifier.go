package agents

import (
	"context"
	"log/slog"

	"github.com/shipfleet/shipfleet/pkg/adapters"
	"github.com/shipfleet/shipfleet/pkg/bus"
)

// ChatNotifier is the terminal outbound agent: it delivers
// chat_notification events to the configured chat service. Delivery
// failures are logged, never returned; a failed outbound notification
// must not loop back into the bus as agent_error.
type ChatNotifier struct {
	resolver *adapters.Resolver
}

// NewChatNotifier creates the agent.
func NewChatNotifier(resolver *adapters.Resolver) *ChatNotifier {
	return &ChatNotifier{resolver: resolver}
}

func (a *ChatNotifier) Name() string { return "chat_notifier" }

func (a *ChatNotifier) Description() string {
	return "Delivers chat notifications from all agents to connected workspaces"
}

func (a *ChatNotifier) SubscribedKinds() []bus.Kind {
	return []bus.Kind{bus.KindChatNotification}
}

func (a *ChatNotifier) Handle(ctx context.Context, e *bus.Event) error {
	message := e.Payload.String("message")
	if message == "" {
		slog.Warn("Empty chat notification, skipping", "agent", a.Name())
		return nil
	}

	chat, err := a.resolver.Chat(ctx, e.Project)
	if err != nil {
		slog.Error("Failed to resolve chat service", "project", e.Project, "error", err)
		return nil
	}
	if chat == nil {
		slog.Warn("No chat connection configured", "project", e.Project)
		return nil
	}

	channel := e.Payload.String("channel")
	title := e.Payload.String("title")
	if err := chat.PostMessage(ctx, channel, title, message); err != nil {
		slog.Error("Failed to deliver chat notification", "project", e.Project, "error", err)
	}
	return nil
}
