package adapters

import (
	"context"
	"fmt"

	"github.com/slack-go/slack"
)

// SlackChat posts fleet notifications to Slack. It implements ChatService.
type SlackChat struct {
	api            *slack.Client
	defaultChannel string
}

// NewSlackChat creates a client from a bot token. defaultChannel is used
// when a message does not name a channel.
func NewSlackChat(token, defaultChannel string) *SlackChat {
	return &SlackChat{
		api:            slack.New(token),
		defaultChannel: defaultChannel,
	}
}

// TestConnection verifies the bot token.
func (c *SlackChat) TestConnection(ctx context.Context) error {
	if _, err := c.api.AuthTestContext(ctx); err != nil {
		return fmt.Errorf("slack auth test: %w", err)
	}
	return nil
}

// PostMessage sends a message. A non-empty title renders as a header block
// above the body text.
func (c *SlackChat) PostMessage(ctx context.Context, channel, title, text string) error {
	if channel == "" {
		channel = c.defaultChannel
	}
	if channel == "" {
		return fmt.Errorf("no slack channel configured")
	}

	opts := []slack.MsgOption{slack.MsgOptionText(text, false)}
	if title != "" {
		opts = append(opts, slack.MsgOptionBlocks(
			slack.NewHeaderBlock(slack.NewTextBlockObject(slack.PlainTextType, title, false, false)),
			slack.NewSectionBlock(slack.NewTextBlockObject(slack.MarkdownType, text, false, false), nil, nil),
		))
	}

	if _, _, err := c.api.PostMessageContext(ctx, channel, opts...); err != nil {
		return fmt.Errorf("slack post to %s: %w", channel, err)
	}
	return nil
}
