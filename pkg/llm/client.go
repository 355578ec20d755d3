// Package llm provides the fleet's reasoning capability: a thin client over
// the Anthropic Messages API plus the Advisor, a set of strict-JSON prompt
// programs with per-prompt validation and safe fallbacks. The Advisor is the
// only boundary at which loosely-typed LLM output enters the system.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// Client produces a completion for a system/user prompt pair. Implementations
// must honor ctx cancellation.
type Client interface {
	Complete(ctx context.Context, system, user string, maxTokens int) (string, error)
}

// MessagesClient is the subset of the Anthropic SDK used here.
// *sdk.MessageService satisfies it; tests pass a mock.
type MessagesClient interface {
	New(ctx context.Context, body sdk.MessageNewParams, opts ...option.RequestOption) (*sdk.Message, error)
}

// Options configures the Anthropic-backed client.
type Options struct {
	// Model is the model identifier (required).
	Model string
	// MaxTokens is the default completion cap when a call does not specify
	// one (default 2048).
	MaxTokens int
	// Temperature for sampling (default 0.3).
	Temperature float64
	// Timeout bounds each call (default 120s).
	Timeout time.Duration
}

func (o Options) withDefaults() Options {
	if o.MaxTokens <= 0 {
		o.MaxTokens = 2048
	}
	if o.Temperature <= 0 {
		o.Temperature = 0.3
	}
	if o.Timeout <= 0 {
		o.Timeout = 120 * time.Second
	}
	return o
}

// AnthropicClient implements Client on top of the Anthropic Messages API.
type AnthropicClient struct {
	msg  MessagesClient
	opts Options
}

// New builds a client from an existing Messages client.
func New(msg MessagesClient, opts Options) (*AnthropicClient, error) {
	if msg == nil {
		return nil, errors.New("messages client is required")
	}
	if opts.Model == "" {
		return nil, errors.New("model identifier is required")
	}
	return &AnthropicClient{msg: msg, opts: opts.withDefaults()}, nil
}

// NewFromAPIKey constructs a client using the default Anthropic HTTP client.
func NewFromAPIKey(apiKey string, opts Options) (*AnthropicClient, error) {
	if apiKey == "" {
		return nil, errors.New("api key is required")
	}
	ac := sdk.NewClient(option.WithAPIKey(apiKey))
	return New(&ac.Messages, opts)
}

// Complete issues a single Messages.New call and returns the concatenated
// text blocks of the response.
func (c *AnthropicClient) Complete(ctx context.Context, system, user string, maxTokens int) (string, error) {
	if maxTokens <= 0 {
		maxTokens = c.opts.MaxTokens
	}
	ctx, cancel := context.WithTimeout(ctx, c.opts.Timeout)
	defer cancel()

	params := sdk.MessageNewParams{
		Model:     sdk.Model(c.opts.Model),
		MaxTokens: int64(maxTokens),
		System:    []sdk.TextBlockParam{{Text: system}},
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(user)),
		},
		Temperature: sdk.Float(c.opts.Temperature),
	}

	msg, err := c.msg.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("anthropic messages.new: %w", err)
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	return sb.String(), nil
}
