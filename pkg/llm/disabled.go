package llm

import (
	"context"
	"errors"
)

// ErrDisabled is returned by the disabled client. Advisor callers see
// their per-prompt fallbacks instead.
var ErrDisabled = errors.New("llm is not configured")

// Disabled is a Client for deployments without an API key: every call
// fails, so the fleet runs entirely on fallback results.
type Disabled struct{}

// Complete always fails with ErrDisabled.
func (Disabled) Complete(context.Context, string, string, int) (string, error) {
	return "", ErrDisabled
}
