package agents

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shipfleet/shipfleet/pkg/adapters"
	"github.com/shipfleet/shipfleet/pkg/bus"
)

func TestChatNotifierFailsOpen(t *testing.T) {
	agent := NewChatNotifier(adapters.NewResolver(fakeCreds{}, "#eng"))
	ctx := context.Background()

	t.Run("empty message skipped", func(t *testing.T) {
		evt := projectEvent(bus.KindChatNotification, bus.Payload{})
		require.NoError(t, agent.Handle(ctx, evt))
	})

	t.Run("no chat connection", func(t *testing.T) {
		evt := projectEvent(bus.KindChatNotification, bus.Payload{"message": "hello"})
		require.NoError(t, agent.Handle(ctx, evt))
	})
}
