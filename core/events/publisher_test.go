package events

import (
	"context"
	"testing"
	"time"

	"card-timers/core/swipe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPublisher(t *testing.T) {
	t.Run("Disabled", func(t *testing.T) {
		p, err := NewPublisher(Config{})
		require.NoError(t, err)
		assert.IsType(t, Nop{}, p)

		assert.NoError(t, p.PublishSwipe(context.Background(), swipe.Event{}))
		assert.NoError(t, p.PublishReset(context.Background(), time.Now()))
		p.Close()
	})

	t.Run("Unreachable server", func(t *testing.T) {
		p, err := NewPublisher(Config{NATSURL: "nats://127.0.0.1:1", Subject: "cardtimers", TimeoutSeconds: 1})
		assert.Error(t, err)
		assert.Nil(t, p)
	})
}
