package cardlogger

import (
	"context"
	"errors"
	"testing"
	"time"

	"card-timers/core/reconcile"
	"card-timers/core/state"
	"card-timers/core/swipe"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const swipeLine = ":desktop: [Custom] [CardLogger] [3:15 PM EST] Alice swiped a card at Sewer Branch"

type mockRecorder struct {
	mock.Mock
}

func (m *mockRecorder) RecordEvent(ctx context.Context, ev swipe.Event) (reconcile.Outcome, error) {
	args := m.Called(ctx, ev)
	return args.Get(0).(reconcile.Outcome), args.Error(1)
}

func newMessage(text string) Message {
	return Message{
		Text:              text,
		AuthorIsAutomated: true,
		ChannelID:         "42",
		MessageID:         "m1",
		SentAt:            time.Date(2024, 1, 1, 20, 15, 0, 0, time.UTC),
	}
}

func TestListener_Handle(t *testing.T) {
	cfg := Config{ChannelID: "42", RequireBotAuthor: true}

	t.Run("Records swipe with envelope time and id", func(t *testing.T) {
		rec := new(mockRecorder)
		want := swipe.Event{
			MonumentName:  "Sewer Branch",
			PlayerName:    "Alice",
			OccurredAt:    time.Date(2024, 1, 1, 20, 15, 0, 0, time.UTC),
			SourceEventID: "m1",
		}
		rec.On("RecordEvent", mock.Anything, want).Return(reconcile.Applied, nil).Once()

		l := NewListener(cfg, rec, zap.NewNop())
		assert.NoError(t, l.Handle(context.Background(), newMessage(swipeLine)))
		rec.AssertExpectations(t)
	})

	tests := []struct {
		name   string
		cfg    Config
		mutate func(*Message)
	}{
		{"Other channel", cfg, func(m *Message) { m.ChannelID = "7" }},
		{"Human author", cfg, func(m *Message) { m.AuthorIsAutomated = false }},
		{"Not a swipe", cfg, func(m *Message) { m.Text = "server restart in 5" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := new(mockRecorder)
			l := NewListener(tt.cfg, rec, zap.NewNop())

			msg := newMessage(swipeLine)
			tt.mutate(&msg)
			assert.NoError(t, l.Handle(context.Background(), msg))
			rec.AssertNotCalled(t, "RecordEvent", mock.Anything, mock.Anything)
		})
	}

	t.Run("Human author allowed when policy is off", func(t *testing.T) {
		rec := new(mockRecorder)
		rec.On("RecordEvent", mock.Anything, mock.Anything).Return(reconcile.Applied, nil).Once()

		l := NewListener(Config{ChannelID: "42"}, rec, zap.NewNop())
		msg := newMessage(swipeLine)
		msg.AuthorIsAutomated = false
		assert.NoError(t, l.Handle(context.Background(), msg))
		rec.AssertExpectations(t)
	})

	t.Run("Store failure is returned", func(t *testing.T) {
		rec := new(mockRecorder)
		storeErr := errors.Join(state.ErrUnavailable, errors.New("disk full"))
		rec.On("RecordEvent", mock.Anything, mock.Anything).Return(reconcile.Outcome(0), storeErr)

		l := NewListener(cfg, rec, zap.NewNop())
		err := l.Handle(context.Background(), newMessage(swipeLine))
		assert.ErrorIs(t, err, state.ErrUnavailable)
	})
}

func TestToMessage(t *testing.T) {
	sent := time.Date(2024, 1, 1, 15, 15, 0, 0, time.FixedZone("EST", -5*3600))

	t.Run("Bot author", func(t *testing.T) {
		msg := toMessage(&discordgo.Message{
			ID:        "111",
			ChannelID: "42",
			Content:   swipeLine,
			Timestamp: sent,
			Author:    &discordgo.User{Bot: true},
		})
		assert.Equal(t, "111", msg.MessageID)
		assert.Equal(t, "42", msg.ChannelID)
		assert.Equal(t, swipeLine, msg.Text)
		assert.True(t, msg.AuthorIsAutomated)
		assert.Equal(t, time.Date(2024, 1, 1, 20, 15, 0, 0, time.UTC), msg.SentAt)
	})

	t.Run("Human author", func(t *testing.T) {
		msg := toMessage(&discordgo.Message{Timestamp: sent, Author: &discordgo.User{}})
		assert.False(t, msg.AuthorIsAutomated)
	})

	t.Run("Webhook", func(t *testing.T) {
		msg := toMessage(&discordgo.Message{Timestamp: sent, WebhookID: "hook"})
		assert.True(t, msg.AuthorIsAutomated)
	})
}

func TestDiscordSource_MissingToken(t *testing.T) {
	src := NewDiscordSource("", NewListener(Config{}, new(mockRecorder), zap.NewNop()), zap.NewNop())
	assert.ErrorIs(t, src.Run(context.Background()), ErrMissingToken)
}

func TestFeature(t *testing.T) {
	f, err := NewFeature(Config{}, new(mockRecorder), zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "cardlogger", f.Name())
	assert.False(t, f.IsEnabled())

	f, err = NewFeature(Config{DiscordToken: "token", ChannelID: "swipes"}, new(mockRecorder), zap.NewNop())
	require.NoError(t, err)
	assert.True(t, f.IsEnabled())
}

func TestFeature_TokenWithoutChannel(t *testing.T) {
	f, err := NewFeature(Config{DiscordToken: "token"}, new(mockRecorder), zap.NewNop())
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Nil(t, f)

	assert.NoError(t, Config{}.Validate())
	assert.NoError(t, Config{ChannelID: "swipes"}.Validate())
}
