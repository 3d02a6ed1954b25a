package cardlogger

import (
	"context"
	"time"

	"card-timers/core/metrics"
	"card-timers/core/reconcile"
	"card-timers/core/swipe"

	"go.uber.org/zap"
)

// Message is one inbound feed message.
type Message struct {
	Text              string
	AuthorIsAutomated bool
	ChannelID         string
	MessageID         string
	SentAt            time.Time
}

// Recorder commits extracted swipes.
type Recorder interface {
	RecordEvent(ctx context.Context, ev swipe.Event) (reconcile.Outcome, error)
}

// Listener filters feed messages and forwards swipes to a Recorder.
type Listener struct {
	cfg      Config
	recorder Recorder
	logger   *zap.Logger
}

// NewListener creates a listener.
func NewListener(cfg Config, recorder Recorder, logger *zap.Logger) *Listener {
	return &Listener{cfg: cfg, recorder: recorder, logger: logger}
}

// Handle processes one message. It returns the store error of a failed commit; every
// other outcome, including ignored messages, is nil.
func (l *Listener) Handle(ctx context.Context, msg Message) error {
	if msg.ChannelID != l.cfg.ChannelID {
		metrics.MessagesIgnored.WithLabelValues("channel").Inc()
		return nil
	}
	if l.cfg.RequireBotAuthor && !msg.AuthorIsAutomated {
		metrics.MessagesIgnored.WithLabelValues("author").Inc()
		return nil
	}

	c, ok := swipe.Extract(msg.Text)
	if !ok {
		metrics.MessagesIgnored.WithLabelValues("no_match").Inc()
		l.logger.Debug("Message is not a swipe", zap.String("message_id", msg.MessageID))
		return nil
	}

	if _, err := l.recorder.RecordEvent(ctx, c.At(msg.SentAt, msg.MessageID)); err != nil {
		l.logger.Error("Failed to record swipe",
			zap.String("message_id", msg.MessageID),
			zap.String("monument", c.Monument),
			zap.Error(err))
		return err
	}
	return nil
}
