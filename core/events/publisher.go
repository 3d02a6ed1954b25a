package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"card-timers/core/swipe"
	"card-timers/core/utils"

	"github.com/nats-io/nats.go"
)

// Publisher announces committed state changes.
type Publisher interface {
	PublishSwipe(ctx context.Context, ev swipe.Event) error
	PublishReset(ctx context.Context, at time.Time) error
	Close()
}

// SwipeMessage is the payload published for an applied swipe.
type SwipeMessage struct {
	Monument  string `json:"monument"`
	Player    string `json:"player"`
	SwipedUTC string `json:"swiped_utc"`
	MessageID string `json:"message_id"`
}

// ResetMessage is the payload published for a reset.
type ResetMessage struct {
	ResetUTC string `json:"reset_utc"`
}

// NewPublisher connects to NATS, or returns Nop when publication is disabled.
func NewPublisher(cfg Config) (Publisher, error) {
	if cfg.NATSURL == "" {
		return Nop{}, nil
	}

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	conn, err := nats.Connect(cfg.NATSURL,
		nats.Name("card-timers"),
		nats.Timeout(timeout),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	return &NATSPublisher{conn: conn, subject: cfg.Subject, timeout: timeout}, nil
}

// NATSPublisher publishes events over a core NATS connection.
type NATSPublisher struct {
	conn    *nats.Conn
	subject string
	timeout time.Duration
}

// PublishSwipe publishes an applied swipe.
func (p *NATSPublisher) PublishSwipe(ctx context.Context, ev swipe.Event) error {
	return p.publish(ctx, "swipe", SwipeMessage{
		Monument:  ev.MonumentName,
		Player:    ev.PlayerName,
		SwipedUTC: utils.FormatUTC(ev.OccurredAt),
		MessageID: ev.SourceEventID,
	})
}

// PublishReset publishes a reset firing.
func (p *NATSPublisher) PublishReset(ctx context.Context, at time.Time) error {
	return p.publish(ctx, "reset", ResetMessage{ResetUTC: utils.FormatUTC(at)})
}

func (p *NATSPublisher) publish(ctx context.Context, kind string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", kind, err)
	}

	subject := p.subject + "." + kind
	if err := p.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", kind, err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	if err := p.conn.FlushWithContext(ctx); err != nil {
		return fmt.Errorf("failed to flush %s event: %w", kind, err)
	}
	return nil
}

// Close drains and closes the connection.
func (p *NATSPublisher) Close() {
	_ = p.conn.Drain()
}

// Nop discards every event.
type Nop struct{}

func (Nop) PublishSwipe(context.Context, swipe.Event) error { return nil }
func (Nop) PublishReset(context.Context, time.Time) error   { return nil }
func (Nop) Close()                                          {}
