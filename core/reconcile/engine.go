package reconcile

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"card-timers/core/events"
	"card-timers/core/metrics"
	"card-timers/core/state"
	"card-timers/core/swipe"

	"go.uber.org/zap"
)

// Engine applies the dedup and last-write-wins policy to incoming swipes.
type Engine struct {
	store     state.Store
	publisher events.Publisher
	logger    *zap.Logger
	locks     *keyedMutex
}

// NewEngine creates an engine. A nil publisher disables publication.
func NewEngine(store state.Store, publisher events.Publisher, logger *zap.Logger) *Engine {
	if publisher == nil {
		publisher = events.Nop{}
	}
	return &Engine{
		store:     store,
		publisher: publisher,
		logger:    logger,
		locks:     newKeyedMutex(),
	}
}

// RecordEvent is Record for an extracted event.
func (e *Engine) RecordEvent(ctx context.Context, ev swipe.Event) (Outcome, error) {
	return e.Record(ctx, ev.MonumentName, ev.OccurredAt, ev.PlayerName, ev.SourceEventID)
}

// Record commits one swipe for monument. Store failures are returned wrapped in
// state.ErrUnavailable; the event is not retried.
//
// The monument lock is held until the applied swipe has been published, so
// subscribers see swipes for one monument in commit order.
func (e *Engine) Record(ctx context.Context, monument string, occurredAt time.Time, player, sourceEventID string) (Outcome, error) {
	return e.record(ctx, monument, occurredAt, player, sourceEventID, func(cur state.MonumentState) bool {
		return cur.LastEventID == sourceEventID
	})
}

// SequencedID builds the event id RecordSequenced understands.
func SequencedID(source string, seq int) string {
	return source + ":" + strconv.Itoa(seq)
}

// RecordSequenced records a swipe taken from an ordered transcript. Besides
// the exact-id check of Record, it skips the swipe when the monument's stored
// event came from the same source at the same or a later position, so feeding
// a transcript twice leaves every monument untouched.
func (e *Engine) RecordSequenced(ctx context.Context, monument string, occurredAt time.Time, player, source string, seq int) (Outcome, error) {
	if source == "" {
		return 0, fmt.Errorf("%w: empty source event id", ErrInvalidEvent)
	}
	id := SequencedID(source, seq)
	return e.record(ctx, monument, occurredAt, player, id, func(cur state.MonumentState) bool {
		if cur.LastEventID == id {
			return true
		}
		stored, ok := sequenceOf(cur.LastEventID, source)
		return ok && stored >= seq
	})
}

// sequenceOf returns the position encoded in id when id belongs to source.
func sequenceOf(id, source string) (int, bool) {
	rest, ok := strings.CutPrefix(id, source+":")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (e *Engine) record(ctx context.Context, monument string, occurredAt time.Time, player, sourceEventID string, seen func(state.MonumentState) bool) (Outcome, error) {
	switch {
	case monument == "":
		return 0, fmt.Errorf("%w: empty monument name", ErrInvalidEvent)
	case player == "":
		return 0, fmt.Errorf("%w: empty player name", ErrInvalidEvent)
	case sourceEventID == "":
		return 0, fmt.Errorf("%w: empty source event id", ErrInvalidEvent)
	}
	at := occurredAt.UTC()

	unlock := e.locks.Lock(monument)
	defer unlock()

	_, written, err := e.store.UpdateMonument(ctx, monument, func(cur state.MonumentState) (state.MonumentState, bool) {
		if seen(cur) {
			return cur, false
		}
		return state.MonumentState{
			LastSwipeAt: &at,
			LastPlayer:  player,
			LastEventID: sourceEventID,
		}, true
	})
	if err != nil {
		metrics.StoreErrors.WithLabelValues("update_monument").Inc()
		return 0, fmt.Errorf("record swipe at %q: %w", monument, err)
	}

	if !written {
		metrics.SwipesTotal.WithLabelValues(SkippedDuplicate.String()).Inc()
		e.logger.Debug("Duplicate swipe skipped",
			zap.String("monument", monument),
			zap.String("event_id", sourceEventID))
		return SkippedDuplicate, nil
	}

	metrics.SwipesTotal.WithLabelValues(Applied.String()).Inc()
	e.logger.Info("Swipe recorded",
		zap.String("monument", monument),
		zap.String("player", player),
		zap.Time("utc", at),
		zap.String("event_id", sourceEventID))

	ev := swipe.Event{MonumentName: monument, PlayerName: player, OccurredAt: at, SourceEventID: sourceEventID}
	if err := e.publisher.PublishSwipe(ctx, ev); err != nil {
		e.logger.Warn("Failed to publish swipe", zap.String("monument", monument), zap.Error(err))
	}

	return Applied, nil
}
