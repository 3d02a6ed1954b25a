package schedule

import (
	"context"
	"time"

	"card-timers/core/events"
	"card-timers/core/metrics"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

// MinDelay is the wait used when the target is not in the future.
const MinDelay = time.Second

// ResetWriter persists the reset epoch.
type ResetWriter interface {
	SetLastReset(ctx context.Context, at time.Time) error
}

// Scheduler fires the reset epoch on a Schedule.
type Scheduler struct {
	schedule  *Schedule
	store     ResetWriter
	publisher events.Publisher
	clock     clockwork.Clock
	logger    *zap.Logger
}

// NewScheduler creates a scheduler. A nil publisher disables publication.
func NewScheduler(schedule *Schedule, store ResetWriter, publisher events.Publisher, clock clockwork.Clock, logger *zap.Logger) *Scheduler {
	if publisher == nil {
		publisher = events.Nop{}
	}
	return &Scheduler{
		schedule:  schedule,
		store:     store,
		publisher: publisher,
		clock:     clock,
		logger:    logger,
	}
}

// Run loops until ctx is cancelled. It always returns nil.
func (s *Scheduler) Run(ctx context.Context) error {
	s.logger.Info("Reset scheduler started",
		zap.String("timezone", s.schedule.Location().String()),
		zap.Ints("hours", s.schedule.hours))

	var lastTarget time.Time
	for {
		next, delay := s.plan(s.clock.Now().UTC(), lastTarget)
		metrics.NextReset.Set(float64(next.Unix()))
		s.logger.Info("Next reset scheduled",
			zap.Time("next_utc", next),
			zap.Duration("in", delay))

		// The clock is read again so time spent logging or a clock jump since
		// planning shortens the wait instead of overshooting the target.
		if !s.wait(ctx, delayUntil(next, s.clock.Now().UTC())) {
			s.logger.Info("Reset scheduler stopped")
			return nil
		}

		lastTarget = next
		s.fire(ctx)
	}
}

// plan picks the next target and how long to sleep for it. Targets never repeat, even
// if the clock stepped backwards after lastTarget fired.
func (s *Scheduler) plan(now, lastTarget time.Time) (time.Time, time.Duration) {
	from := now
	if !lastTarget.IsZero() && !from.After(lastTarget) {
		from = lastTarget
	}
	next := s.schedule.Next(from)
	return next, delayUntil(next, now)
}

// delayUntil is the wait from now to next. A target the clock already reached
// waits MinDelay so the loop cannot spin.
func delayUntil(next, now time.Time) time.Duration {
	delay := next.Sub(now)
	if delay <= 0 {
		return MinDelay
	}
	return delay
}

// wait reports false when ctx ended first.
func (s *Scheduler) wait(ctx context.Context, d time.Duration) bool {
	timer := s.clock.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.Chan():
		return true
	}
}

func (s *Scheduler) fire(ctx context.Context) {
	resetAt := s.clock.Now().UTC()
	if err := s.store.SetLastReset(ctx, resetAt); err != nil {
		metrics.StoreErrors.WithLabelValues("set_last_reset").Inc()
		s.logger.Error("Failed to write reset epoch", zap.Time("reset_utc", resetAt), zap.Error(err))
		return
	}

	metrics.ResetsTotal.Inc()
	s.logger.Info("Reset epoch updated", zap.Time("reset_utc", resetAt))

	if err := s.publisher.PublishReset(ctx, resetAt); err != nil {
		s.logger.Warn("Failed to publish reset", zap.Error(err))
	}
}
