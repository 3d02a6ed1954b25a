package reset

import (
	"context"
	"time"

	"card-timers/core/schedule"
	"card-timers/core/state"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

// MaxUpcoming bounds the number of upcoming resets a caller can ask for.
const MaxUpcoming = 50

// Status describes the reset epoch.
type Status struct {
	LastResetUTC time.Time   `json:"last_reset_utc"`
	NextResetUTC time.Time   `json:"next_reset_utc"`
	Upcoming     []time.Time `json:"upcoming,omitempty"`
	Timezone     string      `json:"timezone"`
	Hours        []int       `json:"hours"`
}

// Service reads the reset epoch and computes the schedule.
type Service struct {
	store    state.Store
	schedule *schedule.Schedule
	clock    clockwork.Clock
	logger   *zap.Logger
}

// NewService creates a new reset service.
func NewService(store state.Store, sched *schedule.Schedule, clock clockwork.Clock, logger *zap.Logger) *Service {
	return &Service{store: store, schedule: sched, clock: clock, logger: logger}
}

// Status returns the stored epoch and the next count resets (at least one).
func (s *Service) Status(ctx context.Context, count int) (*Status, error) {
	last, err := s.store.GetLastReset(ctx)
	if err != nil {
		return nil, err
	}

	if count < 1 {
		count = 1
	}
	if count > MaxUpcoming {
		count = MaxUpcoming
	}
	upcoming := s.schedule.Upcoming(s.clock.Now(), count)

	st := &Status{
		LastResetUTC: last,
		NextResetUTC: upcoming[0],
		Timezone:     s.schedule.Location().String(),
		Hours:        s.schedule.Hours(),
	}
	if count > 1 {
		st.Upcoming = upcoming
	}
	return st, nil
}
