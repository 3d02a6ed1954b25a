package reset

import (
	"context"

	"card-timers/core/events"
	"card-timers/core/schedule"
	"card-timers/core/state"

	"github.com/gofiber/fiber/v2"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

// Feature implements loader.Feature and loader.Runner.
type Feature struct {
	scheduler *schedule.Scheduler
	handler   *Handler
}

// NewFeature creates a new Reset feature.
func NewFeature(store state.Store, sched *schedule.Schedule, publisher events.Publisher, clock clockwork.Clock, logger *zap.Logger) *Feature {
	return &Feature{
		scheduler: schedule.NewScheduler(sched, store, publisher, clock, logger),
		handler:   NewHandler(NewService(store, sched, clock, logger)),
	}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "reset"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Run drives the reset scheduler until ctx is done.
func (f *Feature) Run(ctx context.Context) error {
	return f.scheduler.Run(ctx)
}
