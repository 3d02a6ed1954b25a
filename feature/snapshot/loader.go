package snapshot

import (
	"card-timers/core/state"
	"card-timers/core/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	enabled bool
	service *Service
	handler *Handler
}

// NewFeature creates a new Snapshot feature. It is disabled unless storage is enabled.
func NewFeature(store state.Store, client storage.Client, cfg storage.Config, clock clockwork.Clock, logger *zap.Logger) *Feature {
	svc := NewService(store, client, cfg, clock, logger)
	return &Feature{
		enabled: cfg.Enabled && client != nil,
		service: svc,
		handler: NewHandler(svc),
	}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "snapshot"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.enabled
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Service exposes the snapshot service for the CLI.
func (f *Feature) Service() *Service {
	return f.service
}
