package cardlogger

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements loader.Feature and loader.Runner for the Discord listener.
type Feature struct {
	cfg    Config
	source *DiscordSource
}

// NewFeature wires a Discord-backed listener to recorder. It fails with
// ErrInvalidConfig when cfg cannot work.
func NewFeature(cfg Config, recorder Recorder, logger *zap.Logger) (*Feature, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	l := NewListener(cfg, recorder, logger)
	return &Feature{cfg: cfg, source: NewDiscordSource(cfg.DiscordToken, l, logger)}, nil
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "cardlogger"
}

// IsEnabled reports whether a bot token is configured.
func (f *Feature) IsEnabled() bool {
	return f.cfg.DiscordToken != ""
}

// Load registers nothing; the listener has no HTTP surface.
func (f *Feature) Load(app fiber.Router) error {
	return nil
}

// Run runs the Discord session until ctx is done.
func (f *Feature) Run(ctx context.Context) error {
	return f.source.Run(ctx)
}
