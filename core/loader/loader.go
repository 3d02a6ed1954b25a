package loader

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"
)

// Feature is a pluggable module of the application.
type Feature interface {
	Name() string
	IsEnabled() bool
	Load(app fiber.Router) error
}

// Runner is a feature with a background task. Run blocks until ctx is done.
type Runner interface {
	Run(ctx context.Context) error
}

// Manager holds the registered features.
type Manager struct {
	features []Feature
}

// NewManager creates an empty manager.
func NewManager() *Manager {
	return &Manager{}
}

// Register adds a feature.
func (m *Manager) Register(f Feature) {
	m.features = append(m.features, f)
}

// Enabled returns the names of enabled features in registration order.
func (m *Manager) Enabled() []string {
	var names []string
	for _, f := range m.features {
		if f.IsEnabled() {
			names = append(names, f.Name())
		}
	}
	return names
}

// LoadAll registers the routes of every enabled feature.
func (m *Manager) LoadAll(app fiber.Router) error {
	for _, f := range m.features {
		if !f.IsEnabled() {
			continue
		}
		if err := f.Load(app); err != nil {
			return fmt.Errorf("failed to load feature %s: %w", f.Name(), err)
		}
	}
	return nil
}

// RunAll runs every enabled Runner and waits for all of them. The first error cancels
// the others.
func (m *Manager) RunAll(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, f := range m.features {
		r, ok := f.(Runner)
		if !ok || !f.IsEnabled() {
			continue
		}
		name := f.Name()
		g.Go(func() error {
			if err := r.Run(ctx); err != nil {
				return fmt.Errorf("feature %s: %w", name, err)
			}
			return nil
		})
	}
	return g.Wait()
}
