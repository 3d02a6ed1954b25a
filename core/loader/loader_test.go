package loader

import (
	"context"
	"errors"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFeature struct {
	name    string
	enabled bool
	loadErr error
	runErr  error
	runs    atomic.Int32
}

func (f *stubFeature) Name() string    { return f.name }
func (f *stubFeature) IsEnabled() bool { return f.enabled }

func (f *stubFeature) Load(app fiber.Router) error {
	if f.loadErr != nil {
		return f.loadErr
	}
	app.Get("/"+f.name, func(c *fiber.Ctx) error { return c.SendString(f.name) })
	return nil
}

func (f *stubFeature) Run(ctx context.Context) error {
	f.runs.Add(1)
	if f.runErr != nil {
		return f.runErr
	}
	<-ctx.Done()
	return nil
}

func TestManager_LoadAll(t *testing.T) {
	m := NewManager()
	m.Register(&stubFeature{name: "on", enabled: true})
	m.Register(&stubFeature{name: "off", enabled: false})

	app := fiber.New()
	require.NoError(t, m.LoadAll(app))
	assert.Equal(t, []string{"on"}, m.Enabled())

	resp, err := app.Test(httptest.NewRequest("GET", "/on", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/off", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestManager_LoadAllError(t *testing.T) {
	m := NewManager()
	m.Register(&stubFeature{name: "broken", enabled: true, loadErr: errors.New("boom")})

	err := m.LoadAll(fiber.New())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}

func TestManager_RunAll(t *testing.T) {
	t.Run("Stops on cancel", func(t *testing.T) {
		on := &stubFeature{name: "on", enabled: true}
		off := &stubFeature{name: "off", enabled: false}
		m := NewManager()
		m.Register(on)
		m.Register(off)

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- m.RunAll(ctx) }()

		assert.Eventually(t, func() bool { return on.runs.Load() == 1 }, time.Second, 10*time.Millisecond)
		cancel()
		assert.NoError(t, <-done)
		assert.Equal(t, int32(0), off.runs.Load())
	})

	t.Run("First error cancels the rest", func(t *testing.T) {
		m := NewManager()
		m.Register(&stubFeature{name: "waiter", enabled: true})
		m.Register(&stubFeature{name: "failing", enabled: true, runErr: errors.New("boom")})

		err := m.RunAll(context.Background())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failing")
	})
}
