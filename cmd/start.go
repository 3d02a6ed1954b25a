package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"card-timers/core/events"
	"card-timers/core/loader"
	"card-timers/core/logger"
	"card-timers/core/middleware/auth"
	"card-timers/core/middleware/rayid"
	"card-timers/core/reconcile"
	"card-timers/core/schedule"

	"card-timers/feature/cardlogger"
	"card-timers/feature/integrity"
	"card-timers/feature/monuments"
	"card-timers/feature/reset"
	"card-timers/feature/snapshot"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	_ "card-timers/docs/swagger"
)

// @title Card Timers API
// @version 1.0
// @description Monument swipe timers reconciled from the CardLogger feed.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the card timers service",
	Long:  `Starts the Discord listener, the reset scheduler and the HTTP server.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		rt, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		cfg, logg := rt.cfg, rt.logger
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		sched, err := schedule.New(cfg.Reset)
		if err != nil {
			return err
		}

		publisher, err := events.NewPublisher(cfg.Events)
		if err != nil {
			return err
		}
		defer publisher.Close()

		objects, err := rt.objectStore()
		if err != nil {
			return err
		}

		engine := reconcile.NewEngine(rt.store, publisher, logg)
		clock := clockwork.NewRealClock()

		// Feature Loader
		mgr := loader.NewManager()
		mgr.Register(monuments.NewFeature(rt.store, logg))
		mgr.Register(reset.NewFeature(rt.store, sched, publisher, clock, logg))
		mgr.Register(snapshot.NewFeature(rt.store, objects, cfg.Storage, clock, logg))
		mgr.Register(integrity.NewFeature(rt.db, objects, cfg.Storage, logg))

		listener, err := cardlogger.NewFeature(cfg.CardLogger, engine, logg)
		if err != nil {
			return err
		}
		if !listener.IsEnabled() {
			logg.Error("CardLogger listener not started", zap.Error(cardlogger.ErrMissingToken))
		}
		mgr.Register(listener)

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		// RayID first so every later log line carries it.
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Public routes
		app.Get("/swagger/*", swagger.HandlerDefault)
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			return err
		}

		logg.Info("Features enabled", zap.Strings("features", mgr.Enabled()))

		g, ctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			return mgr.RunAll(ctx)
		})
		g.Go(func() error {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(cfg.Server.Address()); err != nil {
				return fmt.Errorf("server failed: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			logg.Info("Shutting down server...")
			return app.ShutdownWithTimeout(time.Duration(cfg.Server.ShutdownSeconds) * time.Second)
		})

		if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
