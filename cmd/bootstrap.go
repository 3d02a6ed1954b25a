package cmd

import (
	"context"
	"fmt"

	"card-timers/core/config"
	"card-timers/core/database"
	"card-timers/core/logger"
	"card-timers/core/state"
	"card-timers/core/storage"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// deps is the shared wiring of every command.
type deps struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *gorm.DB
	store  *state.GormStore
}

// bootstrap loads the configuration, builds the logger and opens the migrated store.
func bootstrap(ctx context.Context) (*deps, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("database connection required: %w", err)
	}

	store := state.NewGormStore(db)
	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &deps{cfg: cfg, logger: logg, db: db, store: store}, nil
}

// objectStore returns the snapshot storage client, or nil when storage is disabled.
func (r *deps) objectStore() (storage.Client, error) {
	if !r.cfg.Storage.Enabled {
		return nil, nil
	}
	client, err := storage.NewClient(r.cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return client, nil
}
