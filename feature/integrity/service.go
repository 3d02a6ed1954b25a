package integrity

import (
	"context"
	"errors"

	"card-timers/core/storage"
	"card-timers/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrStorageDisabled is returned by storage checks when snapshot storage is off.
var ErrStorageDisabled = errors.New("storage is disabled")

// Service handles integrity checks.
type Service struct {
	db     *gorm.DB
	client storage.Client
	cfg    storage.Config
	logger *zap.Logger
}

// NewService creates a new integrity service. client may be nil when storage is disabled.
func NewService(db *gorm.DB, client storage.Client, cfg storage.Config, logger *zap.Logger) *Service {
	return &Service{
		db:     db,
		client: client,
		cfg:    cfg,
		logger: logger,
	}
}

// CheckServer validates the database schema.
func (s *Service) CheckServer() (*checks.ServerReport, error) {
	return checks.CheckServerIntegrity(s.db)
}

// CheckStorage validates the snapshot bucket.
func (s *Service) CheckStorage(ctx context.Context) (*checks.StorageReport, error) {
	if !s.storageEnabled() {
		return nil, ErrStorageDisabled
	}
	return checks.CheckStorage(ctx, s.client, s.cfg.Bucket)
}

// FixStorage creates the snapshot bucket when it is missing.
func (s *Service) FixStorage(ctx context.Context) error {
	if !s.storageEnabled() {
		return ErrStorageDisabled
	}
	if err := storage.EnsureBucket(ctx, s.client, s.cfg.Bucket, s.cfg.Region); err != nil {
		return err
	}
	s.logger.Info("Snapshot bucket ensured", zap.String("bucket", s.cfg.Bucket))
	return nil
}

func (s *Service) storageEnabled() bool {
	return s.cfg.Enabled && s.client != nil
}
