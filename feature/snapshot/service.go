package snapshot

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"card-timers/core/state"
	"card-timers/core/storage"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Prefix is the object key prefix of every snapshot.
const Prefix = "snapshots/"

const nameLayout = "20060102T150405Z"

var (
	// ErrNotFound is returned for a snapshot that does not exist.
	ErrNotFound = errors.New("snapshot not found")
	// ErrInvalidName is returned for names that are not a plain snapshot file name.
	ErrInvalidName = errors.New("invalid snapshot name")
)

// Service writes and reads snapshots.
type Service struct {
	store  state.Store
	client storage.Client
	bucket string
	region string
	clock  clockwork.Clock
	logger *zap.Logger
}

// NewService creates a new snapshot service.
func NewService(store state.Store, client storage.Client, cfg storage.Config, clock clockwork.Clock, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		client: client,
		bucket: cfg.Bucket,
		region: cfg.Region,
		clock:  clock,
		logger: logger,
	}
}

// Export serializes the current board and uploads it.
func (s *Service) Export(ctx context.Context) (*Info, error) {
	lastReset, err := s.store.GetLastReset(ctx)
	if err != nil {
		return nil, err
	}
	monuments, err := s.store.ListMonuments(ctx)
	if err != nil {
		return nil, err
	}

	doc := Document{
		TakenAtUTC:   s.clock.Now().UTC(),
		LastResetUTC: lastReset,
		Monuments:    monuments,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if err := storage.EnsureBucket(ctx, s.client, s.bucket, s.region); err != nil {
		return nil, err
	}

	name := fmt.Sprintf("%s-%s.json", doc.TakenAtUTC.Format(nameLayout), uuid.NewString())
	_, err = s.client.PutObject(ctx, s.bucket, Prefix+name, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload snapshot %s: %w", name, err)
	}

	s.logger.Info("Snapshot exported",
		zap.String("name", name),
		zap.Int("monuments", len(monuments)))
	return &Info{Name: name, Size: int64(len(data)), LastModified: doc.TakenAtUTC}, nil
}

// List returns the stored snapshots, oldest first.
func (s *Service) List(ctx context.Context) ([]Info, error) {
	var out []Info
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: Prefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list snapshots: %w", obj.Err)
		}
		name := strings.TrimPrefix(obj.Key, Prefix)
		if name == "" || !strings.HasSuffix(name, ".json") {
			continue
		}
		out = append(out, Info{Name: name, Size: obj.Size, LastModified: obj.LastModified.UTC()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Fetch downloads and decodes a snapshot.
func (s *Service) Fetch(ctx context.Context, name string) (*Document, error) {
	if err := validName(name); err != nil {
		return nil, err
	}

	obj, err := s.client.GetObject(ctx, s.bucket, Prefix+name, minio.GetObjectOptions{})
	if err != nil {
		return nil, objectError(name, err)
	}
	defer obj.Close()

	var doc Document
	if err := json.NewDecoder(obj).Decode(&doc); err != nil {
		return nil, objectError(name, err)
	}
	return &doc, nil
}

// Delete removes a snapshot.
func (s *Service) Delete(ctx context.Context, name string) error {
	if err := validName(name); err != nil {
		return err
	}
	if err := s.client.RemoveObject(ctx, s.bucket, Prefix+name, minio.RemoveObjectOptions{}); err != nil {
		return objectError(name, err)
	}
	s.logger.Info("Snapshot deleted", zap.String("name", name))
	return nil
}

// Prune removes every snapshot except the keep newest and returns the removed names.
func (s *Service) Prune(ctx context.Context, keep int) ([]string, error) {
	if keep < 0 {
		keep = 0
	}
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(all) <= keep {
		return nil, nil
	}
	stale := all[:len(all)-keep]

	objectsCh := make(chan minio.ObjectInfo, len(stale))
	for _, info := range stale {
		objectsCh <- minio.ObjectInfo{Key: Prefix + info.Name}
	}
	close(objectsCh)

	failed := make(map[string]bool)
	var errs []error
	for rerr := range s.client.RemoveObjects(ctx, s.bucket, objectsCh, minio.RemoveObjectsOptions{}) {
		failed[strings.TrimPrefix(rerr.ObjectName, Prefix)] = true
		errs = append(errs, fmt.Errorf("%s: %w", rerr.ObjectName, rerr.Err))
	}

	var removed []string
	for _, info := range stale {
		if !failed[info.Name] {
			removed = append(removed, info.Name)
		}
	}
	s.logger.Info("Snapshots pruned", zap.Int("removed", len(removed)), zap.Int("failed", len(errs)))

	if len(errs) > 0 {
		return removed, fmt.Errorf("failed to prune snapshots: %w", errors.Join(errs...))
	}
	return removed, nil
}

func validName(name string) error {
	if name == "" || strings.ContainsAny(name, "/\\") || !strings.HasSuffix(name, ".json") {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

func objectError(name string, err error) error {
	if minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return fmt.Errorf("snapshot %s: %w", name, err)
}
