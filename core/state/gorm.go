package state

import (
	"context"
	"errors"
	"fmt"
	"time"

	"card-timers/core/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const serverStateID = 1

// GormStore implements Store on top of GORM.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a store over an open connection.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Migrate creates the tables and seeds the reset epoch sentinel if it is missing.
func (s *GormStore) Migrate(ctx context.Context) error {
	db := s.db.WithContext(ctx)
	if err := db.AutoMigrate(&Monument{}, &MonumentRecord{}, &ServerState{}); err != nil {
		return unavailable("migrate schema", err)
	}

	// MySQL compares strings case-insensitively by default; monument identity is exact.
	if db.Dialector.Name() == "mysql" {
		if err := db.Exec("ALTER TABLE monuments MODIFY name VARCHAR(191) CHARACTER SET utf8mb4 COLLATE utf8mb4_bin NOT NULL").Error; err != nil {
			return unavailable("set monument name collation", err)
		}
	}

	seed := ServerState{ID: serverStateID, LastResetUTC: utils.EpochSentinel}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&seed).Error; err != nil {
		return unavailable("seed server state", err)
	}
	return nil
}

// UpdateMonument implements Store.
func (s *GormStore) UpdateMonument(ctx context.Context, name string, m Mutation) (MonumentState, bool, error) {
	var (
		result  MonumentState
		written bool
	)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		mon := Monument{Name: name}
		if err := tx.Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).Create(&mon).Error; err != nil {
			return unavailable("ensure monument", err)
		}
		if err := tx.Where("name = ?", name).Take(&mon).Error; err != nil {
			return unavailable("resolve monument", err)
		}

		var rec MonumentRecord
		err := tx.Where("monument_id = ?", mon.ID).Take(&rec).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return unavailable("read monument state", err)
		}

		current, err := stateRow{
			Name:          name,
			LastSwipeUTC:  rec.LastSwipeUTC,
			LastPlayer:    rec.LastPlayer,
			LastMessageID: rec.LastMessageID,
		}.toState()
		if err != nil {
			return err
		}

		next, write := m(current)
		if !write {
			result = current
			return nil
		}
		next.Name = name

		row := recordFor(mon.ID, next)
		upsert := clause.OnConflict{
			Columns:   []clause.Column{{Name: "monument_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"last_swipe_utc", "last_player", "last_message_id"}),
		}
		if err := tx.Clauses(upsert).Create(&row).Error; err != nil {
			return unavailable("write monument state", err)
		}

		result, written = next, true
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrUnavailable) && !isDecodeError(err) {
			err = unavailable("update monument", err)
		}
		return MonumentState{}, false, err
	}
	return result, written, nil
}

// GetMonument implements Store.
func (s *GormStore) GetMonument(ctx context.Context, name string) (MonumentState, error) {
	var rows []stateRow
	if err := s.stateQuery(ctx).Where("m.name = ?", name).Limit(1).Scan(&rows).Error; err != nil {
		return MonumentState{}, unavailable("get monument", err)
	}
	if len(rows) == 0 {
		return MonumentState{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return rows[0].toState()
}

// ListMonuments implements Store.
func (s *GormStore) ListMonuments(ctx context.Context) ([]MonumentState, error) {
	var rows []stateRow
	if err := s.stateQuery(ctx).Order("m.name ASC").Scan(&rows).Error; err != nil {
		return nil, unavailable("list monuments", err)
	}

	out := make([]MonumentState, 0, len(rows))
	for _, r := range rows {
		st, err := r.toState()
		if err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, nil
}

// GetLastReset implements Store.
func (s *GormStore) GetLastReset(ctx context.Context) (time.Time, error) {
	var row ServerState
	err := s.db.WithContext(ctx).Where("id = ?", serverStateID).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return time.Time{}, fmt.Errorf("get last reset: %w", ErrNotSeeded)
	}
	if err != nil {
		return time.Time{}, unavailable("get last reset", err)
	}
	return utils.ParseUTC(row.LastResetUTC)
}

// SetLastReset implements Store.
func (s *GormStore) SetLastReset(ctx context.Context, at time.Time) error {
	row := ServerState{ID: serverStateID, LastResetUTC: utils.FormatUTC(at)}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"last_reset_utc"}),
		}).
		Create(&row).Error
	if err != nil {
		return unavailable("set last reset", err)
	}
	return nil
}

func (s *GormStore) stateQuery(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Table("monuments AS m").
		Select("m.name AS name, s.last_swipe_utc AS last_swipe_utc, s.last_player AS last_player, s.last_message_id AS last_message_id").
		Joins("LEFT JOIN monument_state AS s ON s.monument_id = m.id")
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrUnavailable, err)
}

func isDecodeError(err error) bool {
	var pe *time.ParseError
	return errors.As(err, &pe)
}
