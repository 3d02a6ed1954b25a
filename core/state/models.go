package state

import (
	"time"

	"card-timers/core/utils"
)

// Monument is the 'monuments' table.
type Monument struct {
	ID   uint   `gorm:"column:id;primaryKey;autoIncrement"`
	Name string `gorm:"column:name;type:varchar(191);not null;uniqueIndex"`
}

// TableName overrides the table name.
func (Monument) TableName() string {
	return "monuments"
}

// MonumentRecord is the 'monument_state' table.
type MonumentRecord struct {
	MonumentID    uint    `gorm:"column:monument_id;primaryKey;autoIncrement:false"`
	LastSwipeUTC  *string `gorm:"column:last_swipe_utc;type:varchar(40)"`
	LastPlayer    *string `gorm:"column:last_player;type:varchar(191)"`
	LastMessageID *string `gorm:"column:last_message_id;type:varchar(64)"`
}

// TableName overrides the table name.
func (MonumentRecord) TableName() string {
	return "monument_state"
}

// ServerState is the singleton 'server_state' table.
type ServerState struct {
	ID           int    `gorm:"column:id;primaryKey;autoIncrement:false"`
	LastResetUTC string `gorm:"column:last_reset_utc;type:varchar(40);not null"`
}

// TableName overrides the table name.
func (ServerState) TableName() string {
	return "server_state"
}

// MonumentState is the last known swipe of a monument.
// LastSwipeAt, LastPlayer and LastEventID are empty until the first swipe.
type MonumentState struct {
	Name        string     `json:"name"`
	LastSwipeAt *time.Time `json:"last_swipe_utc"`
	LastPlayer  string     `json:"last_player,omitempty"`
	LastEventID string     `json:"last_event_id,omitempty"`
}

// Swiped reports whether the monument has ever been swiped.
func (m MonumentState) Swiped() bool {
	return m.LastSwipeAt != nil
}

// stateRow is the LEFT JOIN projection used for reads.
type stateRow struct {
	Name          string  `gorm:"column:name"`
	LastSwipeUTC  *string `gorm:"column:last_swipe_utc"`
	LastPlayer    *string `gorm:"column:last_player"`
	LastMessageID *string `gorm:"column:last_message_id"`
}

func (r stateRow) toState() (MonumentState, error) {
	at, err := utils.ParseUTCPtr(r.LastSwipeUTC)
	if err != nil {
		return MonumentState{}, err
	}
	return MonumentState{
		Name:        r.Name,
		LastSwipeAt: at,
		LastPlayer:  deref(r.LastPlayer),
		LastEventID: deref(r.LastMessageID),
	}, nil
}

func recordFor(monumentID uint, s MonumentState) MonumentRecord {
	rec := MonumentRecord{MonumentID: monumentID}
	if s.LastSwipeAt != nil {
		ts := utils.FormatUTC(*s.LastSwipeAt)
		rec.LastSwipeUTC = &ts
	}
	rec.LastPlayer = ptr(s.LastPlayer)
	rec.LastMessageID = ptr(s.LastEventID)
	return rec
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func ptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
