package snapshot

import (
	"time"

	"card-timers/core/state"
)

// Document is the JSON body of a snapshot object.
type Document struct {
	TakenAtUTC   time.Time             `json:"taken_at_utc"`
	LastResetUTC time.Time             `json:"last_reset_utc"`
	Monuments    []state.MonumentState `json:"monuments"`
}

// Info describes a stored snapshot object.
type Info struct {
	Name         string    `json:"name"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
}
