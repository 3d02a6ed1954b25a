package monuments

import "time"

// MonumentView is one row of the board.
type MonumentView struct {
	Name             string     `json:"name"`
	LastSwipeUTC     *time.Time `json:"last_swipe_utc"`
	LastPlayer       string     `json:"last_player,omitempty"`
	SwipedSinceReset bool       `json:"swiped_since_reset"`
}

// Board is the full monument listing.
type Board struct {
	LastResetUTC time.Time      `json:"last_reset_utc"`
	Monuments    []MonumentView `json:"monuments"`
}
