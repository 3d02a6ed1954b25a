package state

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrUnavailable marks a read or write the database could not complete.
	ErrUnavailable = errors.New("state store unavailable")
	// ErrNotFound is returned for lookups of monuments never seen.
	ErrNotFound = errors.New("monument not found")
	// ErrNotSeeded is returned when the reset epoch row is missing. Migrate or
	// SetLastReset recreate it.
	ErrNotSeeded = errors.New("reset epoch not seeded")
)

// Mutation decides the next state of a monument from its committed state.
// Returning false leaves the row untouched.
type Mutation func(current MonumentState) (next MonumentState, write bool)

// Store is the access contract for persisted swipe and reset state.
type Store interface {
	// UpdateMonument resolves or creates the monument and applies m atomically.
	// It returns the state after the call and whether m chose to write.
	UpdateMonument(ctx context.Context, name string, m Mutation) (MonumentState, bool, error)
	// GetMonument returns one monument or ErrNotFound.
	GetMonument(ctx context.Context, name string) (MonumentState, error)
	// ListMonuments returns every monument ordered by name.
	ListMonuments(ctx context.Context) ([]MonumentState, error)
	// GetLastReset returns the current reset epoch, or ErrNotSeeded.
	GetLastReset(ctx context.Context) (time.Time, error)
	// SetLastReset overwrites the reset epoch, creating it if missing.
	SetLastReset(ctx context.Context, at time.Time) error
}
