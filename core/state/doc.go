// Package state is the durable record of monument swipes and the global reset epoch.
//
// # Data Model
//
//   - monuments: one row per distinct, case-sensitive monument name. Rows are created on
//     first sight and never deleted.
//   - monument_state: last swipe instant, player and source message id of a monument.
//     The three columns are always written together.
//   - server_state: a single row holding the last reset instant, seeded with the
//     1970-01-01T00:00:00Z sentinel.
//
// All instants are stored as ISO-8601 UTC text and read back tagged as UTC.
//
// # Store Contract
//
// Store is the only way other packages touch persisted state. UpdateMonument runs a
// read-modify-write of one monument inside a single transaction: the caller's Mutation
// sees the committed state and decides whether to write. Reset epoch reads and writes
// are single statements.
//
// Every failed round trip to the database is wrapped with ErrUnavailable.
//
// # Usage
//
//	store := state.NewGormStore(db)
//	if err := store.Migrate(ctx); err != nil {
//	    return err
//	}
//	_, written, err := store.UpdateMonument(ctx, "Sewer Branch", func(cur state.MonumentState) (state.MonumentState, bool) {
//	    ...
//	})
package state
