// Package reconcile commits swipe events to the state store.
//
// # Policy
//
// Record applies two rules, in order, inside one atomic store update per monument:
//
//  1. Dedup: if the monument's stored source event id equals the incoming one, the
//     event is a redelivery and the result is SkippedDuplicate.
//  2. Last write wins by arrival: otherwise the stored instant, player and event id are
//     overwritten together, even when the incoming instant is older than the stored one.
//     The feed is assumed to deliver in chronological order; reordering is a known
//     limitation rather than something corrected here.
//
// # Concurrency
//
// Updates are serialized per monument name with a keyed lock, so two events for the same
// monument never interleave, while events for different monuments proceed in parallel.
// The lock is held only for the duration of one store transaction.
//
// # Side Effects
//
// Applied events increment the swipe metrics and are published through the configured
// events.Publisher. Publish failures are logged and do not change the outcome.
//
// # Usage
//
//	engine := reconcile.NewEngine(store, publisher, logger)
//	outcome, err := engine.Record(ctx, "Sewer Branch", sentAt, "Alice", "m1")
package reconcile
