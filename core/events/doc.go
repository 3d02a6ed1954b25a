// Package events publishes state changes to a NATS subject tree.
//
// Applied swipes go to "<subject>.swipe" and reset firings to "<subject>.reset", both as
// JSON. Publishing is fire-and-forget from the caller's point of view: the state store
// is the source of truth, and a failed publish never rolls back a commit.
//
// When no NATS URL is configured, NewPublisher returns a Nop publisher.
package events
