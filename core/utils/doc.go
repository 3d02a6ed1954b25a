// Package utils provides common helpers for the card-timers application that don't
// belong to a single domain package.
//
// Timestamps are persisted as ISO-8601 text in UTC. FormatUTC and ParseUTC are the only
// way instants cross the storage boundary, so everything read back is tagged as UTC.
package utils
