// Package reset owns the reset epoch: it runs the reset scheduler in the background and
// reports the last and next reset instants.
//
// # HTTP Endpoints
//
//   - GET /reset : Last reset epoch and the next scheduled reset (?count=N lists more).
package reset
