// Package integrity provides system health checks.
//
// # Checks Provided
//
//   - Server: Validates that the connected database holds every table and column the
//     state models expect (monuments, monument_state, server_state).
//   - Storage: Verifies that the snapshot bucket exists and counts stored snapshots
//     (only when storage is enabled). Missing buckets can be created with ?fix=true.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/server : Runs server schema check.
//   - GET /integrity/storage : Runs storage check (supports ?fix=true).
package integrity
