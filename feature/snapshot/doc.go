// Package snapshot exports the monument board to object storage as JSON documents.
//
// Objects are written under snapshots/ and named after the UTC instant they were taken
// plus a random suffix, so that a lexical listing is also a chronological one.
//
// # HTTP Endpoints
//
//   - POST /snapshots : Takes a snapshot.
//   - GET /snapshots : Lists stored snapshots, oldest first.
//   - GET /snapshots/:name : Returns a stored snapshot document.
//   - DELETE /snapshots/:name : Removes a snapshot.
//   - POST /snapshots/prune?keep=N : Removes all but the N newest snapshots.
package snapshot
