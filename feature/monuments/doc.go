// Package monuments serves the monument board: the last swipe of every monument,
// annotated against the current reset epoch.
//
// A monument is "swiped since reset" when its last swipe is strictly newer than the
// stored reset epoch. Monuments that were seen but never swiped have no timestamp.
//
// # HTTP Endpoints
//
//   - GET /monuments : Every monument ordered by name, plus the reset epoch.
//   - GET /monuments/:name : A single monument (404 when unknown).
package monuments
