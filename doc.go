// Package sweepline computes the complete set of pairwise intersection
// points among a finite collection of planar line segments using the
// Bentley-Ottmann sweep-line algorithm, in O((n+k) log n) time for n
// segments and k reported intersections.
//
// The entry point is ComputeIntersections. Segments are constructed with
// NewSegment, which enforces the invariants the sweep depends on: no
// vertical segments, no zero-length segments, no non-finite coordinates.
// Collinear, overlapping segment pairs are accepted at construction but
// rejected as a fatal *InvariantViolatedError the moment the sweep
// discovers them.
package sweepline
