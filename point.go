package sweepline

import "fmt"

// Point is a location in the plane with finite-precision real coordinates.
// Points are immutable; every operation that would change a Point's
// coordinates returns a new value instead.
type Point struct {
	X, Y float64
}

// NewPoint creates a Point from its coordinates.
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Less reports whether p sorts strictly before q under the total order
// used throughout this package: lexicographic on (X, Y), smaller X first,
// ties broken by smaller Y.
func (p Point) Less(q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

// Eq reports whether p and q have bit-identical coordinates. Point equality
// is intentionally exact, not epsilon-tolerant: the sweep's correctness
// relies on the event queue treating two computed events as the same event
// only when their coordinates match exactly.
func (p Point) Eq(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// String renders p as "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// pointLess is a comparator of the shape used by the ordered trees backing
// the event queue and the result set.
func pointLess(a, b Point) bool {
	return a.Less(b)
}

// pointCompare returns -1, 0, or 1, for use with comparator-style tree APIs.
func pointCompare(a, b Point) int {
	if a.Eq(b) {
		return 0
	}
	if a.Less(b) {
		return -1
	}
	return 1
}
