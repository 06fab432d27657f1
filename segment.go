package sweepline

import (
	"math"
	"sync/atomic"
)

// segmentSeq assigns each Segment an identity distinct from its geometric
// value, so that two segments sharing endpoints (which valid input never
// produces, per the Non-goals) would still compare unequal as entries in
// the event queue and status structure.
var segmentSeq uint64

// Segment is an unordered pair of endpoints {p, q} with p strictly
// lexicographically less than q, as established by NewSegment. The lower
// endpoint is Begin, the upper is End. Segments are immutable after
// construction.
type Segment struct {
	begin, end Point
	id         uint64
}

// NewSegment constructs a Segment from two endpoints in either order,
// normalizing so Begin() is the lexicographically smaller point.
//
// It returns an *InvariantViolatedError, never panics, when the input
// violates the invariants this package relies on: coincident endpoints
// (zero-length segment), a vertical segment (equal X), or non-finite
// coordinates.
func NewSegment(a, b Point) (Segment, error) {
	for _, p := range [2]Point{a, b} {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return Segment{}, &InvariantViolatedError{
				Segments: []Segment{{begin: a, end: b}},
				Reason:   "segment endpoint has non-finite coordinates",
			}
		}
	}

	if a.Eq(b) {
		return Segment{}, &InvariantViolatedError{
			Segments: []Segment{{begin: a, end: b}},
			Reason:   "zero-length segment: endpoints are identical",
		}
	}

	p, q := a, b
	if !p.Less(q) {
		p, q = q, p
	}

	if p.X == q.X {
		return Segment{}, &InvariantViolatedError{
			Segments: []Segment{{begin: p, end: q}},
			Reason:   "vertical segment: endpoints share an X coordinate",
		}
	}

	return Segment{
		begin: p,
		end:   q,
		id:    atomic.AddUint64(&segmentSeq, 1),
	}, nil
}

// Begin returns the segment's lower endpoint (smaller in the point order).
func (s Segment) Begin() Point { return s.begin }

// End returns the segment's upper endpoint (greater in the point order).
func (s Segment) End() Point { return s.end }

// ID returns the segment's identity, stable for its lifetime and distinct
// from any other Segment's identity regardless of geometric value.
func (s Segment) ID() uint64 { return s.id }

// YAt returns the y-coordinate of the infinite line through the segment's
// endpoints at abscissa x, via linear interpolation. It is always defined
// because NewSegment rejects vertical segments.
func (s Segment) YAt(x float64) float64 {
	t := (x - s.begin.X) / (s.end.X - s.begin.X)
	return s.begin.Y + t*(s.end.Y-s.begin.Y)
}

// ContainsX reports whether x lies within the segment's horizontal span,
// inclusive of both endpoints.
func (s Segment) ContainsX(x float64) bool {
	return x >= s.begin.X && x <= s.end.X
}

// Eq reports whether two segments have the same geometric value. It does
// not compare identity: two Segment values built from the same endpoints
// via separate NewSegment calls are Eq but have distinct IDs.
func (s Segment) Eq(o Segment) bool {
	return s.begin.Eq(o.begin) && s.end.Eq(o.end)
}

func (s Segment) String() string {
	return s.begin.String() + "-" + s.end.String()
}
