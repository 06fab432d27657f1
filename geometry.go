package sweepline

import "math"

// CCW returns the signed twice-area of triangle (a, b, c):
//
//	(b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
//
// Positive for counter-clockwise, negative for clockwise, zero for
// collinear points.
func CCW(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// Intersect decides whether two segments properly cross and, if so, returns
// the crossing point. It implements the four-step test at the heart of the
// sweep: two same-side-of-the-line checks via CCW, a collinearity check
// that is fatal for this package's scope (collinear/overlapping segments
// are excluded, per the Non-goals), and a ratio-parameterized computation
// of the crossing point.
//
// Boundary touches, where one CCW value is exactly zero but the other
// isn't, count as intersections.
func Intersect(s1, s2 Segment) (Point, bool, error) {
	p1, q1 := s1.Begin(), s1.End()
	p2, q2 := s2.Begin(), s2.End()

	d1 := CCW(p1, q1, p2)
	d2 := CCW(p1, q1, q2)
	if d1*d2 > 0 {
		return Point{}, false, nil
	}

	d3 := CCW(p2, q2, p1)
	d4 := CCW(p2, q2, q1)
	if d3*d4 > 0 {
		return Point{}, false, nil
	}

	if d1 == 0 && d2 == 0 && d3 == 0 && d4 == 0 {
		return Point{}, false, &InvariantViolatedError{
			Segments: []Segment{s1, s2},
			Reason:   "segments are collinear and overlapping",
		}
	}

	// d1 == 0 means p2 itself lies on the line through s1 — a T-junction at
	// p2 — and d2 == 0 means the same for q2. Forming the ratio r = |d2/d1|
	// directly would divide by zero in the first case (giving NaN, not a
	// limit), so both touch points are returned directly instead.
	if d1 == 0 {
		return p2, true, nil
	}
	if d2 == 0 {
		return q2, true, nil
	}

	// Ratio parameterization: segment 2's endpoints straddle the line of
	// segment 1 with signed areas d1 and d2, so the crossing splits p2-q2
	// in proportion to their relative magnitude.
	r := math.Abs(d2 / d1)
	a := r / (r + 1)
	ix := q2.X + a*(p2.X-q2.X)
	iy := q2.Y + a*(p2.Y-q2.Y)

	return Point{X: ix, Y: iy}, true, nil
}
