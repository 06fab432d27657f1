package sweepline

// BruteForceIntersections computes the same result as ComputeIntersections
// by an O(n²) pairwise check: every pair of segments is tested
// independently, with no sweep state at all. It exists to validate the
// sweep against a reference with an obviously-correct (if slow) algorithm,
// and is exported for use by this package's own test suite; production
// callers should use ComputeIntersections.
func BruteForceIntersections(segments []Segment) ([]Point, error) {
	results := newResultSet()

	for i := range segments {
		for j := i + 1; j < len(segments); j++ {
			point, ok, err := Intersect(segments[i], segments[j])
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
			results.Add(point)
		}
	}

	return results.Points(), nil
}
