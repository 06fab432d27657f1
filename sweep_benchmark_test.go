package sweepline_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/dkrylov/sweepline"
)

// benchRandomSegments generates n segments with random, non-vertical
// endpoints. A fixed seed keeps benchmark runs comparable across builds.
func benchRandomSegments(n int, maxCoord float64) []sweepline.Segment {
	rng := rand.New(rand.NewSource(42))
	out := make([]sweepline.Segment, 0, n)
	for len(out) < n {
		a := sweepline.NewPoint(rng.Float64()*maxCoord, rng.Float64()*maxCoord)
		b := sweepline.NewPoint(rng.Float64()*maxCoord, rng.Float64()*maxCoord)
		s, err := sweepline.NewSegment(a, b)
		if err != nil {
			continue
		}
		out = append(out, s)
	}
	return out
}

// benchGridSegments builds n horizontal lines and n steep, near-vertical
// lines (a tiny x-delta stands in for a true vertical, which the invariants
// forbid) so the crossing count stays at the grid's dense n², exercising
// the k-dominant term of the sweep's O((n+k) log n) bound.
func benchGridSegments(n int, maxCoord float64) []sweepline.Segment {
	segments := make([]sweepline.Segment, 0, 2*n)
	step := maxCoord / float64(n+1)

	for i := 0; i < n; i++ {
		y := step * float64(i+1)
		s, err := sweepline.NewSegment(sweepline.NewPoint(0, y), sweepline.NewPoint(maxCoord, y))
		if err != nil {
			panic(err)
		}
		segments = append(segments, s)
	}

	for i := 0; i < n; i++ {
		x := step * float64(i+1)
		s, err := sweepline.NewSegment(sweepline.NewPoint(x, 0), sweepline.NewPoint(x+1e-6, maxCoord))
		if err != nil {
			panic(err)
		}
		segments = append(segments, s)
	}
	return segments
}

func BenchmarkComputeIntersectionsRandom(b *testing.B) {
	for _, n := range []int{10, 100, 1000, 10000} {
		segments := benchRandomSegments(n, 1000.0)
		b.Run(fmt.Sprintf("N=%d", n), func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := sweepline.ComputeIntersections(segments); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkComputeIntersectionsGrid(b *testing.B) {
	for _, size := range []int{10, 50, 100, 200} {
		segments := benchGridSegments(size, 1000.0)
		numSegments := 2 * size
		numIntersections := size * size
		b.Run(fmt.Sprintf("Grid=%dx%d_Segments=%d_Intersections=%d", size, size, numSegments, numIntersections), func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := sweepline.ComputeIntersections(segments); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
