package fileio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/dkrylov/sweepline"
)

// WriteResults writes one intersection per line to w, "x y", in the order
// points are given — callers pass the lexicographically ordered slice
// ComputeIntersections returns, so file order matches the result set's
// total order without any sorting here.
func WriteResults(w io.Writer, points []sweepline.Point) error {
	bw := bufio.NewWriter(w)
	for _, p := range points {
		if _, err := fmt.Fprintf(bw, "%g %g\n", p.X, p.Y); err != nil {
			return err
		}
	}
	return bw.Flush()
}
