package sweepline

import (
	rbt "github.com/emirpasic/gods/trees/redblacktree"
)

// resultSet is the sweep's accumulator of intersection points: an ordered,
// deduplicated set, since a single point can be reported by more than one
// crossing pair (several segments meeting at one point) and the external
// contract guarantees each distinct point is returned exactly once.
type resultSet struct {
	tree *rbt.Tree
}

func newResultSet() *resultSet {
	return &resultSet{
		tree: rbt.NewWith(func(a, b interface{}) int {
			return pointCompare(a.(Point), b.(Point))
		}),
	}
}

// Add records p in the set. Re-adding a point already present is a no-op.
func (r *resultSet) Add(p Point) { r.tree.Put(p, true) }

// Len reports the number of distinct points recorded.
func (r *resultSet) Len() int { return r.tree.Size() }

// Points returns every recorded point in ascending lexicographic order.
func (r *resultSet) Points() []Point {
	keys := r.tree.Keys()
	out := make([]Point, len(keys))
	for i, k := range keys {
		out[i] = k.(Point)
	}
	return out
}
