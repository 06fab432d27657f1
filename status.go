package sweepline

import (
	rbt "github.com/emirpasic/gods/trees/redblacktree"
)

// statusComparator provides the dynamic comparison logic for the status
// structure's Red-Black Tree: segments are ordered by their y-coordinate
// at the sweep line's current x-position, held in currentX and updated by
// Status.SetX before any operation at a new event.
//
// Between two consecutive events no two active segments change relative
// order (any such change is, by construction, an Intersection event that
// the driver handles explicitly via Swap), so mutating currentX alone
// keeps the tree's existing shape valid without a rebuild — adaptive
// re-sort behavior falls out of the invariant for free, rather than
// needing a separate merge-insertion sort pass.
type statusComparator struct {
	currentX float64
}

// Compare implements github.com/emirpasic/gods' Comparator. Ties (the same
// y at the current x) only arise transiently, at the instant of a
// confirmed crossing; Status.Swap resolves them by re-keying past the
// crossing before either segment is reinserted, so segment identity is a
// safe, always-terminating final tie-breaker here.
func (c *statusComparator) Compare(a, b interface{}) int {
	segA := a.(*Segment)
	segB := b.(*Segment)

	yA := segA.YAt(c.currentX)
	yB := segB.YAt(c.currentX)
	if yA < yB {
		return -1
	}
	if yA > yB {
		return 1
	}

	if segA.ID() < segB.ID() {
		return -1
	}
	if segA.ID() > segB.ID() {
		return 1
	}
	return 0
}

// Status is the sweep-line status structure: the ordered collection of
// segments currently intersecting the sweep line, backed by a Red-Black
// Tree for O(log n) insert, remove, and neighbor lookup.
type Status struct {
	tree       *rbt.Tree
	comparator *statusComparator
}

// NewStatus creates an empty status structure.
func NewStatus() *Status {
	comp := &statusComparator{}
	return &Status{
		tree:       rbt.NewWith(comp.Compare),
		comparator: comp,
	}
}

// SetX moves the sweep line to x, re-keying every future comparison by
// y-at-x. It must be called before any Insert/Remove/Neighbors/Swap at a
// new event point.
func (s *Status) SetX(x float64) { s.comparator.currentX = x }

// Insert adds seg to the status at the sweep line's current x.
func (s *Status) Insert(seg *Segment) { s.tree.Put(seg, true) }

// Remove deletes seg from the status.
func (s *Status) Remove(seg *Segment) { s.tree.Remove(seg) }

// Len reports the number of active segments.
func (s *Status) Len() int { return s.tree.Size() }

func findSuccessor(node *rbt.Node) *rbt.Node {
	if node.Right != nil {
		curr := node.Right
		for curr.Left != nil {
			curr = curr.Left
		}
		return curr
	}
	p := node.Parent
	curr := node
	for p != nil && curr == p.Right {
		curr = p
		p = p.Parent
	}
	return p
}

func findPredecessor(node *rbt.Node) *rbt.Node {
	if node.Left != nil {
		curr := node.Left
		for curr.Right != nil {
			curr = curr.Right
		}
		return curr
	}
	p := node.Parent
	curr := node
	for p != nil && curr == p.Left {
		curr = p
		p = p.Parent
	}
	return p
}

// Neighbors returns the segments immediately above and below seg in the
// status, or nil at either boundary.
func (s *Status) Neighbors(seg *Segment) (above, below *Segment) {
	node := s.tree.GetNode(seg)
	if node == nil {
		return nil, nil
	}
	if predNode := findPredecessor(node); predNode != nil {
		below = predNode.Key.(*Segment)
	}
	if succNode := findSuccessor(node); succNode != nil {
		above = succNode.Key.(*Segment)
	}
	return above, below
}

// Swap exchanges the ordering positions of two segments known to have
// crossed at crossingX. It removes both from the status, advances the
// comparator's x past the crossing by epsilon so the two
// segments settle back in under their post-crossing order, reinserts them,
// and returns the segment now on top (bigger), the one now on the bottom
// (smaller), bigger's new above-neighbor, and smaller's new below-neighbor.
func (s *Status) Swap(a, b *Segment, crossingX, epsilon float64) (bigger, smaller, biggerAbove, smallerBelow *Segment) {
	s.Remove(a)
	s.Remove(b)

	s.SetX(crossingX + epsilon)

	s.Insert(a)
	s.Insert(b)

	bigger, smaller = a, b
	if a.YAt(s.comparator.currentX) < b.YAt(s.comparator.currentX) {
		bigger, smaller = b, a
	}

	biggerAbove, _ = s.Neighbors(bigger)
	_, smallerBelow = s.Neighbors(smaller)

	return bigger, smaller, biggerAbove, smallerBelow
}
