package sweepline

import "github.com/google/btree"

// eventKind tags a qItem as Begin, End, or Intersection. The point alone
// decides where an event sits in the sweep; the kind only breaks ties among
// same-point events (Begin, then End, then Intersection) so the queue
// remains a strict order.
type eventKind uint8

const (
	kindBegin eventKind = iota
	kindEnd
	kindIntersection
)

// qItem is a single entry in the event queue: one Begin, one End, or one
// Intersection event. Unlike the CG-book formulation some libraries in
// this lineage use (bundling every event at a point into one record), this
// queue keeps Begin/End/Intersection events as individual entries, mirroring
// the sweep driver's own dispatch directly: each dispatch handles exactly
// one segment (Begin/End) or one segment pair (Intersection).
type qItem struct {
	point Point
	kind  eventKind
	a, b  *Segment // b is nil except for kindIntersection
}

// qItemLess orders queue items by event point, then, for events that
// land on the exact same point, by kind and by segment identity, so that
// the backing tree has a strict total order. Two kindIntersection items
// compare equal only when they share both the point and the (unordered,
// ID-normalized) segment pair — the stricter of the two dedup policies
// chosen to minimize redundant work.
func qItemLess(x, y qItem) bool {
	if !x.point.Eq(y.point) {
		return x.point.Less(y.point)
	}
	if x.kind != y.kind {
		return x.kind < y.kind
	}
	if x.a.ID() != y.a.ID() {
		return x.a.ID() < y.a.ID()
	}
	if x.kind != kindIntersection {
		return false
	}
	return x.b.ID() < y.b.ID()
}

// EventQueue is the sweep's ordered set of pending events: a min-priority
// queue with pop-minimum, membership test, and idempotent insertion,
// backed by a B-tree so all three operations are O(log n).
type EventQueue struct {
	tree *btree.BTreeG[qItem]
}

// NewEventQueue builds the initial event queue from a sweep's segments: one
// Begin and one End event per segment.
func NewEventQueue(segments []*Segment) *EventQueue {
	q := &EventQueue{tree: btree.NewG(32, qItemLess)}
	for _, seg := range segments {
		q.tree.ReplaceOrInsert(qItem{point: seg.Begin(), kind: kindBegin, a: seg})
		q.tree.ReplaceOrInsert(qItem{point: seg.End(), kind: kindEnd, a: seg})
	}
	return q
}

// Len reports the number of pending events.
func (q *EventQueue) Len() int { return q.tree.Len() }

// PopMin removes and returns the least event in the queue's point order.
// It reports false if the queue is empty.
func (q *EventQueue) PopMin() (qItem, bool) {
	return q.tree.DeleteMin()
}

// AddIntersection inserts an Intersection event for the crossing of lower
// and upper at point, subject to two conditions:
//
//   - the point must not lie strictly behind the sweep (point.X >= sweepX,
//     ties allowed since coincident events order by Y next), so that a
//     crossing left of the sweep is never re-queued after a swap (a
//     crossing at the sweep's own point is left out by the driver), and
//   - the queue must not already contain an equivalent event, so that the
//     two neighbor-checks that can discover the same future crossing from
//     either side never schedule it twice.
//
// It reports whether the event was inserted.
func (q *EventQueue) AddIntersection(point Point, lower, upper *Segment, sweepX float64) bool {
	if point.X < sweepX {
		return false
	}

	a, b := lower, upper
	if b.ID() < a.ID() {
		a, b = b, a
	}

	candidate := qItem{point: point, kind: kindIntersection, a: a, b: b}
	if q.tree.Has(candidate) {
		return false
	}

	q.tree.ReplaceOrInsert(candidate)
	return true
}
