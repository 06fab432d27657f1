package sweepline

// ComputeIntersections runs the Bentley-Ottmann sweep over segments and
// returns the distinct points at which any two of them cross, in
// lexicographic order. It fails fatally, returning an
// *InvariantViolatedError, the moment the sweep discovers a collinear,
// overlapping pair of segments — the one input-validity condition that
// cannot be caught ahead of time by per-segment checks alone.
func ComputeIntersections(segments []Segment, opts ...Option) ([]Point, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	handles := make([]*Segment, len(segments))
	for i := range segments {
		handles[i] = &segments[i]
	}

	queue := NewEventQueue(handles)
	status := NewStatus()
	results := newResultSet()

	sweepX := 0.0

	for {
		event, ok := queue.PopMin()
		if !ok {
			break
		}

		sweepX = event.point.X
		status.SetX(sweepX)
		traceEvent("event kind=%d point=%s", event.kind, event.point)

		switch event.kind {
		case kindBegin:
			if err := handleBegin(event, queue, status, sweepX); err != nil {
				return nil, err
			}
		case kindEnd:
			if err := handleEnd(event, queue, status, sweepX); err != nil {
				return nil, err
			}
		case kindIntersection:
			if err := handleIntersection(event, queue, status, results, sweepX, cfg.swapEpsilon); err != nil {
				return nil, err
			}
		}
	}

	return results.Points(), nil
}

// handleBegin handles a Begin(p, L) event: insert L,
// then probe each of its new neighbors for a future crossing.
func handleBegin(event qItem, queue *EventQueue, status *Status, sweepX float64) error {
	seg := event.a
	status.Insert(seg)

	above, below := status.Neighbors(seg)
	if err := probePair(seg, above, queue, sweepX); err != nil {
		return err
	}
	if err := probePair(seg, below, queue, sweepX); err != nil {
		return err
	}
	return nil
}

// handleEnd handles an End(p, L) event: L's current
// neighbors are about to become adjacent to each other, so probe them for a
// crossing before removing L.
func handleEnd(event qItem, queue *EventQueue, status *Status, sweepX float64) error {
	seg := event.a
	above, below := status.Neighbors(seg)

	if above != nil && below != nil {
		if err := probePair(below, above, queue, sweepX); err != nil {
			return err
		}
	}

	status.Remove(seg)
	return nil
}

// handleIntersection handles an Intersection(I, L1, L2)
// transition: record I, swap the two segments' relative order in the
// status, and probe the newly-adjacent pairs on either side of the swap.
// A newly-adjacent pair crossing at I itself is not queued: I is already
// recorded, and re-queuing it would replay swaps that are already done.
func handleIntersection(event qItem, queue *EventQueue, status *Status, results *resultSet, sweepX, epsilon float64) error {
	results.Add(event.point)

	bigger, smaller, biggerAbove, smallerBelow := status.Swap(event.a, event.b, sweepX, epsilon)

	for _, pair := range [2][2]*Segment{{bigger, biggerAbove}, {smaller, smallerBelow}} {
		if pair[1] == nil {
			continue
		}
		point, ok, err := Intersect(*pair[0], *pair[1])
		if err != nil {
			return err
		}
		if ok && !point.Eq(event.point) {
			queue.AddIntersection(point, pair[0], pair[1], sweepX)
		}
	}
	return nil
}

// probePair computes the intersection of seg and other, if other exists,
// and enqueues it when it lies at or beyond the current sweep position.
func probePair(seg, other *Segment, queue *EventQueue, sweepX float64) error {
	if other == nil {
		return nil
	}

	point, ok, err := Intersect(*seg, *other)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	if point.X < sweepX {
		return nil
	}

	queue.AddIntersection(point, seg, other, sweepX)
	return nil
}
