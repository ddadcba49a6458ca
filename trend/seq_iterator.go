package trend

import "github.com/arloliu/sdt/errs"

// SeqIterator drives the swinging door engine over a forward-only pull
// source. Every candidate is consumed exactly once and only three sample
// slots (anchor, snapshot, incoming) are buffered, so it runs in O(1)
// auxiliary space over sources of unknown length.
//
// Create one with Compressor.IterateSeq. Not safe for concurrent use.
type SeqIterator struct {
	door door
	next func() (Point, bool)
	stop func()

	state        iterState
	lastArchived Point
	snapshot     Point
	incoming     Point
	current      Point
	err          error
}

// Next advances to the next archived sample.
//
// It returns false when the source is exhausted or the iterator has been
// closed; repeated calls past that point are stable no-ops. Use Err to
// distinguish the two.
func (it *SeqIterator) Next() bool {
	switch it.state {
	case stateStart:
		p, ok := it.next()
		if !ok {
			// Empty source: nothing to anchor on.
			it.finish()
			return false
		}

		// The first sample is always archived; it anchors the first door.
		it.lastArchived = p
		it.snapshot = p
		it.incoming = p
		it.door.open()
		it.state = stateScan
		it.current = p

		return true

	case stateScan:
		return it.scan()

	case stateReanchor:
		return it.reanchor()

	case stateClosed:
		it.err = errs.ErrIteratorClosed
		return false

	default: // stateDone
		return false
	}
}

// scan pulls candidates until one must be archived or the source drains.
func (it *SeqIterator) scan() bool {
	for {
		p, ok := it.next()
		if !ok {
			it.finish()
			// The final sample is always represented: emit the last
			// consumed candidate unless it is the archived anchor itself.
			if it.incoming != it.lastArchived {
				it.current = it.incoming
				return true
			}

			return false
		}

		it.incoming = p

		dec := it.door.classify(it.lastArchived, p)
		if !dec.archive {
			it.door.narrow(it.lastArchived, p)
			it.snapshot = p

			continue
		}

		if !dec.forcedGap {
			// Slope violation: emit the snapshot now, owe the new anchor.
			it.state = stateReanchor
			it.current = it.snapshot

			return true
		}

		// Forced by max gap: no snapshot emission, reanchor immediately.
		return it.reanchor()
	}
}

// reanchor establishes the next anchor from the violating candidate,
// applying the min gap skip measured from the old snapshot's X. Samples
// skipped here are discarded without ever being classified.
//
// If the source drains during the skip the last consumed sample still
// becomes the final anchor, keeping the end of the input represented.
func (it *SeqIterator) reanchor() bool {
	anchor := it.incoming
	if it.door.hasMinGap {
		limit := it.snapshot.X + it.door.minGap
		for anchor.X < limit {
			p, ok := it.next()
			if !ok {
				break
			}
			anchor = p
		}
	}

	it.lastArchived = anchor
	it.snapshot = anchor
	it.incoming = anchor
	it.door.open()
	it.state = stateScan
	it.current = anchor

	return true
}

// Point returns the sample emitted by the last successful Next. It returns
// the zero Point before the first Next and after Close.
func (it *SeqIterator) Point() Point {
	return it.current
}

// Err returns ErrIteratorClosed if Next was called after Close, nil
// otherwise. Normal exhaustion is not an error.
func (it *SeqIterator) Err() error {
	return it.err
}

// Close releases the underlying pull iterator. Subsequent Next calls return
// false and latch ErrIteratorClosed; Point returns the zero Point. Close is
// idempotent.
func (it *SeqIterator) Close() {
	if it.state == stateClosed {
		return
	}
	if it.stop != nil {
		it.stop()
	}
	it.state = stateClosed
	it.current = Point{}
}

func (it *SeqIterator) finish() {
	it.state = stateDone
	it.stop()
}
