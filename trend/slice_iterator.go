package trend

import "github.com/arloliu/sdt/errs"

// SliceIterator drives the swinging door engine over an indexable source.
// Instead of buffering samples it keeps three integer cursors and re-reads
// the slice by index, which keeps the scan loop free of copies and lets the
// compiler elide bounds checks. The min gap skip advances the incoming
// cursor directly rather than re-pulling from an enumerator.
//
// Output is identical to SeqIterator for the same input and parameters; the
// indexed strategy exists purely for speed when random access is available.
//
// Create one with Compressor.Iterate. Not safe for concurrent use. The
// source slice must not be mutated during traversal.
type SliceIterator struct {
	door door
	src  []Point

	state           iterState
	lastArchivedIdx int
	snapshotIdx     int
	incomingIdx     int
	current         Point
	err             error
}

// Next advances to the next archived sample. Repeated calls after
// exhaustion are stable no-ops returning false.
func (it *SliceIterator) Next() bool {
	switch it.state {
	case stateStart:
		if len(it.src) == 0 {
			it.state = stateDone
			return false
		}

		it.lastArchivedIdx = 0
		it.snapshotIdx = 0
		it.incomingIdx = 0
		it.door.open()
		it.state = stateScan
		it.current = it.src[0]

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

func (it *SliceIterator) scan() bool {
	src := it.src
	anchor := src[it.lastArchivedIdx]

	for {
		i := it.incomingIdx + 1
		if i >= len(src) {
			it.state = stateDone
			if src[it.incomingIdx] != src[it.lastArchivedIdx] {
				it.current = src[it.incomingIdx]
				return true
			}

			return false
		}

		it.incomingIdx = i
		incoming := src[i]

		dec := it.door.classify(anchor, incoming)
		if !dec.archive {
			it.door.narrow(anchor, incoming)
			it.snapshotIdx = i

			continue
		}

		if !dec.forcedGap {
			it.state = stateReanchor
			it.current = src[it.snapshotIdx]

			return true
		}

		return it.reanchor()
	}
}

// reanchor moves the incoming cursor past any candidates within the min gap
// of the old snapshot, then re-opens the door at the resulting sample.
func (it *SliceIterator) reanchor() bool {
	src := it.src
	i := it.incomingIdx

	if it.door.hasMinGap {
		limit := src[it.snapshotIdx].X + it.door.minGap
		for src[i].X < limit && i+1 < len(src) {
			i++
		}
	}

	it.lastArchivedIdx = i
	it.snapshotIdx = i
	it.incomingIdx = i
	it.door.open()
	it.state = stateScan
	it.current = src[i]

	return true
}

// Point returns the sample emitted by the last successful Next. It returns
// the zero Point before the first Next and after Close.
func (it *SliceIterator) Point() Point {
	return it.current
}

// Err returns ErrIteratorClosed if Next was called after Close, nil
// otherwise.
func (it *SliceIterator) Err() error {
	return it.err
}

// Close marks the iterator released. Subsequent Next calls return false and
// latch ErrIteratorClosed; Point returns the zero Point. Close is idempotent.
func (it *SliceIterator) Close() {
	it.state = stateClosed
	it.current = Point{}
}
