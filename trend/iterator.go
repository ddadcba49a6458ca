package trend

// iterState tracks the resumable position of a traversal between pulls.
//
// The suspend points of the algorithm are exactly the emitting returns of
// Next: after emitting the snapshot on a slope violation the iterator parks
// in stateReanchor so the next pull establishes and emits the new anchor.
type iterState uint8

const (
	// stateStart precedes the unconditional emission of the first sample.
	stateStart iterState = iota
	// stateScan advances the candidate window from the current anchor.
	stateScan
	// stateReanchor owes the caller a new anchor after a slope violation
	// whose snapshot was emitted on the previous pull.
	stateReanchor
	// stateDone is terminal; further pulls are stable no-ops.
	stateDone
	// stateClosed is terminal after Close; further pulls latch ErrIteratorClosed.
	stateClosed
)

// Iterator is the pull contract shared by both traversal strategies.
//
// Next advances to the next archived sample and reports whether one is
// available; Point returns the current archived sample. After Next returns
// false, Err distinguishes normal exhaustion (nil) from use after Close.
//
// Iterators are single-pass and not safe for concurrent use.
type Iterator interface {
	Next() bool
	Point() Point
	Err() error
	Close()
}

var (
	_ Iterator = (*SeqIterator)(nil)
	_ Iterator = (*SliceIterator)(nil)
)
