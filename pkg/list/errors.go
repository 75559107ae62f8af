package list

import "github.com/pkg/errors"

// ErrNotCreated is returned by every operation on a nil List, a List that was
// not built by New, or a List that has been destroyed.
var ErrNotCreated = errors.New("list not created")

// ErrOutOfRange is returned when an index does not name a valid position for
// the operation.
var ErrOutOfRange = errors.New("index out of range")

// ErrAllocation is returned when storage for a new node is exhausted.
var ErrAllocation = errors.New("node allocation failed")

// ErrExhausted is returned by GetNext when there is no further element. It is
// the normal end of an iteration, not a fault, and is returned unwrapped so
// callers can compare against it directly.
var ErrExhausted = errors.New("no more elements")
