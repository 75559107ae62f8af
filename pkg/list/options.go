package list

import "github.com/sirupsen/logrus"

// Option configures a List at construction.
type Option[T any] func(*List[T])

// WithLogger sets the entry the list logs structural changes to.
func WithLogger[T any](log *logrus.Entry) Option[T] {
	return func(l *List[T]) {
		if log != nil {
			l.log = log
		}
	}
}

// WithRelease registers a function that receives the payload of every node
// removed by RemoveAt. The list itself never frees payloads, and Destroy does
// not call release: payloads still in the list at teardown stay with the
// caller.
func WithRelease[T any](release func(*T)) Option[T] {
	return func(l *List[T]) {
		l.release = release
	}
}

// WithNodeLimit caps the number of nodes the list may hold at once. Inserting
// past the cap fails with ErrAllocation. Zero means no cap. This models
// storage exhaustion and is unrelated to the capacity passed to New.
func WithNodeLimit[T any](n int) Option[T] {
	return func(l *List[T]) {
		l.nodes.SetLimit(n)
	}
}
