// Package list implements a singly-linked list of caller-owned payloads.
//
// Nodes are kept in an arena and linked by slot index, so the tail and the
// iteration cursor can never point at released storage. A List carries a
// cursor for the stateful GetNext/AtEnd/Reset protocol; indexed access through
// Get never moves it.
package list

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"hop.computer/linkedlist/pkg/arena"
)

type node[T any] struct {
	obj  *T
	next int
}

// List is a singly-linked list holding references to values of type T. The
// list stores the pointer it is given and never copies or frees the value
// behind it. Head, tail, and size are tracked, so Append and Len are constant
// time; positional operations are O(index). The list is not thread-safe.
//
// The zero value is not usable; build lists with New.
type List[T any] struct {
	nodes *arena.Arena[node[T]]

	head, tail int
	// cursor is the node whose payload GetNext returned last, or arena.None
	// before the first call.
	cursor int
	size   int

	capacity  int
	destroyed bool

	release func(*T)
	log     *logrus.Entry
}

// New returns an empty list. The capacity is recorded and used to preallocate
// node storage, but it is not a bound: the list grows past it freely.
func New[T any](capacity int, opts ...Option[T]) *List[T] {
	l := &List[T]{
		nodes:    arena.New[node[T]](capacity),
		head:     arena.None,
		tail:     arena.None,
		cursor:   arena.None,
		capacity: capacity,
		log:      logrus.WithField("list", ""),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *List[T]) check(op string) error {
	if l == nil || l.nodes == nil || l.destroyed {
		return errors.Wrap(ErrNotCreated, op)
	}
	return nil
}

// Capacity returns the capacity the list was created with.
func (l *List[T]) Capacity() int {
	if l == nil {
		return 0
	}
	return l.capacity
}

// Len returns the number of elements in constant time, or -1 if the list has
// not been created.
func (l *List[T]) Len() int {
	if l.check("len") != nil {
		return -1
	}
	return l.size
}

// Size counts the nodes reachable from the head of the list. It walks the
// chain without touching the iteration cursor. This function is O(n).
func (l *List[T]) Size() (int, error) {
	if err := l.check("size"); err != nil {
		return 0, err
	}
	count := 0
	for it := l.head; it != arena.None; it = l.nodes.At(it).next {
		count++
	}
	return count, nil
}

// walk returns the slot of the node at position index. The caller must have
// checked that index is in range.
func (l *List[T]) walk(index int) int {
	it := l.head
	for i := 0; i < index; i++ {
		it = l.nodes.At(it).next
	}
	return it
}

// Append adds v to the end of the list. This function is constant time.
func (l *List[T]) Append(v *T) error {
	if err := l.check("append"); err != nil {
		return err
	}
	return l.pushBack(v)
}

func (l *List[T]) pushBack(v *T) error {
	n, err := l.nodes.Alloc(node[T]{obj: v, next: arena.None})
	if err != nil {
		return errors.Wrapf(ErrAllocation, "append at %d: %s", l.size, err)
	}
	if l.tail == arena.None {
		l.head = n
	} else {
		l.nodes.At(l.tail).next = n
	}
	l.tail = n
	l.size++
	l.log.WithFields(logrus.Fields{
		"index": l.size - 1,
		"size":  l.size,
	}).Trace("appended node")
	return nil
}

// InsertAt inserts v so that it becomes the element at position index. Every
// element from index on moves back by one. An index equal to the length of the
// list appends; anything larger is ErrOutOfRange.
func (l *List[T]) InsertAt(index int, v *T) error {
	if err := l.check("insert"); err != nil {
		return err
	}
	if index < 0 || index > l.size {
		return errors.Wrapf(ErrOutOfRange, "insert at %d into list of %d", index, l.size)
	}
	if index == l.size {
		return l.pushBack(v)
	}

	n, err := l.nodes.Alloc(node[T]{obj: v, next: arena.None})
	if err != nil {
		return errors.Wrapf(ErrAllocation, "insert at %d: %s", index, err)
	}
	if index == 0 {
		l.nodes.At(n).next = l.head
		l.head = n
	} else {
		prev := l.walk(index - 1)
		l.nodes.At(n).next = l.nodes.At(prev).next
		l.nodes.At(prev).next = n
	}
	l.size++
	l.log.WithFields(logrus.Fields{
		"index": index,
		"size":  l.size,
	}).Trace("inserted node")
	return nil
}

// RemoveAt unlinks and frees the node at position index, then hands its
// payload to the release function, if one was configured. If the iteration
// cursor was on the removed node, it steps back to the previous node so that
// the next call to GetNext returns the element that followed the removed one.
func (l *List[T]) RemoveAt(index int) error {
	if err := l.check("remove"); err != nil {
		return err
	}
	if index < 0 || index >= l.size {
		return errors.Wrapf(ErrOutOfRange, "remove at %d from list of %d", index, l.size)
	}

	prev, victim := arena.None, l.head
	if index > 0 {
		prev = l.walk(index - 1)
		victim = l.nodes.At(prev).next
	}
	removed := *l.nodes.At(victim)

	if prev == arena.None {
		l.head = removed.next
	} else {
		l.nodes.At(prev).next = removed.next
	}
	if victim == l.tail {
		l.tail = prev
	}
	if victim == l.cursor {
		l.cursor = prev
		l.log.WithField("index", index).Debug("cursor moved off removed node")
	}
	l.nodes.Free(victim)
	l.size--
	l.log.WithFields(logrus.Fields{
		"index": index,
		"size":  l.size,
	}).Trace("removed node")

	if l.release != nil && removed.obj != nil {
		l.release(removed.obj)
	}
	return nil
}

// Get returns the payload at position index without modifying the list or the
// iteration cursor.
func (l *List[T]) Get(index int) (*T, error) {
	if err := l.check("get"); err != nil {
		return nil, err
	}
	if index < 0 || index >= l.size {
		return nil, errors.Wrapf(ErrOutOfRange, "get at %d from list of %d", index, l.size)
	}
	return l.nodes.At(l.walk(index)).obj, nil
}

// Values returns the payloads of the list in order. The slice is a snapshot;
// later changes to the list do not affect it.
func (l *List[T]) Values() ([]*T, error) {
	if err := l.check("values"); err != nil {
		return nil, err
	}
	out := make([]*T, 0, l.size)
	for it := l.head; it != arena.None; it = l.nodes.At(it).next {
		out = append(out, l.nodes.At(it).obj)
	}
	return out, nil
}

// Destroy frees every node of the list in a single pass from head to tail.
// Payloads are left alone. Afterwards, every operation on the list returns
// ErrNotCreated, except Stats.
func (l *List[T]) Destroy() error {
	if err := l.check("destroy"); err != nil {
		return err
	}
	released := 0
	for it := l.head; it != arena.None; {
		next := l.nodes.At(it).next
		l.nodes.Free(it)
		it = next
		released++
	}
	l.head, l.tail, l.cursor = arena.None, arena.None, arena.None
	l.size = 0
	l.destroyed = true
	l.log.WithField("nodes", released).Debug("destroyed list")
	return nil
}

// Stats returns node allocation counters for the lifetime of the list,
// including after Destroy.
func (l *List[T]) Stats() arena.Stats {
	if l == nil || l.nodes == nil {
		return arena.Stats{}
	}
	return l.nodes.Stats()
}
