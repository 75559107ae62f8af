package list

import "hop.computer/linkedlist/pkg/arena"

// The cursor has three states. Before the first GetNext (and after Reset) it
// is unpositioned and the next element is the head. Once GetNext returns a
// payload, the cursor sits on that node. When it sits on the tail, the list is
// exhausted until Reset, or until an element is appended.

// Reset moves the cursor back before the head of the list. No node is touched.
func (l *List[T]) Reset() error {
	if err := l.check("reset"); err != nil {
		return err
	}
	l.cursor = arena.None
	return nil
}

func (l *List[T]) peek() int {
	if l.cursor == arena.None {
		return l.head
	}
	return l.nodes.At(l.cursor).next
}

// GetNext advances the cursor and returns the payload it lands on. When there
// is no further element it returns ErrExhausted and leaves the cursor where
// it was.
func (l *List[T]) GetNext() (*T, error) {
	if err := l.check("next"); err != nil {
		return nil, err
	}
	n := l.peek()
	if n == arena.None {
		return nil, ErrExhausted
	}
	l.cursor = n
	return l.nodes.At(n).obj, nil
}

// AtEnd reports whether the next call to GetNext would return ErrExhausted.
// It does not move the cursor.
func (l *List[T]) AtEnd() (bool, error) {
	if err := l.check("atend"); err != nil {
		return false, err
	}
	return l.peek() == arena.None, nil
}
