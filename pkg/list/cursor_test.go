package list

import (
	"errors"
	"testing"

	"gotest.tools/assert"
	is "gotest.tools/assert/cmp"
)

func next(t *testing.T, l *List[int]) int {
	t.Helper()
	v, err := l.GetNext()
	assert.NilError(t, err)
	return *v
}

func atEnd(t *testing.T, l *List[int]) bool {
	t.Helper()
	end, err := l.AtEnd()
	assert.NilError(t, err)
	return end
}

func TestIterate(t *testing.T) {
	l := build(t, 1, 2, 3, 4)

	// A fresh list starts unpositioned
	for want := 1; want <= 4; want++ {
		assert.Equal(t, want, next(t, l))
	}
	v, err := l.GetNext()
	assert.Equal(t, ErrExhausted, err)
	assert.Check(t, is.Nil(v))

	// Exhaustion is sticky until Reset
	_, err = l.GetNext()
	assert.Equal(t, ErrExhausted, err)

	assert.NilError(t, l.Reset())
	assert.Equal(t, 1, next(t, l))
	assert.Equal(t, 2, next(t, l))
	assert.NilError(t, l.Reset())
	assert.Equal(t, 1, next(t, l))
}

func TestAtEndDoesNotConsume(t *testing.T) {
	l := build(t, 10, 20, 30)
	assert.NilError(t, l.Reset())

	var seen []int
	for !atEnd(t, l) {
		// Peeking twice must not skip anything
		assert.Check(t, !atEnd(t, l))
		seen = append(seen, next(t, l))
	}
	assert.DeepEqual(t, []int{10, 20, 30}, seen)
	assert.Check(t, atEnd(t, l))
	_, err := l.GetNext()
	assert.Equal(t, ErrExhausted, err)
}

func TestIterateEmpty(t *testing.T) {
	l := New[int](0)
	assert.Check(t, atEnd(t, l))
	_, err := l.GetNext()
	assert.Equal(t, ErrExhausted, err)

	// Appending to an exhausted list makes the new element available
	assert.NilError(t, l.Append(ptr(1)))
	assert.Check(t, !atEnd(t, l))
	assert.Equal(t, 1, next(t, l))
	assert.NilError(t, l.Append(ptr(2)))
	assert.Equal(t, 2, next(t, l))
	assert.Check(t, atEnd(t, l))
}

func TestIndexedAccessKeepsCursor(t *testing.T) {
	l := build(t, 1, 2, 3)
	assert.Equal(t, 1, next(t, l))

	_, err := l.Get(2)
	assert.NilError(t, err)
	_, err = l.Size()
	assert.NilError(t, err)
	_, err = l.Values()
	assert.NilError(t, err)
	_, err = l.Get(9)
	assert.Check(t, errors.Is(err, ErrOutOfRange))

	assert.Equal(t, 2, next(t, l))
}

func TestMutationUnderCursor(t *testing.T) {
	t.Run("remove cursor node", func(t *testing.T) {
		l := build(t, 1, 2, 3, 4)
		assert.Equal(t, 1, next(t, l))
		assert.Equal(t, 2, next(t, l))
		assert.NilError(t, l.RemoveAt(1))
		assert.Equal(t, 3, next(t, l))
		assert.Equal(t, 4, next(t, l))
		assert.Check(t, atEnd(t, l))
	})
	t.Run("remove cursor head", func(t *testing.T) {
		l := build(t, 1, 2, 3)
		assert.Equal(t, 1, next(t, l))
		assert.NilError(t, l.RemoveAt(0))
		assert.Equal(t, 2, next(t, l))
	})
	t.Run("remove cursor tail", func(t *testing.T) {
		l := build(t, 1, 2)
		assert.Equal(t, 1, next(t, l))
		assert.Equal(t, 2, next(t, l))
		assert.NilError(t, l.RemoveAt(1))
		assert.Check(t, atEnd(t, l))
		assert.NilError(t, l.Append(ptr(3)))
		assert.Equal(t, 3, next(t, l))
	})
	t.Run("remove only node under cursor", func(t *testing.T) {
		l := build(t, 1)
		assert.Equal(t, 1, next(t, l))
		assert.NilError(t, l.RemoveAt(0))
		assert.Check(t, atEnd(t, l))
		assert.NilError(t, l.Append(ptr(2)))
		assert.Equal(t, 2, next(t, l))
	})
	t.Run("remove ahead of cursor", func(t *testing.T) {
		l := build(t, 1, 2, 3, 4)
		assert.Equal(t, 1, next(t, l))
		assert.NilError(t, l.RemoveAt(1))
		assert.Equal(t, 3, next(t, l))
	})
	t.Run("remove behind cursor", func(t *testing.T) {
		l := build(t, 1, 2, 3, 4)
		assert.Equal(t, 1, next(t, l))
		assert.Equal(t, 2, next(t, l))
		assert.NilError(t, l.RemoveAt(0))
		assert.Equal(t, 3, next(t, l))
	})
	t.Run("insert after cursor", func(t *testing.T) {
		l := build(t, 1, 3)
		assert.Equal(t, 1, next(t, l))
		assert.NilError(t, l.InsertAt(1, ptr(2)))
		assert.Equal(t, 2, next(t, l))
		assert.Equal(t, 3, next(t, l))
	})
	t.Run("insert at head while unpositioned", func(t *testing.T) {
		l := build(t, 2)
		assert.NilError(t, l.InsertAt(0, ptr(1)))
		assert.Equal(t, 1, next(t, l))
		assert.Equal(t, 2, next(t, l))
	})
	t.Run("recycled slot", func(t *testing.T) {
		// A freed slot handed out again must not revive the old cursor
		l := build(t, 1, 2, 3)
		assert.Equal(t, 1, next(t, l))
		assert.Equal(t, 2, next(t, l))
		assert.NilError(t, l.RemoveAt(1))
		assert.NilError(t, l.Append(ptr(4)))
		assert.Equal(t, 3, next(t, l))
		assert.Equal(t, 4, next(t, l))
	})
}
