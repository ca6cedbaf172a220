package vlist_test

import (
	"testing"

	"github.com/plus3/linkvec/vlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertAt checks a cursor's current element and logical index in one go.
func assertAt[T comparable, I vlist.Index[I]](t *testing.T, c *vlist.Cursor[T, I], want T, idx int) {
	t.Helper()
	v, ok := c.Current()
	require.True(t, ok)
	assert.Equal(t, want, v)
	i, ok := c.Index()
	require.True(t, ok)
	assert.Equal(t, idx, i)
}

// assertBoundary checks that a cursor rests on the ghost position.
func assertBoundary[T comparable, I vlist.Index[I]](t *testing.T, c *vlist.Cursor[T, I]) {
	t.Helper()
	_, ok := c.Current()
	assert.False(t, ok)
	_, ok = c.Index()
	assert.False(t, ok)
	_, ok = c.Physical()
	assert.False(t, ok)
}

func TestCursorMovePeek(t *testing.T) {
	m := vlist.From[int, vlist.NonMax[uint8]](1, 2, 3, 4, 5, 6)

	c := m.CursorFront()
	assertAt(t, &c, 1, 0)
	next, ok := c.PeekNext()
	require.True(t, ok)
	assert.Equal(t, 2, next)
	_, ok = c.PeekPrev()
	assert.False(t, ok)

	c.MovePrev()
	assertBoundary(t, &c)
	next, ok = c.PeekNext()
	require.True(t, ok)
	assert.Equal(t, 1, next)
	prev, ok := c.PeekPrev()
	require.True(t, ok)
	assert.Equal(t, 6, prev)

	c.MoveNext()
	c.MoveNext()
	assertAt(t, &c, 2, 1)
	next, _ = c.PeekNext()
	assert.Equal(t, 3, next)
	prev, _ = c.PeekPrev()
	assert.Equal(t, 1, prev)

	c = m.CursorBack()
	assertAt(t, &c, 6, 5)
	_, ok = c.PeekNext()
	assert.False(t, ok)
	prev, ok = c.PeekPrev()
	require.True(t, ok)
	assert.Equal(t, 5, prev)

	c.MoveNext()
	assertBoundary(t, &c)
	next, _ = c.PeekNext()
	assert.Equal(t, 1, next)
	prev, _ = c.PeekPrev()
	assert.Equal(t, 6, prev)

	c.MovePrev()
	c.MovePrev()
	assertAt(t, &c, 5, 4)
}

func TestCursorMutMovePeek(t *testing.T) {
	m := vlist.From[int, vlist.NonMax[uint8]](1, 2, 3, 4, 5, 6)

	c := m.CursorFrontMut()
	require.NotNil(t, c.Current())
	assert.Equal(t, 1, *c.Current())
	require.NotNil(t, c.PeekNext())
	assert.Equal(t, 2, *c.PeekNext())
	assert.Nil(t, c.PeekPrev())

	c.MovePrev()
	assert.Nil(t, c.Current())
	assert.Equal(t, 1, *c.PeekNext())
	assert.Equal(t, 6, *c.PeekPrev())

	c.MoveNext()
	c.MoveNext()
	assert.Equal(t, 2, *c.Current())
	assert.Equal(t, 3, *c.PeekNext())
	assert.Equal(t, 1, *c.PeekPrev())
	i, ok := c.Index()
	require.True(t, ok)
	assert.Equal(t, 1, i)

	// The read-only downgrade moves independently and grants no mutation.
	c2 := c.AsCursor()
	assertAt(t, &c2, 2, 1)
	c2.MoveNext()
	assertAt(t, &c2, 3, 2)
	assert.Equal(t, 2, *c.Current())

	// Writes through the mutable cursor are visible in the list.
	*c.Current() = 20
	*c.FrontMut() = 10
	*c.BackMut() = 60
	assert.Equal(t, []int{10, 20, 3, 4, 5, 60}, collect(m.Values()))
}

func TestCursorEmptyList(t *testing.T) {
	l := vlist.New[int, vlist.NonMax[uint8]]()

	c := l.CursorFront()
	assertBoundary(t, &c)
	c.MoveNext()
	assertBoundary(t, &c)
	c.MovePrev()
	assertBoundary(t, &c)

	_, ok := c.Front()
	assert.False(t, ok)
	_, ok = c.Back()
	assert.False(t, ok)
	_, ok = c.AsNonEmpty()
	assert.False(t, ok)
}

func TestNonEmptyCursorWraps(t *testing.T) {
	l := vlist.From[int, vlist.NonMax[uint8]](1, 2, 3)

	c := l.CursorFront()
	ne, ok := c.AsNonEmpty()
	require.True(t, ok)
	assert.Equal(t, 1, ne.Current())
	assert.Equal(t, 0, ne.Index())

	assert.True(t, ne.MoveNext())
	assert.Equal(t, 2, ne.Current())
	assert.True(t, ne.MoveNext())
	assert.Equal(t, 3, ne.Current())
	assert.Equal(t, 2, ne.Index())

	// Crossing the tail wraps to the head and reports the crossing.
	assert.False(t, ne.MoveNext())
	assert.Equal(t, 1, ne.Current())
	assert.Equal(t, 0, ne.Index())

	assert.False(t, ne.MovePrev())
	assert.Equal(t, 3, ne.Current())
	assert.Equal(t, 2, ne.Index())
	assert.True(t, ne.MovePrev())
	assert.Equal(t, 2, ne.Current())
}

func TestNonEmptyCursorConversions(t *testing.T) {
	l := vlist.From[int, vlist.NonMax[uint8]](1, 2, 3)

	c := l.CursorBack()
	ne, ok := c.AsNonEmpty()
	require.True(t, ok)

	// Converting back yields a full cursor at the same spot; moving one
	// does not move the other.
	c2 := ne.AsCursor()
	assertAt(t, &c2, 3, 2)
	c2.MoveNext()
	assertBoundary(t, &c2)
	assert.Equal(t, 3, ne.Current())

	// Boundary cursors cannot shed the ghost position.
	_, ok = c2.AsNonEmpty()
	assert.False(t, ok)
}

func TestCursorPhysical(t *testing.T) {
	l := vlist.From[int, vlist.NonMax[uint8]](0, 1, 2)
	l.PopFront()     // relocates slot 2 into slot 0
	l.PushFront(0)   // appended at slot 2, new logical head

	c := l.CursorFront()
	p, ok := c.Physical()
	require.True(t, ok)
	assert.Equal(t, 2, p)

	c.MoveNext()
	p, _ = c.Physical()
	assert.Equal(t, 1, p)

	c.MoveNext()
	p, _ = c.Physical()
	assert.Equal(t, 0, p)
}
