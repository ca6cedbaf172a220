package vlist

// Cursor is a read-only position in a list's logical order. Besides the
// elements themselves it can rest on one extra position: the boundary
// between tail and head. Moving next from the tail or prev from the head
// lands on the boundary; moving once more wraps to the opposite end. The
// boundary is a single undirected state; a cursor does not remember which
// side it arrived from.
//
// A Cursor is a plain value: copying it yields an independent cursor at
// the same position. It stays valid only while the list is not mutated.
type Cursor[T any, I Index[I]] struct {
	list    *List[T, I]
	logical int
	phys    int
	ghost   bool
}

// CursorFront returns a cursor at the logically first element, or at the
// boundary when the list is empty.
func (l *List[T, I]) CursorFront() Cursor[T, I] {
	c := Cursor[T, I]{list: l, ghost: true}
	c.MoveNext()
	return c
}

// CursorBack returns a cursor at the logically last element, or at the
// boundary when the list is empty.
func (l *List[T, I]) CursorBack() Cursor[T, I] {
	c := Cursor[T, I]{list: l, ghost: true}
	c.MovePrev()
	return c
}

// Index returns the cursor's logical position, or false at the boundary.
func (c *Cursor[T, I]) Index() (int, bool) {
	if c.ghost {
		return 0, false
	}
	return c.logical, true
}

// Physical returns the backing-array position of the current element, or
// false at the boundary.
func (c *Cursor[T, I]) Physical() (int, bool) {
	if c.ghost {
		return 0, false
	}
	return c.phys, true
}

// Current returns the element under the cursor, or false at the boundary.
func (c *Cursor[T, I]) Current() (T, bool) {
	if c.ghost {
		var zero T
		return zero, false
	}
	return c.list.nodes[c.phys].payload, true
}

// List returns the list the cursor traverses.
func (c *Cursor[T, I]) List() *List[T, I] { return c.list }

// MoveNext advances to the next element in logical order. From the
// boundary it moves to the head; from the tail it moves to the boundary.
// On an empty list the cursor stays at the boundary.
func (c *Cursor[T, I]) MoveNext() {
	if c.ghost {
		c.logical = 0
		if h, ok := c.list.head.Get(); ok {
			c.phys = h
			c.ghost = false
		}
		return
	}
	c.logical++
	if n, ok := c.list.nodes[c.phys].next.Get(); ok {
		c.phys = n
	} else {
		c.ghost = true
	}
}

// MovePrev retreats to the previous element in logical order. From the
// boundary it moves to the tail; from the head it moves to the boundary.
// On an empty list the cursor stays at the boundary.
func (c *Cursor[T, I]) MovePrev() {
	if c.ghost {
		c.logical = c.list.Len() - 1
		if c.logical < 0 {
			c.logical = 0
		}
		if t, ok := c.list.tail.Get(); ok {
			c.phys = t
			c.ghost = false
		}
		return
	}
	if c.logical == 0 {
		c.logical = c.list.Len()
	} else {
		c.logical--
	}
	if p, ok := c.list.nodes[c.phys].prev.Get(); ok {
		c.phys = p
	} else {
		c.ghost = true
	}
}

// PeekNext returns the element after the cursor without moving it. At the
// boundary it returns the first element; at the tail it returns false.
func (c *Cursor[T, I]) PeekNext() (T, bool) {
	n := *c
	n.MoveNext()
	return n.Current()
}

// PeekPrev returns the element before the cursor without moving it. At the
// boundary it returns the last element; at the head it returns false.
func (c *Cursor[T, I]) PeekPrev() (T, bool) {
	p := *c
	p.MovePrev()
	return p.Current()
}

// Front returns the list's first element, independent of the cursor's
// position.
func (c *Cursor[T, I]) Front() (T, bool) {
	if v := c.list.Front(); v != nil {
		return *v, true
	}
	var zero T
	return zero, false
}

// Back returns the list's last element, independent of the cursor's
// position.
func (c *Cursor[T, I]) Back() (T, bool) {
	if v := c.list.Back(); v != nil {
		return *v, true
	}
	var zero T
	return zero, false
}

// AsNonEmpty returns a boundary-free cursor at the current element, or
// false when the cursor is at the boundary. The two cursors move
// independently of each other.
func (c *Cursor[T, I]) AsNonEmpty() (NonEmptyCursor[T, I], bool) {
	if c.ghost {
		return NonEmptyCursor[T, I]{}, false
	}
	return NonEmptyCursor[T, I]{list: c.list, logical: c.logical, phys: c.phys}, true
}

// CursorMut is a cursor with mutable access to payloads. While a CursorMut
// is in use the list must not be read or written through any other cursor,
// iterator or method; the swap-relink algorithm depends on no other view
// observing its intermediate states. This is a documented contract, not
// something the runtime enforces.
type CursorMut[T any, I Index[I]] struct {
	Cursor[T, I]
}

// CursorFrontMut returns a mutable cursor at the logically first element,
// or at the boundary when the list is empty.
func (l *List[T, I]) CursorFrontMut() CursorMut[T, I] {
	return CursorMut[T, I]{l.CursorFront()}
}

// CursorBackMut returns a mutable cursor at the logically last element, or
// at the boundary when the list is empty.
func (l *List[T, I]) CursorBackMut() CursorMut[T, I] {
	return CursorMut[T, I]{l.CursorBack()}
}

// Current returns a pointer to the element under the cursor, or nil at the
// boundary.
func (c *CursorMut[T, I]) Current() *T {
	if c.ghost {
		return nil
	}
	return &c.list.nodes[c.phys].payload
}

// PeekNext returns a pointer to the element after the cursor, or nil when
// there is none. At the boundary it returns the first element.
func (c *CursorMut[T, I]) PeekNext() *T {
	n := c.Cursor
	n.MoveNext()
	if n.ghost {
		return nil
	}
	return &c.list.nodes[n.phys].payload
}

// PeekPrev returns a pointer to the element before the cursor, or nil when
// there is none. At the boundary it returns the last element.
func (c *CursorMut[T, I]) PeekPrev() *T {
	p := c.Cursor
	p.MovePrev()
	if p.ghost {
		return nil
	}
	return &c.list.nodes[p.phys].payload
}

// FrontMut returns a pointer to the list's first element, or nil when the
// list is empty.
func (c *CursorMut[T, I]) FrontMut() *T { return c.list.Front() }

// BackMut returns a pointer to the list's last element, or nil when the
// list is empty.
func (c *CursorMut[T, I]) BackMut() *T { return c.list.Back() }

// AsCursor returns a read-only cursor at the same position. Moving either
// cursor does not affect the other, and the result grants no mutation.
func (c *CursorMut[T, I]) AsCursor() Cursor[T, I] { return c.Cursor }

// NonEmptyCursor is a cursor with no boundary position: it always rests on
// an element and wraps circularly at the list's ends. It can only be
// obtained from a cursor that currently has an element, so the underlying
// list is never empty while one exists.
type NonEmptyCursor[T any, I Index[I]] struct {
	list    *List[T, I]
	logical int
	phys    int
}

// Index returns the cursor's logical position.
func (c *NonEmptyCursor[T, I]) Index() int { return c.logical }

// Physical returns the backing-array position of the current element.
func (c *NonEmptyCursor[T, I]) Physical() int { return c.phys }

// Current returns the element under the cursor.
func (c *NonEmptyCursor[T, I]) Current() T { return c.list.nodes[c.phys].payload }

// MoveNext advances in logical order. Moving past the tail wraps to the
// head and returns false; every other move returns true.
func (c *NonEmptyCursor[T, I]) MoveNext() bool {
	if n, ok := c.list.nodes[c.phys].next.Get(); ok {
		c.phys = n
		c.logical++
		return true
	}
	h, _ := c.list.head.Get()
	c.phys = h
	c.logical = 0
	return false
}

// MovePrev retreats in logical order. Moving past the head wraps to the
// tail and returns false; every other move returns true.
func (c *NonEmptyCursor[T, I]) MovePrev() bool {
	if p, ok := c.list.nodes[c.phys].prev.Get(); ok {
		c.phys = p
		c.logical--
		return true
	}
	t, _ := c.list.tail.Get()
	c.phys = t
	c.logical = c.list.Len() - 1
	return false
}

// AsCursor returns a full cursor at the same position. The two cursors
// move independently of each other.
func (c *NonEmptyCursor[T, I]) AsCursor() Cursor[T, I] {
	return Cursor[T, I]{list: c.list, logical: c.logical, phys: c.phys}
}
