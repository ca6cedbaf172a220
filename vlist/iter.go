package vlist

import "iter"

// Iter is a bidirectional read-only iterator over logical order. The two
// ends keep independent physical cursors but share one remaining count, so
// they stop cleanly when they meet or cross. Copying an Iter yields an
// independent iterator at the same position.
//
// Each call to List.Iter produces a fresh, independent sequence; an Iter
// is not restartable.
type Iter[T any, I Index[I]] struct {
	list *List[T, I]
	head int
	tail int
	n    int
}

// Iter returns an iterator over the list's logical order.
func (l *List[T, I]) Iter() Iter[T, I] {
	h, _ := l.head.Get()
	t, _ := l.tail.Get()
	return Iter[T, I]{list: l, head: h, tail: t, n: l.Len()}
}

// Len returns the number of elements not yet yielded from either end.
func (it *Iter[T, I]) Len() int { return it.n }

// Next yields the next element from the front.
func (it *Iter[T, I]) Next() (T, bool) {
	if it.n == 0 {
		var zero T
		return zero, false
	}
	it.n--
	nd := &it.list.nodes[it.head]
	it.head, _ = nd.next.Get()
	return nd.payload, true
}

// NextBack yields the next element from the back.
func (it *Iter[T, I]) NextBack() (T, bool) {
	if it.n == 0 {
		var zero T
		return zero, false
	}
	it.n--
	nd := &it.list.nodes[it.tail]
	it.tail, _ = nd.prev.Get()
	return nd.payload, true
}

// Values returns a forward range-over-func view of logical order.
func (l *List[T, I]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := l.Iter()
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

// Backward returns a reverse range-over-func view of logical order.
func (l *List[T, I]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := l.Iter()
		for v, ok := it.NextBack(); ok; v, ok = it.NextBack() {
			if !yield(v) {
				return
			}
		}
	}
}

// IterMut is a bidirectional iterator yielding mutable handles in logical
// order. At construction it snapshots one handle per physical slot into a
// private table; each step takes the current slot's handle out of the
// table before yielding it, so no handle is ever issued twice and the
// front and back of the traversal can both be written through without
// aliasing. Construction is O(n) in the backing array.
//
// The list must not be touched through anything else while an IterMut is
// live.
type IterMut[T any, I Index[I]] struct {
	refs []*node[T, I]
	head int
	tail int
	n    int
}

// IterMut returns a mutable iterator over the list's logical order.
func (l *List[T, I]) IterMut() IterMut[T, I] {
	refs := make([]*node[T, I], len(l.nodes))
	for i := range l.nodes {
		refs[i] = &l.nodes[i]
	}
	h, _ := l.head.Get()
	t, _ := l.tail.Get()
	return IterMut[T, I]{refs: refs, head: h, tail: t, n: l.Len()}
}

// Len returns the number of elements not yet yielded from either end.
func (it *IterMut[T, I]) Len() int { return it.n }

// Next yields a pointer to the next element from the front.
func (it *IterMut[T, I]) Next() (*T, bool) {
	if it.n == 0 {
		return nil, false
	}
	it.n--
	nd := it.refs[it.head]
	it.refs[it.head] = nil // the handle is out; it can never be issued again
	it.head, _ = nd.next.Get()
	return &nd.payload, true
}

// NextBack yields a pointer to the next element from the back.
func (it *IterMut[T, I]) NextBack() (*T, bool) {
	if it.n == 0 {
		return nil, false
	}
	it.n--
	nd := it.refs[it.tail]
	it.refs[it.tail] = nil
	it.tail, _ = nd.prev.Get()
	return &nd.payload, true
}

// IndexIter is a bidirectional iterator yielding physical positions in
// logical order. String renders the list through it.
type IndexIter[T any, I Index[I]] struct {
	list *List[T, I]
	head int
	tail int
	n    int
}

// Indices returns an iterator over physical positions in logical order.
func (l *List[T, I]) Indices() IndexIter[T, I] {
	h, _ := l.head.Get()
	t, _ := l.tail.Get()
	return IndexIter[T, I]{list: l, head: h, tail: t, n: l.Len()}
}

// Len returns the number of positions not yet yielded from either end.
func (it *IndexIter[T, I]) Len() int { return it.n }

// Next yields the next physical position from the front.
func (it *IndexIter[T, I]) Next() (int, bool) {
	if it.n == 0 {
		return 0, false
	}
	it.n--
	p := it.head
	it.head, _ = it.list.nodes[p].next.Get()
	return p, true
}

// NextBack yields the next physical position from the back.
func (it *IndexIter[T, I]) NextBack() (int, bool) {
	if it.n == 0 {
		return 0, false
	}
	it.n--
	p := it.tail
	it.tail, _ = it.list.nodes[p].prev.Get()
	return p, true
}

// Drain consumes the list from either end. Every yielded element is
// removed; abandoning the iterator early leaves the remainder in place and
// the list usable.
type Drain[T any, I Index[I]] struct {
	list *List[T, I]
}

// Drain returns a consuming iterator over the list.
func (l *List[T, I]) Drain() Drain[T, I] { return Drain[T, I]{list: l} }

// Len returns the number of elements left in the list.
func (d Drain[T, I]) Len() int { return d.list.Len() }

// Next removes and returns the logically first element.
func (d Drain[T, I]) Next() (T, bool) { return d.list.PopFront() }

// NextBack removes and returns the logically last element.
func (d Drain[T, I]) NextBack() (T, bool) { return d.list.PopBack() }

// Values returns a range-over-func view that drains front to back.
func (d Drain[T, I]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v, ok := d.Next(); ok; v, ok = d.Next() {
			if !yield(v) {
				return
			}
		}
	}
}
