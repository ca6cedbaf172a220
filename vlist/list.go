// Package vlist provides a doubly linked list whose nodes live as dense
// entries of a single contiguous slice. Logical order is carried entirely
// by next/prev links stored inside each slot, while the slice itself never
// grows holes: removing a slot moves the physically last slot into the
// freed position and repairs the moved slot's links. The combination gives
// O(1) push and pop at both ends, O(1) removal at a known physical
// position, and slice memory locality.
//
// The second type parameter picks the width of the stored links.
// Plain[uint16] keeps the full 0..65535 position range and tracks link
// presence in a separate flag; NonMax[uint16] reserves the type's maximum
// value as the empty link so a link costs exactly two bytes.
//
// A List is not safe for concurrent use. Any number of read-only cursors
// and iterators may coexist, but a CursorMut, an IterMut or a direct
// mutating method requires that nothing else touches the list for its
// duration: removal passes through a half-relinked intermediate state that
// no other view may observe. Physical positions are only stable until the
// next removal; after a removal, a previously captured physical position
// may silently address a different element or be out of range.
package vlist

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"
)

// ErrCapacity reports that growth would exceed the index type's
// representable position range. It is a structural limit, independent of
// available memory: TryReserve returns it, and the push operations panic
// with it.
var ErrCapacity = errors.New("vlist: capacity overflow")

// List is a doubly linked list stored in one dense slice. The zero value
// is an empty list ready to use for the index types provided by this
// package; New also works for third-party Index implementations whose zero
// value is not the empty link.
type List[T any, I Index[I]] struct {
	nodes []node[T, I]
	head  I
	tail  I
}

// New returns an empty list.
func New[T any, I Index[I]]() *List[T, I] {
	var z I
	return &List[T, I]{head: z.Nil(), tail: z.Nil()}
}

// From returns a list holding vals in order.
func From[T any, I Index[I]](vals ...T) *List[T, I] {
	l := New[T, I]()
	l.Extend(vals...)
	return l
}

// Collect drains seq into a new list.
func Collect[T any, I Index[I]](seq iter.Seq[T]) *List[T, I] {
	l := New[T, I]()
	l.ExtendSeq(seq)
	return l
}

// Len returns the number of elements in the list.
func (l *List[T, I]) Len() int { return len(l.nodes) }

// IsEmpty reports whether the list holds no elements.
func (l *List[T, I]) IsEmpty() bool { return len(l.nodes) == 0 }

// At returns a pointer to the payload at physical position p, which may
// not match its logical position. It panics when p is out of bounds. The
// pointer is invalidated by any operation that grows or shrinks the list.
func (l *List[T, I]) At(p int) *T { return &l.nodes[p].payload }

// Front returns a pointer to the logically first element, or nil if the
// list is empty. O(1).
func (l *List[T, I]) Front() *T {
	h, ok := l.head.Get()
	if !ok {
		return nil
	}
	return &l.nodes[h].payload
}

// Back returns a pointer to the logically last element, or nil if the
// list is empty. O(1).
func (l *List[T, I]) Back() *T {
	t, ok := l.tail.Get()
	if !ok {
		return nil
	}
	return &l.nodes[t].payload
}

// PushFront inserts v first in logical order and last in physical order.
// It panics with ErrCapacity when the index type cannot address one more
// slot. O(1).
func (l *List[T, I]) PushFront(v T) {
	ins := l.pushNode(v)
	l.insertBefore(ins, l.head)
}

// PushBack inserts v last in logical order and last in physical order.
// It panics with ErrCapacity when the index type cannot address one more
// slot. O(1).
func (l *List[T, I]) PushBack(v T) {
	ins := l.pushNode(v)
	l.insertAfter(ins, l.tail)
}

// PopFront removes and returns the logically first element. O(1).
func (l *List[T, I]) PopFront() (T, bool) {
	h, ok := l.head.Get()
	if !ok {
		var zero T
		return zero, false
	}
	return l.removeAt(h), true
}

// PopBack removes and returns the logically last element. O(1).
func (l *List[T, I]) PopBack() (T, bool) {
	t, ok := l.tail.Get()
	if !ok {
		var zero T
		return zero, false
	}
	return l.removeAt(t), true
}

// Pop removes and returns the physically last element, whatever its
// logical position. O(1).
func (l *List[T, I]) Pop() (T, bool) {
	if l.IsEmpty() {
		var zero T
		return zero, false
	}
	p := len(l.nodes) - 1
	l.unlink(p)
	v := l.nodes[p].payload
	l.nodes[p] = node[T, I]{}
	l.nodes = l.nodes[:p]
	return v, true
}

// SwapRemove removes and returns the element at physical position p,
// moving the physically last slot into its place. Logical order of the
// remaining elements is unchanged. It panics when p is out of bounds.
// O(1).
func (l *List[T, I]) SwapRemove(p int) T {
	if p < 0 || p >= len(l.nodes) {
		panic(fmt.Sprintf("vlist: index %d out of range [0, %d)", p, len(l.nodes)))
	}
	return l.removeAt(p)
}

// Swap exchanges the payloads at physical positions a and b in place. The
// link structure is untouched: only payload identity moves, so the two
// logical positions trade values. It panics when a or b is out of bounds.
func (l *List[T, I]) Swap(a, b int) {
	l.nodes[a].payload, l.nodes[b].payload = l.nodes[b].payload, l.nodes[a].payload
}

// Clear drops every element and resets the list to empty. No iteration
// order is defined during teardown. The backing capacity is kept.
func (l *List[T, I]) Clear() {
	var z I
	clear(l.nodes) // release payloads to the collector
	l.nodes = l.nodes[:0]
	l.head = z.Nil()
	l.tail = z.Nil()
}

// TryReserve grows the backing array so that at least additional more
// elements can be pushed without reallocating. It returns ErrCapacity when
// Len()+additional would exceed the index type's range, regardless of
// available memory; an actual allocation failure is not recoverable in Go
// and aborts the program. The list is unchanged on error.
func (l *List[T, I]) TryReserve(additional int) error {
	var z I
	if additional > 0 && z.Max()-len(l.nodes) < additional-1 {
		return ErrCapacity
	}
	l.nodes = slices.Grow(l.nodes, additional)
	return nil
}

// Append moves every element of other to the logical end of l, leaving
// other empty but fully usable. Keeping both backing arrays dense means
// every payload is re-pushed, so unlike a pointer-splicing list this is
// O(n) in other's length. l and other must be distinct lists.
func (l *List[T, I]) Append(other *List[T, I]) {
	_ = l.TryReserve(other.Len()) // best effort; PushBack reports overflow
	for v := range other.Values() {
		l.PushBack(v)
	}
	other.Clear()
}

// Extend pushes vals at the logical end. Capacity for all of them is
// reserved up front on a best-effort basis; exceeding the index range
// still panics with ErrCapacity on exactly the first push that does not
// fit.
func (l *List[T, I]) Extend(vals ...T) {
	_ = l.TryReserve(len(vals))
	for _, v := range vals {
		l.PushBack(v)
	}
}

// ExtendSeq pushes every value produced by seq at the logical end.
func (l *List[T, I]) ExtendSeq(seq iter.Seq[T]) {
	for v := range seq {
		l.PushBack(v)
	}
}

// Clone returns a shallow copy: the link structure is duplicated and
// payloads are copied by assignment.
func (l *List[T, I]) Clone() *List[T, I] {
	return &List[T, I]{
		nodes: slices.Clone(l.nodes),
		head:  l.head,
		tail:  l.tail,
	}
}

// String renders the list as a map from physical position to payload,
// enumerated in logical order. The key sequence exposes where each element
// currently lives in the backing array.
func (l *List[T, I]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	it := l.Indices()
	for first := true; ; first = false {
		p, ok := it.Next()
		if !ok {
			break
		}
		if !first {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%d: %v", p, l.nodes[p].payload)
	}
	b.WriteByte('}')
	return b.String()
}

// pushNode appends a fresh, unlinked slot holding v and returns its
// encoded position.
func (l *List[T, I]) pushNode(v T) I {
	var z I
	p := len(l.nodes)
	if p > z.Max() {
		panic(ErrCapacity)
	}
	l.nodes = append(l.nodes, node[T, I]{payload: v, next: z.Nil(), prev: z.Nil()})
	return z.FromIntUnchecked(p)
}

// removeAt unlinks physical slot p, densifies the array and returns the
// payload. Unlinking is defined purely in terms of logical neighbors;
// densifying never changes logical order, it only changes which physical
// slot the moved neighbor occupies. The two steps are independent and must
// stay in this order.
func (l *List[T, I]) removeAt(p int) T {
	l.unlink(p)
	last := len(l.nodes) - 1
	v := l.nodes[p].payload
	if p != last {
		l.nodes[p] = l.nodes[last]
		l.relinkMoved(p)
	}
	l.nodes[last] = node[T, I]{}
	l.nodes = l.nodes[:last]
	return v
}

// unlink removes slot p from the logical chain by joining its neighbors.
// p's own links are left as they were.
func (l *List[T, I]) unlink(p int) {
	l.pair(l.nodes[p].prev, l.nodes[p].next)
}

// relinkMoved points the neighbors of the slot now living at p back at it.
func (l *List[T, I]) relinkMoved(p int) {
	var z I
	moved := z.FromIntUnchecked(p)
	l.setNext(l.nodes[p].prev, moved)
	l.setPrev(l.nodes[p].next, moved)
}

func (l *List[T, I]) insertBefore(ins, target I) {
	other := l.getPrev(target)
	l.pair(other, ins)
	l.pair(ins, target)
}

func (l *List[T, I]) insertAfter(ins, target I) {
	other := l.getNext(target)
	l.pair(target, ins)
	l.pair(ins, other)
}

// getNext reads target's next link. The empty link stands for the list
// boundary, whose next is the head.
func (l *List[T, I]) getNext(target I) I {
	if i, ok := target.Get(); ok {
		return l.nodes[i].next
	}
	return l.head
}

// getPrev reads target's prev link, or the tail for the boundary.
func (l *List[T, I]) getPrev(target I) I {
	if i, ok := target.Get(); ok {
		return l.nodes[i].prev
	}
	return l.tail
}

// setNext writes target's next link, or the head for the boundary.
func (l *List[T, I]) setNext(target, value I) {
	if i, ok := target.Get(); ok {
		l.nodes[i].next = value
	} else {
		l.head = value
	}
}

// setPrev writes target's prev link, or the tail for the boundary.
func (l *List[T, I]) setPrev(target, value I) {
	if i, ok := target.Get(); ok {
		l.nodes[i].prev = value
	} else {
		l.tail = value
	}
}

// pair links first and second as logical neighbors. Either side may be the
// empty link, meaning the corresponding list boundary.
func (l *List[T, I]) pair(first, second I) {
	l.setNext(first, second)
	l.setPrev(second, first)
}
