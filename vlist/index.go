package vlist

import (
	"fmt"
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Index is implemented by the bounded link types a List stores between its
// slots. A value either encodes a physical position in the backing array or
// the empty link; which of the two is decided by Get.
//
// Implementations must be usable through their zero value: every method can
// be called on `var i I`, and the conversion methods return fresh values.
// FromInt and FromIntUnchecked must agree for every position in [0, Max()].
type Index[I any] interface {
	comparable

	// Max returns the largest position the type can encode. It is a
	// constant for a given type.
	Max() int

	// FromInt encodes a position. It fails with a *RangeError when the
	// position is negative or greater than Max.
	FromInt(int) (I, error)

	// FromIntUnchecked encodes a position the caller has already bounded
	// to [0, Max]. Passing anything else corrupts the link structure of
	// whatever list the value ends up in.
	FromIntUnchecked(int) I

	// Nil returns the empty-link encoding.
	Nil() I

	// Get returns the encoded position, or false for the empty link.
	Get() (int, bool)
}

// RangeError reports a position that does not fit in an index type.
type RangeError struct {
	Pos int
	Max int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("vlist: position %d out of index range [0, %d]", e.Pos, e.Max)
}

// typeMax is the largest value of N, clamped to what an int can count to.
func typeMax[N constraints.Integer]() int {
	var zero N
	if zero-1 > zero { // unsigned
		if u := uint64(^zero); u < uint64(math.MaxInt) {
			return int(u)
		}
		return math.MaxInt
	}
	bits := unsafe.Sizeof(zero) * 8
	m := int64(1)<<(bits-1) - 1
	if m > math.MaxInt {
		return math.MaxInt
	}
	return int(m)
}

// Plain is an Index over any native integer type. Link presence is tracked
// by a separate flag, so the full range of N addresses positions at the
// cost of one flag byte plus padding per link.
type Plain[N constraints.Integer] struct {
	v  N
	ok bool
}

// Max returns the largest encodable position.
func (Plain[N]) Max() int { return typeMax[N]() }

// FromInt encodes a position, or fails with a *RangeError.
func (Plain[N]) FromInt(i int) (Plain[N], error) {
	if i < 0 || i > typeMax[N]() {
		return Plain[N]{}, &RangeError{Pos: i, Max: typeMax[N]()}
	}
	return Plain[N]{v: N(i), ok: true}, nil
}

// FromIntUnchecked encodes a position the caller guarantees is in
// [0, Max].
func (Plain[N]) FromIntUnchecked(i int) Plain[N] {
	return Plain[N]{v: N(i), ok: true}
}

// Nil returns the empty link, which is also the zero value.
func (Plain[N]) Nil() Plain[N] { return Plain[N]{} }

// Get returns the encoded position, or false for the empty link.
func (p Plain[N]) Get() (int, bool) { return int(p.v), p.ok }

// NonMax is an Index over any native integer type that gives up the type's
// maximum value so the empty link fits into the integer itself: a link
// costs exactly unsafe.Sizeof(N) bytes with no separate presence flag.
// Max is therefore one less than Plain[N]'s; over the shared range the two
// behave identically.
//
// Positions are stored offset by one, which makes the zero value of NonMax
// the empty link and leaves the type's maximum bit pattern unrepresentable
// as a position.
type NonMax[N constraints.Integer] struct {
	v N
}

// Max returns the largest encodable position.
func (NonMax[N]) Max() int { return typeMax[N]() - 1 }

// FromInt encodes a position, or fails with a *RangeError.
func (NonMax[N]) FromInt(i int) (NonMax[N], error) {
	if i < 0 || i > typeMax[N]()-1 {
		return NonMax[N]{}, &RangeError{Pos: i, Max: typeMax[N]() - 1}
	}
	return NonMax[N]{v: N(i) + 1}, nil
}

// FromIntUnchecked encodes a position the caller guarantees is in
// [0, Max].
func (NonMax[N]) FromIntUnchecked(i int) NonMax[N] {
	return NonMax[N]{v: N(i) + 1}
}

// Nil returns the empty link, which is also the zero value.
func (NonMax[N]) Nil() NonMax[N] { return NonMax[N]{} }

// Get returns the encoded position, or false for the empty link.
func (x NonMax[N]) Get() (int, bool) {
	if x.v == 0 {
		return 0, false
	}
	return int(x.v - 1), true
}
