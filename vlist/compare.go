package vlist

import "cmp"

// Equal reports whether a and b hold the same logical sequence, comparing
// element-wise with ==. Float lists holding NaN at the same position
// compare unequal, matching == on the elements.
func Equal[T comparable, I Index[I]](a, b *List[T, I]) bool {
	if a.Len() != b.Len() {
		return false
	}
	ia, ib := a.Iter(), b.Iter()
	for {
		va, ok := ia.Next()
		if !ok {
			return true
		}
		vb, _ := ib.Next()
		if va != vb {
			return false
		}
	}
}

// Compare orders a and b lexicographically by logical sequence, breaking
// ties by length. The boolean is false when some pair of elements is
// mutually incomparable (IEEE-754 NaN on either side); no ordering holds
// between the lists then and the int is meaningless.
func Compare[T cmp.Ordered, I Index[I]](a, b *List[T, I]) (int, bool) {
	ia, ib := a.Iter(), b.Iter()
	for {
		va, oka := ia.Next()
		vb, okb := ib.Next()
		switch {
		case !oka && !okb:
			return 0, true
		case !oka:
			return -1, true
		case !okb:
			return 1, true
		case va < vb:
			return -1, true
		case vb < va:
			return 1, true
		case va != vb:
			// Neither orders below the other and they are not equal:
			// at least one side is NaN.
			return 0, false
		}
	}
}

// Contains reports whether v occurs in the list.
func Contains[T comparable, I Index[I]](l *List[T, I], v T) bool {
	for x := range l.Values() {
		if x == v {
			return true
		}
	}
	return false
}
