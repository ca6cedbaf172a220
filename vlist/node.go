package vlist

// node is one physical slot of a List. Nodes only ever live inside the
// owning list's backing slice; next and prev address other slots of that
// same slice, in the encoding of the index type.
//
// With a NonMax index the slot is as small as it looks: payload plus two
// bare integers. node[int64, NonMax[uint32]] is 16 bytes, which the layout
// test pins down.
type node[T any, I Index[I]] struct {
	payload T
	next    I
	prev    I
}
