package vlist_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/plus3/linkvec/vlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexMax(t *testing.T) {
	assert.Equal(t, 127, vlist.Plain[int8]{}.Max())
	assert.Equal(t, 126, vlist.NonMax[int8]{}.Max())
	assert.Equal(t, 255, vlist.Plain[uint8]{}.Max())
	assert.Equal(t, 254, vlist.NonMax[uint8]{}.Max())
	assert.Equal(t, 32767, vlist.Plain[int16]{}.Max())
	assert.Equal(t, 65535, vlist.Plain[uint16]{}.Max())

	// Wider than the position counter: clamped to what an int can count.
	assert.Equal(t, math.MaxInt, vlist.Plain[uint64]{}.Max())
	assert.Equal(t, math.MaxInt, vlist.Plain[int]{}.Max())
}

func roundTrip[I vlist.Index[I]](t *testing.T) {
	var z I
	max := z.Max()

	for _, pos := range []int{0, 1, max / 2, max - 1, max} {
		enc, err := z.FromInt(pos)
		require.NoError(t, err)
		got, ok := enc.Get()
		require.True(t, ok)
		require.Equal(t, pos, got)

		// The trusted path agrees with the checked path in range.
		require.Equal(t, enc, z.FromIntUnchecked(pos))
	}

	for _, pos := range []int{-1, max + 1} {
		_, err := z.FromInt(pos)
		require.Error(t, err)
		var re *vlist.RangeError
		require.ErrorAs(t, err, &re)
		require.Equal(t, pos, re.Pos)
		require.Equal(t, max, re.Max)
	}

	_, ok := z.Nil().Get()
	require.False(t, ok)
}

func TestIndexRoundTrip(t *testing.T) {
	t.Run("plain_int8", roundTrip[vlist.Plain[int8]])
	t.Run("plain_uint8", roundTrip[vlist.Plain[uint8]])
	t.Run("plain_uint16", roundTrip[vlist.Plain[uint16]])
	t.Run("plain_int64", roundTrip[vlist.Plain[int64]])
	t.Run("nonmax_int8", roundTrip[vlist.NonMax[int8]])
	t.Run("nonmax_uint8", roundTrip[vlist.NonMax[uint8]])
	t.Run("nonmax_uint32", roundTrip[vlist.NonMax[uint32]])
	t.Run("nonmax_uint64", roundTrip[vlist.NonMax[uint64]])
}

// Plain and NonMax must be observably identical over the range both can
// encode; NonMax differs only in layout and in losing the top position.
func TestPlainNonMaxEquivalence(t *testing.T) {
	var p vlist.Plain[uint8]
	var n vlist.NonMax[uint8]

	for pos := 0; pos <= n.Max(); pos++ {
		pe, perr := p.FromInt(pos)
		ne, nerr := n.FromInt(pos)
		require.NoError(t, perr)
		require.NoError(t, nerr)

		pv, pok := pe.Get()
		nv, nok := ne.Get()
		require.True(t, pok)
		require.True(t, nok)
		require.Equal(t, pv, nv)
	}

	_, err := p.FromInt(255)
	assert.NoError(t, err)
	_, err = n.FromInt(255)
	assert.Error(t, err)
}

func TestRangeErrorMessage(t *testing.T) {
	var z vlist.NonMax[uint8]
	_, err := z.FromInt(300)
	require.Error(t, err)
	assert.Equal(t, fmt.Sprintf("vlist: position %d out of index range [0, %d]", 300, 254), err.Error())
}
