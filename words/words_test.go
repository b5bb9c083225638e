package words

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmpty(t *testing.T) {
	a := Array{}
	a2 := New(0)
	assert.Equal(t, 0, a.Len())
	assert.Equal(t, 0, a2.Len())
	assert.True(t, a.Equal(a2))
}

func TestNewIsZeroed(t *testing.T) {
	a := New(5)
	require.Equal(t, 5, a.Len())
	for i := 0; i < a.Len(); i++ {
		assert.Equal(t, uint64(0), a.Get(i), "word %v", i)
	}
}

func TestGetSet(t *testing.T) {
	a := New(3)
	a.Set(0, 1)
	a.Set(2, math.MaxUint64)
	assert.Equal(t, uint64(1), a.Get(0))
	assert.Equal(t, uint64(0), a.Get(1))
	assert.Equal(t, uint64(math.MaxUint64), a.Get(2))
}

func TestOutOfRangePanics(t *testing.T) {
	tests := map[string]struct {
		len   int
		index int
	}{
		"empty":    {0, 0},
		"past_end": {2, 2},
		"negative": {2, -1},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			a := New(tc.len)
			assert.Panics(t, func() { a.Get(tc.index) })
			assert.Panics(t, func() { a.Set(tc.index, 1) })
		})
	}
}

func TestCloneIsDeep(t *testing.T) {
	a := FromUint64(1, 2, 3)
	b := a.Clone()
	b.Set(1, 42)
	assert.Equal(t, uint64(2), a.Get(1))
	assert.Equal(t, uint64(42), b.Get(1))
	assert.False(t, a.Equal(b))
}

func TestFromUint64Copies(t *testing.T) {
	src := []uint64{7, 8}
	a := FromUint64(src...)
	src[0] = 0
	assert.Equal(t, uint64(7), a.Get(0))
}

func TestCopyFrom(t *testing.T) {
	tests := map[string]struct {
		dst      Array
		src      Array
		copied   int
		expected Array
	}{
		"same_len":  {New(2), FromUint64(1, 2), 2, FromUint64(1, 2)},
		"short_src": {New(3), FromUint64(1), 1, FromUint64(1, 0, 0)},
		"short_dst": {New(1), FromUint64(1, 2, 3), 1, FromUint64(1)},
		"empty_src": {FromUint64(5), Array{}, 0, FromUint64(5)},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			n := tc.dst.CopyFrom(tc.src)
			assert.Equal(t, tc.copied, n)
			assert.True(t, tc.expected.Equal(tc.dst))
		})
	}
}

func TestEqual(t *testing.T) {
	assert.True(t, FromUint64(1, 2).Equal(FromUint64(1, 2)))
	assert.False(t, FromUint64(1, 2).Equal(FromUint64(1, 3)))
	assert.False(t, FromUint64(1, 2).Equal(FromUint64(1, 2, 0)))
}

func TestMove(t *testing.T) {
	a := FromUint64(9, 10)
	b := a.Move()
	assert.Equal(t, 0, a.Len())
	assert.Equal(t, 2, b.Len())
	assert.Equal(t, uint64(10), b.Get(1))
}
