package words

import (
	"fmt"
)

// Size is the width of a stored word in bits.
const Size = 64

// Array is a fixed-length sequence of 64-bit words. The zero value is an
// empty array. Copying an Array value shares storage; use Clone for a deep copy.
type Array struct {
	store []uint64
}

// New returns an array of n zeroed words.
func New(n int) Array {
	if n < 0 {
		panic(fmt.Sprintf("negative word count (n=%v)", n))
	}
	return Array{store: make([]uint64, n)}
}

// FromUint64 returns an array holding a copy of values.
func FromUint64(values ...uint64) Array {
	store := make([]uint64, len(values))
	copy(store, values)
	return Array{store: store}
}

func (a Array) Len() int {
	return len(a.store)
}

func (a Array) Get(index int) uint64 {
	checkBounds(len(a.store), index)
	return a.store[index]
}

func (a Array) Set(index int, word uint64) {
	checkBounds(len(a.store), index)
	a.store[index] = word
}

// Clone returns a deep copy.
func (a Array) Clone() Array {
	return FromUint64(a.store...)
}

// CopyFrom copies min(a.Len(), src.Len()) leading words of src into a and
// returns the number of words copied.
func (a Array) CopyFrom(src Array) int {
	return copy(a.store, src.store)
}

// Equal reports whether both arrays have the same length and the same words.
func (a Array) Equal(other Array) bool {
	if len(a.store) != len(other.store) {
		return false
	}
	for i, w := range a.store {
		if other.store[i] != w {
			return false
		}
	}
	return true
}

// Move hands the storage over to the returned array and leaves a empty.
func (a *Array) Move() Array {
	moved := Array{store: a.store}
	a.store = nil
	return moved
}

func checkBounds(len int, index int) {
	if index < 0 || index >= len {
		panic(fmt.Sprintf("word index out of range (len=%v, index=%v)", len, index))
	}
}
