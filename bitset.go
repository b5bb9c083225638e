package bitset

import (
	"iter"

	"github.com/astef/bitset/words"
)

// BitSet is a fixed-size sequence of bits packed into 64-bit words.
//
// Bits of the last word at positions beyond Size() are always zero, so whole
// words can be compared, counted and combined directly.
type BitSet struct {
	words words.Array
	size  uint32
}

// New returns a bit set of size bits, all cleared.
func New(size uint32) *BitSet {
	return &BitSet{words: words.New(wordsFor(size)), size: size}
}

// FromBools returns a bit set holding values in order.
func FromBools(values ...bool) *BitSet {
	b := New(uint32(len(values)))
	for i, v := range values {
		b.writeBit(addressOf(uint32(i)), v)
	}
	return b
}

// Size returns the number of addressable bits.
func (b *BitSet) Size() uint32 {
	return b.size
}

// Clone returns a deep copy of b.
func (b *BitSet) Clone() *BitSet {
	return &BitSet{words: b.words.Clone(), size: b.size}
}

// Move transfers the storage of b into a new bit set and leaves b empty.
func (b *BitSet) Move() *BitSet {
	moved := &BitSet{words: b.words.Move(), size: b.size}
	b.size = 0
	return moved
}

// Get returns the bit at index. Negative indices count back from the end,
// so Get(-1) is the last bit.
func (b *BitSet) Get(index int64) (bool, error) {
	i, err := b.normalize(index)
	if err != nil {
		return false, err
	}
	return b.getBit(addressOf(i)), nil
}

// Set writes the bit at index. Negative indices are resolved as in Get.
func (b *BitSet) Set(index int64, value bool) error {
	i, err := b.normalize(index)
	if err != nil {
		return err
	}
	b.writeBit(addressOf(i), value)
	return nil
}

// Index would return a mutable reference to a single bit, which packed
// storage cannot provide. It always fails with ErrUnsupportedOperation.
func (b *BitSet) Index(int64) (*bool, error) {
	return nil, ErrUnsupportedOperation
}

// Count returns the number of set bits.
func (b *BitSet) Count() uint32 {
	var count uint32
	for i := 0; i < b.words.Len(); i++ {
		w := b.words.Get(i)
		for w != 0 {
			w &= w - 1
			count++
		}
	}
	return count
}

// IndexOf returns the lowest index holding value, or Size() when there is none.
func (b *BitSet) IndexOf(value bool) uint32 {
	for i := uint32(0); i < b.size; i++ {
		if b.getBit(addressOf(i)) == value {
			return i
		}
	}
	return b.size
}

// Equal reports whether b and other have the same size and the same bits.
func (b *BitSet) Equal(other *BitSet) bool {
	if b == other {
		return true
	}
	return b.size == other.size && b.words.Equal(other.words)
}

// All yields every (index, bit) pair in ascending index order.
func (b *BitSet) All() iter.Seq2[uint32, bool] {
	return func(yield func(uint32, bool) bool) {
		for i := uint32(0); i < b.size; i++ {
			if !yield(i, b.getBit(addressOf(i))) {
				return
			}
		}
	}
}

// normalize resolves a possibly negative index against the size.
func (b *BitSet) normalize(index int64) (uint32, error) {
	resolved := index
	if resolved < 0 {
		resolved += int64(b.size)
	}
	if resolved < 0 || resolved >= int64(b.size) {
		return 0, outOfBounds(index, b.size)
	}
	return uint32(resolved), nil
}

func (b *BitSet) getBit(a bitAddress) bool {
	return getBit(b.words.Get(int(a.word)), a.offset)
}

func (b *BitSet) writeBit(a bitAddress, value bool) {
	w := int(a.word)
	b.words.Set(w, writeBit(b.words.Get(w), a.offset, value))
}

// trimTail re-establishes zero padding in the last word.
func (b *BitSet) trimTail() {
	n := b.words.Len()
	if n == 0 {
		return
	}
	b.words.Set(n-1, clearBitsFrom(b.words.Get(n-1), tailOffset(b.size, n)))
}
