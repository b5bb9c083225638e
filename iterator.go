package bitset

// Cursor is a bidirectional position over a sequence of bits.
type Cursor interface {
	HasNext() bool
	HasPrev() bool
	Next()
	Prev()
	IsValid() bool
	Value() (bool, error)
	Set(value bool) error
}

var _ Cursor = (*Iterator)(nil)

// Iterator is a cursor over the bits of a BitSet. It crosses word boundaries
// transparently and is valid only below the owner's logical size, not up to
// the padded word capacity.
//
// An Iterator does not own storage and must not outlive its BitSet.
type Iterator struct {
	offset int64
	word   int64
	owner  *BitSet
}

// Begin returns a cursor at bit 0.
func (b *BitSet) Begin() *Iterator {
	return &Iterator{offset: 0, word: 0, owner: b}
}

// End returns a cursor at the last bit position of the last word. It is
// valid only when Size() fills that word exactly.
func (b *BitSet) End() *Iterator {
	return &Iterator{offset: blockSize - 1, word: int64(b.words.Len()) - 1, owner: b}
}

// Last returns a cursor at index Size()-1. For an empty set it sits before
// the first word and is not valid.
func (b *BitSet) Last() *Iterator {
	if b.size == 0 {
		return &Iterator{offset: blockSize - 1, word: -1, owner: b}
	}
	a := addressOf(b.size - 1)
	return &Iterator{offset: int64(a.offset), word: int64(a.word), owner: b}
}

func (it *Iterator) Clone() *Iterator {
	c := *it
	return &c
}

// Index returns the logical bit index of the cursor.
func (it *Iterator) Index() int64 {
	return it.word*blockSize + it.offset
}

func (it *Iterator) HasNext() bool {
	return it.word < int64(it.owner.words.Len())
}

func (it *Iterator) HasPrev() bool {
	return it.word >= 0
}

func (it *Iterator) Next() {
	if it.offset < blockSize-1 {
		it.offset++
		return
	}
	it.offset = 0
	it.word++
}

func (it *Iterator) Prev() {
	if it.offset > 0 {
		it.offset--
		return
	}
	it.offset = blockSize - 1
	it.word--
}

// NextCursor returns a clone moved one bit forward.
func (it *Iterator) NextCursor() (*Iterator, error) {
	if !it.IsValid() {
		return nil, outOfBounds(it.Index(), it.owner.size)
	}
	c := it.Clone()
	c.Next()
	return c, nil
}

// PrevCursor returns a clone moved one bit back.
func (it *Iterator) PrevCursor() (*Iterator, error) {
	if !it.IsValid() {
		return nil, outOfBounds(it.Index(), it.owner.size)
	}
	c := it.Clone()
	c.Prev()
	return c, nil
}

func (it *Iterator) IsValid() bool {
	return it.word >= 0 &&
		it.word < int64(it.owner.words.Len()) &&
		it.Index() < int64(it.owner.size)
}

// Value returns the bit under the cursor.
func (it *Iterator) Value() (bool, error) {
	if !it.IsValid() {
		return false, outOfBounds(it.Index(), it.owner.size)
	}
	return getBit(it.owner.words.Get(int(it.word)), uint(it.offset)), nil
}

// Ref always fails: a single packed bit has no address.
func (it *Iterator) Ref() (*bool, error) {
	return nil, ErrUnsupportedOperation
}

// Set writes the bit under the cursor into the owner.
func (it *Iterator) Set(value bool) error {
	if !it.IsValid() {
		return outOfBounds(it.Index(), it.owner.size)
	}
	w := int(it.word)
	it.owner.words.Set(w, writeBit(it.owner.words.Get(w), uint(it.offset), value))
	return nil
}

// Equal reports whether both cursors address the same position of the same set.
func (it *Iterator) Equal(other *Iterator) bool {
	return other != nil &&
		it.owner == other.owner &&
		it.word == other.word &&
		it.offset == other.offset
}

// AtPrev reports whether it sits immediately before other.
func (it *Iterator) AtPrev(other *Iterator) bool {
	if other == nil || it.owner != other.owner {
		return false
	}
	if it.word == other.word {
		return it.offset+1 == other.offset
	}
	return it.word+1 == other.word &&
		it.offset == blockSize-1 &&
		other.offset == 0
}

// AtNext reports whether it sits immediately after other.
func (it *Iterator) AtNext(other *Iterator) bool {
	return other != nil && other.AtPrev(it)
}
