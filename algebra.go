package bitset

// Resize returns a new bit set of newSize bits. Bits below min(Size(), newSize)
// keep their values and any added bits are cleared. b is not modified.
func (b *BitSet) Resize(newSize uint32) *BitSet {
	if newSize == b.size {
		return b.Clone()
	}

	nb := New(newSize)
	copied := nb.words.CopyFrom(b.words)
	if copied == 0 {
		return nb
	}
	// The last copied word may carry old bits past the new boundary.
	last := copied - 1
	nb.words.Set(last, clearBitsFrom(nb.words.Get(last), tailOffset(newSize, copied)))
	return nb
}

// InPlaceAnd intersects b with other and returns b. An operand of a different
// size is resized to Size() first, so the result always keeps b's size.
func (b *BitSet) InPlaceAnd(other *BitSet) *BitSet {
	return b.combine(other, func(l, r uint64) uint64 { return l & r })
}

// InPlaceOr unions other into b and returns b. Sizes are reconciled as in
// InPlaceAnd.
func (b *BitSet) InPlaceOr(other *BitSet) *BitSet {
	return b.combine(other, func(l, r uint64) uint64 { return l | r })
}

// InPlaceXor sets b to the symmetric difference of b and other and returns b.
// Sizes are reconciled as in InPlaceAnd.
func (b *BitSet) InPlaceXor(other *BitSet) *BitSet {
	return b.combine(other, func(l, r uint64) uint64 { return l ^ r })
}

func (b *BitSet) combine(other *BitSet, op func(l, r uint64) uint64) *BitSet {
	if other.size != b.size {
		other = other.Resize(b.size)
	}
	for i := 0; i < b.words.Len(); i++ {
		b.words.Set(i, op(b.words.Get(i), other.words.Get(i)))
	}
	return b
}

// And returns the intersection of l and r with the size of l.
func And(l, r *BitSet) *BitSet {
	return l.Clone().InPlaceAnd(r)
}

// Or returns the union of l and r with the size of l.
func Or(l, r *BitSet) *BitSet {
	return l.Clone().InPlaceOr(r)
}

// Xor returns the symmetric difference of l and r with the size of l.
func Xor(l, r *BitSet) *BitSet {
	return l.Clone().InPlaceXor(r)
}

// Not returns the complement of b.
func Not(b *BitSet) *BitSet {
	nb := b.Clone()
	for i := 0; i < nb.words.Len(); i++ {
		nb.words.Set(i, nb.words.Get(i)^allBits)
	}
	nb.trimTail()
	return nb
}
