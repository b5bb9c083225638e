package interop

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/astef/bitset"
	"github.com/pkg/errors"
)

// ToRoaring returns a roaring bitmap holding the indices of the set bits of bs.
// The logical size is not carried over.
func ToRoaring(bs *bitset.BitSet) *roaring.Bitmap {
	rb := roaring.New()
	rb.AddMany(setIndices(bs))
	return rb
}

// FromRoaring returns a bit set of size bits with every index of rb set. It
// fails with bitset.ErrOutOfBounds when rb holds an index >= size.
func FromRoaring(rb *roaring.Bitmap, size uint32) (*bitset.BitSet, error) {
	if !rb.IsEmpty() && rb.Maximum() >= size {
		return nil, errors.Wrapf(bitset.ErrOutOfBounds, "roaring maximum %v with size %v", rb.Maximum(), size)
	}
	bs := bitset.New(size)
	it := rb.Iterator()
	for it.HasNext() {
		if err := bs.Set(int64(it.Next()), true); err != nil {
			return nil, err
		}
	}
	return bs, nil
}

func setIndices(bs *bitset.BitSet) []uint32 {
	indices := make([]uint32, 0, bs.Count())
	for i, v := range bs.All() {
		if v {
			indices = append(indices, i)
		}
	}
	return indices
}
