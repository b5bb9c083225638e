package interop

import (
	"github.com/astef/bitset"
	bb "github.com/bits-and-blooms/bitset"
	"github.com/pkg/errors"
)

// ToBitsAndBlooms returns a bits-and-blooms bit set of the same length and bits.
func ToBitsAndBlooms(bs *bitset.BitSet) *bb.BitSet {
	out := bb.New(uint(bs.Size()))
	for _, i := range setIndices(bs) {
		out.Set(uint(i))
	}
	return out
}

// FromBitsAndBlooms returns a bit set of src.Len() bits. Lengths that do not
// fit in 32 bits fail with bitset.ErrOutOfBounds.
func FromBitsAndBlooms(src *bb.BitSet) (*bitset.BitSet, error) {
	if uint64(src.Len()) > uint64(^uint32(0)) {
		return nil, errors.Wrapf(bitset.ErrOutOfBounds, "length %v exceeds the maximum size", src.Len())
	}
	bs := bitset.New(uint32(src.Len()))
	for i, ok := src.NextSet(0); ok && i < src.Len(); i, ok = src.NextSet(i + 1) {
		if err := bs.Set(int64(i), true); err != nil {
			return nil, err
		}
	}
	return bs, nil
}
