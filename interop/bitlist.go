package interop

import (
	"github.com/astef/bitset"
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/go-bitfield"
)

// ToBitlist returns a length-prefixed bitfield.Bitlist of the same length and bits.
func ToBitlist(bs *bitset.BitSet) bitfield.Bitlist {
	bl := bitfield.NewBitlist(uint64(bs.Size()))
	for _, i := range setIndices(bs) {
		bl.SetBitAt(uint64(i), true)
	}
	return bl
}

// FromBitlist returns a bit set of bl.Len() bits.
func FromBitlist(bl bitfield.Bitlist) (*bitset.BitSet, error) {
	if len(bl) == 0 {
		return nil, errors.Wrap(bitset.ErrInvalidLiteral, "bitlist without length bit")
	}
	n := bl.Len()
	if n > uint64(^uint32(0)) {
		return nil, errors.Wrapf(bitset.ErrOutOfBounds, "length %v exceeds the maximum size", n)
	}
	bs := bitset.New(uint32(n))
	for i := uint64(0); i < n; i++ {
		if !bl.BitAt(i) {
			continue
		}
		if err := bs.Set(int64(i), true); err != nil {
			return nil, err
		}
	}
	return bs, nil
}
