package bitset

import (
	"github.com/pkg/errors"
)

var (
	// ErrOutOfBounds is returned when an index, after negative-index
	// normalization, falls outside [0, Size()), or when an invalid iterator
	// position is read or written.
	ErrOutOfBounds = errors.New("bitset: index out of bounds")

	// ErrUnsupportedOperation is returned when a mutable reference to a single
	// bit is requested. Packed bits are not addressable memory.
	ErrUnsupportedOperation = errors.New("bitset: unsupported operation")

	// ErrInvalidLiteral is returned by Parse for malformed input.
	ErrInvalidLiteral = errors.New("bitset: invalid literal")
)

func outOfBounds(index int64, size uint32) error {
	return errors.Wrapf(ErrOutOfBounds, "index %v with size %v", index, size)
}
