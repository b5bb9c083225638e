package bitset

import (
	"github.com/astef/bitset/words"
)

const blockSize = words.Size

const allBits = ^uint64(0)

// bitAddress locates a logical bit inside the word storage.
type bitAddress struct {
	word   uint32
	offset uint
}

func addressOf(index uint32) bitAddress {
	return bitAddress{word: index / blockSize, offset: uint(index % blockSize)}
}

func (a bitAddress) index() uint32 {
	return a.word*blockSize + uint32(a.offset)
}

func getBit(word uint64, offset uint) bool {
	return word&(uint64(1)<<offset) != 0
}

func setBit(word uint64, offset uint) uint64 {
	return word | uint64(1)<<offset
}

func clearBit(word uint64, offset uint) uint64 {
	return word &^ (uint64(1) << offset)
}

func writeBit(word uint64, offset uint, value bool) uint64 {
	if value {
		return setBit(word, offset)
	}
	return clearBit(word, offset)
}

// clearBitsFrom clears every bit at position >= offset. An offset of
// blockSize or more keeps the whole word.
func clearBitsFrom(word uint64, offset uint) uint64 {
	if offset >= blockSize {
		return word
	}
	return word & (uint64(1)<<offset - 1)
}

func wordsFor(size uint32) int {
	return int((uint64(size) + blockSize - 1) / blockSize)
}

// tailOffset is the number of meaningful bits in the last of wordCount words
// for a logical size. It is blockSize when size ends on a word boundary.
func tailOffset(size uint32, wordCount int) uint {
	if wordCount == 0 {
		return blockSize
	}
	return uint(uint64(size) - uint64(wordCount-1)*blockSize)
}
