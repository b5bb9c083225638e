package bitset

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// String renders b as "[size]{bits}", lowest index first, with a space
// between words.
func (b *BitSet) String() string {
	var sb strings.Builder
	sb.Grow(int(b.size) + b.words.Len() + 16)
	sb.WriteString("[")
	sb.WriteString(strconv.FormatUint(uint64(b.size), 10))
	sb.WriteString("]{")
	for i, v := range b.All() {
		if i != 0 && i%blockSize == 0 {
			sb.WriteByte(' ')
		}
		if v {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	sb.WriteString("}")
	return sb.String()
}

// Parse reads a bit set from a string of '0' and '1' characters, lowest index
// first. Spaces and underscores are ignored. The "[size]{bits}" form produced
// by String is accepted too, in which case size must match the bit count.
func Parse(literal string) (*BitSet, error) {
	body := strings.TrimSpace(literal)
	declared := int64(-1)
	if strings.HasPrefix(body, "[") {
		end := strings.Index(body, "]")
		if end < 0 {
			return nil, errors.Wrapf(ErrInvalidLiteral, "unterminated size in %q", literal)
		}
		n, err := strconv.ParseUint(body[1:end], 10, 32)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidLiteral, "size %q: %v", body[1:end], err)
		}
		declared = int64(n)
		body = body[end+1:]
		if !strings.HasPrefix(body, "{") || !strings.HasSuffix(body, "}") {
			return nil, errors.Wrapf(ErrInvalidLiteral, "missing braces in %q", literal)
		}
		body = body[1 : len(body)-1]
	}

	values := make([]bool, 0, len(body))
	for i, c := range body {
		switch c {
		case '0':
			values = append(values, false)
		case '1':
			values = append(values, true)
		case ' ', '_', '\t':
		default:
			return nil, errors.Wrapf(ErrInvalidLiteral, "unexpected %q at offset %v", c, i)
		}
	}
	if declared >= 0 && declared != int64(len(values)) {
		return nil, errors.Wrapf(ErrInvalidLiteral, "declared size %v, got %v bits", declared, len(values))
	}
	if uint64(len(values)) > uint64(^uint32(0)) {
		return nil, errors.Wrapf(ErrInvalidLiteral, "%v bits exceed the maximum size", len(values))
	}
	return FromBools(values...), nil
}
