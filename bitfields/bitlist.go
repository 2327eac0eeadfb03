package bitfields

import (
	"github.com/protolambda/tssz/dec"
)

// BitlistLen returns the length in bits of a raw bitlist, excluding the delimiter bit.
// And although strictly speaking invalid, a sane default is returned for:
//   - an empty raw bitlist: a default 0 bitlist will be of length 0 too.
//   - a bitlist with a leading 0 byte: return the bitlist raw bit length,
//     excluding the last byte (As if it was full 0 padding).
func BitlistLen(b []byte) uint64 {
	byteLen := uint64(len(b))
	if byteLen == 0 {
		return 0
	}
	last := b[byteLen-1]
	return ((byteLen - 1) << 3) | BitIndex(last)
}

// BitlistCheck checks if raw bitlist b is valid, and holds no more than limit bits.
// It checks if:
//  0. the raw bitlist is not empty, there must be a 1 bit to determine the length.
//  1. the bitlist has a leading 1 bit in the last byte to determine the length with.
//  2. the length in bits is within the limit.
func BitlistCheck(b []byte, limit uint64) error {
	byteLen := uint64(len(b))
	if byteLen == 0 {
		return dec.ExpectedFurtherInputError(0, 1)
	}
	// quick check before looking at the bits
	if maxBytes := (limit >> 3) + 1; byteLen > maxBytes {
		return dec.AdditionalInputError(byteLen, maxBytes)
	}
	last := b[byteLen-1]
	if last == 0 {
		return dec.InvalidByteError(last)
	}
	if n := BitlistLen(b); n > limit {
		return dec.BoundExceededError(n, limit)
	}
	return nil
}

// BitlistBits returns a copy of the bits of a valid raw bitlist, with the delimiter bit removed,
// and trailing zero bytes trimmed.
func BitlistBits(b []byte) []byte {
	n := BitlistLen(b)
	out := make([]byte, (n+7)>>3)
	copy(out, b)
	if n&7 != 0 {
		// clear the delimiter bit, if it shares the byte with data.
		out[len(out)-1] &^= byte(1) << (n & 7)
	}
	return out
}
