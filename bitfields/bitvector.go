package bitfields

import "github.com/protolambda/tssz/dec"

// BitvectorCheck checks if b can have the given length n in bits.
// It checks if:
//  1. b has the same amount of bytes as necessary for n bits.
//  2. unused bits in b are 0
func BitvectorCheck(b []byte, n uint64) error {
	byteLen := uint64(len(b))
	expected := (n + 7) >> 3
	if byteLen < expected {
		return dec.InputTooShortError()
	}
	if byteLen > expected {
		return dec.ExtraInputError()
	}
	if n&7 == 0 { // n is a multiple of 8, so last byte fits
		return nil
	}
	last := b[byteLen-1]
	if (last >> (n & 7)) != 0 {
		return dec.InvalidByteError(last)
	}
	return nil
}
