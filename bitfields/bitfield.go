package bitfields

// Bitfield is the common interface of bitlists and bitvectors.
type Bitfield interface {
	Get(i uint64) bool
	Set(i uint64, v bool)
	BitLen() uint64
}

// Get index of left-most 1 bit.
// 0 (incl.) to 8 (excl.)
func BitIndex(v byte) (out uint64) {
	if v&0b1111_0000 != 0 {
		out |= 4
		v >>= 4
	}
	if v&0b0000_1100 != 0 {
		out |= 2
		v >>= 2
	}
	if v&0b0000_0010 != 0 {
		out |= 1
	}
	return
}

// Assumes i is a valid bit-index to retrieve a bit from bytes b.
func GetBit(b []byte, i uint64) bool {
	return (b[i>>3]>>(i&7))&1 == 1
}

// Assumes i is a valid bit-index to set a bit within bytes b.
func SetBit(b []byte, i uint64, v bool) {
	if bit := byte(1) << (i & 7); v {
		b[i>>3] |= bit
	} else {
		b[i>>3] &^= bit
	}
}
