package types

import (
	"github.com/pkg/errors"

	"github.com/protolambda/tssz/bitfields"
	"github.com/protolambda/tssz/dec"
	"github.com/protolambda/tssz/enc"
	"github.com/protolambda/tssz/htr"
	"github.com/protolambda/tssz/lists"
	"github.com/protolambda/tssz/merkle"
)

// Bitvector is a sequence of exactly N bits, packed into (N+7)/8 bytes.
// The zero value has all bits unset.
type Bitvector[N lists.Length] struct {
	data []byte
}

var _ bitfields.Bitfield = (*Bitvector[lists.N8])(nil)

func NewBitvector[N lists.Length](bits ...bool) (Bitvector[N], error) {
	var out Bitvector[N]
	if n := out.BitLen(); uint64(len(bits)) != n {
		return Bitvector[N]{}, errors.Errorf("bitvector needs %d bits, got %d", n, len(bits))
	}
	for i, v := range bits {
		out.Set(uint64(i), v)
	}
	return out, nil
}

func (b *Bitvector[N]) BitLen() uint64 {
	var n N
	return n.Length()
}

func (b *Bitvector[N]) bytes() []byte {
	if b.data == nil {
		return make([]byte, (b.BitLen()+7)>>3)
	}
	return b.data
}

// Get returns bit i, i must be less than N.
func (b *Bitvector[N]) Get(i uint64) bool {
	if i >= b.BitLen() {
		panic(errors.Wrapf(ErrIndexOutOfRange, "bit %d, length %d", i, b.BitLen()))
	}
	return bitfields.GetBit(b.bytes(), i)
}

// Set changes bit i, i must be less than N.
func (b *Bitvector[N]) Set(i uint64, v bool) {
	if i >= b.BitLen() {
		panic(errors.Wrapf(ErrIndexOutOfRange, "bit %d, length %d", i, b.BitLen()))
	}
	if b.data == nil {
		b.data = b.bytes()
	}
	bitfields.SetBit(b.data, i, v)
}

func (b *Bitvector[N]) IsVariableSize() bool {
	return false
}

func (b *Bitvector[N]) SizeHint() uint64 {
	return (b.BitLen() + 7) >> 3
}

func (b *Bitvector[N]) Serialize(buf []byte) ([]byte, error) {
	if b.BitLen() == 0 {
		return buf, enc.IllegalTypeError(0)
	}
	return append(buf, b.bytes()...), nil
}

func (b *Bitvector[N]) Deserialize(data []byte) error {
	n := b.BitLen()
	if n == 0 {
		return dec.IllegalTypeError(0)
	}
	if err := bitfields.BitvectorCheck(data, n); err != nil {
		return err
	}
	b.data = append([]byte(nil), data...)
	return nil
}

func (b *Bitvector[N]) HashTreeRoot(h *htr.Hasher) (htr.Node, error) {
	n := b.BitLen()
	if n == 0 {
		return htr.Node{}, htr.InvalidInputError("bitvector of length 0")
	}
	return merkle.MerkleizeWithLimit(h, merkle.Pack(b.bytes()), (n+255)/256)
}
