package types

import (
	"github.com/pkg/errors"

	"github.com/protolambda/tssz/bitfields"
	"github.com/protolambda/tssz/enc"
	"github.com/protolambda/tssz/htr"
	"github.com/protolambda/tssz/lists"
	"github.com/protolambda/tssz/merkle"
)

// Bitlist is a variable-length sequence of at most N bits.
// It is encoded with a delimiter bit after the last data bit.
type Bitlist[N lists.Limit] struct {
	// data bits only, unused bits of the last byte are zero.
	data []byte
	n    uint64
}

var _ bitfields.Bitfield = (*Bitlist[lists.N8])(nil)

func NewBitlist[N lists.Limit](bits ...bool) (Bitlist[N], error) {
	var out Bitlist[N]
	for _, b := range bits {
		if err := out.Append(b); err != nil {
			return Bitlist[N]{}, err
		}
	}
	return out, nil
}

func (b *Bitlist[N]) Limit() uint64 {
	var n N
	return n.Limit()
}

func (b *Bitlist[N]) BitLen() uint64 {
	return b.n
}

// Get returns bit i, i must be less than BitLen.
func (b *Bitlist[N]) Get(i uint64) bool {
	if i >= b.n {
		panic(errors.Wrapf(ErrIndexOutOfRange, "bit %d, length %d", i, b.n))
	}
	return bitfields.GetBit(b.data, i)
}

// Set changes bit i, i must be less than BitLen.
func (b *Bitlist[N]) Set(i uint64, v bool) {
	if i >= b.n {
		panic(errors.Wrapf(ErrIndexOutOfRange, "bit %d, length %d", i, b.n))
	}
	bitfields.SetBit(b.data, i, v)
}

// Append adds a bit at the end, if the bitlist is not full yet.
func (b *Bitlist[N]) Append(v bool) error {
	if limit := b.Limit(); b.n >= limit {
		return errors.Wrapf(ErrCapacityExceeded, "bitlist is full at %d bits", limit)
	}
	if b.n&7 == 0 {
		b.data = append(b.data, 0)
	}
	bitfields.SetBit(b.data, b.n, v)
	b.n++
	return nil
}

func (b *Bitlist[N]) IsVariableSize() bool {
	return true
}

func (b *Bitlist[N]) SizeHint() uint64 {
	return 0
}

func (b *Bitlist[N]) Serialize(buf []byte) ([]byte, error) {
	if limit := b.Limit(); b.n > limit {
		return buf, enc.IllegalTypeError(limit)
	}
	start := len(buf)
	buf = append(buf, b.data...)
	if b.n&7 == 0 {
		// the delimiter starts a new byte
		buf = append(buf, 1)
	} else {
		bitfields.SetBit(buf[start:], b.n, true)
	}
	return buf, nil
}

func (b *Bitlist[N]) Deserialize(data []byte) error {
	if err := bitfields.BitlistCheck(data, b.Limit()); err != nil {
		return err
	}
	n := bitfields.BitlistLen(data)
	var bits []byte
	if n > 0 {
		bits = bitfields.BitlistBits(data)
	}
	b.data, b.n = bits, n
	return nil
}

func (b *Bitlist[N]) HashTreeRoot(h *htr.Hasher) (htr.Node, error) {
	root, err := merkle.MerkleizeWithLimit(h, merkle.Pack(b.data), (b.Limit()+255)/256)
	if err != nil {
		return htr.Node{}, err
	}
	return h.MixInLength(root, b.n), nil
}
