package types

import (
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	"lukechampine.com/uint128"

	"github.com/protolambda/tssz/htr"
)

// Uint128 is a 128 bit unsigned integer, encoded as 16 little-endian bytes.
type Uint128 uint128.Uint128

func NewUint128(lo, hi uint64) Uint128 {
	return Uint128(uint128.New(lo, hi))
}

func Uint128FromDecimal(s string) (Uint128, error) {
	v, err := uint128.FromString(s)
	if err != nil {
		return Uint128{}, errors.Wrapf(err, "invalid uint128 %q", s)
	}
	return Uint128(v), nil
}

func (Uint128) isBasic() {}

func (Uint128) IsVariableSize() bool {
	return false
}

func (Uint128) SizeHint() uint64 {
	return 16
}

func (v Uint128) Serialize(buf []byte) ([]byte, error) {
	var out [16]byte
	uint128.Uint128(v).PutBytes(out[:])
	return append(buf, out[:]...), nil
}

func (v *Uint128) Deserialize(data []byte) error {
	if err := checkFixedSize(data, 16); err != nil {
		return err
	}
	*v = Uint128(uint128.FromBytes(data))
	return nil
}

func (v Uint128) HashTreeRoot(h *htr.Hasher) (out htr.Node, err error) {
	uint128.Uint128(v).PutBytes(out[:16])
	return
}

func (v Uint128) String() string {
	return uint128.Uint128(v).String()
}

// Uint256 is a 256 bit unsigned integer, encoded as 32 little-endian bytes.
// Arithmetic is done by converting to a *uint256.Int, see Int.
type Uint256 uint256.Int

func NewUint256(v uint64) Uint256 {
	return Uint256(*uint256.NewInt(v))
}

func Uint256FromDecimal(s string) (Uint256, error) {
	v, err := uint256.FromDecimal(s)
	if err != nil {
		return Uint256{}, errors.Wrapf(err, "invalid uint256 %q", s)
	}
	return Uint256(*v), nil
}

// Int returns a copy of the value as *uint256.Int.
func (v Uint256) Int() *uint256.Int {
	x := uint256.Int(v)
	return &x
}

func (Uint256) isBasic() {}

func (Uint256) IsVariableSize() bool {
	return false
}

func (Uint256) SizeHint() uint64 {
	return 32
}

func (v Uint256) Serialize(buf []byte) ([]byte, error) {
	return v.Int().MarshalSSZAppend(buf)
}

func (v *Uint256) Deserialize(data []byte) error {
	if err := checkFixedSize(data, 32); err != nil {
		return err
	}
	return (*uint256.Int)(v).UnmarshalSSZ(data)
}

// A uint256 fills exactly one chunk, the root is the encoding itself.
func (v Uint256) HashTreeRoot(h *htr.Hasher) (htr.Node, error) {
	return v.Int().HashTreeRoot()
}

func (v Uint256) String() string {
	return v.Int().Dec()
}
