package types

import (
	"encoding/binary"
	"strconv"

	"github.com/protolambda/tssz/dec"
	"github.com/protolambda/tssz/htr"
)

// checkFixedSize verifies data is exactly the size of a fixed-size basic value.
func checkFixedSize(data []byte, size uint64) error {
	if n := uint64(len(data)); n < size {
		return dec.ExpectedFurtherInputError(n, size)
	} else if n > size {
		return dec.AdditionalInputError(n, size)
	}
	return nil
}

type Uint8 uint8

func (Uint8) isBasic() {}

func (Uint8) IsVariableSize() bool {
	return false
}

func (Uint8) SizeHint() uint64 {
	return 1
}

func (v Uint8) Serialize(buf []byte) ([]byte, error) {
	return append(buf, byte(v)), nil
}

func (v *Uint8) Deserialize(data []byte) error {
	if err := checkFixedSize(data, 1); err != nil {
		return err
	}
	*v = Uint8(data[0])
	return nil
}

func (v Uint8) HashTreeRoot(h *htr.Hasher) (out htr.Node, err error) {
	out[0] = byte(v)
	return
}

func (v Uint8) String() string {
	return strconv.FormatUint(uint64(v), 10)
}

type Uint16 uint16

func (Uint16) isBasic() {}

func (Uint16) IsVariableSize() bool {
	return false
}

func (Uint16) SizeHint() uint64 {
	return 2
}

func (v Uint16) Serialize(buf []byte) ([]byte, error) {
	return binary.LittleEndian.AppendUint16(buf, uint16(v)), nil
}

func (v *Uint16) Deserialize(data []byte) error {
	if err := checkFixedSize(data, 2); err != nil {
		return err
	}
	*v = Uint16(binary.LittleEndian.Uint16(data))
	return nil
}

func (v Uint16) HashTreeRoot(h *htr.Hasher) (out htr.Node, err error) {
	binary.LittleEndian.PutUint16(out[:2], uint16(v))
	return
}

func (v Uint16) String() string {
	return strconv.FormatUint(uint64(v), 10)
}

type Uint32 uint32

func (Uint32) isBasic() {}

func (Uint32) IsVariableSize() bool {
	return false
}

func (Uint32) SizeHint() uint64 {
	return 4
}

func (v Uint32) Serialize(buf []byte) ([]byte, error) {
	return binary.LittleEndian.AppendUint32(buf, uint32(v)), nil
}

func (v *Uint32) Deserialize(data []byte) error {
	if err := checkFixedSize(data, 4); err != nil {
		return err
	}
	*v = Uint32(binary.LittleEndian.Uint32(data))
	return nil
}

func (v Uint32) HashTreeRoot(h *htr.Hasher) (out htr.Node, err error) {
	binary.LittleEndian.PutUint32(out[:4], uint32(v))
	return
}

func (v Uint32) String() string {
	return strconv.FormatUint(uint64(v), 10)
}

type Uint64 uint64

func (Uint64) isBasic() {}

func (Uint64) IsVariableSize() bool {
	return false
}

func (Uint64) SizeHint() uint64 {
	return 8
}

func (v Uint64) Serialize(buf []byte) ([]byte, error) {
	return binary.LittleEndian.AppendUint64(buf, uint64(v)), nil
}

func (v *Uint64) Deserialize(data []byte) error {
	if err := checkFixedSize(data, 8); err != nil {
		return err
	}
	*v = Uint64(binary.LittleEndian.Uint64(data))
	return nil
}

func (v Uint64) HashTreeRoot(h *htr.Hasher) (out htr.Node, err error) {
	binary.LittleEndian.PutUint64(out[:8], uint64(v))
	return
}

func (v Uint64) String() string {
	return strconv.FormatUint(uint64(v), 10)
}
