package types

import (
	"github.com/protolambda/tssz/dec"
	"github.com/protolambda/tssz/htr"
)

type Bool bool

func (Bool) isBasic() {}

func (Bool) IsVariableSize() bool {
	return false
}

func (Bool) SizeHint() uint64 {
	return 1
}

func (v Bool) Serialize(buf []byte) ([]byte, error) {
	if v {
		return append(buf, 1), nil
	}
	return append(buf, 0), nil
}

func (v *Bool) Deserialize(data []byte) error {
	if err := checkFixedSize(data, 1); err != nil {
		return err
	}
	switch data[0] {
	case 0:
		*v = false
	case 1:
		*v = true
	default:
		return dec.InvalidByteError(data[0])
	}
	return nil
}

func (v Bool) HashTreeRoot(h *htr.Hasher) (out htr.Node, err error) {
	if v {
		out[0] = 1
	}
	return
}
