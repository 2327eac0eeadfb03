package types

import (
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"

	"github.com/protolambda/tssz/htr"
)

// Root is a 32 byte hash tree root, encoded as-is.
type Root [32]byte

func (Root) IsVariableSize() bool {
	return false
}

func (Root) SizeHint() uint64 {
	return 32
}

func (r Root) Serialize(buf []byte) ([]byte, error) {
	return append(buf, r[:]...), nil
}

func (r *Root) Deserialize(data []byte) error {
	if err := checkFixedSize(data, 32); err != nil {
		return err
	}
	copy(r[:], data)
	return nil
}

func (r Root) HashTreeRoot(h *htr.Hasher) (htr.Node, error) {
	return htr.Node(r), nil
}

func (r Root) String() string {
	return hexutil.Encode(r[:])
}

func (r Root) MarshalText() ([]byte, error) {
	return hexutil.Bytes(r[:]).MarshalText()
}

func (r *Root) UnmarshalText(text []byte) error {
	var b hexutil.Bytes
	if err := b.UnmarshalText(text); err != nil {
		return err
	}
	if len(b) != 32 {
		return errors.Errorf("root must be 32 bytes, got %d", len(b))
	}
	copy(r[:], b)
	return nil
}
