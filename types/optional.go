package types

import (
	"github.com/protolambda/tssz/dec"
	"github.com/protolambda/tssz/htr"
)

// Optional is a union of None and T: selector 0 without a value, or selector 1 with one.
// The zero value is None.
type Optional[T any, PT Element[T]] struct {
	value *T
}

func Some[T any, PT Element[T]](v T) Optional[T, PT] {
	return Optional[T, PT]{value: &v}
}

func (o *Optional[T, PT]) IsSome() bool {
	return o.value != nil
}

// Get returns the value, and whether there is one.
func (o *Optional[T, PT]) Get() (T, bool) {
	if o.value == nil {
		var zero T
		return zero, false
	}
	return *o.value, true
}

func (o *Optional[T, PT]) Clear() {
	o.value = nil
}

func (o *Optional[T, PT]) IsVariableSize() bool {
	return true
}

func (o *Optional[T, PT]) SizeHint() uint64 {
	return 0
}

func (o *Optional[T, PT]) Serialize(buf []byte) ([]byte, error) {
	if o.value == nil {
		return append(buf, 0), nil
	}
	out, err := PT(o.value).Serialize(append(buf, 1))
	if err != nil {
		return buf, err
	}
	return out, nil
}

func (o *Optional[T, PT]) Deserialize(data []byte) error {
	if len(data) == 0 {
		return dec.ExpectedFurtherInputError(0, 1)
	}
	switch data[0] {
	case 0:
		if len(data) > 1 {
			return dec.AdditionalInputError(uint64(len(data)), 1)
		}
		o.value = nil
	case 1:
		v := new(T)
		if err := PT(v).Deserialize(data[1:]); err != nil {
			return err
		}
		o.value = v
	default:
		return dec.InvalidByteError(data[0])
	}
	return nil
}

func (o *Optional[T, PT]) HashTreeRoot(h *htr.Hasher) (htr.Node, error) {
	if o.value == nil {
		return h.MixInSelector(htr.Node{}, 0), nil
	}
	root, err := PT(o.value).HashTreeRoot(h)
	if err != nil {
		return htr.Node{}, err
	}
	return h.MixInSelector(root, 1), nil
}
