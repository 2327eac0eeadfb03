package types

import (
	"github.com/pkg/errors"

	"github.com/protolambda/tssz/dec"
	"github.com/protolambda/tssz/enc"
	"github.com/protolambda/tssz/htr"
	"github.com/protolambda/tssz/lists"
)

// Vector is a sequence of exactly N elements of type T.
// The zero value holds N zero elements. A vector of length 0 cannot be encoded.
type Vector[T any, PT Element[T], N lists.Length] struct {
	// nil until the first element is set or decoded
	elems []T
}

// NewVector creates a vector of exactly N elements.
func NewVector[N lists.Length, T any, PT Element[T]](elems ...T) (Vector[T, PT, N], error) {
	var n N
	if uint64(len(elems)) != n.Length() {
		return Vector[T, PT, N]{}, errors.Errorf("vector needs %d elements, got %d", n.Length(), len(elems))
	}
	return Vector[T, PT, N]{elems: append([]T(nil), elems...)}, nil
}

// MustVector is NewVector, panicking on a length mismatch.
func MustVector[N lists.Length, T any, PT Element[T]](elems ...T) Vector[T, PT, N] {
	v, err := NewVector[N, T, PT](elems...)
	if err != nil {
		panic(err)
	}
	return v
}

func (v *Vector[T, PT, N]) Len() uint64 {
	var n N
	return n.Length()
}

func (v *Vector[T, PT, N]) values() []T {
	if v.elems == nil {
		return make([]T, v.Len())
	}
	return v.elems
}

func (v *Vector[T, PT, N]) At(i uint64) (T, error) {
	if i >= v.Len() {
		var zero T
		return zero, errors.Wrapf(ErrIndexOutOfRange, "index %d, length %d", i, v.Len())
	}
	if v.elems == nil {
		var zero T
		return zero, nil
	}
	return v.elems[i], nil
}

func (v *Vector[T, PT, N]) Set(i uint64, x T) error {
	if i >= v.Len() {
		return errors.Wrapf(ErrIndexOutOfRange, "index %d, length %d", i, v.Len())
	}
	if v.elems == nil {
		v.elems = make([]T, v.Len())
	}
	v.elems[i] = x
	return nil
}

// Elems returns a copy of the N elements.
func (v *Vector[T, PT, N]) Elems() []T {
	return append([]T(nil), v.values()...)
}

func (v *Vector[T, PT, N]) IsVariableSize() bool {
	return elemInfo[T, PT]().IsVariableSize()
}

func (v *Vector[T, PT, N]) SizeHint() uint64 {
	elem := elemInfo[T, PT]()
	if elem.IsVariableSize() {
		return 0
	}
	return v.Len() * elem.SizeHint()
}

func (v *Vector[T, PT, N]) Serialize(buf []byte) ([]byte, error) {
	if v.Len() == 0 {
		return buf, enc.IllegalTypeError(0)
	}
	return serializeSeries[T, PT](buf, v.values())
}

func (v *Vector[T, PT, N]) Deserialize(data []byte) error {
	n := v.Len()
	if n == 0 {
		return dec.IllegalTypeError(0)
	}
	elem := elemInfo[T, PT]()
	var spans [][]byte
	var err error
	if elem.IsVariableSize() {
		var count uint64
		if count, err = dec.VariableSeriesLen(data); err != nil {
			return err
		}
		if count < n {
			return dec.InputTooShortError()
		}
		if count > n {
			return dec.ExtraInputError()
		}
		spans, err = dec.VariableSeries(data)
	} else {
		size := uint64(len(data))
		if expected := n * elem.SizeHint(); size < expected {
			return dec.InputTooShortError()
		} else if size > expected {
			return dec.ExtraInputError()
		}
		spans, err = dec.FixedSeries(data, elem.SizeHint())
	}
	if err != nil {
		return err
	}
	elems, err := decodeElements[T, PT](spans)
	if err != nil {
		return err
	}
	v.elems = elems
	return nil
}

func (v *Vector[T, PT, N]) HashTreeRoot(h *htr.Hasher) (htr.Node, error) {
	if v.Len() == 0 {
		return htr.Node{}, htr.InvalidInputError("vector of length 0")
	}
	return seriesRoot[T, PT](h, v.values(), v.Len())
}
