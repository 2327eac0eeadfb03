package types

import (
	"github.com/pkg/errors"

	"github.com/protolambda/tssz/enc"
	"github.com/protolambda/tssz/htr"
	"github.com/protolambda/tssz/lists"
)

// List is a variable-length sequence of at most N elements of type T.
// The zero value is an empty list.
type List[T any, PT Element[T], N lists.Limit] struct {
	elems []T
}

// NewList creates a list of the given elements. The bound is the first type parameter,
// so the element type can usually be inferred:
//
//	l, err := NewList[lists.N32](Uint8(1), Uint8(2))
func NewList[N lists.Limit, T any, PT Element[T]](elems ...T) (List[T, PT, N], error) {
	var n N
	if uint64(len(elems)) > n.Limit() {
		return List[T, PT, N]{}, errors.Wrapf(ErrCapacityExceeded, "%d elements, limit %d", len(elems), n.Limit())
	}
	var out List[T, PT, N]
	if len(elems) > 0 {
		out.elems = append([]T(nil), elems...)
	}
	return out, nil
}

// MustList is NewList, panicking if there are too many elements.
func MustList[N lists.Limit, T any, PT Element[T]](elems ...T) List[T, PT, N] {
	l, err := NewList[N, T, PT](elems...)
	if err != nil {
		panic(err)
	}
	return l
}

func (l *List[T, PT, N]) Len() uint64 {
	return uint64(len(l.elems))
}

func (l *List[T, PT, N]) Limit() uint64 {
	var n N
	return n.Limit()
}

func (l *List[T, PT, N]) At(i uint64) (T, error) {
	if i >= uint64(len(l.elems)) {
		var zero T
		return zero, errors.Wrapf(ErrIndexOutOfRange, "index %d, length %d", i, len(l.elems))
	}
	return l.elems[i], nil
}

func (l *List[T, PT, N]) Set(i uint64, v T) error {
	if i >= uint64(len(l.elems)) {
		return errors.Wrapf(ErrIndexOutOfRange, "index %d, length %d", i, len(l.elems))
	}
	l.elems[i] = v
	return nil
}

// Push appends an element, if the list is not full yet.
func (l *List[T, PT, N]) Push(v T) error {
	if limit := l.Limit(); uint64(len(l.elems)) >= limit {
		return errors.Wrapf(ErrCapacityExceeded, "list is full at %d elements", limit)
	}
	l.elems = append(l.elems, v)
	return nil
}

// Elems returns a copy of the elements.
func (l *List[T, PT, N]) Elems() []T {
	if len(l.elems) == 0 {
		return nil
	}
	return append([]T(nil), l.elems...)
}

func (l *List[T, PT, N]) IsVariableSize() bool {
	return true
}

func (l *List[T, PT, N]) SizeHint() uint64 {
	return 0
}

func (l *List[T, PT, N]) Serialize(buf []byte) ([]byte, error) {
	if limit := l.Limit(); uint64(len(l.elems)) > limit {
		return buf, enc.IllegalTypeError(limit)
	}
	return serializeSeries[T, PT](buf, l.elems)
}

func (l *List[T, PT, N]) Deserialize(data []byte) error {
	spans, err := seriesSpans(data, elemInfo[T, PT](), l.Limit())
	if err != nil {
		return err
	}
	elems, err := decodeElements[T, PT](spans)
	if err != nil {
		return err
	}
	l.elems = elems
	return nil
}

func (l *List[T, PT, N]) HashTreeRoot(h *htr.Hasher) (htr.Node, error) {
	root, err := seriesRoot[T, PT](h, l.elems, l.Limit())
	if err != nil {
		return htr.Node{}, err
	}
	return h.MixInLength(root, uint64(len(l.elems))), nil
}
