package types

import (
	"github.com/protolambda/tssz/dec"
	"github.com/protolambda/tssz/enc"
	"github.com/protolambda/tssz/htr"
	"github.com/protolambda/tssz/merkle"
)

// elemInfo describes the element type of a homogeneous series, using a zero value.
func elemInfo[T any, PT Element[T]]() Serializable {
	var zero T
	return PT(&zero)
}

func serializeSeries[T any, PT Element[T]](buf []byte, elems []T) ([]byte, error) {
	s := enc.GetPooledSerializer()
	defer enc.ReleasePooledSerializer(s)
	for i := range elems {
		if err := s.WithElement(PT(&elems[i])); err != nil {
			return buf, err
		}
	}
	return s.Serialize(buf)
}

// seriesSpans splits data into the spans of at most max elements.
// The count is checked before any span is allocated.
func seriesSpans(data []byte, elem Serializable, max uint64) ([][]byte, error) {
	if elem.IsVariableSize() {
		count, err := dec.VariableSeriesLen(data)
		if err != nil {
			return nil, err
		}
		if count > max {
			return nil, dec.BoundExceededError(count, max)
		}
		return dec.VariableSeries(data)
	}
	size := elem.SizeHint()
	if size != 0 {
		if count := uint64(len(data)) / size; count > max {
			return nil, dec.BoundExceededError(count, max)
		}
	}
	return dec.FixedSeries(data, size)
}

// decodeElements decodes every span into a new element.
// No elements results in a nil slice.
func decodeElements[T any, PT Element[T]](spans [][]byte) ([]T, error) {
	if len(spans) == 0 {
		return nil, nil
	}
	out := make([]T, len(spans))
	for i, span := range spans {
		if err := PT(&out[i]).Deserialize(span); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// seriesRoot merkleizes the elements, for a series of at most limit elements.
// Basic elements are packed into chunks, others contribute their own root as chunk.
func seriesRoot[T any, PT Element[T]](h *htr.Hasher, elems []T, limit uint64) (htr.Node, error) {
	elem := elemInfo[T, PT]()
	if isBasic(elem) {
		size := elem.SizeHint()
		data := make([]byte, 0, uint64(len(elems))*size)
		for i := range elems {
			var err error
			if data, err = PT(&elems[i]).Serialize(data); err != nil {
				return htr.Node{}, err
			}
		}
		return merkle.MerkleizeWithLimit(h, merkle.Pack(data), merkle.PackChunkCount(limit*size))
	}
	roots := make([]htr.Node, len(elems))
	for i := range elems {
		root, err := PT(&elems[i]).HashTreeRoot(h)
		if err != nil {
			return htr.Node{}, err
		}
		roots[i] = root
	}
	return merkle.MerkleizeWithLimit(h, roots, limit)
}
