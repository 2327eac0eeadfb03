// Package tssz encodes typed values with SSZ (Simple Serialize),
// and computes their hash tree roots.
//
// Values implement types.Serializable. The types package provides the
// basic scalars, lists, vectors, bitfields and unions, and the helpers
// to make a struct a container.
package tssz

import (
	"github.com/protolambda/tssz/dec"
	"github.com/protolambda/tssz/enc"
	"github.com/protolambda/tssz/htr"
	"github.com/protolambda/tssz/types"
)

type (
	SerializeError     = enc.SerializeError
	DeserializeError   = dec.DeserializeError
	MerkleizationError = htr.MerkleizationError
)

// Serialize returns the encoding of v.
func Serialize(v types.Serializable) ([]byte, error) {
	return v.Serialize(make([]byte, 0, v.SizeHint()))
}

// SerializeInto appends the encoding of v to buf, and returns the number of bytes written.
// On error buf is returned with its original contents, and 0 bytes written.
func SerializeInto(buf []byte, v types.Serializable) ([]byte, int, error) {
	out, err := v.Serialize(buf)
	if err != nil {
		return buf, 0, err
	}
	return out, len(out) - len(buf), nil
}

// Deserialize decodes data, which must be exactly one encoding, into v.
// v is left untouched on error.
func Deserialize(data []byte, v types.Serializable) error {
	return v.Deserialize(data)
}

// HashTreeRoot computes the hash tree root of v with SHA-256.
func HashTreeRoot(v types.Serializable) (htr.Node, error) {
	return v.HashTreeRoot(htr.SHA256)
}

// HashTreeRootWith computes the hash tree root of v with the given hasher.
func HashTreeRootWith(h *htr.Hasher, v types.Serializable) (htr.Node, error) {
	return v.HashTreeRoot(h)
}
