package merkle

import (
	"math/bits"

	. "github.com/protolambda/tssz/htr"
)

// Depth returns the depth of the smallest perfect binary tree with at least v leaves.
//
//	(in out): (0 0), (1 0), (2 1), (3 2), (4 2), (5 3), (8 3), (9 4)
func Depth(v uint64) uint8 {
	if v <= 1 {
		return 0
	}
	return uint8(bits.Len64(v - 1))
}

// Merkleize computes the root of the chunks, padded with zero chunks
// up to the next power of two.
func Merkleize(h *Hasher, chunks []Node) Node {
	// the chunk count is the limit, it can't be exceeded.
	out, _ := MerkleizeWithLimit(h, chunks, uint64(len(chunks)))
	return out
}

// MerkleizeWithLimit computes the root of the chunks, padded with zero chunks
// up to the next power of two of the limit (a limit of 0 is treated as 1).
// The tree shape depends only on the limit, not on the amount of chunks.
func MerkleizeWithLimit(h *Hasher, chunks []Node, limit uint64) (Node, error) {
	count := uint64(len(chunks))
	if count > limit {
		return Node{}, ExceedsLimitError(count, limit)
	}
	depth := Depth(limit)
	if count == 0 {
		return h.ZeroHash(depth), nil
	}
	if count == 1 && depth == 0 {
		return chunks[0], nil
	}
	// work on a copy, the input is never modified.
	layer := make([]Node, count, count+1)
	copy(layer, chunks)
	for d := uint8(0); d < depth; d++ {
		// the right-most node without a sibling gets the zero-hash of this height.
		if len(layer)&1 == 1 {
			layer = append(layer, h.ZeroHash(d))
		}
		half := len(layer) >> 1
		// parents overwrite the front of the layer, never a node that is still needed.
		for i := 0; i < half; i++ {
			layer[i] = h.Combi(layer[i<<1], layer[(i<<1)|1])
		}
		layer = layer[:half]
	}
	return layer[0], nil
}
