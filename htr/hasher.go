package htr

import (
	"encoding/binary"
	"encoding/hex"
)

// BytesPerChunk is the width of every leaf and node in a hash tree.
const BytesPerChunk = 32

// MaxDepth is the deepest tree a Hasher keeps zero-hashes for.
// A limit of 2**64 leaves fits within it.
const MaxDepth = 64

// Node is a 32 byte hash tree node: a leaf chunk, an intermediate hash, or a root.
type Node [BytesPerChunk]byte

func (n Node) String() string {
	return "0x" + hex.EncodeToString(n[:])
}

// IsZero reports whether all bytes of the node are zero.
func (n Node) IsZero() bool {
	return n == Node{}
}

// HashFn hashes arbitrary input into a 32 byte digest.
type HashFn func(input []byte) [32]byte

// Hasher combines a hash function with the zero-hashes computed with it.
// The zero-hash at depth i is the root of a perfect tree of 2**i zero chunks.
// A Hasher is immutable after construction, and safe for concurrent use
// if its hash function is.
type Hasher struct {
	fn         HashFn
	zeroHashes [MaxDepth + 1]Node
}

// NewHasher creates a Hasher for the given hash function,
// and pre-computes the zero-hashes with it.
func NewHasher(fn HashFn) *Hasher {
	h := &Hasher{fn: fn}
	for i := 0; i < MaxDepth; i++ {
		h.zeroHashes[i+1] = h.Combi(h.zeroHashes[i], h.zeroHashes[i])
	}
	return h
}

// Hash hashes the raw input.
func (h *Hasher) Hash(input []byte) Node {
	return h.fn(input)
}

// Combi hashes the concatenation of two nodes: the parent of a and b.
func (h *Hasher) Combi(a Node, b Node) Node {
	v := [2 * BytesPerChunk]byte{}
	copy(v[:BytesPerChunk], a[:])
	copy(v[BytesPerChunk:], b[:])
	return h.fn(v[:])
}

// ZeroHash returns the root of a perfect tree of 2**depth zero chunks.
// Depth 0 is the zero chunk itself.
func (h *Hasher) ZeroHash(depth uint8) Node {
	return h.zeroHashes[depth]
}

// MixInLength binds a length to a root: hash(root || uint256(length)).
func (h *Hasher) MixInLength(root Node, length uint64) Node {
	return h.mixIn(root, length)
}

// MixInSelector binds a union selector to a root: hash(root || uint256(selector)).
func (h *Hasher) MixInSelector(root Node, selector uint8) Node {
	return h.mixIn(root, uint64(selector))
}

func (h *Hasher) mixIn(root Node, v uint64) Node {
	var x Node
	binary.LittleEndian.PutUint64(x[:8], v)
	return h.Combi(root, x)
}
