package htr

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/minio/sha256-simd"
	"github.com/pkg/errors"
	"github.com/zeebo/blake3"
)

// SHA256Sum and BLAKE3Sum are the built-in hash functions.
var (
	SHA256Sum HashFn = sha256.Sum256
	BLAKE3Sum HashFn = blake3.Sum256
)

// SHA256 is the hasher of the SSZ protocol, and the default everywhere.
var SHA256 = NewHasher(SHA256Sum)

// BLAKE3 merkleizes with BLAKE3 instead of SHA-256.
// Roots computed with it are not interchangeable with SSZ roots.
var BLAKE3 = NewHasher(BLAKE3Sum)

// ByName returns the built-in hasher with the given name: "sha256" or "blake3".
func ByName(name string) (*Hasher, error) {
	switch name {
	case "", "sha256":
		return SHA256, nil
	case "blake3":
		return BLAKE3, nil
	default:
		return nil, errors.Errorf("unknown hasher %q", name)
	}
}

// NewCachedHasher wraps fn with a bounded LRU cache of pair-hash results.
// Merkleizing values that share most of their subtrees (e.g. a list that
// only grew at the end) then skips the unchanged hashing work.
// Only 64 byte inputs (two nodes) are cached.
func NewCachedHasher(fn HashFn, size int) (*Hasher, error) {
	cache, err := lru.New[[2 * BytesPerChunk]byte, [32]byte](size)
	if err != nil {
		return nil, err
	}
	cached := func(input []byte) [32]byte {
		if len(input) != 2*BytesPerChunk {
			return fn(input)
		}
		key := [2 * BytesPerChunk]byte(input)
		if out, ok := cache.Get(key); ok {
			return out
		}
		out := fn(input)
		cache.Add(key, out)
		return out
	}
	return NewHasher(cached), nil
}
