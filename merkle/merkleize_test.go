package merkle

import (
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/protolambda/tssz/htr"
)

// naiveRoot builds the full padded tree with plain SHA-256.
func naiveRoot(chunks []Node, limit uint64) Node {
	width := uint64(1)
	for width < limit {
		width <<= 1
	}
	layer := make([]Node, width)
	copy(layer, chunks)
	for len(layer) > 1 {
		next := make([]Node, len(layer)/2)
		for i := range next {
			next[i] = sha256.Sum256(append(layer[2*i][:], layer[2*i+1][:]...))
		}
		layer = next
	}
	return layer[0]
}

func chunksOf(n int) []Node {
	out := make([]Node, n)
	for i := range out {
		out[i][0] = byte(i + 1)
		out[i][31] = 0xff
	}
	return out
}

func TestDepth(t *testing.T) {
	for _, tt := range []struct {
		v     uint64
		depth uint8
	}{
		{0, 0}, {1, 0}, {2, 1}, {3, 2}, {4, 2}, {5, 3}, {8, 3}, {9, 4},
		{1 << 40, 40}, {1<<40 + 1, 41},
	} {
		assert.Equal(t, tt.depth, Depth(tt.v), "depth of %d", tt.v)
	}
}

func TestMerkleizeWithLimit(t *testing.T) {
	for _, tt := range []struct {
		count int
		limit uint64
	}{
		{0, 0}, {0, 1}, {0, 4}, {1, 1}, {1, 2}, {1, 8},
		{2, 2}, {3, 3}, {3, 4}, {5, 5}, {5, 8}, {5, 16},
		{7, 8}, {8, 8}, {9, 32}, {17, 64},
	} {
		chunks := chunksOf(tt.count)
		root, err := MerkleizeWithLimit(SHA256, chunks, tt.limit)
		require.NoError(t, err)
		assert.Equal(t, naiveRoot(chunks, tt.limit), root, "count %d limit %d", tt.count, tt.limit)
	}
}

func TestMerkleizeDeepLimit(t *testing.T) {
	chunks := chunksOf(3)
	root, err := MerkleizeWithLimit(SHA256, chunks, 1<<40)
	require.NoError(t, err)
	expected := naiveRoot(chunks, 4)
	for d := uint8(2); d < 40; d++ {
		expected = SHA256.Combi(expected, SHA256.ZeroHash(d))
	}
	assert.Equal(t, expected, root)
}

func TestMerkleizeSingleChunk(t *testing.T) {
	chunk := Node{0: 42}
	assert.Equal(t, chunk, Merkleize(SHA256, []Node{chunk}))
}

func TestMerkleizeEmpty(t *testing.T) {
	assert.Equal(t, Node{}, Merkleize(SHA256, nil))
	root, err := MerkleizeWithLimit(SHA256, nil, 16)
	require.NoError(t, err)
	assert.Equal(t, SHA256.ZeroHash(4), root)
}

func TestMerkleizeExceedsLimit(t *testing.T) {
	_, err := MerkleizeWithLimit(SHA256, chunksOf(5), 4)
	assert.ErrorIs(t, err, ErrExceedsLimit)
}

func TestMerkleizeDoesNotModifyInput(t *testing.T) {
	chunks := chunksOf(6)
	orig := append([]Node(nil), chunks...)
	Merkleize(SHA256, chunks)
	assert.Equal(t, orig, chunks)
}

func TestPack(t *testing.T) {
	assert.Empty(t, Pack(nil))
	assert.Equal(t, uint64(0), PackChunkCount(0))
	assert.Equal(t, uint64(1), PackChunkCount(1))
	assert.Equal(t, uint64(1), PackChunkCount(32))
	assert.Equal(t, uint64(2), PackChunkCount(33))

	data := make([]byte, 40)
	for i := range data {
		data[i] = byte(i + 1)
	}
	chunks := Pack(data)
	require.Len(t, chunks, 2)
	assert.Equal(t, byte(1), chunks[0][0])
	assert.Equal(t, byte(32), chunks[0][31])
	assert.Equal(t, byte(33), chunks[1][0])
	assert.Equal(t, byte(40), chunks[1][7])
	for _, b := range chunks[1][8:] {
		assert.Zero(t, b)
	}
}
