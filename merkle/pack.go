package merkle

import . "github.com/protolambda/tssz/htr"

// PackChunkCount returns the amount of chunks needed to hold byteLen bytes.
func PackChunkCount(byteLen uint64) uint64 {
	return (byteLen + BytesPerChunk - 1) / BytesPerChunk
}

// Pack splits the concatenated little-endian encodings of basic values into chunks,
// right-padding the last chunk with zero bytes.
// No data results in no chunks.
func Pack(data []byte) []Node {
	chunks := make([]Node, PackChunkCount(uint64(len(data))))
	for i := range chunks {
		copy(chunks[i][:], data[i*BytesPerChunk:])
	}
	return chunks
}
