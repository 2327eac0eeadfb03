package types

import (
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/protolambda/tssz/dec"
	"github.com/protolambda/tssz/enc"
	"github.com/protolambda/tssz/htr"
	"github.com/protolambda/tssz/lists"
)

type byteList32 = List[Uint8, *Uint8, lists.N32]

func TestListBasicRoundTrip(t *testing.T) {
	var data []byte
	var elems []Uint8
	for i := 0; i < 32; i++ {
		data = append(data, byte(i%8))
		elems = append(elems, Uint8(i%8))
	}
	l, err := NewList[lists.N32](elems...)
	require.NoError(t, err)
	out, err := l.Serialize(nil)
	require.NoError(t, err)
	// fixed-size elements, no offsets
	assert.Equal(t, data, out)

	var back byteList32
	require.NoError(t, back.Deserialize(out))
	assert.Equal(t, l, back)
	assert.Equal(t, uint64(32), back.Len())
}

func TestListEmpty(t *testing.T) {
	var l byteList32
	out, err := l.Serialize(nil)
	require.NoError(t, err)
	assert.Empty(t, out)

	back := MustList[lists.N32](Uint8(1))
	require.NoError(t, back.Deserialize(nil))
	assert.Equal(t, uint64(0), back.Len())
	assert.Equal(t, l, back)
}

func TestListCapacity(t *testing.T) {
	_, err := NewList[lists.N2](Uint8(1), Uint8(2), Uint8(3))
	assert.ErrorIs(t, err, ErrCapacityExceeded)

	l := MustList[lists.N2](Uint8(1))
	require.NoError(t, l.Push(2))
	assert.ErrorIs(t, l.Push(3), ErrCapacityExceeded)
	assert.Equal(t, []Uint8{1, 2}, l.Elems())

	require.NoError(t, l.Set(1, 5))
	assert.ErrorIs(t, l.Set(2, 5), ErrIndexOutOfRange)
	v, err := l.At(1)
	require.NoError(t, err)
	assert.Equal(t, Uint8(5), v)
	_, err = l.At(2)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestListSerializeOverBound(t *testing.T) {
	// only reachable by constructing the value directly
	l := List[Uint8, *Uint8, lists.N2]{elems: []Uint8{1, 2, 3}}
	buf := []byte{0xaa}
	out, err := l.Serialize(buf)
	assert.ErrorIs(t, err, enc.ErrIllegalType)
	assert.Equal(t, uint64(2), err.(*enc.SerializeError).Bound)
	assert.Equal(t, []byte{0xaa}, out)
}

func TestListDeserializeOverBound(t *testing.T) {
	var l List[Uint16, *Uint16, lists.N2]
	err := l.Deserialize([]byte{1, 0, 2, 0, 3, 0})
	assert.ErrorIs(t, err, dec.ErrBoundExceeded)

	var nested List[List[Uint8, *Uint8, lists.N2], *List[Uint8, *Uint8, lists.N2], lists.N2]
	// three offsets, three elements
	err = nested.Deserialize([]byte{12, 0, 0, 0, 12, 0, 0, 0, 12, 0, 0, 0})
	assert.ErrorIs(t, err, dec.ErrBoundExceeded)
}

func TestListDeserializeUntouchedOnError(t *testing.T) {
	l := MustList[lists.N4](Uint16(7))
	assert.ErrorIs(t, l.Deserialize([]byte{1, 0, 2}), dec.ErrAdditionalInput)
	assert.Equal(t, []Uint16{7}, l.Elems())
}

func TestListNestedRoundTrip(t *testing.T) {
	type inner = List[Uint8, *Uint8, lists.N2]
	l := MustList[lists.N4](MustList[lists.N2](Uint8(1)), inner{}, MustList[lists.N2](Uint8(2), Uint8(3)))
	out, err := l.Serialize(nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{12, 0, 0, 0, 13, 0, 0, 0, 13, 0, 0, 0, 1, 2, 3}, out)

	var back List[inner, *inner, lists.N4]
	require.NoError(t, back.Deserialize(out))
	assert.Equal(t, l, back)

	// an inner list over its own bound
	err = back.Deserialize([]byte{4, 0, 0, 0, 1, 2, 3})
	assert.ErrorIs(t, err, dec.ErrBoundExceeded)
}

func TestListHashTreeRoot(t *testing.T) {
	// 4 uint64 fit a single chunk
	l := MustList[lists.N4](Uint64(1), Uint64(2), Uint64(3))
	var chunk htr.Node
	chunk[0], chunk[8], chunk[16] = 1, 2, 3
	var length htr.Node
	length[0] = 3
	expected := htr.Node(sha256.Sum256(append(chunk[:], length[:]...)))
	root, err := l.HashTreeRoot(htr.SHA256)
	require.NoError(t, err)
	assert.Equal(t, expected, root)
}

func TestListHashTreeRootComposite(t *testing.T) {
	a, b := Root{1}, Root{2}
	l := MustList[lists.N4](a, b)
	root, err := l.HashTreeRoot(htr.SHA256)
	require.NoError(t, err)
	h := htr.SHA256
	tree := h.Combi(h.Combi(htr.Node(a), htr.Node(b)), h.ZeroHash(1))
	assert.Equal(t, h.MixInLength(tree, 2), root)
}

func TestListLengthMixIn(t *testing.T) {
	// identical chunks after padding, only the length differs
	short := MustList[lists.N8](Uint64(1), Uint64(2), Uint64(3))
	long := MustList[lists.N8](Uint64(1), Uint64(2), Uint64(3), Uint64(0), Uint64(0))
	r1, err := short.HashTreeRoot(htr.SHA256)
	require.NoError(t, err)
	r2, err := long.HashTreeRoot(htr.SHA256)
	require.NoError(t, err)
	assert.NotEqual(t, r1, r2)

	again, err := short.HashTreeRoot(htr.SHA256)
	require.NoError(t, err)
	assert.Equal(t, r1, again)
}

func TestListRootDiffersPerElement(t *testing.T) {
	base := MustList[lists.N32](Uint8(1), Uint8(2), Uint8(3))
	r0, err := base.HashTreeRoot(htr.SHA256)
	require.NoError(t, err)
	for i := uint64(0); i < 3; i++ {
		l := MustList[lists.N32](base.Elems()...)
		require.NoError(t, l.Set(i, 9))
		r, err := l.HashTreeRoot(htr.SHA256)
		require.NoError(t, err)
		assert.NotEqual(t, r0, r, "element %d", i)
	}
}
