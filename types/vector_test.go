package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/protolambda/tssz/dec"
	"github.com/protolambda/tssz/enc"
	"github.com/protolambda/tssz/htr"
	"github.com/protolambda/tssz/lists"
	"github.com/protolambda/tssz/merkle"
)

func TestVectorZeroLength(t *testing.T) {
	var v Vector[Uint8, *Uint8, lists.N0]
	buf := []byte{0xaa}
	out, err := v.Serialize(buf)
	assert.ErrorIs(t, err, enc.ErrIllegalType)
	assert.Equal(t, uint64(0), err.(*enc.SerializeError).Bound)
	assert.Equal(t, buf, out)

	err = v.Deserialize(nil)
	assert.ErrorIs(t, err, dec.ErrIllegalType)
	assert.Equal(t, uint64(0), err.(*dec.DeserializeError).Bound)

	_, err = v.HashTreeRoot(htr.SHA256)
	assert.ErrorIs(t, err, htr.ErrInvalidInput)
}

func TestVectorOfLists(t *testing.T) {
	type one = List[Uint8, *Uint8, lists.N1]
	v := MustVector[lists.N4](MustList[lists.N1](Uint8(0)), MustList[lists.N1](Uint8(1)), MustList[lists.N1](Uint8(2)), one{})
	assert.True(t, v.IsVariableSize())
	assert.Equal(t, uint64(0), v.SizeHint())
	out, err := v.Serialize(nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{16, 0, 0, 0, 17, 0, 0, 0, 18, 0, 0, 0, 19, 0, 0, 0, 0, 1, 2}, out)

	var back Vector[one, *one, lists.N4]
	require.NoError(t, back.Deserialize(out))
	assert.Equal(t, v, back)
}

func TestVectorVariableCountMismatch(t *testing.T) {
	type one = List[Uint8, *Uint8, lists.N1]
	var v Vector[one, *one, lists.N2]
	assert.ErrorIs(t, v.Deserialize([]byte{4, 0, 0, 0}), dec.ErrInputTooShort)
	assert.ErrorIs(t, v.Deserialize([]byte{12, 0, 0, 0, 12, 0, 0, 0, 12, 0, 0, 0}), dec.ErrExtraInput)
	assert.ErrorIs(t, v.Deserialize(nil), dec.ErrInputTooShort)
}

func TestVectorFixed(t *testing.T) {
	v := MustVector[lists.N2](Uint16(0x4567), Uint16(0x0123))
	assert.False(t, v.IsVariableSize())
	assert.Equal(t, uint64(4), v.SizeHint())
	out, err := v.Serialize(nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x67, 0x45, 0x23, 0x01}, out)

	var back Vector[Uint16, *Uint16, lists.N2]
	require.NoError(t, back.Deserialize(out))
	assert.Equal(t, v, back)

	assert.ErrorIs(t, back.Deserialize(out[:3]), dec.ErrInputTooShort)
	assert.ErrorIs(t, back.Deserialize(append(out, 0)), dec.ErrExtraInput)
	assert.Equal(t, v, back)
}

func TestVectorZeroValue(t *testing.T) {
	var v Vector[Uint16, *Uint16, lists.N3]
	assert.Equal(t, []Uint16{0, 0, 0}, v.Elems())
	out, err := v.Serialize(nil)
	require.NoError(t, err)
	assert.Equal(t, make([]byte, 6), out)

	require.NoError(t, v.Set(2, 7))
	x, err := v.At(2)
	require.NoError(t, err)
	assert.Equal(t, Uint16(7), x)
	assert.ErrorIs(t, v.Set(3, 1), ErrIndexOutOfRange)
	_, err = v.At(3)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestNewVectorLength(t *testing.T) {
	_, err := NewVector[lists.N3](Uint8(1))
	assert.Error(t, err)
}

func TestVectorHashTreeRoot(t *testing.T) {
	v := MustVector[lists.N2](Uint16(1), Uint16(2))
	root, err := v.HashTreeRoot(htr.SHA256)
	require.NoError(t, err)
	assert.Equal(t, htr.Node{0: 1, 2: 2}, root)

	// 17 uint16 take 2 chunks, no length mixed in
	var big Vector[Uint16, *Uint16, lists.N17]
	require.NoError(t, big.Set(16, 3))
	root, err = big.HashTreeRoot(htr.SHA256)
	require.NoError(t, err)
	assert.Equal(t, htr.SHA256.Combi(htr.Node{}, htr.Node{0: 3}), root)

	roots := MustVector[lists.N3](Root{1}, Root{2}, Root{3})
	root, err = roots.HashTreeRoot(htr.SHA256)
	require.NoError(t, err)
	assert.Equal(t, merkle.Merkleize(htr.SHA256, []htr.Node{{1}, {2}, {3}}), root)
}
