package types

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/protolambda/tssz/dec"
	"github.com/protolambda/tssz/enc"
	"github.com/protolambda/tssz/htr"
	"github.com/protolambda/tssz/lists"
	"github.com/protolambda/tssz/merkle"
)

type varTestStruct struct {
	A Uint16
	B List[Uint16, *Uint16, lists.N1024]
	C Uint8
	// not part of the encoding
	Cache int `ssz:"-"`
}

func (v *varTestStruct) fields() []Serializable {
	fields, err := FieldsOf(v)
	if err != nil {
		panic(err)
	}
	return fields
}

func (v *varTestStruct) IsVariableSize() bool {
	return ContainerIsVariableSize(v.fields()...)
}

func (v *varTestStruct) SizeHint() uint64 {
	return ContainerSizeHint(v.fields()...)
}

func (v *varTestStruct) Serialize(buf []byte) ([]byte, error) {
	return SerializeContainer(buf, v.fields()...)
}

func (v *varTestStruct) Deserialize(data []byte) error {
	return DeserializeContainer(data, v.fields()...)
}

func (v *varTestStruct) HashTreeRoot(h *htr.Hasher) (htr.Node, error) {
	return HashTreeRootContainer(h, v.fields()...)
}

func TestContainerRoundTrip(t *testing.T) {
	for _, tt := range []struct {
		name  string
		value varTestStruct
		hex   string
	}{
		{"nil", varTestStruct{A: 0xabcd, C: 0xff}, "cdab07000000ff"},
		{"some", varTestStruct{A: 0xabcd, B: MustList[lists.N1024](Uint16(1), Uint16(2), Uint16(3)), C: 0xff}, "cdab07000000ff010002000300"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.value.IsVariableSize())
			assert.Equal(t, uint64(0), tt.value.SizeHint())
			out, err := tt.value.Serialize(nil)
			require.NoError(t, err)
			assert.Equal(t, tt.hex, hex.EncodeToString(out))

			var back varTestStruct
			require.NoError(t, back.Deserialize(out))
			assert.Equal(t, tt.value, back)
		})
	}
}

func TestContainerFixed(t *testing.T) {
	a, b := Uint8(0xab), Uint64(0xaabbccdd00112233)
	c := Uint32(0x12345678)
	fields := []Serializable{&a, &b, &c}
	assert.False(t, ContainerIsVariableSize(fields...))
	assert.Equal(t, uint64(13), ContainerSizeHint(fields...))
	out, err := SerializeContainer(nil, fields...)
	require.NoError(t, err)
	assert.Equal(t, "ab33221100ddccbbaa78563412", hex.EncodeToString(out))
}

func TestContainerDeserializeUntouchedOnError(t *testing.T) {
	v := varTestStruct{A: 1, C: 2}
	// B has an odd length, A decodes fine before that
	err := v.Deserialize([]byte{0xcd, 0xab, 7, 0, 0, 0, 0xff, 1, 0, 2})
	assert.ErrorIs(t, err, dec.ErrAdditionalInput)
	assert.Equal(t, varTestStruct{A: 1, C: 2}, v)

	assert.ErrorIs(t, v.Deserialize([]byte{0xcd, 0xab, 8, 0, 0, 0, 0xff}), dec.ErrInvalidOffset)
	assert.ErrorIs(t, v.Deserialize([]byte{0xcd, 0xab}), dec.ErrExpectedFurtherInput)
}

func TestContainerNoFields(t *testing.T) {
	_, err := SerializeContainer(nil)
	assert.ErrorIs(t, err, enc.ErrIllegalType)
	assert.ErrorIs(t, DeserializeContainer(nil), dec.ErrIllegalType)
	_, err = HashTreeRootContainer(htr.SHA256)
	assert.ErrorIs(t, err, htr.ErrInvalidInput)
}

func TestContainerHashTreeRoot(t *testing.T) {
	v := varTestStruct{A: 0xabcd, B: MustList[lists.N1024](Uint16(1)), C: 0xff}
	root, err := v.HashTreeRoot(htr.SHA256)
	require.NoError(t, err)

	bRoot, err := v.B.HashTreeRoot(htr.SHA256)
	require.NoError(t, err)
	expected := merkle.Merkleize(htr.SHA256, []htr.Node{{0: 0xcd, 1: 0xab}, bRoot, {0: 0xff}})
	assert.Equal(t, expected, root)

	// unencoded fields do not change the root
	v.Cache = 42
	again, err := v.HashTreeRoot(htr.SHA256)
	require.NoError(t, err)
	assert.Equal(t, root, again)
}

func TestFieldsOf(t *testing.T) {
	type empty struct{}
	type onlySkipped struct {
		A Uint8 `ssz:"-"`
	}
	type unsupported struct {
		A int
	}
	type unexported struct {
		A Uint8
		b Uint8
	}
	_, err := FieldsOf(&empty{})
	assert.Error(t, err)
	_, err = FieldsOf(&onlySkipped{})
	assert.Error(t, err)
	_, err = FieldsOf(&unsupported{})
	assert.Error(t, err)
	_, err = FieldsOf(unexported{})
	assert.Error(t, err)
	_, err = FieldsOf((*unexported)(nil))
	assert.Error(t, err)

	x := unexported{A: 1, b: 2}
	fields, err := FieldsOf(&x)
	require.NoError(t, err)
	require.Len(t, fields, 1)
	assert.Same(t, &x.A, fields[0])
}
