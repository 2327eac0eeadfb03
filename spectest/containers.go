package spectest

import (
	"github.com/protolambda/tssz/htr"
	. "github.com/protolambda/tssz/lists"
	. "github.com/protolambda/tssz/types"
)

// The containers of the ssz_generic "containers" handler.

type SingleFieldTestStruct struct {
	A Uint8
}

func (v *SingleFieldTestStruct) fields() []Serializable {
	return []Serializable{&v.A}
}

func (v *SingleFieldTestStruct) IsVariableSize() bool {
	return ContainerIsVariableSize(v.fields()...)
}

func (v *SingleFieldTestStruct) SizeHint() uint64 {
	return ContainerSizeHint(v.fields()...)
}

func (v *SingleFieldTestStruct) Serialize(buf []byte) ([]byte, error) {
	return SerializeContainer(buf, v.fields()...)
}

func (v *SingleFieldTestStruct) Deserialize(data []byte) error {
	return DeserializeContainer(data, v.fields()...)
}

func (v *SingleFieldTestStruct) HashTreeRoot(h *htr.Hasher) (htr.Node, error) {
	return HashTreeRootContainer(h, v.fields()...)
}

type SmallTestStruct struct {
	A Uint16
	B Uint16
}

func (v *SmallTestStruct) fields() []Serializable {
	return []Serializable{&v.A, &v.B}
}

func (v *SmallTestStruct) IsVariableSize() bool {
	return ContainerIsVariableSize(v.fields()...)
}

func (v *SmallTestStruct) SizeHint() uint64 {
	return ContainerSizeHint(v.fields()...)
}

func (v *SmallTestStruct) Serialize(buf []byte) ([]byte, error) {
	return SerializeContainer(buf, v.fields()...)
}

func (v *SmallTestStruct) Deserialize(data []byte) error {
	return DeserializeContainer(data, v.fields()...)
}

func (v *SmallTestStruct) HashTreeRoot(h *htr.Hasher) (htr.Node, error) {
	return HashTreeRootContainer(h, v.fields()...)
}

type FixedTestStruct struct {
	A Uint8
	B Uint64
	C Uint32
}

func (v *FixedTestStruct) fields() []Serializable {
	return []Serializable{&v.A, &v.B, &v.C}
}

func (v *FixedTestStruct) IsVariableSize() bool {
	return ContainerIsVariableSize(v.fields()...)
}

func (v *FixedTestStruct) SizeHint() uint64 {
	return ContainerSizeHint(v.fields()...)
}

func (v *FixedTestStruct) Serialize(buf []byte) ([]byte, error) {
	return SerializeContainer(buf, v.fields()...)
}

func (v *FixedTestStruct) Deserialize(data []byte) error {
	return DeserializeContainer(data, v.fields()...)
}

func (v *FixedTestStruct) HashTreeRoot(h *htr.Hasher) (htr.Node, error) {
	return HashTreeRootContainer(h, v.fields()...)
}

type VarTestStruct struct {
	A Uint16
	B List[Uint16, *Uint16, N1024]
	C Uint8
}

func (v *VarTestStruct) fields() []Serializable {
	return []Serializable{&v.A, &v.B, &v.C}
}

func (v *VarTestStruct) IsVariableSize() bool {
	return ContainerIsVariableSize(v.fields()...)
}

func (v *VarTestStruct) SizeHint() uint64 {
	return ContainerSizeHint(v.fields()...)
}

func (v *VarTestStruct) Serialize(buf []byte) ([]byte, error) {
	return SerializeContainer(buf, v.fields()...)
}

func (v *VarTestStruct) Deserialize(data []byte) error {
	return DeserializeContainer(data, v.fields()...)
}

func (v *VarTestStruct) HashTreeRoot(h *htr.Hasher) (htr.Node, error) {
	return HashTreeRootContainer(h, v.fields()...)
}

type ComplexTestStruct struct {
	A Uint16
	B List[Uint16, *Uint16, N128]
	C Uint8
	D List[Uint8, *Uint8, N256]
	E VarTestStruct
	F Vector[FixedTestStruct, *FixedTestStruct, N4]
	G Vector[VarTestStruct, *VarTestStruct, N2]
}

func (v *ComplexTestStruct) fields() []Serializable {
	fields, err := FieldsOf(v)
	if err != nil {
		panic(err)
	}
	return fields
}

func (v *ComplexTestStruct) IsVariableSize() bool {
	return ContainerIsVariableSize(v.fields()...)
}

func (v *ComplexTestStruct) SizeHint() uint64 {
	return ContainerSizeHint(v.fields()...)
}

func (v *ComplexTestStruct) Serialize(buf []byte) ([]byte, error) {
	return SerializeContainer(buf, v.fields()...)
}

func (v *ComplexTestStruct) Deserialize(data []byte) error {
	return DeserializeContainer(data, v.fields()...)
}

func (v *ComplexTestStruct) HashTreeRoot(h *htr.Hasher) (htr.Node, error) {
	return HashTreeRootContainer(h, v.fields()...)
}

type BitsStruct struct {
	A Bitlist[N5]
	B Bitvector[N2]
	C Bitvector[N1]
	D Bitlist[N6]
	E Bitvector[N8]
}

func (v *BitsStruct) fields() []Serializable {
	return []Serializable{&v.A, &v.B, &v.C, &v.D, &v.E}
}

func (v *BitsStruct) IsVariableSize() bool {
	return ContainerIsVariableSize(v.fields()...)
}

func (v *BitsStruct) SizeHint() uint64 {
	return ContainerSizeHint(v.fields()...)
}

func (v *BitsStruct) Serialize(buf []byte) ([]byte, error) {
	return SerializeContainer(buf, v.fields()...)
}

func (v *BitsStruct) Deserialize(data []byte) error {
	return DeserializeContainer(data, v.fields()...)
}

func (v *BitsStruct) HashTreeRoot(h *htr.Hasher) (htr.Node, error) {
	return HashTreeRootContainer(h, v.fields()...)
}
