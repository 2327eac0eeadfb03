package types

import (
	"reflect"

	"github.com/pkg/errors"

	"github.com/protolambda/tssz/dec"
	"github.com/protolambda/tssz/enc"
	"github.com/protolambda/tssz/htr"
	"github.com/protolambda/tssz/merkle"
)

// A container is a struct type that implements Serializable
// by passing pointers to its fields, in order, to the functions below:
//
//	type Checkpoint struct {
//		Epoch types.Uint64
//		Root  types.Root
//	}
//
//	func (c *Checkpoint) fields() []types.Serializable {
//		return []types.Serializable{&c.Epoch, &c.Root}
//	}
//
//	func (c *Checkpoint) Serialize(buf []byte) ([]byte, error) {
//		return types.SerializeContainer(buf, c.fields()...)
//	}
//
// A container must have at least one field.

func ContainerIsVariableSize(fields ...Serializable) bool {
	for _, f := range fields {
		if f.IsVariableSize() {
			return true
		}
	}
	return false
}

// ContainerSizeHint is the size of a fixed-size container, 0 if it is variable-size.
func ContainerSizeHint(fields ...Serializable) (out uint64) {
	for _, f := range fields {
		if f.IsVariableSize() {
			return 0
		}
		out += f.SizeHint()
	}
	return out
}

func SerializeContainer(buf []byte, fields ...Serializable) ([]byte, error) {
	if len(fields) == 0 {
		return buf, enc.IllegalTypeError(0)
	}
	s := enc.GetPooledSerializer()
	defer enc.ReleasePooledSerializer(s)
	for _, f := range fields {
		if err := s.WithElement(f); err != nil {
			return buf, err
		}
	}
	return s.Serialize(buf)
}

// DeserializeContainer decodes data into the fields.
// The fields are only changed if all of them decode successfully.
func DeserializeContainer(data []byte, fields ...Serializable) error {
	if len(fields) == 0 {
		return dec.IllegalTypeError(0)
	}
	var d dec.Deserializer
	for _, f := range fields {
		d.WithElement(f.IsVariableSize(), f.SizeHint())
	}
	spans, err := d.Finalize(data)
	if err != nil {
		return err
	}
	decoded := make([]reflect.Value, len(fields))
	for i, f := range fields {
		tmp := reflect.New(reflect.TypeOf(f).Elem())
		if err := tmp.Interface().(Serializable).Deserialize(spans[i]); err != nil {
			return err
		}
		decoded[i] = tmp
	}
	for i, f := range fields {
		reflect.ValueOf(f).Elem().Set(decoded[i].Elem())
	}
	return nil
}

// HashTreeRootContainer merkleizes the roots of the fields.
func HashTreeRootContainer(h *htr.Hasher, fields ...Serializable) (htr.Node, error) {
	if len(fields) == 0 {
		return htr.Node{}, htr.InvalidInputError("container without fields")
	}
	roots := make([]htr.Node, len(fields))
	for i, f := range fields {
		root, err := f.HashTreeRoot(h)
		if err != nil {
			return htr.Node{}, err
		}
		roots[i] = root
	}
	return merkle.Merkleize(h, roots), nil
}

// FieldsOf returns pointers to the exported fields of the struct that ptr points to,
// in declaration order. Fields tagged `ssz:"-"` are skipped.
// Every other exported field must implement Serializable by pointer.
func FieldsOf(ptr any) ([]Serializable, error) {
	rv := reflect.ValueOf(ptr)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return nil, errors.Errorf("expected a non-nil pointer to a struct, got %T", ptr)
	}
	sv := rv.Elem()
	st := sv.Type()
	var out []Serializable
	for i := 0; i < st.NumField(); i++ {
		sf := st.Field(i)
		if !sf.IsExported() || sf.Tag.Get("ssz") == "-" {
			continue
		}
		f, ok := sv.Field(i).Addr().Interface().(Serializable)
		if !ok {
			return nil, errors.Errorf("field %s.%s of type %s is not serializable", st.Name(), sf.Name, sf.Type)
		}
		out = append(out, f)
	}
	if len(out) == 0 {
		return nil, errors.Errorf("struct %s has no serializable fields", st.Name())
	}
	return out, nil
}
