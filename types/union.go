package types

import (
	"reflect"

	"github.com/pkg/errors"

	"github.com/protolambda/tssz/dec"
	"github.com/protolambda/tssz/enc"
	"github.com/protolambda/tssz/htr"
)

// MaxUnionVariants is the maximum number of variants of a union type.
const MaxUnionVariants = 127

// Variant is one option of a union type.
type Variant struct {
	name string
	none bool
	// creates a zero value of the variant type
	zero func() Serializable
}

// None is the variant without a value. It can only be the first variant.
func None() Variant {
	return Variant{name: "None", none: true}
}

// VariantOf declares a variant holding values of type T.
func VariantOf[T any, PT Element[T]](name string) Variant {
	return Variant{name: name, zero: func() Serializable { return PT(new(T)) }}
}

func (v Variant) Name() string {
	return v.name
}

func (v Variant) IsNone() bool {
	return v.none
}

// Variants is a validated list of union variants, indexed by selector.
type Variants struct {
	list []Variant
}

// DeclareUnion validates the variants of a union type.
func DeclareUnion(variants ...Variant) (Variants, error) {
	if len(variants) == 0 {
		return Variants{}, errors.New("union needs at least one variant")
	}
	if len(variants) > MaxUnionVariants {
		return Variants{}, errors.Errorf("union has %d variants, max is %d", len(variants), MaxUnionVariants)
	}
	for i, v := range variants {
		if v.none && i != 0 {
			return Variants{}, errors.Errorf("None variant at selector %d, only allowed at 0", i)
		}
		if !v.none && v.zero == nil {
			return Variants{}, errors.Errorf("variant %d is not declared with VariantOf or None", i)
		}
	}
	if variants[0].none && len(variants) == 1 {
		return Variants{}, errors.New("union with only a None variant")
	}
	return Variants{list: append([]Variant(nil), variants...)}, nil
}

// MustDeclareUnion is DeclareUnion, panicking on invalid variants.
// It is meant for package-level union declarations.
func MustDeclareUnion(variants ...Variant) Variants {
	out, err := DeclareUnion(variants...)
	if err != nil {
		panic(err)
	}
	return out
}

func (vs Variants) Len() int {
	return len(vs.list)
}

func (vs Variants) get(selector uint8) (Variant, bool) {
	if int(selector) >= len(vs.list) {
		return Variant{}, false
	}
	return vs.list[selector], true
}

// UnionType is implemented by the zero-size marker type that declares a union:
//
//	var shapeVariants = types.MustDeclareUnion(
//		types.None(),
//		types.VariantOf[Square]("square"),
//	)
//
//	type ShapeUnion struct{}
//
//	func (ShapeUnion) Variants() types.Variants { return shapeVariants }
//
//	type Shape = types.Union[ShapeUnion]
type UnionType interface {
	Variants() Variants
}

// Union holds a selector and the value of the selected variant.
// The zero value selects the first variant, with its zero value.
type Union[U UnionType] struct {
	selector uint8
	// nil for None, and for a zero value of the first variant
	value Serializable
}

// NewUnion selects a variant. The value must be nil for None,
// and a pointer of the variant type otherwise.
func NewUnion[U UnionType](selector uint8, value Serializable) (Union[U], error) {
	var u U
	variant, ok := u.Variants().get(selector)
	if !ok {
		return Union[U]{}, enc.InvalidSelectorError(selector)
	}
	if variant.none {
		if value != nil {
			return Union[U]{}, errors.Errorf("None variant cannot hold a %T", value)
		}
		return Union[U]{selector: selector}, nil
	}
	if value == nil {
		return Union[U]{}, errors.Errorf("variant %q needs a value", variant.name)
	}
	if rv := reflect.ValueOf(value); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return Union[U]{}, errors.Errorf("variant %q got a nil %T", variant.name, value)
	}
	if expected := variant.zero(); reflect.TypeOf(expected) != reflect.TypeOf(value) {
		return Union[U]{}, errors.Errorf("variant %q holds %T, got %T", variant.name, expected, value)
	}
	return Union[U]{selector: selector, value: value}, nil
}

func (x *Union[U]) Selector() uint8 {
	return x.selector
}

func (x *Union[U]) variant() (Variant, bool) {
	var u U
	return u.Variants().get(x.selector)
}

// VariantName is the name of the selected variant.
func (x *Union[U]) VariantName() string {
	v, _ := x.variant()
	return v.name
}

func (x *Union[U]) IsNone() bool {
	v, ok := x.variant()
	return ok && v.none
}

// Value returns the value of the selected variant, nil for None.
func (x *Union[U]) Value() Serializable {
	if x.value != nil {
		return x.value
	}
	v, ok := x.variant()
	if !ok || v.none {
		return nil
	}
	return v.zero()
}

func (x *Union[U]) IsVariableSize() bool {
	return true
}

func (x *Union[U]) SizeHint() uint64 {
	return 0
}

func (x *Union[U]) Serialize(buf []byte) ([]byte, error) {
	v, ok := x.variant()
	if !ok {
		return buf, enc.InvalidSelectorError(x.selector)
	}
	out := append(buf, x.selector)
	if v.none {
		return out, nil
	}
	out, err := x.Value().Serialize(out)
	if err != nil {
		return buf, err
	}
	return out, nil
}

func (x *Union[U]) Deserialize(data []byte) error {
	if len(data) == 0 {
		return dec.ExpectedFurtherInputError(0, 1)
	}
	var u U
	selector := data[0]
	v, ok := u.Variants().get(selector)
	if !ok {
		return dec.InvalidByteError(selector)
	}
	if v.none {
		if len(data) > 1 {
			return dec.AdditionalInputError(uint64(len(data)), 1)
		}
		x.selector, x.value = selector, nil
		return nil
	}
	value := v.zero()
	if err := value.Deserialize(data[1:]); err != nil {
		return err
	}
	x.selector, x.value = selector, value
	return nil
}

func (x *Union[U]) HashTreeRoot(h *htr.Hasher) (htr.Node, error) {
	v, ok := x.variant()
	if !ok {
		return htr.Node{}, htr.InvalidInputError("union selector %d", x.selector)
	}
	if v.none {
		return h.MixInSelector(htr.Node{}, x.selector), nil
	}
	root, err := x.Value().HashTreeRoot(h)
	if err != nil {
		return htr.Node{}, err
	}
	return h.MixInSelector(root, x.selector), nil
}
