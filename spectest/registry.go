package spectest

import (
	"sort"
	"strings"

	"github.com/protolambda/tssz/lists"
	"github.com/protolambda/tssz/types"
)

// TypeFactory returns a new zero value of the type of a test case.
type TypeFactory func() types.Serializable

// Registry maps test case names to types, per handler.
// A case name resolves to the type registered with the longest matching prefix.
type Registry struct {
	handlers map[string]map[string]TypeFactory
}

func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]map[string]TypeFactory)}
}

// Register maps case names with the given prefix in handler to a type.
func (r *Registry) Register(handler string, prefix string, f TypeFactory) {
	h, ok := r.handlers[handler]
	if !ok {
		h = make(map[string]TypeFactory)
		r.handlers[handler] = h
	}
	h[prefix] = f
}

// Resolve finds the type of a test case.
func (r *Registry) Resolve(handler string, caseName string) (TypeFactory, bool) {
	var best TypeFactory
	bestLen := -1
	for prefix, f := range r.handlers[handler] {
		if strings.HasPrefix(caseName, prefix) && len(prefix) > bestLen {
			best, bestLen = f, len(prefix)
		}
	}
	return best, best != nil
}

// Handlers returns the registered handler names, sorted.
func (r *Registry) Handlers() []string {
	out := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func factory[T any, PT types.Element[T]]() TypeFactory {
	return func() types.Serializable { return PT(new(T)) }
}

// DefaultRegistry registers the types of the ssz_generic test handlers.
func DefaultRegistry() *Registry {
	r := NewRegistry()

	r.Register("boolean", "", factory[types.Bool]())

	r.Register("uints", "uint_8_", factory[types.Uint8]())
	r.Register("uints", "uint_16_", factory[types.Uint16]())
	r.Register("uints", "uint_32_", factory[types.Uint32]())
	r.Register("uints", "uint_64_", factory[types.Uint64]())
	r.Register("uints", "uint_128_", factory[types.Uint128]())
	r.Register("uints", "uint_256_", factory[types.Uint256]())

	registerVectors[types.Bool](r, "bool")
	registerVectors[types.Uint8](r, "uint8")
	registerVectors[types.Uint16](r, "uint16")
	registerVectors[types.Uint32](r, "uint32")
	registerVectors[types.Uint64](r, "uint64")
	registerVectors[types.Uint128](r, "uint128")
	registerVectors[types.Uint256](r, "uint256")

	registerBitfields[lists.N0](r, "0")
	registerBitfields[lists.N1](r, "1")
	registerBitfields[lists.N2](r, "2")
	registerBitfields[lists.N3](r, "3")
	registerBitfields[lists.N4](r, "4")
	registerBitfields[lists.N5](r, "5")
	registerBitfields[lists.N8](r, "8")
	registerBitfields[lists.N16](r, "16")
	registerBitfields[lists.N31](r, "31")
	registerBitfields[lists.N512](r, "512")
	registerBitfields[lists.N513](r, "513")
	// invalid cases without a length in the name
	r.Register("bitlist", "bitlist_no_delimiter", factory[types.Bitlist[lists.N8]]())

	r.Register("containers", "SingleFieldTestStruct", factory[SingleFieldTestStruct]())
	r.Register("containers", "SmallTestStruct", factory[SmallTestStruct]())
	r.Register("containers", "FixedTestStruct", factory[FixedTestStruct]())
	r.Register("containers", "VarTestStruct", factory[VarTestStruct]())
	r.Register("containers", "ComplexTestStruct", factory[ComplexTestStruct]())
	r.Register("containers", "BitsStruct", factory[BitsStruct]())

	return r
}

func registerVectors[T any, PT types.Element[T]](r *Registry, elem string) {
	add := func(n string, f TypeFactory) {
		r.Register("basic_vector", "vec_"+elem+"_"+n+"_", f)
	}
	add("0", factory[types.Vector[T, PT, lists.N0]]())
	add("1", factory[types.Vector[T, PT, lists.N1]]())
	add("2", factory[types.Vector[T, PT, lists.N2]]())
	add("3", factory[types.Vector[T, PT, lists.N3]]())
	add("4", factory[types.Vector[T, PT, lists.N4]]())
	add("5", factory[types.Vector[T, PT, lists.N5]]())
	add("8", factory[types.Vector[T, PT, lists.N8]]())
	add("16", factory[types.Vector[T, PT, lists.N16]]())
	add("31", factory[types.Vector[T, PT, lists.N31]]())
	add("512", factory[types.Vector[T, PT, lists.N512]]())
	add("513", factory[types.Vector[T, PT, lists.N513]]())
}

// N is both a Limit and a Length, as are all predefined markers.
type bound interface {
	lists.Limit
	lists.Length
}

func registerBitfields[N bound](r *Registry, n string) {
	r.Register("bitlist", "bitlist_"+n+"_", factory[types.Bitlist[N]]())
	r.Register("bitvector", "bitvec_"+n+"_", factory[types.Bitvector[N]]())
}
