package types

import (
	"github.com/pkg/errors"

	"github.com/protolambda/tssz/htr"
)

// Serializable is the capability contract of every SSZ type.
//
// IsVariableSize and SizeHint describe the type, not the value:
// they return the same result for every value of the type, including the zero value.
type Serializable interface {
	// If the encoding of the type has a variable size.
	IsVariableSize() bool
	// The size of the encoding if it is fixed-size, 0 otherwise.
	SizeHint() uint64
	// Appends the encoding to buf. On error buf is returned with its original contents.
	Serialize(buf []byte) ([]byte, error)
	// Replaces the value with the decoded data. On error the value is left untouched.
	Deserialize(data []byte) error
	// Computes the hash tree root.
	HashTreeRoot(h *htr.Hasher) (htr.Node, error)
}

// Element constrains the element types of collections:
// T is stored by value, and *T implements Serializable.
type Element[T any] interface {
	*T
	Serializable
}

// basic is implemented by the basic scalar types.
// Collections of basic elements pack them into chunks for merkleization,
// instead of hashing each element separately.
type basic interface {
	Serializable
	isBasic()
}

func isBasic(v Serializable) bool {
	_, ok := v.(basic)
	return ok
}

// ErrCapacityExceeded is returned when a collection is constructed or mutated beyond its bound.
var ErrCapacityExceeded = errors.New("collection capacity exceeded")

// ErrIndexOutOfRange is returned when accessing an element that does not exist.
var ErrIndexOutOfRange = errors.New("index out of range")
