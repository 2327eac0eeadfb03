package htr

import "fmt"

type MerkleizationErrorKind uint8

const (
	// ExceedsLimit: more leaves than the tree limit allows.
	ExceedsLimit MerkleizationErrorKind = iota
	// InvalidInput: a value that cannot be merkleized, e.g. an unknown union selector.
	InvalidInput
)

// MerkleizationError is returned by the hashing stage.
type MerkleizationError struct {
	Kind MerkleizationErrorKind
	// Count and Limit are set for ExceedsLimit.
	Count, Limit uint64
	Msg          string
}

var (
	ErrExceedsLimit = &MerkleizationError{Kind: ExceedsLimit}
	ErrInvalidInput = &MerkleizationError{Kind: InvalidInput}
)

func ExceedsLimitError(count uint64, limit uint64) error {
	return &MerkleizationError{Kind: ExceedsLimit, Count: count, Limit: limit}
}

func InvalidInputError(format string, args ...interface{}) error {
	return &MerkleizationError{Kind: InvalidInput, Msg: fmt.Sprintf(format, args...)}
}

func (e *MerkleizationError) Error() string {
	switch e.Kind {
	case ExceedsLimit:
		return fmt.Sprintf("merkleization: %d leaves exceed limit %d", e.Count, e.Limit)
	case InvalidInput:
		return "merkleization: invalid input: " + e.Msg
	default:
		return "merkleization: unknown error"
	}
}

// Is matches any MerkleizationError of the same kind.
func (e *MerkleizationError) Is(target error) bool {
	t, ok := target.(*MerkleizationError)
	return ok && t.Kind == e.Kind
}
