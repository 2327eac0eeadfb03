package enc

import "fmt"

type SerializeErrorKind uint8

const (
	// IllegalType: a zero-length vector, or a list over its limit.
	IllegalType SerializeErrorKind = iota
	// OffsetOverflow: the encoding is too large for 4 byte offsets.
	OffsetOverflow
	// InvalidSelector: a union selector without a matching variant.
	InvalidSelector
)

// SerializeError is returned when a value cannot be encoded.
type SerializeError struct {
	Kind SerializeErrorKind
	// Bound is set for IllegalType.
	Bound uint64
	// Length is the offending offset, set for OffsetOverflow.
	Length uint64
	// Selector is set for InvalidSelector.
	Selector uint8
}

var (
	ErrIllegalType     = &SerializeError{Kind: IllegalType}
	ErrOffsetOverflow  = &SerializeError{Kind: OffsetOverflow}
	ErrInvalidSelector = &SerializeError{Kind: InvalidSelector}
)

func IllegalTypeError(bound uint64) error {
	return &SerializeError{Kind: IllegalType, Bound: bound}
}

func OffsetOverflowError(offset uint64) error {
	return &SerializeError{Kind: OffsetOverflow, Length: offset}
}

func InvalidSelectorError(selector uint8) error {
	return &SerializeError{Kind: InvalidSelector, Selector: selector}
}

func (e *SerializeError) Error() string {
	switch e.Kind {
	case IllegalType:
		return fmt.Sprintf("serialize: illegal type with bound %d", e.Bound)
	case OffsetOverflow:
		return fmt.Sprintf("serialize: offset %d does not fit 4 bytes", e.Length)
	case InvalidSelector:
		return fmt.Sprintf("serialize: no variant for selector %d", e.Selector)
	default:
		return "serialize: unknown error"
	}
}

// Is matches any SerializeError of the same kind.
func (e *SerializeError) Is(target error) bool {
	t, ok := target.(*SerializeError)
	return ok && t.Kind == e.Kind
}
