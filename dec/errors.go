package dec

import "fmt"

type DeserializeErrorKind uint8

const (
	// ExpectedFurtherInput: fewer bytes than the minimum required.
	ExpectedFurtherInput DeserializeErrorKind = iota
	// AdditionalInput: trailing bytes beyond the expected exact length.
	AdditionalInput
	// InputTooShort: a fixed-size collection with too few bytes or elements.
	InputTooShort
	// ExtraInput: a fixed-size collection with too many bytes or elements.
	ExtraInput
	// InvalidByte: a byte outside of the valid range, e.g. a union selector or a bool.
	InvalidByte
	// IllegalType: a zero-length vector.
	IllegalType
	// InvalidOffset: an offset out of order, into the fixed part, or past the input.
	InvalidOffset
	// BoundExceeded: more list elements than the limit allows.
	BoundExceeded
)

// DeserializeError is returned when bytes are not a valid encoding of the requested type.
type DeserializeError struct {
	Kind DeserializeErrorKind
	// Provided and Expected are set for ExpectedFurtherInput and AdditionalInput,
	// Provided is the offending offset for InvalidOffset.
	Provided, Expected uint64
	// Bound is set for IllegalType and BoundExceeded (with Provided as element count).
	Bound uint64
	// Byte is set for InvalidByte.
	Byte byte
}

var (
	ErrExpectedFurtherInput = &DeserializeError{Kind: ExpectedFurtherInput}
	ErrAdditionalInput      = &DeserializeError{Kind: AdditionalInput}
	ErrInputTooShort        = &DeserializeError{Kind: InputTooShort}
	ErrExtraInput           = &DeserializeError{Kind: ExtraInput}
	ErrInvalidByte          = &DeserializeError{Kind: InvalidByte}
	ErrIllegalType          = &DeserializeError{Kind: IllegalType}
	ErrInvalidOffset        = &DeserializeError{Kind: InvalidOffset}
	ErrBoundExceeded        = &DeserializeError{Kind: BoundExceeded}
)

func ExpectedFurtherInputError(provided uint64, expected uint64) error {
	return &DeserializeError{Kind: ExpectedFurtherInput, Provided: provided, Expected: expected}
}

func AdditionalInputError(provided uint64, expected uint64) error {
	return &DeserializeError{Kind: AdditionalInput, Provided: provided, Expected: expected}
}

func InputTooShortError() error {
	return &DeserializeError{Kind: InputTooShort}
}

func ExtraInputError() error {
	return &DeserializeError{Kind: ExtraInput}
}

func InvalidByteError(b byte) error {
	return &DeserializeError{Kind: InvalidByte, Byte: b}
}

func IllegalTypeError(bound uint64) error {
	return &DeserializeError{Kind: IllegalType, Bound: bound}
}

func InvalidOffsetError(offset uint64) error {
	return &DeserializeError{Kind: InvalidOffset, Provided: offset}
}

func BoundExceededError(count uint64, bound uint64) error {
	return &DeserializeError{Kind: BoundExceeded, Provided: count, Bound: bound}
}

func (e *DeserializeError) Error() string {
	switch e.Kind {
	case ExpectedFurtherInput:
		return fmt.Sprintf("deserialize: expected further input: provided %d bytes, expected %d", e.Provided, e.Expected)
	case AdditionalInput:
		return fmt.Sprintf("deserialize: additional input: provided %d bytes, expected %d", e.Provided, e.Expected)
	case InputTooShort:
		return "deserialize: input too short"
	case ExtraInput:
		return "deserialize: extra input"
	case InvalidByte:
		return fmt.Sprintf("deserialize: invalid byte 0x%02x", e.Byte)
	case IllegalType:
		return fmt.Sprintf("deserialize: illegal type with bound %d", e.Bound)
	case InvalidOffset:
		return fmt.Sprintf("deserialize: invalid offset %d", e.Provided)
	case BoundExceeded:
		return fmt.Sprintf("deserialize: %d elements exceed bound %d", e.Provided, e.Bound)
	default:
		return "deserialize: unknown error"
	}
}

// Is matches any DeserializeError of the same kind.
func (e *DeserializeError) Is(target error) bool {
	t, ok := target.(*DeserializeError)
	return ok && t.Kind == e.Kind
}
