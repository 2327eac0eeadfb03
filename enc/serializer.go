package enc

import (
	"encoding/binary"
	"math"
)

// BytesPerLengthOffset is the width of an offset in the fixed-size part of an encoding.
// Note: when this is changed, don't forget to change the offset writes in Serialize.
const BytesPerLengthOffset = 4

// Marshaler is the encoding side of a serializable value.
type Marshaler interface {
	IsVariableSize() bool
	// Serialize appends the encoding to buf.
	Serialize(buf []byte) ([]byte, error)
}

type offsetSlot struct {
	// position of the offset in the fixed part
	at int
	// start of the referenced data in the variable part
	start int
}

// Serializer accumulates the elements of a container or sequence.
// Fixed-size elements are written in place, variable-size elements get
// an offset in the fixed part and their data is appended to the variable part.
// The offsets are filled in once all elements are known.
type Serializer struct {
	fixed    []byte
	variable []byte
	slots    []offsetSlot
}

// WithElement adds the next element.
// On error the serializer should be discarded.
func (s *Serializer) WithElement(e Marshaler) (err error) {
	if e.IsVariableSize() {
		s.slots = append(s.slots, offsetSlot{at: len(s.fixed), start: len(s.variable)})
		s.fixed = append(s.fixed, 0, 0, 0, 0)
		s.variable, err = e.Serialize(s.variable)
	} else {
		s.fixed, err = e.Serialize(s.fixed)
	}
	return err
}

// Len is the total length of the encoding so far.
func (s *Serializer) Len() int {
	return len(s.fixed) + len(s.variable)
}

// Serialize backfills the offsets, and appends the complete encoding to buf.
// On error buf is returned as-is.
func (s *Serializer) Serialize(buf []byte) ([]byte, error) {
	fixedLen := len(s.fixed)
	for _, sl := range s.slots {
		if offset := uint64(fixedLen) + uint64(sl.start); offset > math.MaxUint32 {
			return buf, OffsetOverflowError(offset)
		}
		binary.LittleEndian.PutUint32(s.fixed[sl.at:sl.at+BytesPerLengthOffset], uint32(fixedLen+sl.start))
	}
	buf = append(buf, s.fixed...)
	buf = append(buf, s.variable...)
	return buf, nil
}

// Reset empties the serializer, keeping the allocated space.
func (s *Serializer) Reset() {
	s.fixed = s.fixed[:0]
	s.variable = s.variable[:0]
	s.slots = s.slots[:0]
}
