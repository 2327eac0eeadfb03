package dec

import (
	"encoding/binary"
)

// BytesPerLengthOffset is the width of an offset in the fixed-size part of an encoding.
const BytesPerLengthOffset = 4

// Field describes the layout of one element of a container.
type Field struct {
	Variable bool
	// Size is the fixed size of the element, ignored for variable-size elements.
	Size uint64
}

// Deserializer recovers the byte span of every field of a container.
// Fields are declared in order, then Finalize splits the input.
type Deserializer struct {
	fields      []Field
	fixedLen    uint64
	offsetCount uint64
}

// WithElement declares the next field.
func (d *Deserializer) WithElement(variable bool, sizeHint uint64) {
	d.WithField(Field{Variable: variable, Size: sizeHint})
}

// WithField declares the next field.
func (d *Deserializer) WithField(f Field) {
	if f.Variable {
		d.fixedLen += BytesPerLengthOffset
		d.offsetCount++
	} else {
		d.fixedLen += f.Size
	}
	d.fields = append(d.fields, f)
}

// FixedLen is the length of the fixed-size part: fixed fields and offsets.
func (d *Deserializer) FixedLen() uint64 {
	return d.fixedLen
}

// Fields returns the declared layout.
func (d *Deserializer) Fields() []Field {
	return d.fields
}

// Finalize splits data into one span per declared field.
// The spans alias data.
func (d *Deserializer) Finalize(data []byte) ([][]byte, error) {
	size := uint64(len(data))
	if size < d.fixedLen {
		return nil, ExpectedFurtherInputError(size, d.fixedLen)
	}
	if d.offsetCount == 0 && size > d.fixedLen {
		return nil, AdditionalInputError(size, d.fixedLen)
	}
	spans := make([][]byte, len(d.fields))
	// index of the fields that have an offset
	varFields := make([]int, 0, d.offsetCount)
	offsets := make([]uint64, 0, d.offsetCount)
	pos := uint64(0)
	for i, f := range d.fields {
		if f.Variable {
			offsets = append(offsets, uint64(binary.LittleEndian.Uint32(data[pos:pos+BytesPerLengthOffset])))
			varFields = append(varFields, i)
			pos += BytesPerLengthOffset
		} else {
			spans[i] = data[pos : pos+f.Size]
			pos += f.Size
		}
	}
	if err := checkOffsets(offsets, d.fixedLen, size); err != nil {
		return nil, err
	}
	for j, i := range varFields {
		end := size
		if j+1 < len(offsets) {
			end = offsets[j+1]
		}
		spans[i] = data[offsets[j]:end]
	}
	return spans, nil
}

// checkOffsets verifies the first offset points right after the fixed part,
// and that no offset is out of order or past the end of the input.
func checkOffsets(offsets []uint64, fixedLen uint64, size uint64) error {
	prev := fixedLen
	for i, offset := range offsets {
		if i == 0 && offset != fixedLen {
			return InvalidOffsetError(offset)
		}
		if offset < prev || offset > size {
			return InvalidOffsetError(offset)
		}
		prev = offset
	}
	return nil
}
