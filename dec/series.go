package dec

import "encoding/binary"

// FixedSeries splits data into elements of elemSize bytes each.
func FixedSeries(data []byte, elemSize uint64) ([][]byte, error) {
	if elemSize == 0 {
		return nil, IllegalTypeError(0)
	}
	size := uint64(len(data))
	count := size / elemSize
	if expected := count * elemSize; expected != size {
		return nil, AdditionalInputError(size, expected)
	}
	spans := make([][]byte, count)
	for i := uint64(0); i < count; i++ {
		spans[i] = data[i*elemSize : (i+1)*elemSize]
	}
	return spans, nil
}

// VariableSeriesLen returns the element count of a series of variable-size elements,
// derived from the first offset, without validating the other offsets.
func VariableSeriesLen(data []byte) (uint64, error) {
	size := uint64(len(data))
	if size == 0 {
		return 0, nil
	}
	if size < BytesPerLengthOffset {
		return 0, ExpectedFurtherInputError(size, BytesPerLengthOffset)
	}
	first := uint64(binary.LittleEndian.Uint32(data[:BytesPerLengthOffset]))
	if first == 0 || first%BytesPerLengthOffset != 0 || first > size {
		return 0, InvalidOffsetError(first)
	}
	return first / BytesPerLengthOffset, nil
}

// VariableSeries splits a series of variable-size elements.
// The series starts with one offset per element, the first offset
// determines the element count.
func VariableSeries(data []byte) ([][]byte, error) {
	count, err := VariableSeriesLen(data)
	if err != nil || count == 0 {
		return nil, err
	}
	var d Deserializer
	for i := uint64(0); i < count; i++ {
		d.WithElement(true, 0)
	}
	return d.Finalize(data)
}
