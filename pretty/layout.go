package pretty

import (
	"encoding/binary"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"

	"github.com/protolambda/tssz/dec"
)

// ParseFields parses a comma separated layout description:
// a number is a fixed-size field of that many bytes, "v" is a variable-size field.
//
//	"2,v,1" -> uint16, a list, uint8
func ParseFields(desc string) ([]dec.Field, error) {
	if strings.TrimSpace(desc) == "" {
		return nil, errors.New("empty field layout")
	}
	parts := strings.Split(desc, ",")
	fields := make([]dec.Field, 0, len(parts))
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "v" {
			fields = append(fields, dec.Field{Variable: true})
			continue
		}
		size, err := strconv.ParseUint(p, 10, 64)
		if err != nil || size == 0 {
			return nil, errors.Errorf("field %d: expected a byte size or \"v\", got %q", i, p)
		}
		fields = append(fields, dec.Field{Size: size})
	}
	return fields, nil
}

// Layout splits data with the given container layout,
// and writes the fixed part, the offsets and the span of every field.
func Layout(w io.Writer, data []byte, fields []dec.Field) error {
	var d dec.Deserializer
	for _, f := range fields {
		d.WithField(f)
	}
	spans, err := d.Finalize(data)
	if err != nil {
		return err
	}
	pw := NewPrettyWriter(w, "  ")
	pw.Line(0, fmt.Sprintf("container: %d bytes, fixed part %d bytes", len(data), d.FixedLen()))
	pos := uint64(0)
	for i, f := range fields {
		if f.Variable {
			offset := binary.LittleEndian.Uint32(data[pos : pos+dec.BytesPerLengthOffset])
			pw.Line(1, fmt.Sprintf("%d: offset @%d -> %d, %d bytes: %s", i, pos, offset, len(spans[i]), hexutil.Encode(spans[i])))
			pos += dec.BytesPerLengthOffset
		} else {
			pw.Line(1, fmt.Sprintf("%d: fixed @%d, %d bytes: %s", i, pos, f.Size, hexutil.Encode(spans[i])))
			pos += f.Size
		}
	}
	return pw.Err()
}
