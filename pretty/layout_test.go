package pretty

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/protolambda/tssz/dec"
)

func TestParseFields(t *testing.T) {
	fields, err := ParseFields("2, v,1")
	require.NoError(t, err)
	assert.Equal(t, []dec.Field{{Size: 2}, {Variable: true}, {Size: 1}}, fields)

	for _, desc := range []string{"", " ", "2,x", "0", "2,,1"} {
		_, err := ParseFields(desc)
		assert.Error(t, err, "layout %q", desc)
	}
}

func TestLayout(t *testing.T) {
	data, err := hex.DecodeString("cdab07000000ff010002000300")
	require.NoError(t, err)
	fields, err := ParseFields("2,v,1")
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, Layout(&buf, data, fields))
	assert.Equal(t, `container: 13 bytes, fixed part 7 bytes
  0: fixed @0, 2 bytes: 0xcdab
  1: offset @2 -> 7, 6 bytes: 0x010002000300
  2: fixed @6, 1 bytes: 0xff
`, buf.String())
}

func TestLayoutInvalid(t *testing.T) {
	fields, err := ParseFields("2,v,1")
	require.NoError(t, err)
	var buf bytes.Buffer
	assert.ErrorIs(t, Layout(&buf, []byte{0xcd, 0xab, 8, 0, 0, 0, 0xff}, fields), dec.ErrInvalidOffset)
	assert.Empty(t, buf.String())
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, errors.New("closed")
}

func TestPrettyWriterError(t *testing.T) {
	pw := NewPrettyWriter(failWriter{}, "  ")
	pw.Line(1, "a")
	pw.Line(1, "b")
	assert.EqualError(t, pw.Err(), "closed")
}
