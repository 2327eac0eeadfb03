package spectest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComplexTestStructFields(t *testing.T) {
	var v ComplexTestStruct
	fields := v.fields()
	require.Len(t, fields, 7)
	assert.Same(t, &v.A, fields[0])
	assert.Same(t, &v.D, fields[3])
	assert.Same(t, &v.G, fields[6])
	assert.Same(t, &v.E, fields[4])
	assert.True(t, v.IsVariableSize())
}
