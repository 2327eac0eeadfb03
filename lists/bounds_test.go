package lists

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type validatorRegistryLimit struct{}

func (validatorRegistryLimit) Limit() uint64 { return 1 << 40 }

func TestBounds(t *testing.T) {
	for _, tt := range []struct {
		limit    Limit
		length   Length
		expected uint64
	}{
		{N0{}, N0{}, 0},
		{N1{}, N1{}, 1},
		{N31{}, N31{}, 31},
		{N513{}, N513{}, 513},
		{N1099511627776{}, N1099511627776{}, 1 << 40},
	} {
		assert.Equal(t, tt.expected, tt.limit.Limit())
		assert.Equal(t, tt.expected, tt.length.Length())
	}
	var custom Limit = validatorRegistryLimit{}
	assert.Equal(t, N1099511627776{}.Limit(), custom.Limit())
}
