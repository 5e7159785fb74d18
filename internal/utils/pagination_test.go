package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPaginationParams(t *testing.T) {
	params := NewPaginationParams(3, 10)

	assert.Equal(t, 3, params.Page)
	assert.Equal(t, 10, params.Limit)
	assert.Equal(t, 20, params.Offset)
}

func TestNewPaginationParams_OffsetSaturates(t *testing.T) {
	params := NewPaginationParams(100000000000000000, 100)

	assert.Equal(t, 100000000000000000, params.Page)
	assert.Equal(t, math.MaxInt, params.Offset)
	assert.True(t, params.PastEnd(1))

	params = NewPaginationParams(math.MaxInt, 1)
	assert.Equal(t, math.MaxInt-1, params.Offset)
}

func TestPaginationParams_PastEnd(t *testing.T) {
	assert.False(t, NewPaginationParams(1, 10).PastEnd(1))
	assert.True(t, NewPaginationParams(1, 10).PastEnd(0))
	assert.False(t, NewPaginationParams(3, 10).PastEnd(21))
	assert.True(t, NewPaginationParams(3, 10).PastEnd(20))
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total int64
		limit int
		want  int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{25, 10, 3},
		{100, 100, 1},
		{101, 100, 2},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, TotalPages(tc.total, tc.limit), "total=%d limit=%d", tc.total, tc.limit)
	}
}

func TestNewPaginationResponse(t *testing.T) {
	resp := NewPaginationResponse(NewPaginationParams(3, 10), 25)

	assert.Equal(t, PaginationResponse{Page: 3, Limit: 10, Total: 25, Pages: 3}, resp)
}

func TestGenerateRequestID(t *testing.T) {
	a, err := GenerateRequestID()
	assert.NoError(t, err)
	b, err := GenerateRequestID()
	assert.NoError(t, err)

	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
}
