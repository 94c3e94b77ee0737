package crud

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaging_Normalize(t *testing.T) {
	cases := []struct {
		name string
		in   Paging
		want Paging
	}{
		{"使用默认值", Paging{}, Paging{Page: 1, PageSize: 20}},
		{"超过最大页大小", Paging{Page: 3, PageSize: 500}, Paging{Page: 3, PageSize: 100}},
		{"负数页码", Paging{Page: -1, PageSize: 5}, Paging{Page: 1, PageSize: 5}},
		{"超大页码", Paging{Page: math.MaxInt, PageSize: 10}, Paging{Page: math.MaxInt32/10 + 1, PageSize: 10}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.in.Normalize(20, 100))
		})
	}
}

func TestPaging_Offset(t *testing.T) {
	assert.Equal(t, 0, Paging{Page: 1, PageSize: 2}.Offset())
	assert.Equal(t, 4, Paging{Page: 3, PageSize: 2}.Offset())
	assert.Equal(t, 0, Paging{Page: 0, PageSize: 2}.Offset())

	t.Run("超大页码不溢出", func(t *testing.T) {
		p := Paging{Page: math.MaxInt, PageSize: 100}
		assert.Equal(t, math.MaxInt32, p.Offset())
		assert.GreaterOrEqual(t, p.Normalize(20, 100).Offset(), 0)
	})
}

func TestPageResult_TotalPages(t *testing.T) {
	assert.Equal(t, 3, (&PageResult[int]{Total: 5, PageSize: 2}).TotalPages())
	assert.Equal(t, 0, (&PageResult[int]{Total: 0, PageSize: 2}).TotalPages())
	assert.Equal(t, 1, (&PageResult[int]{Total: 2, PageSize: 2}).TotalPages())
}
