package common

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPaginationParams_Defaults(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/celebrities", nil)

	params := ExtractPaginationParams(r)

	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 20, params.PageSize)
	assert.Equal(t, "desc", params.Order)
	assert.Empty(t, params.Sort)
}

func TestExtractPaginationParams_Explicit(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/celebrities?page=3&page_size=5&sort=name&order=asc", nil)

	params := ExtractPaginationParams(r)

	assert.Equal(t, 3, params.Page)
	assert.Equal(t, 5, params.PageSize)
	assert.Equal(t, "name", params.Sort)
	assert.Equal(t, "asc", params.Order)
}

func TestExtractPaginationParams_RejectsGarbage(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/celebrities?page=-2&page_size=9000&order=sideways", nil)

	params := ExtractPaginationParams(r)

	assert.Equal(t, 1, params.Page, "negative page keeps the default")
	assert.Equal(t, 100, params.PageSize, "page size is capped")
	assert.Equal(t, "desc", params.Order, "unknown order keeps the default")
}

func TestSliceBounds(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		pageSize int
		length   int
		start    int
		end      int
	}{
		{"first page", 1, 10, 25, 0, 10},
		{"last partial page", 3, 10, 25, 20, 25},
		{"past the end", 5, 10, 25, 25, 25},
		{"empty list", 1, 10, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := PaginationParams{Page: tt.page, PageSize: tt.pageSize}
			start, end := p.SliceBounds(tt.length)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
		})
	}
}

func TestBuildPaginationMeta(t *testing.T) {
	meta := BuildPaginationMeta(2, 10, 25)

	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 25, meta.Total)
	assert.Equal(t, 3, meta.TotalPages)
	assert.True(t, meta.HasNext)
	assert.True(t, meta.HasPrev)
}

func TestCalculateTotalPages_ZeroPageSize(t *testing.T) {
	assert.Equal(t, 0, CalculateTotalPages(10, 0))
}
