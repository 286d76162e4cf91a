package query

import (
	"math"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidRange(t *testing.T) {
	tests := []struct {
		name  string
		min   uint
		max   uint
		valid bool
	}{
		{"max greater than min", 10, 20, true},
		{"max equal to min", 10, 10, false},
		{"max less than min", 20, 10, false},
		{"defaults", 0, math.MaxUint32, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidRange(tt.min, tt.max))
		})
	}
}

func TestParseParams_Defaults(t *testing.T) {
	p := ParseParams(url.Values{})

	assert.Equal(t, 1, p.PageNumber)
	assert.Equal(t, 10, p.PageSize)
	assert.Empty(t, p.SearchTerm)
	assert.Empty(t, p.OrderBy)
	assert.Empty(t, p.Fields)
}

func TestParseParams_ClampsPageValues(t *testing.T) {
	q := url.Values{}
	q.Set("pageNumber", "-3")
	q.Set("pageSize", "9999")

	p := ParseParams(q)

	assert.Equal(t, 1, p.PageNumber)
	assert.Equal(t, 50, p.PageSize)
}

func TestParseProductParams(t *testing.T) {
	q := url.Values{}
	q.Set("minPrice", "5")
	q.Set("maxPrice", "100")
	q.Set("searchTerm", "phone")
	q.Set("orderBy", "price desc")
	q.Set("fields", "name,price")

	p := ParseProductParams(q)

	assert.Equal(t, uint(5), p.MinPrice)
	assert.Equal(t, uint(100), p.MaxPrice)
	assert.True(t, p.ValidPriceRange())
	assert.Equal(t, "phone", p.SearchTerm)
	assert.Equal(t, "price desc", p.OrderBy)
	assert.Equal(t, "name,price", p.Fields)
}

func TestParseProductParams_InvalidRange(t *testing.T) {
	q := url.Values{}
	q.Set("minPrice", "100")
	q.Set("maxPrice", "5")

	assert.False(t, ParseProductParams(q).ValidPriceRange())
}

func TestParseEmployeeParams_Defaults(t *testing.T) {
	p := ParseEmployeeParams(url.Values{})

	assert.Equal(t, uint(0), p.MinAge)
	assert.Equal(t, uint(math.MaxUint32), p.MaxAge)
	assert.True(t, p.ValidAgeRange())
}
