package query

import (
	"math"
	"net/url"
	"strconv"
)

const (
	defaultPageSize = 10
	maxPageSize     = 50
)

// Params are the list-endpoint parameters shared by every resource.
type Params struct {
	PageNumber int
	PageSize   int
	SearchTerm string
	OrderBy    string
	Fields     string
}

// ProductParams adds the price range filter. MaxPrice defaults to an
// effectively unbounded value so an absent parameter keeps the range valid.
type ProductParams struct {
	Params
	MinPrice uint
	MaxPrice uint
}

func (p ProductParams) ValidPriceRange() bool {
	return ValidRange(p.MinPrice, p.MaxPrice)
}

type EmployeeParams struct {
	Params
	MinAge uint
	MaxAge uint
}

func (p EmployeeParams) ValidAgeRange() bool {
	return ValidRange(p.MinAge, p.MaxAge)
}

// ValidRange reports whether [min, max] is a usable filter range.
// max must be strictly greater than min.
func ValidRange(min, max uint) bool {
	return max > min
}

func ParseParams(q url.Values) Params {
	p := Params{
		PageNumber: 1,
		PageSize:   defaultPageSize,
		SearchTerm: q.Get("searchTerm"),
		OrderBy:    q.Get("orderBy"),
		Fields:     q.Get("fields"),
	}
	if v, err := strconv.Atoi(q.Get("pageNumber")); err == nil {
		p.PageNumber = clampInt(v, 1, math.MaxInt)
	}
	if v, err := strconv.Atoi(q.Get("pageSize")); err == nil {
		p.PageSize = clampInt(v, 1, maxPageSize)
	}
	return p
}

func ParseProductParams(q url.Values) ProductParams {
	p := ProductParams{
		Params:   ParseParams(q),
		MinPrice: 0,
		MaxPrice: math.MaxUint32,
	}
	if v, err := strconv.ParseUint(q.Get("minPrice"), 10, 32); err == nil {
		p.MinPrice = uint(v)
	}
	if v, err := strconv.ParseUint(q.Get("maxPrice"), 10, 32); err == nil {
		p.MaxPrice = uint(v)
	}
	return p
}

func ParseEmployeeParams(q url.Values) EmployeeParams {
	p := EmployeeParams{
		Params: ParseParams(q),
		MinAge: 0,
		MaxAge: math.MaxUint32,
	}
	if v, err := strconv.ParseUint(q.Get("minAge"), 10, 32); err == nil {
		p.MinAge = uint(v)
	}
	if v, err := strconv.ParseUint(q.Get("maxAge"), 10, 32); err == nil {
		p.MaxAge = uint(v)
	}
	return p
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
