package query

import (
	"sort"
	"strings"
)

type Metadata struct {
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
	PageSize    int `json:"pageSize"`
	TotalCount  int `json:"totalCount"`
}

type PagedList[T any] struct {
	Items    []T
	Metadata Metadata
}

// FilterRange keeps items whose numeric value lies in [min, max] inclusive.
func FilterRange[T any](items []T, value func(T) float64, min, max float64) []T {
	filtered := make([]T, 0, len(items))
	for _, item := range items {
		if v := value(item); v >= min && v <= max {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// Search keeps items whose text field contains the term, case-insensitively.
// A blank term is the identity.
func Search[T any](items []T, text func(T) string, term string) []T {
	if strings.TrimSpace(term) == "" {
		return items
	}
	lowered := strings.ToLower(strings.TrimSpace(term))
	matched := make([]T, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(text(item)), lowered) {
			matched = append(matched, item)
		}
	}
	return matched
}

// SortKey compares two items on one field: negative when a sorts before b.
type SortKey[T any] func(a, b T) int

// Sort orders items by a comma-separated "field[ asc|desc]" expression.
// Unknown field names are dropped without error; when nothing valid remains
// the fallback key is used. The sort is stable, so earlier ordering survives
// among equal keys.
func Sort[T any](items []T, orderBy string, keys map[string]SortKey[T], fallback string) []T {
	type directedKey struct {
		key  SortKey[T]
		desc bool
	}

	var order []directedKey
	for _, token := range strings.Split(orderBy, ",") {
		parts := strings.Fields(token)
		if len(parts) == 0 {
			continue
		}
		key, ok := keys[strings.ToLower(parts[0])]
		if !ok {
			continue
		}
		desc := len(parts) > 1 && strings.EqualFold(parts[1], "desc")
		order = append(order, directedKey{key: key, desc: desc})
	}

	if len(order) == 0 {
		key, ok := keys[fallback]
		if !ok {
			return items
		}
		order = append(order, directedKey{key: key})
	}

	sorted := make([]T, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		for _, dk := range order {
			c := dk.key(sorted[i], sorted[j])
			if c == 0 {
				continue
			}
			if dk.desc {
				return c > 0
			}
			return c < 0
		}
		return false
	})
	return sorted
}

// Paginate slices one page out of items and computes the metadata envelope
// from the pre-pagination count.
func Paginate[T any](items []T, pageNumber, pageSize int) PagedList[T] {
	if pageNumber < 1 {
		pageNumber = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}

	total := len(items)
	start := (pageNumber - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	page := make([]T, end-start)
	copy(page, items[start:end])

	return PagedList[T]{
		Items: page,
		Metadata: Metadata{
			CurrentPage: pageNumber,
			TotalPages:  (total + pageSize - 1) / pageSize,
			PageSize:    pageSize,
			TotalCount:  total,
		},
	}
}
