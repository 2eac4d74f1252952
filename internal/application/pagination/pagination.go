package pagination

import (
	"net/url"
	"strconv"
)

// DefaultLimit is the page size applied when the request carries none.
const DefaultLimit = 50

// DefaultMaxLimit caps the requested limit unless the caller configures
// another cap. Requests above the cap are clamped, not rejected.
const DefaultMaxLimit = 100

// Params is the requested limit/offset window.
type Params struct {
	Limit  int
	Offset int
}

// Parse extracts limit and offset from URL query values.
// PRE: maxLimit >= 0; 0 means no cap
// POST: Limit >= 1 (default applied), Offset >= 0, Limit <= maxLimit when capped
func Parse(q url.Values, maxLimit int) Params {
	limit, err := strconv.Atoi(q.Get("limit"))
	if err != nil || limit < 1 {
		limit = DefaultLimit
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}
	offset, err := strconv.Atoi(q.Get("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return Params{Limit: limit, Offset: offset}
}

// Page is a bounded slice of a listing result plus the total count.
type Page[T any] struct {
	Items  []T `json:"items"`
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// Paginate windows items to [offset, offset+limit), clamped to the
// available length.
// PRE: p has Limit >= 1, Offset >= 0 (Parse guarantees this)
// POST: len(Items) == max(0, min(Limit, len(items)-Offset)); Total == len(items);
// Items is never nil, empty input and offsets past the end yield empty pages
func Paginate[T any](items []T, p Params) Page[T] {
	total := len(items)
	start := p.Offset
	if start > total {
		start = total
	}
	end := start + p.Limit
	if end > total {
		end = total
	}
	page := Page[T]{
		Items:  make([]T, end-start),
		Total:  total,
		Limit:  p.Limit,
		Offset: p.Offset,
	}
	copy(page.Items, items[start:end])
	return page
}
