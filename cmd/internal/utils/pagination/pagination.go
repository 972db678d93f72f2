package pagination

import (
	"math"
	"net/url"
	"strconv"

	"blogapi/cmd/internal/utils/apierror"
)

const (
	DefaultPageSize = 30
	MaxPageSize     = 100

	PageParam     = "page"
	PageSizeParam = "page_size"
)

// Params is a resolved page request.
type Params struct {
	Page int
	Size int
}

// Offset saturates at math.MaxInt, so a page far past the end still
// selects an empty window instead of wrapping around.
func (p Params) Offset() int {
	if p.Size <= 0 || p.Page <= 1 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.Size {
		return math.MaxInt
	}
	return (p.Page - 1) * p.Size
}

func (p Params) Limit() int {
	return p.Size
}

// Page is the response envelope of every list operation.
type Page[T any] struct {
	Count    int64   `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// ParseParams reads page and page_size from the query. An unparsable or
// non-positive page is rejected; a bad page_size silently falls back to
// the default, and sizes above MaxPageSize are capped.
func ParseParams(query url.Values) (Params, apierror.ErrorResponse) {
	params := Params{Page: 1, Size: DefaultPageSize}

	if raw := query.Get(PageParam); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return params, apierror.InvalidPageError
		}
		params.Page = page
	}

	if raw := query.Get(PageSizeParam); raw != "" {
		size, err := strconv.Atoi(raw)
		if err == nil && size > 0 {
			params.Size = min(size, MaxPageSize)
		}
	}
	return params, nil
}

// NewPage builds the envelope. 'base' is the absolute request URL whose
// query is reused for the next/previous links.
func NewPage[T any](base *url.URL, params Params, count int64, results []T) *Page[T] {
	if results == nil {
		results = []T{}
	}

	lastPage := int((count + int64(params.Size) - 1) / int64(params.Size))
	page := &Page[T]{Count: count, Results: results}

	if params.Page < lastPage {
		page.Next = pageLink(base, params.Page+1)
	}

	if params.Page > 1 && lastPage > 0 {
		page.Previous = pageLink(base, min(params.Page-1, lastPage))
	}
	return page
}

// pageLink mirrors the usual convention of dropping the page parameter for the first page.
func pageLink(base *url.URL, page int) *string {
	u := *base
	query := u.Query()
	if page == 1 {
		query.Del(PageParam)
	} else {
		query.Set(PageParam, strconv.Itoa(page))
	}
	u.RawQuery = query.Encode()

	link := u.String()
	return &link
}
