// Package pagination slices ordered collections into numbered pages and
// builds the prev/next links of list endpoints.
package pagination

import (
	"context"
	"math"
	"net/http"
	"net/url"
	"strconv"
)

// MaxLimit caps the page size a client may ask for.
const MaxLimit = 100

// Params selects one page. Page is 1-based.
type Params struct {
	Page  int
	Limit int
}

// FromRequest reads the page and limit query parameters. A missing or
// malformed page means 1; a missing, malformed or non-positive limit means
// defaultLimit. Page is capped so that its offset fits in an int.
func FromRequest(r *http.Request, defaultLimit int) Params {
	if defaultLimit < 1 {
		defaultLimit = 10
	}
	q := r.URL.Query()

	page, err := strconv.Atoi(q.Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(q.Get("limit"))
	if err != nil || limit < 1 {
		limit = defaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if maxPage := math.MaxInt / limit; page > maxPage {
		page = maxPage
	}

	return Params{Page: page, Limit: limit}
}

// Offset is the number of items before the page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Source is an ordered collection that can be counted and sliced.
type Source[T any] interface {
	Count(ctx context.Context) (int, error)
	Slice(ctx context.Context, limit, offset int) ([]T, error)
}

// SourceFuncs adapts a pair of functions to Source.
type SourceFuncs[T any] struct {
	CountFunc func(ctx context.Context) (int, error)
	SliceFunc func(ctx context.Context, limit, offset int) ([]T, error)
}

func (s SourceFuncs[T]) Count(ctx context.Context) (int, error) { return s.CountFunc(ctx) }

func (s SourceFuncs[T]) Slice(ctx context.Context, limit, offset int) ([]T, error) {
	return s.SliceFunc(ctx, limit, offset)
}

// Result is one page of a collection.
type Result[T any] struct {
	Items  []T
	Total  int
	Params Params
}

// Fetch loads the page selected by p. Pages past the end are empty, not
// an error.
func Fetch[T any](ctx context.Context, src Source[T], p Params) (Result[T], error) {
	total, err := src.Count(ctx)
	if err != nil {
		return Result[T]{}, err
	}

	pages := Result[T]{Total: total, Params: p}.Pages()
	items := []T{}
	if p.Page >= 1 && p.Page <= pages {
		items, err = src.Slice(ctx, p.Limit, p.Offset())
		if err != nil {
			return Result[T]{}, err
		}
		if items == nil {
			items = []T{}
		}
	}

	return Result[T]{Items: items, Total: total, Params: p}, nil
}

// HasPrev reports whether a previous page exists.
func (r Result[T]) HasPrev() bool {
	return r.Params.Page > 1
}

// HasNext reports whether items remain past this page.
func (r Result[T]) HasNext() bool {
	return r.Params.Page < r.Pages()
}

// Pages is the number of non-empty pages.
func (r Result[T]) Pages() int {
	if r.Params.Limit < 1 {
		return 0
	}
	return (r.Total + r.Params.Limit - 1) / r.Params.Limit
}

// Links returns the prev and next URLs, nil when absent. All query
// parameters of base other than page and limit are kept.
func (r Result[T]) Links(base *url.URL) (prev, next *string) {
	if r.HasPrev() {
		s := Link(base, r.Params.Page-1, r.Params.Limit)
		prev = &s
	}
	if r.HasNext() {
		s := Link(base, r.Params.Page+1, r.Params.Limit)
		next = &s
	}
	return prev, next
}

// Link points base at the given page.
func Link(base *url.URL, page, limit int) string {
	u := *base
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	u.RawQuery = q.Encode()
	return u.String()
}

// Map converts the items of a page.
func Map[T, U any](r Result[T], f func(T) U) []U {
	out := make([]U, 0, len(r.Items))
	for _, item := range r.Items {
		out = append(out, f(item))
	}
	return out
}
