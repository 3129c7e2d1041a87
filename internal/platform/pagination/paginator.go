package pagination

import (
	"fmt"
	"net/url"
	"strconv"
)

// Page is one window of a collection.
type Page[T any] struct {
	Items      []T
	Total      int
	Link       string
	NextCursor string
	PrevCursor string
}

// Options describe the collection being paged.
type Options struct {
	// Kind is stamped into cursors and checked on the way back in.
	Kind string
	// Path is the request path used for Link targets.
	Path string
	// Query holds filters to carry into Link targets.
	Query url.Values
}

// Paginate returns the page of items following cursor. The cursor Key must
// match key(item) for some item; otherwise ErrInvalidCursor is returned.
func Paginate[T any](items []T, cursor Cursor, limit int, key func(T) string, opts Options) (Page[T], error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	total := len(items)

	start := 0
	if cursor.Key != "" {
		start = -1
		for i, item := range items {
			if key(item) == cursor.Key {
				start = i + 1
				break
			}
		}
		if start < 0 {
			return Page[T]{}, fmt.Errorf("%w: unknown key %q", ErrInvalidCursor, cursor.Key)
		}
	}
	end := min(start+limit, total)
	window := items[start:end]

	var next, prev string
	if end < total && len(window) > 0 {
		next = Cursor{Kind: opts.Kind, Key: key(window[len(window)-1])}.Encode()
	}
	switch {
	case start == 0:
	case start <= limit:
		prev = Cursor{Kind: opts.Kind}.Encode()
	default:
		prev = Cursor{Kind: opts.Kind, Key: key(items[start-limit-1])}.Encode()
	}

	q := cloneValues(opts.Query)
	q.Set("limit", strconv.Itoa(limit))

	return Page[T]{
		Items:      window,
		Total:      total,
		Link:       BuildLinkHeader(opts.Path, q, next, prev),
		NextCursor: next,
		PrevCursor: prev,
	}, nil
}
