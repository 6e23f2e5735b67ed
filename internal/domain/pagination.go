package domain

import "strconv"

// DefaultMaxResults is the page size applied when the caller does not
// specify one.
const DefaultMaxResults = 500

// Paginate slices an ordered, already access-filtered result set into one
// page. The continuation token is the decimal offset of the next item in the
// filtered sequence, so listing stability requires the backend to produce
// the same filtered ordering on every call for the same recipient.
//
// A token that does not parse as a non-negative base-10 integer yields a
// CatalogError of kind MalformedPagination. An offset at or beyond the end
// of the sequence yields an empty final page without error.
func Paginate[T any](items []T, p Pagination) (Page[T], error) {
	offset := 0
	if p.PageToken != "" {
		n, err := strconv.ParseUint(p.PageToken, 10, 63)
		if err != nil {
			return Page[T]{}, ErrMalformedPagination("invalid page token %q", p.PageToken)
		}
		offset = int(n)
	}

	limit := DefaultMaxResults
	if p.MaxResults != nil {
		limit = int(*p.MaxResults)
	}

	// Checked first so offset+limit below cannot overflow on an absurdly
	// large (but well-formed) token.
	if offset >= len(items) {
		return NewPage(items[len(items):], ""), nil
	}
	if offset+limit >= len(items) {
		return NewPage(items[offset:], ""), nil
	}
	return NewPage(items[offset:offset+limit], strconv.Itoa(offset+limit)), nil
}
