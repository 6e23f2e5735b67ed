package domain

// Pagination holds caller-supplied paging parameters for list operations.
// MaxResults distinguishes "absent" (nil, default applies) from an explicit
// zero. An empty PageToken means listing starts at the beginning.
type Pagination struct {
	MaxResults *uint32
	PageToken  string
}

// NewPagination builds a Pagination from an optional page size and token.
func NewPagination(maxResults *uint32, pageToken string) Pagination {
	return Pagination{MaxResults: maxResults, PageToken: pageToken}
}

// WithMaxResults returns a Pagination limited to n items per page.
func WithMaxResults(n uint32) Pagination {
	return Pagination{MaxResults: &n}
}

// Page is one page of catalog listings plus the continuation token for the
// next page. An empty token marks the final page.
type Page[T any] struct {
	items         []T
	nextPageToken string
}

// NewPage creates a page from items and a continuation token.
func NewPage[T any](items []T, nextPageToken string) Page[T] {
	return Page[T]{items: items, nextPageToken: nextPageToken}
}

// Items returns the listed assets in backend order. The returned slice must
// not be modified.
func (p Page[T]) Items() []T {
	return p.items
}

// NextPageToken returns the token that resumes listing after this page, or
// "" on the final page.
func (p Page[T]) NextPageToken() string {
	return p.nextPageToken
}

// Len returns the number of assets in the page.
func (p Page[T]) Len() int {
	return len(p.items)
}

// IsEmpty reports whether the page holds no assets.
func (p Page[T]) IsEmpty() bool {
	return len(p.items) == 0
}

// IsLastPage reports whether the page is the final page of the collection.
func (p Page[T]) IsLastPage() bool {
	return p.nextPageToken == ""
}
