package domain

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequence(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}
	return items
}

func TestPaginate(t *testing.T) {
	t.Run("default page size covers small sequences", func(t *testing.T) {
		page, err := Paginate(sequence(4), Pagination{})
		require.NoError(t, err)
		assert.Equal(t, sequence(4), page.Items())
		assert.True(t, page.IsLastPage())
	})

	t.Run("first page carries the next offset as token", func(t *testing.T) {
		page, err := Paginate(sequence(5), WithMaxResults(2))
		require.NoError(t, err)
		assert.Equal(t, []int{0, 1}, page.Items())
		assert.Equal(t, "2", page.NextPageToken())
	})

	t.Run("final page has no token", func(t *testing.T) {
		page, err := Paginate(sequence(4), NewPagination(nil, "2"))
		require.NoError(t, err)
		assert.Equal(t, []int{2, 3}, page.Items())
		assert.True(t, page.IsLastPage())
	})

	t.Run("token equal to length yields empty final page", func(t *testing.T) {
		page, err := Paginate(sequence(3), NewPagination(nil, "3"))
		require.NoError(t, err)
		assert.True(t, page.IsEmpty())
		assert.True(t, page.IsLastPage())
	})

	t.Run("token beyond length yields empty final page", func(t *testing.T) {
		page, err := Paginate(sequence(3), NewPagination(nil, "7"))
		require.NoError(t, err)
		assert.True(t, page.IsEmpty())
		assert.True(t, page.IsLastPage())
	})

	t.Run("malformed token", func(t *testing.T) {
		for _, token := range []string{"abc", "-1", "1.5", "0x10", " 2"} {
			_, err := Paginate(sequence(3), NewPagination(nil, token))
			var catErr *CatalogError
			require.ErrorAs(t, err, &catErr, "token %q", token)
			assert.Equal(t, KindMalformedPagination, catErr.Kind)
		}
	})

	t.Run("max results zero keeps advancing tokens", func(t *testing.T) {
		// Preserved literal behavior: zero-size pages with an ever-advancing
		// token until the offset reaches the sequence length.
		page, err := Paginate(sequence(2), NewPagination(uint32Ptr(0), ""))
		require.NoError(t, err)
		assert.True(t, page.IsEmpty())
		assert.Equal(t, "0", page.NextPageToken())

		page, err = Paginate(sequence(2), NewPagination(uint32Ptr(0), "2"))
		require.NoError(t, err)
		assert.True(t, page.IsEmpty())
		assert.True(t, page.IsLastPage())
	})
}

func TestPaginateRoundTrip(t *testing.T) {
	for _, size := range []int{1, 2, 3, 7, 500} {
		for _, n := range []int{0, 1, 5, 23} {
			items := sequence(n)
			collected := []int{}
			token := ""
			for pages := 0; ; pages++ {
				require.Less(t, pages, n+2, "pagination did not terminate")
				page, err := Paginate(items, NewPagination(uint32Ptr(uint32(size)), token))
				require.NoError(t, err)
				collected = append(collected, page.Items()...)
				if page.IsLastPage() {
					break
				}
				token = page.NextPageToken()
			}
			assert.Equal(t, items, collected, "size=%d n=%d", size, n)
		}
	}
}

func TestPaginateIdempotent(t *testing.T) {
	items := sequence(10)
	p := NewPagination(uint32Ptr(3), "3")
	first, err := Paginate(items, p)
	require.NoError(t, err)
	second, err := Paginate(items, p)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestPageAccessors(t *testing.T) {
	page := NewPage([]string{"a", "b"}, "2")
	assert.Equal(t, []string{"a", "b"}, page.Items())
	assert.Equal(t, 2, page.Len())
	assert.False(t, page.IsEmpty())
	assert.False(t, page.IsLastPage())
	assert.Equal(t, "2", page.NextPageToken())

	empty := NewPage[string](nil, "")
	assert.True(t, empty.IsEmpty())
	assert.True(t, empty.IsLastPage())
}

func TestDefaultMaxResults(t *testing.T) {
	items := sequence(DefaultMaxResults + 1)
	page, err := Paginate(items, Pagination{})
	require.NoError(t, err)
	assert.Equal(t, DefaultMaxResults, page.Len())
	assert.Equal(t, strconv.Itoa(DefaultMaxResults), page.NextPageToken())
}

func uint32Ptr(v uint32) *uint32 {
	return &v
}
