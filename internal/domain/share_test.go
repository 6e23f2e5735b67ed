package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShareBuilder(t *testing.T) {
	t.Run("builds with all fields", func(t *testing.T) {
		share, err := NewShareBuilder().ID("id").Name("name").Build()
		require.NoError(t, err)
		assert.Equal(t, "id", share.ID())
		assert.Equal(t, "name", share.Name())
	})

	t.Run("missing name fails", func(t *testing.T) {
		_, err := NewShareBuilder().ID("id").Build()
		require.Error(t, err)
		var catErr *CatalogError
		require.ErrorAs(t, err, &catErr)
		assert.Equal(t, KindInternal, catErr.Kind)
		assert.Contains(t, catErr.Message, "`name`")
	})

	t.Run("SetName to nil clears the field", func(t *testing.T) {
		name := "name"
		_, err := NewShareBuilder().SetName(&name).SetName(nil).Build()
		require.Error(t, err)
	})
}

func TestShareExtensions(t *testing.T) {
	t.Run("single insertion", func(t *testing.T) {
		share, err := NewShareBuilder().Name("foo").AddExtension("bar", "baz").Build()
		require.NoError(t, err)

		v, ok := share.Extension("bar")
		assert.True(t, ok)
		assert.Equal(t, "baz", v)

		_, ok = share.Extension("does-not-exist")
		assert.False(t, ok)
	})

	t.Run("wholesale replacement", func(t *testing.T) {
		share, err := NewShareBuilder().
			Name("foo").
			AddExtension("old", "value").
			SetExtensions(map[string]string{"new": "value"}).
			Build()
		require.NoError(t, err)

		_, ok := share.Extension("old")
		assert.False(t, ok)
		v, ok := share.Extension("new")
		assert.True(t, ok)
		assert.Equal(t, "value", v)
	})

	t.Run("absent map behaves like missing key", func(t *testing.T) {
		share, err := NewShareBuilder().Name("foo").Build()
		require.NoError(t, err)
		_, ok := share.Extension("any")
		assert.False(t, ok)
	})
}
