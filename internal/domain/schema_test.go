package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaBuilder(t *testing.T) {
	t.Run("builds with all fields", func(t *testing.T) {
		schema, err := NewSchemaBuilder().ID("id").Name("name").ShareName("share").Build()
		require.NoError(t, err)
		assert.Equal(t, "id", schema.ID())
		assert.Equal(t, "name", schema.Name())
		assert.Equal(t, "share", schema.ShareName())
	})

	t.Run("missing name fails", func(t *testing.T) {
		_, err := NewSchemaBuilder().ShareName("share").Build()
		var catErr *CatalogError
		require.ErrorAs(t, err, &catErr)
		assert.Equal(t, KindInternal, catErr.Kind)
		assert.Contains(t, catErr.Message, "`name`")
	})

	t.Run("missing share name fails", func(t *testing.T) {
		_, err := NewSchemaBuilder().Name("name").Build()
		var catErr *CatalogError
		require.ErrorAs(t, err, &catErr)
		assert.Equal(t, KindInternal, catErr.Kind)
		assert.Contains(t, catErr.Message, "`share_name`")
	})

	t.Run("id stays optional", func(t *testing.T) {
		schema, err := NewSchemaBuilder().Name("name").ShareName("share").Build()
		require.NoError(t, err)
		assert.Empty(t, schema.ID())
	})
}
