package file

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deltashare/internal/domain"
)

func snapshotFromJSON(t *testing.T, doc string) *snapshot {
	t.Helper()
	var f shareFile
	require.NoError(t, json.Unmarshal([]byte(doc), &f))
	snap, err := f.toSnapshot()
	require.NoError(t, err)
	return snap
}

func namesOfShares(shares []domain.Share) []string {
	names := make([]string, 0, len(shares))
	for _, s := range shares {
		names = append(names, s.Name())
	}
	return names
}

func TestSnapshotVisibility(t *testing.T) {
	snap := snapshotFromJSON(t, `{
		"shares": [
			{"name": "share1", "schemas": []},
			{"name": "share2", "schemas": [], "recipients": ["client1"]},
			{"name": "share3", "schemas": [], "recipients": []}
		]
	}`)

	t.Run("anonymous sees only unrestricted shares", func(t *testing.T) {
		assert.Equal(t, []string{"share1"}, namesOfShares(snap.listShares(domain.Anonymous().String())))
	})

	t.Run("listed recipient sees its share", func(t *testing.T) {
		assert.Equal(t, []string{"share1", "share2"},
			namesOfShares(snap.listShares(domain.Known("client1").String())))
	})

	t.Run("unlisted recipient is excluded", func(t *testing.T) {
		assert.Equal(t, []string{"share1"},
			namesOfShares(snap.listShares(domain.Known("unauthorized-client").String())))
	})

	t.Run("empty recipients list matches nobody", func(t *testing.T) {
		// Literal behavior preserved: [] differs from absent, which is public.
		for _, r := range []string{domain.Anonymous().String(), "client1", "anyone"} {
			assert.NotContains(t, namesOfShares(snap.listShares(r)), "share3")
		}
	})

	t.Run("list explicitly naming the anonymous sentinel matches it", func(t *testing.T) {
		snap := snapshotFromJSON(t, `{
			"shares": [{"name": "s", "schemas": [], "recipients": ["ANONYMOUS"]}]
		}`)
		assert.Equal(t, []string{"s"}, namesOfShares(snap.listShares(domain.Anonymous().String())))
	})
}

func TestSnapshotListing(t *testing.T) {
	snap := snapshotFromJSON(t, `{
		"shares": [
			{
				"name": "share1",
				"schemas": [
					{
						"name": "schema1",
						"tables": [
							{"name": "table1", "location": "s3://bucket/prefix1"},
							{"name": "table2", "location": "s3://bucket/prefix2"}
						]
					},
					{
						"name": "schema2",
						"tables": [
							{"name": "table3", "location": "s3://bucket/prefix3"}
						]
					}
				]
			}
		]
	}`)
	anon := domain.Anonymous().String()

	t.Run("schemas in document order", func(t *testing.T) {
		schemas := snap.listSchemas(anon, "share1")
		require.Len(t, schemas, 2)
		assert.Equal(t, "schema1", schemas[0].Name())
		assert.Equal(t, "share1", schemas[0].ShareName())
		assert.Equal(t, "schema2", schemas[1].Name())
	})

	t.Run("tables across schemas", func(t *testing.T) {
		tables := snap.listTablesInShare(anon, "share1")
		require.Len(t, tables, 3)
		assert.Equal(t, "table1", tables[0].Name())
		assert.Equal(t, "schema2", tables[2].SchemaName())
	})

	t.Run("tables within one schema", func(t *testing.T) {
		tables := snap.listTablesInSchema(anon, "share1", "schema2")
		require.Len(t, tables, 1)
		assert.Equal(t, "table3", tables[0].Name())
		assert.Equal(t, "s3://bucket/prefix3", tables[0].StoragePath())
	})

	t.Run("unknown share lists empty", func(t *testing.T) {
		assert.Empty(t, snap.listSchemas(anon, "nope"))
		assert.Empty(t, snap.listTablesInShare(anon, "nope"))
		assert.Empty(t, snap.listTablesInSchema(anon, "share1", "nope"))
	})

	t.Run("get share", func(t *testing.T) {
		share, ok := snap.getShare("share1", anon)
		assert.True(t, ok)
		assert.Equal(t, "share1", share.Name())
		_, ok = snap.getShare("nope", anon)
		assert.False(t, ok)
	})
}

func TestToSnapshotValidation(t *testing.T) {
	t.Run("share without name", func(t *testing.T) {
		var f shareFile
		require.NoError(t, json.Unmarshal([]byte(`{"shares": [{"schemas": []}]}`), &f))
		_, err := f.toSnapshot()
		require.Error(t, err)
		var catErr *domain.CatalogError
		require.ErrorAs(t, err, &catErr)
		assert.Equal(t, domain.KindInternal, catErr.Kind)
		assert.Contains(t, catErr.Message, "`name`")
	})

	t.Run("table without location", func(t *testing.T) {
		var f shareFile
		doc := `{"shares": [{"name": "s", "schemas": [{"name": "sc", "tables": [{"name": "t"}]}]}]}`
		require.NoError(t, json.Unmarshal([]byte(doc), &f))
		_, err := f.toSnapshot()
		require.Error(t, err)
		var catErr *domain.CatalogError
		require.ErrorAs(t, err, &catErr)
		assert.Equal(t, domain.KindInternal, catErr.Kind)
	})
}
