package file

import (
	"fmt"
	"slices"

	"deltashare/internal/domain"
)

// shareFile is the top-level shape of the catalog document. The same field
// names apply across all three encodings.
type shareFile struct {
	Shares []shareConfig `yaml:"shares" json:"shares" toml:"shares"`
}

// shareConfig describes one share. A nil Recipients slice means the share is
// public; a present list restricts visibility to its members — including a
// present-but-empty list, which matches nobody.
type shareConfig struct {
	Name       string            `yaml:"name" json:"name" toml:"name"`
	Recipients []string          `yaml:"recipients,omitempty" json:"recipients,omitempty" toml:"recipients,omitempty"`
	Extensions map[string]string `yaml:"extensions,omitempty" json:"extensions,omitempty" toml:"extensions,omitempty"`
	Schemas    []schemaConfig    `yaml:"schemas" json:"schemas" toml:"schemas"`
}

type schemaConfig struct {
	Name   string        `yaml:"name" json:"name" toml:"name"`
	Tables []tableConfig `yaml:"tables" json:"tables" toml:"tables"`
}

type tableConfig struct {
	Name       string            `yaml:"name" json:"name" toml:"name"`
	Location   string            `yaml:"location" json:"location" toml:"location"`
	ID         *string           `yaml:"id,omitempty" json:"id,omitempty" toml:"id,omitempty"`
	Extensions map[string]string `yaml:"extensions,omitempty" json:"extensions,omitempty" toml:"extensions,omitempty"`
}

// snapshot is the canonical entity graph converted from the descriptor
// document at construction time. It is immutable for the lifetime of the
// backend and shared by reference across concurrent readers.
type snapshot struct {
	shares []shareEntry
}

type shareEntry struct {
	share      domain.Share
	recipients []string // nil when the share declares no restriction
	schemas    []schemaEntry
}

type schemaEntry struct {
	schema domain.Schema
	tables []domain.Table
}

// visibleTo applies the access-control rule: a share with no declared
// recipients list is public; a declared list restricts visibility to exact
// members of the list.
func (e shareEntry) visibleTo(recipient string) bool {
	if e.recipients == nil {
		return true
	}
	return slices.Contains(e.recipients, recipient)
}

// toSnapshot converts every descriptor into its canonical entity through the
// validating builders. Any builder failure aborts the conversion: the
// document is a configuration-authoring bug and the backend must not come up
// partially loaded.
func (f *shareFile) toSnapshot() (*snapshot, error) {
	snap := &snapshot{shares: make([]shareEntry, 0, len(f.Shares))}
	for _, shareCfg := range f.Shares {
		shareBuilder := domain.NewShareBuilder().SetExtensions(shareCfg.Extensions)
		if shareCfg.Name != "" {
			shareBuilder.Name(shareCfg.Name)
		}
		share, err := shareBuilder.Build()
		if err != nil {
			return nil, fmt.Errorf("share %q: %w", shareCfg.Name, err)
		}

		entry := shareEntry{
			share:      share,
			recipients: shareCfg.Recipients,
			schemas:    make([]schemaEntry, 0, len(shareCfg.Schemas)),
		}
		for _, schemaCfg := range shareCfg.Schemas {
			schemaBuilder := domain.NewSchemaBuilder().ShareName(shareCfg.Name)
			if schemaCfg.Name != "" {
				schemaBuilder.Name(schemaCfg.Name)
			}
			schema, err := schemaBuilder.Build()
			if err != nil {
				return nil, fmt.Errorf("share %q schema %q: %w", shareCfg.Name, schemaCfg.Name, err)
			}

			se := schemaEntry{
				schema: schema,
				tables: make([]domain.Table, 0, len(schemaCfg.Tables)),
			}
			for _, tableCfg := range schemaCfg.Tables {
				builder := domain.NewTableBuilder().
					SetID(tableCfg.ID).
					ShareName(shareCfg.Name).
					SchemaName(schemaCfg.Name).
					SetExtensions(tableCfg.Extensions)
				if tableCfg.Name != "" {
					builder.Name(tableCfg.Name)
				}
				if tableCfg.Location != "" {
					builder.StoragePath(tableCfg.Location)
				}
				table, err := builder.Build()
				if err != nil {
					return nil, fmt.Errorf("share %q schema %q table %q: %w",
						shareCfg.Name, schemaCfg.Name, tableCfg.Name, err)
				}
				se.tables = append(se.tables, table)
			}
			entry.schemas = append(entry.schemas, se)
		}
		snap.shares = append(snap.shares, entry)
	}
	return snap, nil
}

// listShares returns the shares visible to the recipient in document order.
func (s *snapshot) listShares(recipient string) []domain.Share {
	shares := []domain.Share{}
	for _, entry := range s.shares {
		if entry.visibleTo(recipient) {
			shares = append(shares, entry.share)
		}
	}
	return shares
}

// listSchemas returns the schemas of the named share in document order, if
// the share is visible to the recipient.
func (s *snapshot) listSchemas(recipient, shareName string) []domain.Schema {
	schemas := []domain.Schema{}
	for _, entry := range s.shares {
		if !entry.visibleTo(recipient) || entry.share.Name() != shareName {
			continue
		}
		for _, se := range entry.schemas {
			schemas = append(schemas, se.schema)
		}
	}
	return schemas
}

// listTablesInShare returns every table of the named share across its
// schemas, in document order, if the share is visible to the recipient.
func (s *snapshot) listTablesInShare(recipient, shareName string) []domain.Table {
	tables := []domain.Table{}
	for _, entry := range s.shares {
		if !entry.visibleTo(recipient) || entry.share.Name() != shareName {
			continue
		}
		for _, se := range entry.schemas {
			tables = append(tables, se.tables...)
		}
	}
	return tables
}

// listTablesInSchema returns the tables of the named schema within the named
// share, in document order, if the share is visible to the recipient.
func (s *snapshot) listTablesInSchema(recipient, shareName, schemaName string) []domain.Table {
	tables := []domain.Table{}
	for _, entry := range s.shares {
		if !entry.visibleTo(recipient) || entry.share.Name() != shareName {
			continue
		}
		for _, se := range entry.schemas {
			if se.schema.Name() == schemaName {
				tables = append(tables, se.tables...)
			}
		}
	}
	return tables
}

// getShare finds the named share among those visible to the recipient. An
// invisible share reports the same absence as a missing one.
func (s *snapshot) getShare(name, recipient string) (domain.Share, bool) {
	for _, share := range s.listShares(recipient) {
		if share.Name() == name {
			return share, true
		}
	}
	return domain.Share{}, false
}
