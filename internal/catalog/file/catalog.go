package file

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"deltashare/internal/domain"
)

// Catalog serves the catalog operations from a declarative configuration
// file. The document is loaded eagerly: New fails when the file is missing
// or malformed, so a server never starts against a partially loaded catalog.
// Refreshing the data requires constructing a new Catalog.
type Catalog struct {
	config   Config
	snapshot *snapshot
	logger   *slog.Logger
}

var _ domain.Catalog = (*Catalog)(nil)

// New reads, decodes, and converts the configured catalog document and
// returns a Catalog serving it. The caller decides how to treat a load
// failure; the server entrypoint treats it as fatal.
func New(config Config, logger *slog.Logger) (*Catalog, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "file-catalog")

	doc, err := load(config)
	if err != nil {
		return nil, err
	}
	snap, err := doc.toSnapshot()
	if err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", config.Path(), err)
	}

	logger.Info("catalog file loaded",
		"path", config.Path(),
		"format", config.Format().String(),
		"shares", len(snap.shares))

	return &Catalog{config: config, snapshot: snap, logger: logger}, nil
}

// load reads the document at the configured path and decodes it according to
// the configured format. All three encodings deserialize to the same
// descriptor shape.
func load(config Config) (*shareFile, error) {
	data, err := os.ReadFile(config.Path())
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var doc shareFile
	switch config.Format() {
	case FormatJSON:
		err = json.Unmarshal(data, &doc)
	case FormatTOML:
		err = toml.Unmarshal(data, &doc)
	default:
		err = yaml.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, fmt.Errorf("decode catalog file %s as %s: %w", config.Path(), config.Format(), err)
	}
	return &doc, nil
}

// ListShares returns a page of shares visible to the recipient.
func (c *Catalog) ListShares(_ context.Context, recipient domain.RecipientID, pagination domain.Pagination) (domain.Page[domain.Share], error) {
	shares := c.snapshot.listShares(recipient.String())
	return paginate(c.logger, shares, pagination)
}

// ListSchemas returns a page of the schemas in the named share. An unknown
// or invisible share yields an empty page, not an error.
func (c *Catalog) ListSchemas(_ context.Context, shareName string, recipient domain.RecipientID, pagination domain.Pagination) (domain.Page[domain.Schema], error) {
	schemas := c.snapshot.listSchemas(recipient.String(), shareName)
	return paginate(c.logger, schemas, pagination)
}

// ListTablesInShare returns a page of all tables in the named share.
func (c *Catalog) ListTablesInShare(_ context.Context, shareName string, recipient domain.RecipientID, pagination domain.Pagination) (domain.Page[domain.Table], error) {
	tables := c.snapshot.listTablesInShare(recipient.String(), shareName)
	return paginate(c.logger, tables, pagination)
}

// ListTablesInSchema returns a page of the tables in the named schema of the
// named share.
func (c *Catalog) ListTablesInSchema(_ context.Context, shareName, schemaName string, recipient domain.RecipientID, pagination domain.Pagination) (domain.Page[domain.Table], error) {
	tables := c.snapshot.listTablesInSchema(recipient.String(), shareName, schemaName)
	return paginate(c.logger, tables, pagination)
}

// GetShare returns the named share if it is visible to the recipient.
func (c *Catalog) GetShare(_ context.Context, shareName string, recipient domain.RecipientID) (domain.Share, error) {
	share, ok := c.snapshot.getShare(shareName, recipient.String())
	if !ok {
		return domain.Share{}, domain.ErrNotFound("share %q not found", shareName)
	}
	return share, nil
}

// GetTable returns the named table if its share is visible to the recipient.
// Expressed as list-then-find: the cost is the same linear scan as a listing.
func (c *Catalog) GetTable(_ context.Context, shareName, schemaName, tableName string, recipient domain.RecipientID) (domain.Table, error) {
	for _, table := range c.snapshot.listTablesInSchema(recipient.String(), shareName, schemaName) {
		if table.Name() == tableName {
			return table, nil
		}
	}
	return domain.Table{}, domain.ErrNotFound("table %q not found", tableName)
}

// Stats reports the total entity counts in the loaded document, regardless
// of recipient visibility.
type Stats struct {
	Shares  int
	Schemas int
	Tables  int
}

// Stats counts the shares, schemas, and tables in the loaded catalog.
func (c *Catalog) Stats() Stats {
	var s Stats
	s.Shares = len(c.snapshot.shares)
	for _, share := range c.snapshot.shares {
		s.Schemas += len(share.schemas)
		for _, schema := range share.schemas {
			s.Tables += len(schema.tables)
		}
	}
	return s
}

// paginate applies the pagination protocol to a filtered result set, logging
// rejected page tokens with the offending value.
func paginate[T any](logger *slog.Logger, items []T, pagination domain.Pagination) (domain.Page[T], error) {
	page, err := domain.Paginate(items, pagination)
	if err != nil {
		logger.Error("invalid page token", "pageToken", pagination.PageToken, "error", err)
		return domain.Page[T]{}, err
	}
	return page, nil
}
