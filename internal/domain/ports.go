package domain

import "context"

// Catalog lists and reads the shared assets a recipient may see. Backends
// decide, based on the recipient identity, which shares, schemas, and tables
// are visible; every listing applies that visibility filter before
// pagination, preserving the backend's declared order.
//
// Implementations must be safe for concurrent readers. Operations take a
// context so that backends performing real I/O (a database, a remote
// registry) fit the same interface; in-memory backends simply never block.
type Catalog interface {
	// ListShares returns a page of shares visible to the recipient.
	ListShares(ctx context.Context, recipient RecipientID, pagination Pagination) (Page[Share], error)

	// ListSchemas returns a page of the schemas in the named share, if the
	// share is visible to the recipient.
	ListSchemas(ctx context.Context, shareName string, recipient RecipientID, pagination Pagination) (Page[Schema], error)

	// ListTablesInShare returns a page of all tables in the named share,
	// across its schemas, if the share is visible to the recipient.
	ListTablesInShare(ctx context.Context, shareName string, recipient RecipientID, pagination Pagination) (Page[Table], error)

	// ListTablesInSchema returns a page of the tables in the named schema of
	// the named share, if the share is visible to the recipient.
	ListTablesInSchema(ctx context.Context, shareName, schemaName string, recipient RecipientID, pagination Pagination) (Page[Table], error)

	// GetShare returns the named share. A share that does not exist and a
	// share invisible to the recipient both report ResourceNotFound.
	GetShare(ctx context.Context, shareName string, recipient RecipientID) (Share, error)

	// GetTable returns the named table within the named share and schema,
	// under the same visibility rule as GetShare.
	GetTable(ctx context.Context, shareName, schemaName, tableName string, recipient RecipientID) (Table, error)
}
