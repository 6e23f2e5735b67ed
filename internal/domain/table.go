package domain

// Table is a named pointer to a storage location within one schema and
// share. The storage location is an opaque URI; only the storage-reading
// collaborator interprets it.
type Table struct {
	id              string
	name            string
	shareID         string
	shareName       string
	schemaName      string
	storageLocation string
	extensions      map[string]string
}

// NewTableBuilder returns an empty builder for a Table.
func NewTableBuilder() *TableBuilder {
	return &TableBuilder{}
}

// ID returns the backend-assigned id of the table, or "" when unset.
func (t Table) ID() string {
	return t.id
}

// Name returns the name of the table.
func (t Table) Name() string {
	return t.name
}

// ShareID returns the id of the share containing the table, or "" when unset.
func (t Table) ShareID() string {
	return t.shareID
}

// ShareName returns the name of the share containing the table.
func (t Table) ShareName() string {
	return t.shareName
}

// SchemaName returns the name of the schema containing the table.
func (t Table) SchemaName() string {
	return t.schemaName
}

// StoragePath returns the opaque storage URI of the table, verbatim as
// configured.
func (t Table) StoragePath() string {
	return t.storageLocation
}

// Extension looks up a table extension by exact key. A missing key and an
// absent extension map both report false.
func (t Table) Extension(key string) (string, bool) {
	v, ok := t.extensions[key]
	return v, ok
}

// TableBuilder accumulates table fields and validates them at Build time.
type TableBuilder struct {
	id              *string
	name            *string
	shareID         *string
	shareName       *string
	schemaName      *string
	storageLocation *string
	extensions      map[string]string
}

// ID sets the id of the table.
func (b *TableBuilder) ID(id string) *TableBuilder {
	b.id = &id
	return b
}

// SetID sets or clears the id of the table.
func (b *TableBuilder) SetID(id *string) *TableBuilder {
	b.id = id
	return b
}

// Name sets the name of the table.
func (b *TableBuilder) Name(name string) *TableBuilder {
	b.name = &name
	return b
}

// SetName sets or clears the name of the table.
func (b *TableBuilder) SetName(name *string) *TableBuilder {
	b.name = name
	return b
}

// ShareID sets the id of the share containing the table.
func (b *TableBuilder) ShareID(shareID string) *TableBuilder {
	b.shareID = &shareID
	return b
}

// SetShareID sets or clears the id of the share containing the table.
func (b *TableBuilder) SetShareID(shareID *string) *TableBuilder {
	b.shareID = shareID
	return b
}

// ShareName sets the name of the share containing the table.
func (b *TableBuilder) ShareName(shareName string) *TableBuilder {
	b.shareName = &shareName
	return b
}

// SetShareName sets or clears the name of the share containing the table.
func (b *TableBuilder) SetShareName(shareName *string) *TableBuilder {
	b.shareName = shareName
	return b
}

// SchemaName sets the name of the schema containing the table.
func (b *TableBuilder) SchemaName(schemaName string) *TableBuilder {
	b.schemaName = &schemaName
	return b
}

// SetSchemaName sets or clears the name of the schema containing the table.
func (b *TableBuilder) SetSchemaName(schemaName *string) *TableBuilder {
	b.schemaName = schemaName
	return b
}

// StoragePath sets the storage location of the table.
func (b *TableBuilder) StoragePath(path string) *TableBuilder {
	b.storageLocation = &path
	return b
}

// SetStoragePath sets or clears the storage location of the table.
func (b *TableBuilder) SetStoragePath(path *string) *TableBuilder {
	b.storageLocation = path
	return b
}

// AddExtension sets a single extension key-value pair, allocating the
// extension map on first use.
func (b *TableBuilder) AddExtension(key, value string) *TableBuilder {
	if b.extensions == nil {
		b.extensions = map[string]string{}
	}
	b.extensions[key] = value
	return b
}

// SetExtensions replaces the extension map wholesale.
func (b *TableBuilder) SetExtensions(extensions map[string]string) *TableBuilder {
	b.extensions = extensions
	return b
}

// Build validates the accumulated fields and returns the table.
func (b *TableBuilder) Build() (Table, error) {
	if b.shareName == nil {
		return Table{}, ErrInternal("the required attribute `share_name` was not set")
	}
	if b.schemaName == nil {
		return Table{}, ErrInternal("the required attribute `schema_name` was not set")
	}
	if b.name == nil {
		return Table{}, ErrInternal("the required attribute `table_name` was not set")
	}
	if b.storageLocation == nil {
		return Table{}, ErrInternal("the required attribute `storage_path` was not set")
	}
	table := Table{
		name:            *b.name,
		shareName:       *b.shareName,
		schemaName:      *b.schemaName,
		storageLocation: *b.storageLocation,
		extensions:      b.extensions,
	}
	if b.id != nil {
		table.id = *b.id
	}
	if b.shareID != nil {
		table.shareID = *b.shareID
	}
	return table, nil
}
