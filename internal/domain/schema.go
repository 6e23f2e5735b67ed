package domain

// Schema is a named grouping of tables within one share. The relation to the
// share is expressed by the stored share name, never by a live reference.
type Schema struct {
	id         string
	name       string
	shareName  string
	extensions map[string]string
}

// NewSchemaBuilder returns an empty builder for a Schema.
func NewSchemaBuilder() *SchemaBuilder {
	return &SchemaBuilder{}
}

// ID returns the backend-assigned id of the schema, or "" when unset.
func (s Schema) ID() string {
	return s.id
}

// Name returns the name of the schema.
func (s Schema) Name() string {
	return s.name
}

// ShareName returns the name of the share containing the schema.
func (s Schema) ShareName() string {
	return s.shareName
}

// Extension looks up a schema extension by exact key.
func (s Schema) Extension(key string) (string, bool) {
	v, ok := s.extensions[key]
	return v, ok
}

// SchemaBuilder accumulates schema fields and validates them at Build time.
type SchemaBuilder struct {
	id         *string
	name       *string
	shareName  *string
	extensions map[string]string
}

// ID sets the id of the schema.
func (b *SchemaBuilder) ID(id string) *SchemaBuilder {
	b.id = &id
	return b
}

// SetID sets or clears the id of the schema.
func (b *SchemaBuilder) SetID(id *string) *SchemaBuilder {
	b.id = id
	return b
}

// Name sets the name of the schema.
func (b *SchemaBuilder) Name(name string) *SchemaBuilder {
	b.name = &name
	return b
}

// SetName sets or clears the name of the schema.
func (b *SchemaBuilder) SetName(name *string) *SchemaBuilder {
	b.name = name
	return b
}

// ShareName sets the name of the share containing the schema.
func (b *SchemaBuilder) ShareName(shareName string) *SchemaBuilder {
	b.shareName = &shareName
	return b
}

// SetShareName sets or clears the name of the share containing the schema.
func (b *SchemaBuilder) SetShareName(shareName *string) *SchemaBuilder {
	b.shareName = shareName
	return b
}

// AddExtension sets a single extension key-value pair, allocating the
// extension map on first use.
func (b *SchemaBuilder) AddExtension(key, value string) *SchemaBuilder {
	if b.extensions == nil {
		b.extensions = map[string]string{}
	}
	b.extensions[key] = value
	return b
}

// SetExtensions replaces the extension map wholesale.
func (b *SchemaBuilder) SetExtensions(extensions map[string]string) *SchemaBuilder {
	b.extensions = extensions
	return b
}

// Build validates the accumulated fields and returns the schema.
func (b *SchemaBuilder) Build() (Schema, error) {
	if b.name == nil {
		return Schema{}, ErrInternal("the required attribute `name` was not set")
	}
	if b.shareName == nil {
		return Schema{}, ErrInternal("the required attribute `share_name` was not set")
	}
	schema := Schema{name: *b.name, shareName: *b.shareName, extensions: b.extensions}
	if b.id != nil {
		schema.id = *b.id
	}
	return schema, nil
}
