package domain

// Share is a named collection of schemas exposed to recipients. Values are
// immutable once built; construct them with a ShareBuilder.
type Share struct {
	id         string
	name       string
	extensions map[string]string
}

// NewShareBuilder returns an empty builder for a Share.
func NewShareBuilder() *ShareBuilder {
	return &ShareBuilder{}
}

// ID returns the backend-assigned id of the share, or "" when unset.
func (s Share) ID() string {
	return s.id
}

// Name returns the name of the share.
func (s Share) Name() string {
	return s.name
}

// Extension looks up a share extension by exact key. A missing key and an
// absent extension map both report false.
func (s Share) Extension(key string) (string, bool) {
	v, ok := s.extensions[key]
	return v, ok
}

// ShareBuilder accumulates share fields and validates them at Build time.
type ShareBuilder struct {
	id         *string
	name       *string
	extensions map[string]string
}

// ID sets the id of the share.
func (b *ShareBuilder) ID(id string) *ShareBuilder {
	b.id = &id
	return b
}

// SetID sets or clears the id of the share.
func (b *ShareBuilder) SetID(id *string) *ShareBuilder {
	b.id = id
	return b
}

// Name sets the name of the share.
func (b *ShareBuilder) Name(name string) *ShareBuilder {
	b.name = &name
	return b
}

// SetName sets or clears the name of the share.
func (b *ShareBuilder) SetName(name *string) *ShareBuilder {
	b.name = name
	return b
}

// AddExtension sets a single extension key-value pair, allocating the
// extension map on first use.
func (b *ShareBuilder) AddExtension(key, value string) *ShareBuilder {
	if b.extensions == nil {
		b.extensions = map[string]string{}
	}
	b.extensions[key] = value
	return b
}

// SetExtensions replaces the extension map wholesale. A nil map means no
// extensions.
func (b *ShareBuilder) SetExtensions(extensions map[string]string) *ShareBuilder {
	b.extensions = extensions
	return b
}

// Build validates the accumulated fields and returns the share. A missing
// required field yields a CatalogError of kind Internal naming the field.
func (b *ShareBuilder) Build() (Share, error) {
	if b.name == nil {
		return Share{}, ErrInternal("the required attribute `name` was not set")
	}
	share := Share{name: *b.name, extensions: b.extensions}
	if b.id != nil {
		share.id = *b.id
	}
	return share, nil
}
