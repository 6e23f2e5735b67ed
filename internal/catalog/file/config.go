// Package file implements a Catalog backed by a declarative configuration
// file. The whole document is deserialized into the entity model once, at
// construction time; all operations are then linear scans over that
// immutable in-memory snapshot.
package file

import "fmt"

// Format is the textual encoding of the catalog document.
type Format int

const (
	// FormatYAML is the default encoding.
	FormatYAML Format = iota
	// FormatJSON encodes the same document shape as JSON.
	FormatJSON
	// FormatTOML encodes the same document shape as TOML.
	FormatTOML
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	case FormatTOML:
		return "toml"
	default:
		return "unknown"
	}
}

// ParseFormat maps a format name to a Format. Recognized names are "yaml"
// (and "yml"), "json", and "toml".
func ParseFormat(name string) (Format, error) {
	switch name {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	case "toml":
		return FormatTOML, nil
	default:
		return FormatYAML, fmt.Errorf("unsupported catalog file format %q", name)
	}
}

// Config locates the catalog document and names its encoding.
type Config struct {
	path   string
	format Format
}

// NewConfig creates a Config for the given path with the default YAML format.
func NewConfig(path string) Config {
	return Config{path: path, format: FormatYAML}
}

// WithFormat returns a copy of the Config using the given format.
func (c Config) WithFormat(format Format) Config {
	c.format = format
	return c
}

// Path returns the filesystem path of the catalog document.
func (c Config) Path() string {
	return c.path
}

// Format returns the encoding of the catalog document.
func (c Config) Format() Format {
	return c.format
}
