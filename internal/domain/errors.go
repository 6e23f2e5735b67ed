// Package domain defines the core catalog types: shared assets, builders,
// pagination, recipient identity, and the error taxonomy.
package domain

import "fmt"

// ErrorKind is the closed set of failure classes a catalog operation can
// report. The serving layer maps each kind to a wire status.
type ErrorKind int

const (
	// KindResourceNotFound indicates the named share, schema, or table does
	// not exist — or exists but is not visible to the recipient. Both
	// conditions collapse to this kind so that get operations never confirm
	// the existence of resources a recipient cannot see.
	KindResourceNotFound ErrorKind = iota
	// KindResourceForbidden indicates the resource exists but the recipient
	// may not access it. Reserved: the file backend reports invisibility as
	// not-found instead.
	KindResourceForbidden
	// KindMalformedPagination indicates a page token that does not parse as
	// a non-negative integer.
	KindMalformedPagination
	// KindInternal indicates a backend fault, such as a builder assembling
	// an entity with a required field missing.
	KindInternal
)

// String returns the stable wire label for the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindResourceNotFound:
		return "NOT_FOUND"
	case KindResourceForbidden:
		return "FORBIDDEN"
	case KindMalformedPagination:
		return "MALFORMED_PAGINATION"
	case KindInternal:
		return "INTERNAL_ERROR"
	default:
		return "UNKNOWN"
	}
}

// CatalogError is the error type returned by every catalog operation. The
// message is a free-text diagnostic, not intended for machine parsing.
type CatalogError struct {
	Kind    ErrorKind
	Message string
}

func (e *CatalogError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

// ErrNotFound creates a CatalogError of kind ResourceNotFound.
func ErrNotFound(format string, args ...any) *CatalogError {
	return &CatalogError{Kind: KindResourceNotFound, Message: fmt.Sprintf(format, args...)}
}

// ErrForbidden creates a CatalogError of kind ResourceForbidden.
func ErrForbidden(format string, args ...any) *CatalogError {
	return &CatalogError{Kind: KindResourceForbidden, Message: fmt.Sprintf(format, args...)}
}

// ErrMalformedPagination creates a CatalogError of kind MalformedPagination.
func ErrMalformedPagination(format string, args ...any) *CatalogError {
	return &CatalogError{Kind: KindMalformedPagination, Message: fmt.Sprintf(format, args...)}
}

// ErrInternal creates a CatalogError of kind Internal.
func ErrInternal(format string, args ...any) *CatalogError {
	return &CatalogError{Kind: KindInternal, Message: fmt.Sprintf(format, args...)}
}
