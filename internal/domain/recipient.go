package domain

// AnonymousID is the distinguished identity string for unauthenticated
// recipients. It only matches shares that declare no recipients list, or a
// list that names it explicitly.
const AnonymousID = "ANONYMOUS"

// RecipientID is the identity a catalog operation is evaluated against. It is
// produced by the authentication layer and is opaque to the catalog, which
// only compares it against stored recipient lists.
type RecipientID struct {
	id string
}

// Anonymous returns the identity of an unauthenticated recipient.
func Anonymous() RecipientID {
	return RecipientID{id: AnonymousID}
}

// Known returns the identity of an authenticated recipient.
func Known(name string) RecipientID {
	return RecipientID{id: name}
}

// IsAnonymous reports whether the recipient is unauthenticated. The zero
// value counts as anonymous.
func (r RecipientID) IsAnonymous() bool {
	return r.id == "" || r.id == AnonymousID
}

// String returns the identity string compared against recipient lists.
func (r RecipientID) String() string {
	if r.id == "" {
		return AnonymousID
	}
	return r.id
}
