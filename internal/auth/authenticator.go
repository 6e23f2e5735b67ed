// Package auth turns request credentials into the opaque recipient identity
// the catalog is queried with. The catalog itself never sees tokens, only
// the resulting RecipientID.
package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"deltashare/internal/domain"
)

// Authenticator validates bearer tokens and produces recipient identities.
type Authenticator struct {
	secret      []byte
	requireAuth bool
}

// New creates an Authenticator validating HS256 tokens against the given
// shared secret. When requireAuth is false, requests without credentials are
// treated as the anonymous recipient instead of being rejected.
func New(secret []byte, requireAuth bool) (*Authenticator, error) {
	if requireAuth && len(secret) == 0 {
		return nil, fmt.Errorf("a JWT secret is required when authentication is mandatory")
	}
	return &Authenticator{secret: secret, requireAuth: requireAuth}, nil
}

// AllowsAnonymous reports whether requests without credentials are accepted.
func (a *Authenticator) AllowsAnonymous() bool {
	return !a.requireAuth
}

// Validate parses and verifies a bearer token, returning the recipient
// identity from its subject claim.
func (a *Authenticator) Validate(tokenString string) (domain.RecipientID, error) {
	if len(a.secret) == 0 {
		return domain.RecipientID{}, fmt.Errorf("bearer tokens are not accepted: no JWT secret configured")
	}
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return domain.RecipientID{}, fmt.Errorf("token verification failed: %w", err)
	}

	sub, err := token.Claims.GetSubject()
	if err != nil || sub == "" {
		return domain.RecipientID{}, fmt.Errorf("token has no subject claim")
	}
	return domain.Known(sub), nil
}
