// Package middleware provides the HTTP middleware for the sharing server:
// recipient authentication, request IDs, and rate limiting.
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"deltashare/internal/auth"
	"deltashare/internal/domain"
)

type recipientKey struct{}

// WithRecipient stores the recipient identity in the context.
func WithRecipient(ctx context.Context, recipient domain.RecipientID) context.Context {
	return context.WithValue(ctx, recipientKey{}, recipient)
}

// RecipientFromContext extracts the recipient identity from the context. A
// request that never passed the authentication middleware counts as
// anonymous.
func RecipientFromContext(ctx context.Context) domain.RecipientID {
	recipient, ok := ctx.Value(recipientKey{}).(domain.RecipientID)
	if !ok {
		return domain.Anonymous()
	}
	return recipient
}

// Recipient returns an HTTP middleware that resolves the caller's identity.
// A valid bearer token yields a known recipient; a missing Authorization
// header yields the anonymous recipient when the authenticator allows it,
// and 401 otherwise. An invalid token is always rejected.
func Recipient(a *auth.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				if !a.AllowsAnonymous() {
					unauthorized(w, "missing bearer token")
					return
				}
				next.ServeHTTP(w, r.WithContext(WithRecipient(r.Context(), domain.Anonymous())))
				return
			}

			tokenString, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				unauthorized(w, "unsupported authorization scheme")
				return
			}
			recipient, err := a.Validate(tokenString)
			if err != nil {
				unauthorized(w, "invalid bearer token")
				return
			}
			next.ServeHTTP(w, r.WithContext(WithRecipient(r.Context(), recipient)))
		})
	}
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"errorCode": "UNAUTHENTICATED",
		"message":   message,
	})
}
