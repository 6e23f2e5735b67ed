package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"deltashare/internal/domain"
)

// errorResponse is the JSON body returned for every failed request.
type errorResponse struct {
	ErrorCode string `json:"errorCode"`
	Message   string `json:"message"`
}

// httpStatusFromCatalogError maps catalog error kinds to HTTP status codes.
func httpStatusFromCatalogError(err error) int {
	var catErr *domain.CatalogError
	if !errors.As(err, &catErr) {
		return http.StatusInternalServerError
	}
	switch catErr.Kind {
	case domain.KindResourceNotFound:
		return http.StatusNotFound
	case domain.KindResourceForbidden:
		return http.StatusForbidden
	case domain.KindMalformedPagination:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeCatalogError renders a catalog failure as the protocol error body.
func writeCatalogError(w http.ResponseWriter, err error) {
	code := "INTERNAL_ERROR"
	var catErr *domain.CatalogError
	if errors.As(err, &catErr) {
		code = catErr.Kind.String()
	}
	writeJSON(w, httpStatusFromCatalogError(err), errorResponse{
		ErrorCode: code,
		Message:   err.Error(),
	})
}

// writeBadRequest rejects a request before it reaches the catalog.
func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{
		ErrorCode: "MALFORMED_REQUEST",
		Message:   message,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
