// Package api exposes the catalog over HTTP using the sharing protocol's
// listing routes. It is a thin boundary: recipient resolution happens in the
// middleware, all listing and visibility semantics live in the catalog.
package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"deltashare/internal/domain"
	"deltashare/internal/middleware"
)

// Handler serves the sharing protocol routes from a Catalog.
type Handler struct {
	catalog domain.Catalog
	logger  *slog.Logger
}

// NewHandler creates a Handler serving the given catalog.
func NewHandler(catalog domain.Catalog, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{catalog: catalog, logger: logger.With("component", "api")}
}

// paginationFromQuery extracts maxResults/pageToken query parameters. A
// maxResults of zero is rejected here, before it reaches the catalog, so
// clients never walk an endless sequence of empty pages.
func paginationFromQuery(r *http.Request) (domain.Pagination, error) {
	p := domain.Pagination{PageToken: r.URL.Query().Get("pageToken")}
	if v := r.URL.Query().Get("maxResults"); v != "" {
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return domain.Pagination{}, fmt.Errorf("maxResults must be a non-negative integer, got %q", v)
		}
		if n == 0 {
			return domain.Pagination{}, fmt.Errorf("maxResults must be at least 1")
		}
		max := uint32(n)
		p.MaxResults = &max
	}
	return p, nil
}

// ListShares handles GET /shares.
func (h *Handler) ListShares(w http.ResponseWriter, r *http.Request) {
	pagination, err := paginationFromQuery(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	recipient := middleware.RecipientFromContext(r.Context())
	page, err := h.catalog.ListShares(r.Context(), recipient, pagination)
	if err != nil {
		writeCatalogError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listSharesResponse{
		Items:         sharesToAPI(page.Items()),
		NextPageToken: page.NextPageToken(),
	})
}

// GetShare handles GET /shares/{share}.
func (h *Handler) GetShare(w http.ResponseWriter, r *http.Request) {
	recipient := middleware.RecipientFromContext(r.Context())
	share, err := h.catalog.GetShare(r.Context(), chi.URLParam(r, "share"), recipient)
	if err != nil {
		writeCatalogError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, getShareResponse{Share: shareToAPI(share)})
}

// ListSchemas handles GET /shares/{share}/schemas.
func (h *Handler) ListSchemas(w http.ResponseWriter, r *http.Request) {
	pagination, err := paginationFromQuery(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	recipient := middleware.RecipientFromContext(r.Context())
	page, err := h.catalog.ListSchemas(r.Context(), chi.URLParam(r, "share"), recipient, pagination)
	if err != nil {
		writeCatalogError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listSchemasResponse{
		Items:         schemasToAPI(page.Items()),
		NextPageToken: page.NextPageToken(),
	})
}

// ListTablesInShare handles GET /shares/{share}/all-tables.
func (h *Handler) ListTablesInShare(w http.ResponseWriter, r *http.Request) {
	pagination, err := paginationFromQuery(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	recipient := middleware.RecipientFromContext(r.Context())
	page, err := h.catalog.ListTablesInShare(r.Context(), chi.URLParam(r, "share"), recipient, pagination)
	if err != nil {
		writeCatalogError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listTablesResponse{
		Items:         tablesToAPI(page.Items()),
		NextPageToken: page.NextPageToken(),
	})
}

// ListTablesInSchema handles GET /shares/{share}/schemas/{schema}/tables.
func (h *Handler) ListTablesInSchema(w http.ResponseWriter, r *http.Request) {
	pagination, err := paginationFromQuery(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	recipient := middleware.RecipientFromContext(r.Context())
	page, err := h.catalog.ListTablesInSchema(r.Context(),
		chi.URLParam(r, "share"), chi.URLParam(r, "schema"), recipient, pagination)
	if err != nil {
		writeCatalogError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listTablesResponse{
		Items:         tablesToAPI(page.Items()),
		NextPageToken: page.NextPageToken(),
	})
}

// GetTable handles GET /shares/{share}/schemas/{schema}/tables/{table}/metadata.
func (h *Handler) GetTable(w http.ResponseWriter, r *http.Request) {
	recipient := middleware.RecipientFromContext(r.Context())
	table, err := h.catalog.GetTable(r.Context(),
		chi.URLParam(r, "share"), chi.URLParam(r, "schema"), chi.URLParam(r, "table"), recipient)
	if err != nil {
		writeCatalogError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, getTableResponse{Table: tableMetadataToAPI(table)})
}
