package api

import "deltashare/internal/domain"

// Wire types for the sharing protocol. Listing responses omit the
// continuation token on the final page; table listings never expose the
// storage location, only the metadata route does.

type shareJSON struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

type schemaJSON struct {
	Name  string `json:"name"`
	Share string `json:"share"`
}

type tableJSON struct {
	ID      string `json:"id,omitempty"`
	Name    string `json:"name"`
	Schema  string `json:"schema"`
	Share   string `json:"share"`
	ShareID string `json:"shareId,omitempty"`
}

type tableMetadataJSON struct {
	tableJSON
	StorageLocation string `json:"storageLocation"`
}

type listSharesResponse struct {
	Items         []shareJSON `json:"items"`
	NextPageToken string      `json:"nextPageToken,omitempty"`
}

type getShareResponse struct {
	Share shareJSON `json:"share"`
}

type listSchemasResponse struct {
	Items         []schemaJSON `json:"items"`
	NextPageToken string       `json:"nextPageToken,omitempty"`
}

type listTablesResponse struct {
	Items         []tableJSON `json:"items"`
	NextPageToken string      `json:"nextPageToken,omitempty"`
}

type getTableResponse struct {
	Table tableMetadataJSON `json:"table"`
}

func shareToAPI(s domain.Share) shareJSON {
	return shareJSON{ID: s.ID(), Name: s.Name()}
}

func sharesToAPI(shares []domain.Share) []shareJSON {
	out := make([]shareJSON, 0, len(shares))
	for _, s := range shares {
		out = append(out, shareToAPI(s))
	}
	return out
}

func schemasToAPI(schemas []domain.Schema) []schemaJSON {
	out := make([]schemaJSON, 0, len(schemas))
	for _, s := range schemas {
		out = append(out, schemaJSON{Name: s.Name(), Share: s.ShareName()})
	}
	return out
}

func tableToAPI(t domain.Table) tableJSON {
	return tableJSON{
		ID:      t.ID(),
		Name:    t.Name(),
		Schema:  t.SchemaName(),
		Share:   t.ShareName(),
		ShareID: t.ShareID(),
	}
}

func tablesToAPI(tables []domain.Table) []tableJSON {
	out := make([]tableJSON, 0, len(tables))
	for _, t := range tables {
		out = append(out, tableToAPI(t))
	}
	return out
}

func tableMetadataToAPI(t domain.Table) tableMetadataJSON {
	return tableMetadataJSON{
		tableJSON:       tableToAPI(t),
		StorageLocation: t.StoragePath(),
	}
}
