// file: internal/server/catalog_service.go
// version: 1.1.0
// guid: 8b9c0d1e-2f3a-4b5c-6d7e-8f9a0b1c2d3e

package server

import (
	"booklibrary/internal/database"
)

// CoverClient resolves a cover-image URL for an ISBN. Implementations return
// "" when no cover could be found; they never return an error to the caller.
type CoverClient interface {
	FetchCoverURL(isbn string) string
}

// CatalogService builds the sorted/filtered book listing with covers
type CatalogService struct {
	store  database.Store
	covers CoverClient
}

// NewCatalogService creates a new CatalogService instance
func NewCatalogService(store database.Store, covers CoverClient) *CatalogService {
	return &CatalogService{store: store, covers: covers}
}

// CatalogPage is the rendered home-page model
type CatalogPage struct {
	Listings  []database.BookListing
	NoMatches bool
}

// ListBooks returns the catalog ordered by sortKey, or filtered by a title
// substring when search is non-empty. Each row gets a cover URL from the
// external lookup; a lookup miss falls back to the cover stored at creation
// time. Lookups are one synchronous call per row.
func (svc *CatalogService) ListBooks(sortKey, search string) (*CatalogPage, error) {
	var listings []database.BookListing
	var err error

	if search != "" {
		listings, err = svc.store.ListBooksMatchingTitle(search)
	} else {
		listings, err = svc.store.ListBooksOrderedBy(sortKey)
	}
	if err != nil {
		return nil, err
	}

	for i := range listings {
		if cover := svc.covers.FetchCoverURL(listings[i].Book.ISBN); cover != "" {
			listings[i].CoverURL = cover
		} else if listings[i].Book.CoverURL != nil {
			listings[i].CoverURL = *listings[i].Book.CoverURL
		}
	}

	return &CatalogPage{
		Listings:  listings,
		NoMatches: search != "" && len(listings) == 0,
	}, nil
}
