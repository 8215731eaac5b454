// file: internal/server/catalog_service_test.go
// version: 1.1.0
// guid: 0d1e2f3a-4b5c-6d7e-8f90-a1b2c3d4e5f6

package server

import (
	"testing"

	"booklibrary/internal/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCoverClient resolves covers from a fixed map and records each call
type stubCoverClient struct {
	covers map[string]string
	calls  []string
}

func (s *stubCoverClient) FetchCoverURL(isbn string) string {
	s.calls = append(s.calls, isbn)
	return s.covers[isbn]
}

func newCatalogFixture(t *testing.T) (*database.MockStore, *stubCoverClient, *CatalogService) {
	t.Helper()
	store := database.NewMockStore()

	tolkien, err := store.CreateAuthor(&database.Author{Name: "Tolkien"})
	require.NoError(t, err)
	herbert, err := store.CreateAuthor(&database.Author{Name: "Herbert"})
	require.NoError(t, err)

	_, err = store.CreateBook(&database.Book{ISBN: "9780261103344", Title: "The Hobbit", AuthorID: tolkien.ID})
	require.NoError(t, err)
	_, err = store.CreateBook(&database.Book{ISBN: "9780441013593", Title: "Dune", AuthorID: herbert.ID})
	require.NoError(t, err)

	covers := &stubCoverClient{covers: map[string]string{
		"9780261103344": "http://example.com/hobbit.jpg",
	}}
	return store, covers, NewCatalogService(store, covers)
}

func TestListBooksSortedByTitle(t *testing.T) {
	_, _, svc := newCatalogFixture(t)

	page, err := svc.ListBooks("title", "")
	require.NoError(t, err)
	require.Len(t, page.Listings, 2)
	assert.Equal(t, "Dune", page.Listings[0].Book.Title)
	assert.Equal(t, "The Hobbit", page.Listings[1].Book.Title)
	assert.False(t, page.NoMatches)
}

func TestListBooksDefaultSortIsAuthor(t *testing.T) {
	_, _, svc := newCatalogFixture(t)

	for _, sortKey := range []string{"", "author", "isbn"} {
		page, err := svc.ListBooks(sortKey, "")
		require.NoError(t, err)
		require.Len(t, page.Listings, 2)
		assert.Equal(t, "Herbert", page.Listings[0].Author.Name, "sort=%q", sortKey)
		assert.Equal(t, "Tolkien", page.Listings[1].Author.Name, "sort=%q", sortKey)
	}
}

func TestListBooksSearchFilters(t *testing.T) {
	_, covers, svc := newCatalogFixture(t)

	page, err := svc.ListBooks("", "Hobbit")
	require.NoError(t, err)
	require.Len(t, page.Listings, 1)
	assert.Equal(t, "The Hobbit", page.Listings[0].Book.Title)
	assert.False(t, page.NoMatches)

	// Only the matching row triggers a cover lookup
	assert.Equal(t, []string{"9780261103344"}, covers.calls)
}

func TestListBooksSearchNoMatches(t *testing.T) {
	_, covers, svc := newCatalogFixture(t)

	page, err := svc.ListBooks("", "xyz123")
	require.NoError(t, err)
	assert.Empty(t, page.Listings)
	assert.True(t, page.NoMatches)
	assert.Empty(t, covers.calls)
}

func TestListBooksAttachesCovers(t *testing.T) {
	_, _, svc := newCatalogFixture(t)

	page, err := svc.ListBooks("title", "")
	require.NoError(t, err)

	byTitle := map[string]string{}
	for _, listing := range page.Listings {
		byTitle[listing.Book.Title] = listing.CoverURL
	}
	assert.Equal(t, "http://example.com/hobbit.jpg", byTitle["The Hobbit"])
	assert.Empty(t, byTitle["Dune"])
}

func TestListBooksLookupMissFallsBackToStoredCover(t *testing.T) {
	store := database.NewMockStore()
	author, err := store.CreateAuthor(&database.Author{Name: "Herbert"})
	require.NoError(t, err)

	stored := "http://example.com/stored.jpg"
	_, err = store.CreateBook(&database.Book{
		ISBN: "9780441013593", Title: "Dune", AuthorID: author.ID, CoverURL: &stored,
	})
	require.NoError(t, err)

	svc := NewCatalogService(store, &stubCoverClient{covers: map[string]string{}})
	page, err := svc.ListBooks("", "")
	require.NoError(t, err)
	require.Len(t, page.Listings, 1)
	assert.Equal(t, stored, page.Listings[0].CoverURL)
}

func TestListBooksStoreError(t *testing.T) {
	store := database.NewMockStore()
	store.FailListings = true
	svc := NewCatalogService(store, &stubCoverClient{})

	_, err := svc.ListBooks("", "")
	assert.Error(t, err)
}
