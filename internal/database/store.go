// file: internal/database/store.go
// version: 1.3.0
// guid: 8a9b0c1d-2e3f-4a5b-6c7d-8e9f0a1b2c3d

package database

import "errors"

// ErrNotFound is returned by single-record lookups when no row matches.
var ErrNotFound = errors.New("record not found")

// Sort keys accepted by ListBooksOrderedBy. Anything else falls back to
// SortByAuthor.
const (
	SortByAuthor = "author"
	SortByTitle  = "title"
)

// Store defines the interface for catalog persistence.
// This abstraction keeps the handlers independent of the storage engine and
// allows an in-memory implementation for tests.
type Store interface {
	// Lifecycle
	Close() error

	// Authors
	GetAllAuthors() ([]Author, error)
	GetAuthorByID(id int) (*Author, error)
	GetAuthorByNameAndBirthDate(name, birthDate string) (*Author, error)
	CreateAuthor(author *Author) (*Author, error)
	CountAuthors() (int, error)

	// Books
	GetBookByISBN(isbn string) (*Book, error)
	CreateBook(book *Book) (*Book, error)
	CountBooks() (int, error)

	// Listings (book joined with author)
	ListBooksOrderedBy(sortKey string) ([]BookListing, error)
	ListBooksMatchingTitle(search string) ([]BookListing, error)
}
