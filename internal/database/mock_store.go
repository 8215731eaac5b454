// file: internal/database/mock_store.go
// version: 1.2.0
// guid: 6d7e8f90-1a2b-3c4d-5e6f-708192a3b4c5

package database

import (
	"errors"
	"sort"
	"strings"
	"sync"
)

// MockStore is an in-memory Store implementation for tests.
type MockStore struct {
	mu           sync.Mutex
	authors      []Author
	books        []Book
	nextAuthorID int
	nextBookID   int

	// Forced failures for exercising persistence-error paths
	FailCreateAuthor bool
	FailCreateBook   bool
	FailListings     bool
}

// NewMockStore creates an empty in-memory store
func NewMockStore() *MockStore {
	return &MockStore{nextAuthorID: 1, nextBookID: 1}
}

var errMockFailure = errors.New("mock store failure")

// Close is a no-op for the mock store
func (m *MockStore) Close() error {
	return nil
}

// GetAllAuthors returns all authors ordered by name
func (m *MockStore) GetAllAuthors() ([]Author, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	authors := make([]Author, len(m.authors))
	copy(authors, m.authors)
	sort.Slice(authors, func(i, j int) bool { return authors[i].Name < authors[j].Name })
	return authors, nil
}

// GetAuthorByID returns the author with the given id
func (m *MockStore) GetAuthorByID(id int) (*Author, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, author := range m.authors {
		if author.ID == id {
			a := author
			return &a, nil
		}
	}
	return nil, ErrNotFound
}

// GetAuthorByNameAndBirthDate returns the author matching the duplicate key
func (m *MockStore) GetAuthorByNameAndBirthDate(name, birthDate string) (*Author, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, author := range m.authors {
		if author.Name == name && author.BirthDate == birthDate {
			a := author
			return &a, nil
		}
	}
	return nil, ErrNotFound
}

// CreateAuthor appends a new author with the next id
func (m *MockStore) CreateAuthor(author *Author) (*Author, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailCreateAuthor {
		return nil, errMockFailure
	}

	created := *author
	created.ID = m.nextAuthorID
	m.nextAuthorID++
	m.authors = append(m.authors, created)
	return &created, nil
}

// CountAuthors returns the number of authors
func (m *MockStore) CountAuthors() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.authors), nil
}

// GetBookByISBN returns the book with the given ISBN
func (m *MockStore) GetBookByISBN(isbn string) (*Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, book := range m.books {
		if book.ISBN == isbn {
			b := book
			return &b, nil
		}
	}
	return nil, ErrNotFound
}

// CreateBook appends a new book with the next id
func (m *MockStore) CreateBook(book *Book) (*Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailCreateBook {
		return nil, errMockFailure
	}

	// Same backstop the SQLite schema provides via UNIQUE(isbn)
	for _, existing := range m.books {
		if existing.ISBN == book.ISBN {
			return nil, errors.New("UNIQUE constraint failed: books.isbn")
		}
	}

	created := *book
	created.ID = m.nextBookID
	m.nextBookID++
	m.books = append(m.books, created)
	return &created, nil
}

// CountBooks returns the number of books
func (m *MockStore) CountBooks() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.books), nil
}

func (m *MockStore) listing(book Book) BookListing {
	listing := BookListing{Book: book}
	for _, author := range m.authors {
		if author.ID == book.AuthorID {
			listing.Author = author
			break
		}
	}
	return listing
}

// ListBooksOrderedBy returns all books joined with authors, sorted like the
// SQLite implementation.
func (m *MockStore) ListBooksOrderedBy(sortKey string) ([]BookListing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailListings {
		return nil, errMockFailure
	}

	listings := make([]BookListing, 0, len(m.books))
	for _, book := range m.books {
		listings = append(listings, m.listing(book))
	}

	if sortKey == SortByTitle {
		sort.Slice(listings, func(i, j int) bool {
			return listings[i].Book.Title < listings[j].Book.Title
		})
	} else {
		sort.Slice(listings, func(i, j int) bool {
			return listings[i].Author.Name < listings[j].Author.Name
		})
	}
	return listings, nil
}

// ListBooksMatchingTitle returns books whose title contains search, by title
func (m *MockStore) ListBooksMatchingTitle(search string) ([]BookListing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailListings {
		return nil, errMockFailure
	}

	listings := []BookListing{}
	for _, book := range m.books {
		if strings.Contains(book.Title, search) {
			listings = append(listings, m.listing(book))
		}
	}
	sort.Slice(listings, func(i, j int) bool {
		return listings[i].Book.Title < listings[j].Book.Title
	})
	return listings, nil
}
