// file: internal/database/sqlite_store.go
// version: 1.4.0
// guid: 1b2c3d4e-5f6a-7b8c-9d0e-1f2a3b4c5d6e

package database

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type rowScanner interface {
	Scan(dest ...interface{}) error
}

const authorSelectColumns = `id, name, birth_date, date_of_death`

func scanAuthor(scanner rowScanner, author *Author) error {
	return scanner.Scan(&author.ID, &author.Name, &author.BirthDate, &author.DateOfDeath)
}

const bookSelectColumns = `id, isbn, title, publication_year, author_id, cover_url`

func scanBook(scanner rowScanner, book *Book) error {
	return scanner.Scan(
		&book.ID, &book.ISBN, &book.Title,
		&book.PublicationYear, &book.AuthorID, &book.CoverURL,
	)
}

// SQLiteStore implements the Store interface using SQLite3
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite store at the given file path
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping SQLite database: %w", err)
	}

	// Title search is contractually case-sensitive substring matching
	if _, err := db.Exec(`PRAGMA case_sensitive_like = ON`); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set case_sensitive_like: %w", err)
	}

	store := &SQLiteStore{db: db}

	if err := store.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return store, nil
}

// createTables creates all required tables
func (s *SQLiteStore) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS authors (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		birth_date TEXT,
		date_of_death TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_authors_name ON authors(name);

	CREATE TABLE IF NOT EXISTS books (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		isbn TEXT NOT NULL UNIQUE,
		title TEXT NOT NULL,
		publication_year INTEGER,
		author_id INTEGER NOT NULL,
		cover_url TEXT,
		FOREIGN KEY (author_id) REFERENCES authors(id)
	);

	CREATE INDEX IF NOT EXISTS idx_books_title ON books(title);
	CREATE INDEX IF NOT EXISTS idx_books_author ON books(author_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// GetAllAuthors returns all authors ordered by name
func (s *SQLiteStore) GetAllAuthors() ([]Author, error) {
	rows, err := s.db.Query(`SELECT ` + authorSelectColumns + ` FROM authors ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query authors: %w", err)
	}
	defer rows.Close()

	authors := []Author{}
	for rows.Next() {
		var author Author
		if err := scanAuthor(rows, &author); err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, author)
	}
	return authors, rows.Err()
}

// GetAuthorByID returns the author with the given id
func (s *SQLiteStore) GetAuthorByID(id int) (*Author, error) {
	var author Author
	err := scanAuthor(s.db.QueryRow(
		`SELECT `+authorSelectColumns+` FROM authors WHERE id = ?`, id), &author)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get author %d: %w", id, err)
	}
	return &author, nil
}

// GetAuthorByNameAndBirthDate returns the author matching the duplicate key
func (s *SQLiteStore) GetAuthorByNameAndBirthDate(name, birthDate string) (*Author, error) {
	var author Author
	err := scanAuthor(s.db.QueryRow(
		`SELECT `+authorSelectColumns+` FROM authors WHERE name = ? AND birth_date = ?`,
		name, birthDate), &author)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up author %q: %w", name, err)
	}
	return &author, nil
}

// CreateAuthor inserts a new author and returns it with the assigned id
func (s *SQLiteStore) CreateAuthor(author *Author) (*Author, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec(
		`INSERT INTO authors (name, birth_date, date_of_death) VALUES (?, ?, ?)`,
		author.Name, author.BirthDate, author.DateOfDeath)
	if err != nil {
		return nil, fmt.Errorf("failed to insert author: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get author id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit author: %w", err)
	}

	created := *author
	created.ID = int(id)
	return &created, nil
}

// CountAuthors returns the total number of authors
func (s *SQLiteStore) CountAuthors() (int, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM authors`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count authors: %w", err)
	}
	return count, nil
}

// GetBookByISBN returns the book with the given ISBN
func (s *SQLiteStore) GetBookByISBN(isbn string) (*Book, error) {
	var book Book
	err := scanBook(s.db.QueryRow(
		`SELECT `+bookSelectColumns+` FROM books WHERE isbn = ?`, isbn), &book)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get book %s: %w", isbn, err)
	}
	return &book, nil
}

// CreateBook inserts a new book and returns it with the assigned id.
// The UNIQUE constraint on isbn is the backstop against concurrent duplicate
// submissions that both pass the application-level check.
func (s *SQLiteStore) CreateBook(book *Book) (*Book, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec(
		`INSERT INTO books (isbn, title, publication_year, author_id, cover_url) VALUES (?, ?, ?, ?, ?)`,
		book.ISBN, book.Title, book.PublicationYear, book.AuthorID, book.CoverURL)
	if err != nil {
		return nil, fmt.Errorf("failed to insert book: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get book id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit book: %w", err)
	}

	created := *book
	created.ID = int(id)
	return &created, nil
}

// CountBooks returns the total number of books
func (s *SQLiteStore) CountBooks() (int, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM books`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count books: %w", err)
	}
	return count, nil
}

const listingSelect = `
	SELECT b.id, b.isbn, b.title, b.publication_year, b.author_id, b.cover_url,
	       a.id, a.name, a.birth_date, a.date_of_death
	FROM books b
	JOIN authors a ON a.id = b.author_id`

func scanListing(scanner rowScanner, listing *BookListing) error {
	return scanner.Scan(
		&listing.Book.ID, &listing.Book.ISBN, &listing.Book.Title,
		&listing.Book.PublicationYear, &listing.Book.AuthorID, &listing.Book.CoverURL,
		&listing.Author.ID, &listing.Author.Name,
		&listing.Author.BirthDate, &listing.Author.DateOfDeath,
	)
}

func (s *SQLiteStore) collectListings(rows *sql.Rows) ([]BookListing, error) {
	defer rows.Close()

	listings := []BookListing{}
	for rows.Next() {
		var listing BookListing
		if err := scanListing(rows, &listing); err != nil {
			return nil, fmt.Errorf("failed to scan listing: %w", err)
		}
		listings = append(listings, listing)
	}
	return listings, rows.Err()
}

// ListBooksOrderedBy returns all books joined with their authors, ordered by
// title when sortKey is SortByTitle, otherwise by author name.
func (s *SQLiteStore) ListBooksOrderedBy(sortKey string) ([]BookListing, error) {
	order := ` ORDER BY a.name ASC`
	if sortKey == SortByTitle {
		order = ` ORDER BY b.title ASC`
	}

	rows, err := s.db.Query(listingSelect + order)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	return s.collectListings(rows)
}

// ListBooksMatchingTitle returns books whose title contains the search term,
// ordered by title.
func (s *SQLiteStore) ListBooksMatchingTitle(search string) ([]BookListing, error) {
	rows, err := s.db.Query(
		listingSelect+` WHERE b.title LIKE '%' || ? || '%' ORDER BY b.title ASC`, search)
	if err != nil {
		return nil, fmt.Errorf("failed to search books: %w", err)
	}
	return s.collectListings(rows)
}
