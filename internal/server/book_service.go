// file: internal/server/book_service.go
// version: 1.2.0
// guid: 7f8a9b0c-1d2e-3f4a-5b6c-7d8e9f0a1b2c

package server

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"booklibrary/internal/database"
	"booklibrary/internal/metrics"
)

// BookService handles book submission logic
type BookService struct {
	store database.Store
}

// NewBookService creates a new BookService instance
func NewBookService(store database.Store) *BookService {
	return &BookService{store: store}
}

// SubmitBook validates and persists a new book from raw form fields.
// Check order is significant: title, then ISBN, then year, then author
// existence, then duplicate ISBN. The first failing check short-circuits.
func (svc *BookService) SubmitBook(isbn, title, yearText, authorIDText, coverURL string) SubmissionResult {
	isbn = strings.TrimSpace(isbn)
	title = strings.TrimSpace(title)
	yearText = strings.TrimSpace(yearText)
	coverURL = strings.TrimSpace(coverURL)

	if err := ValidateBookTitle(title); err != nil {
		metrics.IncSubmissionRejected("book", "validation")
		return Warning("Invalid book title. Please enter a valid book title.")
	}

	if err := ValidateISBN(isbn); err != nil {
		metrics.IncSubmissionRejected("book", "validation")
		return Warning("Invalid ISBN. It should be 10 or 13 digits.")
	}

	currentYear := time.Now().Year()
	if err := ValidatePublicationYear(yearText, currentYear); err != nil {
		metrics.IncSubmissionRejected("book", "validation")
		return Warning(fmt.Sprintf(
			"Invalid publication year. Must be between %d (first published book) and %d.",
			minPublicationYear, currentYear))
	}

	authorID, err := strconv.Atoi(strings.TrimSpace(authorIDText))
	if err != nil {
		metrics.IncSubmissionRejected("book", "validation")
		return Warning("Selected author does not exist.")
	}
	if _, err := svc.store.GetAuthorByID(authorID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			metrics.IncSubmissionRejected("book", "validation")
			return Warning("Selected author does not exist.")
		}
		log.Printf("[ERROR] author lookup failed for book %q: %v", isbn, err)
		metrics.IncSubmissionRejected("book", "store")
		return Warning("Error adding the book!")
	}

	existing, err := svc.store.GetBookByISBN(isbn)
	if err != nil && !errors.Is(err, database.ErrNotFound) {
		log.Printf("[ERROR] book duplicate check failed: %v", err)
		metrics.IncSubmissionRejected("book", "store")
		return Warning("Error adding the book!")
	}
	if existing != nil {
		metrics.IncSubmissionRejected("book", "duplicate")
		return Warning("Book already exists in the library collection")
	}

	book := &database.Book{
		ISBN:     isbn,
		Title:    title,
		AuthorID: authorID,
	}
	if yearText != "" {
		year, _ := strconv.Atoi(yearText)
		book.PublicationYear = &year
	}
	if coverURL != "" {
		book.CoverURL = &coverURL
	}

	if _, err := svc.store.CreateBook(book); err != nil {
		log.Printf("[ERROR] failed to add book %q: %v", isbn, err)
		metrics.IncSubmissionRejected("book", "store")
		return Warning("Error adding the book!")
	}

	metrics.IncBookCreated()
	if count, err := svc.store.CountBooks(); err == nil {
		metrics.SetBooks(count)
	}

	return Success("Book added successfully!")
}
