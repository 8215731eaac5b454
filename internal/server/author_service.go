// file: internal/server/author_service.go
// version: 1.1.0
// guid: 5e6f7a8b-9c0d-1e2f-3a4b-5c6d7e8f9a0b

package server

import (
	"errors"
	"log"
	"strings"

	"booklibrary/internal/database"
	"booklibrary/internal/metrics"
)

// AuthorService handles author submission logic
type AuthorService struct {
	store database.Store
}

// NewAuthorService creates a new AuthorService instance
func NewAuthorService(store database.Store) *AuthorService {
	return &AuthorService{store: store}
}

// SubmitAuthor validates and persists a new author from raw form fields.
// Duplicate detection keys on (name, birth date); the check and the insert
// are not atomic, the store carries no uniqueness constraint for authors.
func (svc *AuthorService) SubmitAuthor(name, birthDate, dateOfDeath string) SubmissionResult {
	name = strings.TrimSpace(name)
	birthDate = strings.TrimSpace(birthDate)
	dateOfDeath = strings.TrimSpace(dateOfDeath)

	if err := ValidateAuthorName(name); err != nil {
		metrics.IncSubmissionRejected("author", "validation")
		return Warning("Invalid name. Please fill the form correctly.")
	}

	existing, err := svc.store.GetAuthorByNameAndBirthDate(name, birthDate)
	if err != nil && !errors.Is(err, database.ErrNotFound) {
		log.Printf("[ERROR] author duplicate check failed: %v", err)
		metrics.IncSubmissionRejected("author", "store")
		return Warning("Error adding author to the database!")
	}
	if existing != nil {
		metrics.IncSubmissionRejected("author", "duplicate")
		return Warning("Author already in database... Please choose a different name.")
	}

	// dateOfDeath may be empty and is stored as-is, no null normalization
	author := &database.Author{
		Name:        name,
		BirthDate:   birthDate,
		DateOfDeath: dateOfDeath,
	}
	if _, err := svc.store.CreateAuthor(author); err != nil {
		log.Printf("[ERROR] failed to add author %q: %v", name, err)
		metrics.IncSubmissionRejected("author", "store")
		return Warning("Error adding author to the database!")
	}

	metrics.IncAuthorCreated()
	if count, err := svc.store.CountAuthors(); err == nil {
		metrics.SetAuthors(count)
	}

	return Success("Author added successfully!")
}
