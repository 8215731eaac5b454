// file: internal/database/models.go
// version: 1.1.0
// guid: 4e5f6a7b-8c9d-0e1f-2a3b-4c5d6e7f8a9b

package database

import "fmt"

// Author represents a book author
type Author struct {
	ID          int    `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	BirthDate   string `json:"birth_date" db:"birth_date"`
	DateOfDeath string `json:"date_of_death" db:"date_of_death"`
}

func (a Author) String() string {
	return fmt.Sprintf("%d. %s (%s - %s)", a.ID, a.Name, a.BirthDate, a.DateOfDeath)
}

// Book represents a book in the catalog
type Book struct {
	ID              int     `json:"id" db:"id"`
	ISBN            string  `json:"isbn" db:"isbn"`
	Title           string  `json:"title" db:"title"`
	PublicationYear *int    `json:"publication_year" db:"publication_year"`
	AuthorID        int     `json:"author_id" db:"author_id"`
	CoverURL        *string `json:"cover_url" db:"cover_url"`
}

// BookListing is one row of the catalog page: a book joined with its author
// plus the cover URL resolved at render time. The resolved URL is never
// written back to the store.
type BookListing struct {
	Book     Book   `json:"book"`
	Author   Author `json:"author"`
	CoverURL string `json:"cover_url,omitempty"`
}
