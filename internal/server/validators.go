// file: internal/server/validators.go
// version: 1.1.0
// guid: 9b0c1d2e-3f4a-5b6c-7d8e-9f0a1b2c3d4e

package server

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Earliest accepted publication year (Gutenberg Bible).
const minPublicationYear = 1455

// ValidationError represents a validation error with code
type ValidationError struct {
	Field   string
	Message string
	Code    string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateAuthorName validates an author name. Empty names and names that
// parse as an integer literal are rejected; anything else is accepted,
// including names mixing digits with letters.
func ValidateAuthorName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ValidationError{
			Field:   "name",
			Message: "name is required",
			Code:    "NAME_REQUIRED",
		}
	}
	if _, err := strconv.Atoi(name); err == nil {
		return ValidationError{
			Field:   "name",
			Message: "name must not be a number",
			Code:    "NAME_NUMERIC",
		}
	}
	return nil
}

// ValidateBookTitle validates that a title is non-empty and contains at
// least one alphabetic character.
func ValidateBookTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ValidationError{
			Field:   "title",
			Message: "title is required",
			Code:    "TITLE_REQUIRED",
		}
	}
	for _, r := range title {
		if unicode.IsLetter(r) {
			return nil
		}
	}
	return ValidationError{
		Field:   "title",
		Message: "title must contain at least one letter",
		Code:    "TITLE_NO_LETTERS",
	}
}

// ValidateISBN validates that an ISBN consists solely of ASCII digits and is
// exactly 10 or 13 digits long.
func ValidateISBN(isbn string) error {
	isbn = strings.TrimSpace(isbn)
	invalid := ValidationError{
		Field:   "isbn",
		Message: "isbn must be 10 or 13 digits",
		Code:    "ISBN_INVALID",
	}
	if len(isbn) != 10 && len(isbn) != 13 {
		return invalid
	}
	for _, r := range isbn {
		if r < '0' || r > '9' {
			return invalid
		}
	}
	return nil
}

// ValidatePublicationYear validates an optional publication year. The empty
// string is valid; otherwise the text must be all digits and fall within
// [1455, currentYear].
func ValidatePublicationYear(yearText string, currentYear int) error {
	yearText = strings.TrimSpace(yearText)
	if yearText == "" {
		return nil
	}
	outOfRange := ValidationError{
		Field:   "publication_year",
		Message: fmt.Sprintf("publication year must be between %d and %d", minPublicationYear, currentYear),
		Code:    "YEAR_OUT_OF_RANGE",
	}
	for _, r := range yearText {
		if r < '0' || r > '9' {
			return outOfRange
		}
	}
	year, err := strconv.Atoi(yearText)
	if err != nil || year < minPublicationYear || year > currentYear {
		return outOfRange
	}
	return nil
}
