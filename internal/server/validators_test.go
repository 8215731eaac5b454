// file: internal/server/validators_test.go
// version: 1.1.0
// guid: 3d4e5f6a-7b8c-9d0e-1f2a-3b4c5d6e7f80

package server

import (
	"testing"
)

func TestValidateAuthorName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"simple name", "Jane Austen", true},
		{"single word", "Homer", true},
		{"empty", "", false},
		{"whitespace only", "   ", false},
		{"digits only", "12345", false},
		{"signed integer", "-42", false},
		{"plus-signed integer", "+7", false},
		{"digits with letters", "Louis XIV", true},
		{"leading digit", "50 Cent", true},
		{"punctuation", "J.R.R. Tolkien", true},
		{"non-latin letters", "Fjodor Dostojewski", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAuthorName(tt.input)
			if tt.valid && err != nil {
				t.Errorf("expected %q to be valid, got %v", tt.input, err)
			}
			if !tt.valid && err == nil {
				t.Errorf("expected %q to be invalid", tt.input)
			}
		})
	}
}

func TestValidateBookTitle(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"normal title", "The Hobbit", true},
		{"title with digits", "1984", false},
		{"mixed", "Catch-22", true},
		{"empty", "", false},
		{"whitespace only", "  ", false},
		{"punctuation only", "!?!", false},
		{"single letter", "V", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBookTitle(tt.input)
			if tt.valid && err != nil {
				t.Errorf("expected %q to be valid, got %v", tt.input, err)
			}
			if !tt.valid && err == nil {
				t.Errorf("expected %q to be invalid", tt.input)
			}
		})
	}
}

func TestValidateISBN(t *testing.T) {
	valid := []string{"0261103342", "9780261103344", "1234567890", "1234567890123"}
	for _, isbn := range valid {
		if err := ValidateISBN(isbn); err != nil {
			t.Errorf("expected %q to be valid, got %v", isbn, err)
		}
	}

	invalid := []string{
		"",
		"123",
		"12345678901",    // 11 digits
		"026110334X",     // ISBN-10 check character not accepted
		"978-0261103344", // separators not accepted
		"97802611033ab",
		"97802611033445", // 14 digits
	}
	for _, isbn := range invalid {
		if err := ValidateISBN(isbn); err == nil {
			t.Errorf("expected %q to be invalid", isbn)
		}
	}
}

func TestValidatePublicationYear(t *testing.T) {
	const currentYear = 2026

	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"empty is optional", "", true},
		{"lower bound", "1455", true},
		{"current year", "2026", true},
		{"typical", "1937", true},
		{"before printing press", "1454", false},
		{"future", "2027", false},
		{"not a number", "abcd", false},
		{"signed", "-1937", false},
		{"decimal", "19.37", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePublicationYear(tt.input, currentYear)
			if tt.valid && err != nil {
				t.Errorf("expected %q to be valid, got %v", tt.input, err)
			}
			if !tt.valid && err == nil {
				t.Errorf("expected %q to be invalid", tt.input)
			}
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := ValidateISBN("123")
	verr, ok := err.(ValidationError)
	if !ok {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if verr.Code != "ISBN_INVALID" {
		t.Errorf("expected code ISBN_INVALID, got %q", verr.Code)
	}
	if verr.Error() == "" {
		t.Error("expected a non-empty error message")
	}
}
