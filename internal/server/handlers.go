// file: internal/server/handlers.go
// version: 1.2.0
// guid: 2e3f4a5b-6c7d-8e9f-0a1b-2c3d4e5f6a7b

package server

import (
	"log"
	"net/http"

	"booklibrary/internal/database"

	"github.com/gin-gonic/gin"
)

// homePage renders the book listing, sorted via ?sort= and filtered via
// ?search=. A ?message= query parameter is passed through as a notice.
func (s *Server) homePage(c *gin.Context) {
	sortKey := c.Query("sort")
	search := c.Query("search")
	message := c.Query("message")

	page, err := s.catalog.ListBooks(sortKey, search)
	if err != nil {
		log.Printf("[ERROR] failed to build book listing: %v", err)
		c.HTML(http.StatusOK, "home.html", gin.H{
			"Books":   []database.BookListing{},
			"Warning": "Error loading the library collection!",
			"Sort":    sortKey,
			"Search":  search,
		})
		return
	}

	if page.NoMatches {
		message = "No books in database matched your search."
	}

	c.HTML(http.StatusOK, "home.html", gin.H{
		"Books":   page.Listings,
		"Message": message,
		"Sort":    sortKey,
		"Search":  search,
	})
}

// authorList fetches the authors shown on both form pages. Errors degrade to
// an empty list; the form itself stays usable.
func (s *Server) authorList() []database.Author {
	authors, err := s.store.GetAllAuthors()
	if err != nil {
		log.Printf("[WARN] failed to load author list: %v", err)
		return nil
	}
	return authors
}

// addAuthorForm renders the empty author form with the current author list
func (s *Server) addAuthorForm(c *gin.Context) {
	c.HTML(http.StatusOK, "add_author.html", gin.H{
		"Authors": s.authorList(),
	})
}

// addAuthorSubmit processes the author form submission
func (s *Server) addAuthorSubmit(c *gin.Context) {
	result := s.authors.SubmitAuthor(
		c.PostForm("name"),
		c.PostForm("birth_date"),
		c.PostForm("date_of_death"),
	)

	data := gin.H{"Authors": s.authorList()}
	if result.OK {
		data["SuccessMessage"] = result.Message
	} else {
		data["WarningMessage"] = result.Message
	}
	c.HTML(http.StatusOK, "add_author.html", data)
}

// addBookForm renders the empty book form with the author select list
func (s *Server) addBookForm(c *gin.Context) {
	c.HTML(http.StatusOK, "add_book.html", gin.H{
		"Authors": s.authorList(),
	})
}

// addBookSubmit processes the book form submission
func (s *Server) addBookSubmit(c *gin.Context) {
	result := s.books.SubmitBook(
		c.PostForm("isbn"),
		c.PostForm("title"),
		c.PostForm("publication_year"),
		c.PostForm("author_id"),
		c.PostForm("cover_url"),
	)

	data := gin.H{"Authors": s.authorList()}
	if result.OK {
		data["SuccessMessage"] = result.Message
	} else {
		data["WarningMessage"] = result.Message
	}
	c.HTML(http.StatusOK, "add_book.html", data)
}
