// file: internal/metadata/googlebooks_test.go
// version: 1.1.0
// guid: d4e5f6a7-b8c9-0d1e-2f3a-b4c5d6e7f8a9

package metadata

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestGoogleBooksClient_Name(t *testing.T) {
	c := NewGoogleBooksClient("")
	if c.Name() != "Google Books" {
		t.Errorf("expected 'Google Books', got %q", c.Name())
	}
}

func TestFetchCoverURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/volumes" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if q := r.URL.Query().Get("q"); q != "isbn:9780261103344" {
			t.Errorf("unexpected query %q", q)
		}
		_, _ = w.Write([]byte(`{
			"totalItems": 1,
			"items": [{
				"volumeInfo": {
					"title": "The Hobbit",
					"authors": ["J.R.R. Tolkien"],
					"imageLinks": {"thumbnail": "http://example.com/cover.jpg"}
				}
			}]
		}`))
	}))
	defer server.Close()

	client := NewGoogleBooksClient(server.URL)
	cover := client.FetchCoverURL("9780261103344")
	if cover != "http://example.com/cover.jpg" {
		t.Errorf("expected thumbnail URL, got %q", cover)
	}
}

func TestFetchCoverURL_MalformedISBNSkipsNetwork(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	client := NewGoogleBooksClient(server.URL)
	for _, isbn := range []string{"123", "", "97802611033445", "026110334X", "isbn:12345"} {
		if cover := client.FetchCoverURL(isbn); cover != "" {
			t.Errorf("expected no cover for %q, got %q", isbn, cover)
		}
	}
	if called {
		t.Error("expected no network call for malformed ISBNs")
	}
}

func TestFetchCoverURL_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewGoogleBooksClient(server.URL)
	if cover := client.FetchCoverURL("9780261103344"); cover != "" {
		t.Errorf("expected empty cover on 500, got %q", cover)
	}
}

func TestFetchCoverURL_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>not json</html>`))
	}))
	defer server.Close()

	client := NewGoogleBooksClient(server.URL)
	if cover := client.FetchCoverURL("9780261103344"); cover != "" {
		t.Errorf("expected empty cover on malformed body, got %q", cover)
	}
}

func TestFetchCoverURL_NoResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"totalItems": 0, "items": []}`))
	}))
	defer server.Close()

	client := NewGoogleBooksClient(server.URL)
	if cover := client.FetchCoverURL("9780261103344"); cover != "" {
		t.Errorf("expected empty cover on empty results, got %q", cover)
	}
}

func TestFetchCoverURL_MissingImageLinks(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"totalItems": 1, "items": [{"volumeInfo": {"title": "Dune"}}]}`))
	}))
	defer server.Close()

	client := NewGoogleBooksClient(server.URL)
	if cover := client.FetchCoverURL("9780441013593"); cover != "" {
		t.Errorf("expected empty cover when imageLinks missing, got %q", cover)
	}
}

func TestFetchCoverURL_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		_, _ = w.Write([]byte(`{"totalItems": 0, "items": []}`))
	}))
	defer server.Close()

	client := NewGoogleBooksClient(server.URL)
	client.httpClient.Timeout = 50 * time.Millisecond

	if cover := client.FetchCoverURL("9780261103344"); cover != "" {
		t.Errorf("expected empty cover on timeout, got %q", cover)
	}
}

func TestIsbnShapeOK(t *testing.T) {
	valid := []string{"0261103342", "9780261103344"}
	for _, isbn := range valid {
		if !isbnShapeOK(isbn) {
			t.Errorf("expected %q to be valid", isbn)
		}
	}
	invalid := []string{"", "123", "02611033421", "026110334x", "978026110334a"}
	for _, isbn := range invalid {
		if isbnShapeOK(isbn) {
			t.Errorf("expected %q to be invalid", isbn)
		}
	}
}
