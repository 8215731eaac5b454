// file: internal/metadata/googlebooks.go
// version: 1.2.0
// guid: b2c3d4e5-f6a7-8b9c-0d1e-f2a3b4c5d6e7

package metadata

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"booklibrary/internal/metrics"
)

const defaultBaseURL = "https://www.googleapis.com/books/v1"

// lookupTimeout bounds the single outbound request per ISBN.
const lookupTimeout = 25 * time.Second

// GoogleBooksClient resolves cover-image URLs from the Google Books Volume
// API. No API key is required for basic searches (free tier, ~1000 req/day).
type GoogleBooksClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewGoogleBooksClient creates a new Google Books API client. An empty
// baseURL selects the public endpoint; tests pass an httptest server URL.
func NewGoogleBooksClient(baseURL string) *GoogleBooksClient {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &GoogleBooksClient{
		httpClient: &http.Client{Timeout: lookupTimeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// Name returns the display name for this metadata source.
func (c *GoogleBooksClient) Name() string {
	return "Google Books"
}

type googleBooksResponse struct {
	TotalItems int              `json:"totalItems"`
	Items      []googleBooksVol `json:"items"`
}

type googleBooksVol struct {
	VolumeInfo googleBooksVolumeInfo `json:"volumeInfo"`
}

type googleBooksVolumeInfo struct {
	Title      string                 `json:"title"`
	Authors    []string               `json:"authors"`
	ImageLinks *googleBooksImageLinks `json:"imageLinks"`
}

type googleBooksImageLinks struct {
	Thumbnail      string `json:"thumbnail"`
	SmallThumbnail string `json:"smallThumbnail"`
}

// isbnShapeOK reports whether isbn is 10 or 13 ASCII digits. The client
// checks this itself so a malformed ISBN never causes a network call.
func isbnShapeOK(isbn string) bool {
	if len(isbn) != 10 && len(isbn) != 13 {
		return false
	}
	for _, r := range isbn {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// FetchCoverURL returns the thumbnail URL of the first volume matching the
// ISBN, or "" when no cover could be resolved. Timeouts, connection errors,
// non-2xx statuses, malformed bodies, and absent fields all degrade to ""
// and never surface to the caller.
func (c *GoogleBooksClient) FetchCoverURL(isbn string) string {
	if !isbnShapeOK(isbn) {
		metrics.IncCoverLookup("miss")
		return ""
	}

	searchURL := fmt.Sprintf("%s/volumes?q=%s", c.baseURL, url.QueryEscape("isbn:"+isbn))

	resp, err := c.httpClient.Get(searchURL)
	if err != nil {
		log.Printf("[WARN] cover lookup failed for ISBN %s: %v", isbn, err)
		metrics.IncCoverLookup("error")
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[WARN] cover lookup for ISBN %s returned status %d", isbn, resp.StatusCode)
		metrics.IncCoverLookup("error")
		return ""
	}

	var gbResp googleBooksResponse
	if err := json.NewDecoder(resp.Body).Decode(&gbResp); err != nil {
		log.Printf("[WARN] cover lookup for ISBN %s returned unparseable body: %v", isbn, err)
		metrics.IncCoverLookup("error")
		return ""
	}

	if len(gbResp.Items) == 0 {
		metrics.IncCoverLookup("miss")
		return ""
	}

	links := gbResp.Items[0].VolumeInfo.ImageLinks
	if links == nil || links.Thumbnail == "" {
		metrics.IncCoverLookup("miss")
		return ""
	}

	metrics.IncCoverLookup("hit")
	return links.Thumbnail
}
