package booksource

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/jenaralee/StoryStash/internal/entities"
)

const userAgent = "StoryStash/1.0"

// GoogleBooksClient searches the Google Books volumes API.
type GoogleBooksClient struct {
	httpClient  *http.Client
	baseURL     string
	apiKey      string
	rateLimiter *rate.Limiter
}

var _ Source = (*GoogleBooksClient)(nil)

// NewGoogleBooksClient creates a client limited to ratePerSecond requests.
// An empty apiKey uses the anonymous quota.
func NewGoogleBooksClient(baseURL, apiKey string, ratePerSecond float64) *GoogleBooksClient {
	if ratePerSecond <= 0 {
		ratePerSecond = 1
	}
	return &GoogleBooksClient{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL:     strings.TrimRight(baseURL, "/"),
		apiKey:      apiKey,
		rateLimiter: rate.NewLimiter(rate.Limit(ratePerSecond), 1),
	}
}

type volumesResponse struct {
	TotalItems int      `json:"totalItems"`
	Items      []volume `json:"items"`
}

type volume struct {
	ID         string     `json:"id"`
	VolumeInfo volumeInfo `json:"volumeInfo"`
}

type volumeInfo struct {
	Title         string     `json:"title"`
	Authors       []string   `json:"authors"`
	Description   string     `json:"description"`
	Categories    []string   `json:"categories"`
	PublishedDate string     `json:"publishedDate"`
	AverageRating *float64   `json:"averageRating"`
	ImageLinks    imageLinks `json:"imageLinks"`
}

type imageLinks struct {
	SmallThumbnail string `json:"smallThumbnail"`
	Thumbnail      string `json:"thumbnail"`
}

// Search queries /volumes and converts every result into a Book.
func (c *GoogleBooksClient) Search(ctx context.Context, query string, maxResults int) ([]entities.Book, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("query is required")
	}
	if maxResults <= 0 || maxResults > 40 {
		maxResults = DefaultMaxResults
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("maxResults", strconv.Itoa(maxResults))
	params.Set("printType", "books")
	if c.apiKey != "" {
		params.Set("key", c.apiKey)
	}

	searchURL := fmt.Sprintf("%s/volumes?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search volumes: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var result volumesResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	books := make([]entities.Book, 0, len(result.Items))
	for _, v := range result.Items {
		if v.ID == "" || v.VolumeInfo.Title == "" {
			continue
		}
		books = append(books, convertVolume(v))
	}
	return books, nil
}

func convertVolume(v volume) entities.Book {
	info := v.VolumeInfo

	book := entities.Book{
		GoogleID:      v.ID,
		Title:         info.Title,
		Author:        strings.Join(info.Authors, ", "),
		Description:   info.Description,
		Thumbnail:     secureURL(firstNonEmpty(info.ImageLinks.Thumbnail, info.ImageLinks.SmallThumbnail)),
		Categories:    append([]string{}, info.Categories...),
		PublishedDate: info.PublishedDate,
	}
	if info.AverageRating != nil {
		r := convertRating(*info.AverageRating)
		book.Rating = &r
	}
	return book
}

// convertRating maps the API's 0-5 star average onto the 0-50 scale.
func convertRating(stars float64) int {
	r := int(math.Round(stars * 10))
	if r < 0 {
		return 0
	}
	if r > entities.MaxRating {
		return entities.MaxRating
	}
	return r
}

// secureURL upgrades the API's http image links so browsers don't block them.
func secureURL(raw string) string {
	if strings.HasPrefix(raw, "http://") {
		return "https://" + strings.TrimPrefix(raw, "http://")
	}
	return raw
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
