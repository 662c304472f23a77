package booksource

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func float(v float64) *float64 { return &v }

func TestGoogleBooksClient_Search(t *testing.T) {
	var gotQuery, gotKey, gotMax string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/volumes", r.URL.Path)
		gotQuery = r.URL.Query().Get("q")
		gotKey = r.URL.Query().Get("key")
		gotMax = r.URL.Query().Get("maxResults")

		response := volumesResponse{
			TotalItems: 3,
			Items: []volume{
				{
					ID: "vol-1",
					VolumeInfo: volumeInfo{
						Title:         "The Princess and the Dragon",
						Authors:       []string{"Ann Author", "Bo Illustrator"},
						Description:   "A brave princess.",
						Categories:    []string{"Juvenile Fiction"},
						PublishedDate: "2021-04-01",
						AverageRating: float(4.3),
						ImageLinks:    imageLinks{Thumbnail: "http://books.google.com/thumb.jpg"},
					},
				},
				{ID: "", VolumeInfo: volumeInfo{Title: "No ID"}},
				{ID: "vol-3", VolumeInfo: volumeInfo{Title: "Unrated"}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := NewGoogleBooksClient(server.URL+"/", "secret", 100)

	books, err := client.Search(context.Background(), "  dragon  ", 0)
	require.NoError(t, err)
	require.Len(t, books, 2)

	assert.Equal(t, "dragon", gotQuery)
	assert.Equal(t, "secret", gotKey)
	assert.Equal(t, "20", gotMax)

	first := books[0]
	assert.Equal(t, "vol-1", first.GoogleID)
	assert.Equal(t, "Ann Author, Bo Illustrator", first.Author)
	assert.Equal(t, "https://books.google.com/thumb.jpg", first.Thumbnail)
	assert.Equal(t, []string{"Juvenile Fiction"}, first.Categories)
	require.NotNil(t, first.Rating)
	assert.Equal(t, 43, *first.Rating)
	assert.Zero(t, first.ID)

	assert.Equal(t, "vol-3", books[1].GoogleID)
	assert.Nil(t, books[1].Rating)
	assert.NotNil(t, books[1].Categories)
}

func TestGoogleBooksClient_SearchErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewGoogleBooksClient(server.URL, "", 100)

	_, err := client.Search(context.Background(), "dragon", 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")

	_, err = client.Search(context.Background(), "   ", 5)
	assert.Error(t, err)
}

func TestGoogleBooksClient_SearchCanceled(t *testing.T) {
	client := NewGoogleBooksClient("http://127.0.0.1:1", "", 100)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Search(ctx, "dragon", 5)
	assert.Error(t, err)
}

func TestConvertRating(t *testing.T) {
	tests := []struct {
		stars    float64
		expected int
	}{
		{0, 0},
		{3.5, 35},
		{4.25, 43},
		{5, 50},
		{7, 50},
		{-1, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, convertRating(tt.stars), "stars=%v", tt.stars)
	}
}
