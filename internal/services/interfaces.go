package services

import (
	"context"

	"github.com/jenaralee/StoryStash/internal/entities"
)

// BookCatalog is the slice of the store the discovery service needs.
type BookCatalog interface {
	SearchBooks(ctx context.Context, query string) ([]entities.Book, error)
	GetBookByGoogleID(ctx context.Context, googleID string) (*entities.Book, error)
	CreateBook(ctx context.Context, book *entities.Book) (*entities.Book, error)
}

// IngestResult contains the outcome of an ingestion.
type IngestResult struct {
	BooksFetched int `json:"booksFetched"`
	BooksCreated int `json:"booksCreated"`
	BooksSkipped int `json:"booksSkipped"` // already present, matched by googleId
	BooksFailed  int `json:"booksFailed"`
}
