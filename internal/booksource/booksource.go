// Package booksource fetches candidate books from an external catalog.
package booksource

import (
	"context"

	"github.com/jenaralee/StoryStash/internal/entities"
)

// DefaultMaxResults is how many volumes a search asks for when the caller
// does not say.
const DefaultMaxResults = 20

// Source returns book records for a free-text query. Returned books carry a
// GoogleID but no local ID.
type Source interface {
	Search(ctx context.Context, query string, maxResults int) ([]entities.Book, error)
}
