package store

import (
	"errors"

	"github.com/google/uuid"

	"github.com/jenaralee/StoryStash/internal/entities"
)

// ErrConflict is returned when a create would break a uniqueness rule
// (username, book googleId, author or series name).
var ErrConflict = errors.New("unique constraint violated")

// LocalIDPrefix marks googleId values minted for books that did not come
// from the external source.
const LocalIDPrefix = "local-"

// EnsureGoogleID gives a book without an external key a unique local one,
// so the googleId uniqueness rule holds for every stored book.
func EnsureGoogleID(book *entities.Book) {
	if book.GoogleID == "" {
		book.GoogleID = LocalIDPrefix + uuid.NewString()
	}
}
