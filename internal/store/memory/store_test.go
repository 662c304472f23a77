package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jenaralee/StoryStash/internal/entities"
	"github.com/jenaralee/StoryStash/internal/store"
	"github.com/jenaralee/StoryStash/internal/store/storetest"
)

func TestStoreContract(t *testing.T) {
	storetest.Run(t, func(t *testing.T, clock func() time.Time) store.Store {
		return New(WithClock(clock))
	})
}

func TestSequence_PerKind(t *testing.T) {
	seq := newSequence()

	assert.Equal(t, uint(1), seq.next(kindBook))
	assert.Equal(t, uint(2), seq.next(kindBook))
	assert.Equal(t, uint(1), seq.next(kindUser), "each kind has its own counter")
	assert.Equal(t, uint(3), seq.next(kindBook))
}

func TestStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := New()

	book, err := s.CreateBook(ctx, &entities.Book{GoogleID: "g", Title: "Original", Categories: []string{"Fantasy"}})
	require.NoError(t, err)

	book.Title = "Mutated"
	book.Categories[0] = "Mystery"

	stored, err := s.GetBook(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, "Original", stored.Title)
	assert.Equal(t, []string{"Fantasy"}, stored.Categories)
}

func TestStore_CreateBookDoesNotAliasInput(t *testing.T) {
	ctx := context.Background()
	s := New()

	categories := []string{"Adventure"}
	input := &entities.Book{GoogleID: "g", Title: "Input", Categories: categories}
	_, err := s.CreateBook(ctx, input)
	require.NoError(t, err)

	categories[0] = "Changed"

	books, err := s.GetBooks(ctx, store.BookFilter{Category: "Adventure"})
	require.NoError(t, err)
	assert.Len(t, books, 1)
	assert.Zero(t, input.ID, "input is not modified")
}
