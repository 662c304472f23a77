package tasks

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jenaralee/StoryStash/internal/entities"
	"github.com/jenaralee/StoryStash/internal/matcher"
	"github.com/jenaralee/StoryStash/internal/services"
	"github.com/jenaralee/StoryStash/internal/store/memory"
)

type stubSource struct {
	books []entities.Book
	err   error
}

func (s stubSource) Search(context.Context, string, int) ([]entities.Book, error) {
	return s.books, s.err
}

func TestRunMatcherProcessor(t *testing.T) {
	ctx := context.Background()
	s := memory.New()
	_, err := s.CreateBook(ctx, &entities.Book{GoogleID: "b1", Title: "Fresh", IsNew: true})
	require.NoError(t, err)
	user, err := s.CreateUser(ctx, &entities.User{Username: "demo"})
	require.NoError(t, err)

	process := RunMatcherProcessor(matcher.New(s, matcher.ModeAll))
	require.NoError(t, process(ctx, RunMatcherTask{Reason: "test"}))

	n, err := s.GetNotifications(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, n, 1)

	assert.Error(t, RunMatcherProcessor(nil)(ctx, RunMatcherTask{}))
}

func TestIngestBooksProcessor(t *testing.T) {
	ctx := context.Background()
	s := memory.New()
	source := stubSource{books: []entities.Book{{GoogleID: "vol-1", Title: "Dragons"}}}
	svc := services.NewDiscoveryService(s, source, 5)

	process := IngestBooksProcessor(svc)
	require.NoError(t, process(ctx, IngestBooksTask{Query: "dragons"}))

	book, err := s.GetBookByGoogleID(ctx, "vol-1")
	require.NoError(t, err)
	assert.NotNil(t, book)

	assert.Error(t, process(ctx, IngestBooksTask{}), "empty query is rejected")

	failing := IngestBooksProcessor(services.NewDiscoveryService(s, stubSource{err: errors.New("boom")}, 5))
	assert.Error(t, failing(ctx, IngestBooksTask{Query: "dragons"}))
}
