package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"

	"github.com/jenaralee/StoryStash/internal/entities"
	"github.com/jenaralee/StoryStash/internal/store"
	"github.com/jenaralee/StoryStash/internal/store/storetest"
)

func newTestDatabase(t *testing.T, clock func() time.Time) *Database {
	t.Helper()
	db, err := NewDatabase(filepath.Join(t.TempDir(), "test.db"), WithClock(clock), WithLogLevel(logger.Silent))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestDatabaseContract(t *testing.T) {
	storetest.Run(t, func(t *testing.T, clock func() time.Time) store.Store {
		return newTestDatabase(t, clock)
	})
}

func TestNewDatabase_Ping(t *testing.T) {
	db := newTestDatabase(t, time.Now)
	assert.NoError(t, db.Ping(context.Background()))
}

func TestCreateBook_NilCategoriesStoredAsEmptyList(t *testing.T) {
	ctx := context.Background()
	db := newTestDatabase(t, time.Now)

	created, err := db.CreateBook(ctx, &entities.Book{GoogleID: "g-1", Title: "Untagged"})
	require.NoError(t, err)

	var raw string
	require.NoError(t, db.DB.Raw("SELECT categories FROM books WHERE id = ?", created.ID).Scan(&raw).Error)
	assert.Equal(t, "[]", raw)

	got, err := db.GetBook(ctx, created.ID)
	require.NoError(t, err)
	assert.NotNil(t, got.Categories)
	assert.Empty(t, got.Categories)
}

func TestCreateBook_AssignsLocalGoogleID(t *testing.T) {
	ctx := context.Background()
	db := newTestDatabase(t, time.Now)

	first, err := db.CreateBook(ctx, &entities.Book{Title: "One"})
	require.NoError(t, err)
	second, err := db.CreateBook(ctx, &entities.Book{Title: "Two"})
	require.NoError(t, err)

	assert.Contains(t, first.GoogleID, store.LocalIDPrefix)
	assert.NotEqual(t, first.GoogleID, second.GoogleID)
}

func TestGetBooks_CategoryMatchesWholeValue(t *testing.T) {
	ctx := context.Background()
	db := newTestDatabase(t, time.Now)

	_, err := db.CreateBook(ctx, &entities.Book{GoogleID: "a", Title: "Sci", Categories: []string{"Science"}})
	require.NoError(t, err)
	_, err = db.CreateBook(ctx, &entities.Book{GoogleID: "b", Title: "Fic", Categories: []string{"Science Fiction"}})
	require.NoError(t, err)

	books, err := db.GetBooks(ctx, store.BookFilter{Category: "Science"})
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "Sci", books[0].Title)
}
