package http

import (
	"context"

	"github.com/jenaralee/StoryStash/internal/entities"
	"github.com/jenaralee/StoryStash/internal/store"
)

// Each controller depends on the narrowest store capability it needs. The
// full store.Store satisfies all of them.

// BookGetter provides read access to a single book.
type BookGetter interface {
	GetBook(ctx context.Context, id uint) (*entities.Book, error)
}

// FavoritesStore needs books to reject favorites of unknown books.
type FavoritesStore interface {
	store.FavoriteStore
	BookGetter
}

// RecentlyViewedStore needs books to reject views of unknown books.
type RecentlyViewedStore interface {
	store.RecentlyViewedStore
	BookGetter
}

// NotificationsStore needs books to reject notifications about unknown books.
type NotificationsStore interface {
	store.NotificationStore
	BookGetter
}

// CatalogStore covers authors and series.
type CatalogStore interface {
	store.AuthorStore
	store.SeriesStore
}

// FollowingStore needs the catalog to reject follows of unknown targets.
type FollowingStore interface {
	store.FollowingStore
	store.AuthorStore
	store.SeriesStore
}

// Pinger reports backend health.
type Pinger interface {
	Ping(ctx context.Context) error
}
