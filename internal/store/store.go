// Package store defines the repository contract shared by every storage backend.
//
// # Contract
//
// Create operations assign the next identifier and return the stored copy.
// Lookups return (nil, nil) when nothing matches: absence is a normal outcome,
// never an error. Errors are reserved for backend failures.
//
// Link operations (AddFavorite, Follow*, AddRecentlyViewed) are idempotent per
// (user, target) pair: a second call returns the existing row. Unlink
// operations report false when there was nothing to remove.
//
// # Implementations
//
//   - memory.Store: map-backed, the default
//   - database.Database: gorm + sqlite
//
// Both run the storetest contract suite.
package store

import (
	"context"

	"github.com/jenaralee/StoryStash/internal/entities"
)

// DefaultRecentlyViewedLimit is used when callers pass a non-positive limit.
const DefaultRecentlyViewedLimit = 10

type UserStore interface {
	// CreateUser stores the user and its default preferences row as one unit.
	CreateUser(ctx context.Context, user *entities.User) (*entities.User, error)
	GetUser(ctx context.Context, id uint) (*entities.User, error)
	GetUserByUsername(ctx context.Context, username string) (*entities.User, error)
	ListUsers(ctx context.Context) ([]entities.User, error)
}

type PreferencesStore interface {
	GetUserPreferences(ctx context.Context, userID uint) (*entities.UserPreferences, error)
	// UpdateUserPreferences merges the update into the user's row, creating
	// the default row first if it is missing.
	UpdateUserPreferences(ctx context.Context, userID uint, update entities.PreferencesUpdate) (*entities.UserPreferences, error)
}

type BookStore interface {
	CreateBook(ctx context.Context, book *entities.Book) (*entities.Book, error)
	GetBook(ctx context.Context, id uint) (*entities.Book, error)
	GetBookByGoogleID(ctx context.Context, googleID string) (*entities.Book, error)
	UpdateBook(ctx context.Context, id uint, update entities.BookUpdate) (*entities.Book, error)
	GetBooks(ctx context.Context, filter BookFilter) ([]entities.Book, error)
	SearchBooks(ctx context.Context, query string) ([]entities.Book, error)
}

type FavoriteStore interface {
	AddFavorite(ctx context.Context, userID, bookID uint) (*entities.Favorite, error)
	RemoveFavorite(ctx context.Context, userID, bookID uint) (bool, error)
	IsFavorite(ctx context.Context, userID, bookID uint) (bool, error)
	GetFavorites(ctx context.Context, userID uint) ([]entities.Book, error)
}

type NotificationStore interface {
	CreateNotification(ctx context.Context, notification *entities.Notification) (*entities.Notification, error)
	GetNotifications(ctx context.Context, userID uint) ([]entities.Notification, error)
	GetUnreadNotificationCount(ctx context.Context, userID uint) (int64, error)
	// MarkNotificationRead reports false when the notification does not exist
	// or belongs to another user.
	MarkNotificationRead(ctx context.Context, userID, id uint) (bool, error)
	MarkAllNotificationsRead(ctx context.Context, userID uint) (int64, error)
}

type RecentlyViewedStore interface {
	AddRecentlyViewed(ctx context.Context, userID, bookID uint) (*entities.RecentlyViewed, error)
	GetRecentlyViewed(ctx context.Context, userID uint, limit int) ([]entities.Book, error)
	ClearRecentlyViewed(ctx context.Context, userID uint) (int64, error)
}

type AuthorStore interface {
	CreateAuthor(ctx context.Context, author *entities.Author) (*entities.Author, error)
	GetAuthor(ctx context.Context, id uint) (*entities.Author, error)
	GetAuthorByName(ctx context.Context, name string) (*entities.Author, error)
	ListAuthors(ctx context.Context) ([]entities.Author, error)
}

type SeriesStore interface {
	CreateSeries(ctx context.Context, series *entities.BookSeries) (*entities.BookSeries, error)
	GetSeries(ctx context.Context, id uint) (*entities.BookSeries, error)
	GetSeriesByName(ctx context.Context, name string) (*entities.BookSeries, error)
	ListSeries(ctx context.Context) ([]entities.BookSeries, error)
}

type FollowingStore interface {
	FollowAuthor(ctx context.Context, userID, authorID uint) (*entities.FollowingAuthor, error)
	UnfollowAuthor(ctx context.Context, userID, authorID uint) (bool, error)
	IsFollowingAuthor(ctx context.Context, userID, authorID uint) (bool, error)
	GetFollowingAuthors(ctx context.Context, userID uint) ([]entities.Author, error)

	FollowSeries(ctx context.Context, userID, seriesID uint) (*entities.FollowingSeries, error)
	UnfollowSeries(ctx context.Context, userID, seriesID uint) (bool, error)
	IsFollowingSeries(ctx context.Context, userID, seriesID uint) (bool, error)
	GetFollowingSeries(ctx context.Context, userID uint) ([]entities.BookSeries, error)

	FollowCategory(ctx context.Context, userID uint, category string) (*entities.FollowingCategory, error)
	UnfollowCategory(ctx context.Context, userID uint, category string) (bool, error)
	IsFollowingCategory(ctx context.Context, userID uint, category string) (bool, error)
	GetFollowingCategories(ctx context.Context, userID uint) ([]string, error)
}

// Store combines every repository capability.
type Store interface {
	UserStore
	PreferencesStore
	BookStore
	FavoriteStore
	NotificationStore
	RecentlyViewedStore
	AuthorStore
	SeriesStore
	FollowingStore

	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error
	Close() error
}
