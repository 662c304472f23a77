// Package memory provides the map-backed implementation of store.Store.
//
// All collections live behind a single RWMutex, so check-then-insert
// sequences (idempotent links, uniqueness checks) are atomic. Relations are
// indexed by (user, target) for constant-time existence checks.
//
// Every value handed out is a copy; callers never share memory with the store.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jenaralee/StoryStash/internal/entities"
	"github.com/jenaralee/StoryStash/internal/store"
)

var _ store.Store = (*Store)(nil)

type entityKind int

const (
	kindUser entityKind = iota
	kindPreferences
	kindBook
	kindFavorite
	kindNotification
	kindRecentlyViewed
	kindAuthor
	kindSeries
	kindFollowingAuthor
	kindFollowingSeries
	kindFollowingCategory
)

// sequence hands out monotonically increasing identifiers per entity kind,
// starting at 1.
type sequence struct {
	last map[entityKind]uint
}

func newSequence() *sequence {
	return &sequence{last: make(map[entityKind]uint)}
}

func (s *sequence) next(kind entityKind) uint {
	s.last[kind]++
	return s.last[kind]
}

type pairKey struct {
	userID   uint
	targetID uint
}

type categoryKey struct {
	userID   uint
	category string
}

type Store struct {
	mu  sync.RWMutex
	seq *sequence
	now func() time.Time

	users           map[uint]*entities.User
	usersByName     map[string]uint
	preferences     map[uint]*entities.UserPreferences // keyed by user ID
	books           map[uint]*entities.Book
	booksByGoogleID map[string]uint
	notifications   map[uint]*entities.Notification
	authors         map[uint]*entities.Author
	authorsByName   map[string]uint
	series          map[uint]*entities.BookSeries
	seriesByName    map[string]uint

	favorites           map[pairKey]*entities.Favorite
	recentlyViewed      map[pairKey]*entities.RecentlyViewed
	followingAuthors    map[pairKey]*entities.FollowingAuthor
	followingSeries     map[pairKey]*entities.FollowingSeries
	followingCategories map[categoryKey]*entities.FollowingCategory
}

type Option func(*Store)

// WithClock overrides the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New returns an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		seq:                 newSequence(),
		now:                 time.Now,
		users:               make(map[uint]*entities.User),
		usersByName:         make(map[string]uint),
		preferences:         make(map[uint]*entities.UserPreferences),
		books:               make(map[uint]*entities.Book),
		booksByGoogleID:     make(map[string]uint),
		notifications:       make(map[uint]*entities.Notification),
		authors:             make(map[uint]*entities.Author),
		authorsByName:       make(map[string]uint),
		series:              make(map[uint]*entities.BookSeries),
		seriesByName:        make(map[string]uint),
		favorites:           make(map[pairKey]*entities.Favorite),
		recentlyViewed:      make(map[pairKey]*entities.RecentlyViewed),
		followingAuthors:    make(map[pairKey]*entities.FollowingAuthor),
		followingSeries:     make(map[pairKey]*entities.FollowingSeries),
		followingCategories: make(map[categoryKey]*entities.FollowingCategory),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *Store) Close() error {
	return nil
}
