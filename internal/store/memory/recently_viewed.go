package memory

import (
	"context"
	"sort"

	"github.com/jenaralee/StoryStash/internal/entities"
	"github.com/jenaralee/StoryStash/internal/store"
)

// AddRecentlyViewed records a view. Viewing the same book again moves the
// existing row's ViewedAt forward instead of adding a row.
func (s *Store) AddRecentlyViewed(_ context.Context, userID, bookID uint) (*entities.RecentlyViewed, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := pairKey{userID: userID, targetID: bookID}
	if existing, ok := s.recentlyViewed[key]; ok {
		existing.ViewedAt = s.now()
		out := *existing
		return &out, nil
	}

	rv := &entities.RecentlyViewed{
		ID:       s.seq.next(kindRecentlyViewed),
		UserID:   userID,
		BookID:   bookID,
		ViewedAt: s.now(),
	}
	s.recentlyViewed[key] = rv

	out := *rv
	return &out, nil
}

func (s *Store) GetRecentlyViewed(_ context.Context, userID uint, limit int) ([]entities.Book, error) {
	if limit <= 0 {
		limit = store.DefaultRecentlyViewedLimit
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	views := make([]*entities.RecentlyViewed, 0)
	for key, rv := range s.recentlyViewed {
		if key.userID == userID {
			views = append(views, rv)
		}
	}
	sort.Slice(views, func(i, j int) bool {
		if views[i].ViewedAt.Equal(views[j].ViewedAt) {
			return views[i].ID > views[j].ID
		}
		return views[i].ViewedAt.After(views[j].ViewedAt)
	})
	if len(views) > limit {
		views = views[:limit]
	}

	books := make([]entities.Book, 0, len(views))
	for _, rv := range views {
		if book := s.bookLocked(rv.BookID); book != nil {
			books = append(books, *book)
		}
	}
	return books, nil
}

func (s *Store) ClearRecentlyViewed(_ context.Context, userID uint) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed int64
	for key := range s.recentlyViewed {
		if key.userID == userID {
			delete(s.recentlyViewed, key)
			removed++
		}
	}
	return removed, nil
}
