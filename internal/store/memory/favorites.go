package memory

import (
	"context"
	"sort"

	"github.com/jenaralee/StoryStash/internal/entities"
)

func (s *Store) AddFavorite(_ context.Context, userID, bookID uint) (*entities.Favorite, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := pairKey{userID: userID, targetID: bookID}
	if existing, ok := s.favorites[key]; ok {
		out := *existing
		return &out, nil
	}

	fav := &entities.Favorite{
		ID:        s.seq.next(kindFavorite),
		UserID:    userID,
		BookID:    bookID,
		CreatedAt: s.now(),
	}
	s.favorites[key] = fav

	out := *fav
	return &out, nil
}

func (s *Store) RemoveFavorite(_ context.Context, userID, bookID uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := pairKey{userID: userID, targetID: bookID}
	if _, ok := s.favorites[key]; !ok {
		return false, nil
	}
	delete(s.favorites, key)
	return true, nil
}

func (s *Store) IsFavorite(_ context.Context, userID, bookID uint) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.favorites[pairKey{userID: userID, targetID: bookID}]
	return ok, nil
}

// GetFavorites returns the user's favorite books, most recently added first.
func (s *Store) GetFavorites(_ context.Context, userID uint) ([]entities.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	favs := make([]*entities.Favorite, 0)
	for key, fav := range s.favorites {
		if key.userID == userID {
			favs = append(favs, fav)
		}
	}
	sort.Slice(favs, func(i, j int) bool { return favs[i].ID > favs[j].ID })

	books := make([]entities.Book, 0, len(favs))
	for _, fav := range favs {
		if book := s.bookLocked(fav.BookID); book != nil {
			books = append(books, *book)
		}
	}
	return books, nil
}
