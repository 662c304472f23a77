package memory

import (
	"context"
	"sort"

	"github.com/jenaralee/StoryStash/internal/entities"
	"github.com/jenaralee/StoryStash/internal/store"
)

func (s *Store) CreateBook(_ context.Context, book *entities.Book) (*entities.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := cloneBook(book)
	store.EnsureGoogleID(&stored)
	if _, exists := s.booksByGoogleID[stored.GoogleID]; exists {
		return nil, store.ErrConflict
	}

	stored.ID = s.seq.next(kindBook)
	stored.CreatedAt = s.now()
	stored.UpdatedAt = stored.CreatedAt
	s.books[stored.ID] = &stored
	s.booksByGoogleID[stored.GoogleID] = stored.ID

	out := cloneBook(&stored)
	return &out, nil
}

func (s *Store) GetBook(_ context.Context, id uint) (*entities.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bookLocked(id), nil
}

// bookLocked returns a copy of the book or nil. Callers hold s.mu.
func (s *Store) bookLocked(id uint) *entities.Book {
	book, ok := s.books[id]
	if !ok {
		return nil
	}
	out := cloneBook(book)
	return &out
}

func (s *Store) GetBookByGoogleID(_ context.Context, googleID string) (*entities.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.booksByGoogleID[googleID]
	if !ok {
		return nil, nil
	}
	return s.bookLocked(id), nil
}

func (s *Store) UpdateBook(_ context.Context, id uint, update entities.BookUpdate) (*entities.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, ok := s.books[id]
	if !ok {
		return nil, nil
	}
	update.Apply(book)
	book.UpdatedAt = s.now()

	out := cloneBook(book)
	return &out, nil
}

// GetBooks returns the matching books, highest id first, then paginates.
func (s *Store) GetBooks(_ context.Context, filter store.BookFilter) ([]entities.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	books := make([]entities.Book, 0)
	for _, book := range s.books {
		if filter.Matches(book) {
			books = append(books, cloneBook(book))
		}
	}
	sort.Slice(books, func(i, j int) bool { return books[i].ID > books[j].ID })

	return store.Paginate(books, filter.Limit, filter.Offset), nil
}

// SearchBooks returns books whose title, author or description contain the
// query, in insertion order.
func (s *Store) SearchBooks(_ context.Context, query string) ([]entities.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	books := make([]entities.Book, 0)
	for _, book := range s.books {
		if store.MatchesQuery(book, query) {
			books = append(books, cloneBook(book))
		}
	}
	sort.Slice(books, func(i, j int) bool { return books[i].ID < books[j].ID })
	return books, nil
}
