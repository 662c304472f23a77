package memory

import (
	"context"
	"sort"

	"github.com/jenaralee/StoryStash/internal/entities"
	"github.com/jenaralee/StoryStash/internal/store"
)

func (s *Store) CreateAuthor(_ context.Context, author *entities.Author) (*entities.Author, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.authorsByName[author.Name]; exists {
		return nil, store.ErrConflict
	}

	stored := *author
	stored.ID = s.seq.next(kindAuthor)
	stored.CreatedAt = s.now()
	s.authors[stored.ID] = &stored
	s.authorsByName[stored.Name] = stored.ID

	out := stored
	return &out, nil
}

func (s *Store) GetAuthor(_ context.Context, id uint) (*entities.Author, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authorLocked(id), nil
}

func (s *Store) authorLocked(id uint) *entities.Author {
	author, ok := s.authors[id]
	if !ok {
		return nil
	}
	out := *author
	return &out
}

func (s *Store) GetAuthorByName(_ context.Context, name string) (*entities.Author, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.authorsByName[name]
	if !ok {
		return nil, nil
	}
	return s.authorLocked(id), nil
}

func (s *Store) ListAuthors(_ context.Context) ([]entities.Author, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	authors := make([]entities.Author, 0, len(s.authors))
	for _, a := range s.authors {
		authors = append(authors, *a)
	}
	sort.Slice(authors, func(i, j int) bool { return authors[i].ID < authors[j].ID })
	return authors, nil
}

func (s *Store) CreateSeries(_ context.Context, series *entities.BookSeries) (*entities.BookSeries, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.seriesByName[series.Name]; exists {
		return nil, store.ErrConflict
	}

	stored := *series
	stored.ID = s.seq.next(kindSeries)
	stored.CreatedAt = s.now()
	s.series[stored.ID] = &stored
	s.seriesByName[stored.Name] = stored.ID

	out := stored
	return &out, nil
}

func (s *Store) GetSeries(_ context.Context, id uint) (*entities.BookSeries, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.seriesLocked(id), nil
}

func (s *Store) seriesLocked(id uint) *entities.BookSeries {
	series, ok := s.series[id]
	if !ok {
		return nil
	}
	out := *series
	return &out
}

func (s *Store) GetSeriesByName(_ context.Context, name string) (*entities.BookSeries, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.seriesByName[name]
	if !ok {
		return nil, nil
	}
	return s.seriesLocked(id), nil
}

func (s *Store) ListSeries(_ context.Context) ([]entities.BookSeries, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	series := make([]entities.BookSeries, 0, len(s.series))
	for _, bs := range s.series {
		series = append(series, *bs)
	}
	sort.Slice(series, func(i, j int) bool { return series[i].ID < series[j].ID })
	return series, nil
}
