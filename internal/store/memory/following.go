package memory

import (
	"context"
	"sort"

	"github.com/jenaralee/StoryStash/internal/entities"
)

func (s *Store) FollowAuthor(_ context.Context, userID, authorID uint) (*entities.FollowingAuthor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := pairKey{userID: userID, targetID: authorID}
	if existing, ok := s.followingAuthors[key]; ok {
		out := *existing
		return &out, nil
	}

	row := &entities.FollowingAuthor{
		ID:        s.seq.next(kindFollowingAuthor),
		UserID:    userID,
		AuthorID:  authorID,
		CreatedAt: s.now(),
	}
	s.followingAuthors[key] = row

	out := *row
	return &out, nil
}

func (s *Store) UnfollowAuthor(_ context.Context, userID, authorID uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := pairKey{userID: userID, targetID: authorID}
	if _, ok := s.followingAuthors[key]; !ok {
		return false, nil
	}
	delete(s.followingAuthors, key)
	return true, nil
}

func (s *Store) IsFollowingAuthor(_ context.Context, userID, authorID uint) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.followingAuthors[pairKey{userID: userID, targetID: authorID}]
	return ok, nil
}

// GetFollowingAuthors resolves the user's follows in follow order. Rows whose
// author no longer resolves are skipped.
func (s *Store) GetFollowingAuthors(_ context.Context, userID uint) ([]entities.Author, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := make([]*entities.FollowingAuthor, 0)
	for key, row := range s.followingAuthors {
		if key.userID == userID {
			rows = append(rows, row)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })

	authors := make([]entities.Author, 0, len(rows))
	for _, row := range rows {
		if author := s.authorLocked(row.AuthorID); author != nil {
			authors = append(authors, *author)
		}
	}
	return authors, nil
}

func (s *Store) FollowSeries(_ context.Context, userID, seriesID uint) (*entities.FollowingSeries, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := pairKey{userID: userID, targetID: seriesID}
	if existing, ok := s.followingSeries[key]; ok {
		out := *existing
		return &out, nil
	}

	row := &entities.FollowingSeries{
		ID:        s.seq.next(kindFollowingSeries),
		UserID:    userID,
		SeriesID:  seriesID,
		CreatedAt: s.now(),
	}
	s.followingSeries[key] = row

	out := *row
	return &out, nil
}

func (s *Store) UnfollowSeries(_ context.Context, userID, seriesID uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := pairKey{userID: userID, targetID: seriesID}
	if _, ok := s.followingSeries[key]; !ok {
		return false, nil
	}
	delete(s.followingSeries, key)
	return true, nil
}

func (s *Store) IsFollowingSeries(_ context.Context, userID, seriesID uint) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.followingSeries[pairKey{userID: userID, targetID: seriesID}]
	return ok, nil
}

func (s *Store) GetFollowingSeries(_ context.Context, userID uint) ([]entities.BookSeries, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := make([]*entities.FollowingSeries, 0)
	for key, row := range s.followingSeries {
		if key.userID == userID {
			rows = append(rows, row)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })

	series := make([]entities.BookSeries, 0, len(rows))
	for _, row := range rows {
		if bs := s.seriesLocked(row.SeriesID); bs != nil {
			series = append(series, *bs)
		}
	}
	return series, nil
}

func (s *Store) FollowCategory(_ context.Context, userID uint, category string) (*entities.FollowingCategory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := categoryKey{userID: userID, category: category}
	if existing, ok := s.followingCategories[key]; ok {
		out := *existing
		return &out, nil
	}

	row := &entities.FollowingCategory{
		ID:        s.seq.next(kindFollowingCategory),
		UserID:    userID,
		Category:  category,
		CreatedAt: s.now(),
	}
	s.followingCategories[key] = row

	out := *row
	return &out, nil
}

func (s *Store) UnfollowCategory(_ context.Context, userID uint, category string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := categoryKey{userID: userID, category: category}
	if _, ok := s.followingCategories[key]; !ok {
		return false, nil
	}
	delete(s.followingCategories, key)
	return true, nil
}

func (s *Store) IsFollowingCategory(_ context.Context, userID uint, category string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.followingCategories[categoryKey{userID: userID, category: category}]
	return ok, nil
}

func (s *Store) GetFollowingCategories(_ context.Context, userID uint) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := make([]*entities.FollowingCategory, 0)
	for key, row := range s.followingCategories {
		if key.userID == userID {
			rows = append(rows, row)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })

	categories := make([]string, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, row.Category)
	}
	return categories, nil
}
