package memory

import (
	"context"
	"sort"

	"github.com/jenaralee/StoryStash/internal/entities"
	"github.com/jenaralee/StoryStash/internal/store"
)

func (s *Store) CreateUser(_ context.Context, user *entities.User) (*entities.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.usersByName[user.Username]; exists {
		return nil, store.ErrConflict
	}

	stored := *user
	stored.ID = s.seq.next(kindUser)
	stored.CreatedAt = s.now()
	s.users[stored.ID] = &stored
	s.usersByName[stored.Username] = stored.ID

	prefs := entities.DefaultPreferences(stored.ID)
	prefs.ID = s.seq.next(kindPreferences)
	prefs.UpdatedAt = stored.CreatedAt
	s.preferences[stored.ID] = prefs

	out := stored
	return &out, nil
}

func (s *Store) GetUser(_ context.Context, id uint) (*entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	out := *user
	return &out, nil
}

func (s *Store) GetUserByUsername(_ context.Context, username string) (*entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.usersByName[username]
	if !ok {
		return nil, nil
	}
	out := *s.users[id]
	return &out, nil
}

func (s *Store) ListUsers(_ context.Context) ([]entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]entities.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, *u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (s *Store) GetUserPreferences(_ context.Context, userID uint) (*entities.UserPreferences, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	prefs, ok := s.preferences[userID]
	if !ok {
		return nil, nil
	}
	out := clonePreferences(prefs)
	return &out, nil
}

func (s *Store) UpdateUserPreferences(_ context.Context, userID uint, update entities.PreferencesUpdate) (*entities.UserPreferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefs, ok := s.preferences[userID]
	if !ok {
		prefs = entities.DefaultPreferences(userID)
		prefs.ID = s.seq.next(kindPreferences)
		s.preferences[userID] = prefs
	}
	update.Apply(prefs)
	prefs.UpdatedAt = s.now()

	out := clonePreferences(prefs)
	return &out, nil
}
