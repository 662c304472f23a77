package memory

import (
	"context"
	"sort"

	"github.com/jenaralee/StoryStash/internal/entities"
)

func (s *Store) CreateNotification(_ context.Context, notification *entities.Notification) (*entities.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := cloneNotification(notification)
	stored.ID = s.seq.next(kindNotification)
	if stored.Type == "" {
		stored.Type = entities.NotificationTypeSystem
	}
	stored.IsRead = false
	stored.CreatedAt = s.now()
	s.notifications[stored.ID] = &stored

	out := cloneNotification(&stored)
	return &out, nil
}

// GetNotifications returns the user's notifications, newest first.
func (s *Store) GetNotifications(_ context.Context, userID uint) ([]entities.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entities.Notification, 0)
	for _, n := range s.notifications {
		if n.UserID == userID {
			out = append(out, cloneNotification(n))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *Store) GetUnreadNotificationCount(_ context.Context, userID uint) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int64
	for _, n := range s.notifications {
		if n.UserID == userID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (s *Store) MarkNotificationRead(_ context.Context, userID, id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.notifications[id]
	if !ok || n.UserID != userID {
		return false, nil
	}
	n.IsRead = true
	return true, nil
}

func (s *Store) MarkAllNotificationsRead(_ context.Context, userID uint) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var updated int64
	for _, n := range s.notifications {
		if n.UserID == userID && !n.IsRead {
			n.IsRead = true
			updated++
		}
	}
	return updated, nil
}
