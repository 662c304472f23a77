// Package matcher turns books flagged as new into "new release"
// notifications for users whose preferences they fit.
package matcher

import (
	"context"
	"fmt"
	"log"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/jenaralee/StoryStash/internal/entities"
	"github.com/jenaralee/StoryStash/internal/store"
)

type Mode string

const (
	// ModeAll requires both the age range and the category preference to
	// match. An empty preference list matches everything.
	ModeAll Mode = "all"
	// ModeAny is satisfied by either preference.
	ModeAny Mode = "any"
)

// Store is the subset of store.Store the matcher reads and writes.
type Store interface {
	ListUsers(ctx context.Context) ([]entities.User, error)
	GetUserPreferences(ctx context.Context, userID uint) (*entities.UserPreferences, error)
	GetBooks(ctx context.Context, filter store.BookFilter) ([]entities.Book, error)
	GetNotifications(ctx context.Context, userID uint) ([]entities.Notification, error)
	CreateNotification(ctx context.Context, notification *entities.Notification) (*entities.Notification, error)
}

// Result summarizes one run.
type Result struct {
	StartedAt            time.Time     `json:"startedAt"`
	Duration             time.Duration `json:"duration"`
	NewBooks             int           `json:"newBooks"`
	UsersScanned         int           `json:"usersScanned"`
	UsersSkipped         int           `json:"usersSkipped"`
	NotificationsCreated int           `json:"notificationsCreated"`
	DuplicatesSkipped    int           `json:"duplicatesSkipped"`
}

type Matcher struct {
	store Store
	mode  Mode
	now   func() time.Time

	// Runs are serialized so overlapping triggers cannot both pass the
	// duplicate check for the same (user, book).
	mu sync.Mutex
}

func New(s Store, mode Mode) *Matcher {
	if mode != ModeAny {
		mode = ModeAll
	}
	return &Matcher{store: s, mode: mode, now: time.Now}
}

func (m *Matcher) Mode() Mode {
	return m.mode
}

// Run scans every new book against every user's preferences once.
// Books are never modified.
func (m *Matcher) Run(ctx context.Context) (*Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := &Result{StartedAt: m.now()}
	defer func() { result.Duration = m.now().Sub(result.StartedAt) }()

	books, err := m.store.GetBooks(ctx, store.BookFilter{IsNew: store.BoolPtr(true)})
	if err != nil {
		return nil, fmt.Errorf("list new books: %w", err)
	}
	result.NewBooks = len(books)
	if len(books) == 0 {
		log.Println("Matcher: no new books, nothing to do")
		return result, nil
	}

	users, err := m.store.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	for _, user := range users {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		result.UsersScanned++

		prefs, err := m.store.GetUserPreferences(ctx, user.ID)
		if err != nil {
			return result, fmt.Errorf("get preferences for user %d: %w", user.ID, err)
		}
		if prefs == nil || !prefs.NotificationsEnabled {
			result.UsersSkipped++
			continue
		}

		if err := m.notifyUser(ctx, user.ID, prefs, books, result); err != nil {
			return result, err
		}
	}

	log.Printf("Matcher: %d new books, %d users, %d notifications created, %d duplicates skipped",
		result.NewBooks, result.UsersScanned, result.NotificationsCreated, result.DuplicatesSkipped)
	return result, nil
}

func (m *Matcher) notifyUser(ctx context.Context, userID uint, prefs *entities.UserPreferences, books []entities.Book, result *Result) error {
	existing, err := m.store.GetNotifications(ctx, userID)
	if err != nil {
		return fmt.Errorf("get notifications for user %d: %w", userID, err)
	}
	notified := notifiedBooks(existing)

	for i := range books {
		book := &books[i]
		if !Matches(m.mode, prefs, book) {
			continue
		}
		if _, ok := notified[book.ID]; ok {
			result.DuplicatesSkipped++
			continue
		}

		if _, err := m.store.CreateNotification(ctx, newReleaseNotification(userID, book)); err != nil {
			return fmt.Errorf("create notification for user %d, book %d: %w", userID, book.ID, err)
		}
		notified[book.ID] = struct{}{}
		result.NotificationsCreated++
	}
	return nil
}

// notifiedBooks collects the books that already have a new-release
// notification.
func notifiedBooks(notifications []entities.Notification) map[uint]struct{} {
	ids := make(map[uint]struct{})
	for _, n := range notifications {
		if n.BookID != nil && strings.Contains(n.Title, entities.NewReleaseTitle) {
			ids[*n.BookID] = struct{}{}
		}
	}
	return ids
}

func newReleaseNotification(userID uint, book *entities.Book) *entities.Notification {
	bookID := book.ID
	message := fmt.Sprintf("%q is now available", book.Title)
	if book.Author != "" {
		message = fmt.Sprintf("%q by %s is now available", book.Title, book.Author)
	}
	return &entities.Notification{
		UserID:  userID,
		Title:   fmt.Sprintf("%s: %s", entities.NewReleaseTitle, book.Title),
		Message: message,
		Type:    entities.NotificationTypeNewRelease,
		BookID:  &bookID,
	}
}

// Matches reports whether the book fits the preferences under mode.
func Matches(mode Mode, prefs *entities.UserPreferences, book *entities.Book) bool {
	ageOK := len(prefs.PreferredAgeRanges) == 0 || slices.Contains(prefs.PreferredAgeRanges, book.AgeRange)
	categoryOK := len(prefs.PreferredCategories) == 0 ||
		slices.ContainsFunc(book.Categories, func(c string) bool {
			return slices.Contains(prefs.PreferredCategories, c)
		})

	if mode == ModeAny {
		return ageOK || categoryOK
	}
	return ageOK && categoryOK
}
