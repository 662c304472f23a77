// Package seed loads the demo catalog. Seeding is idempotent: records that
// already exist (by googleId or name) are left alone.
package seed

import (
	"context"
	"fmt"
	"log"

	"github.com/jenaralee/StoryStash/internal/entities"
	"github.com/jenaralee/StoryStash/internal/store"
)

// UserEnsurer returns the demo user, creating it if needed.
type UserEnsurer interface {
	Ensure(ctx context.Context) (*entities.User, error)
}

type Result struct {
	BooksCreated   int
	AuthorsCreated int
	SeriesCreated  int
	UserID         uint
}

// Run seeds books, authors and series, then gives the demo user a welcome
// notification the first time it is seeded.
func Run(ctx context.Context, s store.Store, users UserEnsurer) (Result, error) {
	var result Result

	for _, b := range books() {
		existing, err := s.GetBookByGoogleID(ctx, b.GoogleID)
		if err != nil {
			return result, fmt.Errorf("look up book %s: %w", b.GoogleID, err)
		}
		if existing != nil {
			continue
		}
		if _, err := s.CreateBook(ctx, &b); err != nil {
			return result, fmt.Errorf("create book %q: %w", b.Title, err)
		}
		result.BooksCreated++
	}

	for _, a := range authors() {
		existing, err := s.GetAuthorByName(ctx, a.Name)
		if err != nil {
			return result, fmt.Errorf("look up author %q: %w", a.Name, err)
		}
		if existing != nil {
			continue
		}
		if _, err := s.CreateAuthor(ctx, &a); err != nil {
			return result, fmt.Errorf("create author %q: %w", a.Name, err)
		}
		result.AuthorsCreated++
	}

	for _, bs := range series() {
		existing, err := s.GetSeriesByName(ctx, bs.Name)
		if err != nil {
			return result, fmt.Errorf("look up series %q: %w", bs.Name, err)
		}
		if existing != nil {
			continue
		}
		if _, err := s.CreateSeries(ctx, &bs); err != nil {
			return result, fmt.Errorf("create series %q: %w", bs.Name, err)
		}
		result.SeriesCreated++
	}

	if users != nil {
		user, err := users.Ensure(ctx)
		if err != nil {
			return result, err
		}
		result.UserID = user.ID
		if err := welcome(ctx, s, user.ID); err != nil {
			return result, err
		}
	}

	log.Printf("Seed: %d books, %d authors, %d series created",
		result.BooksCreated, result.AuthorsCreated, result.SeriesCreated)
	return result, nil
}

const welcomeTitle = "Welcome to StoryStash"

func welcome(ctx context.Context, s store.NotificationStore, userID uint) error {
	existing, err := s.GetNotifications(ctx, userID)
	if err != nil {
		return fmt.Errorf("get notifications: %w", err)
	}
	for _, n := range existing {
		if n.Title == welcomeTitle {
			return nil
		}
	}

	_, err = s.CreateNotification(ctx, &entities.Notification{
		UserID:  userID,
		Title:   welcomeTitle,
		Message: "Set your favorite categories and age ranges to hear about new books.",
		Type:    entities.NotificationTypeSystem,
	})
	return err
}
