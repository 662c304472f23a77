// Command generate_demo creates a demo database with the seed catalog and a
// demo user who already has preferences, favorites and follows.
// Usage: go run ./cmd/generate_demo [-db path/to/demo.db]
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"

	"gorm.io/gorm/logger"

	"github.com/jenaralee/StoryStash/internal/database"
	"github.com/jenaralee/StoryStash/internal/entities"
	"github.com/jenaralee/StoryStash/internal/identity"
	"github.com/jenaralee/StoryStash/internal/matcher"
	"github.com/jenaralee/StoryStash/internal/seed"
)

const defaultDemoDatabasePath = "./demo/demo.db"

func main() {
	dbPath := flag.String("db", defaultDemoDatabasePath, "path to the demo database file")
	username := flag.String("user", "demo", "demo username")
	password := flag.String("password", "demo123", "demo password")
	flag.Parse()

	log.Printf("Generating demo database at %s...", *dbPath)

	// Delete existing demo database to start fresh
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing demo database: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(*dbPath), 0o755); err != nil {
		log.Fatalf("Failed to create demo directory: %v", err)
	}

	db, err := database.NewDatabase(*dbPath, database.WithLogLevel(logger.Warn))
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	users := identity.NewDemoResolver(db, *username, *password)

	result, err := seed.Run(ctx, db, users)
	if err != nil {
		log.Fatalf("Failed to seed: %v", err)
	}

	addActivity(ctx, db, result.UserID)

	run, err := matcher.New(db, matcher.ModeAll).Run(ctx)
	if err != nil {
		log.Fatalf("Failed to run matcher: %v", err)
	}
	log.Printf("Matcher created %d notifications", run.NotificationsCreated)

	log.Println("Demo database generated successfully!")
}

// addActivity gives the demo user something to look at on first login.
func addActivity(ctx context.Context, db *database.Database, userID uint) {
	categories := []string{"Fairy Tales", "Adventure"}
	ageRanges := []string{"6-8 years"}
	if _, err := db.UpdateUserPreferences(ctx, userID, entities.PreferencesUpdate{
		PreferredCategories: &categories,
		PreferredAgeRanges:  &ageRanges,
	}); err != nil {
		log.Printf("Failed to set preferences: %v", err)
	}

	for _, googleID := range []string{"seed-gruffalo", "seed-magic-tree-house-1"} {
		book, err := db.GetBookByGoogleID(ctx, googleID)
		if err != nil || book == nil {
			log.Printf("Seed book %s missing: %v", googleID, err)
			continue
		}
		if _, err := db.AddFavorite(ctx, userID, book.ID); err != nil {
			log.Printf("Failed to favorite %s: %v", book.Title, err)
		}
		if _, err := db.AddRecentlyViewed(ctx, userID, book.ID); err != nil {
			log.Printf("Failed to record view of %s: %v", book.Title, err)
		}
	}

	if author, err := db.GetAuthorByName(ctx, "Julia Donaldson"); err == nil && author != nil {
		if _, err := db.FollowAuthor(ctx, userID, author.ID); err != nil {
			log.Printf("Failed to follow %s: %v", author.Name, err)
		}
	}
	if series, err := db.GetSeriesByName(ctx, "Magic Tree House"); err == nil && series != nil {
		if _, err := db.FollowSeries(ctx, userID, series.ID); err != nil {
			log.Printf("Failed to follow %s: %v", series.Name, err)
		}
	}
	if _, err := db.FollowCategory(ctx, userID, "Fantasy"); err != nil {
		log.Printf("Failed to follow category: %v", err)
	}
}
