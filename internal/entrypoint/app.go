package entrypoint

import (
	"context"
	"fmt"
	"log"

	"gorm.io/gorm/logger"

	"github.com/jenaralee/StoryStash/internal/booksource"
	"github.com/jenaralee/StoryStash/internal/config"
	"github.com/jenaralee/StoryStash/internal/database"
	"github.com/jenaralee/StoryStash/internal/identity"
	"github.com/jenaralee/StoryStash/internal/matcher"
	"github.com/jenaralee/StoryStash/internal/seed"
	"github.com/jenaralee/StoryStash/internal/services"
	"github.com/jenaralee/StoryStash/internal/store"
	"github.com/jenaralee/StoryStash/internal/store/memory"
	"github.com/jenaralee/StoryStash/internal/validation"
)

// App holds the long-lived components shared by the server and the CLI
// commands.
type App struct {
	Store     store.Store
	Resolver  *identity.DemoResolver
	Validator *validation.Validator
	Matcher   *matcher.Matcher
	Discovery *services.DiscoveryService
}

// OpenStore returns the backend selected by STORE_DRIVER.
func OpenStore(cfg *config.Config) (store.Store, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		log.Printf("Using in-memory store (data is lost on restart)")
		return memory.New(), nil
	case config.StoreDriverSQLite:
		log.Printf("Using SQLite store at %s", cfg.Database.Path)
		db, err := database.NewDatabase(cfg.Database.Path, database.WithLogLevel(logger.Warn))
		if err != nil {
			return nil, err
		}
		return db, nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

// NewSource returns the external catalog client, or nil when disabled.
func NewSource(cfg *config.Config) booksource.Source {
	if !cfg.BookSource.Enabled {
		log.Printf("External book source disabled (BOOK_SOURCE_ENABLED=false)")
		return nil
	}
	if cfg.BookSource.APIKey == "" {
		log.Printf("GOOGLE_BOOKS_API_KEY is not set, using the anonymous quota")
	}
	return booksource.NewGoogleBooksClient(cfg.BookSource.BaseURL, cfg.BookSource.APIKey, cfg.BookSource.RatePerSecond)
}

// Build opens the store and wires the services on top of it, seeding the
// demo catalog when SEED_ENABLED is set.
func Build(ctx context.Context, cfg *config.Config) (*App, error) {
	s, err := OpenStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	app := &App{
		Store:     s,
		Resolver:  identity.NewDemoResolver(s, cfg.Demo.Username, cfg.Demo.Password),
		Validator: validation.New(),
		Matcher:   matcher.New(s, matcher.Mode(cfg.Matcher.Mode)),
	}

	app.Discovery = services.NewDiscoveryService(s, NewSource(cfg), cfg.BookSource.SupplementThreshold)

	if cfg.Demo.SeedEnabled {
		if err := app.Seed(ctx); err != nil {
			s.Close()
			return nil, err
		}
	}

	return app, nil
}

// Seed loads the demo catalog and makes sure the demo user exists.
func (a *App) Seed(ctx context.Context) error {
	result, err := seed.Run(ctx, a.Store, a.Resolver)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	log.Printf("Seed: %d books, %d authors, %d series created (demo user id %d)",
		result.BooksCreated, result.AuthorsCreated, result.SeriesCreated, result.UserID)
	return nil
}

func (a *App) Close() error {
	return a.Store.Close()
}
