package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jenaralee/StoryStash/internal/entities"
	"github.com/jenaralee/StoryStash/internal/store"
)

var _ store.Store = (*Database)(nil)

type Database struct {
	DB  *gorm.DB
	now func() time.Time
}

type options struct {
	now      func() time.Time
	logLevel logger.LogLevel
}

type Option func(*options)

// WithClock overrides the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithLogLevel sets the gorm SQL log level (default: Warn).
func WithLogLevel(level logger.LogLevel) Option {
	return func(o *options) {
		o.logLevel = level
	}
}

func NewDatabase(dbPath string, opts ...Option) (*Database, error) {
	o := options{now: time.Now, logLevel: logger.Warn}
	for _, opt := range opts {
		opt(&o)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger:         logger.Default.LogMode(o.logLevel),
		NowFunc:        o.now,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql database: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	// Auto-migrate all entities
	err = db.AutoMigrate(
		&entities.User{},
		&entities.UserPreferences{},
		&entities.Book{},
		&entities.Author{},
		&entities.BookSeries{},
		&entities.Favorite{},
		&entities.RecentlyViewed{},
		&entities.Notification{},
		&entities.FollowingAuthor{},
		&entities.FollowingSeries{},
		&entities.FollowingCategory{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Printf("Database initialized successfully at %s", dbPath)

	return &Database{DB: db, now: o.now}, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (d *Database) Ping(ctx context.Context) error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// firstOrNil runs the query and returns the first row, or nil when there is none.
func firstOrNil[T any](query *gorm.DB) (*T, error) {
	var out T
	err := query.First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// translate maps unique index violations onto store.ErrConflict.
func translate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return store.ErrConflict
	}
	return err
}
