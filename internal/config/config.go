package config

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"
)

type StoreDriver string

const (
	StoreDriverMemory StoreDriver = "memory" // Process-local maps (default)
	StoreDriverSQLite StoreDriver = "sqlite" // gorm + sqlite file at Database.Path
)

type MatchMode string

const (
	MatchModeAll MatchMode = "all" // Category and age range must both match
	MatchModeAny MatchMode = "any" // Either preference is enough
)

type (
	Config struct {
		HTTP
		Global
		Store
		Database
		Demo
		BookSource
		Matcher
		Tasks
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Store struct {
		Driver StoreDriver
	}
	Database struct {
		Path string
	}
	Demo struct {
		Username    string
		Password    string
		SeedEnabled bool
		// ReadOnly blocks writes to the shared catalog
		ReadOnly bool
	}
	BookSource struct {
		Enabled bool
		BaseURL string
		APIKey  string
		// RatePerSecond caps outbound requests to the catalog API
		RatePerSecond float64
		// SupplementThreshold: searches with fewer local hits also query the source
		SupplementThreshold int
	}
	Matcher struct {
		Enabled      bool
		Schedule     string // Cron format: "0 0 * * *" = daily at midnight
		StartupDelay time.Duration
		Mode         MatchMode
	}
	Tasks struct {
		Enabled         bool
		Workers         int
		ReleaseAfter    time.Duration
		CleanupInterval time.Duration
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8188)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)

	v.SetDefault("store_driver", string(StoreDriverMemory))
	v.SetDefault("database_path", DefaultDatabasePath)

	v.SetDefault("demo_username", "demo")
	v.SetDefault("demo_password", "demo123")
	v.SetDefault("seed_enabled", true)
	v.SetDefault("demo_read_only", false)

	v.SetDefault("book_source_enabled", true)
	v.SetDefault("google_books_base_url", DefaultGoogleBooksBaseURL)
	v.SetDefault("google_books_api_key", "")
	v.SetDefault("google_books_rate_per_second", 2)
	v.SetDefault("search_supplement_threshold", 5)

	v.SetDefault("matcher_enabled", true)
	v.SetDefault("matcher_schedule", "0 0 * * *") // Daily at midnight
	v.SetDefault("matcher_startup_delay", "5s")
	v.SetDefault("matcher_mode", string(MatchModeAll))

	// Task queue defaults
	v.SetDefault("tasks_enabled", false)
	v.SetDefault("task_workers", 1)
	v.SetDefault("task_release_after", "15m")
	v.SetDefault("task_cleanup_interval", "1h")

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Store: Store{
			Driver: StoreDriver(v.GetString("STORE_DRIVER")),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Demo: Demo{
			Username:    v.GetString("DEMO_USERNAME"),
			Password:    v.GetString("DEMO_PASSWORD"),
			SeedEnabled: v.GetBool("SEED_ENABLED"),
			ReadOnly:    v.GetBool("DEMO_READ_ONLY"),
		},
		BookSource: BookSource{
			Enabled:             v.GetBool("BOOK_SOURCE_ENABLED"),
			BaseURL:             v.GetString("GOOGLE_BOOKS_BASE_URL"),
			APIKey:              v.GetString("GOOGLE_BOOKS_API_KEY"),
			RatePerSecond:       v.GetFloat64("GOOGLE_BOOKS_RATE_PER_SECOND"),
			SupplementThreshold: v.GetInt("SEARCH_SUPPLEMENT_THRESHOLD"),
		},
		Matcher: Matcher{
			Enabled:      v.GetBool("MATCHER_ENABLED"),
			Schedule:     v.GetString("MATCHER_SCHEDULE"),
			StartupDelay: v.GetDuration("MATCHER_STARTUP_DELAY"),
			Mode:         MatchMode(v.GetString("MATCHER_MODE")),
		},
		Tasks: Tasks{
			Enabled:         v.GetBool("TASKS_ENABLED"),
			Workers:         v.GetInt("TASK_WORKERS"),
			ReleaseAfter:    v.GetDuration("TASK_RELEASE_AFTER"),
			CleanupInterval: v.GetDuration("TASK_CLEANUP_INTERVAL"),
		},
	}
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case StoreDriverMemory:
	case StoreDriverSQLite:
		if c.Database.Path == "" {
			return fmt.Errorf("DATABASE_PATH is required for the %s store", StoreDriverSQLite)
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.Store.Driver)
	}

	switch c.Matcher.Mode {
	case MatchModeAll, MatchModeAny:
	default:
		return fmt.Errorf("unknown MATCHER_MODE %q", c.Matcher.Mode)
	}

	if c.Matcher.Enabled {
		if _, err := cron.ParseStandard(c.Matcher.Schedule); err != nil {
			return fmt.Errorf("invalid MATCHER_SCHEDULE %q: %w", c.Matcher.Schedule, err)
		}
	}

	if c.BookSource.Enabled && c.BookSource.RatePerSecond <= 0 {
		return fmt.Errorf("GOOGLE_BOOKS_RATE_PER_SECOND must be positive")
	}

	if c.Tasks.Enabled && c.Tasks.Workers < 1 {
		return fmt.Errorf("TASK_WORKERS must be at least 1")
	}

	return nil
}
