package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, int32(8188), cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	assert.Equal(t, 2, cfg.Global.ShutdownTimeoutInSeconds)
	assert.Equal(t, StoreDriverMemory, cfg.Store.Driver)
	assert.Equal(t, DefaultDatabasePath, cfg.Database.Path)
	assert.Equal(t, "demo", cfg.Demo.Username)
	assert.True(t, cfg.Demo.SeedEnabled)
	assert.False(t, cfg.Demo.ReadOnly)
	assert.Equal(t, DefaultGoogleBooksBaseURL, cfg.BookSource.BaseURL)
	assert.Equal(t, 5, cfg.BookSource.SupplementThreshold)
	assert.InDelta(t, 2.0, cfg.BookSource.RatePerSecond, 0.001)
	assert.Equal(t, "0 0 * * *", cfg.Matcher.Schedule)
	assert.Equal(t, 5*time.Second, cfg.Matcher.StartupDelay)
	assert.Equal(t, MatchModeAll, cfg.Matcher.Mode)
	assert.False(t, cfg.Tasks.Enabled)
	assert.Equal(t, 15*time.Minute, cfg.Tasks.ReleaseAfter)

	require.NoError(t, cfg.Validate())
}

func TestNewConfig_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("STORE_DRIVER", "sqlite")
	t.Setenv("DATABASE_PATH", "/tmp/books.db")
	t.Setenv("MATCHER_MODE", "any")
	t.Setenv("MATCHER_SCHEDULE", "*/5 * * * *")
	t.Setenv("TASKS_ENABLED", "true")
	t.Setenv("TASK_WORKERS", "3")
	t.Setenv("DEMO_READ_ONLY", "true")

	cfg := NewConfig()

	assert.Equal(t, int32(9000), cfg.HTTP.Port)
	assert.Equal(t, StoreDriverSQLite, cfg.Store.Driver)
	assert.Equal(t, "/tmp/books.db", cfg.Database.Path)
	assert.Equal(t, MatchModeAny, cfg.Matcher.Mode)
	assert.True(t, cfg.Tasks.Enabled)
	assert.Equal(t, 3, cfg.Tasks.Workers)
	assert.True(t, cfg.Demo.ReadOnly)
	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "unknown driver",
			mutate:  func(c *Config) { c.Store.Driver = "postgres" },
			wantErr: "STORE_DRIVER",
		},
		{
			name:    "sqlite without path",
			mutate:  func(c *Config) { c.Store.Driver = StoreDriverSQLite; c.Database.Path = "" },
			wantErr: "DATABASE_PATH",
		},
		{
			name:    "bad cron schedule",
			mutate:  func(c *Config) { c.Matcher.Schedule = "every day" },
			wantErr: "MATCHER_SCHEDULE",
		},
		{
			name:    "unknown match mode",
			mutate:  func(c *Config) { c.Matcher.Mode = "some" },
			wantErr: "MATCHER_MODE",
		},
		{
			name:    "zero rate",
			mutate:  func(c *Config) { c.BookSource.RatePerSecond = 0 },
			wantErr: "GOOGLE_BOOKS_RATE_PER_SECOND",
		},
		{
			name:    "no workers",
			mutate:  func(c *Config) { c.Tasks.Enabled = true; c.Tasks.Workers = 0 },
			wantErr: "TASK_WORKERS",
		},
		{
			name:   "bad schedule ignored when matcher disabled",
			mutate: func(c *Config) { c.Matcher.Enabled = false; c.Matcher.Schedule = "nope" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
