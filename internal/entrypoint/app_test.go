package entrypoint

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jenaralee/StoryStash/internal/config"
	"github.com/jenaralee/StoryStash/internal/database"
	"github.com/jenaralee/StoryStash/internal/store/memory"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	t.Setenv("BOOK_SOURCE_ENABLED", "false")
	t.Setenv("DATABASE_PATH", filepath.Join(t.TempDir(), "storystash.db"))
	return config.NewConfig()
}

func TestOpenStore(t *testing.T) {
	t.Run("memory by default", func(t *testing.T) {
		cfg := testConfig(t)

		s, err := OpenStore(cfg)
		require.NoError(t, err)
		defer s.Close()

		assert.IsType(t, &memory.Store{}, s)
	})

	t.Run("sqlite", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Store.Driver = config.StoreDriverSQLite

		s, err := OpenStore(cfg)
		require.NoError(t, err)
		defer s.Close()

		assert.IsType(t, &database.Database{}, s)
		assert.NoError(t, s.Ping(context.Background()))
	})

	t.Run("unknown driver", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Store.Driver = "postgres"

		_, err := OpenStore(cfg)
		assert.Error(t, err)
	})
}

func TestNewSource(t *testing.T) {
	cfg := testConfig(t)
	assert.Nil(t, NewSource(cfg))

	cfg.BookSource.Enabled = true
	assert.NotNil(t, NewSource(cfg))
}

func TestBuild(t *testing.T) {
	ctx := context.Background()

	t.Run("seeds the demo catalog and user", func(t *testing.T) {
		cfg := testConfig(t)

		app, err := Build(ctx, cfg)
		require.NoError(t, err)
		defer app.Close()

		books, err := app.Store.SearchBooks(ctx, "gruffalo")
		require.NoError(t, err)
		assert.Len(t, books, 1)

		user, err := app.Store.GetUserByUsername(ctx, cfg.Demo.Username)
		require.NoError(t, err)
		require.NotNil(t, user)

		result, err := app.Matcher.Run(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, result.UsersScanned)
	})

	t.Run("seeding twice on sqlite creates nothing new", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Store.Driver = config.StoreDriverSQLite

		app, err := Build(ctx, cfg)
		require.NoError(t, err)
		require.NoError(t, app.Close())

		app, err = Build(ctx, cfg)
		require.NoError(t, err)
		defer app.Close()

		books, err := app.Store.SearchBooks(ctx, "gruffalo")
		require.NoError(t, err)
		assert.Len(t, books, 1)
	})

	t.Run("skips seeding when disabled", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Demo.SeedEnabled = false

		app, err := Build(ctx, cfg)
		require.NoError(t, err)
		defer app.Close()

		users, err := app.Store.ListUsers(ctx)
		require.NoError(t, err)
		assert.Empty(t, users)
	})
}
