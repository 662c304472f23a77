package cli

import (
	"flag"
	"path/filepath"

	"github.com/jenaralee/StoryStash/internal/config"
)

// bindStoreFlags lets -driver and -db override STORE_DRIVER and DATABASE_PATH.
func bindStoreFlags(fs *flag.FlagSet, cfg *config.Config) (driver, dbPath *string) {
	driver = fs.String("driver", string(cfg.Store.Driver), "Store backend: memory or sqlite")
	dbPath = fs.String("db", cfg.Database.Path, "Path to the SQLite database (sqlite driver)")
	return driver, dbPath
}

func applyStoreFlags(cfg *config.Config, driver, dbPath string) error {
	cfg.Store.Driver = config.StoreDriver(driver)
	if dbPath != "" {
		abs, err := filepath.Abs(dbPath)
		if err != nil {
			return err
		}
		dbPath = abs
	}
	cfg.Database.Path = dbPath
	return cfg.Validate()
}
