package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/jenaralee/StoryStash/internal/config"
	"github.com/jenaralee/StoryStash/internal/entrypoint"
)

// SeedDBCommand loads the demo catalog into a database file.
type SeedDBCommand struct {
	Config *config.Config
}

func NewSeedDBCommand() *SeedDBCommand {
	return &SeedDBCommand{Config: config.NewConfig()}
}

func (cmd *SeedDBCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("seed-db", flag.ExitOnError)
	// Seeding memory would be thrown away on exit
	cmd.Config.Store.Driver = config.StoreDriverSQLite
	driver, dbPath := bindStoreFlags(fs, cmd.Config)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s seed-db [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Load the demo books, authors and series and create the demo user.\n")
		fmt.Fprintf(os.Stderr, "Existing records are left untouched, so the command can be re-run.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	return applyStoreFlags(cmd.Config, *driver, *dbPath)
}

func (cmd *SeedDBCommand) Run() error {
	fmt.Println("Seed Database")
	fmt.Println("=============")
	fmt.Printf("Store: %s (%s)\n\n", cmd.Config.Store.Driver, cmd.Config.Database.Path)

	// Build seeds on its own when enabled; run it explicitly instead
	cmd.Config.Demo.SeedEnabled = false
	cmd.Config.BookSource.Enabled = false

	ctx := context.Background()
	app, err := entrypoint.Build(ctx, cmd.Config)
	if err != nil {
		return err
	}
	defer app.Close()

	if err := app.Seed(ctx); err != nil {
		return err
	}

	fmt.Println("\nSeed complete!")
	return nil
}
