package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/jenaralee/StoryStash/internal/booksource"
	"github.com/jenaralee/StoryStash/internal/config"
	"github.com/jenaralee/StoryStash/internal/entrypoint"
)

// IngestBooksCommand pulls search results from Google Books into the store.
type IngestBooksCommand struct {
	Config     *config.Config
	Query      string
	MaxResults int
}

func NewIngestBooksCommand() *IngestBooksCommand {
	return &IngestBooksCommand{Config: config.NewConfig()}
}

func (cmd *IngestBooksCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("ingest-books", flag.ExitOnError)
	cmd.Config.Store.Driver = config.StoreDriverSQLite
	driver, dbPath := bindStoreFlags(fs, cmd.Config)

	fs.StringVar(&cmd.Query, "query", "", "Search query sent to Google Books (required)")
	fs.IntVar(&cmd.MaxResults, "max", booksource.DefaultMaxResults, "Maximum number of volumes to fetch (1-40)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s ingest-books -query <text> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Search Google Books and save volumes not already stored.\n")
		fmt.Fprintf(os.Stderr, "Books are matched on their Google volume id.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s ingest-books -query \"picture books dragons\"\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  GOOGLE_BOOKS_API_KEY=... %s ingest-books -query \"roald dahl\" -max 40\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if cmd.Query == "" {
		return fmt.Errorf("required flag -query not provided")
	}
	if cmd.MaxResults < 1 || cmd.MaxResults > 40 {
		return fmt.Errorf("-max must be between 1 and 40")
	}

	cmd.Config.BookSource.Enabled = true
	return applyStoreFlags(cmd.Config, *driver, *dbPath)
}

func (cmd *IngestBooksCommand) Run() error {
	fmt.Println("Google Books Ingest")
	fmt.Println("===================")
	fmt.Printf("Query: %q (max %d)\n", cmd.Query, cmd.MaxResults)
	fmt.Printf("Store: %s (%s)\n\n", cmd.Config.Store.Driver, cmd.Config.Database.Path)

	cmd.Config.Demo.SeedEnabled = false

	ctx := context.Background()
	app, err := entrypoint.Build(ctx, cmd.Config)
	if err != nil {
		return err
	}
	defer app.Close()

	result, err := app.Discovery.IngestQuery(ctx, cmd.Query, cmd.MaxResults)
	if err != nil {
		return fmt.Errorf("ingest failed: %w", err)
	}

	fmt.Println("=== Ingest Summary ===")
	fmt.Printf("Fetched: %d\n", result.BooksFetched)
	fmt.Printf("Created: %d\n", result.BooksCreated)
	fmt.Printf("Already present: %d\n", result.BooksSkipped)
	if result.BooksFailed > 0 {
		fmt.Printf("Failed: %d\n", result.BooksFailed)
	}

	fmt.Println("\nIngest complete!")
	return nil
}
