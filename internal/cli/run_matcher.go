package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/jenaralee/StoryStash/internal/config"
	"github.com/jenaralee/StoryStash/internal/entrypoint"
	"github.com/jenaralee/StoryStash/internal/matcher"
)

// RunMatcherCommand runs the notification matcher once and exits.
type RunMatcherCommand struct {
	Config *config.Config
	Result *matcher.Result
}

func NewRunMatcherCommand() *RunMatcherCommand {
	return &RunMatcherCommand{Config: config.NewConfig()}
}

func (cmd *RunMatcherCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("run-matcher", flag.ExitOnError)
	driver, dbPath := bindStoreFlags(fs, cmd.Config)
	mode := fs.String("mode", string(cmd.Config.Matcher.Mode), "Match policy: all (category and age range) or any")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s run-matcher [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Create \"New Book Release\" notifications for users whose preferences\n")
		fmt.Fprintf(os.Stderr, "match books flagged as new. Users already notified are skipped.\n\n")
		fmt.Fprintf(os.Stderr, "With the memory driver the demo catalog is seeded first.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	cmd.Config.Matcher.Mode = config.MatchMode(*mode)
	// The scheduler is not started by this command
	cmd.Config.Matcher.Enabled = false
	return applyStoreFlags(cmd.Config, *driver, *dbPath)
}

func (cmd *RunMatcherCommand) Run() error {
	fmt.Println("Notification Matcher")
	fmt.Println("====================")

	cmd.Config.BookSource.Enabled = false
	if cmd.Config.Store.Driver == config.StoreDriverSQLite {
		cmd.Config.Demo.SeedEnabled = false
	}

	ctx := context.Background()
	app, err := entrypoint.Build(ctx, cmd.Config)
	if err != nil {
		return err
	}
	defer app.Close()

	fmt.Printf("Mode: %s\n\n", app.Matcher.Mode())

	result, err := app.Matcher.Run(ctx)
	if err != nil {
		return fmt.Errorf("matcher run failed: %w", err)
	}
	cmd.Result = result

	fmt.Println("=== Matcher Summary ===")
	fmt.Printf("New books: %d\n", result.NewBooks)
	fmt.Printf("Users scanned: %d (%d skipped)\n", result.UsersScanned, result.UsersSkipped)
	fmt.Printf("Notifications created: %d\n", result.NotificationsCreated)
	fmt.Printf("Duplicates skipped: %d\n", result.DuplicatesSkipped)
	fmt.Printf("Took: %s\n", result.Duration)
	return nil
}
