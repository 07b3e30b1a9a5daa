// Package inbox prints recent contact submissions from the submission log.
package inbox

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	entrypoint "github.com/ezmnysniper7/portfolio/internal/platform/cmd"
	"github.com/ezmnysniper7/portfolio/internal/services/contact/storage"
	contactsqlite "github.com/ezmnysniper7/portfolio/internal/services/contact/storage/sqlite"
)

const defaultLimit = 20

// previewRunes caps the message column so rows stay on one line.
const previewRunes = 60

// Config holds inbox command configuration.
type Config struct {
	DBPath string `env:"PORTFOLIO_CONTACT_DB_PATH"`
	Limit  int
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "SQLite path of the contact submission log")
	fs.IntVar(&cfg.Limit, "limit", defaultLimit, "Number of recent submissions to print")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run opens the submission log and writes the most recent entries to out.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	path := strings.TrimSpace(cfg.DBPath)
	if path == "" {
		return errors.New("contact db path is required")
	}
	if cfg.Limit <= 0 {
		return fmt.Errorf("limit must be positive, got %d", cfg.Limit)
	}
	store, err := contactsqlite.Open(path)
	if err != nil {
		return fmt.Errorf("open contact store: %w", err)
	}
	defer store.Close()

	submissions, err := store.ListRecentSubmissions(ctx, cfg.Limit)
	if err != nil {
		return fmt.Errorf("list submissions: %w", err)
	}
	return writeTable(out, submissions)
}

func writeTable(out io.Writer, submissions []storage.Submission) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tRECEIVED\tSTATUS\tLOCALE\tNAME\tEMAIL\tMESSAGE")
	for _, s := range submissions {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			s.ID,
			s.CreatedAt.UTC().Format(time.RFC3339),
			s.Status,
			s.Locale,
			s.Name,
			s.Email,
			preview(s.Message),
		)
	}
	return tw.Flush()
}

func preview(message string) string {
	message = strings.Join(strings.Fields(message), " ")
	runes := []rune(message)
	if len(runes) <= previewRunes {
		return message
	}
	return string(runes[:previewRunes-3]) + "..."
}
