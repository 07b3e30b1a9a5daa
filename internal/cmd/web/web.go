// Package web parses web command configuration and launches the portfolio
// site.
package web

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/ezmnysniper7/portfolio/internal/content"
	entrypoint "github.com/ezmnysniper7/portfolio/internal/platform/cmd"
	"github.com/ezmnysniper7/portfolio/internal/platform/timeouts"
	"github.com/ezmnysniper7/portfolio/internal/services/contact"
	"github.com/ezmnysniper7/portfolio/internal/services/contact/relay"
	contactsqlite "github.com/ezmnysniper7/portfolio/internal/services/contact/storage/sqlite"
	"github.com/ezmnysniper7/portfolio/internal/services/web"
)

// Config holds web command configuration.
type Config struct {
	HTTPAddr  string `env:"PORTFOLIO_WEB_HTTP_ADDR" envDefault:":8080"`
	BaseURL   string `env:"PORTFOLIO_SITE_BASE_URL" envDefault:"https://danielchen.dev"`
	DBPath    string `env:"PORTFOLIO_CONTACT_DB_PATH"`
	ResendKey string `env:"PORTFOLIO_RESEND_API_KEY"`
	From      string `env:"PORTFOLIO_CONTACT_FROM" envDefault:"Portfolio <noreply@danielchen.dev>"`
	To        string `env:"PORTFOLIO_CONTACT_TO"`

	entrypoint.TelemetryConfig
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "Absolute site origin used in sitemap and canonical links")
	fs.StringVar(&cfg.DBPath, "contact-db", cfg.DBPath, "SQLite path for the contact submission log (empty disables it)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the portfolio web server.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, entrypoint.RunOptions{Telemetry: cfg.TelemetryConfig}, func(ctx context.Context) error {
		resolver, err := content.LoadEmbedded()
		if err != nil {
			return fmt.Errorf("load content: %w", err)
		}

		contactRelay, err := newRelay(cfg)
		if err != nil {
			return err
		}
		var opts []contact.Option
		if path := strings.TrimSpace(cfg.DBPath); path != "" {
			store, err := contactsqlite.Open(path)
			if err != nil {
				return fmt.Errorf("open contact store: %w", err)
			}
			defer store.Close()
			opts = append(opts, contact.WithSubmissionLog(store))
		}
		service := contact.NewService(contactRelay, opts...)

		server, err := web.NewServer(ctx, web.Config{
			HTTPAddr: cfg.HTTPAddr,
			BaseURL:  cfg.BaseURL,
			Content:  resolver,
			Contact:  service,
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		log.Printf("web listening on %s", server.Addr())
		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}

// newRelay returns a nil relay when Resend is not configured so the site
// still serves with the contact form reporting unavailable.
func newRelay(cfg Config) (contact.Relay, error) {
	r, err := relay.New(relay.Config{
		APIKey:  cfg.ResendKey,
		From:    cfg.From,
		To:      relay.ParseRecipients(cfg.To),
		Timeout: timeouts.ContactRelay,
	})
	if errors.Is(err, relay.ErrNotConfigured) {
		log.Printf("contact relay not configured; submissions will be rejected")
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("init contact relay: %w", err)
	}
	return r, nil
}
