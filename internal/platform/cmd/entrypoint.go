// Package cmd holds shared startup helpers for portfolio commands.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/ezmnysniper7/portfolio/internal/platform/config"
	"github.com/ezmnysniper7/portfolio/internal/platform/otel"
	"github.com/ezmnysniper7/portfolio/internal/platform/timeouts"
)

// Service identifiers for startup telemetry and CLI naming.
const (
	ServiceWeb   = "web"
	ServiceInbox = "inbox"
)

// TelemetryConfig is embedded by command configs that export traces.
type TelemetryConfig struct {
	OTelEndpoint string `env:"PORTFOLIO_OTEL_ENDPOINT"`
	OTelEnabled  bool   `env:"PORTFOLIO_OTEL_ENABLED" envDefault:"true"`
}

// RunOptions controls shared entrypoint behavior.
type RunOptions struct {
	Telemetry       TelemetryConfig
	ShutdownTimeout time.Duration
}

// ParseConfig loads an optional .env file, then environment values into cfg.
func ParseConfig[T any](cfg *T) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	return config.ParseEnv(cfg)
}

// ParseArgs parses command-line flags.
func ParseArgs(fs *flag.FlagSet, args []string) error {
	if fs == nil {
		return errors.New("flag parser is required")
	}
	if args == nil {
		args = []string{}
	}
	return fs.Parse(args)
}

// RunWithTelemetry configures tracing and executes a service run loop.
func RunWithTelemetry(ctx context.Context, service string, options RunOptions, run func(context.Context) error) error {
	service = strings.TrimSpace(service)
	if service == "" {
		return fmt.Errorf("service name is required")
	}
	if run == nil {
		return fmt.Errorf("run function is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	shutdown, err := otel.Setup(ctx, service, otel.Options{
		Endpoint: options.Telemetry.OTelEndpoint,
		Disabled: !options.Telemetry.OTelEnabled,
	})
	if err != nil {
		return fmt.Errorf("setup telemetry: %w", err)
	}
	defer func() {
		shutdownTimeout := options.ShutdownTimeout
		if shutdownTimeout <= 0 {
			shutdownTimeout = timeouts.TelemetryShutdown
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("%s otel shutdown: %v", service, err)
		}
	}()
	return run(ctx)
}
