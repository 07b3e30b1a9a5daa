// Package web hosts the browser-facing portfolio service.
package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/ezmnysniper7/portfolio/internal/content"
	platformi18n "github.com/ezmnysniper7/portfolio/internal/platform/i18n"
	"github.com/ezmnysniper7/portfolio/internal/platform/i18n/catalog"
	"github.com/ezmnysniper7/portfolio/internal/platform/timeouts"
	"github.com/ezmnysniper7/portfolio/internal/platform/viewport"
	webapp "github.com/ezmnysniper7/portfolio/internal/services/web/app"
	module "github.com/ezmnysniper7/portfolio/internal/services/web/module"
	"github.com/ezmnysniper7/portfolio/internal/services/web/modules"
	"github.com/ezmnysniper7/portfolio/internal/services/web/platform/httpx"
	"github.com/ezmnysniper7/portfolio/internal/services/web/platform/observability"
	"github.com/ezmnysniper7/portfolio/internal/services/web/routepath"
	webstatic "github.com/ezmnysniper7/portfolio/internal/services/web/static"
)

const staticCacheControl = "public, max-age=3600"

// Config defines startup inputs for the web service.
type Config struct {
	HTTPAddr string
	BaseURL  string
	Content  *content.Resolver
	Contact  module.ContactSubmitter
	Catalog  *catalog.Bundle
	Logger   *log.Logger
	Now      func() time.Time
}

// Server hosts the web HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler builds the root handler from the default module registry.
func NewHandler(cfg Config) (http.Handler, error) {
	if err := checkCatalog(cfg.Catalog); err != nil {
		return nil, err
	}
	deps := module.Dependencies{
		Content: cfg.Content,
		Contact: cfg.Contact,
		BaseURL: strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		Now:     cfg.Now,
	}
	h, err := webapp.Composer{}.Compose(webapp.ComposeInput{
		Dependencies: deps,
		Modules:      modules.Default(),
	})
	if err != nil {
		return nil, err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	rootMux := http.NewServeMux()
	static := http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(webstatic.FS)))
	rootMux.Handle(routepath.StaticPrefix, httpx.Chain(static, httpx.SetHeader("Cache-Control", staticCacheControl)))
	rootMux.Handle(routepath.Root, h)
	return httpx.Chain(rootMux,
		httpx.RequestID(),
		observability.RequestLogger(logger),
		httpx.RecoverPanic(logger),
		httpx.SetHeader("Accept-CH", viewport.AcceptCH),
	), nil
}

// checkCatalog fails when a supported locale lacks UI copy present in the
// base catalog.
func checkCatalog(bundle *catalog.Bundle) error {
	if bundle == nil {
		bundle = catalog.Default()
	}
	for _, locale := range platformi18n.Supported() {
		if !bundle.HasLocale(locale.String()) {
			return fmt.Errorf("catalog has no messages for locale %q", locale)
		}
		if missing := bundle.MissingKeys(locale.String()); len(missing) > 0 {
			return fmt.Errorf("catalog locale %q is missing keys: %s", locale, strings.Join(missing, ", "))
		}
	}
	return nil
}

// NewServer validates config and constructs a web server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose web handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	if s == nil {
		return ""
	}
	return s.httpAddr
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown web http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve web http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
