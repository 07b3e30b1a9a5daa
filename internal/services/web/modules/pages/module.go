// Package pages serves the localized site pages under /{locale}/.
package pages

import (
	"errors"
	"net/http"

	module "github.com/ezmnysniper7/portfolio/internal/services/web/module"
	"github.com/ezmnysniper7/portfolio/internal/services/web/platform/httpx"
	webi18n "github.com/ezmnysniper7/portfolio/internal/services/web/platform/i18n"
	"github.com/ezmnysniper7/portfolio/internal/services/web/platform/weberror"
	"github.com/ezmnysniper7/portfolio/internal/services/web/routepath"
)

// Module provides the localized page routes.
type Module struct{}

// New returns a pages module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "pages" }

// Mount wires page handlers behind the locale guard.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	if deps.Content == nil {
		return module.Mount{}, errors.New("content resolver is required")
	}
	mux := http.NewServeMux()
	h := newHandlers(deps)
	registerRoutes(mux, h)
	handler := httpx.Chain(mux, webi18n.RequireLocale(weberror.NotFound(deps)))
	return module.Mount{Prefix: routepath.LocalePrefix, Handler: handler}, nil
}
