// Package public serves the unlocalized top-level routes: the locale
// redirect, health, robots and the site-wide not-found page.
package public

import (
	"net/http"

	module "github.com/ezmnysniper7/portfolio/internal/services/web/module"
	"github.com/ezmnysniper7/portfolio/internal/services/web/routepath"
)

// Module provides unlocalized public routes.
type Module struct{}

// New returns a public module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "public" }

// Mount wires public route handlers. Health and robots are claimed as exact
// root patterns; otherwise "/{locale}/" would redirect them to a slash path.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(deps))
	return module.Mount{
		Prefix:   routepath.Root,
		Patterns: []string{routepath.Health, routepath.Robots},
		Handler:  mux,
	}, nil
}
