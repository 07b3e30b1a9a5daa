// Package contact exposes the contact form submission API.
package contact

import (
	"errors"
	"net/http"

	module "github.com/ezmnysniper7/portfolio/internal/services/web/module"
	"github.com/ezmnysniper7/portfolio/internal/services/web/routepath"
)

// Module provides the contact submission endpoint.
type Module struct{}

// New returns a contact module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "contact" }

// Mount wires the contact API handler.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	if deps.Contact == nil {
		return module.Mount{}, errors.New("contact submitter is required")
	}
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(deps.Contact))
	return module.Mount{Prefix: routepath.ContactAPI, Handler: mux}, nil
}
