// Package module defines the contract between the web composer and feature
// modules.
package module

import (
	"context"
	"net/http"
	"time"

	"github.com/ezmnysniper7/portfolio/internal/content"
	"github.com/ezmnysniper7/portfolio/internal/services/contact"
)

// ContactSubmitter accepts contact form submissions.
type ContactSubmitter interface {
	Submit(ctx context.Context, submission contact.Submission) (contact.Receipt, error)
}

// Dependencies carries shared services into module mounts.
type Dependencies struct {
	Content *content.Resolver
	Contact ContactSubmitter
	// BaseURL is the absolute site origin used for sitemap and robots links.
	BaseURL string
	Now     func() time.Time
}

// Clock returns the configured clock or time.Now.
func (d Dependencies) Clock() func() time.Time {
	if d.Now != nil {
		return d.Now
	}
	return time.Now
}

// Mount is a module's root handler and the ServeMux patterns it owns.
// Patterns lists extra root patterns routed to Handler, for exact paths a
// broader Prefix would not reach through the root mux.
type Mount struct {
	Prefix   string
	Patterns []string
	Handler  http.Handler
}

// Module is one mountable feature area.
type Module interface {
	ID() string
	Mount(Dependencies) (Mount, error)
}
