// Package modules defines the web module registry.
package modules

import (
	module "github.com/ezmnysniper7/portfolio/internal/services/web/module"
	"github.com/ezmnysniper7/portfolio/internal/services/web/modules/contact"
	"github.com/ezmnysniper7/portfolio/internal/services/web/modules/pages"
	"github.com/ezmnysniper7/portfolio/internal/services/web/modules/public"
	"github.com/ezmnysniper7/portfolio/internal/services/web/modules/sitemap"
)

// Module aliases the module interface contract.
type Module = module.Module

// Default returns every module the site mounts.
func Default() []Module {
	return []Module{
		public.New(),
		sitemap.New(),
		contact.New(),
		pages.New(),
	}
}
