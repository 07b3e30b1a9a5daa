// Package app composes feature modules into the root HTTP handler.
package app

import (
	"fmt"
	"net/http"
	"strings"

	module "github.com/ezmnysniper7/portfolio/internal/services/web/module"
)

// ComposeInput carries the modules and the dependencies they mount with.
type ComposeInput struct {
	Dependencies module.Dependencies
	Modules      []module.Module
}

// Composer wires module mounts onto a root mux.
type Composer struct{}

// Compose mounts every module's prefix and extra patterns on one ServeMux.
// Each pattern has a single owning module; duplicates and conflicting
// patterns fail composition.
func (Composer) Compose(input ComposeInput) (http.Handler, error) {
	root := http.NewServeMux()
	owners := make(map[string]string, len(input.Modules))
	for _, feature := range input.Modules {
		mount, err := resolveMount(feature, input.Dependencies)
		if err != nil {
			return nil, err
		}
		id := feature.ID()
		for _, pattern := range append([]string{mount.Prefix}, mount.Patterns...) {
			if owner, ok := owners[pattern]; ok {
				return nil, fmt.Errorf("module %q duplicates prefix %q owned by module %q", id, pattern, owner)
			}
			if err := register(root, pattern, mount.Handler); err != nil {
				return nil, fmt.Errorf("mount module %q: %w", id, err)
			}
			owners[pattern] = id
		}
	}
	return root, nil
}

func resolveMount(feature module.Module, deps module.Dependencies) (module.Mount, error) {
	if feature == nil {
		return module.Mount{}, fmt.Errorf("module is nil")
	}
	mount, err := feature.Mount(deps)
	if err != nil {
		return module.Mount{}, fmt.Errorf("mount module %q: %w", feature.ID(), err)
	}
	mount.Prefix = normalizePrefix(mount.Prefix)
	if mount.Prefix == "" {
		return module.Mount{}, fmt.Errorf("mount module %q: prefix is required", feature.ID())
	}
	patterns := make([]string, 0, len(mount.Patterns))
	for _, pattern := range mount.Patterns {
		pattern = normalizePrefix(pattern)
		if pattern == "" {
			return module.Mount{}, fmt.Errorf("mount module %q: blank pattern", feature.ID())
		}
		patterns = append(patterns, pattern)
	}
	mount.Patterns = patterns
	if mount.Handler == nil {
		return module.Mount{}, fmt.Errorf("mount module %q: handler is required", feature.ID())
	}
	return mount, nil
}

// register turns ServeMux registration panics into errors.
func register(mux *http.ServeMux, pattern string, handler http.Handler) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("register pattern %q: %v", pattern, recovered)
		}
	}()
	mux.Handle(pattern, handler)
	return nil
}

// normalizePrefix trims the pattern and roots it at "/". A trailing slash is
// kept as given so exact paths like /sitemap.xml stay exact.
func normalizePrefix(prefix string) string {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return ""
	}
	if !strings.HasPrefix(prefix, "/") {
		prefix = "/" + prefix
	}
	return prefix
}
