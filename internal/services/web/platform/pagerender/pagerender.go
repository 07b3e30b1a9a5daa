// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/ezmnysniper7/portfolio/internal/platform/viewport"
	module "github.com/ezmnysniper7/portfolio/internal/services/web/module"
	"github.com/ezmnysniper7/portfolio/internal/services/web/platform/httpx"
	webi18n "github.com/ezmnysniper7/portfolio/internal/services/web/platform/i18n"
	"github.com/ezmnysniper7/portfolio/internal/services/web/templates"
)

// ModulePage describes a module page response.
type ModulePage struct {
	Title      string
	StatusCode int
	Fragment   templ.Component
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// PageContext builds the template page context for r.
func PageContext(r *http.Request, deps module.Dependencies) templates.PageContext {
	loc, locale := webi18n.ResolveLocalizer(r)
	page := templates.PageContext{
		Locale:  locale,
		Loc:     loc,
		BaseURL: deps.BaseURL,
		Effects: viewport.FromRequest(r),
		Now:     deps.Clock()(),
	}
	if r != nil && r.URL != nil {
		page.Path = r.URL.Path
	}
	return page
}

// WriteModulePage writes a module page inside the site layout.
func WriteModulePage(w http.ResponseWriter, r *http.Request, deps module.Dependencies, page ModulePage) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = emptyComponent{}
	}
	pageCtx := PageContext(r, deps)
	title := page.Title
	if title == "" {
		title = templates.PageTitle(pageCtx, "")
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	return templates.Layout(title, pageCtx).Render(templ.WithChildren(httpx.RequestContext(r), fragment), w)
}
