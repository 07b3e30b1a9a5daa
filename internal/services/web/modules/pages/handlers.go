package pages

import (
	"net/http"
	"strings"

	"github.com/a-h/templ"
	module "github.com/ezmnysniper7/portfolio/internal/services/web/module"
	apperrors "github.com/ezmnysniper7/portfolio/internal/services/web/platform/errors"
	webi18n "github.com/ezmnysniper7/portfolio/internal/services/web/platform/i18n"
	"github.com/ezmnysniper7/portfolio/internal/services/web/platform/pagerender"
	"github.com/ezmnysniper7/portfolio/internal/services/web/platform/weberror"
	"github.com/ezmnysniper7/portfolio/internal/services/web/templates"
)

type handlers struct {
	deps module.Dependencies
}

func newHandlers(deps module.Dependencies) handlers {
	return handlers{deps: deps}
}

// view builds a page heading and fragment from the request's page context.
type view func(page templates.PageContext) (heading string, fragment templ.Component)

func (h handlers) write(w http.ResponseWriter, r *http.Request, build view) {
	page := pagerender.PageContext(r, h.deps)
	heading, fragment := build(page)
	err := pagerender.WriteModulePage(w, r, h.deps, pagerender.ModulePage{
		Title:    templates.PageTitle(page, heading),
		Fragment: fragment,
	})
	if err != nil {
		weberror.WriteModuleError(w, r, err, h.deps)
	}
}

func (h handlers) handleHome(w http.ResponseWriter, r *http.Request) {
	locale := webi18n.RequestLocale(r).String()
	resolver := h.deps.Content
	h.write(w, r, func(page templates.PageContext) (string, templ.Component) {
		return "", templates.HomePage(page, templates.HomeView{
			Profile:  resolver.Profile(locale),
			Featured: resolver.FeaturedProjects(locale),
			Skills:   resolver.Skills(locale),
		})
	})
}

func (h handlers) handleAbout(w http.ResponseWriter, r *http.Request) {
	locale := webi18n.RequestLocale(r).String()
	resolver := h.deps.Content
	h.write(w, r, func(page templates.PageContext) (string, templ.Component) {
		return templates.T(page.Loc, "about.heading"), templates.AboutPage(page, templates.AboutView{
			Profile:    resolver.Profile(locale),
			Experience: resolver.Experience(locale),
			Skills:     resolver.Skills(locale),
		})
	})
}

func (h handlers) handleProjects(w http.ResponseWriter, r *http.Request) {
	locale := webi18n.RequestLocale(r).String()
	resolver := h.deps.Content
	h.write(w, r, func(page templates.PageContext) (string, templ.Component) {
		return templates.T(page.Loc, "projects.heading"), templates.ProjectsPage(page, templates.ProjectsView{
			Projects: resolver.Projects(locale),
			Stats:    resolver.Stats(locale),
		})
	})
}

func (h handlers) handleProject(w http.ResponseWriter, r *http.Request) {
	locale := webi18n.RequestLocale(r).String()
	slug := strings.TrimSpace(r.PathValue("slug"))
	project, ok := h.deps.Content.Project(locale, slug)
	if !ok {
		weberror.WriteModuleError(w, r, apperrors.EK(apperrors.KindNotFound, "errors.not_found.title", "project not found: "+slug), h.deps)
		return
	}
	h.write(w, r, func(page templates.PageContext) (string, templ.Component) {
		return project.Title, templates.ProjectDetailPage(page, project)
	})
}

func (h handlers) handleContact(w http.ResponseWriter, r *http.Request) {
	locale := webi18n.RequestLocale(r).String()
	profile := h.deps.Content.Profile(locale)
	h.write(w, r, func(page templates.PageContext) (string, templ.Component) {
		return templates.T(page.Loc, "contact.heading"), templates.ContactPage(page, profile)
	})
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, h.deps)
}
