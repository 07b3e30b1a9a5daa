package public

import (
	"net/http"
	"strings"

	platformi18n "github.com/ezmnysniper7/portfolio/internal/platform/i18n"
	module "github.com/ezmnysniper7/portfolio/internal/services/web/module"
	"github.com/ezmnysniper7/portfolio/internal/services/web/platform/httpx"
	webi18n "github.com/ezmnysniper7/portfolio/internal/services/web/platform/i18n"
	"github.com/ezmnysniper7/portfolio/internal/services/web/platform/weberror"
	"github.com/ezmnysniper7/portfolio/internal/services/web/routepath"
)

type handlers struct {
	deps module.Dependencies
}

func newHandlers(deps module.Dependencies) handlers {
	return handlers{deps: deps}
}

func (h handlers) handleRoot(w http.ResponseWriter, r *http.Request) {
	httpx.WriteRedirect(w, r, routepath.Locale(webi18n.PreferredLocale(r).String()))
}

func (h handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	_ = httpx.WriteText(w, http.StatusOK, "ok")
}

func (h handlers) handleRobots(w http.ResponseWriter, _ *http.Request) {
	_ = httpx.WriteText(w, http.StatusOK, robotsBody(h.deps.BaseURL))
}

func robotsBody(baseURL string) string {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n\n")
	b.WriteString("Sitemap: ")
	b.WriteString(strings.TrimRight(baseURL, "/"))
	b.WriteString(routepath.Sitemap)
	b.WriteString("\n")
	return b.String()
}

// handleNotFound sends a bare locale root ("/en") to its home and renders
// the default-locale 404 for everything else.
func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	segment := strings.Trim(r.URL.Path, "/")
	if locale, ok := platformi18n.Resolve(segment); ok && r.Method == http.MethodGet {
		httpx.WriteRedirect(w, r, routepath.Locale(locale.String()))
		return
	}
	weberror.WriteAppError(w, r, http.StatusNotFound, h.deps)
}
