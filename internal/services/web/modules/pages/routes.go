package pages

import (
	"net/http"

	"github.com/ezmnysniper7/portfolio/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.LocaleHome, h.handleHome)
	mux.HandleFunc(http.MethodGet+" "+routepath.LocaleAbout, h.handleAbout)
	mux.HandleFunc(http.MethodGet+" "+routepath.LocaleProjects, h.handleProjects)
	mux.HandleFunc(http.MethodGet+" "+routepath.LocaleProject, h.handleProject)
	mux.HandleFunc(http.MethodGet+" "+routepath.LocaleContact, h.handleContact)
	mux.HandleFunc(http.MethodGet+" "+routepath.LocalePrefix, h.handleNotFound)
}
