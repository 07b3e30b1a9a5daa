package public

import (
	"net/http"

	"github.com/ezmnysniper7/portfolio/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Root+"{$}", h.handleRoot)
	mux.HandleFunc(http.MethodGet+" "+routepath.Health, h.handleHealth)
	mux.HandleFunc(http.MethodGet+" "+routepath.Robots, h.handleRobots)
	mux.HandleFunc(routepath.Root, h.handleNotFound)
}
