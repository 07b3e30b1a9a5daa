package contact

import (
	"net/http"

	"github.com/ezmnysniper7/portfolio/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodPost+" "+routepath.ContactAPI, h.handleSubmit)
}
