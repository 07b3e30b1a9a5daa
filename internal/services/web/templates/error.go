package templates

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"github.com/ezmnysniper7/portfolio/internal/services/web/routepath"
)

func errorKeys(statusCode int) (title, body string) {
	switch {
	case statusCode == http.StatusNotFound:
		return "errors.not_found.title", "errors.not_found.body"
	case statusCode == http.StatusServiceUnavailable:
		return "errors.unavailable.title", "errors.unavailable.body"
	default:
		return "errors.internal.title", "errors.internal.body"
	}
}

// ErrorPageTitle returns the localized document title for statusCode.
func ErrorPageTitle(page PageContext, statusCode int) string {
	title, _ := errorKeys(statusCode)
	return PageTitle(page, page.t(title))
}

// ErrorState renders the localized error message for statusCode.
func ErrorState(page PageContext, statusCode int) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		title, body := errorKeys(statusCode)
		h.open("section", "class", "error-state", "data-status", strconv.Itoa(statusCode))
		h.element("p", strconv.Itoa(statusCode), "class", "error-code")
		h.element("h1", page.t(title))
		h.element("p", page.t(body))
		h.link(routepath.Locale(page.locale()), page.t("errors.back_home"), "class", "button")
		h.close("section")
		return h.err
	})
}
