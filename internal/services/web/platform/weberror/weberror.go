// Package weberror renders shared error responses for web modules.
package weberror

import (
	"net/http"
	"strings"

	module "github.com/ezmnysniper7/portfolio/internal/services/web/module"
	apperrors "github.com/ezmnysniper7/portfolio/internal/services/web/platform/errors"
	"github.com/ezmnysniper7/portfolio/internal/services/web/platform/httpx"
	webi18n "github.com/ezmnysniper7/portfolio/internal/services/web/platform/i18n"
	"github.com/ezmnysniper7/portfolio/internal/services/web/platform/pagerender"
	"github.com/ezmnysniper7/portfolio/internal/services/web/templates"
)

// ShouldRenderAppError reports whether status should use the error page.
func ShouldRenderAppError(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe localized error message.
func PublicMessage(loc webi18n.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if loc != nil {
		if key := apperrors.LocalizationKey(err); key != "" {
			if localized := strings.TrimSpace(loc.Sprintf(key)); localized != "" {
				return localized
			}
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	if text := strings.TrimSpace(http.StatusText(statusCode)); text != "" {
		return text
	}
	return http.StatusText(http.StatusInternalServerError)
}

// WriteAppError writes a localized error page.
func WriteAppError(w http.ResponseWriter, r *http.Request, statusCode int, deps module.Dependencies) {
	if w == nil {
		return
	}
	if !ShouldRenderAppError(statusCode) {
		statusCode = http.StatusInternalServerError
	}
	page := pagerender.PageContext(r, deps)
	err := pagerender.WriteModulePage(w, r, deps, pagerender.ModulePage{
		Title:      templates.ErrorPageTitle(page, statusCode),
		StatusCode: statusCode,
		Fragment:   templates.ErrorState(page, statusCode),
	})
	if err != nil {
		http.Error(w, PublicMessage(page.Loc, err), statusCode)
	}
}

// WriteModuleError writes a module-safe localized error response.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error, deps module.Dependencies) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if ShouldRenderAppError(statusCode) {
		WriteAppError(w, r, statusCode, deps)
		return
	}
	loc, _ := webi18n.ResolveLocalizer(r)
	http.Error(w, PublicMessage(loc, err), statusCode)
}

// WriteJSONError writes a localized {"error": ...} response for API routes.
func WriteJSONError(w http.ResponseWriter, r *http.Request, err error) {
	if w == nil {
		return
	}
	loc, _ := webi18n.ResolveLocalizer(r)
	_ = httpx.WriteJSONError(w, apperrors.HTTPStatus(err), PublicMessage(loc, err))
}

// NotFound returns a handler that renders the localized 404 page.
func NotFound(deps module.Dependencies) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteAppError(w, r, http.StatusNotFound, deps)
	})
}
