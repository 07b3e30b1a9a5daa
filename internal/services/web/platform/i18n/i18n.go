// Package i18n provides request locale helpers for web handlers.
package i18n

import (
	"context"
	"net/http"
	"strings"
	"time"

	platformi18n "github.com/ezmnysniper7/portfolio/internal/platform/i18n"
	"github.com/ezmnysniper7/portfolio/internal/services/web/platform/httpx"
	"golang.org/x/text/message"
)

// LangCookieName stores the visitor's locale preference.
const LangCookieName = "lang"

const langCookieMaxAge = 365 * 24 * time.Hour

// Localizer provides translated strings for templates.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

type localeKey struct{}

// Printer returns a message printer for locale.
func Printer(locale platformi18n.Locale) *message.Printer {
	return message.NewPrinter(platformi18n.Tag(locale))
}

// WithLocale stores locale on ctx.
func WithLocale(ctx context.Context, locale platformi18n.Locale) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, localeKey{}, locale)
}

// LocaleFromContext returns the locale stored by WithLocale.
func LocaleFromContext(ctx context.Context) (platformi18n.Locale, bool) {
	if ctx == nil {
		return "", false
	}
	locale, ok := ctx.Value(localeKey{}).(platformi18n.Locale)
	return locale, ok
}

// RequestLocale returns the locale bound to r, or the default locale.
func RequestLocale(r *http.Request) platformi18n.Locale {
	if locale, ok := LocaleFromContext(httpx.RequestContext(r)); ok {
		return locale
	}
	return platformi18n.Default()
}

// ResolveLocalizer returns the printer and locale bound to r.
func ResolveLocalizer(r *http.Request) (Localizer, platformi18n.Locale) {
	locale := RequestLocale(r)
	return Printer(locale), locale
}

// PreferredLocale picks the locale for requests without a locale segment:
// the lang cookie first, then Accept-Language.
func PreferredLocale(r *http.Request) platformi18n.Locale {
	if r == nil {
		return platformi18n.Default()
	}
	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if locale, ok := platformi18n.Resolve(cookie.Value); ok {
			return locale
		}
	}
	return platformi18n.Match(r.Header.Get("Accept-Language"))
}

// SetLanguageCookie persists locale on the response.
func SetLanguageCookie(w http.ResponseWriter, locale platformi18n.Locale) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    locale.String(),
		Path:     "/",
		MaxAge:   int(langCookieMaxAge.Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

// PathLocale returns the first path segment of r.
func PathLocale(r *http.Request) string {
	if r == nil || r.URL == nil {
		return ""
	}
	trimmed := strings.TrimPrefix(r.URL.Path, "/")
	segment, _, _ := strings.Cut(trimmed, "/")
	return segment
}

// RequireLocale binds the locale path segment to the request context and
// persists it as the visitor's preference. Unsupported segments go to
// notFound with the default locale bound.
func RequireLocale(notFound http.Handler) httpx.Middleware {
	if notFound == nil {
		notFound = http.NotFoundHandler()
	}
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			locale, ok := platformi18n.Resolve(PathLocale(r))
			if !ok {
				ctx := WithLocale(r.Context(), platformi18n.Default())
				notFound.ServeHTTP(w, r.WithContext(ctx))
				return
			}
			SetLanguageCookie(w, locale)
			next.ServeHTTP(w, r.WithContext(WithLocale(r.Context(), locale)))
		})
	}
}
