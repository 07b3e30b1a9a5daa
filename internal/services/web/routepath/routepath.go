// Package routepath stores canonical HTTP paths for web modules.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root         = "/"
	Health       = "/up"
	Robots       = "/robots.txt"
	Sitemap      = "/sitemap.xml"
	ContactAPI   = "/api/contact"
	StaticPrefix = "/static/"

	LocalePrefix   = "/{locale}/"
	LocaleHome     = LocalePrefix + "{$}"
	LocaleAbout    = LocalePrefix + "about"
	LocaleProjects = LocalePrefix + "projects"
	LocaleProject  = LocalePrefix + "projects/{slug}"
	LocaleContact  = LocalePrefix + "contact"
)

// Page names a localized page without its locale segment.
type Page string

const (
	PageHome     Page = ""
	PageAbout    Page = "about"
	PageProjects Page = "projects"
	PageContact  Page = "contact"
)

// StaticPages lists localized pages in sitemap order.
func StaticPages() []Page {
	return []Page{PageHome, PageAbout, PageProjects, PageContact}
}

// Locale returns the home path for locale.
func Locale(locale string) string {
	return "/" + escapeSegment(locale) + "/"
}

// Localized returns the path of page under locale.
func Localized(locale string, page Page) string {
	return Locale(locale) + string(page)
}

// About returns the about page path for locale.
func About(locale string) string { return Localized(locale, PageAbout) }

// Projects returns the project list path for locale.
func Projects(locale string) string { return Localized(locale, PageProjects) }

// Project returns the project detail path for locale and slug.
func Project(locale, slug string) string {
	return Projects(locale) + "/" + escapeSegment(slug)
}

// Contact returns the contact page path for locale.
func Contact(locale string) string { return Localized(locale, PageContact) }

// SwitchLocale rewrites the locale segment of path, keeping the rest intact.
// Paths without a locale segment map to the target locale's home.
func SwitchLocale(path, locale string) string {
	trimmed := strings.TrimPrefix(strings.TrimSpace(path), "/")
	if trimmed == "" {
		return Locale(locale)
	}
	_, rest, found := strings.Cut(trimmed, "/")
	if !found {
		return Locale(locale)
	}
	return Locale(locale) + rest
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}
