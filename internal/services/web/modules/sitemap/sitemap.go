// Package sitemap serves /sitemap.xml with hreflang alternates for every
// localized page.
package sitemap

import (
	"encoding/xml"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/ezmnysniper7/portfolio/internal/content"
	platformi18n "github.com/ezmnysniper7/portfolio/internal/platform/i18n"
	module "github.com/ezmnysniper7/portfolio/internal/services/web/module"
	"github.com/ezmnysniper7/portfolio/internal/services/web/routepath"
)

const (
	sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"
	xhtmlNS   = "http://www.w3.org/1999/xhtml"
)

// Change frequencies and priorities per page class.
const (
	FreqWeekly  = "weekly"
	FreqMonthly = "monthly"

	PriorityHome     = "1.0"
	PriorityPage     = "0.8"
	PriorityFeatured = "0.7"
	PriorityProject  = "0.6"
)

// URLSet is the sitemap document root.
type URLSet struct {
	XMLName xml.Name `xml:"urlset"`
	XMLNS   string   `xml:"xmlns,attr"`
	XHTML   string   `xml:"xmlns:xhtml,attr"`
	URLs    []URL    `xml:"url"`
}

// URL is one sitemap entry.
type URL struct {
	Loc        string      `xml:"loc"`
	Alternates []Alternate `xml:"xhtml:link"`
	LastMod    string      `xml:"lastmod"`
	ChangeFreq string      `xml:"changefreq"`
	Priority   string      `xml:"priority"`
}

// Alternate links one URL to its equivalent in another locale.
type Alternate struct {
	Rel      string `xml:"rel,attr"`
	Hreflang string `xml:"hreflang,attr"`
	Href     string `xml:"href,attr"`
}

// Build lists every static page for every locale, then every project for
// every locale.
func Build(baseURL string, resolver *content.Resolver, generatedAt time.Time) URLSet {
	base := strings.TrimRight(baseURL, "/")
	lastMod := generatedAt.UTC().Format(time.RFC3339)
	locales := platformi18n.SupportedStrings()
	set := URLSet{XMLNS: sitemapNS, XHTML: xhtmlNS}

	entry := func(locale string, path func(string) string, freq, priority string) URL {
		alternates := make([]Alternate, 0, len(locales))
		for _, alt := range locales {
			alternates = append(alternates, Alternate{Rel: "alternate", Hreflang: alt, Href: base + path(alt)})
		}
		return URL{
			Loc:        base + path(locale),
			Alternates: alternates,
			LastMod:    lastMod,
			ChangeFreq: freq,
			Priority:   priority,
		}
	}

	for _, locale := range locales {
		for _, page := range routepath.StaticPages() {
			freq, priority := FreqMonthly, PriorityPage
			if page == routepath.PageHome {
				freq, priority = FreqWeekly, PriorityHome
			}
			set.URLs = append(set.URLs, entry(locale, func(l string) string {
				return routepath.Localized(l, page)
			}, freq, priority))
		}
	}

	if resolver == nil {
		return set
	}
	for _, locale := range locales {
		for _, slug := range resolver.Slugs() {
			priority := PriorityProject
			if resolver.IsFeatured(slug) {
				priority = PriorityFeatured
			}
			set.URLs = append(set.URLs, entry(locale, func(l string) string {
				return routepath.Project(l, slug)
			}, FreqMonthly, priority))
		}
	}
	return set
}

// Module serves the sitemap.
type Module struct{}

// New returns a sitemap module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "sitemap" }

// Mount wires the sitemap handler.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	if deps.Content == nil {
		return module.Mount{}, errors.New("content resolver is required")
	}
	mux := http.NewServeMux()
	mux.HandleFunc(http.MethodGet+" "+routepath.Sitemap, func(w http.ResponseWriter, _ *http.Request) {
		set := Build(deps.BaseURL, deps.Content, deps.Clock()())
		body, err := xml.MarshalIndent(set, "", "  ")
		if err != nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/xml; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(xml.Header))
		_, _ = w.Write(body)
	})
	return module.Mount{Prefix: routepath.Sitemap, Handler: mux}, nil
}
