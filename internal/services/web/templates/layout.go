package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	platformi18n "github.com/ezmnysniper7/portfolio/internal/platform/i18n"
	"github.com/ezmnysniper7/portfolio/internal/services/web/routepath"
)

type navItem struct {
	key  string
	href string
	page routepath.Page
}

func navItems(locale string) []navItem {
	return []navItem{
		{key: "site.nav.home", href: routepath.Locale(locale), page: routepath.PageHome},
		{key: "site.nav.about", href: routepath.About(locale), page: routepath.PageAbout},
		{key: "site.nav.projects", href: routepath.Projects(locale), page: routepath.PageProjects},
		{key: "site.nav.contact", href: routepath.Contact(locale), page: routepath.PageContact},
	}
}

// PageTitle joins a page heading with the site title.
func PageTitle(page PageContext, heading string) string {
	site := page.t("site.title")
	heading = strings.TrimSpace(heading)
	if heading == "" {
		return site
	}
	return heading + " | " + site
}

// Layout renders the full document around the children in ctx.
func Layout(title string, page PageContext) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		locale := page.locale()
		h.raw("<!DOCTYPE html>")
		h.open("html", "lang", locale, "data-effects", string(page.effects()))
		h.raw("<head>")
		h.raw(`<meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.element("title", title)
		h.open("meta", "name", "description", "content", page.t("site.description"))
		writeAlternates(h, page)
		h.open("link", "rel", "stylesheet", "href", routepath.StaticPrefix+"site.css")
		h.raw("</head><body>")
		h.link("#main", page.t("site.skip_to_content"), "class", "skip-link")
		writeHeader(h, page)
		h.open("main", "id", "main")
		h.render(ctx, templ.GetChildren(ctx))
		h.close("main")
		h.open("footer", "class", "site-footer")
		h.element("p", page.t("site.footer.rights", page.year()))
		h.close("footer")
		for _, script := range []string{"viewport.js", "contact.js"} {
			h.open("script", "src", routepath.StaticPrefix+script, "defer", "defer")
			h.close("script")
		}
		h.raw("</body></html>")
		return h.err
	})
}

func writeAlternates(h *htmlWriter, page PageContext) {
	base := strings.TrimRight(page.BaseURL, "/")
	h.open("link", "rel", "canonical", "href", base+page.Path)
	for _, locale := range platformi18n.Supported() {
		href := base + routepath.SwitchLocale(page.Path, locale.String())
		h.open("link", "rel", "alternate", "hreflang", locale.String(), "href", href)
	}
	defaultHref := base + routepath.SwitchLocale(page.Path, platformi18n.Default().String())
	h.open("link", "rel", "alternate", "hreflang", "x-default", "href", defaultHref)
}

func writeHeader(h *htmlWriter, page PageContext) {
	locale := page.locale()
	current := currentPage(page.Path)
	h.open("header", "class", "site-header")
	h.open("nav", "class", "site-nav")
	for _, item := range navItems(locale) {
		ariaCurrent := ""
		if item.page == current {
			ariaCurrent = "page"
		}
		h.link(item.href, page.t(item.key), "aria-current", ariaCurrent)
	}
	h.close("nav")
	h.open("nav", "class", "language-switcher", "aria-label", page.t("site.language.label"))
	for _, option := range platformi18n.Supported() {
		if option.String() == locale {
			h.element("span", platformi18n.DisplayName(option), "lang", option.String(), "aria-current", "true")
			continue
		}
		h.link(routepath.SwitchLocale(page.Path, option.String()), platformi18n.DisplayName(option),
			"lang", option.String(), "hreflang", option.String())
	}
	h.close("nav")
	h.close("header")
}

// currentPage returns the top-level page for a localized path.
func currentPage(path string) routepath.Page {
	trimmed := strings.TrimPrefix(path, "/")
	_, rest, _ := strings.Cut(trimmed, "/")
	section, _, _ := strings.Cut(rest, "/")
	return routepath.Page(section)
}
