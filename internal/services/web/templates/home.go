package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/ezmnysniper7/portfolio/internal/content"
	"github.com/ezmnysniper7/portfolio/internal/services/web/routepath"
)

// HomeView is the data behind the landing page.
type HomeView struct {
	Profile  content.Profile
	Featured []content.Project
	Skills   []content.SkillGroup
}

// HomePage renders the hero, featured projects and a skills overview.
func HomePage(page PageContext, view HomeView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		locale := page.locale()
		profile := view.Profile

		h.open("section", "class", "hero")
		h.element("p", page.t("home.greeting"), "class", "hero-greeting")
		h.element("h1", profile.Name)
		h.element("p", profile.Title, "class", "hero-title")
		h.element("p", profile.Tagline, "class", "hero-tagline")
		if profile.AvailableForWork {
			h.element("p", page.t("home.available"), "class", "badge badge-available")
		}
		h.open("div", "class", "hero-actions")
		h.link(routepath.Projects(locale), page.t("home.cta.projects"), "class", "button")
		h.link(routepath.Contact(locale), page.t("home.cta.contact"), "class", "button button-secondary")
		h.close("div")
		h.close("section")

		if len(view.Featured) > 0 {
			h.open("section", "class", "featured", "aria-labelledby", "featured-heading")
			h.element("h2", page.t("home.featured.heading"), "id", "featured-heading")
			h.open("div", "class", "project-grid")
			for _, project := range view.Featured {
				writeProjectCard(h, page, project)
			}
			h.close("div")
			h.close("section")
		}

		if len(view.Skills) > 0 {
			h.open("section", "class", "skills-overview", "aria-labelledby", "skills-heading")
			h.element("h2", page.t("home.skills.heading"), "id", "skills-heading")
			for _, group := range view.Skills {
				h.open("div", "class", "skill-group")
				h.element("h3", group.Category)
				names := make([]string, 0, len(group.Skills))
				for _, skill := range group.Skills {
					names = append(names, skill.Name)
				}
				h.list("tag-list", names)
				h.close("div")
			}
			h.close("section")
		}
		return h.err
	})
}
