package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
	"github.com/ezmnysniper7/portfolio/internal/content"
	"github.com/ezmnysniper7/portfolio/internal/platform/i18n/datefmt"
	"github.com/ezmnysniper7/portfolio/internal/services/web/routepath"
)

// ProjectsView is the data behind the project list.
type ProjectsView struct {
	Projects []content.Project
	Stats    content.ProjectStats
}

// ProjectsPage renders the stats banner and every project card.
func ProjectsPage(page PageContext, view ProjectsView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.open("section", "class", "projects")
		h.element("h1", page.t("projects.heading"))
		h.element("p", page.t("projects.intro"), "class", "lead")

		h.open("dl", "class", "stats")
		for _, stat := range []struct {
			key   string
			value int
		}{
			{key: "projects.stats.total", value: view.Stats.Total},
			{key: "projects.stats.featured", value: view.Stats.Featured},
			{key: "projects.stats.professional", value: view.Stats.Professional},
			{key: "projects.stats.technologies", value: view.Stats.Technologies},
		} {
			h.open("div", "class", "stat")
			h.element("dt", page.t(stat.key))
			h.element("dd", strconv.Itoa(stat.value))
			h.close("div")
		}
		h.close("dl")

		h.open("div", "class", "project-grid")
		for _, project := range view.Projects {
			writeProjectCard(h, page, project)
		}
		h.close("div")
		h.close("section")
		return h.err
	})
}

func writeProjectCard(h *htmlWriter, page PageContext, project content.Project) {
	h.open("article", "class", classes("project-card", featuredClass(project)), "data-category", string(project.Category))
	h.open("h3")
	h.link(routepath.Project(page.locale(), project.Slug), project.Title)
	h.close("h3")
	h.open("p", "class", "project-meta")
	h.element("span", page.t("projects.category."+string(project.Category)), "class", "badge")
	if project.Featured {
		h.element("span", page.t("projects.featured_badge"), "class", "badge badge-featured")
	}
	h.close("p")
	h.element("p", project.Description)
	h.list("tag-list", project.TechStack)
	h.close("article")
}

func featuredClass(project content.Project) string {
	if project.Featured {
		return "project-card-featured"
	}
	return ""
}

// ProjectDetailPage renders one project.
func ProjectDetailPage(page PageContext, project content.Project) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.open("article", "class", "project-detail")
		h.link(routepath.Projects(page.locale()), page.t("projects.detail.back"), "class", "back-link")
		h.element("h1", project.Title)
		h.element("p", project.Description, "class", "lead")
		if project.ImageURL != "" {
			h.open("img", "src", project.ImageURL, "alt", project.Title, "loading", "lazy")
		}

		h.open("dl", "class", "project-facts")
		if project.Role != "" {
			h.element("dt", page.t("projects.detail.role"))
			h.element("dd", project.Role)
		}
		if project.StartDate != nil {
			end := datefmt.Present
			if project.EndDate != nil {
				end = *project.EndDate
			}
			h.element("dt", page.t("projects.detail.timeline"))
			h.element("dd", page.dateRange(*project.StartDate, end))
		}
		h.close("dl")

		if project.LongDescription != "" {
			h.element("p", project.LongDescription)
		}
		writeDetailList(h, page.t("projects.detail.techstack"), "tag-list", project.TechStack)
		writeDetailList(h, page.t("projects.detail.responsibilities"), "", project.Responsibilities)
		writeDetailList(h, page.t("projects.detail.highlights"), "", project.Highlights)
		writeDetailList(h, page.t("projects.detail.metrics"), "metrics", project.Metrics)

		if project.GitHubURL != "" || project.DemoURL != "" {
			h.open("p", "class", "project-links")
			if project.GitHubURL != "" {
				h.externalLink(project.GitHubURL, page.t("projects.detail.github"))
			}
			if project.DemoURL != "" {
				h.externalLink(project.DemoURL, page.t("projects.detail.demo"))
			}
			h.close("p")
		}
		h.close("article")
		return h.err
	})
}

func writeDetailList(h *htmlWriter, heading, class string, items []string) {
	if len(items) == 0 {
		return
	}
	h.element("h2", heading)
	h.list(class, items)
}
