package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
	"github.com/ezmnysniper7/portfolio/internal/content"
)

// AboutView is the data behind the about page.
type AboutView struct {
	Profile    content.Profile
	Experience []content.Experience
	Skills     []content.SkillGroup
}

// AboutPage renders the profile, the experience timeline and skill levels.
func AboutPage(page PageContext, view AboutView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		profile := view.Profile

		h.open("section", "class", "profile")
		h.element("h1", page.t("about.heading"))
		h.element("p", profile.Description, "class", "lead")
		for _, paragraph := range profile.Summary {
			h.element("p", paragraph)
		}
		h.list("focus-list", profile.Focus)
		if profile.Education.School != "" {
			h.open("p", "class", "education")
			h.element("strong", profile.Education.Degree)
			h.text(", " + profile.Education.School)
			if profile.Education.Location != "" {
				h.text(" · " + profile.Education.Location)
			}
			h.close("p")
		}
		if profile.ResumeURL != "" {
			h.link(profile.ResumeURL, page.t("about.resume"), "class", "button", "download", "download")
		}
		h.close("section")

		if len(view.Experience) > 0 {
			h.open("section", "class", "experience", "aria-labelledby", "experience-heading")
			h.element("h2", page.t("about.experience.heading"), "id", "experience-heading")
			h.open("ol", "class", "timeline")
			for _, entry := range view.Experience {
				writeExperience(h, page, entry)
			}
			h.close("ol")
			h.close("section")
		}

		if len(view.Skills) > 0 {
			h.open("section", "class", "skills", "aria-labelledby", "about-skills-heading")
			h.element("h2", page.t("about.skills.heading"), "id", "about-skills-heading")
			for _, group := range view.Skills {
				h.open("div", "class", "skill-group")
				h.element("h3", group.Category)
				h.open("ul", "class", "skill-list")
				for _, skill := range group.Skills {
					h.open("li", "data-level", string(skill.Level))
					h.element("span", skill.Name, "class", "skill-name")
					h.element("span", page.t("about.level."+string(skill.Level)), "class", "skill-level")
					if skill.YearsOfExperience > 0 {
						h.element("span", strconv.Itoa(skill.YearsOfExperience)+"+", "class", "skill-years")
					}
					h.close("li")
				}
				h.close("ul")
				h.close("div")
			}
			h.close("section")
		}
		return h.err
	})
}

func writeExperience(h *htmlWriter, page PageContext, entry content.Experience) {
	h.open("li", "class", "timeline-entry", "id", entry.ID)
	h.open("header")
	h.element("h3", entry.Position)
	h.open("p", "class", "company")
	if entry.CompanyURL != "" {
		h.externalLink(entry.CompanyURL, entry.Company)
	} else {
		h.text(entry.Company)
	}
	if entry.Location != "" {
		h.text(" · " + entry.Location)
	}
	h.close("p")
	h.open("p", "class", "period")
	h.element("time", page.dateRange(entry.StartDate, entry.EndDate))
	h.element("span", page.duration(entry.StartDate, entry.EndDate), "class", "duration")
	h.element("span", page.t("about.type."+string(entry.Type)), "class", "badge")
	h.close("p")
	h.close("header")
	h.element("p", entry.Description)
	if len(entry.Responsibilities) > 0 {
		h.element("h4", page.t("about.responsibilities"))
		h.list("", entry.Responsibilities)
	}
	if len(entry.Achievements) > 0 {
		h.element("h4", page.t("about.achievements"))
		h.list("", entry.Achievements)
	}
	h.list("tag-list", entry.TechStack)
	h.close("li")
}
