package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
	"github.com/ezmnysniper7/portfolio/internal/content"
	"github.com/ezmnysniper7/portfolio/internal/services/contact"
	"github.com/ezmnysniper7/portfolio/internal/services/web/routepath"
)

// ContactPage renders the contact form and direct links.
func ContactPage(page PageContext, profile content.Profile) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.open("section", "class", "contact")
		h.element("h1", page.t("contact.heading"))
		h.element("p", page.t("contact.intro"), "class", "lead")

		h.open("form", "id", "contact-form", "class", "contact-form",
			"method", "post", "action", routepath.ContactAPI,
			"data-locale", page.locale(),
			"data-sending", page.t("contact.form.sending"),
			"data-success", page.t("contact.form.success"),
			"data-failure", page.t("contact.form.failure"),
		)
		writeField(h, "contact-name", "name", "text", page.t("contact.form.name"), contact.MaxNameRunes, "name")
		writeField(h, "contact-email", "email", "email", page.t("contact.form.email"), contact.MaxEmailRunes, "email")
		h.open("label", "for", "contact-message")
		h.text(page.t("contact.form.message"))
		h.close("label")
		h.open("textarea", "id", "contact-message", "name", "message", "rows", "6",
			"maxlength", strconv.Itoa(contact.MaxMessageRunes), "required", "required")
		h.close("textarea")
		h.element("button", page.t("contact.form.submit"), "type", "submit", "class", "button")
		h.element("p", "", "class", "form-status", "role", "status", "aria-live", "polite")
		h.close("form")

		h.open("aside", "class", "contact-direct")
		h.element("h2", page.t("contact.direct.heading"))
		h.open("ul")
		if profile.Email != "" {
			h.open("li")
			h.link("mailto:"+profile.Email, profile.Email)
			h.close("li")
		}
		for _, social := range []struct{ label, href string }{
			{label: "GitHub", href: profile.Social.GitHub},
			{label: "LinkedIn", href: profile.Social.LinkedIn},
			{label: "Twitter", href: profile.Social.Twitter},
			{label: "Website", href: profile.Social.Website},
		} {
			if social.href == "" {
				continue
			}
			h.open("li")
			h.externalLink(social.href, social.label)
			h.close("li")
		}
		h.close("ul")
		if profile.Location != "" {
			h.element("p", profile.Location, "class", "location")
		}
		h.close("aside")
		h.close("section")
		return h.err
	})
}

func writeField(h *htmlWriter, id, name, kind, label string, maxRunes int, autocomplete string) {
	h.open("label", "for", id)
	h.text(label)
	h.close("label")
	h.open("input", "id", id, "name", name, "type", kind,
		"maxlength", strconv.Itoa(maxRunes), "autocomplete", autocomplete, "required", "required")
}
