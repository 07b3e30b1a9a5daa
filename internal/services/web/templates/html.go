package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// htmlWriter keeps the first write error so components can emit markup
// without checking every call.
type htmlWriter struct {
	w   io.Writer
	err error
}

func newHTMLWriter(w io.Writer) *htmlWriter {
	return &htmlWriter{w: w}
}

func (h *htmlWriter) raw(parts ...string) {
	for _, part := range parts {
		if h.err != nil {
			return
		}
		_, h.err = io.WriteString(h.w, part)
	}
}

func (h *htmlWriter) text(value string) {
	h.raw(templ.EscapeString(value))
}

// open writes a start tag. attrs alternate name and value; empty values are
// skipped.
func (h *htmlWriter) open(tag string, attrs ...string) {
	h.raw("<", tag)
	for i := 0; i+1 < len(attrs); i += 2 {
		if attrs[i+1] == "" {
			continue
		}
		h.raw(" ", attrs[i], `="`, templ.EscapeString(attrs[i+1]), `"`)
	}
	h.raw(">")
}

func (h *htmlWriter) close(tag string) {
	h.raw("</", tag, ">")
}

// element writes tag around escaped text.
func (h *htmlWriter) element(tag, value string, attrs ...string) {
	h.open(tag, attrs...)
	h.text(value)
	h.close(tag)
}

func (h *htmlWriter) link(href, label string, attrs ...string) {
	h.element("a", label, append([]string{"href", href}, attrs...)...)
}

func (h *htmlWriter) externalLink(href, label string) {
	h.link(href, label, "rel", "noopener noreferrer", "target", "_blank")
}

func (h *htmlWriter) list(class string, items []string) {
	if len(items) == 0 {
		return
	}
	h.open("ul", "class", class)
	for _, item := range items {
		h.element("li", item)
	}
	h.close("ul")
}

func (h *htmlWriter) render(ctx context.Context, c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(ctx, h.w)
}

func classes(names ...string) string {
	kept := make([]string, 0, len(names))
	for _, name := range names {
		if name = strings.TrimSpace(name); name != "" {
			kept = append(kept, name)
		}
	}
	return strings.Join(kept, " ")
}
