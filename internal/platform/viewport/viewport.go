// Package viewport derives from client hints whether a request renders at
// mobile width so pages can drop expensive visual effects on small screens.
package viewport

import (
	"net/http"
	"strconv"
	"strings"
)

// Breakpoint is the first width, in CSS pixels, treated as desktop.
const Breakpoint = 768

// Client hint headers consulted by FromRequest.
const (
	HeaderViewportWidth = "Sec-CH-Viewport-Width"
	HeaderUAMobile      = "Sec-CH-UA-Mobile"
	// AcceptCH is the Accept-CH value that requests both hints.
	AcceptCH = HeaderViewportWidth + ", " + HeaderUAMobile
)

// IsMobile reports whether width falls below Breakpoint.
func IsMobile(width int) bool {
	return width < Breakpoint
}

// Mode is the rendering mode derived from the viewport.
type Mode string

const (
	// Static renders without animated or translucent effects.
	Static Mode = "static"
	// Animated enables the full desktop effects.
	Animated Mode = "animated"
)

// ModeFor maps the mobile flag to a Mode.
func ModeFor(mobile bool) Mode {
	if mobile {
		return Static
	}
	return Animated
}

// FromRequest guesses the mode from client hints. Requests without hints
// render as mobile, matching the first paint before any width is known.
func FromRequest(r *http.Request) Mode {
	if r == nil {
		return Static
	}
	if raw := strings.TrimSpace(r.Header.Get(HeaderViewportWidth)); raw != "" {
		if width, err := strconv.ParseFloat(raw, 64); err == nil && width > 0 {
			return ModeFor(IsMobile(int(width)))
		}
	}
	switch strings.TrimSpace(r.Header.Get(HeaderUAMobile)) {
	case "?0":
		return Animated
	default:
		return Static
	}
}
