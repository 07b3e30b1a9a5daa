// Package templates renders the site's HTML components.
package templates

import (
	"fmt"
	"strconv"
	"time"

	platformi18n "github.com/ezmnysniper7/portfolio/internal/platform/i18n"
	"github.com/ezmnysniper7/portfolio/internal/platform/i18n/datefmt"
	"github.com/ezmnysniper7/portfolio/internal/platform/viewport"
	"golang.org/x/text/message"
)

// Localizer provides translated strings for templ components.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// PageContext carries request-scoped values every page component reads.
type PageContext struct {
	Locale  platformi18n.Locale
	Loc     Localizer
	Path    string
	BaseURL string
	Effects viewport.Mode
	Now     time.Time
}

// T returns a translated string or a key-derived fallback.
func T(loc Localizer, key message.Reference, args ...any) string {
	if loc != nil {
		return loc.Sprintf(key, args...)
	}
	if keyString, ok := key.(string); ok {
		if len(args) > 0 {
			return fmt.Sprintf(keyString, args...)
		}
		return keyString
	}
	return ""
}

func (p PageContext) t(key string, args ...any) string {
	return T(p.Loc, key, args...)
}

func (p PageContext) locale() string {
	if p.Locale == "" {
		return platformi18n.Default().String()
	}
	return p.Locale.String()
}

func (p PageContext) now() time.Time {
	if p.Now.IsZero() {
		return time.Now()
	}
	return p.Now
}

func (p PageContext) effects() viewport.Mode {
	if p.Effects == "" {
		return viewport.Static
	}
	return p.Effects
}

// dateRange renders a timeline range with the catalog's word for Present.
func (p PageContext) dateRange(start, end datefmt.YearMonth) string {
	return datefmt.FormatRange(start, end, datefmt.Short, p.locale(), p.t("date.present"))
}

func (p PageContext) duration(start, end datefmt.YearMonth) string {
	return datefmt.CalculateDurationAt(start, end, p.locale(), p.now())
}

func (p PageContext) year() string {
	return strconv.Itoa(p.now().Year())
}
