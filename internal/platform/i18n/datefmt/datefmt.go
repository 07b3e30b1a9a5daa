// Package datefmt renders year-month values and elapsed durations in each
// supported locale's grammar.
//
// Every locale is served by one strategy value; adding a locale means adding
// an entry to strategies. Unknown locales use the default locale's strategy.
package datefmt

import (
	"time"

	"github.com/ezmnysniper7/portfolio/internal/platform/i18n"
)

// Style selects the month rendering.
type Style int

const (
	// Long spells the month out ("September 2024").
	Long Style = iota
	// Short abbreviates the month ("Sep 2024").
	Short
)

// rangeSeparator joins the two ends of a rendered range.
const rangeSeparator = " - "

type strategy struct {
	present  string
	month    func(ym YearMonth, style Style) string
	duration func(months int) string
}

var strategies = map[string]strategy{
	i18n.English.String():           englishStrategy,
	i18n.SimplifiedChinese.String(): chineseStrategy,
}

// format renders ym, or "" for a zero or out-of-range month.
func (s strategy) format(ym YearMonth, style Style, presentLiteral string) string {
	switch {
	case ym.IsPresent():
		if presentLiteral != "" {
			return presentLiteral
		}
		return s.present
	case ym.Month < time.January || ym.Month > time.December:
		return ""
	}
	return s.month(ym, style)
}

func strategyFor(locale string) strategy {
	if s, ok := strategies[locale]; ok {
		return s
	}
	return strategies[i18n.Default().String()]
}

// FormatYearMonth renders value for locale. Present renders as the locale's
// own word for it; templates that need catalog copy use FormatRange.
func FormatYearMonth(value YearMonth, style Style, locale string) string {
	return strategyFor(locale).format(value, style, "")
}

// FormatRange renders "start - end", substituting presentLiteral for an
// open end. An empty presentLiteral uses the locale default. An unset end
// renders the start alone.
func FormatRange(start, end YearMonth, style Style, locale, presentLiteral string) string {
	s := strategyFor(locale)
	from := s.format(start, style, presentLiteral)
	to := s.format(end, style, presentLiteral)
	if from == "" || to == "" {
		return from + to
	}
	return from + rangeSeparator + to
}

// CalculateDuration reports the whole months between start and end,
// resolving Present against the wall clock.
func CalculateDuration(start, end YearMonth, locale string) string {
	return CalculateDurationAt(start, end, locale, time.Now())
}

// CalculateDurationAt is CalculateDuration with an explicit clock.
func CalculateDurationAt(start, end YearMonth, locale string, now time.Time) string {
	return strategyFor(locale).duration(MonthsBetween(start, end, now))
}

// MonthsBetween returns (endY-startY)*12 + (endM-startM). It is negative
// when end precedes start.
func MonthsBetween(start, end YearMonth, now time.Time) int {
	return end.resolve(now).index() - start.resolve(now).index()
}
