// Package i18n defines the closed set of locales the portfolio serves.
//
// Validation here is strict: a candidate is either an exact member of the
// set or it is not. Callers that want graceful degradation (content lookup)
// apply the default themselves; routing treats a miss as not-found.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Locale identifies a supported language/region, e.g. "en" or "zh-CN".
type Locale string

const (
	// English is the default locale.
	English Locale = "en"
	// SimplifiedChinese is the zh-CN locale.
	SimplifiedChinese Locale = "zh-CN"
)

type localeInfo struct {
	locale      Locale
	tag         language.Tag
	displayName string
}

// registry order is significant: the first entry is the default and the
// fallback for Accept-Language matching. Tags are parsed from the locale id
// so message printers find the catalogs registered under the same id;
// language.SimplifiedChinese is zh-Hans and would miss zh-CN.
var registry = []localeInfo{
	{locale: English, tag: language.MustParse(string(English)), displayName: "English"},
	{locale: SimplifiedChinese, tag: language.MustParse(string(SimplifiedChinese)), displayName: "简体中文"},
}

var matcher = newMatcher()

func newMatcher() language.Matcher {
	tags := make([]language.Tag, 0, len(registry))
	for _, info := range registry {
		tags = append(tags, info.tag)
	}
	return language.NewMatcher(tags)
}

// String returns the locale identifier.
func (l Locale) String() string { return string(l) }

// Default returns the designated default locale.
func Default() Locale {
	return registry[0].locale
}

// Supported returns every supported locale in registry order.
func Supported() []Locale {
	out := make([]Locale, 0, len(registry))
	for _, info := range registry {
		out = append(out, info.locale)
	}
	return out
}

// SupportedStrings returns Supported as plain strings.
func SupportedStrings() []string {
	out := make([]string, 0, len(registry))
	for _, info := range registry {
		out = append(out, string(info.locale))
	}
	return out
}

// IsSupported reports whether candidate is exactly a supported locale.
// Matching is case-sensitive: "zh-cn" is not "zh-CN".
func IsSupported(candidate string) bool {
	_, ok := lookup(candidate)
	return ok
}

// Resolve returns candidate as a Locale when supported. It never
// substitutes the default.
func Resolve(candidate string) (Locale, bool) {
	info, ok := lookup(candidate)
	if !ok {
		return "", false
	}
	return info.locale, true
}

// Tag returns the language tag for a locale, or the default locale's tag.
func Tag(l Locale) language.Tag {
	if info, ok := lookup(string(l)); ok {
		return info.tag
	}
	return registry[0].tag
}

// DisplayName returns the locale's self-name ("English", "简体中文").
func DisplayName(l Locale) string {
	if info, ok := lookup(string(l)); ok {
		return info.displayName
	}
	return string(l)
}

// Match picks the supported locale that best serves an Accept-Language
// header value. Empty or unparsable headers yield the default.
func Match(acceptLanguage string) Locale {
	acceptLanguage = strings.TrimSpace(acceptLanguage)
	if acceptLanguage == "" {
		return Default()
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Default()
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No || index < 0 || index >= len(registry) {
		return Default()
	}
	return registry[index].locale
}

func lookup(candidate string) (localeInfo, bool) {
	for _, info := range registry {
		if string(info.locale) == candidate {
			return info, true
		}
	}
	return localeInfo{}, false
}
