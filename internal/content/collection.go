package content

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

// Localized maps locale identifiers to a value, with a designated default
// used when a locale has no entry.
type Localized[V any] struct {
	defaultLocale string
	entries       map[string]V
}

// LocalizedCollection is a Localized ordered sequence.
type LocalizedCollection[T any] = Localized[[]T]

// NewLocalized builds a Localized. The default locale must have an entry.
func NewLocalized[V any](defaultLocale string, entries map[string]V) (Localized[V], error) {
	if _, ok := entries[defaultLocale]; !ok {
		return Localized[V]{}, fmt.Errorf("default locale %q has no entry", defaultLocale)
	}
	copied := make(map[string]V, len(entries))
	for locale, value := range entries {
		copied[locale] = value
	}
	return Localized[V]{defaultLocale: defaultLocale, entries: copied}, nil
}

// Get returns the entry for locale, or the default locale's entry.
func (l Localized[V]) Get(locale string) V {
	if value, ok := l.entries[locale]; ok {
		return value
	}
	return l.entries[l.defaultLocale]
}

// Exact returns the entry for locale without fallback.
func (l Localized[V]) Exact(locale string) (V, bool) {
	value, ok := l.entries[locale]
	return value, ok
}

// DefaultLocale returns the fallback locale.
func (l Localized[V]) DefaultLocale() string {
	return l.defaultLocale
}

// Locales returns the sorted locales that have an entry.
func (l Localized[V]) Locales() []string {
	out := make([]string, 0, len(l.entries))
	for locale := range l.entries {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// CheckKeys verifies that key is unique and non-empty within each locale's
// sequence and that every locale carries exactly the default locale's keys.
func CheckKeys[T any](c Localized[[]T], key func(T) string) error {
	reference := map[string]bool{}
	for _, locale := range c.Locales() {
		seen := map[string]bool{}
		for i, item := range c.entries[locale] {
			k := key(item)
			if strings.TrimSpace(k) == "" {
				return fmt.Errorf("locale %s: entry %d has empty key", locale, i)
			}
			if seen[k] {
				return fmt.Errorf("locale %s: duplicate key %q", locale, k)
			}
			seen[k] = true
		}
		if locale == c.defaultLocale {
			reference = seen
		}
	}

	for _, locale := range c.Locales() {
		if locale == c.defaultLocale {
			continue
		}
		have := keySet(c.entries[locale], key)
		var missing, extra []string
		for k := range reference {
			if !have[k] {
				missing = append(missing, k)
			}
		}
		for k := range have {
			if !reference[k] {
				extra = append(extra, k)
			}
		}
		if len(missing) > 0 || len(extra) > 0 {
			slices.Sort(missing)
			slices.Sort(extra)
			return fmt.Errorf("locale %s keys differ from %s: missing %v, extra %v", locale, c.defaultLocale, missing, extra)
		}
	}
	return nil
}

func keySet[T any](items []T, key func(T) string) map[string]bool {
	out := make(map[string]bool, len(items))
	for _, item := range items {
		out[key(item)] = true
	}
	return out
}
