// Package catalog loads the UI message catalogs embedded in the binary and
// registers them with golang.org/x/text/message.
package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// BaseLocale is the source locale every other catalog is checked against.
const BaseLocale = "en"

type catalogFile struct {
	Locale    string            `yaml:"locale"`
	Namespace string            `yaml:"namespace"`
	Messages  map[string]string `yaml:"messages"`
}

type localeCatalog struct {
	namespaces map[string]map[string]string
	messages   map[string]string
}

// Bundle holds every locale catalog, keyed by locale identifier.
type Bundle struct {
	locales map[string]*localeCatalog
}

//go:embed locales/*/*.yaml
var embeddedFS embed.FS

var defaultBundle = mustLoadAndRegisterEmbedded()

// Default returns the process-wide embedded bundle.
func Default() *Bundle {
	return defaultBundle
}

// LoadEmbedded loads the catalogs compiled into this package.
func LoadEmbedded() (*Bundle, error) {
	return LoadFromFS(embeddedFS)
}

// LoadFromFS loads locales/<locale>/<namespace>.yaml files from catalogFS.
func LoadFromFS(catalogFS fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(catalogFS, "locales/*/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(paths)

	bundle := &Bundle{locales: map[string]*localeCatalog{}}
	for _, p := range paths {
		data, err := fs.ReadFile(catalogFS, p)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", p, err)
		}
		var file catalogFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", p, err)
		}
		if err := bundle.addFile(p, file); err != nil {
			return nil, err
		}
	}

	if !bundle.HasLocale(BaseLocale) {
		return nil, fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}
	return bundle, nil
}

func (b *Bundle) addFile(p string, file catalogFile) error {
	localeFromPath := path.Base(path.Dir(p))
	namespaceFromPath := strings.TrimSuffix(path.Base(p), path.Ext(p))

	locale := strings.TrimSpace(file.Locale)
	if locale == "" {
		return fmt.Errorf("catalog %s: locale is required", p)
	}
	if locale != localeFromPath {
		return fmt.Errorf("catalog %s: locale %q must match path locale %q", p, locale, localeFromPath)
	}
	namespace := strings.TrimSpace(file.Namespace)
	if namespace != namespaceFromPath {
		return fmt.Errorf("catalog %s: namespace %q must match filename %q", p, namespace, namespaceFromPath)
	}
	if len(file.Messages) == 0 {
		return fmt.Errorf("catalog %s: messages are required", p)
	}

	lc, ok := b.locales[locale]
	if !ok {
		lc = &localeCatalog{
			namespaces: map[string]map[string]string{},
			messages:   map[string]string{},
		}
		b.locales[locale] = lc
	}

	scoped := make(map[string]string, len(file.Messages))
	for key, value := range file.Messages {
		key = strings.TrimSpace(key)
		if key == "" {
			return fmt.Errorf("catalog %s: message key cannot be blank", p)
		}
		if !strings.HasPrefix(key, namespace+".") {
			return fmt.Errorf("catalog %s: key %q must start with %q", p, key, namespace+".")
		}
		if _, exists := lc.messages[key]; exists {
			return fmt.Errorf("catalog %s: duplicate key %q in locale %q", p, key, locale)
		}
		lc.messages[key] = value
		scoped[key] = value
	}
	lc.namespaces[namespace] = scoped
	return nil
}

// Register installs every message with x/text/message so printers created
// for a locale's tag can look keys up.
func (b *Bundle) Register() error {
	if b == nil {
		return nil
	}
	for _, locale := range b.Locales() {
		tag, err := language.Parse(locale)
		if err != nil {
			return fmt.Errorf("parse locale tag %q: %w", locale, err)
		}
		messages := b.locales[locale].messages
		keys := make([]string, 0, len(messages))
		for key := range messages {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			if err := message.SetString(tag, key, messages[key]); err != nil {
				return fmt.Errorf("register %s/%s: %w", locale, key, err)
			}
		}
	}
	return nil
}

// HasLocale reports whether the bundle has a catalog for locale.
func (b *Bundle) HasLocale(locale string) bool {
	if b == nil {
		return false
	}
	_, ok := b.locales[locale]
	return ok
}

// Locales returns the sorted locale identifiers.
func (b *Bundle) Locales() []string {
	if b == nil {
		return nil
	}
	out := make([]string, 0, len(b.locales))
	for locale := range b.locales {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// Message returns one message with base-locale fallback.
func (b *Bundle) Message(locale, key string) (string, bool) {
	if b == nil {
		return "", false
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return "", false
	}
	if lc, ok := b.locales[locale]; ok {
		if value, exists := lc.messages[key]; exists {
			return value, true
		}
	}
	if locale != BaseLocale {
		if lc, ok := b.locales[BaseLocale]; ok {
			value, exists := lc.messages[key]
			return value, exists
		}
	}
	return "", false
}

// Keys returns the sorted message keys defined for locale.
func (b *Bundle) Keys(locale string) []string {
	if b == nil {
		return nil
	}
	lc, ok := b.locales[locale]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(lc.messages))
	for key := range lc.messages {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}

// NamespaceMessages returns a copy of one namespace for locale.
func (b *Bundle) NamespaceMessages(locale, namespace string) map[string]string {
	out := map[string]string{}
	if b == nil {
		return out
	}
	lc, ok := b.locales[locale]
	if !ok {
		return out
	}
	for key, value := range lc.namespaces[namespace] {
		out[key] = value
	}
	return out
}

// MissingKeys lists base-locale keys the given locale does not define.
func (b *Bundle) MissingKeys(locale string) []string {
	if b == nil {
		return nil
	}
	target := b.locales[locale]
	var missing []string
	for _, key := range b.Keys(BaseLocale) {
		if target == nil {
			missing = append(missing, key)
			continue
		}
		if _, ok := target.messages[key]; !ok {
			missing = append(missing, key)
		}
	}
	return missing
}

func mustLoadAndRegisterEmbedded() *Bundle {
	bundle, err := LoadEmbedded()
	if err != nil {
		panic(err)
	}
	if err := bundle.Register(); err != nil {
		panic(err)
	}
	return bundle
}
