// Package i18n holds the UI chrome strings (buttons, headings, labels) for
// every supported locale. Project content itself is not translated.
package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

// BaseLocale is the source locale every other catalog must cover.
const BaseLocale = "fr"

// ErrMissingKey is returned when a locale lacks a key defined by the base locale.
var ErrMissingKey = errors.New("missing message key")

//go:embed locales/*.yaml
var embeddedLocales embed.FS

type localeFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

// Bundle is the set of loaded catalogs.
type Bundle struct {
	base     language.Tag
	tags     []language.Tag
	messages map[language.Tag]map[string]string
	catalog  *catalog.Builder
	matcher  language.Matcher
}

var (
	defaultOnce   sync.Once
	defaultBundle *Bundle
	defaultErr    error
)

// Default returns the embedded bundle, loaded once.
func Default() (*Bundle, error) {
	defaultOnce.Do(func() {
		defaultBundle, defaultErr = Embedded()
	})
	return defaultBundle, defaultErr
}

// Embedded loads the catalogs compiled into the binary.
func Embedded() (*Bundle, error) {
	return Load(embeddedLocales)
}

// Load reads locales/*.yaml from fsys.
func Load(fsys fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locales: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no locale files found")
	}
	sort.Strings(paths)

	b := &Bundle{
		base:     language.MustParse(BaseLocale),
		messages: make(map[language.Tag]map[string]string),
		catalog:  catalog.NewBuilder(catalog.Fallback(language.MustParse(BaseLocale))),
	}

	for _, path := range paths {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		var file localeFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		tag, err := language.Parse(file.Locale)
		if err != nil {
			return nil, fmt.Errorf("%s: locale %q: %w", path, file.Locale, err)
		}
		if _, dup := b.messages[tag]; dup {
			return nil, fmt.Errorf("%s: duplicate locale %s", path, tag)
		}
		for key, msg := range file.Messages {
			if err := b.catalog.SetString(tag, key, msg); err != nil {
				return nil, fmt.Errorf("%s: set %s: %w", path, key, err)
			}
		}
		b.messages[tag] = file.Messages
		b.tags = append(b.tags, tag)
	}

	baseMessages, ok := b.messages[b.base]
	if !ok {
		return nil, fmt.Errorf("base locale %s not found", BaseLocale)
	}
	for tag, msgs := range b.messages {
		for key := range baseMessages {
			if _, ok := msgs[key]; !ok {
				return nil, fmt.Errorf("locale %s: %s: %w", tag, key, ErrMissingKey)
			}
		}
	}

	// The base locale goes first so the matcher falls back to it.
	sort.SliceStable(b.tags, func(i, j int) bool {
		return b.tags[i] == b.base && b.tags[j] != b.base
	})
	b.matcher = language.NewMatcher(b.tags)
	return b, nil
}

// Tags returns the supported locales, base first.
func (b *Bundle) Tags() []language.Tag {
	return append([]language.Tag(nil), b.tags...)
}

// Keys returns every message key of the base locale, sorted.
func (b *Bundle) Keys() []string {
	keys := make([]string, 0, len(b.messages[b.base]))
	for k := range b.messages[b.base] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Supported reports whether tag has its own catalog.
func (b *Bundle) Supported(tag language.Tag) bool {
	_, ok := b.messages[tag]
	return ok
}

// Resolve picks the locale for a request: a valid override wins, then the
// Accept-Language header, then fallback, then the base locale.
func (b *Bundle) Resolve(fallback, override, acceptLanguage string) language.Tag {
	if tag, ok := b.match(override); ok {
		return tag
	}
	if tags, _, err := language.ParseAcceptLanguage(acceptLanguage); err == nil && len(tags) > 0 {
		if _, idx, conf := b.matcher.Match(tags...); conf != language.No {
			return b.tags[idx]
		}
	}
	if tag, ok := b.match(fallback); ok {
		return tag
	}
	return b.base
}

func (b *Bundle) match(code string) (language.Tag, bool) {
	code = strings.TrimSpace(code)
	if code == "" {
		return language.Und, false
	}
	tag, err := language.Parse(code)
	if err != nil {
		return language.Und, false
	}
	_, idx, conf := b.matcher.Match(tag)
	if conf == language.No {
		return language.Und, false
	}
	return b.tags[idx], true
}

// Printer returns a message printer for tag.
func (b *Bundle) Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(b.catalog))
}

// T translates key for tag, formatting args into the message.
func (b *Bundle) T(tag language.Tag, key string, args ...any) string {
	return b.Printer(tag).Sprintf(key, args...)
}
