package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/validkit/pkg/validator"
)

// DefaultLanguage is used when no preference matches a loaded language.
const DefaultLanguage = "en"

//go:embed translations/*.yaml
var embedded embed.FS

// Translator renders validation messages in the loaded languages.
// It is immutable after construction and safe for concurrent use.
type Translator struct {
	translations  map[string]map[string]string
	tags          []language.Tag
	matcher       language.Matcher
	defaultLang   string
	fallbackToKey bool
	logger        *slog.Logger
}

// Option configures a Translator.
type Option func(*Translator)

// WithDefaultLanguage sets the language used when nothing else matches.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		t.defaultLang = lang
	}
}

// WithFallbackToKey controls whether T returns the key for missing
// translations. When disabled T returns an empty string.
func WithFallbackToKey(fallback bool) Option {
	return func(t *Translator) {
		t.fallbackToKey = fallback
	}
}

// WithLogger logs missing translations at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Translator) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// New loads the bundled translations.
func New(opts ...Option) (*Translator, error) {
	return NewFromFS(embedded, "translations", opts...)
}

// NewFromFS loads every <lang>.yaml or <lang>.yml file in dir, where lang is
// a BCP 47 tag such as "de" or "pt-BR".
func NewFromFS(fsys fs.FS, dir string, opts ...Option) (*Translator, error) {
	t := &Translator{
		translations:  make(map[string]map[string]string),
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(t)
	}

	def, err := language.Parse(t.defaultLang)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidLanguage, t.defaultLang, err)
	}
	t.defaultLang = def.String()

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}

	for _, entry := range entries {
		ext := path.Ext(entry.Name())
		if entry.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}

		name := strings.TrimSuffix(entry.Name(), ext)
		tag, err := language.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrInvalidLanguage, name, err)
		}

		content, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, err)
		}
		messages, err := parseYAML(content)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", entry.Name(), err)
		}
		t.translations[tag.String()] = messages
	}

	if len(t.translations) == 0 {
		return nil, ErrNoTranslations
	}
	if _, ok := t.translations[t.defaultLang]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrDefaultLangNotLoaded, t.defaultLang)
	}

	// the matcher falls back to its first tag
	t.tags = []language.Tag{def}
	for _, lang := range t.SupportedLanguages() {
		if lang != t.defaultLang {
			t.tags = append(t.tags, language.MustParse(lang))
		}
	}
	t.matcher = language.NewMatcher(t.tags)

	return t, nil
}

// SupportedLanguages returns the loaded language tags, sorted.
func (t *Translator) SupportedLanguages() []string {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	slices.Sort(langs)
	return langs
}

// Match returns the loaded language closest to the given preferences. Each
// preference may be a tag ("de-AT") or an Accept-Language value
// ("fr-CH, fr;q=0.9, en;q=0.8").
func (t *Translator) Match(preferences ...string) string {
	var wanted []language.Tag
	for _, pref := range preferences {
		tags, _, err := language.ParseAcceptLanguage(pref)
		if err != nil {
			continue
		}
		wanted = append(wanted, tags...)
	}
	if len(wanted) == 0 {
		return t.defaultLang
	}

	_, idx, conf := t.matcher.Match(wanted...)
	if conf == language.No {
		return t.defaultLang
	}
	return t.tags[idx].String()
}

func (t *Translator) lookup(lang, key string) (string, bool) {
	if _, ok := t.translations[lang]; !ok {
		lang = t.Match(lang)
	}
	if msg, ok := t.translations[lang][key]; ok {
		return msg, true
	}
	msg, ok := t.translations[t.defaultLang][key]
	return msg, ok
}

// T translates key into lang, substituting %{name} placeholders from params.
// Missing keys fall back to the default language, then to the key itself.
func (t *Translator) T(lang, key string, params map[string]any) string {
	msg, ok := t.lookup(lang, key)
	if !ok {
		t.logger.Debug("i18n: translation not found", slog.String("lang", lang), slog.String("key", key))
		if !t.fallbackToKey {
			return ""
		}
		msg = key
	}
	return namedSprintf(msg, params)
}

// Error renders a validation error in lang. Errors without a known
// translation key keep their own message.
func (t *Translator) Error(lang string, e validator.ValidationError) string {
	if e.TranslationKey == "" {
		return e.Message
	}
	msg, ok := t.lookup(lang, e.TranslationKey)
	if !ok {
		return e.Message
	}
	return namedSprintf(msg, e.TranslationValues)
}

// Errors renders every error in lang, grouped by field.
func (t *Translator) Errors(lang string, errs validator.ValidationErrors) map[string][]string {
	out := make(map[string][]string, len(errs))
	for _, e := range errs {
		out[e.Field] = append(out[e.Field], t.Error(lang, e))
	}
	return out
}

// Placeholders have the form %{name}
var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// namedSprintf replaces %{name} placeholders; unknown names are kept as is.
func namedSprintf(tmpl string, params map[string]any) string {
	if len(params) == 0 {
		return tmpl
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return fmt.Sprint(val)
		}
		return match
	})
}
