package i18n

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/cartkit/pkg/logger"
	"github.com/dmitrymomot/cartkit/pkg/validator"
)

// DefaultLanguage is used when no language is configured or detected.
const DefaultLanguage = "en"

// Translator renders messages from loaded catalogs.
type Translator struct {
	translations   map[string]map[string]any
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger

	langs   []string
	matcher language.Matcher
}

// NewTranslator loads translations from source.
func NewTranslator(ctx context.Context, source Source, opts ...Option) (*Translator, error) {
	if source == nil {
		return nil, ErrNilSource
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        logger.Discard(),
	}
	for _, opt := range opts {
		opt(t)
	}

	translations, err := source.Load(ctx)
	if err != nil {
		return nil, err
	}
	for lang, messages := range translations {
		if lang == "" || messages == nil {
			return nil, fmt.Errorf("%w: empty catalog for language %q", ErrNoTranslations, lang)
		}
	}
	t.translations = translations

	// The default language goes first so the matcher falls back to it.
	t.langs = []string{t.defaultLang}
	for _, lang := range t.SupportedLanguages() {
		if lang != t.defaultLang {
			t.langs = append(t.langs, lang)
		}
	}
	tags := make([]language.Tag, len(t.langs))
	for i, lang := range t.langs {
		tags[i] = language.Make(lang)
	}
	t.matcher = language.NewMatcher(tags)

	t.logger.InfoContext(ctx, "translations loaded",
		logger.Component("i18n"),
		slog.Any("languages", t.SupportedLanguages()),
	)
	return t, nil
}

// NewDefault creates a Translator over the embedded catalogs.
func NewDefault(ctx context.Context, opts ...Option) (*Translator, error) {
	return NewTranslator(ctx, Embedded(), opts...)
}

// SupportedLanguages returns the sorted language codes that have catalogs.
func (t *Translator) SupportedLanguages() []string {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	slices.Sort(langs)
	return langs
}

// Match picks the best supported language for an Accept-Language style
// preference list such as "es-MX,es;q=0.9,en;q=0.5". Unparseable or
// unmatched input yields the default language.
func (t *Translator) Match(preferences string) string {
	prefs, _, err := language.ParseAcceptLanguage(preferences)
	if err != nil || len(prefs) == 0 {
		return t.defaultLang
	}
	_, idx, confidence := t.matcher.Match(prefs...)
	if confidence == language.No {
		return t.defaultLang
	}
	return t.langs[idx]
}

// HasTranslation reports whether lang has a message under key.
func (t *Translator) HasTranslation(lang, key string) bool {
	messages, ok := t.translations[lang]
	if !ok {
		return false
	}
	_, ok = lookup(messages, key)
	return ok
}

// T translates key for lang. Arguments are key/value pairs substituted into
// %{key} placeholders:
//
//	tr.T("en", "validation.required", "field", "name") // "name is required"
//
// When the message is missing T returns the key, or an empty string if
// fallback to key is disabled.
func (t *Translator) T(lang, key string, args ...string) string {
	if msg, ok := t.message(lang, key); ok {
		return sprintf(msg, args)
	}
	if t.fallbackToKey {
		return sprintf(key, args)
	}
	return ""
}

// Td translates key for lang, returning defaultValue when it is missing.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	if msg, ok := t.message(lang, key); ok {
		return sprintf(msg, args)
	}
	return sprintf(defaultValue, args)
}

// Tc translates key using the locale stored in ctx by SetLocale.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	return t.T(GetLocale(ctx), key, args...)
}

// Catalog returns a copy of the top-level messages for lang.
func (t *Translator) Catalog(lang string) (map[string]any, error) {
	messages, ok := t.translations[lang]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLanguageNotSupported, lang)
	}
	return maps.Clone(messages), nil
}

func (t *Translator) message(lang, key string) (string, bool) {
	messages, ok := t.translations[lang]
	if !ok {
		t.missing("language not supported", lang, key)
		return "", false
	}
	val, ok := lookup(messages, key)
	if !ok {
		t.missing("translation not found", lang, key)
		return "", false
	}
	switch v := val.(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	default:
		t.missing("translation is not a string", lang, key)
		return "", false
	}
}

func (t *Translator) missing(msg, lang, key string) {
	if t.missingLogMode {
		t.logger.Warn(msg, logger.Component("i18n"), logger.Lang(lang), slog.String("key", key))
	}
}

// lookup walks a message tree with a dot-separated key.
func lookup(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m
	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return val, true
		}
		next, ok := val.(map[string]any)
		if !ok {
			return nil, false
		}
		current = next
	}
	return nil, false
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// sprintf replaces %{name} placeholders with values from key/value pairs.
// Unknown placeholders are left untouched; an odd trailing argument is
// ignored.
func sprintf(tmpl string, args []string) string {
	if len(args) < 2 {
		return tmpl
	}
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}

var kindKeys = []struct {
	kind error
	key  string
}{
	{validator.ErrNotFound, "errors.not_found"},
	{validator.ErrInvalidType, "errors.invalid_type"},
	{validator.ErrInvalidFormat, "errors.invalid_format"},
	{validator.ErrInvalidArgument, "errors.invalid_argument"},
	{validator.ErrInvalidValue, "errors.invalid_value"},
}

// ValidationMessage renders a single validation error in lang. Errors
// without a translation key keep their built-in message.
func (t *Translator) ValidationMessage(lang string, e validator.ValidationError) string {
	if e.TranslationKey == "" {
		return e.Message
	}

	args := make([]string, 0, len(e.TranslationValues)*2)
	for name, v := range e.TranslationValues {
		value := fmt.Sprint(v)
		switch name {
		case "field":
			value = t.Td(lang, "fields."+value, value)
		case "type":
			value = t.Td(lang, "types."+value, value)
		}
		args = append(args, name, value)
	}
	return t.Td(lang, e.TranslationKey, e.Message, args...)
}

// ValidationMessages groups the translated messages of err by field. It
// returns nil when err carries no validation errors.
func (t *Translator) ValidationMessages(lang string, err error) map[string][]string {
	errs := validator.ExtractValidationErrors(err)
	if errs == nil {
		return nil
	}
	out := make(map[string][]string, len(errs))
	for _, e := range errs {
		out[e.Field] = append(out[e.Field], t.ValidationMessage(lang, e))
	}
	return out
}

// ErrorMessage renders err in lang. Validation errors are translated one by
// one and joined with "; ". Other errors are mapped by kind, falling back to
// err.Error().
func (t *Translator) ErrorMessage(lang string, err error) string {
	if err == nil {
		return ""
	}
	if errs := validator.ExtractValidationErrors(err); errs != nil {
		parts := make([]string, 0, len(errs))
		for _, e := range errs {
			parts = append(parts, t.ValidationMessage(lang, e))
		}
		return strings.Join(parts, "; ")
	}
	for _, k := range kindKeys {
		if errors.Is(err, k.kind) {
			return t.Td(lang, k.key, err.Error())
		}
	}
	return err.Error()
}
