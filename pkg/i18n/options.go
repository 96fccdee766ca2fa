package i18n

import "log/slog"

// Option configures a Translator.
type Option func(*Translator)

// WithDefaultLanguage sets the language used when a request cannot be
// matched to a catalog.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang != "" {
			t.defaultLang = lang
		}
	}
}

// WithFallbackToKey controls whether T returns the key itself when no
// translation exists. Default is true.
func WithFallbackToKey(fallback bool) Option {
	return func(t *Translator) {
		t.fallbackToKey = fallback
	}
}

// WithLogger sets the logger. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(t *Translator) {
		if l != nil {
			t.logger = l
		}
	}
}

// WithMissingTranslationsLogging logs a warning for every missing
// translation. Default is false.
func WithMissingTranslationsLogging(enabled bool) Option {
	return func(t *Translator) {
		t.missingLogMode = enabled
	}
}
