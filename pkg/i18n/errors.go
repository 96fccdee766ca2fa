package i18n

import "errors"

var (
	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")

	ErrLoadingCancelled    = errors.New("loading translations cancelled")
	ErrFailedToReadCatalog = errors.New("failed to read translation catalog")
	ErrNoTranslations      = errors.New("no translations found")
	ErrNilSource           = errors.New("translation source is nil")

	ErrLanguageNotSupported = errors.New("language not supported")
)
