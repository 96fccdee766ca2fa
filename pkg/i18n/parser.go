package i18n

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parser turns catalog file content into per-language message trees.
type Parser interface {
	Parse(ctx context.Context, content []byte) (map[string]map[string]any, error)

	// SupportsFileExtension reports whether the parser handles ext. The
	// extension may or may not include a leading dot.
	SupportsFileExtension(ext string) bool
}

// YAMLParser implements Parser for YAML catalogs.
type YAMLParser struct{}

func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

// Parse decodes a YAML document whose top-level keys are language codes.
func (p *YAMLParser) Parse(ctx context.Context, content []byte) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrYAMLParsingCancelled, err)
	}

	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}

	result := make(map[string]map[string]any, len(data))
	for lang, val := range data {
		messages, ok := val.(map[string]any)
		if !ok {
			return nil, errors.Join(ErrFailedToParseYAML,
				fmt.Errorf("language %q: expected map, got %T", lang, val))
		}
		result[lang] = messages
	}

	if len(result) == 0 {
		return nil, ErrNoTranslations
	}
	return result, nil
}

func (p *YAMLParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "yaml") || strings.EqualFold(ext, "yml")
}
