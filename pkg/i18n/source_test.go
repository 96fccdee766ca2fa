package i18n_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cartkit/pkg/i18n"
)

func TestFSSource_Load(t *testing.T) {
	t.Parallel()

	t.Run("merges catalogs per language", func(t *testing.T) {
		fsys := fstest.MapFS{
			"base.yaml":       {Data: []byte("en:\n  greeting: \"Hello\"\n  nested:\n    a: \"A\"\n")},
			"extra/more.yml":  {Data: []byte("en:\n  nested:\n    b: \"B\"\nde:\n  greeting: \"Hallo\"\n")},
			"notes.txt":       {Data: []byte("not a catalog")},
			"extra/README.md": {Data: []byte("# readme")},
		}

		got, err := i18n.NewFSSource(fsys, i18n.NewYAMLParser()).Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, map[string]map[string]any{
			"en": {
				"greeting": "Hello",
				"nested":   map[string]any{"a": "A", "b": "B"},
			},
			"de": {"greeting": "Hallo"},
		}, got)
	})

	t.Run("custom translator", func(t *testing.T) {
		fsys := fstest.MapFS{
			"de.yaml": {Data: []byte("de:\n  fields:\n    name: \"Name\"\n  validation:\n    required: \"%{field} ist erforderlich\"\n")},
		}
		tr, err := i18n.NewTranslator(context.Background(), i18n.NewFSSource(fsys, i18n.NewYAMLParser()),
			i18n.WithDefaultLanguage("de"),
		)
		require.NoError(t, err)
		assert.Equal(t, "Name ist erforderlich", tr.T("de", "validation.required", "field", "Name"))
		assert.Equal(t, "de", tr.Match("de-AT"))
	})

	t.Run("no catalogs", func(t *testing.T) {
		_, err := i18n.NewFSSource(fstest.MapFS{}, i18n.NewYAMLParser()).Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrNoTranslations)
	})

	t.Run("broken catalog", func(t *testing.T) {
		fsys := fstest.MapFS{"bad.yaml": {Data: []byte("en: [unclosed")}}
		_, err := i18n.NewFSSource(fsys, i18n.NewYAMLParser()).Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrFailedToParseYAML)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := i18n.Embedded().Load(ctx)
		assert.ErrorIs(t, err, i18n.ErrLoadingCancelled)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestYAMLParser(t *testing.T) {
	t.Parallel()

	p := i18n.NewYAMLParser()

	t.Run("parses languages", func(t *testing.T) {
		got, err := p.Parse(context.Background(), []byte("en:\n  hi: \"Hi\"\nes:\n  hi: \"Hola\"\n"))
		require.NoError(t, err)
		assert.Equal(t, "Hola", got["es"]["hi"])
	})

	t.Run("rejects scalar language node", func(t *testing.T) {
		_, err := p.Parse(context.Background(), []byte("en: \"Hi\"\n"))
		assert.ErrorIs(t, err, i18n.ErrFailedToParseYAML)
	})

	t.Run("rejects empty document", func(t *testing.T) {
		_, err := p.Parse(context.Background(), []byte(""))
		assert.ErrorIs(t, err, i18n.ErrNoTranslations)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := p.Parse(ctx, []byte("en:\n  hi: \"Hi\"\n"))
		assert.ErrorIs(t, err, i18n.ErrYAMLParsingCancelled)
	})

	t.Run("file extensions", func(t *testing.T) {
		assert.True(t, p.SupportsFileExtension("yaml"))
		assert.True(t, p.SupportsFileExtension(".YML"))
		assert.False(t, p.SupportsFileExtension(".json"))
		assert.False(t, p.SupportsFileExtension(""))
	})
}
