package i18n

import (
	"context"
	"embed"
	"errors"
	"io/fs"
	"path"
)

//go:embed locales/*.yaml
var locales embed.FS

// Source supplies translations to a Translator.
type Source interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// FSSource loads every catalog in a file system that its parser supports.
// Catalogs for the same language are merged; later files win on conflicts.
type FSSource struct {
	fsys   fs.FS
	parser Parser
}

func NewFSSource(fsys fs.FS, parser Parser) *FSSource {
	return &FSSource{fsys: fsys, parser: parser}
}

// Embedded returns the source for the built-in English and Spanish catalogs.
func Embedded() *FSSource {
	sub, err := fs.Sub(locales, "locales")
	if err != nil {
		panic(err) // the embed pattern guarantees the directory exists
	}
	return NewFSSource(sub, NewYAMLParser())
}

func (s *FSSource) Load(ctx context.Context) (map[string]map[string]any, error) {
	result := make(map[string]map[string]any)

	err := fs.WalkDir(s.fsys, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return errors.Join(ErrLoadingCancelled, err)
		}
		if d.IsDir() || !s.parser.SupportsFileExtension(path.Ext(name)) {
			return nil
		}

		content, err := fs.ReadFile(s.fsys, name)
		if err != nil {
			return errors.Join(ErrFailedToReadCatalog, err)
		}
		parsed, err := s.parser.Parse(ctx, content)
		if err != nil {
			return err
		}
		for lang, messages := range parsed {
			if result[lang] == nil {
				result[lang] = make(map[string]any)
			}
			merge(result[lang], messages)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(result) == 0 {
		return nil, ErrNoTranslations
	}
	return result, nil
}

func merge(dst, src map[string]any) {
	for k, v := range src {
		srcMap, srcIsMap := v.(map[string]any)
		dstMap, dstIsMap := dst[k].(map[string]any)
		if srcIsMap && dstIsMap {
			merge(dstMap, srcMap)
			continue
		}
		dst[k] = v
	}
}
