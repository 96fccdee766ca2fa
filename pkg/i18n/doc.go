// Package i18n translates validation failures into localized messages.
//
// Catalogs are YAML documents keyed by language at the top level with
// nested, dot-addressed message keys below:
//
//	en:
//	  validation:
//	    required: "%{field} is required"
//
// Messages use named placeholders in the form %{name}. The validator
// package attaches a translation key and placeholder values to every
// ValidationError, so a Translator can render any error produced by the
// cart, grade, datefmt or palindrome packages.
//
// English and Spanish catalogs are embedded. Other catalogs can be loaded
// from any fs.FS with NewFSSource.
//
//	tr, err := i18n.NewDefault(ctx)
//	if err != nil {
//		return err
//	}
//	lang := tr.Match(r.Header.Get("Accept-Language"))
//	msg := tr.ErrorMessage(lang, cartErr)
//
// A Translator is read-only after construction and safe for concurrent use.
package i18n
