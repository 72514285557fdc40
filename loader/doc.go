// Package loader reads an API contract document from disk, stdin, or memory
// and parses it into a generic YAML tree.
//
// The loader deliberately does not build a typed OpenAPI document model: the
// checker's textual casing checks exist to catch key typos that a structural
// model would silently drop, so both the parsed tree and the original raw
// bytes are retained on the returned Document.
//
// Load failures are terminal and distinguishable:
//
//	doc, err := loader.Load("api/openapi.yaml")
//	if errors.Is(err, guarderrors.ErrNotFound) {
//		// the file does not exist
//	}
//	if errors.Is(err, guarderrors.ErrSyntax) {
//		// the file is not valid YAML; the diagnostic is in the error
//	}
package loader
