// Package analyze builds a cross-ontology dependency graph from parsed RDF
// triples and XML-Schema imports: it attributes triples to namespaces,
// detects cross-namespace references and imports, assigns short identifiers,
// and folds everything into a node/edge/ranking document.
package analyze

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/knakk/rdf"
)

// Normalize applies the canonical namespace normalization: trailing "/" and
// "#" characters are stripped, and the empty result is reported as absent.
// Normalizing an already-normalized namespace returns it unchanged.
func Normalize(ns string) (string, bool) {
	trimmed := strings.TrimRight(ns, "/#")
	if trimmed == "" {
		return "", false
	}
	return trimmed, true
}

// TermNamespace returns the normalized namespace of a URI-shaped term.
// Literals and blank nodes have no namespace and are reported as absent.
func TermNamespace(t rdf.Term) (string, bool) {
	if t == nil || t.Type() != rdf.TermIRI {
		return "", false
	}
	return URINamespace(t.String())
}

// URINamespace derives the normalized namespace of a URI string. A
// structured namespace/local-name split is attempted first; on failure the
// URI is split at the last "#", then at the last "/". URIs with no
// resolvable structure are reported as absent.
func URINamespace(uri string) (string, bool) {
	if ns, ok := splitStructured(uri); ok {
		return Normalize(ns)
	}
	if i := strings.LastIndex(uri, "#"); i >= 0 {
		return Normalize(uri[:i])
	}
	if i := strings.LastIndex(uri, "/"); i >= 0 {
		return Normalize(uri[:i])
	}
	return "", false
}

// splitStructured splits a URI before its trailing local name: the longest
// run of name characters that starts with a name-start character. It fails
// when the URI ends in a delimiter or consists of a single name.
func splitStructured(uri string) (string, bool) {
	start := len(uri)
	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(uri[:start])
		if !isNameChar(r) {
			break
		}
		start -= size
	}

	// The local name must begin with a name-start character; digits and
	// punctuation at the head of the run belong to the namespace side.
	for start < len(uri) {
		r, size := utf8.DecodeRuneInString(uri[start:])
		if isNameStart(r) {
			break
		}
		start += size
	}

	if start == 0 || start == len(uri) {
		return "", false
	}
	return uri[:start], true
}

func isNameChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-' || r == '.'
}

func isNameStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}
