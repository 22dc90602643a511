package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent normalizes a name for fuzzy matching.
// The normalization pipeline:
// 1. Tokenize CamelCase and split on separators.
// 2. Case-fold to lower.
// 3. Join without separators.
//
// "Has name", "has_name", "HasName" and "has-Name" all normalize to "hasname".
func NormalizeIdent(s string) string {
	return strings.Join(TokenizeIdent(s), "")
}

// NormalizeIdentWithPrefixStrip normalizes and drops a leading predicate
// token such as "has" or "is", so "Has name" and "Name" compare equal.
// The prefix is kept when it is the only token.
func NormalizeIdentWithPrefixStrip(s string) string {
	tokens := TokenizeIdent(s)
	if len(tokens) > 1 {
		switch tokens[0] {
		case "has", "is":
			tokens = tokens[1:]
		}
	}

	return strings.Join(tokens, "")
}

// TokenizeIdent splits a name into normalized lowercase tokens.
func TokenizeIdent(s string) []string {
	tokens := tokenizeCamelCase(s)
	for i, t := range tokens {
		tokens[i] = strings.ToLower(t)
	}

	return tokens
}

// tokenizeCamelCase splits a CamelCase, camelCase or separated name into tokens.
// Examples:
//   - "TaxID" -> ["Tax", "ID"]
//   - "Has name" -> ["Has", "name"]
//   - "XMLSchema" -> ["XML", "Schema"]
func tokenizeCamelCase(s string) []string {
	if s == "" {
		return nil
	}

	var tokens []string

	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}

		if i > 0 && shouldStartNewToken(runes, i) {
			flush()
		}

		current.WriteRune(r)
	}

	flush()

	return tokens
}

// isSeparator returns true if the rune separates words in a name.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ':' || r == '.' || unicode.IsSpace(r)
}

// shouldStartNewToken determines if a new token should start at position i.
func shouldStartNewToken(runes []rune, i int) bool {
	r := runes[i]
	prevRune := runes[i-1]
	isUpper := unicode.IsUpper(r)
	isPrevUpper := unicode.IsUpper(prevRune)

	// "taxID" splits before 'I'.
	if isUpper && !isPrevUpper && !isSeparator(prevRune) {
		return true
	}

	// "XMLSchema" splits before 'S'.
	hasNextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

	return isUpper && isPrevUpper && hasNextLower
}
