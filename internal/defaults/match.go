package defaults

import (
	"fmt"
	"strings"
	"unicode"
)

// internalObjectSignatures marks values that are serialized plugin internals
// rather than user data. Fields carrying them are excluded from contamination
// prone roles before any scoring happens.
var internalObjectSignatures = []string{
	"com.atlassian.",
	"ari:cloud:",
	"greenhopper",
	"ServiceDeskObject",
}

// matchKeyword matches a single keyword against a name: substring for
// multi-word phrases, whole-token otherwise. Whole-token matching keeps a
// "Statuses" field from hitting a "status" keyword.
func matchKeyword(name, keyword string) bool {
	lowerName := strings.ToLower(name)
	lowerKeyword := strings.ToLower(keyword)

	if strings.ContainsAny(lowerKeyword, " -") {
		return strings.Contains(normalizeSeparators(lowerName), normalizeSeparators(lowerKeyword))
	}

	for _, token := range tokenize(lowerName) {
		if token == lowerKeyword {
			return true
		}
	}
	return false
}

// matchesAnyKeyword applies matchKeyword across a keyword set.
func matchesAnyKeyword(name string, keywords []string) bool {
	for _, kw := range keywords {
		if matchKeyword(name, kw) {
			return true
		}
	}
	return false
}

// tokenize splits a name on every non-alphanumeric boundary.
func tokenize(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// normalizeSeparators folds hyphens and underscores into spaces so phrase
// matching treats "promote-to-production" and "promote to production" alike.
func normalizeSeparators(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '-' || r == '_' {
			return ' '
		}
		return r
	}, s)
}

// stringValue unwraps a field payload into a display string: plain strings
// pass through, option objects resolve their value sub-key.
func stringValue(raw any) (string, bool) {
	switch v := raw.(type) {
	case string:
		return v, v != ""
	case map[string]any:
		if nested, ok := v["value"]; ok {
			return stringValue(nested)
		}
	}
	return "", false
}

// looksInternal reports whether an observed value carries an internal plugin
// object signature.
func looksInternal(raw any) bool {
	var repr string
	switch v := raw.(type) {
	case string:
		repr = v
	case map[string]any:
		repr = fmt.Sprintf("%v", v)
	case []any:
		repr = fmt.Sprintf("%v", v)
	default:
		return false
	}
	for _, sig := range internalObjectSignatures {
		if strings.Contains(repr, sig) {
			return true
		}
	}
	return false
}

// isEmptyValue reports whether a field observation counts as absent for
// coverage purposes.
func isEmptyValue(raw any) bool {
	switch v := raw.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case []any:
		return len(v) == 0
	case map[string]any:
		return len(v) == 0
	}
	return false
}
