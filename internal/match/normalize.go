package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent normalizes a category name for fuzzy matching:
// CamelCase is split, the tokens lowercased and the separators
// (_, -, spaces) dropped. "HumidityLevel", "humidity-level" and
// "humidity_level" all become "humiditylevel".
func NormalizeIdent(s string) string {
	return strings.Join(TokenizeIdent(s), "")
}

// TokenizeIdent splits a category name into lowercase tokens.
func TokenizeIdent(s string) []string {
	tokens := tokenize(s)
	for i, t := range tokens {
		tokens[i] = strings.ToLower(t)
	}

	return tokens
}

// tokenize splits on separators and CamelCase boundaries.
// Examples:
//   - "seed-to-soil" -> ["seed", "to", "soil"]
//   - "LightToTemperature" -> ["Light", "To", "Temperature"]
//   - "UVLight" -> ["UV", "Light"]
func tokenize(s string) []string {
	var (
		tokens  []string
		current strings.Builder
	)

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

		if i > 0 && startsToken(runes, i) {
			flush()
		}

		current.WriteRune(r)
	}

	flush()

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || unicode.IsSpace(r)
}

// startsToken reports whether a new token begins at position i.
func startsToken(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	if !unicode.IsUpper(r) || isSeparator(prev) {
		return false
	}

	// lower -> Upper: "waterLevel"
	if !unicode.IsUpper(prev) {
		return true
	}

	// end of an acronym: "UVLight" splits before 'L'
	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
