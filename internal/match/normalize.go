package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent folds an option key for fuzzy comparison: tokens are split
// on camelCase boundaries and separators, lower-cased and joined.
// "borderColor", "border_color" and "BORDER-COLOR" all become "bordercolor".
func NormalizeIdent(s string) string {
	return strings.Join(TokenizeIdent(s), "")
}

// TokenizeIdent splits an identifier into lowercase tokens.
//   - "itemMarginBottom" -> ["item", "margin", "bottom"]
//   - "useHTML" -> ["use", "html"]
//   - "pattern_options" -> ["pattern", "options"]
func TokenizeIdent(s string) []string {
	tokens := splitWords(s)
	for i, t := range tokens {
		tokens[i] = strings.ToLower(t)
	}

	return tokens
}

func splitWords(s string) []string {
	var (
		words   []string
		current strings.Builder
	)

	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()

			continue
		}

		if i > 0 && startsWord(runes, i) {
			flush()
		}

		current.WriteRune(r)
	}

	flush()

	return words
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '.'
}

// startsWord reports a camelCase boundary at i: lower to upper ("marginBottom"),
// or the last capital of an acronym followed by lowercase ("HTMLLabel").
func startsWord(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	if !unicode.IsUpper(r) || isSeparator(prev) {
		return false
	}

	if !unicode.IsUpper(prev) {
		return true
	}

	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
