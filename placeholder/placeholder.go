// Package placeholder shields formatting placeholders in translatable
// text from a machine translation engine.
//
// Protect swaps every placeholder for an opaque token the engine has no
// reason to touch; Restore puts the originals back after translation,
// tolerating any case changes the engine applied to the tokens.
package placeholder

import (
	"fmt"
	"regexp"
)

// pattern matches the two supported placeholder forms: brace-delimited
// ({name}) and percent-style named with a type code (%(name)s, %(count)d).
// The brace alternative is tried first at each position.
var pattern = regexp.MustCompile(`\{[^}]+\}|%\([^)]+\)[sd]`)

// TokenMap maps a generated token to the placeholder text it replaced.
// One map is produced per Protect call and consumed by the matching
// Restore call, then discarded.
type TokenMap map[string]string

// Protect replaces every placeholder in text with a token of the form
// UNIQ_PH_<n>_UNIQ, numbered left to right from zero. The same
// placeholder appearing twice yields two distinct tokens — one per
// occurrence, no deduplication.
func Protect(text string) (string, TokenMap) {
	tokens := make(TokenMap)
	safe := pattern.ReplaceAllStringFunc(text, func(match string) string {
		token := fmt.Sprintf("UNIQ_PH_%d_UNIQ", len(tokens))
		tokens[token] = match
		return token
	})
	return safe, tokens
}

// Restore replaces every occurrence of each token in text with its
// original placeholder. Matching is case-insensitive and the token is
// quoted before matching, so it is always treated literally. Tokens are
// unique and never overlap or nest, so the iteration order over the map
// does not affect the result. A token the engine dropped from the text
// is simply left unresolved.
func Restore(text string, tokens TokenMap) string {
	for token, original := range tokens {
		re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(token))
		text = re.ReplaceAllLiteralString(text, original)
	}
	return text
}
