// Package fuzzy implements the fuzzyMatch collaborator from spec.md §6:
// token-sort-ratio scoring over a list of candidate strings. There is no
// Go port of rapidfuzz's token_sort_ratio in the retrieved corpus, so
// this builds the same metric on top of github.com/agnivade/levenshtein
// (seen in the DataDog and owasp-amass dependency manifests) rather than
// hand-rolling edit distance.
package fuzzy

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// sortedTokens lower-cases s, splits on whitespace, sorts the tokens
// lexicographically, and rejoins them — the "token sort" half of
// token-sort-ratio.
func sortedTokens(s string) string {
	fields := strings.Fields(strings.ToLower(s))
	sort.Strings(fields)
	return strings.Join(fields, " ")
}

// Ratio scores a against b on a 0-100 scale using the same
// normalization rapidfuzz's fuzz.ratio uses: 100 * (1 - distance/(len(a)+len(b))).
func Ratio(a, b string) float64 {
	if a == "" && b == "" {
		return 100
	}
	dist := levenshtein.ComputeDistance(a, b)
	total := len(a) + len(b)
	if total == 0 {
		return 100
	}
	return 100 * (1 - float64(dist)/float64(total))
}

// TokenSortRatio sorts the whitespace-delimited tokens of each string
// before scoring, so word-order differences don't penalize the match.
func TokenSortRatio(a, b string) float64 {
	return Ratio(sortedTokens(a), sortedTokens(b))
}

// Match is the best-scoring candidate returned by ExtractOne.
type Match struct {
	Choice string
	Score  float64
}

// ExtractOne scores term against every choice with TokenSortRatio and
// returns the best match, mirroring rapidfuzz.process.extractOne used
// by async43/parser/engine.py. ok is false when choices is empty.
func ExtractOne(term string, choices []string) (Match, bool) {
	if len(choices) == 0 {
		return Match{}, false
	}
	best := Match{Choice: choices[0], Score: TokenSortRatio(term, choices[0])}
	for _, c := range choices[1:] {
		if score := TokenSortRatio(term, c); score > best.Score {
			best = Match{Choice: c, Score: score}
		}
	}
	return best, true
}
