// Package suggest turns an unresolved or ambiguous flag name into a
// best-effort "did you mean" candidate, or a short ranked list of them.
package suggest

import (
	"sort"

	"github.com/hbollon/go-edlib"
	"github.com/lithammer/fuzzysearch/fuzzy"
	sahilmfuzzy "github.com/sahilm/fuzzy"
)

// distanceCap bounds how far input may be from candidate before it stops
// being worth suggesting at all, scaled to the candidate's own length: a
// one-character flag shouldn't get the same three-edit tolerance as a
// twenty-character one, or nearly anything would qualify as "close".
func distanceCap(candidate string) int {
	limit := len(candidate) / 3
	if limit < 1 {
		limit = 1
	}
	return limit
}

// Best returns the single closest candidate to input by Damerau-Levenshtein
// distance, each judged against its own length-proportional distanceCap. It
// reports ok=false when nothing is within its cap, or when two or more
// candidates are tied for closest: a tie means guessing would be as likely
// to mislead as to help, so it offers nothing instead.
func Best(input string, candidates []string) (best string, ok bool) {
	bestDist := -1
	tie := false
	for _, c := range candidates {
		if c == input {
			continue
		}
		d := edlib.DamerauLevenshteinDistance(input, c)
		if d > distanceCap(c) {
			continue
		}
		switch {
		case bestDist == -1 || d < bestDist:
			bestDist = d
			best = c
			tie = false
		case d == bestDist:
			tie = true
		}
	}
	if bestDist == -1 || tie {
		return "", false
	}
	return best, true
}

// Ranked returns up to limit entries from pool that loosely match input,
// most relevant first. It is used where several near-miss names are worth
// listing rather than committing to one (e.g. an ambiguous long prefix). A
// cheap subsequence pre-filter keeps the scored ranking pass over only the
// candidates that stand a chance.
func Ranked(input string, pool []string, limit int) []string {
	var plausible []string
	for _, p := range pool {
		if fuzzy.MatchFold(input, p) {
			plausible = append(plausible, p)
		}
	}
	if len(plausible) == 0 {
		return nil
	}

	matches := sahilmfuzzy.Find(input, stringSource(plausible))
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].Score > matches[j].Score })

	out := make([]string, 0, limit)
	for _, m := range matches {
		out = append(out, plausible[m.Index])
		if len(out) == limit {
			break
		}
	}
	return out
}

// stringSource adapts a []string to sahilm/fuzzy's Source interface.
type stringSource []string

func (s stringSource) String(i int) string { return s[i] }
func (s stringSource) Len() int            { return len(s) }
