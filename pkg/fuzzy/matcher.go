// Package fuzzy scores how closely a typed token resembles a known name,
// for ranking "did you mean" subcommand suggestions (see
// internal/match.subcommandHint). Unlike internal/suggest's narrower
// best-or-nothing Damerau-Levenshtein check, this blends prefix, substring,
// and edit-distance signals into one confidence score so a whole pool of
// candidates can be ranked rather than reduced to a single guess.
package fuzzy

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Matcher scores query/target pairs with a fixed blend of prefix,
// substring, and Levenshtein-distance confidence. It holds no per-call
// state, so one Matcher is safely reused (and wrapped by CachedMatcher)
// across every lookup against the same candidate pool.
type Matcher struct {
	caseSensitive bool
	maxDistance   int
	threshold     float64
}

// NewMatcher builds a Matcher. maxDistance rejects a pair outright once
// its Levenshtein distance exceeds it (zero means unbounded); threshold is
// the minimum Confidence MatchMultiple keeps.
func NewMatcher(caseSensitive bool, maxDistance int, threshold float64) *Matcher {
	return &Matcher{caseSensitive: caseSensitive, maxDistance: maxDistance, threshold: threshold}
}

// Match is the scored outcome of comparing one query against one target.
type Match struct {
	Confidence float64
	Distance   int
}

// Match scores target against query. An identical pair (after case-folding,
// unless caseSensitive) always returns Confidence 1; otherwise the score is
// a weighted blend of how much of target query prefixes, how much of
// target query appears inside, and their normalized edit distance.
func (m *Matcher) Match(query, target string) *Match {
	if query == "" {
		return &Match{}
	}

	q, t := query, target
	if !m.caseSensitive {
		q = strings.ToLower(q)
		t = strings.ToLower(t)
	}
	if q == t {
		return &Match{Confidence: 1, Distance: 0}
	}

	distance := levenshtein.ComputeDistance(q, t)
	if m.maxDistance > 0 && distance > m.maxDistance {
		return &Match{Confidence: 0, Distance: distance}
	}

	return &Match{Confidence: blendedConfidence(q, t, distance), Distance: distance}
}

// blendedConfidence combines three signals, each already normalized to
// [0,1]: how much of an exact prefix match there is, how much of a
// substring match there is, and the inverse normalized edit distance.
// Prefix and substring are weighted most heavily since a partially-typed
// subcommand name is the common case this exists to rank.
func blendedConfidence(query, target string, distance int) float64 {
	maxLen := len(query)
	if len(target) > maxLen {
		maxLen = len(target)
	}
	editScore := 0.0
	if maxLen > 0 {
		editScore = 1 - float64(distance)/float64(maxLen)
		if editScore < 0 {
			editScore = 0
		}
	}

	prefixScore := 0.0
	if strings.HasPrefix(target, query) {
		prefixScore = float64(len(query)) / float64(len(target))
	}

	containsScore := 0.0
	if idx := strings.Index(target, query); idx >= 0 {
		containsScore = float64(len(query)) / float64(len(target))
		if idx == 0 {
			containsScore += 0.1
		}
	}

	confidence := 0.4*prefixScore + 0.25*containsScore + 0.35*editScore
	if confidence > 1 {
		confidence = 1
	}
	return confidence
}

// MatchResult pairs one target with its Match and its position in the
// pool MatchMultiple was given, so callers can recover the original index
// after sorting.
type MatchResult struct {
	Target string
	Index  int
	Match  *Match
}

// MatchMultiple scores query against every target, keeping only results at
// or above the Matcher's threshold and sorting them by Confidence,
// descending.
func (m *Matcher) MatchMultiple(query string, targets []string) []MatchResult {
	out := make([]MatchResult, 0, len(targets))
	for i, target := range targets {
		match := m.Match(query, target)
		if match.Confidence >= m.threshold {
			out = append(out, MatchResult{Target: target, Index: i, Match: match})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Match.Confidence > out[j].Match.Confidence })
	return out
}
