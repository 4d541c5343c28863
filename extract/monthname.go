package extract

import (
	"strings"

	"datehound/locale"
)

// matchMonth decides which of the 12 months the token names, if any.
// Exact spellings win over fuzzy ones; when several months could claim the
// token, the lowest ordinal wins.
func matchMonth(loc *locale.Locale, token string) (int, bool) {
	// Re-normalize: this is also invoked directly on raw token slices.
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return 0, false
	}

	for ordinal := 1; ordinal <= locale.MonthCount; ordinal++ {
		if loc.HasMonthName(ordinal, token) {
			return ordinal, true
		}
	}

	for ordinal := 1; ordinal <= locale.MonthCount; ordinal++ {
		for _, name := range loc.MonthNames(ordinal) {
			if isSameWord(token, name) {
				return ordinal, true
			}
		}
	}

	return 0, false
}

// isSameWord decides whether a looks like an inflected form of b. It
// tolerates suffix variation (Slavic genitive endings) while anchoring on
// a shared prefix. The exact thresholds are load-bearing: locale fixtures
// depend on them, so don't swap this for an edit-distance metric.
func isSameWord(a, b string) bool {
	runesA := []rune(a)
	runesB := []rune(b)

	// Runes unique to either word must number fewer than half of that
	// word's length. Strict halves: 2 unique out of 5 passes.
	if 2*uniqueRuneCount(runesA, runesB) >= len(runesA) {
		return false
	}
	if 2*uniqueRuneCount(runesB, runesA) >= len(runesB) {
		return false
	}

	prefixLen := 3
	if min(len(runesA), len(runesB)) < 4 {
		prefixLen = 2
	}
	if len(runesA) < prefixLen || len(runesB) < prefixLen {
		return false
	}
	return string(runesA[:prefixLen]) == string(runesB[:prefixLen])
}

// uniqueRuneCount counts distinct runes present in runes but not in other.
func uniqueRuneCount(runes []rune, other []rune) int {
	otherSet := make(map[rune]bool, len(other))
	for _, r := range other {
		otherSet[r] = true
	}
	seen := make(map[rune]bool, len(runes))
	count := 0
	for _, r := range runes {
		if seen[r] || otherSet[r] {
			continue
		}
		seen[r] = true
		count++
	}
	return count
}
