// Package fuzzy implements typo-tolerant matching over vocabulary entries:
// deterministic text normalization, Levenshtein distance and an adaptive
// similarity threshold. Everything here is pure and locale-independent.
package fuzzy

import (
	"strings"
	"unicode/utf8"

	"vocabpopup/internal/domain"
)

// accentReplacer strips apostrophe-like marks and folds accented Latin
// letters to their base letter. The table is fixed; no locale is consulted.
var accentReplacer = strings.NewReplacer(
	"'", "", "`", "", "´", "",
	"ä", "a", "ö", "o", "ü", "u", "ß", "ss",
	"é", "e", "è", "e", "ê", "e", "ë", "e",
	"à", "a", "â", "a",
	"î", "i", "ï", "i",
	"ô", "o",
	"û", "u", "ù", "u",
	"ç", "c", "œ", "oe", "æ", "ae",
)

// Normalize lowercases s, strips apostrophe marks and folds accents.
// Idempotent: normalizing an already normalized string is a no-op.
func Normalize(s string) string {
	return accentReplacer.Replace(strings.ToLower(s))
}

// Distance returns the Levenshtein edit distance between a and b: the
// minimum number of single-rune insertions, deletions or substitutions
// transforming one into the other. Inputs are short UI strings, so the
// full dynamic-programming table is fine.
func Distance(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := 0; j <= len(rb); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}

// IsSimilar reports whether two normalized strings are close enough to be
// treated as the same word. Equal strings match outright; a length
// difference above 2 is rejected before computing the distance. The
// distance threshold adapts to the input length: 2 for inputs of 4+ runes,
// 1 for shorter ones, so short words get less typo tolerance.
func IsSimilar(input, key string) bool {
	if input == key {
		return true
	}

	li := utf8.RuneCountInString(input)
	lk := utf8.RuneCountInString(key)
	diff := li - lk
	if diff < 0 {
		diff = -diff
	}
	if diff > 2 {
		return false
	}

	threshold := 1
	if li >= 4 {
		threshold = 2
	}
	return Distance(input, key) <= threshold
}

// FindMatch returns the translation of the first entry whose normalized
// term is similar to the normalized input. Entries are scanned in their
// given order; there is no ranking among candidates, the earliest
// qualifying one wins.
func FindMatch(entries []domain.Entry, input string) (string, bool) {
	normalized := Normalize(input)
	for _, e := range entries {
		if IsSimilar(normalized, Normalize(e.Term)) {
			return e.Translation, true
		}
	}
	return "", false
}
