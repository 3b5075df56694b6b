// Package conditions normalizes free-text condition mentions to canonical
// labels and extracts the most relevant conditions from unstructured text.
package conditions

import (
	"regexp"
	"sort"
	"strings"

	"github.com/cleanjesus/medmate-api/lexicon"
)

// separatorPattern splits free text into fragments that may each name a
// condition on their own.
var separatorPattern = regexp.MustCompile(`,|;|and|\.|treating|\bfor\b`)

// Normalize maps free text to a canonical condition label using
// case-insensitive substring matching. Text that matches nothing passes
// through unchanged, which permits free-text conditions downstream at
// reduced quality.
func Normalize(text string) string {
	if canonical := lexicon.CanonicalCondition(strings.ToLower(text)); canonical != "" {
		return canonical
	}
	return text
}

// Extract finds up to two conditions mentioned in text, ranked by relevance.
//
// The first pass counts case-insensitive occurrences of each known condition
// name; any condition mentioned at least once is a candidate scored by its
// occurrence count. Only when that yields nothing does the second pass split
// the text on common separators, normalize each fragment, and score known
// conditions by how early they appear (earlier mentions score higher).
func Extract(text string) []string {
	if text == "" {
		return nil
	}

	var found []string
	scores := make(map[string]int)
	lower := strings.ToLower(text)

	for _, condition := range lexicon.Conditions {
		occurrences := strings.Count(lower, strings.ToLower(condition))
		if occurrences > 0 {
			found = append(found, condition)
			scores[condition] = occurrences
		}
	}

	if len(found) == 0 {
		for _, fragment := range separatorPattern.Split(text, -1) {
			fragment = strings.TrimSpace(fragment)
			if fragment == "" {
				continue
			}
			normalized := Normalize(fragment)
			if !lexicon.IsKnownCondition(normalized) || contains(found, normalized) {
				continue
			}
			found = append(found, normalized)
			// Earlier mentions are more relevant.
			position := strings.Index(lower, strings.ToLower(fragment))
			scores[normalized] = 1000 - position
		}
	}

	// Stable sort keeps encounter order for tied scores.
	sort.SliceStable(found, func(i, j int) bool {
		return scores[found[i]] > scores[found[j]]
	})

	if len(found) > 2 {
		found = found[:2]
	}
	return found
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
