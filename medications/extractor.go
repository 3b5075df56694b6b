// Package medications extracts medication-like names from search-result text
// and classifies candidate names. The classifier is a heuristic built on an
// enumerated reference list plus suffix patterns; it is deliberately
// permissive and accepts some non-medication words ending in common
// pharmacological suffixes.
package medications

import (
	"regexp"
	"strings"

	"github.com/cleanjesus/medmate-api/lexicon"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// drugNamePattern matches known drug-name tokens on word boundaries.
	drugNamePattern = regexp.MustCompile(`(?i)\b(` + strings.Join(quoteAll(lexicon.DrugNameTokens), "|") + `)\b`)

	// capitalizedWordPattern is the generalized fallback for names outside
	// the enumerated token list.
	capitalizedWordPattern = regexp.MustCompile(`\b[A-Z][a-z]+\b`)

	titleCaser = cases.Title(language.English)
)

func quoteAll(tokens []string) []string {
	quoted := make([]string, len(tokens))
	for i, t := range tokens {
		quoted[i] = regexp.QuoteMeta(t)
	}
	return quoted
}

// ExtractCandidates pulls up to limit medication-like names from the given
// result lines, deduplicated case-insensitively in first-seen order.
//
// The primary strategy matches the enumerated drug-name tokens and
// title-cases each hit. Only when that yields fewer than limit does the
// fallback scan for capitalized words, excluding common English words and
// anything of three characters or fewer.
func ExtractCandidates(lines []string, limit int) []string {
	var names []string
	seen := make(map[string]bool)

	add := func(name string) {
		key := strings.ToLower(name)
		if seen[key] {
			return
		}
		seen[key] = true
		names = append(names, name)
	}

	for _, line := range lines {
		for _, match := range drugNamePattern.FindAllString(line, -1) {
			add(titleCaser.String(strings.ToLower(match)))
		}
	}

	if len(names) < limit {
		for _, line := range lines {
			for _, word := range capitalizedWordPattern.FindAllString(line, -1) {
				if lexicon.IsCommonWord(word) || len(word) <= 3 {
					continue
				}
				add(word)
			}
		}
	}

	if len(names) > limit {
		names = names[:limit]
	}
	return names
}

// IsValid reports whether name looks like a medication: either an exact
// case-insensitive match against the known list, or a name ending in one of
// the pharmacological suffixes. Known false positives are accepted.
func IsValid(name string) bool {
	if lexicon.IsKnownMedication(name) {
		return true
	}
	lower := strings.ToLower(name)
	for _, suffix := range lexicon.MedicationSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	return false
}

// MatchesKnown reports whether name contains any known medication as a
// case-insensitive substring. Used to accept pre-identified names such as
// "Metformin 500mg" that carry dosage noise.
func MatchesKnown(name string) bool {
	lower := strings.ToLower(name)
	for _, med := range lexicon.KnownMedications {
		if strings.Contains(lower, strings.ToLower(med)) {
			return true
		}
	}
	return false
}
