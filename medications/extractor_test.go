package medications

import (
	"reflect"
	"testing"
)

func TestIsValid(t *testing.T) {
	testCases := []struct {
		name     string
		expected bool
	}{
		{"Lisinopril", true},
		{"metformin", true},
		{"CPAP", true},
		// Suffix heuristic accepts plausible drug-like names
		{"Somethingpril", true},
		{"Examplesartan", true},
		{"Banana", false},
		{"Chair", false},
		{"", false},
	}

	for _, tc := range testCases {
		if got := IsValid(tc.name); got != tc.expected {
			t.Errorf("IsValid(%q) = %v, expected %v", tc.name, got, tc.expected)
		}
	}
}

func TestMatchesKnown(t *testing.T) {
	if !MatchesKnown("Metformin 500mg") {
		t.Error("Expected dosage-annotated known medication to match")
	}
	if !MatchesKnown("extended release METOPROLOL") {
		t.Error("Expected case-insensitive substring match")
	}
	if MatchesKnown("Vitamin D") {
		t.Error("Expected unknown supplement not to match")
	}
}

func TestExtractCandidatesFromDrugTokens(t *testing.T) {
	lines := []string{
		"Diabetes guide: Metformin and glipizide are common first choices [Source: https://example.com/a]",
		"Comparison: METFORMIN versus insulin therapy [Source: https://example.com/b]",
	}

	got := ExtractCandidates(lines, 2)
	expected := []string{"Metformin", "Glipizide"}

	if !reflect.DeepEqual(got, expected) {
		t.Errorf("ExtractCandidates() = %v, expected %v", got, expected)
	}
}

func TestExtractCandidatesDeduplicates(t *testing.T) {
	lines := []string{
		"Lisinopril, lisinopril and LISINOPRIL again",
	}

	got := ExtractCandidates(lines, 4)
	if len(got) != 1 || got[0] != "Lisinopril" {
		t.Errorf("Expected single deduplicated name, got %v", got)
	}
}

func TestExtractCandidatesCapitalizedFallback(t *testing.T) {
	// No enumerated drug tokens present, so the capitalized-word fallback
	// must kick in. Short and common words are excluded.
	lines := []string{
		"Berberine Supplement may help, and so can Zinc",
	}

	got := ExtractCandidates(lines, 2)
	expected := []string{"Berberine", "Supplement"}

	if !reflect.DeepEqual(got, expected) {
		t.Errorf("ExtractCandidates() = %v, expected %v", got, expected)
	}
}
