package lexicon

import "testing"

func TestCanonicalCondition(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"i have high blood pressure", "Hypertension"},
		{"heartburn after meals", "GERD"},
		{"my cholesterol is high", "Hyperlipidemia"},
		{"something unrelated", ""},
	}

	for _, tc := range testCases {
		if got := CanonicalCondition(tc.input); got != tc.expected {
			t.Errorf("CanonicalCondition(%q) = %q, expected %q", tc.input, got, tc.expected)
		}
	}
}

func TestIsKnownMedication(t *testing.T) {
	if !IsKnownMedication("metformin") {
		t.Error("Expected case-insensitive match for metformin")
	}
	if IsKnownMedication("NotARealDrug") {
		t.Error("Expected no match for unknown name")
	}
}

func TestDefaultPairs(t *testing.T) {
	pair := DefaultStandardPair("Sleep Apnea")
	if pair.First != "CPAP Therapy" || pair.Second != "Modafinil" {
		t.Errorf("Unexpected sleep apnea pair: %+v", pair)
	}

	// Aliases map to the same defaults as their canonical condition
	if DefaultStandardPair("high cholesterol") != DefaultStandardPair("Hyperlipidemia") {
		t.Error("Expected alias and canonical condition to share defaults")
	}

	generic := DefaultStandardPair("restless legs")
	if generic.First != "Medication 1" || generic.Second != "Medication 2" {
		t.Errorf("Unexpected generic pair: %+v", generic)
	}

	alt := DefaultAlternativePair("restless legs")
	if alt.First != "Supplement" || alt.Second != "Lifestyle Change" {
		t.Errorf("Unexpected generic alternative pair: %+v", alt)
	}
}

func TestFallback(t *testing.T) {
	entry := Fallback("sleep apnea")
	if entry.StandardName != "CPAP Therapy" || entry.StandardPrice != "$500-$1200" {
		t.Errorf("Unexpected sleep apnea fallback: %+v", entry)
	}

	generic := Fallback("restless legs")
	if generic.StandardName != "Medication for restless legs" {
		t.Errorf("Unexpected generic fallback name: %q", generic.StandardName)
	}
	if generic.StandardPrice != "$15-$60" || generic.AlternativePrice != "$20-$45" {
		t.Errorf("Unexpected generic fallback prices: %+v", generic)
	}
}
