package conditions

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"acid reflux", "GERD"},
		{"I have high blood pressure", "Hypertension"},
		{"joint pain in both knees", "Osteoarthritis"},
		{"type ii diabetes", "Type 2 Diabetes"},
		{"high cholesterol levels", "Hyperlipidemia"},
		// Unknown text passes through unchanged
		{"chronic migraines", "chronic migraines"},
	}

	for _, tc := range testCases {
		if got := Normalize(tc.input); got != tc.expected {
			t.Errorf("Normalize(%q) = %q, expected %q", tc.input, got, tc.expected)
		}
	}
}

func TestExtractDirectMentions(t *testing.T) {
	text := "My GERD flares at night. GERD medication stopped working and my hypertension is up."

	got := Extract(text)
	expected := []string{"GERD", "Hypertension"}

	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Extract() = %v, expected %v", got, expected)
	}
}

func TestExtractSeparatorFallback(t *testing.T) {
	// No canonical name appears verbatim, so extraction must fall back to
	// splitting the text and normalizing each fragment.
	text := "I struggle with high blood pressure and acid reflux"

	got := Extract(text)
	expected := []string{"Hypertension", "GERD"}

	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Extract() = %v, expected %v", got, expected)
	}
}

func TestExtractCapsAtTwo(t *testing.T) {
	text := "diabetes, high blood pressure, acid reflux"

	got := Extract(text)
	if len(got) != 2 {
		t.Fatalf("Expected at most 2 conditions, got %d: %v", len(got), got)
	}

	expected := []string{"Type 2 Diabetes", "Hypertension"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Extract() = %v, expected %v", got, expected)
	}
}

func TestExtractNothing(t *testing.T) {
	if got := Extract(""); len(got) != 0 {
		t.Errorf("Expected no conditions for empty text, got %v", got)
	}

	if got := Extract("my car broke down yesterday"); len(got) != 0 {
		t.Errorf("Expected no conditions for unrelated text, got %v", got)
	}
}
