package validation

import (
	"strings"
	"testing"
)

func TestValidateConcern(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"empty is allowed", "", false},
		{"plain text", "I have type 2 diabetes, and some joint pain.", false},
		{"punctuation", "What can I do about acid reflux (at night)?", false},
		{"too long", strings.Repeat("a", 2001), true},
		{"script tag", "<script>alert(1)</script>", true},
		{"sql injection", "'; drop table users", true},
		{"path traversal", "../etc/passwd", true},
		{"command substitution", "harmless $(rm -rf)", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateConcern(tc.input)
			if tc.wantErr && err == nil {
				t.Errorf("Expected error for %q, got none", tc.input)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("Expected no error for %q, got %v", tc.input, err)
			}
		})
	}
}

func TestValidateLabel(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"condition name", "Hypertension", false},
		{"medication with dosage", "Metformin 500mg", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"too long", strings.Repeat("b", 101), true},
		{"dangerous content", "javascript:alert(1)", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateLabel(tc.input)
			if tc.wantErr && err == nil {
				t.Errorf("Expected error for %q, got none", tc.input)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("Expected no error for %q, got %v", tc.input, err)
			}
		})
	}
}
