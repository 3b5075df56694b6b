package pricing

import "testing"

func TestExtractPriceExplicitRange(t *testing.T) {
	testCases := []struct {
		text     string
		expected string
	}{
		// Explicit ranges pass through verbatim
		{"Prices range from $10 to $40 at most pharmacies", "$10 to $40"},
		{"Typically $25-$60 per month", "$25-$60"},
		{"Expect between $1,200 and $2,500 for the device", "$1,200 and $2,500"},
	}

	for _, tc := range testCases {
		if got := ExtractPrice(tc.text, false); got != tc.expected {
			t.Errorf("ExtractPrice(%q) = %q, expected %q", tc.text, got, tc.expected)
		}
	}
}

func TestExtractPriceIndicatorWords(t *testing.T) {
	testCases := []struct {
		text     string
		expected string
	}{
		// Single qualified amount gets a synthesized -30%/+30% spread
		{"The price is $20 for a month supply", "$14-$26"},
		// Two qualified amounts become the range bounds
		{"cost of $30 for generic while the price of $90 covers brand", "$30-$90"},
	}

	for _, tc := range testCases {
		if got := ExtractPrice(tc.text, false); got != tc.expected {
			t.Errorf("ExtractPrice(%q) = %q, expected %q", tc.text, got, tc.expected)
		}
	}
}

func TestExtractPriceBareAmounts(t *testing.T) {
	testCases := []struct {
		text     string
		expected string
	}{
		// "cost is about" carries two qualifier words, so the indicator
		// pattern cannot match and the bare amount path takes over
		{"The cost is about $50", "$35-$65"},
		{"options listed at $12, $18, $45 depending on dose", "$12-$45"},
		// Amounts outside the sanity window are ignored entirely
		{"a $15000 surgical procedure", "$15-$60"},
	}

	for _, tc := range testCases {
		if got := ExtractPrice(tc.text, false); got != tc.expected {
			t.Errorf("ExtractPrice(%q) = %q, expected %q", tc.text, got, tc.expected)
		}
	}
}

func TestExtractPriceDefaults(t *testing.T) {
	testCases := []struct {
		text        string
		alternative bool
		expected    string
	}{
		{"", false, DefaultStandardEmpty},
		{"", true, DefaultAlternativeEmpty},
		{"no pricing information available", false, DefaultStandardNoMatch},
		{"no pricing information available", true, DefaultAlternativeNoMatch},
	}

	for _, tc := range testCases {
		if got := ExtractPrice(tc.text, tc.alternative); got != tc.expected {
			t.Errorf("ExtractPrice(%q, alternative=%v) = %q, expected %q",
				tc.text, tc.alternative, got, tc.expected)
		}
	}
}

func TestCategorize(t *testing.T) {
	testCases := []struct {
		price    string
		expected string
	}{
		{"$4-$25", TierAffordable},
		{"$20-$40", TierAffordable},
		{"$30-$90", TierModerate},
		{"$80-$200", TierExpensive},
		{"$500-$1200", TierVeryExpensive},
		// No dollar amount categorizes as free
		{"varies", TierAffordable},
	}

	for _, tc := range testCases {
		if got := Categorize(tc.price); got != tc.expected {
			t.Errorf("Categorize(%q) = %q, expected %q", tc.price, got, tc.expected)
		}
	}
}
