package pricing

import (
	"context"
	"strings"
	"testing"
)

// scriptedSearcher returns canned lines keyed by a query substring.
type scriptedSearcher struct {
	responses map[string][]string
}

func (s *scriptedSearcher) Search(_ context.Context, query string) []string {
	for key, lines := range s.responses {
		if strings.Contains(query, key) {
			return lines
		}
	}
	return []string{"No search results found."}
}

func TestLookupExplicitRange(t *testing.T) {
	searcher := &scriptedSearcher{responses: map[string][]string{
		"price coupon":       {"GoodRx: Metformin coupons and savings [Source: https://www.goodrx.com/metformin]"},
		"price range lowest": {"Metformin prices range from $4 to $18 with a free coupon"},
	}}
	pricer := NewProviderPricer(searcher, "goodrx.com")

	quote := pricer.Lookup(context.Background(), "Metformin")

	if quote.Source != "https://www.goodrx.com/metformin" {
		t.Errorf("Expected provider URL, got %q", quote.Source)
	}
	if quote.Price != "$4 to $18" {
		t.Errorf("Expected verbatim provider range, got %q", quote.Price)
	}
}

func TestLookupAsLowAs(t *testing.T) {
	searcher := &scriptedSearcher{responses: map[string][]string{
		"price coupon":       {"Savings page [Source: https://www.goodrx.com/lisinopril]"},
		"price range lowest": {"Get Lisinopril as low as $4 today"},
	}}
	pricer := NewProviderPricer(searcher, "goodrx.com")

	quote := pricer.Lookup(context.Background(), "Lisinopril")

	if quote.Price != "$4-$12" {
		t.Errorf("Expected tripled floor price range, got %q", quote.Price)
	}
}

func TestLookupAveragePrice(t *testing.T) {
	searcher := &scriptedSearcher{responses: map[string][]string{
		"price coupon":       {"Savings page [Source: https://www.goodrx.com/omeprazole]"},
		"price range lowest": {"The average price of $30 applies at most pharmacies"},
	}}
	pricer := NewProviderPricer(searcher, "goodrx.com")

	quote := pricer.Lookup(context.Background(), "Omeprazole")

	if quote.Price != "$21-$39" {
		t.Errorf("Expected +/-30%% spread around the average, got %q", quote.Price)
	}
}

func TestLookupPrefersMedicationURL(t *testing.T) {
	searcher := &scriptedSearcher{responses: map[string][]string{
		"price coupon": {
			"Listing: https://www.goodrx.com/conditions and https://www.goodrx.com/atorvastatin here",
		},
		"price range lowest": {"No recognizable pricing text"},
	}}
	pricer := NewProviderPricer(searcher, "goodrx.com")

	quote := pricer.Lookup(context.Background(), "Atorvastatin")

	if quote.Source != "https://www.goodrx.com/atorvastatin" {
		t.Errorf("Expected the medication-specific URL, got %q", quote.Source)
	}
	if quote.Price != "" {
		t.Errorf("Expected no price when page text has no patterns, got %q", quote.Price)
	}
}

func TestLookupNoProviderPage(t *testing.T) {
	searcher := &scriptedSearcher{responses: map[string][]string{
		"price coupon": {"Nothing from the provider in these results [Source: https://example.com/page]"},
	}}
	pricer := NewProviderPricer(searcher, "goodrx.com")

	quote := pricer.Lookup(context.Background(), "Metformin")

	if quote != (Quote{}) {
		t.Errorf("Expected empty quote, got %+v", quote)
	}
}
