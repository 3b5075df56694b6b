package pricing

import (
	"context"
	"math"
	"regexp"
	"strings"

	"github.com/cleanjesus/medmate-api/interfaces"
)

// Quote is the result of a provider price lookup. Source is the provider URL
// that was discovered, or "" when none was found; Price is "" when a URL was
// found but no price pattern matched.
type Quote struct {
	Price  string
	Source string
}

// ProviderPricer discovers medication prices published by a single named
// pricing provider. The provider has no API of its own: its pages are found
// through the regular search collaborator and mined with provider-specific
// price patterns.
type ProviderPricer struct {
	searcher   interfaces.Searcher
	domain     string
	urlPattern *regexp.Regexp
}

var (
	providerRangePattern = regexp.MustCompile(`(?i)prices range from (\$[\d,]+(?:\.\d+)?\s*(?:-|to|and)\s*\$[\d,]+(?:\.\d+)?)`)
	providerLowPattern   = regexp.MustCompile(`(?i)as low as \$([\d,]+(?:\.\d+)?)`)
	providerAvgPattern   = regexp.MustCompile(`(?i)average price (?:of|is|about) \$([\d,]+(?:\.\d+)?)`)
)

// NewProviderPricer creates a pricer for the given provider domain, e.g.
// "goodrx.com".
func NewProviderPricer(searcher interfaces.Searcher, domain string) *ProviderPricer {
	return &ProviderPricer{
		searcher:   searcher,
		domain:     domain,
		urlPattern: regexp.MustCompile(`https?://www\.` + regexp.QuoteMeta(domain) + `/[a-zA-Z0-9-]+`),
	}
}

// Lookup finds the provider's page for a medication and extracts a price
// range from it. The first search locates a provider URL, preferring one that
// carries the medication name; the second search seeds on that URL to surface
// pricing text.
func (p *ProviderPricer) Lookup(ctx context.Context, medication string) Quote {
	hyphenated := strings.ReplaceAll(strings.ToLower(medication), " ", "-")
	collapsed := strings.ReplaceAll(strings.ToLower(medication), " ", "")

	results := p.searcher.Search(ctx, p.domain+" "+medication+" price coupon")
	fullText := strings.Join(results, " ")

	urls := p.urlPattern.FindAllString(fullText, -1)
	if len(urls) == 0 {
		return Quote{}
	}

	providerURL := urls[0]
	for _, u := range urls {
		lower := strings.ToLower(u)
		if strings.Contains(lower, hyphenated) || strings.Contains(lower, collapsed) {
			providerURL = u
			break
		}
	}

	pricingResults := p.searcher.Search(ctx, providerURL+" price range lowest cost average")
	fullText = strings.Join(pricingResults, " ")

	// Explicit range published by the provider.
	if m := providerRangePattern.FindStringSubmatch(fullText); m != nil {
		return Quote{Price: m[1], Source: providerURL}
	}

	// "As low as $X": assume the high end is three times the floor price.
	if m := providerLowPattern.FindStringSubmatch(fullText); m != nil {
		if low, err := parseAmount(m[1]); err == nil {
			high := math.Ceil(low * 3)
			return Quote{
				Price:  "$" + formatAmount(low) + "-$" + formatAmount(high),
				Source: providerURL,
			}
		}
	}

	// "Average price of $X": assume a +/-30% spread.
	if m := providerAvgPattern.FindStringSubmatch(fullText); m != nil {
		if avg, err := parseAmount(m[1]); err == nil {
			return Quote{
				Price:  "$" + formatAmount(math.Floor(avg*0.7)) + "-$" + formatAmount(math.Ceil(avg*1.3)),
				Source: providerURL,
			}
		}
	}

	// Page found but no recognizable price on it.
	return Quote{Source: providerURL}
}
