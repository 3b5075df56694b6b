// Package pricing derives price ranges from unstructured search-result text.
// Extraction is layered: explicit ranges win, then amounts near cost-indicator
// words, then any bare dollar amounts, and finally fixed defaults. The
// extractor never fails; a text with no usable amounts still produces a
// deterministic range.
package pricing

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/cleanjesus/medmate-api/metrics"
)

// Default ranges. Empty input and unparseable input get different defaults so
// the two degradation paths stay distinguishable in output.
const (
	DefaultStandardEmpty      = "$10-$50"
	DefaultAlternativeEmpty   = "$30-$90"
	DefaultStandardNoMatch    = "$15-$60"
	DefaultAlternativeNoMatch = "$10-$35"
)

var (
	priceRangePattern = regexp.MustCompile(`(?i)\$[\d,]+(?:\.\d+)?\s*(?:-|to|and)\s*\$[\d,]+(?:\.\d+)?`)

	priceIndicatorPattern = regexp.MustCompile(`(?i)(?:cost|price|costs|priced|pricing|fee|charge|payment)s?\s+(?:of|is|are|about|around|approximately)?\s+\$([\d,]+(?:\.\d+)?)`)

	singlePricePattern = regexp.MustCompile(`\$([\d,]+(?:\.\d+)?)`)
)

// ExtractPrice derives a "$low-$high" range from text. The alternative flag
// selects the defaults for non-pharmaceutical treatments, which tend to sit
// in a different price band than prescriptions.
func ExtractPrice(text string, alternative bool) string {
	if text == "" {
		metrics.PriceDefaultsTotal.Inc()
		if alternative {
			return DefaultAlternativeEmpty
		}
		return DefaultStandardEmpty
	}

	// An explicit range in the text is passed through verbatim.
	if match := priceRangePattern.FindString(text); match != "" {
		return match
	}

	// Amounts qualified by cost-indicator words are the next most reliable.
	var indicated []float64
	for _, m := range priceIndicatorPattern.FindAllStringSubmatch(text, -1) {
		if v, err := parseAmount(m[1]); err == nil {
			indicated = append(indicated, v)
		}
	}
	if len(indicated) >= 2 {
		sort.Float64s(indicated)
		return "$" + formatAmount(indicated[0]) + "-$" + formatAmount(indicated[len(indicated)-1])
	}
	if len(indicated) == 1 {
		return synthesizeRange(indicated[0])
	}

	// Last resort: any dollar amounts at all, within a sanity window.
	var amounts []float64
	for _, m := range singlePricePattern.FindAllStringSubmatch(text, -1) {
		v, err := parseAmount(m[1])
		if err != nil || v <= 0 || v >= 10000 {
			continue
		}
		amounts = append(amounts, v)
	}

	if len(amounts) >= 2 {
		sort.Float64s(amounts)
		low, high := amounts[0], amounts[len(amounts)-1]
		filtered := amounts[:0:0]
		for _, v := range amounts {
			if v >= low*0.5 && v <= high*2 {
				filtered = append(filtered, v)
			}
		}
		if len(filtered) >= 2 {
			return "$" + formatAmount(math.Floor(filtered[0])) +
				"-$" + formatAmount(math.Ceil(filtered[len(filtered)-1]))
		}
	} else if len(amounts) == 1 {
		return synthesizeRange(amounts[0])
	}

	metrics.PriceDefaultsTotal.Inc()
	if alternative {
		return DefaultAlternativeNoMatch
	}
	return DefaultStandardNoMatch
}

// synthesizeRange builds a range around a single observed price by assuming
// a -30%/+30% spread. The low bound never drops below $1.
func synthesizeRange(base float64) string {
	low := math.Max(1, math.Floor(base*0.7))
	high := math.Ceil(base * 1.3)
	return "$" + formatAmount(low) + "-$" + formatAmount(high)
}

func parseAmount(raw string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
