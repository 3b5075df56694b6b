// Package treatments orchestrates the extraction pipeline for one condition:
// it drives web searches, medication extraction and price resolution to
// produce a comparison of standard (pharmaceutical) and conservative
// (non-pharmaceutical) treatment options.
//
// All external-search calls for a condition run strictly sequentially to
// respect the search gateway's rate limiting; only text processing happens
// between calls.
package treatments

import (
	"context"
	"regexp"
	"strings"

	"github.com/cleanjesus/medmate-api/interfaces"
	"github.com/cleanjesus/medmate-api/lexicon"
	"github.com/cleanjesus/medmate-api/logging"
	"github.com/cleanjesus/medmate-api/medications"
	"github.com/cleanjesus/medmate-api/metrics"
	"github.com/cleanjesus/medmate-api/pricing"
)

// Option categories.
const (
	CategoryStandard     = "Standard"
	CategoryConservative = "Conservative"

	// PriceSourceEstimated marks prices derived from generic text rather
	// than the pricing provider.
	PriceSourceEstimated = "estimated"
)

// Option is one treatment candidate for a condition. Options are immutable
// once categorized and live only for the request that produced them.
type Option struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	Link          string `json:"link"`
	Price         string `json:"price"`
	PriceSource   string `json:"priceSource"`
	Category      string `json:"category"`
	PriceCategory string `json:"priceCategory"`
}

// Result carries the options found for a condition. Fallback is true when the
// deterministic fallback pair was substituted for the whole flow, so callers
// and tests can tell a genuine fallback from a pipeline defect being masked.
type Result struct {
	Condition string
	Options   []Option
	Fallback  bool
}

// StandardOptions returns the pharmaceutical options in order.
func (r Result) StandardOptions() []Option {
	return r.byCategory(CategoryStandard)
}

// ConservativeOptions returns the non-pharmaceutical options in order.
func (r Result) ConservativeOptions() []Option {
	return r.byCategory(CategoryConservative)
}

func (r Result) byCategory(category string) []Option {
	var out []Option
	for _, opt := range r.Options {
		if opt.Category == category {
			out = append(out, opt)
		}
	}
	return out
}

// Aggregator finds treatment options for a condition using the injected
// search collaborator and provider pricer.
type Aggregator struct {
	searcher interfaces.Searcher
	pricer   *pricing.ProviderPricer
}

// NewAggregator creates an aggregator with its collaborators.
func NewAggregator(searcher interfaces.Searcher, pricer *pricing.ProviderPricer) *Aggregator {
	return &Aggregator{searcher: searcher, pricer: pricer}
}

var (
	urlPattern = regexp.MustCompile(`https?://[^\s\])"'>]+`)

	// trailingPunct strips characters that would break a Markdown link.
	trailingPunct = regexp.MustCompile(`[,."')\]]+$`)

	// alternativeNamePattern finds title-cased words that may be supplement
	// or lifestyle treatment names.
	alternativeNamePattern = regexp.MustCompile(`\b([A-Z][a-z]{2,})\b`)
)

// FindOptions resolves 2 standard and up to 2 conservative options for a
// condition. It never fails: if the flow is interrupted the condition gets
// its deterministic fallback pair instead.
func (a *Aggregator) FindOptions(ctx context.Context, condition string) Result {
	standardMeds := a.findStandardMedications(ctx, condition)
	if ctx.Err() != nil {
		return a.fallbackResult(condition)
	}

	options := make([]Option, 0, 4)
	for _, med := range standardMeds {
		options = append(options, a.resolveStandard(ctx, condition, med))
		if ctx.Err() != nil {
			return a.fallbackResult(condition)
		}
	}

	for _, alt := range a.findAlternatives(ctx, condition) {
		options = append(options, a.resolveAlternative(ctx, condition, alt))
		if ctx.Err() != nil {
			return a.fallbackResult(condition)
		}
	}

	return Result{Condition: condition, Options: options}
}

// FindOptionsForMedications resolves options when the caller already
// identified medications. Valid names bypass the standard-medication search;
// each gets a single conservative alternative discovered per medication. When
// none of the names validate, the regular search flow runs instead.
func (a *Aggregator) FindOptionsForMedications(ctx context.Context, condition string, meds []string) Result {
	var valid []string
	for _, med := range meds {
		if medications.IsValid(med) || medications.MatchesKnown(med) {
			valid = append(valid, med)
		}
		if len(valid) == 2 {
			break
		}
	}

	if len(valid) == 0 {
		logging.Info("No valid pre-identified medications, falling back to search", "condition", condition)
		return a.FindOptions(ctx, condition)
	}

	options := make([]Option, 0, 4)
	for _, med := range valid {
		options = append(options, a.resolveStandard(ctx, condition, med))
		if ctx.Err() != nil {
			return a.fallbackResult(condition)
		}
	}

	for _, med := range valid {
		results := a.searcher.Search(ctx, "natural alternative to "+med+" for "+condition+" without medication")
		alternatives := extractAlternativeNames(results, 1)
		if len(alternatives) == 0 {
			continue
		}
		options = append(options, a.resolveAlternative(ctx, condition, alternatives[0]))
		if ctx.Err() != nil {
			return a.fallbackResult(condition)
		}
	}

	return Result{Condition: condition, Options: options}
}

// findStandardMedications returns exactly two medication names for the
// condition, falling back through a second search and then the default table.
func (a *Aggregator) findStandardMedications(ctx context.Context, condition string) []string {
	results := a.searcher.Search(ctx, "most common first-line medications for "+condition+" treatment")
	meds := filterValid(medications.ExtractCandidates(results, 4))

	if len(meds) == 0 {
		results = a.searcher.Search(ctx, "FDA approved medications for "+condition)
		meds = filterValid(medications.ExtractCandidates(results, 4))
	}

	if len(meds) == 0 {
		pair := lexicon.DefaultStandardPair(condition)
		logging.Info("Using default medications", "condition", condition,
			"medications", []string{pair.First, pair.Second})
		return []string{pair.First, pair.Second}
	}

	if len(meds) > 2 {
		meds = meds[:2]
	}
	return meds
}

func filterValid(candidates []string) []string {
	var valid []string
	for _, name := range candidates {
		if medications.IsValid(name) {
			valid = append(valid, name)
		}
	}
	if len(valid) > 2 {
		valid = valid[:2]
	}
	return valid
}

// findAlternatives returns up to two non-pharmaceutical treatment names.
// Alternatives are often not drugs, so extraction uses the generalized
// capitalized-word scan rather than the drug lexicon.
func (a *Aggregator) findAlternatives(ctx context.Context, condition string) []string {
	results := a.searcher.Search(ctx, "alternative or natural treatments for "+condition+" without medication")

	alternatives := extractAlternativeNames(results, 4)
	if len(alternatives) > 2 {
		alternatives = alternatives[:2]
	}

	if len(alternatives) == 0 {
		pair := lexicon.DefaultAlternativePair(condition)
		return []string{pair.First, pair.Second}
	}
	return alternatives
}

// extractAlternativeNames scans result lines for title-cased words that are
// not common English words, deduplicated in first-seen order.
func extractAlternativeNames(lines []string, limit int) []string {
	var names []string
	seen := make(map[string]bool)
	for _, line := range lines {
		for _, m := range alternativeNamePattern.FindAllStringSubmatch(line, -1) {
			word := m[1]
			if lexicon.IsAlternativeStopWord(word) || len(word) <= 3 || seen[word] {
				continue
			}
			seen[word] = true
			names = append(names, word)
			if len(names) == limit {
				return names
			}
		}
	}
	return names
}

// resolveStandard fills in description, link and price for one standard
// medication. Provider pricing wins over prices mined from generic text.
func (a *Aggregator) resolveStandard(ctx context.Context, condition, med string) Option {
	results := a.searcher.Search(ctx, med+" medication guide information "+condition)
	fullText := strings.Join(results, " ")

	description := med + " is a medication used for " + condition
	link := extractLink(fullText)
	if link != "" {
		description = "[Learn about " + med + "](" + link + ")"
	}

	quote := a.pricer.Lookup(ctx, med)

	var price string
	if quote.Source != "" && quote.Price != "" {
		price = quote.Price
		if link == "" {
			description = "[Check " + med + " pricing](" + quote.Source + ")"
			link = quote.Source
		} else {
			description += " • [Check pricing](" + quote.Source + ")"
		}
	} else {
		price = pricing.ExtractPrice(fullText, false)
	}

	priceSource := quote.Source
	if priceSource == "" {
		priceSource = PriceSourceEstimated
	}

	return categorize(Option{
		Name:        med,
		Description: description,
		Link:        link,
		Price:       price,
		PriceSource: priceSource,
		Category:    CategoryStandard,
	})
}

// resolveAlternative fills in description, link and price for one
// conservative option. Alternatives always use the generic price extractor.
func (a *Aggregator) resolveAlternative(ctx context.Context, condition, name string) Option {
	results := a.searcher.Search(ctx, name+" "+condition+" treatment guide information")
	fullText := strings.Join(results, " ")

	description := name + " is an alternative treatment for " + condition
	link := extractLink(fullText)
	if link != "" {
		description = "[Learn about " + name + "](" + link + ")"
	}

	return categorize(Option{
		Name:        name,
		Description: description,
		Link:        link,
		Price:       pricing.ExtractPrice(fullText, true),
		PriceSource: PriceSourceEstimated,
		Category:    CategoryConservative,
	})
}

// fallbackResult is the deterministic substitute used when aggregation for a
// condition cannot complete. One condition failing must never abort the rest
// of the request.
func (a *Aggregator) fallbackResult(condition string) Result {
	entry := lexicon.Fallback(condition)
	logging.Warn("Aggregation interrupted, using fallback pair", "condition", condition)
	metrics.AggregatorFallbacksTotal.Inc()

	return Result{
		Condition: condition,
		Fallback:  true,
		Options: []Option{
			categorize(Option{
				Name:        entry.StandardName,
				Description: "[Learn about " + entry.StandardName + "](https://medlineplus.gov/druginfo/meds/)",
				Link:        "https://medlineplus.gov/druginfo/meds/",
				Price:       entry.StandardPrice,
				PriceSource: PriceSourceEstimated,
				Category:    CategoryStandard,
			}),
			categorize(Option{
				Name:        entry.AlternativeName,
				Description: "[Learn about " + entry.AlternativeName + "](https://www.nccih.nih.gov/health/)",
				Link:        "https://www.nccih.nih.gov/health/",
				Price:       entry.AlternativePrice,
				PriceSource: PriceSourceEstimated,
				Category:    CategoryConservative,
			}),
		},
	}
}

// categorize attaches the price tier; done once at creation, the option is
// immutable afterwards.
func categorize(opt Option) Option {
	opt.PriceCategory = pricing.Categorize(opt.Price)
	return opt
}

// extractLink picks an informational URL out of search-result text,
// preferring recognized medical domains over arbitrary ones.
func extractLink(fullText string) string {
	if fullText == "" {
		return ""
	}

	urls := urlPattern.FindAllString(fullText, -1)
	if len(urls) == 0 {
		return ""
	}

	for _, u := range urls {
		for _, domain := range lexicon.MedicalDomains {
			if strings.Contains(u, domain) {
				return trailingPunct.ReplaceAllString(u, "")
			}
		}
	}

	return trailingPunct.ReplaceAllString(urls[0], "")
}
