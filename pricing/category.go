package pricing

import (
	"regexp"
	"strconv"
)

// Price tier labels ordered by cost.
const (
	TierAffordable    = "Affordable"
	TierModerate      = "Moderate"
	TierExpensive     = "Expensive"
	TierVeryExpensive = "Very Expensive"
)

var lowerBoundPattern = regexp.MustCompile(`\$(\d+)`)

// Categorize maps a "$low-$high" price string to one of four tiers using the
// lower bound. A string with no dollar amount categorizes as if it were $0.
func Categorize(price string) string {
	value := 0
	if m := lowerBoundPattern.FindStringSubmatch(price); m != nil {
		value, _ = strconv.Atoi(m[1])
	}

	switch {
	case value < 25:
		return TierAffordable
	case value < 75:
		return TierModerate
	case value < 300:
		return TierExpensive
	default:
		return TierVeryExpensive
	}
}
