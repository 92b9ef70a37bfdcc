// Package rates - classifiers over the static tables
package rates

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"creator-rates/core/types"
)

// normalizeKey canonicalizes a table key: trimmed, lower-cased, with
// spaces and hyphens treated as underscores.
func normalizeKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// TierOf classifies a follower count into its tier. Every non-negative
// count classifies; negative input is treated as zero reach.
func TierOf(followers int64) types.Tier {
	for _, b := range tierBoundaries {
		if followers >= b.Min {
			return b.Tier
		}
	}
	return types.TierNano
}

// BaseRate returns the base rate for a tier
func BaseRate(tier types.Tier) decimal.Decimal {
	rate, ok := baseRates[tier]
	if !ok {
		rate = baseRates[types.TierNano]
	}
	return decimal.NewFromInt(rate)
}

// NichePremium returns the rate premium for a niche. Empty or
// unrecognized niches price at the 1.0 lifestyle baseline.
func NichePremium(niche string) float64 {
	if m, ok := nichePremiums[normalizeKey(niche)]; ok {
		return m
	}
	return 1.0
}

// PlatformMultiplier returns the economics multiplier for a platform.
// Empty or unrecognized platforms price at the 1.0 baseline.
func PlatformMultiplier(platform string) float64 {
	if m, ok := platformMultipliers[normalizeKey(platform)]; ok {
		return m
	}
	return 1.0
}

// RegionalMultiplier returns the market multiplier for a region.
// "Not specified" and "specified but unknown" are different cases:
// an empty region prices at the baseline, an unrecognized one at the
// lower unknown-region rate.
func RegionalMultiplier(region string) float64 {
	key := normalizeKey(region)
	if key == "" {
		return baselineRegionMultiplier
	}
	if m, ok := regionalMultipliers[key]; ok {
		return m
	}
	return unknownRegionMultiplier
}

// FormatPremium returns the content-format premium, 1.0 when unknown
func FormatPremium(format string) float64 {
	if m, ok := formatPremiums[normalizeKey(format)]; ok {
		return m
	}
	return 1.0
}

// ComplexityMultiplier returns the production-difficulty multiplier
// for a format, 1.0 when unknown
func ComplexityMultiplier(format string) float64 {
	if m, ok := complexityMultipliers[normalizeKey(format)]; ok {
		return m
	}
	return 1.0
}

// WhitelistingPremium returns the premium fraction for a whitelisting
// grant, 0 for absent or unknown grants
func WhitelistingPremium(t types.WhitelistingType) float64 {
	key := types.WhitelistingType(normalizeKey(string(t)))
	return whitelistingPremiums[key]
}

// UsageDurationPremium returns the premium fraction for a usage window.
// Zero days means organic only and carries no premium.
func UsageDurationPremium(days int, perpetual bool) float64 {
	if perpetual {
		return perpetualUsagePremium
	}
	if days <= 0 {
		return 0
	}
	for _, band := range usageDurationBands {
		if days <= band.MaxDays {
			return band.Premium
		}
	}
	return perpetualUsagePremium
}

// ExclusivityPremium returns the premium fraction for an exclusivity
// grant, 0 for absent or unknown grants
func ExclusivityPremium(e types.Exclusivity) float64 {
	key := types.Exclusivity(normalizeKey(string(e)))
	return exclusivityPremiums[key]
}

// UsageRightsMultiplier combines the duration, exclusivity and
// paid-amplification premiums of a rights block. The premiums are
// summed first, then converted into a single multiplier: a 90-day
// window with category exclusivity is 1 + 0.45 + 0.30.
func UsageRightsMultiplier(r types.UsageRights) float64 {
	sum := UsageDurationPremium(r.DurationDays, r.Perpetual)
	sum += ExclusivityPremium(r.Exclusivity)
	if r.PaidAmplification {
		sum += paidAmplificationPremium
	}
	return 1 + sum
}

// UGCBaseRate returns the audience-independent base rate for a UGC
// format. Unknown formats price as photo, the cheaper deliverable.
func UGCBaseRate(f types.UGCFormat) decimal.Decimal {
	key := types.UGCFormat(normalizeKey(string(f)))
	rate, ok := ugcBaseRates[key]
	if !ok {
		rate = ugcBaseRates[types.UGCPhoto]
	}
	return decimal.NewFromInt(rate)
}

// AffiliateCategoryRange returns the typical commission range for a
// product category, when the category is known
func AffiliateCategoryRange(category string) (types.CommissionRange, bool) {
	r, ok := affiliateCategoryRanges[normalizeKey(category)]
	return r, ok
}

// RetainerTerm resolves a contract length to its term name and volume
// discount. Lengths below three months price as month-to-month.
func RetainerTerm(months int) (string, float64) {
	for _, t := range retainerTerms {
		if months >= t.MinMonths {
			return t.Name, t.Discount
		}
	}
	return retainerTerms[len(retainerTerms)-1].Name, 0
}

// RetainerFormats returns the deliverable formats a retainer quotes
func RetainerFormats() []string {
	out := make([]string, len(retainerFormats))
	copy(out, retainerFormats)
	return out
}

// campaignDateLayouts are the date formats accepted in briefs
var campaignDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"January 2, 2006",
	"Jan 2, 2006",
	"01/02/2006",
}

// ResolveCampaignDate parses a campaign date as written in a brief.
// Empty or unparsable dates resolve to now: a quote is always for
// some date, and today is the only safe assumption.
func ResolveCampaignDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Now()
	}
	for _, layout := range campaignDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Now()
}
