// Package rates holds the static rate card: tier boundaries, premium and
// multiplier tables, seasonal windows, and the classifiers over them.
// Tables are hand-authored constants, initialized once and never mutated
// at runtime; nothing in this package exposes a write path.
package rates

import (
	"creator-rates/core/types"
)

// tierBoundary maps a follower floor to its tier. Boundaries are
// half-open with the lower bound belonging to the higher tier:
// tier(10000) is micro, tier(9999) is nano.
type tierBoundary struct {
	Min  int64
	Tier types.Tier
}

// tierBoundaries is ordered descending so the first match wins
var tierBoundaries = []tierBoundary{
	{1_000_000, types.TierCelebrity},
	{500_000, types.TierMega},
	{250_000, types.TierMacro},
	{100_000, types.TierRising},
	{50_000, types.TierMid},
	{10_000, types.TierMicro},
	{0, types.TierNano},
}

// baseRates maps each tier to its base rate in currency units
var baseRates = map[types.Tier]int64{
	types.TierNano:      150,
	types.TierMicro:     400,
	types.TierMid:       800,
	types.TierRising:    1500,
	types.TierMacro:     3000,
	types.TierMega:      6000,
	types.TierCelebrity: 12000,
}

// engagementNorms is the typical engagement rate (percent) per tier.
// Larger audiences engage less; the sponsored pricer scales its
// engagement layer against these norms.
var engagementNorms = map[types.Tier]float64{
	types.TierNano:      5.0,
	types.TierMicro:     4.0,
	types.TierMid:       3.5,
	types.TierRising:    3.0,
	types.TierMacro:     2.5,
	types.TierMega:      2.0,
	types.TierCelebrity: 1.5,
}

// nichePremiums maps a primary niche to its rate premium. Unlisted
// niches price at the 1.0 lifestyle baseline.
var nichePremiums = map[string]float64{
	"finance":       2.0,
	"business":      1.75,
	"technology":    1.6,
	"education":     1.45,
	"health":        1.4,
	"beauty":        1.3,
	"fashion":       1.2,
	"food":          1.1,
	"entertainment": 0.95,

	// common aliases
	"personal_finance": 2.0,
	"tech":             1.6,
	"wellness":         1.4,
}

// platformMultipliers reflects platform economics, long-form video at
// the top, emerging platforms at the bottom. Unlisted platforms price
// at the 1.0 baseline.
var platformMultipliers = map[string]float64{
	"youtube":   1.4,
	"linkedin":  1.3,
	"podcast":   1.25,
	"twitch":    1.1,
	"instagram": 1.0,
	"tiktok":    0.9,
	"facebook":  0.75,
	"twitter":   0.7,
	"pinterest": 0.65,
	"snapchat":  0.6,
	"threads":   0.55,
	"bereal":    0.5,

	"x": 0.7,
}

// regionalMultipliers reflects sponsorship market rates by audience
// region. An EMPTY region means "not specified" and prices at the 1.0
// baseline; a region that is present but unrecognized prices at
// unknownRegionMultiplier instead. The asymmetry is a business rule.
var regionalMultipliers = map[string]float64{
	"switzerland":          1.1,
	"united_states":        1.05,
	"united_kingdom":       1.0,
	"australia":            0.95,
	"canada":               0.95,
	"germany":              0.9,
	"france":               0.9,
	"japan":                0.9,
	"south_korea":          0.85,
	"united_arab_emirates": 0.85,
	"spain":                0.8,
	"italy":                0.8,
	"brazil":               0.6,
	"mexico":               0.6,
	"philippines":          0.45,
	"india":                0.4,
}

const (
	// baselineRegionMultiplier applies when no region is specified
	baselineRegionMultiplier = 1.0

	// unknownRegionMultiplier applies when a region is specified but
	// not in the table
	unknownRegionMultiplier = 0.7
)

// whitelistingPremiums maps a whitelisting grant to its premium
// fraction. Absent or unknown grants carry no premium.
var whitelistingPremiums = map[types.WhitelistingType]float64{
	types.WhitelistNone:       0,
	types.WhitelistOrganic:    0.5,
	types.WhitelistPaidSocial: 1.0,
	types.WhitelistFullMedia:  2.0,
}

// formatPremiums prices the content format itself
var formatPremiums = map[string]float64{
	"static_post": 1.0,
	"photo":       1.0,
	"story":       0.6,
	"carousel":    1.1,
	"short":       1.1,
	"reel":        1.2,
	"live":        1.3,
	"video":       1.5,

	"post": 1.0,
}

// complexityMultipliers prices production difficulty by format
var complexityMultipliers = map[string]float64{
	"static_post": 1.0,
	"photo":       1.0,
	"post":        1.0,
	"story":       0.9,
	"carousel":    1.1,
	"short":       1.1,
	"reel":        1.15,
	"video":       1.3,
	"live":        1.4,
}

// durationBand maps a usage window ceiling (days) to its premium
type durationBand struct {
	MaxDays int
	Premium float64
}

// usageDurationBands is ordered ascending; the first band whose
// ceiling covers the requested window applies. Windows beyond the
// last band, and perpetual grants, use perpetualUsagePremium.
var usageDurationBands = []durationBand{
	{30, 0.15},
	{90, 0.45},
	{180, 0.70},
	{365, 1.00},
}

const perpetualUsagePremium = 1.50

// exclusivityPremiums maps an exclusivity grant to its premium
var exclusivityPremiums = map[types.Exclusivity]float64{
	types.ExclusivityNone:     0,
	types.ExclusivityCategory: 0.30,
	types.ExclusivityFull:     0.75,
}

// paidAmplificationPremium applies when the brand may boost the post
const paidAmplificationPremium = 0.20

// ugcBaseRates is the audience-independent UGC rate card
var ugcBaseRates = map[types.UGCFormat]int64{
	types.UGCVideo: 175,
	types.UGCPhoto: 100,
}

// affiliateCategoryRanges lists typical commission ranges by product
// category. Display only; the earnings formula uses the brief's rate.
var affiliateCategoryRanges = map[string]types.CommissionRange{
	"fashion":    {Min: 10, Max: 20},
	"beauty":     {Min: 15, Max: 25},
	"fitness":    {Min: 10, Max: 20},
	"technology": {Min: 5, Max: 10},
	"software":   {Min: 20, Max: 30},
	"food":       {Min: 8, Max: 15},
	"finance":    {Min: 20, Max: 40},
	"home":       {Min: 8, Max: 12},
}

// retainerTerm describes one contract-length tier
type retainerTerm struct {
	MinMonths int
	Name      string
	Discount  float64
}

// retainerTerms is ordered descending; the first tier the contract
// length reaches applies. Twelve months is the ambassador tier, the
// only one eligible for flat add-ons.
var retainerTerms = []retainerTerm{
	{12, "ambassador", 0.25},
	{6, "6-month", 0.15},
	{3, "3-month", 0.10},
	{1, "monthly", 0},
}

// retainerFormats is the deliverable rate card a retainer quotes
var retainerFormats = []string{"post", "story", "reel", "video"}
