// Package types - Creator profile types
package types

// Currency represents a currency code
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// Symbol returns the display symbol for the currency
func (c Currency) Symbol() string {
	switch c {
	case CurrencyEUR:
		return "€"
	case CurrencyGBP:
		return "£"
	default:
		return "$"
	}
}

// Tier is an audience-size bucket driving the base rate
type Tier string

const (
	TierNano      Tier = "nano"
	TierMicro     Tier = "micro"
	TierMid       Tier = "mid"
	TierRising    Tier = "rising"
	TierMacro     Tier = "macro"
	TierMega      Tier = "mega"
	TierCelebrity Tier = "celebrity"
)

// String returns the string representation
func (t Tier) String() string {
	return string(t)
}

// CreatorProfile describes a creator's audience.
// The profile is read-only input to the engine; the tier is always derived
// from TotalReach at pricing time, never trusted from the caller.
type CreatorProfile struct {
	// TotalReach is the total follower/subscriber count
	TotalReach int64 `json:"total_reach"`

	// EngagementRate is the audience engagement rate in percent
	EngagementRate float64 `json:"engagement_rate"`

	// Niches is the ordered niche tag list; the first entry is the
	// primary niche used for pricing
	Niches []string `json:"niches,omitempty"`

	// Region is the creator's audience region, empty when not specified
	Region string `json:"region,omitempty"`

	// Currency is the quoting currency code
	Currency Currency `json:"currency,omitempty"`

	// CurrencySymbol overrides the currency's display symbol when set
	CurrencySymbol string `json:"currency_symbol,omitempty"`
}

// PrimaryNiche returns the first niche tag, or "" when none is set
func (p *CreatorProfile) PrimaryNiche() string {
	if len(p.Niches) == 0 {
		return ""
	}
	return p.Niches[0]
}

// Symbol returns the symbol used when rendering amounts for this profile
func (p *CreatorProfile) Symbol() string {
	if p.CurrencySymbol != "" {
		return p.CurrencySymbol
	}
	return p.Currency.Symbol()
}

// FitScoreResult is an externally computed brand/creator compatibility
// score. The engine consumes the price adjustment as an opaque layer and
// never recomputes the score itself.
type FitScoreResult struct {
	// Score is the compatibility score (0-100)
	Score float64 `json:"score"`

	// Level is the qualitative fit level (e.g. "strong", "moderate")
	Level string `json:"level"`

	// PriceAdjustment is the fractional price adjustment (e.g. +0.15)
	PriceAdjustment float64 `json:"price_adjustment"`
}
