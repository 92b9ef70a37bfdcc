// Package engine - sponsored (flat-fee) pricer
package engine

import (
	"fmt"

	"github.com/shopspring/decimal"

	"creator-rates/core/rates"
	"creator-rates/core/types"
)

// CalculateSponsoredPrice prices a sponsored deliverable through the
// full layer stack. Layer order is fixed and part of the contract:
// base rate, platform, regional, engagement, niche, format, fit score,
// usage rights, whitelisting, complexity, seasonal.
func CalculateSponsoredPrice(profile *types.CreatorProfile, brief *types.ParsedBrief, fit *types.FitScoreResult) *types.PricingResult {
	tier := rates.TierOf(profile.TotalReach)
	base := rates.BaseRate(tier)
	symbol := profile.Symbol()

	stack := newLayerStack(symbol, "Base Rate",
		fmt.Sprintf("%s tier base rate", tier), base)

	stack.apply("Platform",
		fmt.Sprintf("platform economics: %s", displayKey(brief.Platform, "baseline")),
		rates.PlatformMultiplier(brief.Platform))

	stack.apply("Regional",
		fmt.Sprintf("audience region: %s", displayKey(profile.Region, "not specified")),
		rates.RegionalMultiplier(profile.Region))

	stack.apply("Engagement Multiplier",
		fmt.Sprintf("%.1f%% engagement vs %.1f%% tier norm",
			profile.EngagementRate, rates.EngagementNorm(tier)),
		rates.EngagementMultiplier(tier, profile.EngagementRate))

	stack.apply("Niche Premium",
		fmt.Sprintf("primary niche: %s", displayKey(profile.PrimaryNiche(), "lifestyle baseline")),
		rates.NichePremium(profile.PrimaryNiche()))

	stack.apply("Format Premium",
		fmt.Sprintf("content format: %s", displayKey(brief.Format, "baseline")),
		rates.FormatPremium(brief.Format))

	applyFitScore(stack, fit)
	applyUsageRights(stack, brief.UsageRights)
	applyWhitelisting(stack, brief.UsageRights.Whitelisting)

	stack.apply("Complexity",
		fmt.Sprintf("production difficulty: %s", displayKey(brief.Format, "baseline")),
		rates.ComplexityMultiplier(brief.Format))

	applySeasonal(stack, brief)

	return finishResult(types.ModelFlatFee, profile, brief.EffectiveQuantity(), stack)
}

// applyFitScore converts the externally computed fit adjustment into a
// layer; a missing fit score is neutral
func applyFitScore(stack *layerStack, fit *types.FitScoreResult) {
	if fit == nil {
		stack.apply("Fit Score", "no fit score supplied", 1.0)
		return
	}
	stack.apply("Fit Score",
		fmt.Sprintf("%s fit (score %.0f)", fit.Level, fit.Score),
		1+fit.PriceAdjustment)
}

// applyUsageRights folds duration, exclusivity and paid amplification
// into one multiplier layer
func applyUsageRights(stack *layerStack, r types.UsageRights) {
	stack.apply("Usage Rights",
		fmt.Sprintf("%d-day usage, %s exclusivity", r.DurationDays, displayKey(string(r.Exclusivity), "no")),
		rates.UsageRightsMultiplier(r))
}

// applyWhitelisting prices the brand's paid-ads access as a premium on
// top of usage rights
func applyWhitelisting(stack *layerStack, w types.WhitelistingType) {
	stack.apply("Whitelisting",
		fmt.Sprintf("whitelisting: %s", displayKey(string(w), "none")),
		1+rates.WhitelistingPremium(w))
}

// applySeasonal resolves the campaign date into a seasonal layer; the
// layer stays in the breakdown, neutral, when seasonality is disabled
func applySeasonal(stack *layerStack, brief *types.ParsedBrief) {
	if brief.DisableSeasonal {
		stack.apply("Seasonal", "seasonal adjustment disabled", 1.0)
		return
	}
	season := rates.SeasonalPremium(rates.ResolveCampaignDate(brief.CampaignDate))
	stack.apply("Seasonal", season.DisplayName, 1+season.Premium)
}

// finishResult rounds the stacked price and assembles the result
func finishResult(model types.PricingModel, profile *types.CreatorProfile, quantity int, stack *layerStack) *types.PricingResult {
	per := rates.Round5(stack.value)
	currency := profile.Currency
	if currency == "" {
		currency = types.CurrencyUSD
	}
	return &types.PricingResult{
		PricingModel:        model,
		Layers:              stack.layers,
		PricePerDeliverable: per,
		TotalPrice:          per.Mul(decimal.NewFromInt(int64(quantity))),
		Quantity:            quantity,
		Formula:             stack.formula(),
		Currency:            currency,
		CurrencySymbol:      profile.Symbol(),
		ValidityDays:        types.QuoteValidityDays,
	}
}

// displayKey renders a table key for layer descriptions
func displayKey(key, fallback string) string {
	if key == "" {
		return fallback
	}
	return key
}
