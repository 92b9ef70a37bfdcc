// Package engine - pricing-model router
package engine

import (
	"fmt"

	"github.com/shopspring/decimal"

	"creator-rates/core/types"
)

// CalculatePrice dispatches a brief to the pricer its deal type and
// pricing model select, producing the uniform result shape with the
// model-specific breakdown attached. UGC deals short-circuit the
// pricing model entirely; everything unrecognized prices as flat fee.
func CalculatePrice(profile *types.CreatorProfile, brief *types.ParsedBrief, fit *types.FitScoreResult) *types.PricingResult {
	if brief.DealType == types.DealUGC {
		return CalculateUGCPrice(brief, profile)
	}

	switch brief.PricingModel {
	case types.ModelUGC:
		return CalculateUGCPrice(brief, profile)

	case types.ModelAffiliate:
		return affiliateResult(profile, affiliateConfig(brief))

	case types.ModelHybrid:
		return hybridResult(profile, brief, fit)

	case types.ModelPerformance:
		return performanceResult(profile, brief, fit)

	case types.ModelRetainer:
		return retainerResult(profile, brief, fit)

	case types.ModelFlatFee, types.PricingModel(""):
		return CalculateSponsoredPrice(profile, brief, fit)

	default:
		// unrecognized model tags price as flat fee
		return CalculateSponsoredPrice(profile, brief, fit)
	}
}

// affiliateConfig returns the brief's affiliate config, zero when the
// brief carries none; configs of inactive models are never validated
func affiliateConfig(brief *types.ParsedBrief) types.AffiliateConfig {
	if brief.Affiliate == nil {
		return types.AffiliateConfig{}
	}
	return *brief.Affiliate
}

// hybridResult runs the full sponsored stack to derive the full rate,
// then composes the hybrid breakdown on top of it
func hybridResult(profile *types.CreatorProfile, brief *types.ParsedBrief, fit *types.FitScoreResult) *types.PricingResult {
	full := CalculateSponsoredPrice(profile, brief, fit)
	b := CalculateHybridPrice(full.PricePerDeliverable, affiliateConfig(brief))

	result := *full
	result.PricingModel = types.ModelHybrid
	result.Hybrid = &b
	result.PricePerDeliverable = b.BaseFee
	result.TotalPrice = b.CombinedEstimate
	result.Formula = fmt.Sprintf("%s%s × 0.5 + %s%s = %s%s",
		result.CurrencySymbol, full.PricePerDeliverable,
		result.CurrencySymbol, b.Affiliate.EstimatedEarnings,
		result.CurrencySymbol, b.CombinedEstimate)
	return &result
}

// performanceResult prices the full sponsored rate as the guaranteed
// fee and attaches the bonus breakdown
func performanceResult(profile *types.CreatorProfile, brief *types.ParsedBrief, fit *types.FitScoreResult) *types.PricingResult {
	full := CalculateSponsoredPrice(profile, brief, fit)

	cfg := types.PerformanceConfig{}
	if brief.Performance != nil {
		cfg = *brief.Performance
	}
	b := CalculatePerformancePrice(full.PricePerDeliverable, cfg)

	result := *full
	result.PricingModel = types.ModelPerformance
	result.Performance = &b
	return &result
}

// retainerResult wraps the retainer breakdown in the uniform result
// shape: the monthly rate is the per-deliverable figure, the total is
// the full contract value.
func retainerResult(profile *types.CreatorProfile, brief *types.ParsedBrief, fit *types.FitScoreResult) *types.PricingResult {
	b := CalculateRetainerPrice(profile, brief, fit)

	symbol := profile.Symbol()
	currency := profile.Currency
	if currency == "" {
		currency = types.CurrencyUSD
	}

	layers := []types.PricingLayer{{
		Name:        "Volume Discount",
		Description: fmt.Sprintf("%s term", b.Term),
		Multiplier:  1 - b.VolumeDiscount,
	}}
	for _, r := range b.Rates {
		layers = append(layers, types.PricingLayer{
			Name:        fmt.Sprintf("Monthly %ss", r.Format),
			Description: fmt.Sprintf("%d × %s%s per month", r.PerMonth, symbol, r.Rate),
			Adjustment:  r.Rate.Mul(decimal.NewFromInt(int64(r.PerMonth))),
			BaseValue:   b.MonthlyRate,
		})
	}

	formula := fmt.Sprintf("%s%s/month × %d months", symbol, b.MonthlyRate, b.ContractMonths)
	addOns := b.ExclusivityPremium.Add(b.PaidAppearanceValue).Add(b.ProductSeedingValue)
	if addOns.IsPositive() {
		formula += fmt.Sprintf(" + %s%s add-ons", symbol, addOns)
	}
	formula += fmt.Sprintf(" = %s%s", symbol, b.TotalContractValue)

	return &types.PricingResult{
		PricingModel:        types.ModelRetainer,
		Layers:              layers,
		PricePerDeliverable: b.MonthlyRate,
		TotalPrice:          b.TotalContractValue,
		Quantity:            b.ContractMonths,
		Formula:             formula,
		Currency:       currency,
		CurrencySymbol: symbol,
		ValidityDays:   types.QuoteValidityDays,
		Retainer:       &b,
	}
}
