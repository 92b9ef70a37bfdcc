// Package engine - affiliate earnings estimator
package engine

import (
	"fmt"

	"github.com/shopspring/decimal"

	"creator-rates/core/rates"
	"creator-rates/core/types"
)

var hundred = decimal.NewFromInt(100)

// CalculateAffiliateEarnings estimates commission earnings:
// Round5(rate% x estimated sales x average order value). There is no
// flat fee in a pure affiliate deal. A known product category adds the
// typical commission range for display; it never changes the formula.
func CalculateAffiliateEarnings(cfg types.AffiliateConfig) types.AffiliateBreakdown {
	rate := decimal.NewFromFloat(cfg.CommissionRate).Div(hundred)
	sales := decimal.NewFromInt(int64(cfg.EstimatedSales))
	earnings := rates.Round5(rate.Mul(sales).Mul(cfg.AverageOrderValue))

	breakdown := types.AffiliateBreakdown{
		CommissionRate:    cfg.CommissionRate,
		EstimatedSales:    cfg.EstimatedSales,
		AverageOrderValue: cfg.AverageOrderValue,
		EstimatedEarnings: earnings,
		Category:          cfg.Category,
	}
	if r, ok := rates.AffiliateCategoryRange(cfg.Category); ok {
		breakdown.TypicalRange = &r
	}
	return breakdown
}

// affiliateResult wraps an affiliate breakdown in the uniform result
// shape: four fixed layers and the earnings as the quote amount.
func affiliateResult(profile *types.CreatorProfile, cfg types.AffiliateConfig) *types.PricingResult {
	b := CalculateAffiliateEarnings(cfg)
	symbol := profile.Symbol()
	currency := profile.Currency
	if currency == "" {
		currency = types.CurrencyUSD
	}

	layers := []types.PricingLayer{
		{
			Name:        "Commission Rate",
			Description: fmt.Sprintf("%.4g%% commission", b.CommissionRate),
			Multiplier:  b.CommissionRate,
		},
		{
			Name:        "Estimated Sales",
			Description: fmt.Sprintf("%d attributable sales", b.EstimatedSales),
			Adjustment:  decimal.NewFromInt(int64(b.EstimatedSales)),
		},
		{
			Name:        "Average Order Value",
			Description: fmt.Sprintf("%s%s average order", symbol, b.AverageOrderValue),
			Adjustment:  b.AverageOrderValue,
		},
		{
			Name:        "Estimated Earnings",
			Description: "commission rate x sales x order value, rounded",
			Adjustment:  b.EstimatedEarnings,
			BaseValue:   b.EstimatedEarnings,
		},
	}

	return &types.PricingResult{
		PricingModel:        types.ModelAffiliate,
		Layers:              layers,
		PricePerDeliverable: b.EstimatedEarnings,
		TotalPrice:          b.EstimatedEarnings,
		Quantity:            1,
		Formula: fmt.Sprintf("%.4g%% × %d × %s%s = %s%s",
			b.CommissionRate, b.EstimatedSales, symbol, b.AverageOrderValue, symbol, b.EstimatedEarnings),
		Currency:       currency,
		CurrencySymbol: symbol,
		ValidityDays:   types.QuoteValidityDays,
		Affiliate:      &b,
	}
}
