// Package engine - hybrid (base + affiliate) composer
package engine

import (
	"github.com/shopspring/decimal"

	"creator-rates/core/rates"
	"creator-rates/core/types"
)

var half = decimal.NewFromFloat(0.5)

// CalculateHybridPrice composes a hybrid deal from the full sponsored
// rate and an affiliate config. The base fee is half the full rate,
// rounded, guaranteed regardless of affiliate performance; the
// combined estimate adds the independently rounded affiliate earnings.
func CalculateHybridPrice(fullRate decimal.Decimal, cfg types.AffiliateConfig) types.HybridBreakdown {
	baseFee := rates.Round5(fullRate.Mul(half))
	affiliate := CalculateAffiliateEarnings(cfg)
	return types.HybridBreakdown{
		BaseFee:          baseFee,
		Affiliate:        affiliate,
		CombinedEstimate: baseFee.Add(affiliate.EstimatedEarnings),
	}
}
