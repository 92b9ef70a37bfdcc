// Package engine - performance (base + bonus) composer
package engine

import (
	"github.com/shopspring/decimal"

	"creator-rates/core/rates"
	"creator-rates/core/types"
)

// CalculatePerformancePrice composes a performance deal. Unlike
// hybrid, the base fee is the full, undiscounted sponsored rate; the
// bonus sits on top and is paid only when the metric threshold is
// met. The engine prices the two numbers; evaluating the metric is
// the caller's business.
func CalculatePerformancePrice(baseFee decimal.Decimal, cfg types.PerformanceConfig) types.PerformanceBreakdown {
	bonus := rates.Round5(cfg.BonusAmount)
	return types.PerformanceBreakdown{
		BaseFee:        baseFee,
		Metric:         cfg.Metric,
		Threshold:      cfg.Threshold,
		BonusAmount:    bonus,
		PotentialTotal: baseFee.Add(bonus),
	}
}
