// Package engine - UGC pricer
package engine

import (
	"fmt"

	"creator-rates/core/rates"
	"creator-rates/core/types"
)

// CalculateUGCPrice prices a UGC deliverable. UGC is bought for the
// content itself, not for distribution, so follower count and
// engagement rate are ignored entirely: a 5K-follower creator and a
// 5M-follower creator quote the same. The profile contributes only
// the currency.
func CalculateUGCPrice(brief *types.ParsedBrief, profile *types.CreatorProfile) *types.PricingResult {
	format := brief.UGCFormat
	if format == "" {
		format = types.UGCPhoto
	}
	base := rates.UGCBaseRate(format)

	stack := newLayerStack(profile.Symbol(), "UGC Base Rate",
		fmt.Sprintf("UGC %s base rate", format), base)

	applyUsageRights(stack, brief.UsageRights)
	applyWhitelisting(stack, brief.UsageRights.Whitelisting)

	stack.apply("Complexity",
		fmt.Sprintf("production difficulty: %s", format),
		rates.ComplexityMultiplier(string(format)))

	applySeasonal(stack, brief)

	return finishResult(types.ModelUGC, profile, brief.EffectiveQuantity(), stack)
}
