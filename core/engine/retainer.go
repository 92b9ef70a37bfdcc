// Package engine - retainer/ambassador composer
package engine

import (
	"github.com/shopspring/decimal"

	"creator-rates/core/rates"
	"creator-rates/core/types"
)

// CalculateRetainerPrice prices a long-term contract. Each deliverable
// format is priced through the sponsored stack at quantity one, the
// term's volume discount is applied per rate, and the discounted rate
// card times the monthly counts gives the monthly rate. Twelve-month
// (ambassador) contracts additionally carry the caller-supplied flat
// add-ons: exclusivity premium, paid appearances, product seeding.
func CalculateRetainerPrice(profile *types.CreatorProfile, brief *types.ParsedBrief, fit *types.FitScoreResult) types.RetainerBreakdown {
	cfg := brief.Retainer
	if cfg == nil {
		cfg = &types.RetainerConfig{ContractMonths: 1}
	}
	months := cfg.ContractMonths
	if months < 1 {
		months = 1
	}
	term, discount := rates.RetainerTerm(months)
	keep := decimal.NewFromFloat(1 - discount)

	counts := map[string]int{
		"post":  cfg.PostsPerMonth,
		"story": cfg.StoriesPerMonth,
		"reel":  cfg.ReelsPerMonth,
		"video": cfg.VideosPerMonth,
	}

	monthly := decimal.Zero
	var card []types.RetainerRate
	for _, format := range rates.RetainerFormats() {
		monthlyBrief := *brief
		monthlyBrief.Format = format
		monthlyBrief.Quantity = 1
		full := CalculateSponsoredPrice(profile, &monthlyBrief, fit)

		rate := rates.Round5(full.PricePerDeliverable.Mul(keep))
		card = append(card, types.RetainerRate{
			Format:   format,
			Rate:     rate,
			PerMonth: counts[format],
		})
		if counts[format] > 0 {
			monthly = monthly.Add(rate.Mul(decimal.NewFromInt(int64(counts[format]))))
		}
	}

	breakdown := types.RetainerBreakdown{
		ContractMonths: months,
		Term:           term,
		VolumeDiscount: discount,
		Rates:          card,
		MonthlyRate:    monthly,
	}

	total := monthly.Mul(decimal.NewFromInt(int64(months)))
	if term == "ambassador" {
		breakdown.ExclusivityPremium = rates.Round5(cfg.ExclusivityPremium)
		breakdown.PaidAppearanceValue = rates.Round5(cfg.PaidAppearanceValue)
		breakdown.ProductSeedingValue = rates.Round5(cfg.ProductSeedingValue)
		total = total.
			Add(breakdown.ExclusivityPremium).
			Add(breakdown.PaidAppearanceValue).
			Add(breakdown.ProductSeedingValue)
	}
	breakdown.TotalContractValue = total

	return breakdown
}
