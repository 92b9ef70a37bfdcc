// Package rates - read-only table snapshots
package rates

import "creator-rates/core/types"

// TierRate is one row of the tier rate card
type TierRate struct {
	Tier         types.Tier `json:"tier"`
	MinFollowers int64      `json:"min_followers"`
	BaseRate     int64      `json:"base_rate"`
}

// SeasonWindow is one row of the seasonal calendar
type SeasonWindow struct {
	Period      SeasonPeriod `json:"period"`
	DisplayName string       `json:"display_name"`
	Window      string       `json:"window"`
	Premium     float64      `json:"premium"`
}

// TierTable returns the tier rate card, smallest tier first
func TierTable() []TierRate {
	out := make([]TierRate, 0, len(tierBoundaries))
	for i := len(tierBoundaries) - 1; i >= 0; i-- {
		b := tierBoundaries[i]
		out = append(out, TierRate{
			Tier:         b.Tier,
			MinFollowers: b.Min,
			BaseRate:     baseRates[b.Tier],
		})
	}
	return out
}

// NicheTable returns a copy of the niche premium table
func NicheTable() map[string]float64 {
	return copyTable(nichePremiums)
}

// PlatformTable returns a copy of the platform multiplier table
func PlatformTable() map[string]float64 {
	return copyTable(platformMultipliers)
}

// RegionTable returns a copy of the regional multiplier table
func RegionTable() map[string]float64 {
	return copyTable(regionalMultipliers)
}

// WhitelistingTable returns a copy of the whitelisting premiums
func WhitelistingTable() map[string]float64 {
	out := make(map[string]float64, len(whitelistingPremiums))
	for k, v := range whitelistingPremiums {
		out[string(k)] = v
	}
	return out
}

// AffiliateCategoryTable returns a copy of the commission ranges
func AffiliateCategoryTable() map[string]types.CommissionRange {
	out := make(map[string]types.CommissionRange, len(affiliateCategoryRanges))
	for k, v := range affiliateCategoryRanges {
		out[k] = v
	}
	return out
}

// SeasonTable returns the seasonal calendar in priority order
func SeasonTable() []SeasonWindow {
	return []SeasonWindow{
		{PeriodQ4Holiday, "Q4 Holiday Season", "Nov 1 - Dec 31", 0.25},
		{PeriodBackToSchool, "Back to School", "Aug 1 - Sep 15", 0.15},
		{PeriodValentines, "Valentine's Day", "Feb 1 - Feb 14", 0.10},
		{PeriodSummer, "Summer", "Jun 1 - Jul 31", 0.05},
		{PeriodStandard, "Standard", "otherwise", 0},
	}
}

func copyTable(in map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
