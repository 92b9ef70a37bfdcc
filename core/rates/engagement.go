// Package rates - engagement-rate multiplier
package rates

import "creator-rates/core/types"

const (
	engagementFloor = 0.75
	engagementCap   = 1.50
	engagementSlope = 0.25
)

// EngagementNorm returns the typical engagement rate (percent) for a
// tier, used as the neutral point of the engagement layer
func EngagementNorm(tier types.Tier) float64 {
	if n, ok := engagementNorms[tier]; ok {
		return n
	}
	return engagementNorms[types.TierNano]
}

// EngagementMultiplier scales a creator's engagement rate against the
// tier norm. Engagement at the norm is neutral (1.0); each additional
// norm-multiple adds the slope, clamped to [0.75, 1.50]. Non-positive
// rates sit at the floor.
func EngagementMultiplier(tier types.Tier, rate float64) float64 {
	if rate <= 0 {
		return engagementFloor
	}
	m := engagementFloor + engagementSlope*(rate/EngagementNorm(tier))
	if m > engagementCap {
		return engagementCap
	}
	if m < engagementFloor {
		return engagementFloor
	}
	return m
}
