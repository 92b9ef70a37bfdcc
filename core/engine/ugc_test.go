package engine

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"creator-rates/core/types"
)

func ugcVideoBrief() *types.ParsedBrief {
	return &types.ParsedBrief{
		DealType:     types.DealUGC,
		UGCFormat:    types.UGCVideo,
		Quantity:     1,
		CampaignDate: "2026-03-10",
		UsageRights:  types.UsageRights{DurationDays: 30},
	}
}

func TestUGCIgnoresAudienceSize(t *testing.T) {
	small := &types.CreatorProfile{TotalReach: 5_000, EngagementRate: 8.0}
	huge := &types.CreatorProfile{TotalReach: 5_000_000, EngagementRate: 0.5}

	a := CalculateUGCPrice(ugcVideoBrief(), small)
	b := CalculateUGCPrice(ugcVideoBrief(), huge)

	assert.True(t, a.PricePerDeliverable.Equal(b.PricePerDeliverable),
		"UGC must price identically for any audience: %s vs %s",
		a.PricePerDeliverable, b.PricePerDeliverable)
}

func TestUGCVideoLayers(t *testing.T) {
	result := CalculateUGCPrice(ugcVideoBrief(), &types.CreatorProfile{TotalReach: 5_000})

	// UGC base, usage rights, whitelisting, complexity, seasonal only
	require.Len(t, result.Layers, 5)
	assert.Equal(t, "UGC Base Rate", result.Layers[0].Name)
	assert.True(t, result.Layers[0].Adjustment.Equal(decimal.NewFromInt(175)))

	for _, layer := range result.Layers {
		assert.NotContains(t, []string{
			"Niche Premium", "Platform", "Regional", "Fit Score", "Engagement Multiplier",
		}, layer.Name)
	}

	// 175 x 1.15 (usage) x 1.3 (video complexity) = 261.625, rounded to 260
	assert.True(t, result.PricePerDeliverable.Equal(decimal.NewFromInt(260)),
		"got %s", result.PricePerDeliverable)
	assert.Equal(t, types.ModelUGC, result.PricingModel)
}

func TestUGCPhotoBaseRate(t *testing.T) {
	brief := ugcVideoBrief()
	brief.UGCFormat = types.UGCPhoto
	brief.UsageRights = types.UsageRights{}

	result := CalculateUGCPrice(brief, &types.CreatorProfile{})
	assert.True(t, result.Layers[0].Adjustment.Equal(decimal.NewFromInt(100)))
	assert.True(t, result.PricePerDeliverable.Equal(decimal.NewFromInt(100)))
}

func TestUGCRoundsToFive(t *testing.T) {
	brief := ugcVideoBrief()
	brief.UsageRights = types.UsageRights{
		DurationDays: 90,
		Whitelisting: types.WhitelistPaidSocial,
	}
	result := CalculateUGCPrice(brief, &types.CreatorProfile{})
	assert.True(t, result.PricePerDeliverable.Mod(five).IsZero(),
		"got %s", result.PricePerDeliverable)
}
