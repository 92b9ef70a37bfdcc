package engine

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"creator-rates/core/types"
)

func TestRouterDefaultsToFlatFee(t *testing.T) {
	result := CalculatePrice(microFinanceProfile(), instagramReelBrief(), nil)
	assert.Equal(t, types.ModelFlatFee, result.PricingModel)
	assert.True(t, result.PricePerDeliverable.Equal(decimal.NewFromInt(1310)))
}

func TestRouterUnknownModelPricesAsFlatFee(t *testing.T) {
	brief := instagramReelBrief()
	brief.PricingModel = types.PricingModel("barter")
	result := CalculatePrice(microFinanceProfile(), brief, nil)
	assert.Equal(t, types.ModelFlatFee, result.PricingModel)
}

func TestRouterUGCDealTypeWinsOverModel(t *testing.T) {
	brief := ugcVideoBrief()
	brief.PricingModel = types.ModelAffiliate // ignored for UGC deals
	result := CalculatePrice(&types.CreatorProfile{TotalReach: 42}, brief, nil)
	assert.Equal(t, types.ModelUGC, result.PricingModel)
	assert.Equal(t, "UGC Base Rate", result.Layers[0].Name)
}

func TestRouterAffiliate(t *testing.T) {
	brief := instagramReelBrief()
	brief.PricingModel = types.ModelAffiliate
	brief.Affiliate = &types.AffiliateConfig{
		CommissionRate:    15,
		EstimatedSales:    100,
		AverageOrderValue: decimal.NewFromInt(50),
	}

	result := CalculatePrice(microFinanceProfile(), brief, nil)

	assert.Equal(t, types.ModelAffiliate, result.PricingModel)
	require.NotNil(t, result.Affiliate)
	assert.True(t, result.PricePerDeliverable.Equal(decimal.NewFromInt(750)))

	require.Len(t, result.Layers, 4)
	names := make([]string, len(result.Layers))
	for i, l := range result.Layers {
		names[i] = l.Name
	}
	assert.Equal(t, []string{
		"Commission Rate", "Estimated Sales", "Average Order Value", "Estimated Earnings",
	}, names)
}

func TestRouterHybridRunsFullSponsoredStack(t *testing.T) {
	brief := instagramReelBrief()
	brief.PricingModel = types.ModelHybrid
	brief.Affiliate = &types.AffiliateConfig{
		CommissionRate:    15,
		EstimatedSales:    100,
		AverageOrderValue: decimal.NewFromInt(50),
	}

	result := CalculatePrice(microFinanceProfile(), brief, nil)

	assert.Equal(t, types.ModelHybrid, result.PricingModel)
	require.NotNil(t, result.Hybrid)

	// full sponsored rate is 1310; base fee is half, rounded
	assert.True(t, result.Hybrid.BaseFee.Equal(decimal.NewFromInt(655)))
	assert.True(t, result.PricePerDeliverable.Equal(decimal.NewFromInt(655)))
	assert.True(t, result.TotalPrice.Equal(decimal.NewFromInt(1405)))

	// the sponsored layer stack is still present for the breakdown
	assert.Len(t, result.Layers, 11)
}

func TestRouterPerformanceKeepsFullBaseFee(t *testing.T) {
	brief := instagramReelBrief()
	brief.PricingModel = types.ModelPerformance
	brief.Performance = &types.PerformanceConfig{
		Metric:      types.MetricConversions,
		Threshold:   250,
		BonusAmount: decimal.NewFromInt(500),
	}

	result := CalculatePrice(microFinanceProfile(), brief, nil)

	assert.Equal(t, types.ModelPerformance, result.PricingModel)
	require.NotNil(t, result.Performance)

	// performance keeps the full, undiscounted sponsored rate
	assert.True(t, result.Performance.BaseFee.Equal(decimal.NewFromInt(1310)))
	assert.True(t, result.PricePerDeliverable.Equal(decimal.NewFromInt(1310)))
	assert.True(t, result.Performance.PotentialTotal.Equal(decimal.NewFromInt(1810)))
}

func TestRouterRetainer(t *testing.T) {
	result := CalculatePrice(microFinanceProfile(), ambassadorBrief(), nil)

	assert.Equal(t, types.ModelRetainer, result.PricingModel)
	require.NotNil(t, result.Retainer)
	assert.True(t, result.PricePerDeliverable.Equal(decimal.NewFromInt(7910)))
	assert.True(t, result.TotalPrice.Equal(decimal.NewFromInt(98_920)))
	assert.Equal(t, 12, result.Quantity)
}

func TestRouterMissingConfigStillPrices(t *testing.T) {
	// inactive/missing model configs are ignored, not validated
	brief := instagramReelBrief()
	brief.PricingModel = types.ModelAffiliate

	result := CalculatePrice(microFinanceProfile(), brief, nil)
	assert.Equal(t, types.ModelAffiliate, result.PricingModel)
	assert.True(t, result.PricePerDeliverable.IsZero())
}
