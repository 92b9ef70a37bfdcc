package engine

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"creator-rates/core/types"
)

func TestAffiliateEarnings(t *testing.T) {
	b := CalculateAffiliateEarnings(types.AffiliateConfig{
		CommissionRate:    15,
		EstimatedSales:    100,
		AverageOrderValue: decimal.NewFromInt(50),
	})

	// 15% x 100 x $50 = $750
	assert.True(t, b.EstimatedEarnings.Equal(decimal.NewFromInt(750)),
		"got %s", b.EstimatedEarnings)
	assert.Nil(t, b.TypicalRange)
}

func TestAffiliateCategoryRangeIsDisplayOnly(t *testing.T) {
	cfg := types.AffiliateConfig{
		CommissionRate:    15,
		EstimatedSales:    100,
		AverageOrderValue: decimal.NewFromInt(50),
		Category:          "beauty",
	}
	b := CalculateAffiliateEarnings(cfg)

	require.NotNil(t, b.TypicalRange)
	assert.Equal(t, 15.0, b.TypicalRange.Min)
	assert.Equal(t, 25.0, b.TypicalRange.Max)

	// the range never alters the earnings formula
	assert.True(t, b.EstimatedEarnings.Equal(decimal.NewFromInt(750)))
}

func TestAffiliateEarningsRound(t *testing.T) {
	b := CalculateAffiliateEarnings(types.AffiliateConfig{
		CommissionRate:    12.5,
		EstimatedSales:    37,
		AverageOrderValue: decimal.NewFromFloat(19.99),
	})
	// 0.125 x 37 x 19.99 = 92.45375, rounded to 90
	assert.True(t, b.EstimatedEarnings.Equal(decimal.NewFromInt(90)),
		"got %s", b.EstimatedEarnings)
}

func TestHybridBaseFeeIsHalfFullRate(t *testing.T) {
	b := CalculateHybridPrice(decimal.NewFromInt(1310), types.AffiliateConfig{
		CommissionRate:    15,
		EstimatedSales:    100,
		AverageOrderValue: decimal.NewFromInt(50),
	})

	assert.True(t, b.BaseFee.Equal(decimal.NewFromInt(655)), "got %s", b.BaseFee)
	assert.True(t, b.Affiliate.EstimatedEarnings.Equal(decimal.NewFromInt(750)))
	assert.True(t, b.CombinedEstimate.Equal(decimal.NewFromInt(1405)), "got %s", b.CombinedEstimate)
}

func TestHybridRoundsBaseFeeIndependently(t *testing.T) {
	// 1313 x 0.5 = 656.5 rounds to 655; earnings are rounded on their own
	b := CalculateHybridPrice(decimal.NewFromInt(1313), types.AffiliateConfig{
		CommissionRate:    10,
		EstimatedSales:    10,
		AverageOrderValue: decimal.NewFromFloat(10.30),
	})
	assert.True(t, b.BaseFee.Equal(decimal.NewFromInt(655)), "got %s", b.BaseFee)
	// 0.10 x 10 x 10.30 = 10.30 rounds to 10
	assert.True(t, b.Affiliate.EstimatedEarnings.Equal(decimal.NewFromInt(10)))
	assert.True(t, b.CombinedEstimate.Equal(decimal.NewFromInt(665)))
}

func TestPerformancePotentialTotal(t *testing.T) {
	b := CalculatePerformancePrice(decimal.NewFromInt(1310), types.PerformanceConfig{
		Metric:      types.MetricClicks,
		Threshold:   10_000,
		BonusAmount: decimal.NewFromInt(500),
	})

	assert.True(t, b.BaseFee.Equal(decimal.NewFromInt(1310)))
	assert.True(t, b.BonusAmount.Equal(decimal.NewFromInt(500)))
	assert.True(t, b.PotentialTotal.Equal(decimal.NewFromInt(1810)), "got %s", b.PotentialTotal)
	assert.Equal(t, types.MetricClicks, b.Metric)
	assert.Equal(t, int64(10_000), b.Threshold)
}

func TestPerformanceBonusRounds(t *testing.T) {
	b := CalculatePerformancePrice(decimal.NewFromInt(1310), types.PerformanceConfig{
		BonusAmount: decimal.NewFromInt(497),
	})
	assert.True(t, b.BonusAmount.Equal(decimal.NewFromInt(495)))
	assert.True(t, b.PotentialTotal.Equal(decimal.NewFromInt(1805)))
}
