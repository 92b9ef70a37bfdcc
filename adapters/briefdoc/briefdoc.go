// Package briefdoc parses campaign brief documents written in HCL
// into engine inputs. A document carries a profile block, a brief
// block, and optionally a fit_score block.
package briefdoc

import (
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/shopspring/decimal"

	"creator-rates/core/types"
	"creator-rates/internal/errors"
)

// QuoteInput is a fully parsed brief document
type QuoteInput struct {
	Profile types.CreatorProfile
	Brief   types.ParsedBrief
	Fit     *types.FitScoreResult
}

type document struct {
	Profile *profileBlock `hcl:"profile,block"`
	Brief   *briefBlock   `hcl:"brief,block"`
	Fit     *fitBlock     `hcl:"fit_score,block"`
}

type profileBlock struct {
	Followers      int64    `hcl:"followers"`
	EngagementRate float64  `hcl:"engagement_rate,optional"`
	Niches         []string `hcl:"niches,optional"`
	Region         string   `hcl:"region,optional"`
	Currency       string   `hcl:"currency,optional"`
	CurrencySymbol string   `hcl:"currency_symbol,optional"`
}

type briefBlock struct {
	Brand           string `hcl:"brand,optional"`
	Industry        string `hcl:"industry,optional"`
	Platform        string `hcl:"platform,optional"`
	Format          string `hcl:"format,optional"`
	Quantity        int    `hcl:"quantity,optional"`
	CampaignDate    string `hcl:"campaign_date,optional"`
	DealType        string `hcl:"deal_type,optional"`
	UGCFormat       string `hcl:"ugc_format,optional"`
	PricingModel    string `hcl:"pricing_model,optional"`
	DisableSeasonal bool   `hcl:"disable_seasonal,optional"`

	Usage       *usageBlock       `hcl:"usage_rights,block"`
	Affiliate   *affiliateBlock   `hcl:"affiliate,block"`
	Performance *performanceBlock `hcl:"performance,block"`
	Retainer    *retainerBlock    `hcl:"retainer,block"`
}

type usageBlock struct {
	DurationDays      int    `hcl:"duration_days,optional"`
	Perpetual         bool   `hcl:"perpetual,optional"`
	Exclusivity       string `hcl:"exclusivity,optional"`
	PaidAmplification bool   `hcl:"paid_amplification,optional"`
	Whitelisting      string `hcl:"whitelisting,optional"`
}

type affiliateBlock struct {
	CommissionRate    float64 `hcl:"commission_rate,optional"`
	EstimatedSales    int     `hcl:"estimated_sales,optional"`
	AverageOrderValue float64 `hcl:"average_order_value,optional"`
	Category          string  `hcl:"category,optional"`
}

type performanceBlock struct {
	Metric      string  `hcl:"metric,optional"`
	Threshold   int64   `hcl:"threshold,optional"`
	BonusAmount float64 `hcl:"bonus_amount,optional"`
}

type retainerBlock struct {
	ContractMonths      int     `hcl:"contract_months,optional"`
	PostsPerMonth       int     `hcl:"posts_per_month,optional"`
	StoriesPerMonth     int     `hcl:"stories_per_month,optional"`
	ReelsPerMonth       int     `hcl:"reels_per_month,optional"`
	VideosPerMonth      int     `hcl:"videos_per_month,optional"`
	ExclusivityPremium  float64 `hcl:"exclusivity_premium,optional"`
	PaidAppearanceValue float64 `hcl:"paid_appearance_value,optional"`
	ProductSeedingValue float64 `hcl:"product_seeding_value,optional"`
}

type fitBlock struct {
	Score           float64 `hcl:"score,optional"`
	Level           string  `hcl:"level,optional"`
	PriceAdjustment float64 `hcl:"price_adjustment,optional"`
}

// ParseFile parses a brief document from disk
func ParseFile(path string) (*QuoteInput, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.TypeDocument, "reading brief document", err)
	}
	return Parse(src, path)
}

// Parse parses a brief document from source
func Parse(src []byte, filename string) (*QuoteInput, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Wrap(errors.TypeDocument, "parsing brief document", diags)
	}

	var doc document
	if diags := gohcl.DecodeBody(file.Body, nil, &doc); diags.HasErrors() {
		return nil, errors.Wrap(errors.TypeDocument, "decoding brief document", diags)
	}
	if doc.Profile == nil {
		return nil, errors.New(errors.TypeDocument, "brief document has no profile block")
	}
	if doc.Brief == nil {
		return nil, errors.New(errors.TypeDocument, "brief document has no brief block")
	}

	input := &QuoteInput{
		Profile: doc.Profile.toProfile(),
		Brief:   doc.Brief.toBrief(),
	}
	if doc.Fit != nil {
		input.Fit = &types.FitScoreResult{
			Score:           doc.Fit.Score,
			Level:           doc.Fit.Level,
			PriceAdjustment: doc.Fit.PriceAdjustment,
		}
	}
	return input, nil
}

func (b *profileBlock) toProfile() types.CreatorProfile {
	return types.CreatorProfile{
		TotalReach:     b.Followers,
		EngagementRate: b.EngagementRate,
		Niches:         b.Niches,
		Region:         b.Region,
		Currency:       types.Currency(b.Currency),
		CurrencySymbol: b.CurrencySymbol,
	}
}

func (b *briefBlock) toBrief() types.ParsedBrief {
	brief := types.ParsedBrief{
		Brand:           b.Brand,
		Industry:        b.Industry,
		Platform:        b.Platform,
		Format:          b.Format,
		Quantity:        b.Quantity,
		CampaignDate:    b.CampaignDate,
		DealType:        types.DealType(b.DealType),
		UGCFormat:       types.UGCFormat(b.UGCFormat),
		PricingModel:    types.PricingModel(b.PricingModel),
		DisableSeasonal: b.DisableSeasonal,
	}
	if b.Usage != nil {
		brief.UsageRights = types.UsageRights{
			DurationDays:      b.Usage.DurationDays,
			Perpetual:         b.Usage.Perpetual,
			Exclusivity:       types.Exclusivity(b.Usage.Exclusivity),
			PaidAmplification: b.Usage.PaidAmplification,
			Whitelisting:      types.WhitelistingType(b.Usage.Whitelisting),
		}
	}
	if b.Affiliate != nil {
		brief.Affiliate = &types.AffiliateConfig{
			CommissionRate:    b.Affiliate.CommissionRate,
			EstimatedSales:    b.Affiliate.EstimatedSales,
			AverageOrderValue: decimal.NewFromFloat(b.Affiliate.AverageOrderValue),
			Category:          b.Affiliate.Category,
		}
	}
	if b.Performance != nil {
		brief.Performance = &types.PerformanceConfig{
			Metric:      types.PerformanceMetric(b.Performance.Metric),
			Threshold:   b.Performance.Threshold,
			BonusAmount: decimal.NewFromFloat(b.Performance.BonusAmount),
		}
	}
	if b.Retainer != nil {
		brief.Retainer = &types.RetainerConfig{
			ContractMonths:      b.Retainer.ContractMonths,
			PostsPerMonth:       b.Retainer.PostsPerMonth,
			StoriesPerMonth:     b.Retainer.StoriesPerMonth,
			ReelsPerMonth:       b.Retainer.ReelsPerMonth,
			VideosPerMonth:      b.Retainer.VideosPerMonth,
			ExclusivityPremium:  decimal.NewFromFloat(b.Retainer.ExclusivityPremium),
			PaidAppearanceValue: decimal.NewFromFloat(b.Retainer.PaidAppearanceValue),
			ProductSeedingValue: decimal.NewFromFloat(b.Retainer.ProductSeedingValue),
		}
	}
	return brief
}
