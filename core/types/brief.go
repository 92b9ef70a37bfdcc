// Package types - Campaign brief types
package types

import "github.com/shopspring/decimal"

// DealType distinguishes sponsored posting from UGC production
type DealType string

const (
	DealSponsored DealType = "sponsored"
	DealUGC       DealType = "ugc"
)

// UGCFormat is the deliverable format for UGC deals
type UGCFormat string

const (
	UGCVideo UGCFormat = "video"
	UGCPhoto UGCFormat = "photo"
)

// PricingModel selects how a brief is priced. The set is closed; the
// router switches over it exhaustively.
type PricingModel string

const (
	ModelFlatFee     PricingModel = "flat_fee"
	ModelUGC         PricingModel = "ugc"
	ModelAffiliate   PricingModel = "affiliate"
	ModelHybrid      PricingModel = "hybrid"
	ModelPerformance PricingModel = "performance"
	ModelRetainer    PricingModel = "retainer"
)

// Exclusivity is the exclusivity grant in a usage-rights block
type Exclusivity string

const (
	ExclusivityNone     Exclusivity = "none"
	ExclusivityCategory Exclusivity = "category"
	ExclusivityFull     Exclusivity = "full"
)

// WhitelistingType is the brand's paid-ads access to creator content
type WhitelistingType string

const (
	WhitelistNone       WhitelistingType = "none"
	WhitelistOrganic    WhitelistingType = "organic"
	WhitelistPaidSocial WhitelistingType = "paid_social"
	WhitelistFullMedia  WhitelistingType = "full_media"
)

// UsageRights describes the rights block of a brief
type UsageRights struct {
	// DurationDays is the licensed usage window; 0 means organic only
	DurationDays int `json:"duration_days"`

	// Perpetual marks an unlimited usage window
	Perpetual bool `json:"perpetual,omitempty"`

	// Exclusivity is the exclusivity grant
	Exclusivity Exclusivity `json:"exclusivity,omitempty"`

	// PaidAmplification allows the brand to boost the creator's post
	PaidAmplification bool `json:"paid_amplification,omitempty"`

	// Whitelisting is the whitelisting grant, if any
	Whitelisting WhitelistingType `json:"whitelisting,omitempty"`
}

// AffiliateConfig configures affiliate and hybrid pricing
type AffiliateConfig struct {
	// CommissionRate is the commission percentage (e.g. 15 for 15%)
	CommissionRate float64 `json:"commission_rate"`

	// EstimatedSales is the expected attributable sales count
	EstimatedSales int `json:"estimated_sales"`

	// AverageOrderValue is the expected order value
	AverageOrderValue decimal.Decimal `json:"average_order_value"`

	// Category optionally selects a product category, used only to
	// surface the typical commission range for that category
	Category string `json:"category,omitempty"`
}

// PerformanceMetric is the metric a performance bonus is gated on
type PerformanceMetric string

const (
	MetricClicks      PerformanceMetric = "clicks"
	MetricSales       PerformanceMetric = "sales"
	MetricConversions PerformanceMetric = "conversions"
	MetricViews       PerformanceMetric = "views"
)

// PerformanceConfig configures performance-bonus pricing. The engine
// prices the guaranteed fee and the bonus; evaluating whether the
// threshold was met happens outside the engine.
type PerformanceConfig struct {
	// Metric is the bonus-gating metric
	Metric PerformanceMetric `json:"metric"`

	// Threshold is the metric value that unlocks the bonus
	Threshold int64 `json:"threshold"`

	// BonusAmount is the bonus paid when the threshold is met
	BonusAmount decimal.Decimal `json:"bonus_amount"`
}

// RetainerConfig configures retainer/ambassador pricing
type RetainerConfig struct {
	// ContractMonths is the contract length (1, 3, 6 or 12)
	ContractMonths int `json:"contract_months"`

	// Monthly deliverable counts
	PostsPerMonth   int `json:"posts_per_month"`
	StoriesPerMonth int `json:"stories_per_month"`
	ReelsPerMonth   int `json:"reels_per_month"`
	VideosPerMonth  int `json:"videos_per_month"`

	// Ambassador (12-month) flat add-ons, caller-supplied
	ExclusivityPremium  decimal.Decimal `json:"exclusivity_premium,omitempty"`
	PaidAppearanceValue decimal.Decimal `json:"paid_appearance_value,omitempty"`
	ProductSeedingValue decimal.Decimal `json:"product_seeding_value,omitempty"`
}

// ParsedBrief is a campaign brief after parsing. Exactly one pricing
// model is active per brief; config blocks for inactive models are
// ignored rather than validated.
type ParsedBrief struct {
	// Brand is the sponsoring brand name
	Brand string `json:"brand,omitempty"`

	// Industry is the brand's industry
	Industry string `json:"industry,omitempty"`

	// Platform is the posting platform (sponsored deals)
	Platform string `json:"platform,omitempty"`

	// Format is the content format (e.g. "reel", "video")
	Format string `json:"format,omitempty"`

	// Quantity is the number of deliverables
	Quantity int `json:"quantity"`

	// UsageRights is the usage-rights block
	UsageRights UsageRights `json:"usage_rights"`

	// CampaignDate is the planned campaign date as written in the
	// brief; empty or unparsable means "price for today"
	CampaignDate string `json:"campaign_date,omitempty"`

	// DealType distinguishes sponsored from UGC; empty means sponsored
	DealType DealType `json:"deal_type,omitempty"`

	// UGCFormat is the UGC deliverable format when DealType is ugc
	UGCFormat UGCFormat `json:"ugc_format,omitempty"`

	// PricingModel selects the pricer; empty means flat fee
	PricingModel PricingModel `json:"pricing_model,omitempty"`

	// Affiliate configures affiliate and hybrid pricing
	Affiliate *AffiliateConfig `json:"affiliate,omitempty"`

	// Performance configures performance-bonus pricing
	Performance *PerformanceConfig `json:"performance,omitempty"`

	// Retainer configures retainer/ambassador pricing
	Retainer *RetainerConfig `json:"retainer,omitempty"`

	// DisableSeasonal neutralizes the seasonal layer
	DisableSeasonal bool `json:"disable_seasonal,omitempty"`
}

// EffectiveQuantity returns the deliverable count, defaulting to 1
func (b *ParsedBrief) EffectiveQuantity() int {
	if b.Quantity <= 0 {
		return 1
	}
	return b.Quantity
}
