// Package types - Pricing result types
package types

import "github.com/shopspring/decimal"

// QuoteValidityDays is how long a quote remains valid
const QuoteValidityDays = 14

// PricingLayer is one named adjustment in the ordered breakdown.
// A layer is either multiplicative (Multiplier != 0) or flat
// (Adjustment != 0); BaseValue is the running price after the layer
// was applied.
type PricingLayer struct {
	// Name is the layer name (e.g. "Niche Premium")
	Name string `json:"name"`

	// Description explains the layer in human terms
	Description string `json:"description"`

	// Multiplier is the multiplicative factor; 0 for flat layers
	Multiplier float64 `json:"multiplier,omitempty"`

	// Adjustment is the flat amount; zero for multiplicative layers
	Adjustment decimal.Decimal `json:"adjustment,omitempty"`

	// BaseValue is the resolved running value after this layer
	BaseValue decimal.Decimal `json:"base_value"`
}

// CommissionRange is a typical commission range for a product category
type CommissionRange struct {
	// Min is the low end of the typical rate, in percent
	Min float64 `json:"min"`

	// Max is the high end of the typical rate, in percent
	Max float64 `json:"max"`
}

// AffiliateBreakdown is the affiliate earnings estimate
type AffiliateBreakdown struct {
	// CommissionRate is the commission percentage used
	CommissionRate float64 `json:"commission_rate"`

	// EstimatedSales is the sales count used
	EstimatedSales int `json:"estimated_sales"`

	// AverageOrderValue is the order value used
	AverageOrderValue decimal.Decimal `json:"average_order_value"`

	// EstimatedEarnings is the rounded earnings estimate
	EstimatedEarnings decimal.Decimal `json:"estimated_earnings"`

	// Category is the product category, when supplied
	Category string `json:"category,omitempty"`

	// TypicalRange is the category's typical commission range; display
	// only, it never alters the earnings formula
	TypicalRange *CommissionRange `json:"typical_range,omitempty"`
}

// HybridBreakdown combines a guaranteed base fee with affiliate upside
type HybridBreakdown struct {
	// BaseFee is half the full sponsored rate, rounded; it is the
	// guaranteed floor regardless of affiliate performance
	BaseFee decimal.Decimal `json:"base_fee"`

	// Affiliate is the affiliate earnings estimate on top
	Affiliate AffiliateBreakdown `json:"affiliate"`

	// CombinedEstimate is base fee plus estimated earnings
	CombinedEstimate decimal.Decimal `json:"combined_estimate"`
}

// PerformanceBreakdown is a full base fee plus a gated bonus
type PerformanceBreakdown struct {
	// BaseFee is the full, undiscounted sponsored rate
	BaseFee decimal.Decimal `json:"base_fee"`

	// Metric is the bonus-gating metric
	Metric PerformanceMetric `json:"metric"`

	// Threshold is the metric value that unlocks the bonus
	Threshold int64 `json:"threshold"`

	// BonusAmount is the rounded bonus
	BonusAmount decimal.Decimal `json:"bonus_amount"`

	// PotentialTotal is base fee plus bonus, assuming the threshold
	// is met; whether it was met is decided outside the engine
	PotentialTotal decimal.Decimal `json:"potential_total"`
}

// RetainerRate is one discounted per-deliverable rate in a retainer
type RetainerRate struct {
	// Format is the deliverable format (post/story/reel/video)
	Format string `json:"format"`

	// Rate is the discounted per-deliverable rate
	Rate decimal.Decimal `json:"rate"`

	// PerMonth is the monthly deliverable count
	PerMonth int `json:"per_month"`
}

// RetainerBreakdown is a long-term contract estimate
type RetainerBreakdown struct {
	// ContractMonths is the contract length
	ContractMonths int `json:"contract_months"`

	// Term is the human term name (e.g. "6-month", "ambassador")
	Term string `json:"term"`

	// VolumeDiscount is the discount fraction applied to rates
	VolumeDiscount float64 `json:"volume_discount"`

	// Rates is the discounted per-deliverable rate card
	Rates []RetainerRate `json:"rates"`

	// MonthlyRate is the discounted monthly total
	MonthlyRate decimal.Decimal `json:"monthly_rate"`

	// Ambassador add-ons; zero except for 12-month contracts
	ExclusivityPremium  decimal.Decimal `json:"exclusivity_premium,omitempty"`
	PaidAppearanceValue decimal.Decimal `json:"paid_appearance_value,omitempty"`
	ProductSeedingValue decimal.Decimal `json:"product_seeding_value,omitempty"`

	// TotalContractValue is monthly rate x months plus add-ons
	TotalContractValue decimal.Decimal `json:"total_contract_value"`
}

// PricingResult is the priced quote. It is a pure function of its
// inputs: no identity, no mutation, recomputed on every call.
type PricingResult struct {
	// PricingModel tags the branch the router took
	PricingModel PricingModel `json:"pricing_model"`

	// Layers is the ordered adjustment breakdown
	Layers []PricingLayer `json:"layers"`

	// PricePerDeliverable is the rounded per-deliverable price
	PricePerDeliverable decimal.Decimal `json:"price_per_deliverable"`

	// TotalPrice is the quote total
	TotalPrice decimal.Decimal `json:"total_price"`

	// Quantity is the deliverable count the total covers
	Quantity int `json:"quantity"`

	// Formula is the reproducible calculation string
	Formula string `json:"formula"`

	// Currency is the quoting currency
	Currency Currency `json:"currency"`

	// CurrencySymbol is the display symbol used in the formula
	CurrencySymbol string `json:"currency_symbol"`

	// ValidityDays is the quote validity window
	ValidityDays int `json:"validity_days"`

	// Model-specific attachments; at most one is set
	Affiliate   *AffiliateBreakdown   `json:"affiliate,omitempty"`
	Hybrid      *HybridBreakdown      `json:"hybrid,omitempty"`
	Performance *PerformanceBreakdown `json:"performance,omitempty"`
	Retainer    *RetainerBreakdown    `json:"retainer,omitempty"`
}
