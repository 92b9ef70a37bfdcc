// Package api - request/response envelopes
package api

import (
	"time"

	"creator-rates/core/types"
)

// QuoteRequest is the POST /v1/quote body
type QuoteRequest struct {
	// Profile is the creator's audience profile
	Profile types.CreatorProfile `json:"profile"`

	// Brief is the parsed campaign brief
	Brief types.ParsedBrief `json:"brief"`

	// FitScore is the externally computed fit score, if any
	FitScore *types.FitScoreResult `json:"fit_score,omitempty"`
}

// QuoteResponse wraps a pricing result with quote identity and the
// validity window resolved against the clock
type QuoteResponse struct {
	// QuoteID identifies this quote in logs and downstream systems
	QuoteID string `json:"quote_id"`

	// GeneratedAt is when the quote was computed
	GeneratedAt time.Time `json:"generated_at"`

	// ValidUntil is GeneratedAt plus the result's validity window
	ValidUntil time.Time `json:"valid_until"`

	// Result is the engine output
	Result *types.PricingResult `json:"result"`
}

// ErrorResponse is the uniform error body
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
