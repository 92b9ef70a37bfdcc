// Package engine turns a creator profile and a campaign brief into a
// priced quote. Every pricer is a pure function: no I/O, no shared
// state, recomputed on every call.
package engine

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"creator-rates/core/types"
)

// layerStack accumulates the ordered layer breakdown, the running
// price, and the reproducible formula string as layers are applied.
type layerStack struct {
	symbol string
	value  decimal.Decimal
	layers []types.PricingLayer
	parts  []string
}

// newLayerStack opens a stack with a flat base-rate layer
func newLayerStack(symbol, name, description string, base decimal.Decimal) *layerStack {
	return &layerStack{
		symbol: symbol,
		value:  base,
		layers: []types.PricingLayer{{
			Name:        name,
			Description: description,
			Adjustment:  base,
			BaseValue:   base,
		}},
		parts: []string{symbol + base.String()},
	}
}

// apply multiplies the running price by a layer. Unity multipliers
// stay in the breakdown but are left out of the formula string.
func (s *layerStack) apply(name, description string, multiplier float64) {
	s.value = s.value.Mul(decimal.NewFromFloat(multiplier))
	s.layers = append(s.layers, types.PricingLayer{
		Name:        name,
		Description: description,
		Multiplier:  multiplier,
		BaseValue:   s.value,
	})
	if multiplier != 1.0 {
		s.parts = append(s.parts, formatMultiplier(multiplier))
	}
}

// formula renders the calculation string, e.g. "$400 × 2.0 × 1.2"
func (s *layerStack) formula() string {
	return strings.Join(s.parts, " × ")
}

// formatMultiplier renders a multiplier with at least one decimal
// place, so 2 reads as "2.0" while 1.75 keeps its precision
func formatMultiplier(m float64) string {
	out := strconv.FormatFloat(m, 'f', -1, 64)
	if !strings.Contains(out, ".") {
		out += ".0"
	}
	return out
}
