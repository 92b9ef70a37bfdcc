// Package rates - currency rounding
package rates

import "github.com/shopspring/decimal"

var five = decimal.NewFromInt(5)

// Round5 rounds a currency amount to the nearest multiple of 5.
// Every quoted amount in the engine passes through this before being
// surfaced; midpoints round away from zero.
func Round5(d decimal.Decimal) decimal.Decimal {
	return d.Div(five).Round(0).Mul(five)
}
