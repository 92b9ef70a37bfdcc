// Package rates - seasonal demand windows
package rates

import "time"

// SeasonPeriod identifies a seasonal demand window
type SeasonPeriod string

const (
	PeriodQ4Holiday    SeasonPeriod = "q4_holiday"
	PeriodBackToSchool SeasonPeriod = "back_to_school"
	PeriodValentines   SeasonPeriod = "valentines"
	PeriodSummer       SeasonPeriod = "summer"
	PeriodStandard     SeasonPeriod = "standard"
)

// SeasonalResult is the resolved seasonal adjustment for a date
type SeasonalResult struct {
	// Premium is the fractional rate premium for the window
	Premium float64 `json:"premium"`

	// Period identifies the window
	Period SeasonPeriod `json:"period"`

	// DisplayName is the human window name
	DisplayName string `json:"display_name"`
}

// SeasonalPremium resolves the seasonal window for a campaign date.
// Windows overlap, so they are checked in priority order: Q4 holiday
// first, then back-to-school, which takes August away from the summer
// window, then Valentine's, then summer.
func SeasonalPremium(t time.Time) SeasonalResult {
	month, day := t.Month(), t.Day()

	switch {
	case month == time.November || month == time.December:
		return SeasonalResult{Premium: 0.25, Period: PeriodQ4Holiday, DisplayName: "Q4 Holiday Season"}
	case month == time.August || (month == time.September && day <= 15):
		return SeasonalResult{Premium: 0.15, Period: PeriodBackToSchool, DisplayName: "Back to School"}
	case month == time.February && day <= 14:
		return SeasonalResult{Premium: 0.10, Period: PeriodValentines, DisplayName: "Valentine's Day"}
	case month == time.June || month == time.July:
		return SeasonalResult{Premium: 0.05, Period: PeriodSummer, DisplayName: "Summer"}
	default:
		return SeasonalResult{Premium: 0, Period: PeriodStandard, DisplayName: "Standard"}
	}
}
