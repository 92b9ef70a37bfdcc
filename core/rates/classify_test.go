package rates

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"creator-rates/core/types"
)

func TestTierBoundaries(t *testing.T) {
	cases := []struct {
		followers int64
		want      types.Tier
	}{
		{0, types.TierNano},
		{9_999, types.TierNano},
		{10_000, types.TierMicro},
		{49_999, types.TierMicro},
		{50_000, types.TierMid},
		{99_999, types.TierMid},
		{100_000, types.TierRising},
		{249_999, types.TierRising},
		{250_000, types.TierMacro},
		{499_999, types.TierMacro},
		{500_000, types.TierMega},
		{999_999, types.TierMega},
		{1_000_000, types.TierCelebrity},
		{25_000_000, types.TierCelebrity},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, TierOf(tc.followers), "followers=%d", tc.followers)
	}
}

func TestBaseRatesPerTier(t *testing.T) {
	expected := map[types.Tier]int64{
		types.TierNano:      150,
		types.TierMicro:     400,
		types.TierMid:       800,
		types.TierRising:    1500,
		types.TierMacro:     3000,
		types.TierMega:      6000,
		types.TierCelebrity: 12000,
	}
	for tier, rate := range expected {
		assert.True(t, BaseRate(tier).Equal(decimal.NewFromInt(rate)), "tier=%s", tier)
	}
}

func TestNichePremium(t *testing.T) {
	assert.Equal(t, 2.0, NichePremium("finance"))
	assert.Equal(t, 2.0, NichePremium("  Finance  "))
	assert.Equal(t, 2.0, NichePremium("Personal Finance"))
	assert.Equal(t, 0.95, NichePremium("entertainment"))

	// empty and unknown niches price at the lifestyle baseline
	assert.Equal(t, 1.0, NichePremium(""))
	assert.Equal(t, 1.0, NichePremium("lifestyle"))
	assert.Equal(t, 1.0, NichePremium("underwater basket weaving"))
}

func TestPlatformMultiplier(t *testing.T) {
	assert.Equal(t, 1.4, PlatformMultiplier("YouTube"))
	assert.Equal(t, 1.0, PlatformMultiplier("instagram"))
	assert.Equal(t, 0.7, PlatformMultiplier("x"))
	assert.Equal(t, 0.5, PlatformMultiplier("bereal"))

	assert.Equal(t, 1.0, PlatformMultiplier(""))
	assert.Equal(t, 1.0, PlatformMultiplier("myspace"))
}

func TestRegionalMultiplierAsymmetry(t *testing.T) {
	// not specified prices at the baseline
	assert.Equal(t, 1.0, RegionalMultiplier(""))
	assert.Equal(t, 1.0, RegionalMultiplier("   "))

	// specified but unknown prices lower, not at the baseline
	assert.Equal(t, 0.7, RegionalMultiplier("atlantis"))

	assert.Equal(t, 1.05, RegionalMultiplier("United States"))
	assert.Equal(t, 0.4, RegionalMultiplier("india"))
	assert.Equal(t, 1.1, RegionalMultiplier("switzerland"))
}

func TestSeasonalPremiumPriority(t *testing.T) {
	day := func(m time.Month, d int) time.Time {
		return time.Date(2026, m, d, 12, 0, 0, 0, time.UTC)
	}

	// August belongs to back-to-school even though the summer window
	// could also match
	augFirst := SeasonalPremium(day(time.August, 1))
	assert.Equal(t, PeriodBackToSchool, augFirst.Period)
	assert.Equal(t, 0.15, augFirst.Premium)

	assert.Equal(t, PeriodBackToSchool, SeasonalPremium(day(time.September, 15)).Period)
	assert.Equal(t, PeriodStandard, SeasonalPremium(day(time.September, 16)).Period)

	q4 := SeasonalPremium(day(time.November, 1))
	assert.Equal(t, PeriodQ4Holiday, q4.Period)
	assert.Equal(t, 0.25, q4.Premium)
	assert.Equal(t, PeriodQ4Holiday, SeasonalPremium(day(time.December, 31)).Period)

	assert.Equal(t, PeriodValentines, SeasonalPremium(day(time.February, 14)).Period)
	assert.Equal(t, PeriodStandard, SeasonalPremium(day(time.February, 15)).Period)

	assert.Equal(t, PeriodSummer, SeasonalPremium(day(time.June, 1)).Period)
	assert.Equal(t, PeriodSummer, SeasonalPremium(day(time.July, 31)).Period)

	std := SeasonalPremium(day(time.March, 10))
	assert.Equal(t, PeriodStandard, std.Period)
	assert.Equal(t, 0.0, std.Premium)
}

func TestWhitelistingPremium(t *testing.T) {
	assert.Equal(t, 0.0, WhitelistingPremium(types.WhitelistNone))
	assert.Equal(t, 0.5, WhitelistingPremium(types.WhitelistOrganic))
	assert.Equal(t, 1.0, WhitelistingPremium(types.WhitelistPaidSocial))
	assert.Equal(t, 2.0, WhitelistingPremium(types.WhitelistFullMedia))

	assert.Equal(t, 1.0, WhitelistingPremium(types.WhitelistingType("Paid Social")))
	assert.Equal(t, 0.0, WhitelistingPremium(types.WhitelistingType("")))
	assert.Equal(t, 0.0, WhitelistingPremium(types.WhitelistingType("billboard")))
}

func TestUsageDurationPremium(t *testing.T) {
	assert.Equal(t, 0.0, UsageDurationPremium(0, false))
	assert.Equal(t, 0.15, UsageDurationPremium(14, false))
	assert.Equal(t, 0.15, UsageDurationPremium(30, false))
	assert.Equal(t, 0.45, UsageDurationPremium(31, false))
	assert.Equal(t, 0.45, UsageDurationPremium(90, false))
	assert.Equal(t, 0.70, UsageDurationPremium(180, false))
	assert.Equal(t, 1.00, UsageDurationPremium(365, false))
	assert.Equal(t, 1.50, UsageDurationPremium(366, false))
	assert.Equal(t, 1.50, UsageDurationPremium(0, true))
}

func TestUsageRightsMultiplier(t *testing.T) {
	m := UsageRightsMultiplier(types.UsageRights{
		DurationDays: 90,
		Exclusivity:  types.ExclusivityCategory,
	})
	assert.InDelta(t, 1.75, m, 1e-9)

	m = UsageRightsMultiplier(types.UsageRights{
		DurationDays:      90,
		Exclusivity:       types.ExclusivityCategory,
		PaidAmplification: true,
	})
	assert.InDelta(t, 1.95, m, 1e-9)

	assert.InDelta(t, 1.0, UsageRightsMultiplier(types.UsageRights{}), 1e-9)
}

func TestEngagementMultiplier(t *testing.T) {
	// engagement at the tier norm is neutral
	assert.InDelta(t, 1.0, EngagementMultiplier(types.TierMicro, 4.0), 1e-9)

	assert.InDelta(t, 1.03125, EngagementMultiplier(types.TierMicro, 4.5), 1e-9)

	// floor and cap
	assert.Equal(t, 0.75, EngagementMultiplier(types.TierMicro, 0))
	assert.Equal(t, 0.75, EngagementMultiplier(types.TierMicro, -3))
	assert.Equal(t, 1.5, EngagementMultiplier(types.TierCelebrity, 40))
}

func TestRound5(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1309.275", "1310"},
		{"652.5", "655"},
		{"747.4", "745"},
		{"750", "750"},
		{"0", "0"},
		{"2.4", "0"},
		{"2.5", "5"},
	}
	for _, tc := range cases {
		in, err := decimal.NewFromString(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.want, Round5(in).String(), "in=%s", tc.in)
	}
}

func TestResolveCampaignDate(t *testing.T) {
	parsed := ResolveCampaignDate("2026-08-01")
	assert.Equal(t, time.August, parsed.Month())
	assert.Equal(t, 1, parsed.Day())

	parsed = ResolveCampaignDate("November 15, 2026")
	assert.Equal(t, time.November, parsed.Month())

	// empty and unparsable both resolve to now
	for _, input := range []string{"", "next tuesday-ish"} {
		got := ResolveCampaignDate(input)
		assert.WithinDuration(t, time.Now(), got, 5*time.Second, "input=%q", input)
	}
}
