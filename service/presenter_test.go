package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"miles-advisor/domain"
)

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$0.00", FormatCurrency(0))
	assert.Equal(t, "$1,234.50", FormatCurrency(1234.5))
	assert.Equal(t, "-$123.45", FormatCurrency(-123.45))
	assert.Equal(t, "$1,000,000.00", FormatCurrency(1_000_000))
	assert.Equal(t, "$120.00 - $150.00", FormatRange(domain.ValueRange{Low: 120, High: 150}))
}

func TestCabinDisplayName(t *testing.T) {
	assert.Equal(t, "Economy", CabinDisplayName(domain.Economy))
	assert.Equal(t, "Premium Plus", CabinDisplayName(domain.PremiumPlus))
	assert.Equal(t, "Business (Polaris)", CabinDisplayName(domain.Business))
}

func TestSummarizeAccelerator(t *testing.T) {
	svc := NewAcceleratorService(newTestValuer())

	in := domain.AcceleratorInput{Miles: 1000, Cost: 5}
	r, _ := svc.Evaluate(in)
	s := SummarizeAccelerator(in, r)
	assert.Equal(t, "✅ Good Deal!", s.Headline)
	assert.Equal(t, TonePositive, s.Tone)
	assert.Len(t, s.Notes, 2)

	in = domain.AcceleratorInput{Miles: 10000, PQP: 500, Cost: 1000}
	r, _ = svc.Evaluate(in)
	s = SummarizeAccelerator(in, r)
	assert.Equal(t, "❌ Not Worth It.", s.Headline)
	assert.Equal(t, ToneNegative, s.Tone)
}

func TestSummarizeUpgrade(t *testing.T) {
	svc := newTestUpgradeService()

	in := domain.UpgradeInput{From: domain.Business, To: domain.Business}
	r, _ := svc.Evaluate(in)
	s := SummarizeUpgrade(in, r)
	assert.Equal(t, "ℹ️ No upgrade selected", s.Headline)
	assert.Equal(t, UpgradeWarningText(domain.UpgradeWarningSameCabin), s.Warning)

	in = domain.UpgradeInput{CashUpgradePrice: 800, FullFarePrice: 2000, TravelHours: 8, From: domain.Economy, To: domain.Business}
	r, _ = svc.Evaluate(in)
	s = SummarizeUpgrade(in, r)
	assert.Equal(t, "✅ Best Option: Cash Upgrade", s.Headline)
	assert.Empty(t, s.Warning)
	assert.Contains(t, s.Notes[1], "40%")
}

func TestUpgradeWarningText_CoversEveryWarning(t *testing.T) {
	assert.Empty(t, UpgradeWarningText(domain.UpgradeWarningNone))
	for _, w := range []domain.UpgradeWarning{
		domain.UpgradeWarningSameCabin,
		domain.UpgradeWarningShortFlight,
		domain.UpgradeWarningNearFullFare,
		domain.UpgradeWarningMilesCashOverFare,
		domain.UpgradeWarningSmallComfortGain,
	} {
		assert.NotEmpty(t, UpgradeWarningText(w), string(w))
	}
}

func TestSummarizeStatusRun(t *testing.T) {
	s := SummarizeStatusRun(domain.StatusRunInput{}, domain.StatusRunResult{
		Reasons: []domain.StatusRunReason{domain.ReasonWontReachNextStatus, domain.ReasonBelowPersonalValue},
	})

	assert.Equal(t, ToneNegative, s.Tone)
	assert.Equal(t, []string{"Won't achieve next status level.", "Below your personal mile valuation."}, s.Notes)
}
