package service

import (
	"fmt"
	"math"

	"miles-advisor/domain"
)

type UpgradeService struct {
	valuer       *Valuer
	multipliers  domain.UpgradeMultipliers
	comfortHours int
}

func NewUpgradeService(
	valuer *Valuer,
	multipliers domain.UpgradeMultipliers,
	comfortHours int,
) *UpgradeService {
	return &UpgradeService{
		valuer:       valuer,
		multipliers:  multipliers,
		comfortHours: comfortHours,
	}
}

// Evaluate compares a miles+cash upgrade, a cash-only upgrade and buying
// the higher cabin outright. Savings against the full fare are scaled by a
// comfort factor that grows with flight length and by the cabin-pair
// multiplier.
func (s *UpgradeService) Evaluate(
	input domain.UpgradeInput,
) (domain.UpgradeResult, error) {
	if hasNegative(input.Miles, input.Cash, input.CashUpgradePrice, input.FullFarePrice) || input.TravelHours < 0 {
		return domain.UpgradeResult{}, fmt.Errorf("%w: upgrade amounts and travel hours must be non-negative", domain.ErrInvalidInput)
	}
	if !input.From.Valid() || !input.To.Valid() {
		return domain.UpgradeResult{}, domain.ErrUnknownCabinClass
	}

	if input.From == input.To {
		return domain.UpgradeResult{
			BestOption:        domain.UpgradeOptionNone,
			Warning:           domain.UpgradeWarningSameCabin,
			ComfortFactor:     1.0,
			UpgradeMultiplier: domain.DefaultUpgradeMultiplier,
		}, nil
	}

	comfortFactor := 1.0 + comfortPerHour*float64(input.TravelHours)
	multiplier := s.multipliers.Lookup(input.From, input.To)

	deemedFullFare := input.FullFarePrice
	if deemedFullFare == 0 {
		deemedFullFare = math.Max(input.CashUpgradePrice*deemedFareMarkup, deemedFareFloor)
	}

	miles, cash := input.Miles, input.Cash
	if miles == 0 && cash == 0 {
		cash = input.CashUpgradePrice
	}

	worth := s.valuer.Value(miles)

	cashOnlyTotal := input.CashUpgradePrice
	if cashOnlyTotal == 0 {
		cashOnlyTotal = deemedFullFare
	}

	scale := comfortFactor * multiplier
	result := domain.UpgradeResult{
		MilesWorth:        worth,
		CashOnlyTotal:     cashOnlyTotal,
		DeemedFullFare:    deemedFullFare,
		CashSavings:       (deemedFullFare - cashOnlyTotal) * scale,
		ComfortFactor:     comfortFactor,
		UpgradeMultiplier: multiplier,
		LongFlight:        input.TravelHours >= s.comfortHours,
	}

	// Absent miles+cash totals count as paying the full fare, i.e. zero savings.
	savingsHigh := 0.0
	if miles > 0 {
		total := worth.Add(cash)
		savings := domain.ValueRange{
			Low:  (deemedFullFare - total.High) * scale,
			High: (deemedFullFare - total.Low) * scale,
		}
		result.MilesCashTotal = &total
		result.MilesCashSavings = &savings
		savingsHigh = savings.High
	}

	switch {
	case savingsHigh > result.CashSavings && savingsHigh > 0:
		result.BestOption = domain.UpgradeOptionMilesPlusCash
	case result.CashSavings > 0:
		result.BestOption = domain.UpgradeOptionCash
	default:
		result.BestOption = domain.UpgradeOptionBuyFullFare
	}

	if !allFinite(worth.Low, worth.High, deemedFullFare, cashOnlyTotal, result.CashSavings) ||
		!rangeFinite(result.MilesCashTotal) || !rangeFinite(result.MilesCashSavings) {
		return domain.UpgradeResult{}, errOutOfRange
	}

	result.Warning = s.warning(input, miles, cash, cashOnlyTotal, deemedFullFare, worth)

	return result, nil
}

// warning applies the poor-value rules in order; the first match wins.
func (s *UpgradeService) warning(
	input domain.UpgradeInput,
	miles, cash, cashOnlyTotal, deemedFullFare float64,
	worth domain.ValueRange,
) domain.UpgradeWarning {
	switch {
	case input.TravelHours < s.comfortHours && input.From == domain.Economy && input.To == domain.PremiumPlus:
		return domain.UpgradeWarningShortFlight
	case cashOnlyTotal > nearFullFareRatio*deemedFullFare && input.FullFarePrice > 0:
		return domain.UpgradeWarningNearFullFare
	case miles > 0 && cash > 0 && cash+worth.Low > deemedFullFare && deemedFullFare > 0:
		return domain.UpgradeWarningMilesCashOverFare
	case input.From == domain.PremiumPlus && input.To == domain.Business && input.TravelHours < smallComfortGainHour:
		return domain.UpgradeWarningSmallComfortGain
	}
	return domain.UpgradeWarningNone
}
