package service

import (
	"fmt"

	"miles-advisor/domain"
)

type TicketPurchaseService struct {
	valuer *Valuer
}

func NewTicketPurchaseService(valuer *Valuer) *TicketPurchaseService {
	return &TicketPurchaseService{valuer: valuer}
}

type purchaseCandidate struct {
	option domain.PurchaseOption
	cost   float64
}

// Compare picks the cheapest way to pay for a ticket. Miles are priced at
// the low valuation; ties go to the earlier option in the order cash,
// miles, miles+cash.
func (s *TicketPurchaseService) Compare(
	input domain.TicketPurchaseInput,
) (domain.TicketPurchaseResult, error) {
	if hasNegative(input.MilesPrice, input.CashPrice, input.MilesPlusCashMiles, input.MilesPlusCashCash) {
		return domain.TicketPurchaseResult{}, fmt.Errorf("%w: prices must be non-negative", domain.ErrInvalidInput)
	}

	milesValue := s.valuer.Value(input.MilesPrice)

	result := domain.TicketPurchaseResult{
		MilesValue: milesValue,
		MilesTotal: milesValue,
		CashTotal:  input.CashPrice,
		CPMMiles:   centsPerMile(input.CashPrice, input.MilesPrice),
	}

	candidates := []purchaseCandidate{
		{option: domain.PurchaseCash, cost: input.CashPrice},
		{option: domain.PurchaseMiles, cost: milesValue.Low},
	}

	if input.MilesPlusCashMiles > 0 && input.MilesPlusCashCash > 0 {
		mixed := s.valuer.Value(input.MilesPlusCashMiles).Add(input.MilesPlusCashCash)
		result.MixedTotal = &mixed
		candidates = append(candidates, purchaseCandidate{option: domain.PurchaseMilesPlusCash, cost: mixed.Low})
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.cost < best.cost {
			best = c
		}
	}
	result.BestOption = best.option

	if input.MilesPlusCashMiles > 0 {
		result.CPMMixed = floatPtr((input.CashPrice - input.MilesPlusCashCash) / input.MilesPlusCashMiles * 100)
	}

	switch {
	case result.BestOption == domain.PurchaseMiles && result.CPMMiles > cpmRedemptionAdvice:
		result.Advice = domain.AdviceGreatRedemption
	case result.BestOption == domain.PurchaseMilesPlusCash && result.CPMMixed != nil && *result.CPMMixed > cpmRedemptionAdvice:
		result.Advice = domain.AdviceGoodMixedValue
	}

	if input.MilesPrice > 0 {
		result.MilesBand = redemptionBand(result.CPMMiles)
	}
	if result.CPMMixed != nil {
		result.MixedBand = redemptionBand(*result.CPMMixed)
	}

	if !allFinite(milesValue.Low, milesValue.High, input.CashPrice, result.CPMMiles) ||
		!rangeFinite(result.MixedTotal) || !ptrFinite(result.CPMMixed) {
		return domain.TicketPurchaseResult{}, errOutOfRange
	}

	return result, nil
}

// redemptionBand grades the cents-per-mile a redemption yields; higher is better.
func redemptionBand(cpm float64) domain.ValueBand {
	switch {
	case cpm > cpmExcellent:
		return domain.ValueExcellent
	case cpm > cpmGood:
		return domain.ValueGood
	case cpm < cpmBelowAverage:
		return domain.ValueBelowAverage
	default:
		return domain.ValueAverage
	}
}

type BuyMilesService struct {
	valuer *Valuer
}

func NewBuyMilesService(valuer *Valuer) *BuyMilesService {
	return &BuyMilesService{valuer: valuer}
}

// Evaluate grades a bulk miles purchase by the price paid per mile; lower
// is better. Bonus miles count toward the quantity.
func (s *BuyMilesService) Evaluate(
	input domain.BuyMilesInput,
) (domain.BuyMilesResult, error) {
	if hasNegative(input.BaseMiles, input.BonusMiles, input.CashPrice) {
		return domain.BuyMilesResult{}, fmt.Errorf("%w: miles and price must be non-negative", domain.ErrInvalidInput)
	}

	total := input.TotalMiles()
	result := domain.BuyMilesResult{
		TotalMiles: total,
		MilesValue: s.valuer.Value(total),
		CashTotal:  input.CashPrice,
		CPMMiles:   centsPerMile(input.CashPrice, total),
	}

	if !allFinite(total, result.MilesValue.Low, result.MilesValue.High, input.CashPrice, result.CPMMiles) {
		return domain.BuyMilesResult{}, errOutOfRange
	}

	// Zero miles gives a CPM of 0, which also draws the advice.
	if result.CPMMiles < cpmPurchaseAdvice {
		result.Advice = domain.AdviceGoodPurchase
	}

	switch {
	case result.CPMMiles < cpmBelowAverage:
		result.Band = domain.ValueExcellent
	case result.CPMMiles < cpmGood:
		result.Band = domain.ValueGood
	default:
		result.Band = domain.ValueBelowAverage
	}

	return result, nil
}

// EvaluateRelativeUpgradeCost grades an upgrade price as a share of the
// base fare. A non-positive base fare yields no verdict.
func EvaluateRelativeUpgradeCost(
	input domain.RelativeUpgradeInput,
) (domain.RelativeUpgradeResult, error) {
	if input.BaseFare <= 0 {
		return domain.RelativeUpgradeResult{}, fmt.Errorf("%w: base fare must be positive", domain.ErrInvalidInput)
	}

	result := domain.RelativeUpgradeResult{Ratio: input.UpgradeCost / input.BaseFare}
	if !allFinite(input.BaseFare, result.Ratio) {
		return domain.RelativeUpgradeResult{}, errOutOfRange
	}
	switch {
	case input.UpgradeCost < relativeReasonable*input.BaseFare:
		result.Verdict = domain.RelativeCostReasonable
	case input.UpgradeCost < relativeBorderline*input.BaseFare:
		result.Verdict = domain.RelativeCostBorderline
	default:
		result.Verdict = domain.RelativeCostExpensive
	}
	return result, nil
}
