package service

import (
	"fmt"
	"math"

	"miles-advisor/domain"
)

type AcceleratorService struct {
	valuer *Valuer
}

func NewAcceleratorService(valuer *Valuer) *AcceleratorService {
	return &AcceleratorService{valuer: valuer}
}

// Evaluate grades an award accelerator offer: miles, optionally with PQP,
// for a cash price. With PQP the verdict is driven by the net dollar cost
// per PQP after subtracting what the miles are worth; without PQP it is
// driven by the cost per mile.
func (s *AcceleratorService) Evaluate(
	input domain.AcceleratorInput,
) (domain.AcceleratorResult, error) {
	if hasNegative(input.Miles, input.PQP, input.Cost) {
		return domain.AcceleratorResult{}, fmt.Errorf("%w: miles, pqp and cost must be non-negative", domain.ErrInvalidInput)
	}

	worth := s.valuer.Value(input.Miles)

	costPerMile := math.Inf(1)
	if input.Miles > 0 {
		costPerMile = input.Cost / input.Miles
	}

	result := domain.AcceleratorResult{
		MilesWorth: worth,
		CPM:        centsPerMile(input.Cost, input.Miles),
	}

	if input.PQP > 0 {
		pqpCost := domain.ValueRange{
			Low:  (input.Cost - worth.High) / input.PQP,
			High: (input.Cost - worth.Low) / input.PQP,
		}
		result.PQPCost = &pqpCost

		switch {
		case pqpCost.Low < pqpCostExcellent:
			result.Verdict = domain.VerdictGood
		case pqpCost.Low < pqpCostDecent:
			result.Verdict = domain.VerdictDecent
		default:
			result.Verdict = domain.VerdictPoor
		}
	} else {
		switch {
		case costPerMile < goodCostPerMile:
			result.Verdict = domain.VerdictGood
		case costPerMile < s.valuer.LowRate():
			result.Verdict = domain.VerdictDecent
		default:
			result.Verdict = domain.VerdictPoor
		}
	}

	if !math.IsInf(costPerMile, 0) && !math.IsNaN(costPerMile) {
		result.CostPerMile = costPerMile
	}

	if input.Miles > 0 && input.Cost > 0 {
		result.CPMBand = cpmBand(result.CPM)
	}

	switch {
	case input.PQP > 0 && input.Cost > 0:
		rate := input.PQP / input.Cost
		result.PQPEarningRate = &rate
		result.PQPEarningBand = pqpEarningBand(rate)
	case input.PQP == 0 && input.Miles > 0 && input.Cost > 0:
		result.PQPEarningBand = domain.PQPEarningNone
	}

	if !allFinite(worth.Low, worth.High, result.CPM, input.Cost) ||
		!rangeFinite(result.PQPCost) || !ptrFinite(result.PQPEarningRate) {
		return domain.AcceleratorResult{}, errOutOfRange
	}

	return result, nil
}

func cpmBand(cpm float64) domain.CPMBand {
	switch {
	case cpm < cpmBelowAverage:
		return domain.CPMBelowValuation
	case cpm < cpmTypicalLow:
		return domain.CPMSlightlyBelowValuation
	default:
		return domain.CPMAboveValuation
	}
}

func pqpEarningBand(rate float64) domain.PQPEarningBand {
	switch {
	case rate > pqpRateExcellent:
		return domain.PQPEarningExcellent
	case rate > pqpRateDecent:
		return domain.PQPEarningDecent
	default:
		return domain.PQPEarningBelowAverage
	}
}
