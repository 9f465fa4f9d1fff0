package service

import (
	"errors"
	"fmt"
	"math"

	"miles-advisor/domain"
)

type EliteStatusService struct {
	ladder []domain.EliteTier
}

// NewEliteStatusService expects the ladder ordered from the entry rung up.
func NewEliteStatusService(ladder []domain.EliteTier) *EliteStatusService {
	return &EliteStatusService{ladder: ladder}
}

// Progress reports the member's current rung, what the next rung needs and
// whether a PQP purchase would get them there.
func (s *EliteStatusService) Progress(
	input domain.StatusProgressInput,
) (domain.StatusProgress, error) {
	if hasNegative(input.CurrentPQP, input.PurchasePQP) || input.CurrentPQF < 0 {
		return domain.StatusProgress{}, fmt.Errorf("%w: pqp and pqf must be non-negative", domain.ErrInvalidInput)
	}
	if len(s.ladder) == 0 {
		return domain.StatusProgress{}, errors.New("status ladder is empty")
	}

	current := 0
	for i, tier := range s.ladder {
		if input.CurrentPQP >= tier.PQP && input.CurrentPQF >= tier.PQF {
			current = i
		}
	}

	progress := domain.StatusProgress{
		Current:          s.ladder[current].Name,
		PQPAfterPurchase: input.CurrentPQP + input.PurchasePQP,
	}
	if !allFinite(progress.PQPAfterPurchase) {
		return domain.StatusProgress{}, errOutOfRange
	}

	if current == len(s.ladder)-1 {
		progress.MaxLevel = true
		progress.ProgressPercent = 100
		return progress, nil
	}

	next := s.ladder[current+1]
	progress.Next = next.Name
	progress.PQPNeeded = math.Max(0, next.PQP-input.CurrentPQP)
	progress.PQFNeeded = max(0, next.PQF-input.CurrentPQF)

	progress.ProgressPercent = 100
	if next.PQP > 0 {
		progress.ProgressPercent = math.Min(100, input.CurrentPQP/next.PQP*100)
	}

	progress.PurchaseReachesNext = progress.PQPAfterPurchase >= next.PQP && input.CurrentPQF >= next.PQF

	return progress, nil
}

type PersonalValueService struct {
	patterns    map[string]domain.TravelPattern
	adjustments map[string]float64
}

func NewPersonalValueService(
	patterns map[string]domain.TravelPattern,
	adjustments map[string]float64,
) *PersonalValueService {
	return &PersonalValueService{patterns: patterns, adjustments: adjustments}
}

// Calculate derives a personal mile value from a travel pattern and a
// redemption preference. Unknown preferences carry no adjustment.
func (s *PersonalValueService) Calculate(
	input domain.PersonalValueInput,
) (domain.PersonalValueResult, error) {
	pattern, ok := s.patterns[input.Pattern]
	if !ok {
		return domain.PersonalValueResult{}, fmt.Errorf("%w: %q", domain.ErrUnknownTravelPattern, input.Pattern)
	}
	if input.OfferedCPM != nil && hasNegative(*input.OfferedCPM) {
		return domain.PersonalValueResult{}, fmt.Errorf("%w: offered cpm must be non-negative", domain.ErrInvalidInput)
	}

	adjustment := s.adjustments[input.Redemption]
	value := pattern.MileValuation + adjustment

	result := domain.PersonalValueResult{
		Pattern:       pattern,
		Redemption:    input.Redemption,
		Adjustment:    adjustment,
		PersonalValue: value,
		PersonalCPM:   value * 100,
	}
	if !allFinite(result.PersonalCPM) {
		return domain.PersonalValueResult{}, errOutOfRange
	}

	if input.OfferedCPM != nil {
		if *input.OfferedCPM < result.PersonalCPM {
			result.OfferVerdict = domain.OfferGood
		} else {
			result.OfferVerdict = domain.OfferExpensive
		}
	}

	return result, nil
}

type StatusRunService struct {
	status   *EliteStatusService
	personal *PersonalValueService
}

func NewStatusRunService(status *EliteStatusService, personal *PersonalValueService) *StatusRunService {
	return &StatusRunService{status: status, personal: personal}
}

// Recommend says whether buying PQP for a status run is worthwhile: the
// purchase has to reach the next rung and the member has to value miles
// at least at statusRunMinValue.
func (s *StatusRunService) Recommend(
	input domain.StatusRunInput,
) (domain.StatusRunResult, error) {
	progress, err := s.status.Progress(domain.StatusProgressInput{
		CurrentPQP:  input.CurrentPQP,
		CurrentPQF:  input.CurrentPQF,
		PurchasePQP: input.PurchasePQP,
	})
	if err != nil {
		return domain.StatusRunResult{}, err
	}

	personal, err := s.personal.Calculate(domain.PersonalValueInput{
		Pattern:    input.Pattern,
		Redemption: input.Redemption,
	})
	if err != nil {
		return domain.StatusRunResult{}, err
	}

	result := domain.StatusRunResult{Progress: progress, Personal: personal}
	if !progress.PurchaseReachesNext {
		result.Reasons = append(result.Reasons, domain.ReasonWontReachNextStatus)
	}
	if personal.PersonalValue < statusRunMinValue {
		result.Reasons = append(result.Reasons, domain.ReasonBelowPersonalValue)
	}
	result.Recommended = len(result.Reasons) == 0

	return result, nil
}
