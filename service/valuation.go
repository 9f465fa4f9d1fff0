package service

import (
	"fmt"
	"math"

	"miles-advisor/domain"
)

// DefaultValuation returns the built-in rates, multipliers, status ladder
// and traveller profiles.
func DefaultValuation() domain.Valuation {
	return domain.Valuation{
		LowRate:               MileValueLow,
		HighRate:              MileValueHigh,
		ComfortHoursThreshold: UpgradeComfortHours,
		Multipliers: domain.UpgradeMultipliers{
			{From: domain.Economy, To: domain.PremiumPlus}:  1.2,
			{From: domain.Economy, To: domain.Business}:     1.5,
			{From: domain.PremiumPlus, To: domain.Business}: 1.3,
		},
		StatusLadder: []domain.EliteTier{
			{Name: "General Member", PQP: 0, PQF: 0},
			{Name: "Premier Silver", PQP: 4000, PQF: 25},
			{Name: "Premier Gold", PQP: 8000, PQF: 50},
			{Name: "Premier Platinum", PQP: 12000, PQF: 75},
			{Name: "Premier 1K", PQP: 18000, PQF: 100},
		},
		TravelPatterns: map[string]domain.TravelPattern{
			"business_traveler": {
				Name:              "business_traveler",
				AnnualFlights:     40,
				AvgFlightHours:    3.5,
				DomesticRatio:     0.7,
				UpgradeMultiplier: 1.3,
				MileValuation:     0.014,
			},
			"leisure_traveler": {
				Name:              "leisure_traveler",
				AnnualFlights:     8,
				AvgFlightHours:    6.0,
				DomesticRatio:     0.3,
				UpgradeMultiplier: 1.1,
				MileValuation:     0.013,
			},
			"frequent_flyer": {
				Name:              "frequent_flyer",
				AnnualFlights:     60,
				AvgFlightHours:    4.0,
				DomesticRatio:     0.5,
				UpgradeMultiplier: 1.5,
				MileValuation:     0.015,
			},
		},
		RedemptionAdjustments: map[string]float64{
			"economy_domestic":       -0.002,
			"economy_international":  0.0,
			"business_domestic":      0.001,
			"business_international": 0.003,
			"first_international":    0.005,
		},
	}
}

// Valuer converts miles to a dollar range. It is the helper every
// evaluator shares.
type Valuer struct {
	low  float64
	high float64
}

func NewValuer(lowRate, highRate float64) *Valuer {
	return &Valuer{low: lowRate, high: highRate}
}

func (v *Valuer) LowRate() float64  { return v.low }
func (v *Valuer) HighRate() float64 { return v.high }

// Value returns miles priced at the low and high rate. Negative miles are
// the caller's problem.
func (v *Valuer) Value(miles float64) domain.ValueRange {
	return domain.ValueRange{
		Low:  miles * v.low,
		High: miles * v.high,
	}
}

// centsPerMile is price/miles expressed in cents, or 0 when there are no miles.
func centsPerMile(price, miles float64) float64 {
	if miles <= 0 {
		return 0
	}
	return price / miles * 100
}

func hasNegative(values ...float64) bool {
	for _, v := range values {
		if v < 0 || math.IsNaN(v) {
			return true
		}
	}
	return false
}

func floatPtr(v float64) *float64 { return &v }

// errOutOfRange rejects inputs whose results overflow float64 and so have
// no JSON representation.
var errOutOfRange = fmt.Errorf("%w: amounts are too large to evaluate", domain.ErrInvalidInput)

// allFinite reports whether no value is infinite or NaN.
func allFinite(values ...float64) bool {
	for _, v := range values {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return false
		}
	}
	return true
}

// rangeFinite treats a missing range as finite.
func rangeFinite(r *domain.ValueRange) bool {
	return r == nil || allFinite(r.Low, r.High)
}

func ptrFinite(v *float64) bool {
	return v == nil || allFinite(*v)
}
