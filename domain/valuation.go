package domain

import "errors"

var (
	// ErrInvalidInput is returned when an evaluator precondition is not met,
	// typically a negative quantity. Callers treat it as "nothing to show".
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownCabinClass is returned when a cabin class name cannot be parsed.
	ErrUnknownCabinClass = errors.New("unknown cabin class")

	// ErrUnknownTravelPattern is returned when a travel pattern is not in the profile.
	ErrUnknownTravelPattern = errors.New("unknown travel pattern")
)

// ValueRange is a low/high dollar estimate.
type ValueRange struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// Add shifts both bounds by amount.
func (r ValueRange) Add(amount float64) ValueRange {
	return ValueRange{Low: r.Low + amount, High: r.High + amount}
}

// Valuation holds the tunable constants the evaluators read.
type Valuation struct {
	LowRate               float64
	HighRate              float64
	ComfortHoursThreshold int
	Multipliers           UpgradeMultipliers
	StatusLadder          []EliteTier
	TravelPatterns        map[string]TravelPattern
	RedemptionAdjustments map[string]float64
}
