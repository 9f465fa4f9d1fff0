package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"miles-advisor/domain"
	"miles-advisor/service"
)

var ErrInvalidProfile = errors.New("invalid valuation profile")

// Profile is the on-disk valuation profile. Every section is optional;
// whatever is present replaces the matching part of the built-in defaults.
type Profile struct {
	Rates                 *RatesProfile             `yaml:"rates"`
	ComfortHoursThreshold *int                      `yaml:"comfort_hours_threshold"`
	Multipliers           []MultiplierProfile       `yaml:"multipliers"`
	StatusLadder          []TierProfile             `yaml:"status_ladder"`
	TravelPatterns        map[string]PatternProfile `yaml:"travel_patterns"`
	RedemptionAdjustments map[string]float64        `yaml:"redemption_adjustments"`
}

type RatesProfile struct {
	Low  float64 `yaml:"low"`
	High float64 `yaml:"high"`
}

type MultiplierProfile struct {
	From   string  `yaml:"from"`
	To     string  `yaml:"to"`
	Factor float64 `yaml:"factor"`
}

type TierProfile struct {
	Name string  `yaml:"name"`
	PQP  float64 `yaml:"pqp"`
	PQF  int     `yaml:"pqf"`
}

type PatternProfile struct {
	AnnualFlights     int     `yaml:"annual_flights"`
	AvgFlightHours    float64 `yaml:"avg_flight_hours"`
	DomesticRatio     float64 `yaml:"domestic_ratio"`
	UpgradeMultiplier float64 `yaml:"upgrade_multiplier"`
	MileValuation     float64 `yaml:"mile_valuation"`
}

// LoadProfile reads a YAML profile from path. An empty path returns the
// defaults unchanged.
func LoadProfile(path string) (domain.Valuation, error) {
	if path == "" {
		return service.DefaultValuation(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Valuation{}, fmt.Errorf("read profile %s: %w", path, err)
	}
	return ParseProfile(data)
}

// ParseProfile overlays a YAML profile on the defaults and validates the result.
func ParseProfile(data []byte) (domain.Valuation, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return domain.Valuation{}, fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}
	return p.Apply(service.DefaultValuation())
}

// Apply returns base with the profile's sections applied.
func (p Profile) Apply(base domain.Valuation) (domain.Valuation, error) {
	v := base

	if p.Rates != nil {
		v.LowRate, v.HighRate = p.Rates.Low, p.Rates.High
	}
	if p.ComfortHoursThreshold != nil {
		v.ComfortHoursThreshold = *p.ComfortHoursThreshold
	}

	if len(p.Multipliers) > 0 {
		v.Multipliers = base.Multipliers.Clone()
		for _, m := range p.Multipliers {
			from, err := domain.ParseCabinClass(m.From)
			if err != nil {
				return domain.Valuation{}, fmt.Errorf("%w: multiplier: %v", ErrInvalidProfile, err)
			}
			to, err := domain.ParseCabinClass(m.To)
			if err != nil {
				return domain.Valuation{}, fmt.Errorf("%w: multiplier: %v", ErrInvalidProfile, err)
			}
			v.Multipliers[domain.CabinPair{From: from, To: to}] = m.Factor
		}
	}

	if len(p.StatusLadder) > 0 {
		v.StatusLadder = make([]domain.EliteTier, 0, len(p.StatusLadder))
		for _, t := range p.StatusLadder {
			v.StatusLadder = append(v.StatusLadder, domain.EliteTier{Name: t.Name, PQP: t.PQP, PQF: t.PQF})
		}
	}

	if len(p.TravelPatterns) > 0 {
		v.TravelPatterns = make(map[string]domain.TravelPattern, len(base.TravelPatterns)+len(p.TravelPatterns))
		for name, tp := range base.TravelPatterns {
			v.TravelPatterns[name] = tp
		}
		for name, tp := range p.TravelPatterns {
			v.TravelPatterns[name] = domain.TravelPattern{
				Name:              name,
				AnnualFlights:     tp.AnnualFlights,
				AvgFlightHours:    tp.AvgFlightHours,
				DomesticRatio:     tp.DomesticRatio,
				UpgradeMultiplier: tp.UpgradeMultiplier,
				MileValuation:     tp.MileValuation,
			}
		}
	}

	if len(p.RedemptionAdjustments) > 0 {
		v.RedemptionAdjustments = make(map[string]float64, len(base.RedemptionAdjustments)+len(p.RedemptionAdjustments))
		for name, adj := range base.RedemptionAdjustments {
			v.RedemptionAdjustments[name] = adj
		}
		for name, adj := range p.RedemptionAdjustments {
			v.RedemptionAdjustments[name] = adj
		}
	}

	if err := Validate(v); err != nil {
		return domain.Valuation{}, err
	}
	return v, nil
}

// Validate checks the invariants the evaluators rely on.
func Validate(v domain.Valuation) error {
	if v.LowRate < 0 || v.HighRate < 0 {
		return fmt.Errorf("%w: rates must be non-negative", ErrInvalidProfile)
	}
	if v.LowRate > v.HighRate {
		return fmt.Errorf("%w: low rate %.4f exceeds high rate %.4f", ErrInvalidProfile, v.LowRate, v.HighRate)
	}
	if v.ComfortHoursThreshold < 0 {
		return fmt.Errorf("%w: comfort_hours_threshold must be non-negative", ErrInvalidProfile)
	}
	for pair, factor := range v.Multipliers {
		if factor <= 0 {
			return fmt.Errorf("%w: multiplier %s->%s must be positive", ErrInvalidProfile, pair.From, pair.To)
		}
	}
	if len(v.StatusLadder) == 0 {
		return fmt.Errorf("%w: status_ladder is empty", ErrInvalidProfile)
	}
	for i := 1; i < len(v.StatusLadder); i++ {
		prev, cur := v.StatusLadder[i-1], v.StatusLadder[i]
		if cur.PQP < prev.PQP || cur.PQF < prev.PQF {
			return fmt.Errorf("%w: tier %q is below %q", ErrInvalidProfile, cur.Name, prev.Name)
		}
	}
	for name, tp := range v.TravelPatterns {
		if tp.MileValuation < 0 {
			return fmt.Errorf("%w: travel pattern %q has negative mile_valuation", ErrInvalidProfile, name)
		}
	}
	return nil
}
