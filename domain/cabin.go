package domain

import (
	"fmt"
	"strings"
)

// CabinClass is a seating cabin, ordered by comfort rank.
type CabinClass int

const (
	Economy CabinClass = iota
	PremiumPlus
	Business
)

var cabinNames = [...]string{
	Economy:     "economy",
	PremiumPlus: "premium_plus",
	Business:    "business",
}

// CabinClasses lists every cabin from least to most comfortable.
func CabinClasses() []CabinClass {
	return []CabinClass{Economy, PremiumPlus, Business}
}

// Rank is the comfort rank; higher is more comfortable.
func (c CabinClass) Rank() int { return int(c) }

func (c CabinClass) Valid() bool {
	return c >= Economy && c <= Business
}

func (c CabinClass) String() string {
	if !c.Valid() {
		return fmt.Sprintf("cabin(%d)", int(c))
	}
	return cabinNames[c]
}

// ParseCabinClass accepts the canonical names as well as spaced or
// hyphenated spellings ("Premium Plus", "premium-plus").
func ParseCabinClass(s string) (CabinClass, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer(" ", "_", "-", "_").Replace(key)
	switch key {
	case "economy":
		return Economy, nil
	case "premium_plus", "premiumplus":
		return PremiumPlus, nil
	case "business", "business_(polaris)", "polaris":
		return Business, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCabinClass, s)
}

func (c CabinClass) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCabinClass, int(c))
	}
	return []byte(c.String()), nil
}

func (c *CabinClass) UnmarshalText(text []byte) error {
	parsed, err := ParseCabinClass(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// CabinPair is a (from, to) cabin transition.
type CabinPair struct {
	From CabinClass
	To   CabinClass
}

// UpgradeMultipliers maps a cabin transition to a dimensionless value
// multiplier. Unlisted pairs, including same-class moves and downgrades,
// use DefaultUpgradeMultiplier.
type UpgradeMultipliers map[CabinPair]float64

const DefaultUpgradeMultiplier = 1.0

func (m UpgradeMultipliers) Lookup(from, to CabinClass) float64 {
	if f, ok := m[CabinPair{From: from, To: to}]; ok {
		return f
	}
	return DefaultUpgradeMultiplier
}

// Clone returns an independent copy of the table.
func (m UpgradeMultipliers) Clone() UpgradeMultipliers {
	out := make(UpgradeMultipliers, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
