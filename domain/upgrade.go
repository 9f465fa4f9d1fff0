package domain

// UpgradeOption is the recommended way to end up in the higher cabin.
type UpgradeOption string

const (
	UpgradeOptionNone          UpgradeOption = "none"
	UpgradeOptionMilesPlusCash UpgradeOption = "miles_plus_cash"
	UpgradeOptionCash          UpgradeOption = "cash_upgrade"
	UpgradeOptionBuyFullFare   UpgradeOption = "buy_full_fare"
)

// UpgradeWarning flags an upgrade that is likely poor value. The zero value
// means no warning.
type UpgradeWarning string

const (
	UpgradeWarningNone              UpgradeWarning = ""
	UpgradeWarningSameCabin         UpgradeWarning = "same_cabin"
	UpgradeWarningShortFlight       UpgradeWarning = "short_flight"
	UpgradeWarningNearFullFare      UpgradeWarning = "near_full_fare"
	UpgradeWarningMilesCashOverFare UpgradeWarning = "miles_cash_over_full_fare"
	UpgradeWarningSmallComfortGain  UpgradeWarning = "small_comfort_gain"
)

type UpgradeInput struct {
	Miles            float64    `json:"miles"`
	Cash             float64    `json:"cash"`
	CashUpgradePrice float64    `json:"cashUpgradePrice"`
	FullFarePrice    float64    `json:"fullFarePrice"`
	TravelHours      int        `json:"travelHours"`
	From             CabinClass `json:"from"`
	To               CabinClass `json:"to"`
}

type UpgradeResult struct {
	MilesWorth        ValueRange     `json:"milesWorth"`
	MilesCashTotal    *ValueRange    `json:"milesCashTotal,omitempty"`
	CashOnlyTotal     float64        `json:"cashOnlyTotal"`
	DeemedFullFare    float64        `json:"deemedFullFare"`
	MilesCashSavings  *ValueRange    `json:"milesCashSavings,omitempty"`
	CashSavings       float64        `json:"cashSavings"`
	BestOption        UpgradeOption  `json:"bestOption"`
	Warning           UpgradeWarning `json:"warning,omitempty"`
	ComfortFactor     float64        `json:"comfortFactor"`
	UpgradeMultiplier float64        `json:"upgradeMultiplier"`
	LongFlight        bool           `json:"longFlight"`
}

// RelativeCost grades an upgrade price against the fare already paid.
type RelativeCost string

const (
	RelativeCostReasonable RelativeCost = "reasonable"
	RelativeCostBorderline RelativeCost = "borderline"
	RelativeCostExpensive  RelativeCost = "expensive"
)

type RelativeUpgradeInput struct {
	BaseFare    float64 `json:"baseFare"`
	UpgradeCost float64 `json:"upgradeCost"`
}

type RelativeUpgradeResult struct {
	Ratio   float64      `json:"ratio"`
	Verdict RelativeCost `json:"verdict"`
}
