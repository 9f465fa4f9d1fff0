package domain

// EliteTier is one rung of the elite status ladder.
type EliteTier struct {
	Name string  `json:"name"`
	PQP  float64 `json:"pqp"`
	PQF  int     `json:"pqf"`
}

type StatusProgressInput struct {
	CurrentPQP  float64 `json:"currentPqp"`
	CurrentPQF  int     `json:"currentPqf"`
	PurchasePQP float64 `json:"purchasePqp"`
}

type StatusProgress struct {
	Current             string  `json:"current"`
	Next                string  `json:"next,omitempty"`
	MaxLevel            bool    `json:"maxLevel"`
	PQPNeeded           float64 `json:"pqpNeeded"`
	PQFNeeded           int     `json:"pqfNeeded"`
	ProgressPercent     float64 `json:"progressPercent"`
	PQPAfterPurchase    float64 `json:"pqpAfterPurchase"`
	PurchaseReachesNext bool    `json:"purchaseReachesNext"`
}

// TravelPattern is a traveller archetype with its typical mile valuation.
type TravelPattern struct {
	Name              string  `json:"name"`
	AnnualFlights     int     `json:"annualFlights"`
	AvgFlightHours    float64 `json:"avgFlightHours"`
	DomesticRatio     float64 `json:"domesticRatio"`
	UpgradeMultiplier float64 `json:"upgradeMultiplier"`
	MileValuation     float64 `json:"mileValuation"`
}

// OfferVerdict grades a mile purchase price against a personal valuation.
type OfferVerdict string

const (
	OfferGood      OfferVerdict = "good"
	OfferExpensive OfferVerdict = "expensive"
)

type PersonalValueInput struct {
	Pattern    string `json:"pattern"`
	Redemption string `json:"redemption"`
	// OfferedCPM is an optional purchase price in cents per mile to grade.
	OfferedCPM *float64 `json:"offeredCpm,omitempty"`
}

type PersonalValueResult struct {
	Pattern       TravelPattern `json:"pattern"`
	Redemption    string        `json:"redemption"`
	Adjustment    float64       `json:"adjustment"`
	PersonalValue float64       `json:"personalValue"`
	PersonalCPM   float64       `json:"personalCpm"`
	OfferVerdict  OfferVerdict  `json:"offerVerdict,omitempty"`
}

// StatusRunReason explains why a status run is not recommended.
type StatusRunReason string

const (
	ReasonWontReachNextStatus StatusRunReason = "wont_reach_next_status"
	ReasonBelowPersonalValue  StatusRunReason = "below_personal_valuation"
)

type StatusRunInput struct {
	CurrentPQP  float64 `json:"currentPqp"`
	CurrentPQF  int     `json:"currentPqf"`
	PurchasePQP float64 `json:"purchasePqp"`
	Pattern     string  `json:"pattern"`
	Redemption  string  `json:"redemption"`
}

type StatusRunResult struct {
	Progress    StatusProgress      `json:"progress"`
	Personal    PersonalValueResult `json:"personal"`
	Recommended bool                `json:"recommended"`
	Reasons     []StatusRunReason   `json:"reasons,omitempty"`
}
