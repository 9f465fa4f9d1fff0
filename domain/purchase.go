package domain

// PurchaseOption is a way to pay for a ticket.
type PurchaseOption string

const (
	PurchaseCash          PurchaseOption = "cash"
	PurchaseMiles         PurchaseOption = "miles"
	PurchaseMilesPlusCash PurchaseOption = "miles_plus_cash"
)

// Advice is an optional advisory attached to a purchase evaluation.
type Advice string

const (
	AdviceNone            Advice = ""
	AdviceGreatRedemption Advice = "great_redemption"
	AdviceGoodMixedValue  Advice = "good_mixed_value"
	AdviceGoodPurchase    Advice = "good_purchase"
)

// ValueBand is a coarse grade of a cents-per-mile figure.
type ValueBand string

const (
	ValueExcellent    ValueBand = "excellent"
	ValueGood         ValueBand = "good"
	ValueAverage      ValueBand = "average"
	ValueBelowAverage ValueBand = "below_average"
)

type TicketPurchaseInput struct {
	MilesPrice         float64 `json:"milesPrice"`
	CashPrice          float64 `json:"cashPrice"`
	MilesPlusCashMiles float64 `json:"milesPlusCashMiles"`
	MilesPlusCashCash  float64 `json:"milesPlusCashCash"`
}

type TicketPurchaseResult struct {
	MilesValue ValueRange     `json:"milesValue"`
	MilesTotal ValueRange     `json:"milesTotal"`
	MixedTotal *ValueRange    `json:"mixedTotal,omitempty"`
	CashTotal  float64        `json:"cashTotal"`
	CPMMiles   float64        `json:"cpmMiles"`
	CPMMixed   *float64       `json:"cpmMixed,omitempty"`
	BestOption PurchaseOption `json:"bestOption"`
	Advice     Advice         `json:"advice,omitempty"`
	MilesBand  ValueBand      `json:"milesBand,omitempty"`
	MixedBand  ValueBand      `json:"mixedBand,omitempty"`
}

// BuyMilesInput describes a bulk miles sale. Bonus miles are added to the
// base quantity before evaluation.
type BuyMilesInput struct {
	BaseMiles  float64 `json:"baseMiles"`
	BonusMiles float64 `json:"bonusMiles"`
	CashPrice  float64 `json:"cashPrice"`
}

// TotalMiles is the quantity actually credited.
func (in BuyMilesInput) TotalMiles() float64 {
	return in.BaseMiles + in.BonusMiles
}

type BuyMilesResult struct {
	TotalMiles float64    `json:"totalMiles"`
	MilesValue ValueRange `json:"milesValue"`
	CashTotal  float64    `json:"cashTotal"`
	CPMMiles   float64    `json:"cpmMiles"`
	Advice     Advice     `json:"advice,omitempty"`
	Band       ValueBand  `json:"band"`
}
