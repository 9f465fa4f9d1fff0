package domain

// Verdict is the three-way outcome shared by the offer evaluators.
type Verdict string

const (
	VerdictGood   Verdict = "good"
	VerdictDecent Verdict = "decent"
	VerdictPoor   Verdict = "poor"
)

// CPMBand places the paid cents-per-mile against the typical valuation range.
type CPMBand string

const (
	CPMBelowValuation         CPMBand = "below_valuation"
	CPMSlightlyBelowValuation CPMBand = "slightly_below_valuation"
	CPMAboveValuation         CPMBand = "above_valuation"
)

// PQPEarningBand grades how many PQP an offer yields per dollar.
type PQPEarningBand string

const (
	PQPEarningExcellent    PQPEarningBand = "excellent"
	PQPEarningDecent       PQPEarningBand = "decent"
	PQPEarningBelowAverage PQPEarningBand = "below_average"
	PQPEarningNone         PQPEarningBand = "no_pqp"
)

type AcceleratorInput struct {
	Miles float64 `json:"miles"`
	PQP   float64 `json:"pqp"`
	Cost  float64 `json:"cost"`
}

type AcceleratorResult struct {
	MilesWorth     ValueRange     `json:"milesWorth"`
	CostPerMile    float64        `json:"costPerMile"`
	PQPCost        *ValueRange    `json:"pqpCost,omitempty"`
	Verdict        Verdict        `json:"verdict"`
	CPM            float64        `json:"cpm"`
	CPMBand        CPMBand        `json:"cpmBand,omitempty"`
	PQPEarningRate *float64       `json:"pqpEarningRate,omitempty"`
	PQPEarningBand PQPEarningBand `json:"pqpEarningBand,omitempty"`
}
