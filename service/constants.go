package service

const (
	MileValueLow  = 0.012 // 1.2 cents per mile
	MileValueHigh = 0.015 // 1.5 cents per mile

	// Upgrades on flights shorter than this many hours draw the short-flight warning.
	UpgradeComfortHours = 6

	comfortPerHour = 0.05

	// Fallback full fare when none is supplied.
	deemedFareMarkup = 1.5
	deemedFareFloor  = 1000.0

	nearFullFareRatio    = 0.8
	smallComfortGainHour = 5

	pqpCostExcellent = 1.30
	pqpCostDecent    = 1.50
	goodCostPerMile  = 0.01

	pqpRateExcellent = 0.65
	pqpRateDecent    = 0.5

	// CPM thresholds are in cents per mile.
	cpmRedemptionAdvice = 1.5
	cpmPurchaseAdvice   = 1.2
	cpmExcellent        = 2.0
	cpmGood             = 1.5
	cpmBelowAverage     = 1.0
	cpmTypicalLow       = 1.2

	relativeReasonable = 0.5
	relativeBorderline = 0.8

	// Personal valuation at or above which a status run is worth it.
	statusRunMinValue = 0.013
)
