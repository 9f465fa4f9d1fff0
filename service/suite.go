package service

import "miles-advisor/domain"

// Suite wires every evaluator against one valuation profile.
type Suite struct {
	Valuation      domain.Valuation
	Valuer         *Valuer
	Accelerator    *AcceleratorService
	Upgrade        *UpgradeService
	TicketPurchase *TicketPurchaseService
	BuyMiles       *BuyMilesService
	EliteStatus    *EliteStatusService
	PersonalValue  *PersonalValueService
	StatusRun      *StatusRunService
}

func NewSuite(v domain.Valuation) *Suite {
	valuer := NewValuer(v.LowRate, v.HighRate)
	status := NewEliteStatusService(v.StatusLadder)
	personal := NewPersonalValueService(v.TravelPatterns, v.RedemptionAdjustments)

	return &Suite{
		Valuation:      v,
		Valuer:         valuer,
		Accelerator:    NewAcceleratorService(valuer),
		Upgrade:        NewUpgradeService(valuer, v.Multipliers, v.ComfortHoursThreshold),
		TicketPurchase: NewTicketPurchaseService(valuer),
		BuyMiles:       NewBuyMilesService(valuer),
		EliteStatus:    status,
		PersonalValue:  personal,
		StatusRun:      NewStatusRunService(status, personal),
	}
}
