package service

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"miles-advisor/domain"
)

// printer groups thousands for display amounts.
//
//nolint:gochecknoglobals // x/text printers are meant to be shared.
var printer = message.NewPrinter(language.AmericanEnglish)

// Tone is how a summary should be coloured by a client.
type Tone string

const (
	TonePositive Tone = "positive"
	ToneNeutral  Tone = "neutral"
	ToneNegative Tone = "negative"
)

// Summary is the display text for one evaluation. It is derived from the
// result enums only; clients are free to ignore it and render their own.
type Summary struct {
	Headline string   `json:"headline"`
	Tone     Tone     `json:"tone"`
	Warning  string   `json:"warning,omitempty"`
	Notes    []string `json:"notes,omitempty"`
}

// FormatCurrency renders a dollar amount as "$1,234.50" ("-$12.00" when negative).
func FormatCurrency(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	cents := int64(math.Round(v * 100))
	return fmt.Sprintf("%s$%s.%02d", sign, printer.Sprintf("%d", cents/100), cents%100)
}

// FormatRange renders "low - high" in currency.
func FormatRange(r domain.ValueRange) string {
	return FormatCurrency(r.Low) + " - " + FormatCurrency(r.High)
}

// CabinDisplayName is the marketing name of a cabin.
func CabinDisplayName(c domain.CabinClass) string {
	switch c {
	case domain.Economy:
		return "Economy"
	case domain.PremiumPlus:
		return "Premium Plus"
	case domain.Business:
		return "Business (Polaris)"
	}
	return c.String()
}

func verdictTone(v domain.Verdict) Tone {
	switch v {
	case domain.VerdictGood:
		return TonePositive
	case domain.VerdictDecent:
		return ToneNeutral
	}
	return ToneNegative
}

func SummarizeAccelerator(in domain.AcceleratorInput, r domain.AcceleratorResult) Summary {
	s := Summary{Tone: verdictTone(r.Verdict)}

	withPQP := r.PQPCost != nil
	switch r.Verdict {
	case domain.VerdictGood:
		s.Headline = "✅ Good Deal!"
		if withPQP {
			s.Headline = "✅ Excellent Deal!"
		}
	case domain.VerdictDecent:
		s.Headline = "🟡 Decent Value."
	default:
		s.Headline = "❌ Not Worth It."
	}

	switch r.CPMBand {
	case domain.CPMBelowValuation:
		s.Notes = append(s.Notes, printer.Sprintf("You're paying only %.3f cents per mile. This is below the typical valuation of 1.2-1.5 cents each.", r.CPM))
	case domain.CPMSlightlyBelowValuation:
		s.Notes = append(s.Notes, printer.Sprintf("You're paying %.3f cents per mile. This is slightly below the typical valuation of 1.2-1.5 cents each.", r.CPM))
	case domain.CPMAboveValuation:
		s.Notes = append(s.Notes, printer.Sprintf("You're paying %.3f cents per mile. This is above the typical valuation of 1.2-1.5 cents each.", r.CPM))
	}

	if r.PQPEarningRate != nil {
		rate := *r.PQPEarningRate
		switch r.PQPEarningBand {
		case domain.PQPEarningExcellent:
			s.Notes = append(s.Notes, fmt.Sprintf("This offer provides excellent PQP earning rate (%.2f PQP per dollar).", rate))
		case domain.PQPEarningDecent:
			s.Notes = append(s.Notes, fmt.Sprintf("This offer provides decent PQP earning rate (%.2f PQP per dollar).", rate))
		default:
			s.Notes = append(s.Notes, fmt.Sprintf("This offer provides below-average PQP earning rate (%.2f PQP per dollar).", rate))
		}
	} else if r.PQPEarningBand == domain.PQPEarningNone {
		s.Notes = append(s.Notes, "This offer doesn't include PQP, so it only helps with award travel, not elite status progress.")
	}

	return s
}

func upgradeOptionName(o domain.UpgradeOption) string {
	switch o {
	case domain.UpgradeOptionMilesPlusCash:
		return "Miles + Cash"
	case domain.UpgradeOptionCash:
		return "Cash Upgrade"
	case domain.UpgradeOptionBuyFullFare:
		return "Buy Full Fare Ticket"
	}
	return "None"
}

// UpgradeWarningText is the display text of an upgrade warning, or "" for none.
func UpgradeWarningText(w domain.UpgradeWarning) string {
	switch w {
	case domain.UpgradeWarningSameCabin:
		return "⚠️ You've selected the same cabin class for both options. No upgrade needed."
	case domain.UpgradeWarningShortFlight:
		return "⚠️ Short flight – upgrade may not be worth it."
	case domain.UpgradeWarningNearFullFare:
		return "⚠️ Upgrade cost is too close to full fare price."
	case domain.UpgradeWarningMilesCashOverFare:
		return "⚠️ Miles + Cash upgrade is costing more than a full-fare business class ticket."
	case domain.UpgradeWarningSmallComfortGain:
		return "⚠️ Small difference in comfort for this flight length – not worth upgrading."
	}
	return ""
}

func SummarizeUpgrade(in domain.UpgradeInput, r domain.UpgradeResult) Summary {
	s := Summary{Warning: UpgradeWarningText(r.Warning)}

	if r.BestOption == domain.UpgradeOptionNone {
		s.Headline = "ℹ️ No upgrade selected"
		s.Tone = ToneNeutral
		return s
	}

	s.Headline = "✅ Best Option: " + upgradeOptionName(r.BestOption)
	s.Tone = TonePositive
	if r.Warning != domain.UpgradeWarningNone {
		s.Tone = ToneNegative
	}

	s.Notes = append(s.Notes, fmt.Sprintf("%s → %s, upgrade multiplier %.1f×.",
		CabinDisplayName(in.From), CabinDisplayName(in.To), r.UpgradeMultiplier))
	if r.LongFlight {
		s.Notes = append(s.Notes, fmt.Sprintf("Long flight (%dh) increases upgrade value by %.0f%% in our calculations.",
			in.TravelHours, (r.ComfortFactor-1)*100))
	}

	return s
}

func purchaseOptionName(o domain.PurchaseOption) string {
	switch o {
	case domain.PurchaseMiles:
		return "Miles"
	case domain.PurchaseMilesPlusCash:
		return "Miles + Cash"
	}
	return "Cash"
}

func adviceText(a domain.Advice) string {
	switch a {
	case domain.AdviceGreatRedemption, domain.AdviceGoodPurchase:
		return "🎯 Great redemption value! Above average cents-per-mile."
	case domain.AdviceGoodMixedValue:
		return "🎯 Good value for your miles in the Miles + Cash option!"
	}
	return ""
}

func redemptionBandNote(label string, band domain.ValueBand, cpm float64) string {
	switch band {
	case domain.ValueExcellent:
		return fmt.Sprintf("Excellent value with %s: %.2f cents per mile (avg. is 1.2-1.5¢).", label, cpm)
	case domain.ValueGood:
		return fmt.Sprintf("Good value with %s: %.2f cents per mile (above the typical 1.2-1.5¢ range).", label, cpm)
	case domain.ValueBelowAverage:
		return fmt.Sprintf("Below average value with %s: %.2f cents per mile (below the typical 1.2-1.5¢ range).", label, cpm)
	}
	return ""
}

func SummarizeTicketPurchase(in domain.TicketPurchaseInput, r domain.TicketPurchaseResult) Summary {
	s := Summary{
		Headline: "✅ Best Option: " + purchaseOptionName(r.BestOption),
		Tone:     TonePositive,
	}
	if text := adviceText(r.Advice); text != "" {
		s.Notes = append(s.Notes, text)
	}
	if note := redemptionBandNote("the Miles option", r.MilesBand, r.CPMMiles); note != "" {
		s.Notes = append(s.Notes, note)
	}
	if r.CPMMixed != nil {
		if note := redemptionBandNote("the Miles + Cash option", r.MixedBand, *r.CPMMixed); note != "" {
			s.Notes = append(s.Notes, note)
		}
	}
	return s
}

func SummarizeBuyMiles(in domain.BuyMilesInput, r domain.BuyMilesResult) Summary {
	s := Summary{}
	switch r.Band {
	case domain.ValueExcellent:
		s.Tone = TonePositive
		s.Headline = fmt.Sprintf("Excellent value: %.2f cpm (avg: 1.2–1.5¢)", r.CPMMiles)
	case domain.ValueGood:
		s.Tone = ToneNeutral
		s.Headline = fmt.Sprintf("Good value: %.2f cpm (below typical 1.2–1.5¢)", r.CPMMiles)
	default:
		s.Tone = ToneNegative
		s.Headline = fmt.Sprintf("Below average value: %.2f cpm (above typical 1.2–1.5¢)", r.CPMMiles)
	}
	if text := adviceText(r.Advice); text != "" {
		s.Notes = append(s.Notes, text)
	}
	if in.BonusMiles > 0 {
		s.Notes = append(s.Notes, printer.Sprintf("Includes %.0f bonus miles.", in.BonusMiles))
	}
	return s
}

func SummarizeRelativeUpgrade(in domain.RelativeUpgradeInput, r domain.RelativeUpgradeResult) Summary {
	switch r.Verdict {
	case domain.RelativeCostReasonable:
		return Summary{Tone: TonePositive, Headline: "✅ Upgrade is reasonably priced relative to your original fare."}
	case domain.RelativeCostBorderline:
		return Summary{Tone: ToneNeutral, Headline: "🟡 Upgrade is borderline—consider only for longer flights or big comfort boost."}
	}
	return Summary{Tone: ToneNegative, Headline: "❌ Upgrade is expensive compared to your base fare."}
}

func SummarizeStatusProgress(in domain.StatusProgressInput, r domain.StatusProgress) Summary {
	if r.MaxLevel {
		return Summary{Tone: TonePositive, Headline: fmt.Sprintf("🏅 %s: max level reached.", r.Current)}
	}
	s := Summary{
		Headline: fmt.Sprintf("🏅 %s → %s (%.1f%%)", r.Current, r.Next, r.ProgressPercent),
		Tone:     ToneNeutral,
	}
	if r.PurchaseReachesNext {
		s.Tone = TonePositive
		s.Notes = append(s.Notes, fmt.Sprintf("✅ This purchase will achieve %s!", r.Next))
	} else {
		remaining := math.Max(0, r.PQPNeeded-in.PurchasePQP)
		s.Notes = append(s.Notes, printer.Sprintf("⏳ After purchase, still need %.0f PQP and %d PQF.", remaining, r.PQFNeeded))
	}
	return s
}

func SummarizePersonalValue(in domain.PersonalValueInput, r domain.PersonalValueResult) Summary {
	s := Summary{
		Headline: fmt.Sprintf("Personal mile value: %.2f cents", r.PersonalCPM),
		Tone:     ToneNeutral,
	}
	if in.OfferedCPM != nil {
		switch r.OfferVerdict {
		case domain.OfferGood:
			s.Tone = TonePositive
			s.Notes = append(s.Notes, fmt.Sprintf("💳 Mile purchase at %.2f¢ is GOOD for this profile.", *in.OfferedCPM))
		case domain.OfferExpensive:
			s.Tone = ToneNegative
			s.Notes = append(s.Notes, fmt.Sprintf("💳 Mile purchase at %.2f¢ is EXPENSIVE for this profile.", *in.OfferedCPM))
		}
	}
	return s
}

func SummarizeStatusRun(in domain.StatusRunInput, r domain.StatusRunResult) Summary {
	if r.Recommended {
		return Summary{
			Headline: "✅ This looks like a good status run opportunity!",
			Tone:     TonePositive,
			Notes: []string{
				fmt.Sprintf("Achieves %s status.", r.Progress.Next),
				fmt.Sprintf("Aligns with your %.2f¢ mile valuation.", r.Personal.PersonalCPM),
			},
		}
	}
	s := Summary{Headline: "⚠️ Consider carefully", Tone: ToneNegative}
	for _, reason := range r.Reasons {
		switch reason {
		case domain.ReasonWontReachNextStatus:
			s.Notes = append(s.Notes, "Won't achieve next status level.")
		case domain.ReasonBelowPersonalValue:
			s.Notes = append(s.Notes, "Below your personal mile valuation.")
		}
	}
	return s
}
