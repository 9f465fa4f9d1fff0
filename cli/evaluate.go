package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"miles-advisor/domain"
	"miles-advisor/service"
)

//nolint:gochecknoglobals // x/text printers are meant to be shared.
var printer = message.NewPrinter(language.AmericanEnglish)

func formatMiles(v float64) string { return printer.Sprintf("%.0f", v) }
func formatCPM(v float64) string   { return fmt.Sprintf("%.2f¢", v) }

func newAcceleratorCmd(opts *rootOptions) *cobra.Command {
	var in domain.AcceleratorInput

	cmd := &cobra.Command{
		Use:   "accelerator",
		Short: "Grade an award accelerator offer (miles, optionally PQP, for cash)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			suite, err := opts.suite()
			if err != nil {
				return err
			}
			r, err := suite.Accelerator.Evaluate(in)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.output, service.SummarizeAccelerator(in, r), acceleratorRows(r), r)
		},
	}

	cmd.Flags().Float64Var(&in.Miles, "miles", 0, "miles offered")
	cmd.Flags().Float64Var(&in.PQP, "pqp", 0, "premier qualifying points included")
	cmd.Flags().Float64Var(&in.Cost, "cost", 0, "price of the offer in dollars")
	_ = cmd.MarkFlagRequired("cost")

	return cmd
}

func acceleratorRows(r domain.AcceleratorResult) []row {
	rows := []row{
		{"Miles worth", service.FormatRange(r.MilesWorth)},
		{"Cost per mile", fmt.Sprintf("$%.4f", r.CostPerMile)},
		{"Cents per mile", formatCPM(r.CPM)},
	}
	if r.PQPCost != nil {
		rows = append(rows, row{"Net cost per PQP", fmt.Sprintf("$%.2f - $%.2f", r.PQPCost.Low, r.PQPCost.High)})
	}
	if r.PQPEarningRate != nil {
		rows = append(rows, row{"PQP per dollar", fmt.Sprintf("%.2f", *r.PQPEarningRate)})
	}
	return append(rows, row{"Verdict", string(r.Verdict)})
}

func newUpgradeCmd(opts *rootOptions) *cobra.Command {
	var (
		in       domain.UpgradeInput
		from, to string
	)

	cmd := &cobra.Command{
		Use:   "upgrade",
		Short: "Compare miles+cash, cash-only and full-fare upgrade options",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if in.From, err = domain.ParseCabinClass(from); err != nil {
				return fmt.Errorf("--from: %w", err)
			}
			if in.To, err = domain.ParseCabinClass(to); err != nil {
				return fmt.Errorf("--to: %w", err)
			}

			suite, err := opts.suite()
			if err != nil {
				return err
			}
			r, err := suite.Upgrade.Evaluate(in)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.output, service.SummarizeUpgrade(in, r), upgradeRows(r), r)
		},
	}

	cmd.Flags().Float64Var(&in.Miles, "miles", 0, "miles for the miles+cash option")
	cmd.Flags().Float64Var(&in.Cash, "cash", 0, "cash co-pay for the miles+cash option")
	cmd.Flags().Float64Var(&in.CashUpgradePrice, "cash-upgrade", 0, "price of the cash-only upgrade")
	cmd.Flags().Float64Var(&in.FullFarePrice, "full-fare", 0, "full fare of the higher cabin (0 = estimate)")
	cmd.Flags().IntVar(&in.TravelHours, "hours", 0, "flight duration in whole hours")
	cmd.Flags().StringVar(&from, "from", domain.Economy.String(), "current cabin: economy, premium_plus, business")
	cmd.Flags().StringVar(&to, "to", domain.Business.String(), "target cabin: economy, premium_plus, business")

	return cmd
}

func upgradeRows(r domain.UpgradeResult) []row {
	if r.BestOption == domain.UpgradeOptionNone {
		return nil
	}
	rows := []row{{"Miles worth", service.FormatRange(r.MilesWorth)}}
	if r.MilesCashTotal != nil {
		rows = append(rows, row{"Miles + cash cost", service.FormatRange(*r.MilesCashTotal)})
	}
	rows = append(rows,
		row{"Cash upgrade cost", service.FormatCurrency(r.CashOnlyTotal)},
		row{"Full fare", service.FormatCurrency(r.DeemedFullFare)},
	)
	if r.MilesCashSavings != nil {
		rows = append(rows, row{"Miles + cash value", service.FormatRange(*r.MilesCashSavings)})
	}
	return append(rows,
		row{"Cash upgrade value", service.FormatCurrency(r.CashSavings)},
		row{"Comfort factor", fmt.Sprintf("%.2f× (cabin %.1f×)", r.ComfortFactor, r.UpgradeMultiplier)},
		row{"Best option", string(r.BestOption)},
	)
}

func newTicketCmd(opts *rootOptions) *cobra.Command {
	var in domain.TicketPurchaseInput

	cmd := &cobra.Command{
		Use:   "ticket",
		Short: "Choose between paying cash, miles or miles+cash for a ticket",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			suite, err := opts.suite()
			if err != nil {
				return err
			}
			r, err := suite.TicketPurchase.Compare(in)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.output, service.SummarizeTicketPurchase(in, r), ticketRows(r), r)
		},
	}

	cmd.Flags().Float64Var(&in.MilesPrice, "miles", 0, "award price in miles")
	cmd.Flags().Float64Var(&in.CashPrice, "cash", 0, "cash fare")
	cmd.Flags().Float64Var(&in.MilesPlusCashMiles, "mixed-miles", 0, "miles part of the miles+cash fare")
	cmd.Flags().Float64Var(&in.MilesPlusCashCash, "mixed-cash", 0, "cash part of the miles+cash fare")

	return cmd
}

func ticketRows(r domain.TicketPurchaseResult) []row {
	rows := []row{
		{"Cash price", service.FormatCurrency(r.CashTotal)},
		{"Miles value", service.FormatRange(r.MilesTotal)},
		{"Miles redemption", formatCPM(r.CPMMiles)},
	}
	if r.MixedTotal != nil {
		rows = append(rows, row{"Miles + cash value", service.FormatRange(*r.MixedTotal)})
	}
	if r.CPMMixed != nil {
		rows = append(rows, row{"Miles + cash redemption", formatCPM(*r.CPMMixed)})
	}
	return append(rows, row{"Best option", string(r.BestOption)})
}

func newBuyMilesCmd(opts *rootOptions) *cobra.Command {
	var in domain.BuyMilesInput

	cmd := &cobra.Command{
		Use:   "buy-miles",
		Short: "Grade a miles purchase offer by its price per mile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			suite, err := opts.suite()
			if err != nil {
				return err
			}
			r, err := suite.BuyMiles.Evaluate(in)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.output, service.SummarizeBuyMiles(in, r), buyMilesRows(r), r)
		},
	}

	cmd.Flags().Float64Var(&in.BaseMiles, "miles", 0, "miles purchased")
	cmd.Flags().Float64Var(&in.BonusMiles, "bonus", 0, "bonus miles included in the offer")
	cmd.Flags().Float64Var(&in.CashPrice, "price", 0, "total price in dollars")
	_ = cmd.MarkFlagRequired("price")

	return cmd
}

func buyMilesRows(r domain.BuyMilesResult) []row {
	return []row{
		{"Miles credited", formatMiles(r.TotalMiles)},
		{"Price", service.FormatCurrency(r.CashTotal)},
		{"Worth", service.FormatRange(r.MilesValue)},
		{"Price per mile", formatCPM(r.CPMMiles)},
	}
}

func newRelativeUpgradeCmd(opts *rootOptions) *cobra.Command {
	var in domain.RelativeUpgradeInput

	cmd := &cobra.Command{
		Use:   "relative-upgrade",
		Short: "Grade an upgrade price as a share of the base fare",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := service.EvaluateRelativeUpgradeCost(in)
			if err != nil {
				return err
			}
			rows := []row{
				{"Upgrade / base fare", fmt.Sprintf("%.0f%%", r.Ratio*100)},
				{"Verdict", string(r.Verdict)},
			}
			return render(cmd.OutOrStdout(), opts.output, service.SummarizeRelativeUpgrade(in, r), rows, r)
		},
	}

	cmd.Flags().Float64Var(&in.BaseFare, "base-fare", 0, "fare already paid")
	cmd.Flags().Float64Var(&in.UpgradeCost, "upgrade-cost", 0, "price of the upgrade")

	return cmd
}

func newStatusCmd(opts *rootOptions) *cobra.Command {
	var in domain.StatusRunInput

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Track elite status progress; with --pattern also judge a status run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			suite, err := opts.suite()
			if err != nil {
				return err
			}

			if in.Pattern == "" {
				progressIn := domain.StatusProgressInput{
					CurrentPQP:  in.CurrentPQP,
					CurrentPQF:  in.CurrentPQF,
					PurchasePQP: in.PurchasePQP,
				}
				p, err := suite.EliteStatus.Progress(progressIn)
				if err != nil {
					return err
				}
				return render(cmd.OutOrStdout(), opts.output, service.SummarizeStatusProgress(progressIn, p), statusRows(p), p)
			}

			r, err := suite.StatusRun.Recommend(in)
			if err != nil {
				return err
			}
			rows := append(statusRows(r.Progress), row{"Personal mile value", formatCPM(r.Personal.PersonalCPM)})
			return render(cmd.OutOrStdout(), opts.output, service.SummarizeStatusRun(in, r), rows, r)
		},
	}

	cmd.Flags().Float64Var(&in.CurrentPQP, "pqp", 0, "PQP earned so far this year")
	cmd.Flags().IntVar(&in.CurrentPQF, "pqf", 0, "PQF flown so far this year")
	cmd.Flags().Float64Var(&in.PurchasePQP, "purchase-pqp", 0, "PQP an offer would add")
	cmd.Flags().StringVar(&in.Pattern, "pattern", "", "travel pattern for a status run check")
	cmd.Flags().StringVar(&in.Redemption, "redemption", "", "preferred redemption for a status run check")

	return cmd
}

func statusRows(p domain.StatusProgress) []row {
	rows := []row{{"Current status", p.Current}}
	if p.MaxLevel {
		return rows
	}
	return append(rows,
		row{"Next status", p.Next},
		row{"Progress", fmt.Sprintf("%.1f%%", p.ProgressPercent)},
		row{"PQP needed", formatMiles(p.PQPNeeded)},
		row{"PQF needed", fmt.Sprintf("%d", p.PQFNeeded)},
		row{"PQP after purchase", formatMiles(p.PQPAfterPurchase)},
	)
}

func newPersonalValueCmd(opts *rootOptions) *cobra.Command {
	var (
		in      domain.PersonalValueInput
		offered float64
	)

	cmd := &cobra.Command{
		Use:   "personal-value",
		Short: "Work out what miles are worth to a given kind of traveller",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("offered-cpm") {
				in.OfferedCPM = &offered
			}

			suite, err := opts.suite()
			if err != nil {
				return err
			}
			r, err := suite.PersonalValue.Calculate(in)
			if err != nil {
				return err
			}
			rows := []row{
				{"Travel pattern", r.Pattern.Name},
				{"Flights per year", fmt.Sprintf("%d", r.Pattern.AnnualFlights)},
				{"Base valuation", formatCPM(r.Pattern.MileValuation * 100)},
				{"Redemption adjustment", fmt.Sprintf("%+.2f¢", r.Adjustment*100)},
				{"Personal value", formatCPM(r.PersonalCPM)},
			}
			return render(cmd.OutOrStdout(), opts.output, service.SummarizePersonalValue(in, r), rows, r)
		},
	}

	cmd.Flags().StringVar(&in.Pattern, "pattern", "business_traveler", "travel pattern from the valuation profile")
	cmd.Flags().StringVar(&in.Redemption, "redemption", "economy_international", "preferred redemption type")
	cmd.Flags().Float64Var(&offered, "offered-cpm", 0, "grade a miles purchase at this many cents per mile")

	return cmd
}
