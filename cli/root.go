package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"miles-advisor/config"
	"miles-advisor/service"
)

const (
	outputTable = "table"
	outputJSON  = "json"
)

// logger is the package-level logger for CLI operations.
var logger = zerolog.Nop() //nolint:gochecknoglobals // set once per invocation in PersistentPreRunE

type rootOptions struct {
	profile  string
	logLevel string
	debug    bool
	output   string
}

// suite loads the valuation profile (flag first, then MILES_PROFILE_PATH)
// and wires the evaluators against it.
func (o *rootOptions) suite() (*service.Suite, error) {
	path := o.profile
	if path == "" {
		path = os.Getenv("MILES_PROFILE_PATH")
	}
	valuation, err := config.LoadProfile(path)
	if err != nil {
		return nil, err
	}
	if path != "" {
		logger.Debug().Str("profile", path).Msg("loaded valuation profile")
	}
	return service.NewSuite(valuation), nil
}

// NewRootCmd creates the root Cobra command for the milesadvisor CLI.
func NewRootCmd(ver string) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "milesadvisor",
		Short:        "Decide whether airline miles offers are worth it",
		Long:         "milesadvisor values frequent-flyer miles and grades accelerators, upgrades, award tickets and miles purchases.",
		Version:      ver,
		Example:      rootCmdExample,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if opts.output != outputTable && opts.output != outputJSON {
				return fmt.Errorf("--output must be %q or %q, got %q", outputTable, outputJSON, opts.output)
			}
			logger = newLogger(cmd.ErrOrStderr(), opts.logLevel, opts.debug)
			logger.Debug().Str("command", cmd.Name()).Msg("command started")
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.profile, "profile", "", "valuation profile YAML (defaults to $MILES_PROFILE_PATH)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVarP(&opts.output, "output", "o", outputTable, "output format: table or json")

	cmd.AddCommand(
		newServeCmd(opts, ver),
		newAcceleratorCmd(opts),
		newUpgradeCmd(opts),
		newTicketCmd(opts),
		newBuyMilesCmd(opts),
		newRelativeUpgradeCmd(opts),
		newStatusCmd(opts),
		newPersonalValueCmd(opts),
	)

	return cmd
}

const rootCmdExample = `  # Is 10,000 miles plus 500 PQP for $1,000 a good deal?
  milesadvisor accelerator --miles 10000 --pqp 500 --cost 1000

  # Compare upgrade options on a 10 hour flight
  milesadvisor upgrade --miles 20000 --cash 100 --cash-upgrade 900 --full-fare 3000 --hours 10 --from economy --to business

  # Pay with cash or miles?
  milesadvisor ticket --miles 20000 --cash 500

  # Track elite status and check a status run
  milesadvisor status --pqp 3500 --pqf 20 --purchase-pqp 800 --pattern frequent_flyer --redemption economy_international

  # Start the HTTP API
  milesadvisor serve --port 8080`
