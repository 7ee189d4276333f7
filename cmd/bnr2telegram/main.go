package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	dryRun      bool
	currencies  string
	provider    string
	schedule    string
	timezone    string
	metricsPort int
)

var rootCmd = &cobra.Command{
	Use:   "bnr2telegram",
	Short: "Fetch BNR exchange rates and send them to a messaging channel",
	Long: `Fetches the daily National Bank of Romania exchange-rate bulletin and posts
it to a Telegram (or Slack) channel. Runs once by default; with --schedule it
keeps running and posts on the given cron schedule.`,
	Example: `  bnr2telegram --dry-run --currencies USD,EUR,GBP
  bnr2telegram --schedule "30 13 * * 1-5"`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print message instead of sending it")
	rootCmd.Flags().StringVar(&currencies, "currencies", "", "Comma-separated list of currencies (e.g., USD,EUR,GBP)")
	rootCmd.Flags().StringVar(&provider, "provider", "", "Delivery provider: telegram or slack (default from NOTIFY_PROVIDER)")
	rootCmd.Flags().StringVar(&schedule, "schedule", "", "Cron spec to run on repeatedly instead of once")
	rootCmd.Flags().StringVar(&timezone, "timezone", "Europe/Bucharest", "Time zone the schedule is evaluated in")
	rootCmd.Flags().IntVar(&metricsPort, "metrics-port", 0, "Serve self metrics on this port while scheduled (0 disables)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Whoops. There was an error while executing your command '%s'\n", err)
		os.Exit(1)
	}
}
