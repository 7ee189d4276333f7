package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var port int

var rootCmd = &cobra.Command{
	Use:          "bnr-exporter",
	Short:        "BNR Exchange Rates Prometheus Exporter",
	Long:         `Serves the current National Bank of Romania exchange rates as Prometheus metrics, fetching the bulletin on every scrape.`,
	SilenceUsage: true,
	RunE:         serve,
}

func init() {
	rootCmd.Flags().IntVar(&port, "port", 8000, "Port to serve metrics on")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Whoops. There was an error while executing your command '%s'\n", err)
		os.Exit(1)
	}
}
