package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	testlenslog "github.com/testlens/testlens/internal/log"
)

// Global flag values.
var (
	verbose bool
	quiet   bool
	noColor bool
)

// rootCmd is the base command for testlens.
var rootCmd = &cobra.Command{
	Use:   "testlens",
	Short: "Extract metrics from exported QA test reports",
	Long: `Testlens recovers structured test results from the flat report exports of
test-management tools. It parses plain-text, HTML, and XML exports into
platform / story / test-case records, aggregates them into execution KPIs,
and renders dashboards, CSV, JSON, or an AI-written status summary.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		testlenslog.Setup(verbose, quiet)
		if noColor {
			color.NoColor = true
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(summarizeCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)
}
