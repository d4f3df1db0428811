// Copyright 2026 The Testlens Authors
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/testlens/testlens/internal/report"
)

// Report-specific flag values.
var (
	reportKind    string
	reportOutput  string
	reportPlanned string
)

// reportCmd renders the terminal dashboard for one report export.
var reportCmd = &cobra.Command{
	Use:   "report <file>",
	Short: "Render an execution dashboard for a report export",
	Long: `Parse an exported test report and render a terminal dashboard: execution
KPIs, status counts, the per-platform and per-story breakdown, and defects
referenced in failed or blocked cases.`,
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVarP(&reportKind, "kind", "k", "", "source kind override (text, html, xml)")
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "", "output file path (default: stdout)")
	reportCmd.Flags().StringVar(&reportPlanned, "planned-totals", "", "planned case counts per platform (e.g. \"APP Android=20,Site Chrome=20\")")
}

func runReport(_ *cobra.Command, args []string) error {
	loaded, err := loadReport(args[0], reportKind, reportPlanned)
	if err != nil {
		return err
	}

	w, closeFn, err := openOutput(reportOutput)
	if err != nil {
		return err
	}
	defer closeFn()

	if err := report.Render(loaded.result, loaded.agg, w); err != nil {
		return exitError(ExitParseError, "testlens: rendering failed (%v)", err)
	}
	return nil
}
