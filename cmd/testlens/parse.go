// Copyright 2026 The Testlens Authors
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/testlens/testlens/internal/output"
)

// Parse-specific flag values.
var (
	parseKind    string
	parseFormat  string
	parseOutput  string
	parsePlanned string
)

// parseCmd extracts records from a report export and writes them in a
// machine format.
var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a report export into machine-readable records",
	Long: `Parse an exported test report (plain text, TestLink HTML/DOC, or TestLink
XML) and write the extracted records as CSV, grouped CSV, JSON, or Markdown.

For a human-readable terminal dashboard, use 'testlens report' instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&parseKind, "kind", "k", "", "source kind override (text, html, xml)")
	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "csv", "output format (csv, csv-grouped, json, markdown)")
	parseCmd.Flags().StringVarP(&parseOutput, "output", "o", "", "output file path (default: stdout)")
	parseCmd.Flags().StringVar(&parsePlanned, "planned-totals", "", "planned case counts per platform (e.g. \"APP Android=20,Site Chrome=20\")")
}

func runParse(cmd *cobra.Command, args []string) error {
	loaded, err := loadReport(args[0], parseKind, parsePlanned)
	if err != nil {
		return err
	}

	// Flag wins; an unset flag falls back to output_format in .testlens.yaml.
	format := parseFormat
	if !cmd.Flags().Changed("format") && loaded.cfg.OutputFormat != "" {
		format = loaded.cfg.OutputFormat
	}
	formatter, err := output.Get(format)
	if err != nil {
		return exitError(ExitInvalidArgs, "%v", err)
	}

	w, closeFn, err := openOutput(parseOutput)
	if err != nil {
		return err
	}
	defer closeFn()

	if err := formatter.Format(loaded.result, loaded.agg, w); err != nil {
		return exitError(ExitParseError, "testlens: formatting failed (%v)", err)
	}
	return nil
}
