// Copyright 2026 The Testlens Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/testlens/testlens/internal/llm"
	"github.com/testlens/testlens/internal/summary"
)

// Summarize-specific flag values.
var (
	summarizeKind      string
	summarizeModel     string
	summarizeMaxTokens int
	summarizeOutput    string
	summarizePlanned   string
)

// summarizeCmd generates an AI-written status update for one report export.
var summarizeCmd = &cobra.Command{
	Use:   "summarize <file>",
	Short: "Generate an AI status summary for a report export",
	Long: `Parse an exported test report and generate a short natural-language status
update suitable for posting to Microsoft Teams. Requires ANTHROPIC_API_KEY.

The model and token budget can also be set in .testlens.yaml next to the
report file; flags take precedence.`,
	Args: cobra.ExactArgs(1),
	RunE: runSummarize,
}

func init() {
	summarizeCmd.Flags().StringVarP(&summarizeKind, "kind", "k", "", "source kind override (text, html, xml)")
	summarizeCmd.Flags().StringVarP(&summarizeModel, "model", "m", "", "LLM model override")
	summarizeCmd.Flags().IntVar(&summarizeMaxTokens, "max-tokens", 0, "cap summary response length (0 = provider default)")
	summarizeCmd.Flags().StringVarP(&summarizeOutput, "output", "o", "", "output file path (default: stdout)")
	summarizeCmd.Flags().StringVar(&summarizePlanned, "planned-totals", "", "planned case counts per platform (e.g. \"APP Android=20,Site Chrome=20\")")
}

func runSummarize(cmd *cobra.Command, args []string) error {
	loaded, err := loadReport(args[0], summarizeKind, summarizePlanned)
	if err != nil {
		return err
	}

	if loaded.cfg.NoLLM {
		return exitError(ExitInvalidArgs, "testlens: summaries are disabled by no_llm in .testlens.yaml")
	}

	provider, err := llm.NewAnthropicProvider()
	if err != nil {
		return exitError(ExitLLMError, "%v", err)
	}

	opts := summary.Options{
		Model:     loaded.cfg.Model,
		MaxTokens: loaded.cfg.MaxTokens,
	}
	if summarizeModel != "" {
		opts.Model = summarizeModel
	}
	if summarizeMaxTokens > 0 {
		opts.MaxTokens = summarizeMaxTokens
	}

	text, err := summary.New(provider).Generate(cmd.Context(), loaded.agg, opts)
	if err != nil {
		return exitError(ExitLLMError, "%v", err)
	}

	w, closeFn, err := openOutput(summarizeOutput)
	if err != nil {
		return err
	}
	defer closeFn()

	_, err = fmt.Fprintln(w, text)
	return err
}
