// Copyright 2026 The Testlens Authors
// SPDX-License-Identifier: MIT

// Package summary turns an aggregate result into a short natural-language
// status update via an LLM provider. The prompt carries the KPIs and the
// per-platform, per-story breakdown; the model writes the prose.
package summary

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/testlens/testlens/internal/aggregate"
	"github.com/testlens/testlens/internal/llm"
)

// systemPrompt sets the register for the generated update.
const systemPrompt = "You are a QA lead writing concise status updates for Microsoft Teams."

// promptHeader states the formatting rules the model must follow. Teams
// renders a markdown subset, so bold uses double asterisks.
const promptHeader = `Based on the following QA dashboard metrics, write a professional, clear
and concise summary to be posted on Microsoft Teams.

Formatting rules:
- Use relevant emojis to make the text easy to scan.
- Highlight important keywords in bold using double asterisks (Teams markdown).
- Use short, direct sentences.
- Lead with the overall metrics, then give a brief per-story summary grouped by platform.

### Input data:
`

// quotes are appended to every generated summary.
var quotes = []struct {
	text   string
	author string
}{
	{"Failure is an option here. If things are not failing, you are not innovating enough.", "Elon Musk"},
	{"Innovation distinguishes between a leader and a follower.", "Steve Jobs"},
	{"If you build a great experience, customers tell each other about that.", "Bill Gates"},
	{"The first step is to establish that something is possible; then probability will occur.", "Elon Musk"},
	{"Patience is a key element of success.", "Bill Gates"},
}

// Generator produces summaries through an llm.Provider.
type Generator struct {
	provider llm.Provider

	// pickQuote is overridable for deterministic tests.
	pickQuote func() string
}

// New returns a Generator backed by the given provider.
func New(provider llm.Provider) *Generator {
	return &Generator{provider: provider}
}

// Options tune a single Generate call. Zero values fall back to the
// provider's defaults.
type Options struct {
	Model     string
	MaxTokens int
}

// Generate builds the prompt from the aggregate, calls the provider, and
// appends an inspirational quote to whatever the model returned.
func (g *Generator) Generate(ctx context.Context, agg *aggregate.Result, opts Options) (string, error) {
	resp, err := g.provider.Complete(ctx, llm.Request{
		Prompt:       BuildPrompt(agg),
		Model:        opts.Model,
		MaxTokens:    opts.MaxTokens,
		SystemPrompt: systemPrompt,
	})
	if err != nil {
		return "", fmt.Errorf("summary: %w", err)
	}

	quote := g.pickQuote
	if quote == nil {
		quote = randomQuote
	}
	return strings.TrimSpace(resp.Content) + "\n\n" + quote(), nil
}

func randomQuote() string {
	q := quotes[rand.Intn(len(quotes))]
	return fmt.Sprintf("*%s* - %s", q.text, q.author)
}

// BuildPrompt renders the aggregate into the model prompt. Groups are
// emitted in stable order so the same input always yields the same prompt.
func BuildPrompt(agg *aggregate.Result) string {
	var b strings.Builder
	b.WriteString(promptHeader)

	k := agg.KPIs
	fmt.Fprintf(&b, "- Overall KPIs:\n")
	fmt.Fprintf(&b, "    - Total test cases: %d\n", k.Total)
	fmt.Fprintf(&b, "    - Passed cases: %d\n", k.Passed)
	fmt.Fprintf(&b, "    - Execution rate: %.1f%%\n", k.ExecutionPct)
	fmt.Fprintf(&b, "    - Success rate: %.1f%%\n", k.SuccessPct)

	b.WriteString("\n- Breakdown by platform and story:\n")
	lastPlatform := ""
	lastStory := ""
	for _, g := range agg.SortedGroups() {
		if g.Key.Platform != lastPlatform {
			fmt.Fprintf(&b, "\n- **Platform: %s**\n", g.Key.Platform)
			lastPlatform = g.Key.Platform
			lastStory = ""
		}
		if g.Key.StoryID != lastStory {
			fmt.Fprintf(&b, "    - **%s - %s**:\n", g.Key.StoryID, g.Key.StoryTitle)
			lastStory = g.Key.StoryID
		}
		fmt.Fprintf(&b, "        - %s: %d\n", g.Key.Status, g.Count)
	}

	if len(agg.Defects) > 0 {
		b.WriteString("\n- Defects impacting execution:\n")
		for _, d := range agg.Defects {
			fmt.Fprintf(&b, "    - %s: %d case(s)\n", d.ID, d.Cases)
		}
	}
	return b.String()
}
