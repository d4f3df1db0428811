package mcpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/testlens/testlens/internal/aggregate"
	"github.com/testlens/testlens/internal/config"
	"github.com/testlens/testlens/internal/output"
	"github.com/testlens/testlens/internal/parser"
	"github.com/testlens/testlens/internal/record"
)

// ParseInput is the input schema for the parse_report MCP tool.
type ParseInput struct {
	Path   string `json:"path" jsonschema:"Path to the exported test report (txt, html, doc, xml)"`
	Kind   string `json:"kind,omitempty" jsonschema:"Source kind override: text, html, or xml (default: inferred from extension)"`
	Format string `json:"format,omitempty" jsonschema:"Output format: json, csv, csv-grouped, markdown (default: json)"`
}

// KPIsInput is the input schema for the report_kpis MCP tool.
type KPIsInput struct {
	Path string `json:"path" jsonschema:"Path to the exported test report (txt, html, doc, xml)"`
	Kind string `json:"kind,omitempty" jsonschema:"Source kind override: text, html, or xml (default: inferred from extension)"`
}

// boolPtr returns a pointer to a bool.
func boolPtr(b bool) *bool { return &b }

// registerTools adds all testlens tools to the MCP server.
func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "parse_report",
		Description: "Parse an exported QA test report and return the extracted records, grouped counts, and KPIs in the requested format.",
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint:    true,
			DestructiveHint: boolPtr(false),
			OpenWorldHint:   boolPtr(false),
		},
	}, handleParse)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "report_kpis",
		Description: "Parse an exported QA test report and return only its execution KPIs and status counts.",
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint:    true,
			DestructiveHint: boolPtr(false),
			OpenWorldHint:   boolPtr(false),
		},
	}, handleKPIs)
}

// parseFile resolves, reads, and parses one report file, applying any
// planned-totals correction configured next to it.
func parseFile(path, kindOverride string) (*record.ParseResult, *aggregate.Result, error) {
	absPath, err := ResolveFile(path)
	if err != nil {
		return nil, nil, err
	}

	var kind record.SourceKind
	if kindOverride != "" {
		kind = record.SourceKind(kindOverride)
	} else {
		kind, err = parser.KindForPath(absPath)
		if err != nil {
			return nil, nil, err
		}
	}

	p, err := parser.Get(kind)
	if err != nil {
		return nil, nil, err
	}

	data, err := os.ReadFile(absPath) //nolint:gosec // user-provided report path
	if err != nil {
		return nil, nil, fmt.Errorf("read report: %w", err)
	}

	result, err := p.Parse(data)
	if err != nil {
		return nil, nil, fmt.Errorf("parse report: %w", err)
	}

	records := result.Records
	cfg, err := config.Load(filepath.Dir(absPath))
	if err == nil && len(cfg.PlannedTotals) > 0 {
		records = aggregate.ApplyPlannedTotals(records, cfg.PlannedTotals)
	}

	return result, aggregate.Compute(records), nil
}

func handleParse(ctx context.Context, _ *mcp.CallToolRequest, input ParseInput) (*mcp.CallToolResult, any, error) {
	format := "json"
	if input.Format != "" {
		format = input.Format
	}
	formatter, err := output.Get(format)
	if err != nil {
		return nil, nil, err
	}

	result, agg, err := parseFile(input.Path, input.Kind)
	if err != nil {
		return nil, nil, err
	}

	var buf bytes.Buffer
	if err := formatter.Format(result, agg, &buf); err != nil {
		return nil, nil, fmt.Errorf("formatting failed: %w", err)
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: buf.String()},
		},
	}, nil, nil
}

func handleKPIs(ctx context.Context, _ *mcp.CallToolRequest, input KPIsInput) (*mcp.CallToolResult, any, error) {
	result, agg, err := parseFile(input.Path, input.Kind)
	if err != nil {
		return nil, nil, err
	}

	payload := struct {
		KPIs         aggregate.KPIs        `json:"kpis"`
		StatusCounts map[record.Status]int `json:"status_counts"`
		Warnings     []string              `json:"warnings,omitempty"`
	}{
		KPIs:         agg.KPIs,
		StatusCounts: agg.StatusCounts,
		Warnings:     result.Warnings,
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, nil, err
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(data)},
		},
	}, nil, nil
}
