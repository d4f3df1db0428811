package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/testlens/testlens/internal/aggregate"
	"github.com/testlens/testlens/internal/config"
	"github.com/testlens/testlens/internal/parser"
	"github.com/testlens/testlens/internal/record"
)

// loadedReport is the parsed and aggregated view of one input file, shared
// by the parse, report, and summarize commands.
type loadedReport struct {
	cfg    *config.Config
	result *record.ParseResult
	agg    *aggregate.Result
}

// loadReport resolves the path, picks a parser, parses the file, applies any
// planned-totals correction, and aggregates.
func loadReport(path, kindFlag, plannedFlag string) (*loadedReport, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, exitError(ExitInvalidArgs, "testlens: cannot resolve path %q (%v)", path, err)
	}
	absPath, err = filepath.EvalSymlinks(absPath)
	if err != nil {
		return nil, exitError(ExitInvalidArgs, "testlens: cannot resolve path %q (%v)", path, err)
	}
	info, err := os.Stat(absPath)
	if err != nil {
		return nil, exitError(ExitInvalidArgs, "testlens: path %q does not exist", path)
	}
	if info.IsDir() {
		return nil, exitError(ExitInvalidArgs, "testlens: %q is a directory, not a report file", path)
	}

	var kind record.SourceKind
	if kindFlag != "" {
		kind = record.SourceKind(kindFlag)
	} else {
		kind, err = parser.KindForPath(absPath)
		if err != nil {
			return nil, exitError(ExitInvalidArgs, "%v", err)
		}
	}

	p, err := parser.Get(kind)
	if err != nil {
		return nil, exitError(ExitInvalidArgs, "%v", err)
	}

	data, err := os.ReadFile(absPath) //nolint:gosec // user-provided report path
	if err != nil {
		return nil, exitError(ExitParseError, "testlens: cannot read %q (%v)", path, err)
	}

	result, err := p.Parse(data)
	if err != nil {
		return nil, exitError(ExitParseError, "testlens: cannot parse %q (%v)", path, err)
	}

	cfg, err := config.Load(filepath.Dir(absPath))
	if err != nil {
		return nil, exitError(ExitInvalidArgs, "testlens: cannot load config (%v)", err)
	}

	planned := cfg.PlannedTotals
	if plannedFlag != "" {
		planned, err = parsePlannedTotals(plannedFlag)
		if err != nil {
			return nil, exitError(ExitInvalidArgs, "%v", err)
		}
	}

	records := result.Records
	if len(planned) > 0 {
		records = aggregate.ApplyPlannedTotals(records, planned)
	}

	for _, warn := range result.Warnings {
		slog.Warn(warn, "path", absPath)
	}

	return &loadedReport{
		cfg:    cfg,
		result: result,
		agg:    aggregate.Compute(records),
	}, nil
}

// parsePlannedTotals parses "Platform=N,Platform=N" flag syntax.
func parsePlannedTotals(s string) (map[string]int, error) {
	out := make(map[string]int)
	for _, pair := range strings.Split(s, ",") {
		name, val, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok {
			return nil, fmt.Errorf("testlens: invalid planned-totals entry %q (want Platform=N)", pair)
		}
		n, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil || n < 0 {
			return nil, fmt.Errorf("testlens: invalid planned-totals count in %q", pair)
		}
		out[strings.TrimSpace(name)] = n
	}
	return out, nil
}

// openOutput returns the writer for -o/--output, defaulting to stdout.
// The returned close func is a no-op for stdout.
func openOutput(path string) (*os.File, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path) //nolint:gosec // user-provided output path
	if err != nil {
		return nil, nil, exitError(ExitInvalidArgs, "testlens: cannot create %q (%v)", path, err)
	}
	return f, func() { _ = f.Close() }, nil
}
