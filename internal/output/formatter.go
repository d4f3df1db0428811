// Package output defines the Formatter interface for writing parse and
// aggregation results in various machine formats.
package output

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/testlens/testlens/internal/aggregate"
	"github.com/testlens/testlens/internal/record"
)

// Formatter writes one document's records and aggregate view to w.
type Formatter interface {
	// Name returns the format name (e.g., "csv", "json", "markdown").
	Name() string

	// Format writes the result to w.
	Format(result *record.ParseResult, agg *aggregate.Result, w io.Writer) error
}

var (
	fmtMu       sync.RWMutex
	fmtRegistry = make(map[string]Formatter)
)

// Register adds a formatter to the global registry.
func Register(f Formatter) {
	fmtMu.Lock()
	defer fmtMu.Unlock()
	fmtRegistry[f.Name()] = f
}

// Get returns the formatter with the given name, or an error listing the
// available names.
func Get(name string) (Formatter, error) {
	fmtMu.RLock()
	defer fmtMu.RUnlock()
	f, ok := fmtRegistry[name]
	if !ok {
		return nil, fmt.Errorf("unknown format: %q (available: %s)", name, formatNames())
	}
	return f, nil
}

func formatNames() string {
	names := make([]string, 0, len(fmtRegistry))
	for name := range fmtRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
