// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes testlens's core operations as tools over stdio transport.
package mcpserver

import (
	"fmt"
	"os"
	"path/filepath"
)

// ResolveFile resolves a report file path to an absolute, symlink-resolved
// path. It returns an error if the path does not exist or is a directory.
func ResolveFile(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("path is required")
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("cannot resolve path %q: %w", path, err)
	}

	absPath, err = filepath.EvalSymlinks(absPath)
	if err != nil {
		return "", fmt.Errorf("cannot resolve path %q: %w", path, err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return "", fmt.Errorf("path %q does not exist", path)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%q is a directory, not a report file", path)
	}

	return absPath, nil
}
