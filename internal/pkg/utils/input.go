// Package utils holds small input helpers shared by the CLI commands.
package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// StdinPath is the input path that selects standard input.
const StdinPath = "-"

// GetReader opens path for reading, or returns stdin when path is "-".
// The caller closes the returned reader.
func GetReader(path string) (io.ReadCloser, error) {
	if path == StdinPath {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open input %s: %w", path, err)
	}
	return f, nil
}

// GetContent reads the whole file at path.
func GetContent(path string) ([]byte, error) {
	content, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return content, nil
}
