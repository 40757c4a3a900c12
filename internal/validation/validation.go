// Package validation checks command-line inputs before any work is done.
package validation

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Output formats understood by the view layer.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// OutputFormats lists every supported output format.
var OutputFormats = []string{FormatTable, FormatJSON, FormatYAML}

// IsValidOutputFormat checks if the given format is supported.
func IsValidOutputFormat(format string) error {
	switch format {
	case FormatTable, FormatJSON, FormatYAML:
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s. Supported formats are '%s'",
			format, strings.Join(OutputFormats, "', '"))
	}
}

// IsValidInputFile checks that path names an existing regular file.
func IsValidInputFile(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("input file is required")
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("path does not exist: %s", path)
	}
	if err != nil {
		return fmt.Errorf("error checking path %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("path %s is not a regular file", path)
	}
	return nil
}

// IsValidOutputFile checks that path can be created: it is not empty, not an
// existing directory, and ends in .csv.
func IsValidOutputFile(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("output file is required")
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return fmt.Errorf("output path %s is a directory", path)
	}
	if !strings.EqualFold(filepath.Ext(path), ".csv") {
		return fmt.Errorf("output file %s must have a .csv extension", path)
	}
	return nil
}
