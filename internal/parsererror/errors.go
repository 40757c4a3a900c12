// Package parsererror defines the errors returned when user-supplied
// transaction data cannot be parsed.
package parsererror

import "fmt"

// ParseError represents a field that could not be parsed from an input row.
type ParseError struct {
	Source string
	Line   int
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s line %d: failed to parse %s='%s': %v",
			e.Source, e.Line, e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Source, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// InvalidFormatError represents an input file that does not have the
// expected layout.
type InvalidFormatError struct {
	FilePath       string
	ExpectedFormat string
	Msg            string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}
