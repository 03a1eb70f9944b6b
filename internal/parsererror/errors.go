// Package parsererror defines the error taxonomy shared by all parsers.
package parsererror

import "fmt"

// MissingInputError reports that no usable input was supplied at all.
// This is a structural failure surfaced to the caller, unlike heuristic
// misses which are recovered silently.
type MissingInputError struct {
	Source string
}

func (e *MissingInputError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("no input provided for source '%s'", e.Source)
	}
	return "no input provided"
}

// ParseError represents an unrecoverable error during parsing.
type ParseError struct {
	Parser string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Parser, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// InvalidFormatError represents an error where the input does not conform
// to the expected format for a specific parser.
type InvalidFormatError struct {
	FilePath       string
	ExpectedFormat string
	Msg            string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}

// PatternError reports a malformed user-supplied pattern for one template
// field. It is recoverable: the field is disabled for the run and extraction
// continues with the remaining fields.
type PatternError struct {
	Template string
	Field    string
	Pattern  string
	Err      error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("template '%s': invalid %s pattern '%s': %v",
		e.Template, e.Field, e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}
