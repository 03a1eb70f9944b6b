package logging

// Standardized field names for structured logging.
// These constants ensure consistency across the application's log output,
// making logs easier to parse, filter, and analyze.
const (
	FieldFile       = "file_path"
	FieldSource     = "source"
	FieldParser     = "parser"
	FieldTemplate   = "template"
	FieldPattern    = "pattern"
	FieldReference  = "reference"
	FieldReason     = "reason"
	FieldError      = "error"
	FieldCount      = "count"
	FieldDelimiter  = "delimiter"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
)
