package models

import (
	"io"

	"fkimathi/chat-csv/internal/logging"
)

// Parser defines the interface for all parser implementations.
type Parser interface {
	Parse(r io.Reader) ([]Record, error)
	ConvertToCSV(inputFile, outputFile string) error
	WriteToCSV(records []Record, csvFile string) error
	SetLogger(logger logging.Logger)
	ValidateFormat(file string) (bool, error)
}
